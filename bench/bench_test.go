package bench_test

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlopt/bench"
	"github.com/katalvlaran/lvlopt/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted returns an Algorithm that replays the given costs in order
// and records every seed it was handed.
func scripted(name string, costs []float64, seeds *[]int64) bench.Algorithm {
	i := 0
	return bench.Algorithm{
		Name: name,
		Run: func(seed int64) (float64, error) {
			*seeds = append(*seeds, seed)
			c := costs[i%len(costs)]
			i++
			return c, nil
		},
	}
}

// TestRunner_SeedDerivation pins the per-repetition seed schedule to the
// documented derivation from BaseSeed.
func TestRunner_SeedDerivation(t *testing.T) {
	var seeds []int64
	r := bench.Runner{Runs: 4, BaseSeed: 99}

	_, err := r.Run(scripted("fake", []float64{1}, &seeds))
	require.NoError(t, err)

	want := []int64{
		solve.DeriveSeed(99, 0),
		solve.DeriveSeed(99, 1),
		solve.DeriveSeed(99, 2),
		solve.DeriveSeed(99, 3),
	}
	assert.Equal(t, want, seeds)
}

// TestRunner_SummaryStats checks the batch reduction on a tiny scripted
// batch with hand-computed statistics.
func TestRunner_SummaryStats(t *testing.T) {
	var seeds []int64
	r := bench.Runner{Runs: 3}

	s, err := r.Run(scripted("fake", []float64{3, 1, 2}, &seeds))
	require.NoError(t, err)

	assert.Equal(t, "fake", s.Algorithm)
	assert.Equal(t, 3, s.Runs)
	assert.Equal(t, 1.0, s.BestCost)
	assert.InDelta(t, 2.0, s.MeanCost, 1e-12)
	assert.InDelta(t, 1.0, s.StdCost, 1e-12, "sample std of 3,1,2")
	assert.InDelta(t, 2.0, s.MedianCost, 1e-12)
	assert.GreaterOrEqual(t, s.MeanMs, 0.0)
}

// TestRunner_MaximizeBest flips the best-picking direction.
func TestRunner_MaximizeBest(t *testing.T) {
	var seeds []int64
	r := bench.Runner{Runs: 3, Direction: solve.Maximize}

	s, err := r.Run(scripted("fake", []float64{3, 1, 2}, &seeds))
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.BestCost)
}

// TestRunner_RunsClampToOne keeps a degenerate runner usable.
func TestRunner_RunsClampToOne(t *testing.T) {
	var seeds []int64
	r := bench.Runner{}

	s, err := r.Run(scripted("fake", []float64{5}, &seeds))
	require.NoError(t, err)

	assert.Equal(t, 1, s.Runs)
	assert.Len(t, seeds, 1)
	assert.Zero(t, s.StdCost, "single-sample deviation must be zero, not NaN")
	assert.Equal(t, 5.0, s.BestCost)
	assert.Equal(t, 5.0, s.MedianCost)
}

// TestRunner_Errors covers the structural sentinels and run-error
// propagation.
func TestRunner_Errors(t *testing.T) {
	r := bench.Runner{Runs: 2}

	_, err := r.Run(bench.Algorithm{Name: "hollow"})
	assert.ErrorIs(t, err, bench.ErrNilRun)

	crooked := bench.Runner{Runs: 1, Direction: solve.Direction(9)}
	_, err = crooked.Run(bench.Algorithm{Name: "x", Run: func(int64) (float64, error) { return 0, nil }})
	assert.ErrorIs(t, err, solve.ErrBadDirection)

	boom := errors.New("boom")
	calls := 0
	failing := bench.Algorithm{
		Name: "flaky",
		Run: func(int64) (float64, error) {
			calls++
			if calls == 2 {
				return 0, boom
			}
			return 1, nil
		},
	}
	_, err = r.Run(failing)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "flaky run 1")
}

// TestRunAll_CollectsInOrder runs two scripted algorithms.
func TestRunAll_CollectsInOrder(t *testing.T) {
	var sa, sb []int64
	r := bench.Runner{Runs: 2, BaseSeed: 3}

	sums, err := r.RunAll([]bench.Algorithm{
		scripted("a", []float64{2}, &sa),
		scripted("b", []float64{7}, &sb),
	})
	require.NoError(t, err)
	require.Len(t, sums, 2)

	assert.Equal(t, "a", sums[0].Algorithm)
	assert.Equal(t, "b", sums[1].Algorithm)
	assert.Equal(t, sa, sb, "every algorithm sees the same seed schedule")
}

// TestReport_WriteCSV exports a report and reads it back.
func TestReport_WriteCSV(t *testing.T) {
	sums := []bench.Summary{
		{Algorithm: "anneal", Runs: 2, BestCost: 1.5, MeanCost: 2, StdCost: 0.5, MedianCost: 2, MeanMs: 3, StdMs: 1},
		{Algorithm: "tabu", Runs: 2, BestCost: 1.25, MeanCost: 1.5, StdCost: 0.25, MedianCost: 1.5, MeanMs: 4, StdMs: 2},
	}
	report := bench.NewReport("roundtrip", sums)
	require.NotEmpty(t, report.ID)

	other := bench.NewReport("roundtrip", sums)
	assert.NotEqual(t, report.ID, other.ID, "reports must be distinguishable")

	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, report.WriteCSV(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per summary")

	assert.Equal(t, "report_id", rows[0][0])
	assert.Equal(t, report.ID, rows[1][0])
	assert.Equal(t, "roundtrip", rows[1][1])
	assert.Equal(t, "anneal", rows[1][2])
	assert.Equal(t, "tabu", rows[2][2])
	assert.Equal(t, "1.500000", rows[1][4])
}
