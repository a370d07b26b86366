package bench

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlopt/solve"
)

// Summary condenses one algorithm's batch of runs. Cost columns are
// computed from the per-run best costs, timing columns from per-run
// wall-clock milliseconds.
type Summary struct {
	Algorithm string
	Runs      int

	BestCost   float64
	MeanCost   float64
	StdCost    float64
	MedianCost float64

	MeanMs float64
	StdMs  float64
}

// summarize reduces the raw batch columns. Empty batches never reach
// here (the runner clamps Runs to at least one).
//
// Complexity: O(n log n) for the median sort.
func summarize(name string, dir solve.Direction, costs, timesMs []float64) Summary {
	best := costs[0]
	for _, c := range costs[1:] {
		if dir.Better(c, best) {
			best = c
		}
	}

	// stat.Quantile wants its input sorted.
	sorted := slices.Clone(costs)
	slices.Sort(sorted)

	return Summary{
		Algorithm:  name,
		Runs:       len(costs),
		BestCost:   best,
		MeanCost:   stat.Mean(costs, nil),
		StdCost:    stdOrZero(costs),
		MedianCost: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		MeanMs:     stat.Mean(timesMs, nil),
		StdMs:      stdOrZero(timesMs),
	}
}

// stdOrZero is stat.StdDev with the single-sample case pinned to zero
// instead of NaN.
func stdOrZero(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
