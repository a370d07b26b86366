package lns_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/lns"
	"github.com/katalvlaran/lvlopt/problems"
	"github.com/katalvlaran/lvlopt/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringOptions is the permutation benchmark configuration: Perturb
// fallback, 200 rounds, seed 42.
func ringOptions() lns.Options[int] {
	o := lns.DefaultOptions[int]()
	o.MaxIterations = 200
	o.Seed = 42
	return o
}

// tourOperator builds a destroy/repair pair for permutations: destroy
// blanks a degree-sized set of random positions, repair refills the holes
// with the missing cities in shuffled order.
func tourOperator() lns.Operator[int] {
	return lns.Operator[int]{
		Destroy: func(dst, src []int, degree float64, rng *solve.RNG) {
			copy(dst, src)
			m := int(degree * float64(len(dst)))
			if m < 1 {
				m = 1
			}
			for _, pos := range rng.Perm(len(dst))[:m] {
				dst[pos] = -1
			}
		},
		Repair: func(data []int, rng *solve.RNG) {
			present := make([]bool, len(data))
			for _, c := range data {
				if c >= 0 {
					present[c] = true
				}
			}
			var missing []int
			for c := range present {
				if !present[c] {
					missing = append(missing, c)
				}
			}
			rng.Shuffle(len(missing), func(i, j int) { missing[i], missing[j] = missing[j], missing[i] })
			hole := 0
			for i := range data {
				if data[i] < 0 {
					data[i] = missing[hole]
					hole++
				}
			}
		},
	}
}

// TestSearch_PerturbFallback runs ruin-and-recreate through the Perturb
// leniency: no operators configured at all.
func TestSearch_PerturbFallback(t *testing.T) {
	inst := problems.RingTSP(6)

	res, err := lns.Search(inst.Problem(), ringOptions())
	require.NoError(t, err)

	assert.True(t, inst.ValidTour(res.Best.Data))
	assert.LessOrEqual(t, res.Best.Cost, 2*inst.Optimum, "200 rounds of segment reversals should land near the ring")
	assert.InDelta(t, inst.TourCost(res.Best.Data), res.Best.Cost, 1e-9)

	require.Len(t, res.Convergence, 200)
	for i := 1; i < len(res.Convergence); i++ {
		assert.LessOrEqual(t, res.Convergence[i], res.Convergence[i-1], "round %d regressed", i)
	}
}

// TestSearch_OperatorRoundTrip drives a real destroy/repair pair and
// checks through the objective that every rebuilt genome is whole again.
func TestSearch_OperatorRoundTrip(t *testing.T) {
	var (
		inst = problems.RingTSP(7)
		p    = inst.Problem()
	)
	base := p.Objective
	p.Objective = func(tour []int) float64 {
		require.True(t, inst.ValidTour(tour), "evaluated genome is not a permutation: %v", tour)
		return base(tour)
	}

	o := ringOptions()
	o.Operators = []lns.Operator[int]{tourOperator()}

	res, err := lns.Search(p, o)
	require.NoError(t, err)

	assert.True(t, inst.ValidTour(res.Best.Data))
	assert.Equal(t, 1+200, res.Evaluations, "one evaluation per round plus the incumbent")
}

// TestSearch_Deterministic replays one seed under both acceptance
// policies and expects identical trajectories.
func TestSearch_Deterministic(t *testing.T) {
	inst := problems.RandomTSP(9, 4)

	for _, acc := range []lns.Acceptance{lns.AcceptImproving, lns.AcceptAnnealing} {
		o := ringOptions()
		o.Acceptance = acc

		a, err := lns.Search(inst.Problem(), o)
		require.NoError(t, err)
		b, err := lns.Search(inst.Problem(), o)
		require.NoError(t, err)

		assert.Equal(t, a.Best.Data, b.Best.Data)
		assert.Equal(t, a.Convergence, b.Convergence)
		assert.Equal(t, a.Evaluations, b.Evaluations)
	}
}

// TestSearch_ZeroIterations expects an evaluated but untouched incumbent.
func TestSearch_ZeroIterations(t *testing.T) {
	inst := problems.RingTSP(7)
	o := ringOptions()
	o.MaxIterations = 0

	res, err := lns.Search(inst.Problem(), o)
	require.NoError(t, err)

	assert.Zero(t, res.Iterations)
	assert.Empty(t, res.Convergence)
	assert.Equal(t, 1, res.Evaluations)
	assert.True(t, inst.ValidTour(res.Best.Data))
	assert.InDelta(t, inst.TourCost(res.Best.Data), res.Best.Cost, 1e-9)
}

// TestSearch_AnnealingAcceptsWorse watches the incumbent through the
// destroy callback: a move that always worsens freezes the improving
// policy but keeps drifting under a hot annealing acceptance.
func TestSearch_AnnealingAcceptsWorse(t *testing.T) {
	run := func(acc lns.Acceptance) []float64 {
		var seen []float64
		p := solve.Problem[float64]{
			Size:      3,
			Objective: func(x []float64) float64 { return x[0] + x[1] + x[2] },
			Generate: func(dst []float64, _ *solve.RNG) {
				for i := range dst {
					dst[i] = 0
				}
			},
		}
		o := lns.DefaultOptions[float64]()
		o.MaxIterations = 10
		o.Seed = 42
		o.Acceptance = acc
		o.InitialTemp = 1e9 // hot enough to accept every worsening
		o.Operators = []lns.Operator[float64]{{
			Destroy: func(dst, src []float64, _ float64, _ *solve.RNG) {
				seen = append(seen, src[0])
				for i := range dst {
					dst[i] = src[i] + 1
				}
			},
			Repair: func([]float64, *solve.RNG) {},
		}}

		_, err := lns.Search(p, o)
		require.NoError(t, err)
		return seen
	}

	frozen := run(lns.AcceptImproving)
	for i, v := range frozen {
		require.Zero(t, v, "improving policy must never move to a worse incumbent (round %d)", i)
	}

	drifting := run(lns.AcceptAnnealing)
	for i := 1; i < len(drifting); i++ {
		require.GreaterOrEqual(t, drifting[i], drifting[i-1])
	}
	assert.Greater(t, drifting[len(drifting)-1], drifting[0], "a hot acceptance must let the incumbent wander")
}

// TestSearch_AdaptiveFavorsUsefulOperator pits a descending nudge against
// a blind re-roll; the re-learned roulette must concentrate on the nudge.
func TestSearch_AdaptiveFavorsUsefulOperator(t *testing.T) {
	var (
		inst     = problems.Sphere(4)
		lo, hi   = inst.Bounds()
		goodUses int
		badUses  int
	)

	good := lns.Operator[float64]{
		Destroy: func(dst, src []float64, _ float64, rng *solve.RNG) {
			goodUses++
			for i := range dst {
				dst[i] = src[i] + 0.05*rng.Gaussian()
				if dst[i] < lo[i] {
					dst[i] = lo[i]
				}
				if dst[i] > hi[i] {
					dst[i] = hi[i]
				}
			}
		},
		Repair: func([]float64, *solve.RNG) {},
	}
	bad := lns.Operator[float64]{
		Destroy: func(dst, src []float64, _ float64, rng *solve.RNG) {
			badUses++
			for i := range dst {
				dst[i] = lo[i] + rng.Uniform()*(hi[i]-lo[i])
			}
		},
		Repair: func([]float64, *solve.RNG) {},
	}

	o := lns.DefaultOptions[float64]()
	o.MaxIterations = 400
	o.Seed = 42
	o.Operators = []lns.Operator[float64]{good, bad}
	o.Adaptive = true
	o.Segment = 20
	o.Reaction = 0.5

	res, err := lns.Search(inst.Problem(), o)
	require.NoError(t, err)

	assert.Greater(t, goodUses, badUses, "the wheel must learn which operator earns scores")
	assert.Equal(t, 400, goodUses+badUses, "every round draws exactly one operator")
	assert.Less(t, res.Best.Cost, res.Convergence[0])
}

// TestSearch_DegreeClamp watches the degree handed to the destroy
// callback: out-of-range configurations arrive clamped.
func TestSearch_DegreeClamp(t *testing.T) {
	cases := []struct {
		name      string
		configure float64
		want      float64
	}{
		{"non-positive restores the default", -1, lns.DefaultDegree},
		{"above one saturates", 2, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var seen float64
			p := solve.Problem[float64]{
				Size:      2,
				Objective: func(x []float64) float64 { return x[0] + x[1] },
				Generate:  func(dst []float64, _ *solve.RNG) { dst[0], dst[1] = 0, 0 },
			}
			o := lns.DefaultOptions[float64]()
			o.MaxIterations = 1
			o.Degree = tc.configure
			o.Operators = []lns.Operator[float64]{{
				Destroy: func(dst, src []float64, degree float64, _ *solve.RNG) {
					seen = degree
					copy(dst, src)
				},
				Repair: func([]float64, *solve.RNG) {},
			}}

			_, err := lns.Search(p, o)
			require.NoError(t, err)
			assert.Equal(t, tc.want, seen)
		})
	}
}

// TestSearch_NilOperatorRejected checks the ErrNilOperator sentinel for
// both missing halves.
func TestSearch_NilOperatorRejected(t *testing.T) {
	inst := problems.RingTSP(5)

	noRepair := ringOptions()
	noRepair.Operators = []lns.Operator[int]{{Destroy: tourOperator().Destroy}}
	_, err := lns.Search(inst.Problem(), noRepair)
	assert.ErrorIs(t, err, lns.ErrNilOperator)

	noDestroy := ringOptions()
	noDestroy.Operators = []lns.Operator[int]{{Repair: tourOperator().Repair}}
	_, err = lns.Search(inst.Problem(), noDestroy)
	assert.ErrorIs(t, err, lns.ErrNilOperator)
}

// TestSearch_ValidationErrors checks the structural sentinels and the
// operator leniency around Perturb.
func TestSearch_ValidationErrors(t *testing.T) {
	inst := problems.RingTSP(5)

	// No operators and no Perturb leaves nothing to ruin with.
	noPerturb := inst.Problem()
	noPerturb.Perturb = nil
	_, err := lns.Search(noPerturb, ringOptions())
	assert.ErrorIs(t, err, solve.ErrMissingPerturb)

	// A configured operator makes Perturb optional.
	o := ringOptions()
	o.MaxIterations = 20
	o.Operators = []lns.Operator[int]{tourOperator()}
	res, err := lns.Search(noPerturb, o)
	require.NoError(t, err)
	assert.True(t, inst.ValidTour(res.Best.Data))

	noGenerate := inst.Problem()
	noGenerate.Generate = nil
	_, err = lns.Search(noGenerate, ringOptions())
	assert.ErrorIs(t, err, solve.ErrMissingGenerate)

	empty := inst.Problem()
	empty.Size = 0
	_, err = lns.Search(empty, ringOptions())
	assert.ErrorIs(t, err, solve.ErrZeroSize)

	crooked := ringOptions()
	crooked.Direction = solve.Direction(3)
	_, err = lns.Search(inst.Problem(), crooked)
	assert.ErrorIs(t, err, solve.ErrBadDirection)
}

// TestSearch_Maximize climbs a sphere with the Perturb fallback.
func TestSearch_Maximize(t *testing.T) {
	inst := problems.Sphere(3)
	o := lns.DefaultOptions[float64]()
	o.MaxIterations = 150
	o.Seed = 7
	o.Direction = solve.Maximize

	res, err := lns.Search(inst.Problem(), o)
	require.NoError(t, err)

	for i := 1; i < len(res.Convergence); i++ {
		assert.GreaterOrEqual(t, res.Convergence[i], res.Convergence[i-1], "maximizing trace regressed at round %d", i)
	}
	assert.Positive(t, res.Best.Cost)
	assert.InDelta(t, inst.Eval(res.Best.Data), res.Best.Cost, 1e-9)
}
