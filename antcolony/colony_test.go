package antcolony_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/antcolony"
	"github.com/katalvlaran/lvlopt/problems"
	"github.com/katalvlaran/lvlopt/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ringOptions wires the colony to an instance: heuristic matrix from the
// distances, 60 iterations, seed 42.
func ringOptions(inst *problems.TSP) antcolony.Options {
	o := antcolony.DefaultOptions()
	o.Heuristic = inst.Heuristic()
	o.MaxIterations = 60
	o.Seed = 42
	return o
}

// TestOptimize_RingConcentratesOnShortTours wraps the objective so every
// constructed tour is validity-checked, then expects a near-ring best.
func TestOptimize_RingConcentratesOnShortTours(t *testing.T) {
	inst := problems.RingTSP(8)
	p := inst.Problem()

	base := p.Objective
	p.Objective = func(tour []int) float64 {
		require.True(t, inst.ValidTour(tour), "constructed tour is not a permutation: %v", tour)
		return base(tour)
	}

	res, err := antcolony.Optimize(p, ringOptions(inst))
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Best.Cost, 2*inst.Optimum,
		"a colony with distance heuristic should land near the ring")
	assert.Equal(t, inst.TourCost(res.Best.Data), res.Best.Cost, "best must be evaluated")

	require.Len(t, res.Convergence, 60)
	for i := 1; i < len(res.Convergence); i++ {
		require.LessOrEqual(t, res.Convergence[i], res.Convergence[i-1],
			"best-so-far regressed at iteration %d", i)
	}
	assert.Equal(t, res.Convergence[len(res.Convergence)-1], res.Best.Cost)
}

// TestOptimize_Deterministic replays one seed and expects identical runs.
func TestOptimize_Deterministic(t *testing.T) {
	inst := problems.RandomTSP(10, 6)

	a, err := antcolony.Optimize(inst.Problem(), ringOptions(inst))
	require.NoError(t, err)
	b, err := antcolony.Optimize(inst.Problem(), ringOptions(inst))
	require.NoError(t, err)

	assert.Equal(t, a.Best.Data, b.Best.Data)
	assert.Equal(t, a.Convergence, b.Convergence)
	assert.Equal(t, a.Evaluations, b.Evaluations)
}

// TestOptimize_ZeroIterations checks the cold-construction boundary: one
// tour is built and evaluated so the result is never empty.
func TestOptimize_ZeroIterations(t *testing.T) {
	inst := problems.RingTSP(7)
	o := ringOptions(inst)
	o.MaxIterations = 0

	res, err := antcolony.Optimize(inst.Problem(), o)
	require.NoError(t, err)

	assert.Zero(t, res.Iterations)
	assert.Empty(t, res.Convergence)
	assert.Equal(t, 1, res.Evaluations, "exactly the seeding construction")
	assert.True(t, inst.ValidTour(res.Best.Data))
	assert.Equal(t, inst.TourCost(res.Best.Data), res.Best.Cost)
}

// TestOptimize_Variants exercises each deposit rule.
func TestOptimize_Variants(t *testing.T) {
	inst := problems.RandomTSP(9, 3)

	variants := []struct {
		name string
		v    antcolony.Variant
	}{
		{"ant-system", antcolony.AntSystem},
		{"elitist", antcolony.ElitistAS},
		{"max-min", antcolony.MaxMin},
	}
	for _, tc := range variants {
		o := ringOptions(inst)
		o.MaxIterations = 30
		o.Variant = tc.v

		first, err := antcolony.Optimize(inst.Problem(), o)
		require.NoError(t, err, tc.name)
		again, err := antcolony.Optimize(inst.Problem(), o)
		require.NoError(t, err, tc.name)

		assert.True(t, inst.ValidTour(first.Best.Data), "%s: invalid best tour", tc.name)
		assert.Equal(t, first.Best.Data, again.Best.Data, "%s: runs diverged", tc.name)
		assert.Equal(t, first.Convergence, again.Convergence, "%s: traces diverged", tc.name)
	}
}

// TestOptimize_PheromoneOnly drops the heuristic matrix entirely.
func TestOptimize_PheromoneOnly(t *testing.T) {
	inst := problems.RandomTSP(8, 11)

	o := antcolony.DefaultOptions()
	o.MaxIterations = 20
	o.Seed = 9 // no heuristic on purpose

	res, err := antcolony.Optimize(inst.Problem(), o)
	require.NoError(t, err)
	assert.True(t, inst.ValidTour(res.Best.Data), "pheromone-only walk must still build permutations")
}

// TestOptimize_AntCountDerivation observes the colony size through the
// evaluation count of a single iteration.
func TestOptimize_AntCountDerivation(t *testing.T) {
	inst := problems.RingTSP(7)

	derived := ringOptions(inst)
	derived.MaxIterations = 1
	derived.Ants = 0 // one ant per city

	res, err := antcolony.Optimize(inst.Problem(), derived)
	require.NoError(t, err)
	assert.Equal(t, 1+7, res.Evaluations, "seeding construction plus one ant per city")

	explicit := ringOptions(inst)
	explicit.MaxIterations = 1
	explicit.Ants = 3

	res, err = antcolony.Optimize(inst.Problem(), explicit)
	require.NoError(t, err)
	assert.Equal(t, 1+3, res.Evaluations, "seeding construction plus three ants")
}

// TestOptimize_EvaporationClamp runs with out-of-range ρ values; the
// clamp must keep the colony alive (total trail decay forces the uniform
// construction fallback, never an error).
func TestOptimize_EvaporationClamp(t *testing.T) {
	inst := problems.RingTSP(6)

	for _, rho := range []float64{-0.5, 1.5} {
		o := ringOptions(inst)
		o.MaxIterations = 10
		o.Evaporation = rho

		res, err := antcolony.Optimize(inst.Problem(), o)
		require.NoError(t, err, "rho=%v", rho)
		assert.True(t, inst.ValidTour(res.Best.Data), "rho=%v", rho)
		assert.Equal(t, 10, res.Iterations, "rho=%v", rho)
	}
}

// TestOptimize_ValidationErrors exercises the structural sentinels.
func TestOptimize_ValidationErrors(t *testing.T) {
	inst := problems.RingTSP(5)

	missing := inst.Problem()
	missing.Objective = nil
	_, err := antcolony.Optimize(missing, antcolony.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrMissingObjective)

	empty := inst.Problem()
	empty.Size = 0
	_, err = antcolony.Optimize(empty, antcolony.DefaultOptions())
	assert.ErrorIs(t, err, solve.ErrZeroSize)

	crooked := antcolony.DefaultOptions()
	crooked.Direction = solve.Direction(5)
	_, err = antcolony.Optimize(inst.Problem(), crooked)
	assert.ErrorIs(t, err, solve.ErrBadDirection)
}
