package memetic_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/memetic"
	"github.com/katalvlaran/lvlopt/problems"
	"github.com/katalvlaran/lvlopt/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tourOptions is the permutation benchmark configuration: population 30,
// 40 generations, learning every generation, seed 42.
func tourOptions() memetic.Options {
	o := memetic.DefaultOptions()
	o.Generations = 40
	o.Seed = 42
	return o
}

// solveByIdentity is a stand-in local search that "solves" any tour by
// writing the identity permutation, which on a ring instance is the
// optimal tour. It makes the learning modes distinguishable from outside.
func solveByIdentity(data []int, obj solve.Objective[int], _ *solve.RNG) float64 {
	for i := range data {
		data[i] = i
	}
	return obj(data)
}

// TestEvolve_RingConverges runs the Lamarckian default on a ring tour.
func TestEvolve_RingConverges(t *testing.T) {
	inst := problems.RingTSP(6)

	res, err := memetic.Evolve(inst.Problem(), tourOptions())
	require.NoError(t, err)

	assert.True(t, inst.ValidTour(res.Best.Data))
	assert.LessOrEqual(t, res.Best.Cost, 2*inst.Optimum, "two-opt learning should land near the ring")
	assert.InDelta(t, inst.TourCost(res.Best.Data), res.Best.Cost, 1e-9)

	require.Len(t, res.Convergence, 40)
	for i := 1; i < len(res.Convergence); i++ {
		assert.LessOrEqual(t, res.Convergence[i], res.Convergence[i-1], "generation %d regressed", i)
	}
	assert.Equal(t, res.Best.Cost, res.Convergence[len(res.Convergence)-1])
}

// TestEvolve_Deterministic replays one seed under both learning modes.
func TestEvolve_Deterministic(t *testing.T) {
	inst := problems.RandomTSP(9, 4)

	for _, mode := range []memetic.Learning{memetic.Lamarckian, memetic.Baldwinian} {
		o := tourOptions()
		o.Learning = mode
		o.Generations = 15

		a, err := memetic.Evolve(inst.Problem(), o)
		require.NoError(t, err)
		b, err := memetic.Evolve(inst.Problem(), o)
		require.NoError(t, err)

		assert.Equal(t, a.Best.Data, b.Best.Data)
		assert.Equal(t, a.Convergence, b.Convergence)
		assert.Equal(t, a.Evaluations, b.Evaluations)
	}
}

// TestEvolve_ZeroGenerations expects the evaluated initial population's
// best, with no learning spent on it.
func TestEvolve_ZeroGenerations(t *testing.T) {
	inst := problems.RingTSP(7)
	o := tourOptions()
	o.PopulationSize = 10
	o.Generations = 0

	res, err := memetic.Evolve(inst.Problem(), o)
	require.NoError(t, err)

	assert.Zero(t, res.Iterations)
	assert.Empty(t, res.Convergence)
	assert.Equal(t, 10, res.Evaluations, "one evaluation per generated individual")
	assert.True(t, inst.ValidTour(res.Best.Data))
	assert.InDelta(t, inst.TourCost(res.Best.Data), res.Best.Cost, 1e-9)
}

// TestEvolve_EvaluationAccounting pins the budget with the collaborator's
// two-opt: population 10, elitism 2, so each generation costs 8 child
// evaluations plus 10 opaque refinements on learning generations.
func TestEvolve_EvaluationAccounting(t *testing.T) {
	cases := []struct {
		name  string
		every int
		want  int
	}{
		{"learning every generation", 1, 10 + 3*(10+8)},
		{"learning every second generation", 2, 10 + 2*10 + 3*8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inst := problems.RingTSP(6)
			o := tourOptions()
			o.PopulationSize = 10
			o.Generations = 3
			o.LocalSearchEvery = tc.every

			res, err := memetic.Evolve(inst.Problem(), o)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Evaluations)
		})
	}
}

// TestEvolve_LamarckianWritesBack hands the driver a local search that
// rewrites any tour into the ring optimum: under Lamarckian learning the
// rewrite must land in the genotype, so one generation suffices.
func TestEvolve_LamarckianWritesBack(t *testing.T) {
	inst := problems.RingTSP(12)
	p := inst.Problem()
	p.LocalSearch = solveByIdentity

	o := tourOptions()
	o.Generations = 1

	res, err := memetic.Evolve(p, o)
	require.NoError(t, err)

	want := make([]int, 12)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, res.Best.Data, "the learned genotype must survive in the population")
	assert.InDelta(t, inst.Optimum, res.Best.Cost, 1e-9)
}

// TestEvolve_BaldwinianKeepsGenotype floods selection with perfect
// learned fitness while the genotypes stay as generated: the reported
// best must still be a true, honestly costed tour.
func TestEvolve_BaldwinianKeepsGenotype(t *testing.T) {
	inst := problems.RingTSP(12)
	p := inst.Problem()
	p.LocalSearch = solveByIdentity

	o := tourOptions()
	o.Learning = memetic.Baldwinian
	o.Generations = 2

	res, err := memetic.Evolve(p, o)
	require.NoError(t, err)

	assert.Greater(t, res.Best.Cost, inst.Optimum, "no genotype was actually rewritten to the optimum")
	assert.InDelta(t, inst.TourCost(res.Best.Data), res.Best.Cost, 1e-9, "the best must be costed on its true genotype")
	assert.True(t, inst.ValidTour(res.Best.Data))
}

// TestEvolve_PopulationClamp verifies the even-and-at-least-4 rule via
// the zero-generation evaluation count.
func TestEvolve_PopulationClamp(t *testing.T) {
	cases := []struct {
		configured int
		want       int
	}{
		{-1, 4},
		{3, 4},
		{5, 6},
		{8, 8},
	}

	inst := problems.RingTSP(5)
	for _, tc := range cases {
		o := tourOptions()
		o.PopulationSize = tc.configured
		o.Generations = 0

		res, err := memetic.Evolve(inst.Problem(), o)
		require.NoError(t, err)
		assert.Equal(t, tc.want, res.Evaluations, "population %d must clamp to %d", tc.configured, tc.want)
	}
}

// TestEvolve_ValidationErrors checks the structural sentinels, including
// the mandatory-learning requirement.
func TestEvolve_ValidationErrors(t *testing.T) {
	inst := problems.RingTSP(5)

	cases := []struct {
		name string
		mod  func(*solve.Problem[int])
		want error
	}{
		{"missing objective", func(p *solve.Problem[int]) { p.Objective = nil }, solve.ErrMissingObjective},
		{"missing generate", func(p *solve.Problem[int]) { p.Generate = nil }, solve.ErrMissingGenerate},
		{"missing crossover", func(p *solve.Problem[int]) { p.Crossover = nil }, solve.ErrMissingCrossover},
		{"missing mutate", func(p *solve.Problem[int]) { p.Mutate = nil }, solve.ErrMissingMutate},
		{"no refinement path", func(p *solve.Problem[int]) { p.LocalSearch = nil; p.Neighbor = nil }, solve.ErrMissingNeighbor},
		{"zero size", func(p *solve.Problem[int]) { p.Size = 0 }, solve.ErrZeroSize},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := inst.Problem()
			tc.mod(&p)
			_, err := memetic.Evolve(p, tourOptions())
			assert.ErrorIs(t, err, tc.want)
		})
	}

	crooked := tourOptions()
	crooked.Direction = solve.Direction(6)
	_, err := memetic.Evolve(inst.Problem(), crooked)
	assert.ErrorIs(t, err, solve.ErrBadDirection)
}

// TestEvolve_Maximize climbs a sphere with the builtin descent doing the
// learning.
func TestEvolve_Maximize(t *testing.T) {
	inst := problems.Sphere(3)
	o := memetic.DefaultOptions()
	o.PopulationSize = 12
	o.Generations = 20
	o.Seed = 7
	o.Direction = solve.Maximize

	res, err := memetic.Evolve(inst.Problem(), o)
	require.NoError(t, err)

	for i := 1; i < len(res.Convergence); i++ {
		assert.GreaterOrEqual(t, res.Convergence[i], res.Convergence[i-1], "maximizing trace regressed at generation %d", i)
	}
	assert.Positive(t, res.Best.Cost)
	assert.InDelta(t, inst.Eval(res.Best.Data), res.Best.Cost, 1e-9)
}
