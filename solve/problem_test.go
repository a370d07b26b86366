package solve_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/solve"
	"github.com/stretchr/testify/assert"
)

// fullProblem returns a problem with every callback wired, for Validate tests.
func fullProblem() solve.Problem[int] {
	return solve.Problem[int]{
		Size:      5,
		Objective: func(data []int) float64 { return 0 },
		Neighbor:  func(dst, src []int, rng *solve.RNG) {},
		Perturb:   func(dst, src []int, strength float64, rng *solve.RNG) {},
		Generate:  func(dst []int, rng *solve.RNG) {},
		Crossover: func(p1, p2, c1, c2 []int, rng *solve.RNG) {},
		Mutate:    func(data []int, rate float64, rng *solve.RNG) {},
	}
}

// TestProblem_ValidateSize verifies non-positive sizes are rejected first.
func TestProblem_ValidateSize(t *testing.T) {
	p := fullProblem()
	p.Size = 0
	assert.ErrorIs(t, p.Validate(solve.NeedObjective), solve.ErrZeroSize, "zero size must error")

	p.Size = -3
	assert.ErrorIs(t, p.Validate(0), solve.ErrZeroSize, "negative size must error even with no needs")
}

// TestProblem_ValidateMissingCallbacks checks each Need bit maps to its
// sentinel when the corresponding callback is nil.
func TestProblem_ValidateMissingCallbacks(t *testing.T) {
	cases := []struct {
		name string
		need solve.Need
		zap  func(*solve.Problem[int])
		want error
	}{
		{"objective", solve.NeedObjective, func(p *solve.Problem[int]) { p.Objective = nil }, solve.ErrMissingObjective},
		{"neighbor", solve.NeedNeighbor, func(p *solve.Problem[int]) { p.Neighbor = nil }, solve.ErrMissingNeighbor},
		{"perturb", solve.NeedPerturb, func(p *solve.Problem[int]) { p.Perturb = nil }, solve.ErrMissingPerturb},
		{"generate", solve.NeedGenerate, func(p *solve.Problem[int]) { p.Generate = nil }, solve.ErrMissingGenerate},
		{"crossover", solve.NeedCrossover, func(p *solve.Problem[int]) { p.Crossover = nil }, solve.ErrMissingCrossover},
		{"mutate", solve.NeedMutate, func(p *solve.Problem[int]) { p.Mutate = nil }, solve.ErrMissingMutate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := fullProblem()
			tc.zap(&p)
			assert.ErrorIs(t, p.Validate(tc.need), tc.want, "missing %s must map to its sentinel", tc.name)
			assert.NoError(t, p.Validate(0), "absent need bit must not require %s", tc.name)
		})
	}
}

// TestProblem_ValidateOK ensures a fully wired problem passes every need.
func TestProblem_ValidateOK(t *testing.T) {
	p := fullProblem()
	all := solve.NeedObjective | solve.NeedNeighbor | solve.NeedPerturb |
		solve.NeedGenerate | solve.NeedCrossover | solve.NeedMutate
	assert.NoError(t, p.Validate(all), "complete problem must validate")
}

// TestHashGenes verifies the builtin fingerprint is deterministic, order
// sensitive and distinguishes int from reordered genomes.
func TestHashGenes(t *testing.T) {
	a := []int{0, 1, 2, 3, 4}
	b := []int{0, 1, 2, 3, 4}
	c := []int{4, 3, 2, 1, 0}

	assert.Equal(t, solve.HashGenes(a), solve.HashGenes(b), "equal genomes hash equal")
	assert.NotEqual(t, solve.HashGenes(a), solve.HashGenes(c), "order must matter")

	x := []float64{0.5, 1.25}
	y := []float64{0.5, 1.250000001}
	assert.NotEqual(t, solve.HashGenes(x), solve.HashGenes(y), "tiny coordinate changes must change the hash")
}
