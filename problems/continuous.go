// Package problems - continuous benchmark suite.
//
// The five classic test functions, each with its canonical domain and a
// known global optimum of 0: Sphere (convex bowl), Rosenbrock (curved
// valley), Rastrigin and Ackley (highly multimodal), Griewank (multimodal
// with product coupling).
package problems

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlopt/genetic"
	"github.com/katalvlaran/lvlopt/solve"
)

// Neighbor and perturb step widths as shares of the domain span.
const (
	neighborSigmaShare = 0.05
	perturbSigmaShare  = 0.1
	blendAlpha         = 0.5
)

// Continuous is a box-bounded continuous minimization benchmark.
type Continuous struct {
	// Name identifies the function in reports.
	Name string

	// Dim is the genome length.
	Dim int

	// Lo and Hi bound every coordinate.
	Lo, Hi float64

	// Optimum is the known global minimum value.
	Optimum float64

	// Eval computes the function value.
	Eval func(x []float64) float64
}

// Sphere is the convex bowl Σx², domain [-5.12, 5.12], optimum 0 at the
// origin. The easiest sanity check in the suite.
func Sphere(dim int) *Continuous {
	return &Continuous{
		Name: "sphere",
		Dim:  clampDim(dim),
		Lo:   -5.12,
		Hi:   5.12,
		Eval: func(x []float64) float64 {
			return floats.Dot(x, x)
		},
	}
}

// Rosenbrock is the curved valley Σ 100(x_{i+1}-x_i²)² + (1-x_i)²,
// domain [-2.048, 2.048], optimum 0 at (1,…,1).
func Rosenbrock(dim int) *Continuous {
	return &Continuous{
		Name: "rosenbrock",
		Dim:  clampDim(dim),
		Lo:   -2.048,
		Hi:   2.048,
		Eval: func(x []float64) float64 {
			var s float64
			for i := 0; i < len(x)-1; i++ {
				a := x[i+1] - x[i]*x[i]
				b := 1 - x[i]
				s += 100*a*a + b*b
			}
			return s
		},
	}
}

// Rastrigin is 10n + Σ x²-10cos(2πx), domain [-5.12, 5.12], optimum 0 at
// the origin. A regular grid of local minima.
func Rastrigin(dim int) *Continuous {
	return &Continuous{
		Name: "rastrigin",
		Dim:  clampDim(dim),
		Lo:   -5.12,
		Hi:   5.12,
		Eval: func(x []float64) float64 {
			s := 10 * float64(len(x))
			for _, v := range x {
				s += v*v - 10*math.Cos(2*math.Pi*v)
			}
			return s
		},
	}
}

// Ackley is the exponential well over [-32.768, 32.768], optimum 0 at the
// origin. Nearly flat far out, steep near the center.
func Ackley(dim int) *Continuous {
	return &Continuous{
		Name: "ackley",
		Dim:  clampDim(dim),
		Lo:   -32.768,
		Hi:   32.768,
		Eval: func(x []float64) float64 {
			var (
				n  = float64(len(x))
				sq = floats.Dot(x, x)
				sc float64
			)
			for _, v := range x {
				sc += math.Cos(2 * math.Pi * v)
			}
			return -20*math.Exp(-0.2*math.Sqrt(sq/n)) - math.Exp(sc/n) + 20 + math.E
		},
	}
}

// Griewank is 1 + Σx²/4000 - Πcos(x_i/√(i+1)), domain [-600, 600],
// optimum 0 at the origin.
func Griewank(dim int) *Continuous {
	return &Continuous{
		Name: "griewank",
		Dim:  clampDim(dim),
		Lo:   -600,
		Hi:   600,
		Eval: func(x []float64) float64 {
			var (
				sum  = floats.Dot(x, x) / 4000
				prod = 1.0
			)
			for i, v := range x {
				prod *= math.Cos(v / math.Sqrt(float64(i+1)))
			}
			return 1 + sum - prod
		},
	}
}

// Bounds expands the scalar box into per-dimension slices, the shape the
// differential evolution and particle swarm options expect.
//
// Complexity: O(dim).
func (c *Continuous) Bounds() (lo, hi []float64) {
	lo = make([]float64, c.Dim)
	hi = make([]float64, c.Dim)
	for i := 0; i < c.Dim; i++ {
		lo[i] = c.Lo
		hi[i] = c.Hi
	}
	return lo, hi
}

// Problem bundles the benchmark into the engine's callback contract:
// uniform generation, Gaussian-step neighbors, strength-scaled
// perturbation, BLX-α crossover and Gaussian mutation, all clamped to the
// domain box. LocalSearch is left nil so drivers fall back to the builtin
// descent.
//
// Complexity: O(dim) for the bound slices; callbacks are O(dim) per call.
func (c *Continuous) Problem() solve.Problem[float64] {
	var (
		lo, hi = c.Bounds()
		span   = c.Hi - c.Lo
	)
	return solve.Problem[float64]{
		Size:      c.Dim,
		Objective: c.Eval,
		Neighbor: func(dst, src []float64, rng *solve.RNG) {
			copy(dst, src)
			i := rng.Intn(len(dst))
			dst[i] = clampCoord(dst[i]+neighborSigmaShare*span*rng.Gaussian(), c.Lo, c.Hi)
		},
		Perturb: func(dst, src []float64, strength float64, rng *solve.RNG) {
			copy(dst, src)
			for m := perturbMoves(strength, len(dst)); m > 0; m-- {
				i := rng.Intn(len(dst))
				dst[i] = clampCoord(dst[i]+perturbSigmaShare*span*rng.Gaussian(), c.Lo, c.Hi)
			}
		},
		Generate: func(dst []float64, rng *solve.RNG) {
			for i := range dst {
				dst[i] = c.Lo + rng.Uniform()*span
			}
		},
		Crossover: genetic.BlendCrossover(blendAlpha, lo, hi),
		Mutate:    genetic.GaussianMutate(perturbSigmaShare*span, lo, hi),
	}
}

// clampDim floors the dimensionality at 2 (Rosenbrock needs a pair).
//
// Complexity: O(1).
func clampDim(dim int) int {
	if dim < 2 {
		return 2
	}
	return dim
}

// clampCoord pins x into [lo, hi].
//
// Complexity: O(1).
func clampCoord(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
