// Package grasp - configuration surface.
package grasp

import "github.com/katalvlaran/lvlopt/solve"

// Construct builds one greedy-randomized genome into dst. alpha grades the
// greediness: 0 is pure greed, 1 is pure randomness. Implementations draw
// randomness only from rng so runs stay reproducible.
type Construct[E solve.Gene] func(dst []E, alpha float64, rng *solve.RNG)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultAlpha is the restricted-candidate-list greediness.
	DefaultAlpha = 0.3

	// DefaultRestarts caps the run.
	DefaultRestarts = 100

	// DefaultReactivePeriod is the restart count between re-weightings
	// of a reactive α pool.
	DefaultReactivePeriod = 20

	// reactiveFloor keeps every pooled α selectable after re-weighting.
	reactiveFloor = 0.1
)

// Options configures one GRASP run.
type Options[E solve.Gene] struct {
	// Alpha is the construction greediness in [0, 1]; out-of-range
	// values clamp to the nearest bound. Ignored while Alphas is set.
	Alpha float64

	// Restarts caps the run; one iteration is one restart. Negative
	// values clamp to zero.
	Restarts int

	// Construct builds each restart's starting genome. Optional: when
	// nil the driver falls back to Problem.Generate and α has no effect
	// on construction.
	Construct Construct[E]

	// Alphas enables reactive α selection: every restart draws its
	// greediness from this pool with probability proportional to the
	// historical quality of the solutions each value produced. Empty
	// disables the scheme and Alpha is used throughout. Pool values
	// clamp into [0, 1].
	Alphas []float64

	// ReactivePeriod is the number of restarts between re-weightings of
	// the reactive pool. Values below 1 clamp to 1.
	ReactivePeriod int

	// LocalSearchTries is the per-round sample budget of the builtin
	// descent used when Problem.LocalSearch is nil; 0 derives it from
	// the genome size. Negative values clamp to zero.
	LocalSearchTries int

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: α=0.3, 100 restarts,
// fixed α (no reactive pool), re-weighting period 20, derived descent
// budget, minimization, seed 0.
func DefaultOptions[E solve.Gene]() Options[E] {
	return Options[E]{
		Alpha:          DefaultAlpha,
		Restarts:       DefaultRestarts,
		ReactivePeriod: DefaultReactivePeriod,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy. The reactive pool is copied before clamping so
// the caller's slice stays untouched.
//
// Complexity: O(len(Alphas)).
func (o Options[E]) normalized() Options[E] {
	o.Alpha = clampUnit(o.Alpha)
	if o.Restarts < 0 {
		o.Restarts = 0
	}
	if len(o.Alphas) > 0 {
		pool := make([]float64, len(o.Alphas))
		for i, a := range o.Alphas {
			pool[i] = clampUnit(a)
		}
		o.Alphas = pool
	}
	if o.ReactivePeriod < 1 {
		o.ReactivePeriod = 1
	}
	if o.LocalSearchTries < 0 {
		o.LocalSearchTries = 0
	}
	return o
}

// clampUnit pins v into [0, 1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
