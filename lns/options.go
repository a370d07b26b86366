// Package lns - configuration surface.
package lns

import (
	"errors"

	"github.com/katalvlaran/lvlopt/solve"
)

// ErrNilOperator reports an Operators entry missing its destroy or repair
// half.
var ErrNilOperator = errors.New("lns: operator with nil destroy or repair")

// Destroy writes a partially dismantled copy of src into dst, removing a
// degree-sized fraction of the solution. How "removed" is represented is
// the collaborator's choice; the engine only promises to call Repair on
// dst before evaluating it.
type Destroy[E solve.Gene] func(dst, src []E, degree float64, rng *solve.RNG)

// Repair completes a destroyed genome in place, restoring validity.
type Repair[E solve.Gene] func(data []E, rng *solve.RNG)

// Operator pairs one destroy heuristic with the repair that undoes it.
type Operator[E solve.Gene] struct {
	Destroy Destroy[E]
	Repair  Repair[E]
}

// Acceptance names the policy applied to each rebuilt solution.
type Acceptance int

const (
	// AcceptImproving moves only on strict improvement.
	AcceptImproving Acceptance = iota

	// AcceptAnnealing moves on improvement, and on worsening with the
	// Metropolis probability under a private geometric temperature.
	AcceptAnnealing
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultDegree is the destroyed fraction of the solution.
	DefaultDegree = 0.3

	// DefaultMaxIterations caps the run.
	DefaultMaxIterations = 1000

	// DefaultInitialTemp starts the annealing acceptance schedule.
	DefaultInitialTemp = 10.0

	// DefaultCooling is the annealing acceptance decay per iteration.
	DefaultCooling = 0.995

	// DefaultSegment is the iteration count between adaptive
	// re-weightings.
	DefaultSegment = 50

	// DefaultReaction is the learning rate λ of the adaptive weights.
	DefaultReaction = 0.1

	// Ropke-Pisinger operator scores: a new global best earns the most,
	// merely being accepted still earns more than improving the current
	// solution because diversification is worth paying for.
	scoreNewBest   = 33.0
	scoreImproving = 9.0
	scoreAccepted  = 13.0

	// weightFloor keeps every operator selectable no matter how badly
	// its segment went.
	weightFloor = 0.01

	// minTemp floors the annealing temperature so the Metropolis ratio
	// stays finite.
	minTemp = 1e-12
)

// Options configures one LNS run.
type Options[E solve.Gene] struct {
	// Degree is the destroyed fraction in (0, 1]. Non-positive values
	// clamp to the default, values above 1 clamp to 1.
	Degree float64

	// MaxIterations caps the run; one iteration is one destroy/repair
	// round. Negative values clamp to zero.
	MaxIterations int

	// Operators lists the destroy/repair pairs. Empty degrades to
	// Problem.Perturb with Degree as the strength. An entry with a nil
	// half is rejected with ErrNilOperator.
	Operators []Operator[E]

	// Acceptance picks the move policy. Unknown values clamp to
	// AcceptImproving.
	Acceptance Acceptance

	// InitialTemp starts the AcceptAnnealing schedule. Non-positive
	// values clamp to the default.
	InitialTemp float64

	// Cooling multiplies the acceptance temperature every iteration.
	// Values outside (0, 1) clamp to the default.
	Cooling float64

	// Adaptive enables ALNS re-weighting of the operator roulette.
	Adaptive bool

	// Segment is the iteration count between re-weightings. Values
	// below 1 clamp to the default.
	Segment int

	// Reaction is the learning rate λ in [0, 1]; out-of-range values
	// clamp to the nearest bound.
	Reaction float64

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: degree 0.3, 1000
// iterations, no operators (Perturb fallback), strictly-improving
// acceptance, T₀=10 with cooling 0.995 when annealing is selected,
// non-adaptive, segment 50, λ=0.1, minimization, seed 0.
func DefaultOptions[E solve.Gene]() Options[E] {
	return Options[E]{
		Degree:        DefaultDegree,
		MaxIterations: DefaultMaxIterations,
		InitialTemp:   DefaultInitialTemp,
		Cooling:       DefaultCooling,
		Segment:       DefaultSegment,
		Reaction:      DefaultReaction,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy.
//
// Complexity: O(1).
func (o Options[E]) normalized() Options[E] {
	if o.Degree <= 0 {
		o.Degree = DefaultDegree
	}
	if o.Degree > 1 {
		o.Degree = 1
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.Acceptance < AcceptImproving || o.Acceptance > AcceptAnnealing {
		o.Acceptance = AcceptImproving
	}
	if o.InitialTemp <= 0 {
		o.InitialTemp = DefaultInitialTemp
	}
	if o.Cooling <= 0 || o.Cooling >= 1 {
		o.Cooling = DefaultCooling
	}
	if o.Segment < 1 {
		o.Segment = DefaultSegment
	}
	if o.Reaction < 0 {
		o.Reaction = 0
	}
	if o.Reaction > 1 {
		o.Reaction = 1
	}
	return o
}
