// Package swarm - configuration surface.
package swarm

import "github.com/katalvlaran/lvlopt/solve"

// Inertia names the velocity damping regime.
type Inertia int

const (
	// InertiaConstant keeps Weight fixed for the whole run.
	InertiaConstant Inertia = iota

	// InertiaLinear decays the weight from Weight to WeightEnd across
	// the iteration budget.
	InertiaLinear

	// InertiaConstriction applies Clerc's constriction coefficient χ
	// derived from φ = C1+C2 (forced above 4 when necessary) instead of
	// a plain inertia weight.
	InertiaConstriction
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultParticles is the swarm size.
	DefaultParticles = 30

	// DefaultMaxIterations caps the flight.
	DefaultMaxIterations = 1000

	// DefaultWeight is the constant inertia weight.
	DefaultWeight = 0.729

	// DefaultWeightEnd is the linear regime's final weight.
	DefaultWeightEnd = 0.4

	// DefaultCognitive is the pull toward a particle's own best, c1.
	DefaultCognitive = 1.49445

	// DefaultSocial is the pull toward the swarm's best, c2.
	DefaultSocial = 1.49445

	// constrictionPhi replaces degenerate φ ≤ 4 in constriction mode.
	constrictionPhi = 4.1

	// vmaxShare derives the velocity clamp from the domain span when
	// VMax is unset.
	vmaxShare = 0.5
)

// Options configures one swarm run.
type Options struct {
	// Particles is the swarm size. Clamped to at least 1.
	Particles int

	// MaxIterations caps the flight. Negative values clamp to zero.
	MaxIterations int

	// Weight is the inertia w (the starting weight under InertiaLinear).
	// Negative values clamp to zero.
	Weight float64

	// WeightEnd is the final weight under InertiaLinear. Negative values
	// clamp to zero.
	WeightEnd float64

	// Cognitive is c1, the pull toward the particle's own best.
	// Negative values clamp to zero.
	Cognitive float64

	// Social is c2, the pull toward the swarm's best. Negative values
	// clamp to zero.
	Social float64

	// Mode picks the inertia regime. Unknown values clamp to
	// InertiaConstant.
	Mode Inertia

	// VMax clamps every velocity coordinate to [−VMax, VMax]. Zero or
	// negative derives the clamp per coordinate from the box span
	// (half the span); without bounds the velocity stays unclamped.
	VMax float64

	// Lo and Hi optionally bound every position coordinate; nil means
	// unbounded. Short slices bound only the coordinates they cover.
	Lo, Hi []float64

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: 30 particles, 1000
// iterations, w=0.729, c1=c2=1.49445, constant inertia, derived velocity
// clamp, unbounded, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		Particles:     DefaultParticles,
		MaxIterations: DefaultMaxIterations,
		Weight:        DefaultWeight,
		WeightEnd:     DefaultWeightEnd,
		Cognitive:     DefaultCognitive,
		Social:        DefaultSocial,
		Mode:          InertiaConstant,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy.
//
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.Particles < 1 {
		o.Particles = 1
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.Weight < 0 {
		o.Weight = 0
	}
	if o.WeightEnd < 0 {
		o.WeightEnd = 0
	}
	if o.Cognitive < 0 {
		o.Cognitive = 0
	}
	if o.Social < 0 {
		o.Social = 0
	}
	if o.Mode < InertiaConstant || o.Mode > InertiaConstriction {
		o.Mode = InertiaConstant
	}
	if o.VMax < 0 {
		o.VMax = 0
	}
	return o
}
