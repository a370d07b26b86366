// Package tabu - configuration surface.
package tabu

import "github.com/katalvlaran/lvlopt/solve"

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultTenure is the tabu-list capacity.
	DefaultTenure = 7

	// DefaultNeighborsPerIter is the candidate sample size per iteration.
	DefaultNeighborsPerIter = 20

	// DefaultMaxIterations caps the walk.
	DefaultMaxIterations = 1000

	// DefaultMinTenure floors the reactive tenure.
	DefaultMinTenure = 3

	// DefaultMaxTenure caps the reactive tenure.
	DefaultMaxTenure = 50

	// DefaultIntensificationTrigger is the stagnation length that sends
	// the walk back to the best-known solution.
	DefaultIntensificationTrigger = 50

	// DefaultDiversificationTrigger is the stagnation length that
	// regenerates the walk from scratch.
	DefaultDiversificationTrigger = 100

	// DefaultFrequencyPenalty is the per-visit cost penalty applied to
	// candidates when diversification is enabled.
	DefaultFrequencyPenalty = 0.1

	// DefaultFrequencyCapacity bounds the frequency memory.
	DefaultFrequencyCapacity = 1024
)

// Options configures one tabu-search run.
type Options struct {
	// Tenure is the tabu-list capacity: how many recent states stay
	// forbidden. Clamped to at least 1.
	Tenure int

	// NeighborsPerIter is how many candidates are sampled around the
	// current solution each iteration. Clamped to at least 1.
	NeighborsPerIter int

	// MaxIterations caps the walk. Negative values clamp to zero.
	MaxIterations int

	// Aspiration admits tabu candidates that dominate the best-known
	// cost, overriding their tabu status.
	Aspiration bool

	// ReactiveTenure lets the tenure react to the walk: it grows by one
	// when an already-visited state is selected again (cycling evidence)
	// and shrinks by one on improvement, clamped to
	// [MinTenure, MaxTenure]. The list is resized in place, keeping its
	// most recent entries.
	ReactiveTenure bool

	// MinTenure floors the reactive tenure. Clamped to at least 1.
	MinTenure int

	// MaxTenure caps the reactive tenure. Clamped to at least MinTenure.
	MaxTenure int

	// Intensification jumps back to the best-known solution after
	// IntensificationTrigger iterations without improvement. The jump
	// fires once per stagnation streak.
	Intensification bool

	// IntensificationTrigger is the stagnation length for the jump.
	// Non-positive values clamp to the default.
	IntensificationTrigger int

	// Diversification regenerates the current solution from scratch
	// after DiversificationTrigger iterations without improvement and
	// restarts the stagnation streak. It also switches the candidate
	// ranking to frequency-penalized scores.
	Diversification bool

	// DiversificationTrigger is the stagnation length for the restart.
	// Non-positive values clamp to the default.
	DiversificationTrigger int

	// FrequencyPenalty is the score penalty per recorded visit, applied
	// while Diversification is enabled. Negative values clamp to zero.
	FrequencyPenalty float64

	// FrequencyCapacity bounds the frequency memory; the least-frequent
	// entry is evicted on overflow. Non-positive values clamp to the
	// default.
	FrequencyCapacity int

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: tenure 7, 20 neighbors
// per iteration, 1000 iterations, aspiration on, every adaptive mechanism
// off, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		Tenure:                 DefaultTenure,
		NeighborsPerIter:       DefaultNeighborsPerIter,
		MaxIterations:          DefaultMaxIterations,
		Aspiration:             true,
		MinTenure:              DefaultMinTenure,
		MaxTenure:              DefaultMaxTenure,
		IntensificationTrigger: DefaultIntensificationTrigger,
		DiversificationTrigger: DefaultDiversificationTrigger,
		FrequencyPenalty:       DefaultFrequencyPenalty,
		FrequencyCapacity:      DefaultFrequencyCapacity,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy.
//
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.Tenure < 1 {
		o.Tenure = 1
	}
	if o.NeighborsPerIter < 1 {
		o.NeighborsPerIter = 1
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.MinTenure < 1 {
		o.MinTenure = 1
	}
	if o.MaxTenure < o.MinTenure {
		o.MaxTenure = o.MinTenure
	}
	if o.ReactiveTenure {
		// The starting tenure must sit inside the reactive band.
		if o.Tenure < o.MinTenure {
			o.Tenure = o.MinTenure
		}
		if o.Tenure > o.MaxTenure {
			o.Tenure = o.MaxTenure
		}
	}
	if o.IntensificationTrigger <= 0 {
		o.IntensificationTrigger = DefaultIntensificationTrigger
	}
	if o.DiversificationTrigger <= 0 {
		o.DiversificationTrigger = DefaultDiversificationTrigger
	}
	if o.FrequencyPenalty < 0 {
		o.FrequencyPenalty = 0
	}
	if o.FrequencyCapacity <= 0 {
		o.FrequencyCapacity = DefaultFrequencyCapacity
	}
	return o
}
