// Package vns - configuration surface.
package vns

import "github.com/katalvlaran/lvlopt/solve"

// Variant names the improvement step run after each shake.
type Variant int

const (
	// Basic refines every shaken point with local search.
	Basic Variant = iota

	// Reduced skips refinement entirely; only the shake explores.
	Reduced

	// General runs variable neighborhood descent: a first-improvement
	// sweep across the whole k ladder after each shake.
	General
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultKMax is the largest neighborhood index.
	DefaultKMax = 5

	// DefaultMaxIterations caps the run.
	DefaultMaxIterations = 500

	// vndMaxRounds bounds a single variable neighborhood descent so a
	// noisy ladder cannot stall an iteration.
	vndMaxRounds = 100

	// vndMinTries floors the per-rung sample count for tiny genomes.
	vndMinTries = 8
)

// Options configures one VNS run.
type Options struct {
	// Variant picks the improvement step. Unknown values clamp to Basic.
	Variant Variant

	// KMax is the largest neighborhood index; the shake strength cycles
	// through 1..KMax. Values below 1 clamp to 1.
	KMax int

	// MaxIterations caps the run; one iteration is one shake round.
	// Negative values clamp to zero.
	MaxIterations int

	// LocalSearchTries is the per-round sample budget of the builtin
	// descent and of each rung of the General ladder; 0 derives it from
	// the genome size. Negative values clamp to zero.
	LocalSearchTries int

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: Basic variant, KMax=5,
// 500 iterations, derived descent budget, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		Variant:       Basic,
		KMax:          DefaultKMax,
		MaxIterations: DefaultMaxIterations,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy.
//
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.Variant < Basic || o.Variant > General {
		o.Variant = Basic
	}
	if o.KMax < 1 {
		o.KMax = 1
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.LocalSearchTries < 0 {
		o.LocalSearchTries = 0
	}
	return o
}
