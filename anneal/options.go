// Package anneal - configuration surface.
//
// Options follows the house convention: a plain record with documented
// defaults, a DefaultOptions constructor, and silent clamping of
// out-of-range tuning values (documented leniency, not a validated
// contract). Structural mistakes (missing callbacks, unknown direction)
// are reported as sentinels by Anneal instead.
package anneal

import "github.com/katalvlaran/lvlopt/solve"

// Schedule selects the cooling rule applied after each Markov chain.
type Schedule int

const (
	// Geometric multiplies the temperature by Alpha each step.
	Geometric Schedule = iota

	// Linear subtracts a fixed decrement sized so the schedule spans
	// roughly a thousand steps from the start to the final temperature.
	Linear

	// Logarithmic follows T = T₀/ln(2+step), the slowest classic schedule.
	Logarithmic

	// Adaptive picks the cooling factor from the recent acceptance rate:
	// fast cooling while acceptance is above the target band, near-flat
	// cooling when the walk is already freezing.
	Adaptive
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultInitialTemp is the starting temperature T₀.
	DefaultInitialTemp = 100.0

	// DefaultFinalTemp stops the run once the temperature reaches it.
	DefaultFinalTemp = 0.001

	// DefaultAlpha is the geometric cooling factor.
	DefaultAlpha = 0.95

	// DefaultMaxIterations caps the number of proposals.
	DefaultMaxIterations = 10000

	// DefaultChainLength is the number of proposals per temperature step.
	DefaultChainLength = 50

	// DefaultReheatFactor multiplies the temperature on a reheat.
	DefaultReheatFactor = 1.5

	// DefaultReheatThreshold is the acceptance rate below which a frozen
	// walk may reheat.
	DefaultReheatThreshold = 0.1

	// DefaultTargetAcceptance is the initial acceptance rate targeted by
	// auto-calibration and the adaptive schedule.
	DefaultTargetAcceptance = 0.8
)

// Options configures one annealing run. The record is immutable during the
// run; clamped copies are made internally.
type Options struct {
	// InitialTemp is T₀. Non-positive values clamp to DefaultInitialTemp.
	InitialTemp float64

	// FinalTemp ends the run when T reaches it. Negative values clamp to
	// zero; values at or above InitialTemp clamp to InitialTemp·1e-5.
	FinalTemp float64

	// Alpha is the geometric cooling factor. Values outside (0,1) clamp
	// to DefaultAlpha.
	Alpha float64

	// Schedule selects the cooling rule. Unknown values clamp to Geometric.
	Schedule Schedule

	// MaxIterations caps the number of proposals. Negative values clamp
	// to zero (a zero-iteration run returns the evaluated initial
	// solution).
	MaxIterations int

	// ChainLength is the Markov chain length: proposals per temperature
	// step. Values below 1 clamp to 1.
	ChainLength int

	// Reheat enables reheating: when the chain acceptance rate drops
	// below ReheatThreshold while T is under half its run-start value,
	// T is multiplied by ReheatFactor (capped at the run-start value)
	// instead of cooling.
	Reheat bool

	// ReheatFactor multiplies T on a reheat. Values at or below 1 clamp
	// to DefaultReheatFactor.
	ReheatFactor float64

	// ReheatThreshold is the acceptance rate that triggers reheating.
	// Values outside (0,1) clamp to DefaultReheatThreshold.
	ReheatThreshold float64

	// AutoCalibrate estimates T₀ before the run by sampling neighbor
	// deltas and solving exp(−meanΔ/T₀) = TargetAcceptance.
	AutoCalibrate bool

	// TargetAcceptance is the acceptance rate targeted by calibration and
	// the adaptive schedule. Values outside (0,1) clamp to
	// DefaultTargetAcceptance.
	TargetAcceptance float64

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: T₀=100, T_min=0.001,
// α=0.95, geometric cooling, 10000 iterations, chain length 50, no
// reheating, no calibration, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		InitialTemp:      DefaultInitialTemp,
		FinalTemp:        DefaultFinalTemp,
		Alpha:            DefaultAlpha,
		Schedule:         Geometric,
		MaxIterations:    DefaultMaxIterations,
		ChainLength:      DefaultChainLength,
		ReheatFactor:     DefaultReheatFactor,
		ReheatThreshold:  DefaultReheatThreshold,
		TargetAcceptance: DefaultTargetAcceptance,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy.
//
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.InitialTemp <= 0 {
		o.InitialTemp = DefaultInitialTemp
	}
	if o.FinalTemp < 0 {
		o.FinalTemp = 0
	}
	if o.FinalTemp >= o.InitialTemp {
		o.FinalTemp = o.InitialTemp * 1e-5
	}
	if o.Alpha <= 0 || o.Alpha >= 1 {
		o.Alpha = DefaultAlpha
	}
	if o.Schedule < Geometric || o.Schedule > Adaptive {
		o.Schedule = Geometric
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.ChainLength < 1 {
		o.ChainLength = 1
	}
	if o.ReheatFactor <= 1 {
		o.ReheatFactor = DefaultReheatFactor
	}
	if o.ReheatThreshold <= 0 || o.ReheatThreshold >= 1 {
		o.ReheatThreshold = DefaultReheatThreshold
	}
	if o.TargetAcceptance <= 0 || o.TargetAcceptance >= 1 {
		o.TargetAcceptance = DefaultTargetAcceptance
	}
	return o
}
