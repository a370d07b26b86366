// Package genetic - configuration surface.
package genetic

import "github.com/katalvlaran/lvlopt/solve"

// Selection names the parent-selection rule.
type Selection int

const (
	// Tournament draws TournamentK individuals and keeps the fittest.
	Tournament Selection = iota

	// Roulette selects fitness-proportionally, with an offset that keeps
	// the rule well defined under minimization and negative costs.
	Roulette

	// Rank selects by linear rank weight, ignoring cost magnitudes.
	Rank
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultPopulationSize is the number of individuals per generation.
	DefaultPopulationSize = 50

	// DefaultGenerations caps the number of generations.
	DefaultGenerations = 500

	// DefaultCrossoverRate is the per-pair recombination probability.
	DefaultCrossoverRate = 0.8

	// DefaultMutationRate is the per-gene mutation probability.
	DefaultMutationRate = 0.05

	// DefaultElitismCount is the number of verbatim survivors.
	DefaultElitismCount = 2

	// DefaultTournamentK is the tournament size.
	DefaultTournamentK = 3

	// DefaultAdaptiveMinMutation floors the adaptive mutation rate.
	DefaultAdaptiveMinMutation = 0.01

	// DefaultAdaptiveMaxMutation caps the adaptive mutation rate.
	DefaultAdaptiveMaxMutation = 0.25

	// minPopulation is the smallest population the driver will run with.
	minPopulation = 4
)

// Options configures one evolution run.
type Options struct {
	// PopulationSize is the number of individuals. Clamped to an even
	// value of at least 4.
	PopulationSize int

	// Generations caps the generational loop. Negative values clamp to
	// zero (the evaluated initial population's best is returned).
	Generations int

	// CrossoverRate is the probability a selected pair recombines;
	// otherwise both parents are cloned. Clamped to [0,1].
	CrossoverRate float64

	// MutationRate is the per-gene mutation probability handed to the
	// mutate callback. Clamped to [0,1].
	MutationRate float64

	// ElitismCount is the number of best individuals copied verbatim
	// into the next generation. Clamped to [0, PopulationSize/2].
	ElitismCount int

	// Selection picks the parent-selection rule. Unknown values clamp
	// to Tournament.
	Selection Selection

	// TournamentK is the tournament size. Clamped to at least 2.
	TournamentK int

	// AdaptiveMutation steers the mutation rate by population diversity:
	// a tight population raises it toward AdaptiveMaxMutation, a spread
	// one lowers it toward AdaptiveMinMutation.
	AdaptiveMutation bool

	// AdaptiveMinMutation floors the adaptive rate. Clamped to [0,1].
	AdaptiveMinMutation float64

	// AdaptiveMaxMutation caps the adaptive rate. Clamped to [0,1] and
	// swapped with the floor when inverted.
	AdaptiveMaxMutation float64

	// LocalSearch refines every non-elite child (memetic mode) using
	// Problem.LocalSearch, or the builtin descent when that is nil.
	LocalSearch bool

	// LocalSearchTries is the per-round sample budget of the builtin
	// descent; 0 picks the descent's own default.
	LocalSearchTries int

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: population 50,
// 500 generations, pc=0.8, pm=0.05, elitism 2, tournament k=3,
// adaptive mutation off, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		PopulationSize:      DefaultPopulationSize,
		Generations:         DefaultGenerations,
		CrossoverRate:       DefaultCrossoverRate,
		MutationRate:        DefaultMutationRate,
		ElitismCount:        DefaultElitismCount,
		Selection:           Tournament,
		TournamentK:         DefaultTournamentK,
		AdaptiveMinMutation: DefaultAdaptiveMinMutation,
		AdaptiveMaxMutation: DefaultAdaptiveMaxMutation,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy.
//
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.PopulationSize < minPopulation {
		o.PopulationSize = minPopulation
	}
	if o.PopulationSize%2 != 0 {
		o.PopulationSize++
	}
	if o.Generations < 0 {
		o.Generations = 0
	}
	o.CrossoverRate = clamp01(o.CrossoverRate)
	o.MutationRate = clamp01(o.MutationRate)
	if o.ElitismCount < 0 {
		o.ElitismCount = 0
	}
	if o.ElitismCount > o.PopulationSize/2 {
		o.ElitismCount = o.PopulationSize / 2
	}
	if o.Selection < Tournament || o.Selection > Rank {
		o.Selection = Tournament
	}
	if o.TournamentK < 2 {
		o.TournamentK = 2
	}
	o.AdaptiveMinMutation = clamp01(o.AdaptiveMinMutation)
	o.AdaptiveMaxMutation = clamp01(o.AdaptiveMaxMutation)
	if o.AdaptiveMinMutation > o.AdaptiveMaxMutation {
		o.AdaptiveMinMutation, o.AdaptiveMaxMutation = o.AdaptiveMaxMutation, o.AdaptiveMinMutation
	}
	if o.LocalSearchTries < 0 {
		o.LocalSearchTries = 0
	}
	return o
}

// clamp01 pins x into [0,1].
//
// Complexity: O(1).
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
