// Package memetic - configuration surface.
package memetic

import "github.com/katalvlaran/lvlopt/solve"

// Learning names what a refinement leaves behind in the population.
type Learning int

const (
	// Lamarckian writes the improved genotype and cost back.
	Lamarckian Learning = iota

	// Baldwinian credits the improved fitness for selection only; the
	// genotype stays as generated.
	Baldwinian
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultPopulationSize is the number of individuals per generation.
	DefaultPopulationSize = 30

	// DefaultGenerations caps the number of generations.
	DefaultGenerations = 200

	// DefaultCrossoverRate is the per-pair recombination probability.
	DefaultCrossoverRate = 0.9

	// DefaultMutationRate is the per-gene mutation probability.
	DefaultMutationRate = 0.1

	// DefaultElitismCount is the number of verbatim survivors.
	DefaultElitismCount = 2

	// DefaultTournamentK is the tournament size.
	DefaultTournamentK = 3

	// minPopulation is the smallest population the driver will run with.
	minPopulation = 4
)

// Options configures one memetic run.
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

	// ElitismCount is the number of top-fitness individuals copied
	// verbatim into the next generation. Clamped to [0, PopulationSize/2].
	ElitismCount int

	// TournamentK is the tournament size. Clamped to at least 2.
	TournamentK int

	// Learning picks the refinement mode. Unknown values clamp to
	// Lamarckian.
	Learning Learning

	// LocalSearchEvery is the generation cadence of the learning step:
	// 1 refines every generation, 3 every third. The first generation
	// always learns. Values below 1 clamp to 1.
	LocalSearchEvery int

	// LocalSearchTries is the per-round sample budget of the builtin
	// descent used when Problem.LocalSearch is nil; 0 picks the
	// descent's own default. Negative values clamp to zero.
	LocalSearchTries int

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: population 30,
// 200 generations, pc=0.9, pm=0.1, elitism 2, tournament k=3,
// Lamarckian learning every generation, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		PopulationSize:   DefaultPopulationSize,
		Generations:      DefaultGenerations,
		CrossoverRate:    DefaultCrossoverRate,
		MutationRate:     DefaultMutationRate,
		ElitismCount:     DefaultElitismCount,
		TournamentK:      DefaultTournamentK,
		Learning:         Lamarckian,
		LocalSearchEvery: 1,
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
	if o.TournamentK < 2 {
		o.TournamentK = 2
	}
	if o.Learning < Lamarckian || o.Learning > Baldwinian {
		o.Learning = Lamarckian
	}
	if o.LocalSearchEvery < 1 {
		o.LocalSearchEvery = 1
	}
	if o.LocalSearchTries < 0 {
		o.LocalSearchTries = 0
	}
	return o
}

// clamp01 pins v into [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
