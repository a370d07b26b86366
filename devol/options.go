// Package devol - configuration surface.
package devol

import "github.com/katalvlaran/lvlopt/solve"

// Strategy names the donor construction rule.
type Strategy int

const (
	// Rand1 is x_{r1} + F·(x_{r2} − x_{r3}).
	Rand1 Strategy = iota

	// Best1 is x_best + F·(x_{r1} − x_{r2}).
	Best1

	// CurrentToBest1 is x_i + F·(x_best − x_i) + F·(x_{r1} − x_{r2}).
	CurrentToBest1

	// Rand2 is x_{r1} + F·(x_{r2} − x_{r3}) + F·(x_{r4} − x_{r5}).
	Rand2

	// Best2 is x_best + F·(x_{r1} − x_{r2}) + F·(x_{r3} − x_{r4}).
	Best2
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultPopulationSize is the number of vectors in the population.
	DefaultPopulationSize = 50

	// DefaultGenerations caps the generational loop.
	DefaultGenerations = 1000

	// DefaultWeight is the difference scale F.
	DefaultWeight = 0.5

	// DefaultCrossoverRate is the binomial crossover probability CR.
	DefaultCrossoverRate = 0.9

	// minPopulation keeps the largest donor arity (five distinct vectors
	// plus the target) satisfiable.
	minPopulation = 6

	// maxWeight caps F; larger values only amplify divergence.
	maxWeight = 2.0
)

// Options configures one evolution run.
type Options struct {
	// PopulationSize is the number of vectors. Clamped to at least 6 so
	// every strategy can draw its distinct donors.
	PopulationSize int

	// Generations caps the generational loop. Negative values clamp to
	// zero (the evaluated initial population's best is returned).
	Generations int

	// Weight is the difference scale F. Clamped to [0, 2].
	Weight float64

	// CrossoverRate is the binomial crossover probability CR, applied
	// per coordinate. Clamped to [0, 1].
	CrossoverRate float64

	// Strategy picks the donor rule. Unknown values clamp to Rand1.
	Strategy Strategy

	// Lo and Hi optionally bound every coordinate; nil means unbounded.
	// Short slices bound only the coordinates they cover.
	Lo, Hi []float64

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: population 50, 1000
// generations, F=0.5, CR=0.9, Rand1, unbounded, minimization, seed 0.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		Weight:         DefaultWeight,
		CrossoverRate:  DefaultCrossoverRate,
		Strategy:       Rand1,
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
	if o.Generations < 0 {
		o.Generations = 0
	}
	if o.Weight < 0 {
		o.Weight = 0
	}
	if o.Weight > maxWeight {
		o.Weight = maxWeight
	}
	if o.CrossoverRate < 0 {
		o.CrossoverRate = 0
	}
	if o.CrossoverRate > 1 {
		o.CrossoverRate = 1
	}
	if o.Strategy < Rand1 || o.Strategy > Best2 {
		o.Strategy = Rand1
	}
	return o
}
