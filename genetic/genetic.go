// Package genetic - generational evolution driver.
//
// This file implements the full GA loop: sorted populations, elitism,
// pairwise crossover, per-child mutation, optional memetic local search
// and diversity-driven adaptive mutation.
//
// Goals:
//   - Determinism: selection, recombination and mutation draw only from
//     the run's RNG; same seed ⇒ identical evolution.
//   - Arena discipline: two population arenas allocated once and swapped
//     between generations; no per-generation allocation.
//   - Elitism correctness: elite survivors are verbatim copies, never
//     mutated or refined, so the best cost can only improve.
//
// Contracts:
//   - Requires Problem.Objective, Problem.Generate, Problem.Crossover,
//     Problem.Mutate; memetic mode additionally needs Problem.LocalSearch
//     or Problem.Neighbor (for the builtin descent).
//   - One iteration = one generation; the trace records best-so-far once
//     per generation. Termination: Generations generations.
//
// Complexity: O(Generations · PopulationSize · (eval + operators)) time,
// O(PopulationSize · n) space.
package genetic

import (
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Adaptive mutation shape: relative diversity below adaptivePivot counts
// as "tight" (rate is pulled toward the ceiling), anything above as
// "spread" (rate is pulled toward the floor); adaptiveStep is the pull.
const (
	adaptivePivot = 0.1
	adaptiveStep  = 0.5
)

// Evolve runs a generational genetic algorithm on p and returns the best
// individual ever observed.
//
// Selection draws parents per Options.Selection, elites survive verbatim,
// the remaining slots are filled pairwise: crossover with probability
// CrossoverRate (else parent clones), then the mutate callback at the
// current mutation rate, then optional local search in memetic mode.
//
// Errors: solve.ErrZeroSize, solve.ErrMissingObjective,
// solve.ErrMissingGenerate, solve.ErrMissingCrossover,
// solve.ErrMissingMutate, solve.ErrMissingNeighbor (memetic mode without
// a local-search callback), solve.ErrBadDirection.
//
// Complexity: O(Generations · PopulationSize · (eval + operators)).
func Evolve[E solve.Gene](p solve.Problem[E], opts Options) (solve.Result[E], error) {
	need := solve.NeedObjective | solve.NeedGenerate | solve.NeedCrossover | solve.NeedMutate
	if opts.LocalSearch && p.LocalSearch == nil {
		need |= solve.NeedNeighbor
	}
	if err := p.Validate(need); err != nil {
		return solve.Result[E]{}, err
	}
	if !opts.Direction.Valid() {
		return solve.Result[E]{}, solve.ErrBadDirection
	}
	o := opts.normalized()

	var (
		begin = time.Now()
		rng   = solve.NewRNG(o.Seed)
		dir   = o.Direction
		size  = o.PopulationSize
		trace = solve.NewTrace(o.Generations)
		evals int
	)

	// Two arenas swapped between generations.
	pop := newArena[E](size, p.Size, dir)
	next := newArena[E](size, p.Size, dir)

	for i := 0; i < size; i++ {
		p.Generate(pop[i].Data, rng)
		pop[i].Cost = solve.Round1e9(p.Objective(pop[i].Data))
		evals++
	}
	sortByFitness(pop, dir)

	best := pop[0].Clone()

	var (
		rate    = o.MutationRate // current mutation rate, adapted per generation
		scrap   = solve.NewSolution[E](p.Size, dir)
		gen     int
		i       int
		parent1 int
		parent2 int
	)
	if o.AdaptiveMutation {
		rate = clampRange(rate, o.AdaptiveMinMutation, o.AdaptiveMaxMutation)
	}

	for gen = 0; gen < o.Generations; gen++ {
		if o.AdaptiveMutation {
			rate = adaptRate(pop, rate, o)
		}

		// Elites survive verbatim.
		for i = 0; i < o.ElitismCount; i++ {
			next[i].CopyFrom(pop[i])
		}

		// Fill the remaining slots in pairs.
		for i = o.ElitismCount; i < size; i += 2 {
			parent1 = selectParent(pop, o, rng)
			parent2 = selectParent(pop, o, rng)

			c1 := &next[i]
			c2 := &scrap
			if i+1 < size {
				c2 = &next[i+1]
			}

			if rng.Uniform() < o.CrossoverRate {
				p.Crossover(pop[parent1].Data, pop[parent2].Data, c1.Data, c2.Data, rng)
			} else {
				copy(c1.Data, pop[parent1].Data)
				copy(c2.Data, pop[parent2].Data)
			}

			evals += finishChild(p, c1, rate, dir, o, rng)
			if i+1 < size {
				evals += finishChild(p, c2, rate, dir, o, rng)
			}
		}

		pop, next = next, pop
		sortByFitness(pop, dir)

		if dir.Better(pop[0].Cost, best.Cost) {
			best.CopyFrom(pop[0])
		}
		trace.Record(best.Cost)
	}

	return solve.Result[E]{
		Best:        best,
		Convergence: trace.Samples(),
		Iterations:  gen,
		Evaluations: evals,
		Elapsed:     time.Since(begin),
	}, nil
}

// finishChild mutates, evaluates and (in memetic mode) refines one child,
// returning the number of objective evaluations spent on it.
//
// Complexity: O(eval + mutate [+ local search]).
func finishChild[E solve.Gene](
	p solve.Problem[E],
	child *solve.Solution[E],
	rate float64,
	dir solve.Direction,
	o Options,
	rng *solve.RNG,
) int {
	p.Mutate(child.Data, rate, rng)
	child.Cost = solve.Round1e9(p.Objective(child.Data))
	evals := 1

	if o.LocalSearch {
		if p.LocalSearch != nil {
			// Collaborator refinement is opaque; it counts as one call.
			child.Cost = solve.Round1e9(p.LocalSearch(child.Data, p.Objective, rng))
			evals++
		} else {
			var used int
			child.Cost, used = solve.Descent(p, child.Data, child.Cost, dir, o.LocalSearchTries, rng)
			child.Cost = solve.Round1e9(child.Cost)
			evals += used
		}
	}

	return evals
}

// adaptRate nudges the mutation rate from population diversity: a tight
// population (mean |cost-best| small relative to the best) pulls the rate
// toward the ceiling, a spread one toward the floor.
//
// Complexity: O(PopulationSize).
func adaptRate[E solve.Gene](pop []solve.Solution[E], rate float64, o Options) float64 {
	var (
		bestCost = pop[0].Cost
		sum      float64
	)
	for i := range pop {
		sum += math.Abs(pop[i].Cost - bestCost)
	}

	var (
		diversity = sum / float64(len(pop))
		relative  = diversity / (1 + math.Abs(bestCost))
		target    = o.AdaptiveMinMutation
	)
	if relative < adaptivePivot {
		target = o.AdaptiveMaxMutation
	}

	return clampRange(rate+adaptiveStep*(target-rate), o.AdaptiveMinMutation, o.AdaptiveMaxMutation)
}

// newArena allocates a population of owned, unevaluated solutions.
//
// Complexity: O(count · size).
func newArena[E solve.Gene](count, size int, dir solve.Direction) []solve.Solution[E] {
	arena := make([]solve.Solution[E], count)
	for i := range arena {
		arena[i] = solve.NewSolution[E](size, dir)
	}
	return arena
}

// sortByFitness orders the population best-first. The sort is stable so
// equal costs keep their arrival order and runs stay reproducible.
//
// Complexity: O(P log P).
func sortByFitness[E solve.Gene](pop []solve.Solution[E], dir solve.Direction) {
	sort.SliceStable(pop, func(i, j int) bool {
		return dir.Better(pop[i].Cost, pop[j].Cost)
	})
}

// clampRange pins x into [lo, hi].
//
// Complexity: O(1).
func clampRange(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
