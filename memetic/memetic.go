// Package memetic - generational driver with lifetime learning.
//
// Contracts:
//   - Requires Problem.Objective, Problem.Generate, Problem.Crossover,
//     Problem.Mutate, plus Problem.LocalSearch or Problem.Neighbor (for
//     the builtin descent); learning is what makes the loop memetic, so
//     it cannot be switched off.
//   - Selection and elitism rank by learned fitness; the best-so-far is
//     tracked on true genotype cost, so Result.Best always satisfies
//     Best.Cost == Objective(Best.Data).
//   - One iteration = one generation; the trace records best-so-far once
//     per generation. Termination: Generations generations.
//
// Complexity: O(Generations · PopulationSize · (eval + operators +
// learning)) time, O(PopulationSize · n) space.
package memetic

import (
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Evolve runs the memetic loop and returns the best individual observed.
//
// Complexity: O(Generations · PopulationSize · (eval + operators +
// learning)).
func Evolve[E solve.Gene](p solve.Problem[E], opts Options) (solve.Result[E], error) {
	need := solve.NeedObjective | solve.NeedGenerate | solve.NeedCrossover | solve.NeedMutate
	if p.LocalSearch == nil {
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

	// Two arenas swapped between generations, plus the learned-fitness
	// column that selection and elitism rank by.
	pop := newArena[E](size, p.Size, dir)
	next := newArena[E](size, p.Size, dir)
	fitness := make([]float64, size)

	for i := 0; i < size; i++ {
		p.Generate(pop[i].Data, rng)
		pop[i].Cost = solve.Round1e9(p.Objective(pop[i].Data))
		evals++
	}

	best := pop[0].Clone()
	for i := 1; i < size; i++ {
		if dir.Better(pop[i].Cost, best.Cost) {
			best.CopyFrom(pop[i])
		}
	}

	var (
		scrap   = solve.NewSolution[E](p.Size, dir) // odd-slot partner and Baldwinian rehearsal buffer
		elite   = make([]int, o.ElitismCount)       // elite index buffer, reused
		taken   = make([]bool, size)                // elite selection marks, reused
		gen     int
		i       int
		parent1 int
		parent2 int
	)

	for gen = 0; gen < o.Generations; gen++ {
		// Stage 1 - fitness starts at the true cost; learning overrides.
		for i = 0; i < size; i++ {
			fitness[i] = pop[i].Cost
		}
		if gen%o.LocalSearchEvery == 0 {
			evals += learn(p, pop, fitness, &scrap, o, dir, rng)
			if o.Learning == Lamarckian {
				// Write-back may have improved true costs.
				for i = 0; i < size; i++ {
					if dir.Better(pop[i].Cost, best.Cost) {
						best.CopyFrom(pop[i])
					}
				}
			}
		}

		// Stage 2 - elites survive verbatim, ranked by learned fitness.
		pickElites(elite, taken, fitness, dir)
		for i = 0; i < len(elite); i++ {
			next[i].CopyFrom(pop[elite[i]])
		}

		// Stage 3 - fill the remaining slots in pairs.
		for i = o.ElitismCount; i < size; i += 2 {
			parent1 = tournament(fitness, o.TournamentK, dir, rng)
			parent2 = tournament(fitness, o.TournamentK, dir, rng)

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

			p.Mutate(c1.Data, o.MutationRate, rng)
			c1.Cost = solve.Round1e9(p.Objective(c1.Data))
			evals++
			if i+1 < size {
				p.Mutate(c2.Data, o.MutationRate, rng)
				c2.Cost = solve.Round1e9(p.Objective(c2.Data))
				evals++
			}
		}

		// Stage 4 - swap arenas and settle the true best.
		pop, next = next, pop
		for i = 0; i < size; i++ {
			if dir.Better(pop[i].Cost, best.Cost) {
				best.CopyFrom(pop[i])
			}
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

// learn refines every individual. Lamarckian writes genotype and cost
// back; Baldwinian rehearses on the scratch buffer so only the fitness
// column sees the result. Returns the objective evaluations consumed.
//
// Complexity: O(PopulationSize · local search).
func learn[E solve.Gene](
	p solve.Problem[E],
	pop []solve.Solution[E],
	fitness []float64,
	scrap *solve.Solution[E],
	o Options,
	dir solve.Direction,
	rng *solve.RNG,
) int {
	var (
		evals int
		used  int
	)
	for i := range pop {
		if o.Learning == Lamarckian {
			if p.LocalSearch != nil {
				// Collaborator refinement is opaque; it counts as one call.
				pop[i].Cost = solve.Round1e9(p.LocalSearch(pop[i].Data, p.Objective, rng))
				evals++
			} else {
				pop[i].Cost, used = solve.Descent(p, pop[i].Data, pop[i].Cost, dir, o.LocalSearchTries, rng)
				pop[i].Cost = solve.Round1e9(pop[i].Cost)
				evals += used
			}
			fitness[i] = pop[i].Cost
			continue
		}

		// Baldwinian: the genotype must survive the rehearsal untouched.
		scrap.CopyFrom(pop[i])
		if p.LocalSearch != nil {
			fitness[i] = solve.Round1e9(p.LocalSearch(scrap.Data, p.Objective, rng))
			evals++
		} else {
			fitness[i], used = solve.Descent(p, scrap.Data, scrap.Cost, dir, o.LocalSearchTries, rng)
			fitness[i] = solve.Round1e9(fitness[i])
			evals += used
		}
	}

	return evals
}

// pickElites fills elite with the fittest population indices, best first.
// Ties keep the lower index so elitism stays deterministic.
//
// Complexity: O(len(elite) · PopulationSize).
func pickElites(elite []int, taken []bool, fitness []float64, dir solve.Direction) {
	for i := range taken {
		taken[i] = false
	}
	for e := range elite {
		pick := -1
		for i, f := range fitness {
			if taken[i] {
				continue
			}
			if pick < 0 || dir.Better(f, fitness[pick]) {
				pick = i
			}
		}
		taken[pick] = true
		elite[e] = pick
	}
}

// tournament draws TournamentK contenders and returns the index with the
// best learned fitness; ties keep the earliest draw.
//
// Complexity: O(TournamentK).
func tournament(fitness []float64, k int, dir solve.Direction, rng *solve.RNG) int {
	winner := rng.Intn(len(fitness))
	for d := 1; d < k; d++ {
		c := rng.Intn(len(fitness))
		if dir.Better(fitness[c], fitness[winner]) {
			winner = c
		}
	}

	return winner
}

// newArena allocates size solutions of genome length n.
//
// Complexity: O(size · n).
func newArena[E solve.Gene](size, n int, dir solve.Direction) []solve.Solution[E] {
	arena := make([]solve.Solution[E], size)
	for i := range arena {
		arena[i] = solve.NewSolution[E](n, dir)
	}

	return arena
}
