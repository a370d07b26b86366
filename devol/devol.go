// Package devol - synchronous DE driver.
//
// This file implements the full evolution loop: donor construction per
// strategy, binomial crossover with a forced coordinate, bounds clamping
// and the not-worse replacement rule.
//
// Goals:
//   - Determinism: donor indices, the forced coordinate and every
//     crossover draw come only from the run's RNG; same seed ⇒ identical
//     evolution.
//   - Arena discipline: two population arenas swapped between
//     generations; the next arena's slot doubles as the trial buffer, so
//     no per-trial allocation happens.
//   - Synchronous semantics: every trial of a generation is built from
//     the previous generation's vectors.
//
// Contracts:
//   - Requires Problem.Objective and Problem.Generate.
//   - One iteration = one generation; the trace records best-so-far once
//     per generation. Termination: Generations generations.
//
// Complexity: O(Generations · PopulationSize · (eval + dim)) time,
// O(PopulationSize · dim) space.
package devol

import (
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Evolve runs differential evolution on p and returns the best vector
// ever observed.
//
// Errors: solve.ErrZeroSize, solve.ErrMissingObjective,
// solve.ErrMissingGenerate, solve.ErrBadDirection.
//
// Complexity: O(Generations · PopulationSize · (eval + dim)).
func Evolve(p solve.Problem[float64], opts Options) (solve.Result[float64], error) {
	// Stage 1 - structural validation; tuning is clamped, never rejected.
	if err := p.Validate(solve.NeedObjective | solve.NeedGenerate); err != nil {
		return solve.Result[float64]{}, err
	}
	if !opts.Direction.Valid() {
		return solve.Result[float64]{}, solve.ErrBadDirection
	}
	o := opts.normalized()

	var (
		begin = time.Now()           // wall clock for Result.Elapsed
		rng   = solve.NewRNG(o.Seed) // the run's only randomness source
		dir   = o.Direction          // optimization sense
		size  = o.PopulationSize
		trace = solve.NewTrace(o.Generations)
		evals int // objective calls observed
	)

	// Stage 2 - initial population, two arenas swapped per generation.
	pop := newArena(size, p.Size, dir)
	next := newArena(size, p.Size, dir)
	for i := 0; i < size; i++ {
		p.Generate(pop[i].Data, rng)
		pop[i].Cost = solve.Round1e9(p.Objective(pop[i].Data))
		evals++
	}

	bestIdx := fittest(pop, dir)
	best := pop[bestIdx].Clone()

	// Stage 3 - generational loop.
	var (
		donor = make([]float64, p.Size) // donor buffer, reused per trial
		picks [5]int                    // distinct donor indices
		gen   int
	)
	for gen = 0; gen < o.Generations; gen++ {
		for i := 0; i < size; i++ {
			buildDonor(donor, pop, i, bestIdx, o, rng, picks[:])

			// Binomial crossover into the next arena's slot; jrand forces
			// at least one donor coordinate through.
			var (
				trial = &next[i]
				jrand = rng.Intn(p.Size)
			)
			for j := 0; j < p.Size; j++ {
				if j == jrand || rng.Uniform() < o.CrossoverRate {
					trial.Data[j] = donor[j]
				} else {
					trial.Data[j] = pop[i].Data[j]
				}
			}
			clampTo(trial.Data, o.Lo, o.Hi)

			trial.Cost = solve.Round1e9(p.Objective(trial.Data))
			evals++

			// Not-worse replacement: ties drift across plateaus.
			if !dir.NotWorse(trial.Cost, pop[i].Cost) {
				trial.CopyFrom(pop[i])
			}
		}

		pop, next = next, pop
		bestIdx = fittest(pop, dir)
		if dir.Better(pop[bestIdx].Cost, best.Cost) {
			best.CopyFrom(pop[bestIdx])
		}
		trace.Record(best.Cost)
	}

	return solve.Result[float64]{
		Best:        best,
		Convergence: trace.Samples(),
		Iterations:  gen,
		Evaluations: evals,
		Elapsed:     time.Since(begin),
	}, nil
}

// buildDonor fills donor per the configured strategy, drawing the needed
// distinct indices (never equal to the target) from rng.
//
// Complexity: O(dim).
func buildDonor(
	donor []float64,
	pop []solve.Solution[float64],
	target, bestIdx int,
	o Options,
	rng *solve.RNG,
	picks []int,
) {
	f := o.Weight

	switch o.Strategy {
	case Best1:
		pickDistinct(picks[:2], target, len(pop), rng)
		a, b := pop[picks[0]].Data, pop[picks[1]].Data
		base := pop[bestIdx].Data
		for j := range donor {
			donor[j] = base[j] + f*(a[j]-b[j])
		}

	case CurrentToBest1:
		pickDistinct(picks[:2], target, len(pop), rng)
		a, b := pop[picks[0]].Data, pop[picks[1]].Data
		cur, base := pop[target].Data, pop[bestIdx].Data
		for j := range donor {
			donor[j] = cur[j] + f*(base[j]-cur[j]) + f*(a[j]-b[j])
		}

	case Rand2:
		pickDistinct(picks[:5], target, len(pop), rng)
		r1, r2, r3 := pop[picks[0]].Data, pop[picks[1]].Data, pop[picks[2]].Data
		r4, r5 := pop[picks[3]].Data, pop[picks[4]].Data
		for j := range donor {
			donor[j] = r1[j] + f*(r2[j]-r3[j]) + f*(r4[j]-r5[j])
		}

	case Best2:
		pickDistinct(picks[:4], target, len(pop), rng)
		a, b := pop[picks[0]].Data, pop[picks[1]].Data
		c, d := pop[picks[2]].Data, pop[picks[3]].Data
		base := pop[bestIdx].Data
		for j := range donor {
			donor[j] = base[j] + f*(a[j]-b[j]) + f*(c[j]-d[j])
		}

	default: // Rand1
		pickDistinct(picks[:3], target, len(pop), rng)
		r1, r2, r3 := pop[picks[0]].Data, pop[picks[1]].Data, pop[picks[2]].Data
		for j := range donor {
			donor[j] = r1[j] + f*(r2[j]-r3[j])
		}
	}
}

// pickDistinct fills dst with indices from [0,size) that are mutually
// distinct and different from exclude. Rejection sampling terminates fast
// because size ≥ len(dst)+1 by the population clamp.
//
// Complexity: O(len(dst)²) expected.
func pickDistinct(dst []int, exclude, size int, rng *solve.RNG) {
	for k := range dst {
	draw:
		for {
			c := rng.Intn(size)
			if c == exclude {
				continue
			}
			for _, prev := range dst[:k] {
				if c == prev {
					continue draw
				}
			}
			dst[k] = c
			break
		}
	}
}

// fittest returns the index of the best vector, first wins on ties so
// scans stay reproducible.
//
// Complexity: O(PopulationSize).
func fittest(pop []solve.Solution[float64], dir solve.Direction) int {
	idx := 0
	for i := 1; i < len(pop); i++ {
		if dir.Better(pop[i].Cost, pop[idx].Cost) {
			idx = i
		}
	}
	return idx
}

// clampTo pins every covered coordinate into [lo, hi]. Nil or short
// bounds leave the remaining coordinates free.
//
// Complexity: O(dim).
func clampTo(x, lo, hi []float64) {
	for j := range x {
		if j < len(lo) && x[j] < lo[j] {
			x[j] = lo[j]
		}
		if j < len(hi) && x[j] > hi[j] {
			x[j] = hi[j]
		}
	}
}

// newArena allocates a population of owned, unevaluated vectors.
//
// Complexity: O(count · dim).
func newArena(count, dim int, dir solve.Direction) []solve.Solution[float64] {
	arena := make([]solve.Solution[float64], count)
	for i := range arena {
		arena[i] = solve.NewSolution[float64](dim, dir)
	}
	return arena
}
