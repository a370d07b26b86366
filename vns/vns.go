// Package vns - shake/improve driver.
//
// Contracts:
//   - Requires Problem.Objective, Problem.Perturb, Problem.Generate; the
//     Basic variant additionally needs Problem.LocalSearch or
//     Problem.Neighbor (for the builtin descent).
//   - The incumbent moves only on strict improvement, so the trajectory
//     and the best-so-far coincide.
//   - One iteration = one shake round; the trace records best-so-far once
//     per round. Termination: MaxIterations rounds.
//
// Complexity: O(MaxIterations · (eval + improvement)) time, O(n) space.
package vns

import (
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Search runs variable neighborhood search: shake the incumbent with
// strength k, refine per the configured variant, accept improvements.
// Improvement resets k to 1; failure advances k and wraps past KMax so the
// ladder keeps cycling.
//
// Complexity: O(MaxIterations · (eval + improvement)).
func Search[E solve.Gene](p solve.Problem[E], opts Options) (solve.Result[E], error) {
	// Stage 1 - tuning clamps first: the callback requirements depend on
	// the clamped variant.
	o := opts.normalized()

	need := solve.NeedObjective | solve.NeedPerturb | solve.NeedGenerate
	if o.Variant == Basic && p.LocalSearch == nil {
		need |= solve.NeedNeighbor
	}
	if err := p.Validate(need); err != nil {
		return solve.Result[E]{}, err
	}
	if !o.Direction.Valid() {
		return solve.Result[E]{}, solve.ErrBadDirection
	}

	// Stage 2 - run state.
	var (
		begin = time.Now()           // wall clock for Result.Elapsed
		rng   = solve.NewRNG(o.Seed) // the run's only randomness source
		dir   = o.Direction          // optimization sense
		trace = solve.NewTrace(o.MaxIterations)
		evals int // objective calls observed
	)

	// Stage 3 - incumbent.
	best := solve.NewSolution[E](p.Size, dir)
	p.Generate(best.Data, rng)
	best.Cost = solve.Round1e9(p.Objective(best.Data))
	evals++

	// Stage 4 - shake, improve, move or climb the ladder.
	var (
		work    = solve.NewSolution[E](p.Size, dir)
		scratch = make([]E, p.Size) // ladder-descent candidate buffer
		k       = 1                 // current neighborhood index
		iter    int
		used    int
	)
	for iter = 0; iter < o.MaxIterations; iter++ {
		p.Perturb(work.Data, best.Data, float64(k), rng)
		work.Cost = solve.Round1e9(p.Objective(work.Data))
		evals++

		switch o.Variant {
		case Basic:
			if p.LocalSearch != nil {
				// Collaborator refinement is opaque; it counts as one call.
				work.Cost = solve.Round1e9(p.LocalSearch(work.Data, p.Objective, rng))
				evals++
			} else {
				work.Cost, used = solve.Descent(p, work.Data, work.Cost, dir, o.LocalSearchTries, rng)
				work.Cost = solve.Round1e9(work.Cost)
				evals += used
			}
		case General:
			work.Cost, used = vnd(p, work.Data, work.Cost, scratch, o, dir, rng)
			work.Cost = solve.Round1e9(work.Cost)
			evals += used
		case Reduced:
			// Shake only.
		}

		if dir.Better(work.Cost, best.Cost) {
			best.CopyFrom(work)
			k = 1
		} else {
			k++
			if k > o.KMax {
				k = 1 // cycle back to small shakes
			}
		}

		trace.Record(best.Cost)
	}

	return solve.Result[E]{
		Best:        best,
		Convergence: trace.Samples(),
		Iterations:  iter,
		Evaluations: evals,
		Elapsed:     time.Since(begin),
	}, nil
}

// vnd runs variable neighborhood descent over data in place: sample up to
// tries candidates per rung, move on the first improvement and restart the
// ladder, stop after a full ladder pass without improvement. Returns the
// refined cost and the number of objective evaluations consumed.
//
// Complexity: O(rounds · KMax · tries · eval) time, O(1) extra space.
func vnd[E solve.Gene](p solve.Problem[E], data []E, cost float64, scratch []E, o Options, dir solve.Direction, rng *solve.RNG) (float64, int) {
	tries := o.LocalSearchTries
	if tries <= 0 {
		tries = len(data)
		if tries < vndMinTries {
			tries = vndMinTries
		}
	}

	var (
		evals int
		round int
		c     float64
	)
	for round = 0; round < vndMaxRounds; round++ {
		improved := false
	rungs:
		for kk := 1; kk <= o.KMax; kk++ {
			for t := 0; t < tries; t++ {
				p.Perturb(scratch, data, float64(kk), rng)
				c = p.Objective(scratch)
				evals++
				if dir.Better(c, cost) {
					copy(data, scratch)
					cost = c
					improved = true
					break rungs
				}
			}
		}
		if !improved {
			break
		}
	}

	return cost, evals
}
