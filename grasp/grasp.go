// Package grasp - multi-start driver.
//
// Contracts:
//   - Requires Problem.Objective; Problem.Generate when Options.Construct
//     is nil; Problem.Neighbor when Problem.LocalSearch is nil (for the
//     builtin descent).
//   - One iteration = one restart; the trace records best-so-far once per
//     restart. Termination: Restarts restarts.
//   - The incumbent starts from one unrefined construction, so a
//     zero-restart run still returns an evaluated solution.
//
// Complexity: O(Restarts · (construction + local search)) time, O(n) space.
package grasp

import (
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Search runs GRASP: Restarts independent rounds of greedy-randomized
// construction followed by local search, keeping the best local optimum
// seen across all rounds.
//
// Complexity: O(Restarts · (construction + local search)).
func Search[E solve.Gene](p solve.Problem[E], opts Options[E]) (solve.Result[E], error) {
	// Stage 1 - structural validation, then silent tuning clamps.
	need := solve.NeedObjective
	if opts.Construct == nil {
		need |= solve.NeedGenerate
	}
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

	// Stage 2 - run state.
	var (
		begin = time.Now()           // wall clock for Result.Elapsed
		rng   = solve.NewRNG(o.Seed) // the run's only randomness source
		dir   = o.Direction          // optimization sense
		trace = solve.NewTrace(o.Restarts)
		evals int // objective calls observed
	)

	cons := o.Construct
	if cons == nil {
		// Documented leniency: degrade to plain random construction.
		cons = func(dst []E, _ float64, r *solve.RNG) { p.Generate(dst, r) }
	}

	var pool *reactivePool
	if len(o.Alphas) > 0 {
		pool = newReactivePool(o.Alphas, o.ReactivePeriod)
	}

	// Stage 3 - incumbent from one unrefined construction.
	best := solve.NewSolution[E](p.Size, dir)
	cons(best.Data, o.Alpha, rng)
	best.Cost = solve.Round1e9(p.Objective(best.Data))
	evals++

	// Stage 4 - restart loop: construct, refine, challenge the incumbent.
	work := solve.NewSolution[E](p.Size, dir)
	var iter int
	for iter = 0; iter < o.Restarts; iter++ {
		alpha, ai := o.Alpha, -1
		if pool != nil {
			ai = pool.pick(rng)
			alpha = pool.alphas[ai]
		}

		cons(work.Data, alpha, rng)
		work.Cost = solve.Round1e9(p.Objective(work.Data))
		evals++

		if p.LocalSearch != nil {
			// Collaborator refinement is opaque; it counts as one call.
			work.Cost = solve.Round1e9(p.LocalSearch(work.Data, p.Objective, rng))
			evals++
		} else {
			var used int
			work.Cost, used = solve.Descent(p, work.Data, work.Cost, dir, o.LocalSearchTries, rng)
			work.Cost = solve.Round1e9(work.Cost)
			evals += used
		}

		if pool != nil {
			pool.record(ai, work.Cost, dir)
		}
		if dir.Better(work.Cost, best.Cost) {
			best.CopyFrom(work)
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
