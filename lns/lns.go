// Package lns - ruin-and-recreate driver.
//
// Contracts:
//   - Requires Problem.Objective and Problem.Generate; Problem.Perturb
//     when no Operators are configured.
//   - One iteration = one destroy/repair round with exactly one objective
//     evaluation; the trace records best-so-far once per round.
//     Termination: MaxIterations rounds.
//   - Under AcceptImproving the incumbent and the best coincide; under
//     AcceptAnnealing the incumbent may wander while the best only
//     tightens.
//
// Complexity: O(MaxIterations · (destroy + repair + eval)) time, O(n)
// space.
package lns

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Search runs large neighborhood search: destroy a degree-sized fraction
// of the incumbent, repair it, and accept the rebuilt solution per the
// configured policy. With Adaptive set the operator roulette re-learns
// its weights every Segment iterations from the scores the pairs earned.
//
// Complexity: O(MaxIterations · (destroy + repair + eval)).
func Search[E solve.Gene](p solve.Problem[E], opts Options[E]) (solve.Result[E], error) {
	// Stage 1 - structural validation, then silent tuning clamps.
	need := solve.NeedObjective | solve.NeedGenerate
	if len(opts.Operators) == 0 {
		need |= solve.NeedPerturb
	}
	if err := p.Validate(need); err != nil {
		return solve.Result[E]{}, err
	}
	for _, op := range opts.Operators {
		if op.Destroy == nil || op.Repair == nil {
			return solve.Result[E]{}, ErrNilOperator
		}
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
		trace = solve.NewTrace(o.MaxIterations)
		evals int // objective calls observed
	)

	ops := o.Operators
	if len(ops) == 0 {
		// Documented leniency: ruin and recreate in one stroke.
		ops = []Operator[E]{{
			Destroy: func(dst, src []E, degree float64, r *solve.RNG) { p.Perturb(dst, src, degree, r) },
			Repair:  func([]E, *solve.RNG) {},
		}}
	}
	sel := newSelector(len(ops), o.Adaptive, o.Segment, o.Reaction)

	// Stage 3 - incumbent.
	cur := solve.NewSolution[E](p.Size, dir)
	p.Generate(cur.Data, rng)
	cur.Cost = solve.Round1e9(p.Objective(cur.Data))
	evals++

	best := cur.Clone()

	// Stage 4 - destroy, repair, accept.
	var (
		work = solve.NewSolution[E](p.Size, dir)
		temp = o.InitialTemp // annealing acceptance state
		iter int
	)
	for iter = 0; iter < o.MaxIterations; iter++ {
		i := sel.pick(rng)
		ops[i].Destroy(work.Data, cur.Data, o.Degree, rng)
		ops[i].Repair(work.Data, rng)
		work.Cost = solve.Round1e9(p.Objective(work.Data))
		evals++

		improving := dir.Better(work.Cost, cur.Cost)
		accepted := improving
		if o.Acceptance == AcceptAnnealing {
			if !accepted {
				delta := work.Cost - cur.Cost
				if dir == solve.Maximize {
					delta = -delta
				}
				// Metropolis rule on the direction-adjusted worsening.
				accepted = rng.Uniform() < math.Exp(-delta/temp)
			}
			temp *= o.Cooling
			if temp < minTemp {
				temp = minTemp
			}
		}

		newBest := false
		if accepted {
			cur.CopyFrom(work)
			if dir.Better(cur.Cost, best.Cost) {
				best.CopyFrom(cur)
				newBest = true
			}
		}

		sel.score(i, newBest, improving, accepted)
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
