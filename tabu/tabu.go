// Package tabu - best-admissible-neighbor driver.
//
// This file implements the full search loop: candidate sampling, tabu
// admission with aspiration, frequency-penalized ranking, the move and
// memory updates, and the stagnation escapes.
//
// Goals:
//   - Determinism: candidate sampling and every adaptive mechanism draw
//     only from the run's RNG; same seed ⇒ identical walk.
//   - Buffer discipline: one candidate buffer and one winner buffer are
//     reused across all iterations; memories never alias genomes, they
//     hold hashes only.
//   - Monotone reporting: the trace records best-so-far once per
//     iteration, including hold-position iterations.
//
// Contracts:
//   - Requires Problem.Objective, Problem.Neighbor, Problem.Generate.
//     Problem.Hash is optional; the built-in genome hash is the fallback.
//   - One iteration = one move attempt (NeighborsPerIter evaluations).
//   - Termination: MaxIterations iterations.
//
// Complexity: O(MaxIterations · NeighborsPerIter · (eval + hash)) time,
// O(n + Tenure + FrequencyCapacity) space.
package tabu

import (
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Search runs tabu search on p and returns the best solution found.
//
// Each iteration samples NeighborsPerIter candidates around the current
// solution, admits those that are not tabu (or beat the best-known cost
// when Aspiration is on), ranks admissible candidates by cost plus the
// frequency penalty when Diversification is on, and moves to the winner
// even when it worsens the cost. The winner's hash becomes tabu.
//
// Errors: solve.ErrZeroSize, solve.ErrMissingObjective,
// solve.ErrMissingNeighbor, solve.ErrMissingGenerate,
// solve.ErrBadDirection.
//
// Complexity: O(MaxIterations · NeighborsPerIter · (eval + hash)).
func Search[E solve.Gene](p solve.Problem[E], opts Options) (solve.Result[E], error) {
	// Stage 1 - structural validation; tuning is clamped, never rejected.
	if err := p.Validate(solve.NeedObjective | solve.NeedNeighbor | solve.NeedGenerate); err != nil {
		return solve.Result[E]{}, err
	}
	if !opts.Direction.Valid() {
		return solve.Result[E]{}, solve.ErrBadDirection
	}
	o := opts.normalized()

	hash := p.Hash
	if hash == nil {
		hash = solve.HashGenes[E]
	}

	var (
		begin = time.Now()           // wall clock for Result.Elapsed
		rng   = solve.NewRNG(o.Seed) // the run's only randomness source
		dir   = o.Direction          // optimization sense
		trace = solve.NewTrace(o.MaxIterations)
		evals int // objective calls observed
	)

	// Stage 2 - initial solution and working buffers.
	cur := solve.NewSolution[E](p.Size, dir)
	p.Generate(cur.Data, rng)
	cur.Cost = solve.Round1e9(p.Objective(cur.Data))
	evals++

	best := cur.Clone()
	cand := solve.NewSolution[E](p.Size, dir)   // proposal buffer, reused all run
	winner := solve.NewSolution[E](p.Size, dir) // best admissible candidate of the iteration

	// Stage 3 - memories.
	var (
		list         = newTabuList(o.Tenure)
		freq         = newFreqMemory(o.FrequencyCapacity)
		tenure       = o.Tenure
		sinceImprove int // iterations since the last global improvement
	)
	h0 := hash(cur.Data)
	list.push(h0)
	freq.bump(h0)

	// Stage 4 - walk.
	var iter int
	for iter = 0; iter < o.MaxIterations; iter++ {
		// Stagnation escapes fire exactly at their trigger, so an
		// intensification at 50 can still be followed by a
		// diversification at 100 within one stuck streak.
		if o.Diversification && sinceImprove == o.DiversificationTrigger {
			p.Generate(cur.Data, rng)
			cur.Cost = solve.Round1e9(p.Objective(cur.Data))
			evals++
			sinceImprove = 0
			if dir.Better(cur.Cost, best.Cost) {
				best.CopyFrom(cur)
			}
		} else if o.Intensification && sinceImprove == o.IntensificationTrigger {
			cur.CopyFrom(best)
		}

		// Sample the neighborhood and keep the best admissible candidate.
		var (
			found      bool
			winnerHash uint64
			score      float64
			bestScore  float64
		)
		for i := 0; i < o.NeighborsPerIter; i++ {
			p.Neighbor(cand.Data, cur.Data, rng)
			cand.Cost = solve.Round1e9(p.Objective(cand.Data))
			evals++

			h := hash(cand.Data)
			if list.contains(h) && !(o.Aspiration && dir.Better(cand.Cost, best.Cost)) {
				continue // tabu and not aspirated
			}

			score = cand.Cost
			if o.Diversification && o.FrequencyPenalty > 0 {
				penalty := o.FrequencyPenalty * float64(freq.count(h))
				if dir == solve.Maximize {
					score -= penalty
				} else {
					score += penalty
				}
			}

			if !found || dir.Better(score, bestScore) {
				found = true
				bestScore = score
				winnerHash = h
				winner.CopyFrom(cand)
			}
		}

		// Hold position when every candidate is tabu; the iteration still
		// counts and still reports.
		if !found {
			sinceImprove++
			trace.Record(best.Cost)
			continue
		}

		// Move, then update the memories.
		revisit := freq.count(winnerHash) > 0
		cur.CopyFrom(winner)
		list.push(winnerHash)
		freq.bump(winnerHash)

		if dir.Better(cur.Cost, best.Cost) {
			best.CopyFrom(cur)
			sinceImprove = 0
			if o.ReactiveTenure && tenure > o.MinTenure {
				tenure--
				list.resize(tenure)
			}
		} else {
			sinceImprove++
			if o.ReactiveTenure && revisit && tenure < o.MaxTenure {
				tenure++
				list.resize(tenure)
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
