// Package anneal - simulated annealing driver.
//
// This file implements the full annealing loop: Metropolis acceptance over
// Markov chains, four cooling schedules, optional reheating and optional
// auto-calibration of the initial temperature.
//
// Goals:
//   - Determinism: every stochastic step draws from the run's own RNG;
//     same seed ⇒ identical trajectory, trace and best solution.
//   - Totality: after structural validation the run never fails mid-loop;
//     degenerate tuning is clamped upfront (see options.go).
//   - Hot-path discipline: two working buffers for the whole run, swapped
//     on acceptance; best-so-far copied only on improvement.
//
// Contracts:
//   - Requires Problem.Objective, Problem.Neighbor, Problem.Generate.
//   - One iteration = one proposal; cooling applies at chain boundaries.
//   - Terminal condition: T ≤ FinalTemp or MaxIterations proposals.
//   - The convergence trace records best-so-far once per proposal.
//
// Complexity: O(MaxIterations · (eval + neighbor)) time, O(n) extra space.
package anneal

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// CalibrationSamples is the number of neighbor deltas sampled when
// AutoCalibrate estimates the starting temperature. Exported so callers
// can budget for the extra objective evaluations.
const CalibrationSamples = 100

// linearSteps sizes the Linear schedule's decrement so the span from the
// start to the final temperature is crossed in about this many steps.
const linearSteps = 1000.0

// Adaptive schedule factors: cool fast while acceptance sits above the
// target band, barely cool when the walk is already freezing.
const (
	adaptiveBand = 0.1
	adaptiveFast = 0.90
	adaptiveSlow = 0.999
)

// Anneal runs simulated annealing on p and returns the best solution found.
//
// The initial solution comes from Problem.Generate; each proposal comes
// from Problem.Neighbor. Worsening moves of direction-adjusted magnitude Δ
// are accepted with probability exp(−Δ/T). After every ChainLength
// proposals the acceptance rate is measured and the temperature is reheated
// or cooled per the configured schedule.
//
// Errors: solve.ErrZeroSize, solve.ErrMissingObjective,
// solve.ErrMissingNeighbor, solve.ErrMissingGenerate, solve.ErrBadDirection.
//
// Complexity: O(MaxIterations · (eval + neighbor)) time, O(n) space.
func Anneal[E solve.Gene](p solve.Problem[E], opts Options) (solve.Result[E], error) {
	// Stage 1 - structural validation; tuning is clamped, never rejected.
	if err := p.Validate(solve.NeedObjective | solve.NeedNeighbor | solve.NeedGenerate); err != nil {
		return solve.Result[E]{}, err
	}
	if !opts.Direction.Valid() {
		return solve.Result[E]{}, solve.ErrBadDirection
	}
	o := opts.normalized()

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
	cand := solve.NewSolution[E](p.Size, dir) // proposal buffer, reused all run

	// Stage 3 - starting temperature, optionally calibrated.
	tStart := o.InitialTemp
	if o.AutoCalibrate {
		var calibrated float64
		calibrated, evals = calibrate(p, cur, cand.Data, o, dir, rng, evals)
		if calibrated > 0 {
			tStart = calibrated
		}
	}

	// Stage 4 - Markov chain loop.
	var (
		tCur  = tStart // current temperature
		iter  int      // proposals executed so far
		step  int      // completed chains, drives the Logarithmic schedule
		delta float64  // direction-adjusted cost difference
		cost  float64  // candidate cost
	)

	for iter < o.MaxIterations && tCur > o.FinalTemp {
		var (
			accepted  int // accepted proposals in this chain
			proposals int // proposals in this chain (short final chains count less)
		)

		chainEnd := iter + o.ChainLength
		if chainEnd > o.MaxIterations {
			chainEnd = o.MaxIterations
		}

		for ; iter < chainEnd; iter++ {
			p.Neighbor(cand.Data, cur.Data, rng)
			cost = solve.Round1e9(p.Objective(cand.Data))
			evals++
			proposals++

			delta = cost - cur.Cost
			if dir == solve.Maximize {
				delta = -delta
			}

			// Metropolis rule: always take improvements, sometimes take
			// worsening moves while the temperature allows it.
			if delta < 0 || rng.Uniform() < math.Exp(-delta/tCur) {
				cur.Data, cand.Data = cand.Data, cur.Data
				cur.Cost = cost
				accepted++
				if dir.Better(cur.Cost, best.Cost) {
					best.CopyFrom(cur)
				}
			}

			trace.Record(best.Cost)
		}

		step++
		rate := float64(accepted) / float64(proposals)

		// Reheat instead of cooling when the walk froze early.
		if o.Reheat && rate < o.ReheatThreshold && tCur < tStart/2 {
			tCur *= o.ReheatFactor
			if tCur > tStart {
				tCur = tStart
			}
			continue
		}

		tCur = nextTemp(o, tCur, tStart, step, rate)
	}

	return solve.Result[E]{
		Best:        best,
		Convergence: trace.Samples(),
		Iterations:  iter,
		Evaluations: evals,
		Elapsed:     time.Since(begin),
	}, nil
}

// calibrate estimates a starting temperature by sampling neighbor deltas
// around the initial solution and solving exp(−meanΔ/T₀) = TargetAcceptance
// for T₀. Returns 0 when the sampled landscape is flat (caller keeps the
// configured temperature). The updated evaluation count is returned so the
// samples stay visible in Result.Evaluations.
//
// Complexity: O(CalibrationSamples · (eval + neighbor)).
func calibrate[E solve.Gene](
	p solve.Problem[E],
	cur solve.Solution[E],
	scratch []E,
	o Options,
	dir solve.Direction,
	rng *solve.RNG,
	evals int,
) (float64, int) {
	var sum float64
	for i := 0; i < CalibrationSamples; i++ {
		p.Neighbor(scratch, cur.Data, rng)
		d := p.Objective(scratch) - cur.Cost
		evals++
		if dir == solve.Maximize {
			d = -d
		}
		sum += math.Abs(d)
	}

	mean := sum / CalibrationSamples
	if mean == 0 {
		return 0, evals
	}

	// ln(target) < 0 for target ∈ (0,1), so the estimate is positive.
	return -mean / math.Log(o.TargetAcceptance), evals
}

// nextTemp applies the configured cooling schedule once.
//
// Complexity: O(1).
func nextTemp(o Options, tCur, tStart float64, step int, rate float64) float64 {
	switch o.Schedule {
	case Linear:
		tCur -= (tStart - o.FinalTemp) / linearSteps
		if tCur < o.FinalTemp {
			tCur = o.FinalTemp
		}
		return tCur

	case Logarithmic:
		return tStart / math.Log(2+float64(step))

	case Adaptive:
		switch {
		case rate > o.TargetAcceptance+adaptiveBand:
			return tCur * adaptiveFast
		case rate < o.TargetAcceptance-adaptiveBand:
			return tCur * adaptiveSlow
		default:
			return tCur * o.Alpha
		}

	default: // Geometric
		return tCur * o.Alpha
	}
}
