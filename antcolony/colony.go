// Package antcolony - colony driver.
//
// This file implements the full colony loop: probabilistic tour
// construction from pheromone and heuristic, evaporation, and the three
// deposit variants.
//
// Goals:
//   - Determinism: construction roulette and start cities draw only from
//     the run's RNG; same seed ⇒ identical colony history.
//   - Shared-memory discipline: the pheromone matrix is the only state
//     carried between iterations; tours live in reused buffers.
//   - Degenerate-weight safety: zero or vanishing transition weights
//     fall back to a uniform choice among the unvisited cities, so a
//     cold colony still constructs valid tours.
//
// Contracts:
//   - Requires Problem.Objective only; ants construct their own tours.
//   - One iteration = one colony pass (Ants constructions). The trace
//     records best-so-far once per iteration.
//   - Termination: MaxIterations iterations.
//
// Complexity: O(MaxIterations · Ants · n²) time, O(n²) space.
package antcolony

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Optimize runs the ant colony on p and returns the best tour found.
//
// Before the loop a single construction on the untouched pheromone field
// seeds the best-so-far tour, so even a zero-iteration run returns an
// evaluated solution.
//
// Errors: solve.ErrZeroSize, solve.ErrMissingObjective,
// solve.ErrBadDirection.
//
// Complexity: O(MaxIterations · Ants · n²).
func Optimize(p solve.Problem[int], opts Options) (solve.Result[int], error) {
	// Stage 1 - structural validation; tuning is clamped, never rejected.
	if err := p.Validate(solve.NeedObjective); err != nil {
		return solve.Result[int]{}, err
	}
	if !opts.Direction.Valid() {
		return solve.Result[int]{}, solve.ErrBadDirection
	}
	o := opts.normalized()

	var (
		n    = p.Size
		ants = o.Ants
	)
	if ants < 1 {
		ants = n
	}

	var (
		begin = time.Now()           // wall clock for Result.Elapsed
		rng   = solve.NewRNG(o.Seed) // the run's only randomness source
		dir   = o.Direction          // optimization sense
		trace = solve.NewTrace(o.MaxIterations)
		evals int // objective calls observed
	)

	// Stage 2 - pheromone field and construction scratch.
	var (
		tau     = newField(n, initialPheromone)
		visited = make([]bool, n)
		weights = make([]float64, n)
		ant     = solve.NewSolution[int](n, dir) // construction buffer
	)

	// Stage 3 - seed the best with one cold construction.
	construct(ant.Data, tau, o, visited, weights, rng)
	ant.Cost = solve.Round1e9(p.Objective(ant.Data))
	evals++
	best := ant.Clone()

	// Stage 4 - colony loop. Ant deposits accumulate in a delta field and
	// land only after evaporation, so the order is always evaporate →
	// deposit.
	var (
		iterBest = solve.NewSolution[int](n, dir) // best tour of the iteration
		delta    = newField(n, 0)                 // per-iteration deposit accumulator
		iter     int
	)
	for iter = 0; iter < o.MaxIterations; iter++ {
		zeroField(delta)

		for a := 0; a < ants; a++ {
			construct(ant.Data, tau, o, visited, weights, rng)
			ant.Cost = solve.Round1e9(p.Objective(ant.Data))
			evals++

			if a == 0 || dir.Better(ant.Cost, iterBest.Cost) {
				iterBest.CopyFrom(ant)
			}

			// AntSystem and ElitistAS reinforce every tour.
			if o.Variant != MaxMin {
				deposit(delta, ant.Data, depositWeight(ant.Cost, dir, o.Deposit))
			}
		}

		if dir.Better(iterBest.Cost, best.Cost) {
			best.CopyFrom(iterBest)
		}

		evaporate(tau, o.Evaporation)

		switch o.Variant {
		case ElitistAS:
			deposit(delta, best.Data, o.ElitistWeight*depositWeight(best.Cost, dir, o.Deposit))
		case MaxMin:
			deposit(delta, best.Data, depositWeight(best.Cost, dir, o.Deposit))
		}
		addField(tau, delta)

		if o.Variant == MaxMin {
			clampField(tau, depositWeight(best.Cost, dir, o.Deposit)/o.Evaporation, n)
		}

		trace.Record(best.Cost)
	}

	return solve.Result[int]{
		Best:        best,
		Convergence: trace.Samples(),
		Iterations:  iter,
		Evaluations: evals,
		Elapsed:     time.Since(begin),
	}, nil
}

// construct fills tour with one probabilistic city sequence: the start is
// uniform, every later step is a roulette over τ^α·η^β among the
// unvisited cities.
//
// Complexity: O(n²).
func construct(tour []int, tau [][]float64, o Options, visited []bool, weights []float64, rng *solve.RNG) {
	n := len(tour)
	for i := range visited {
		visited[i] = false
	}

	cur := rng.Intn(n)
	tour[0] = cur
	visited[cur] = true

	for step := 1; step < n; step++ {
		var total float64
		for city := 0; city < n; city++ {
			if visited[city] {
				weights[city] = 0
				continue
			}
			w := math.Pow(tau[cur][city], o.Alpha)
			if o.Heuristic != nil {
				w *= math.Pow(o.Heuristic[cur][city], o.Beta)
			}
			weights[city] = w
			total += w
		}

		next := -1
		if total > 0 && !math.IsInf(total, 1) {
			r := rng.Uniform() * total
			for city := 0; city < n; city++ {
				r -= weights[city]
				if !visited[city] && r <= 0 {
					next = city
					break
				}
			}
		}
		if next < 0 {
			// Degenerate weights: uniform choice among the unvisited.
			k := rng.Intn(n - step)
			for city := 0; city < n; city++ {
				if visited[city] {
					continue
				}
				if k == 0 {
					next = city
					break
				}
				k--
			}
		}

		tour[step] = next
		visited[next] = true
		cur = next
	}
}

// depositWeight converts a tour cost into a reinforcement amount: Q/cost
// when minimizing (shorter ⇒ stronger), Q·cost when maximizing. Costs at
// or below the floor fall back to the floor so the weight stays finite
// and positive.
//
// Complexity: O(1).
func depositWeight(cost float64, dir solve.Direction, q float64) float64 {
	if dir == solve.Maximize {
		if cost <= depositFloor {
			return q * depositFloor
		}
		return q * cost
	}
	if cost <= depositFloor {
		cost = depositFloor
	}
	return q / cost
}

// deposit adds w pheromone to every arc of tour, both directions, wrap
// edge included.
//
// Complexity: O(n).
func deposit(tau [][]float64, tour []int, w float64) {
	for i := 0; i < len(tour); i++ {
		a, b := tour[i], tour[(i+1)%len(tour)]
		tau[a][b] += w
		tau[b][a] += w
	}
}

// evaporate decays every trail by the factor (1−ρ).
//
// Complexity: O(n²).
func evaporate(tau [][]float64, rho float64) {
	keep := 1 - rho
	for i := range tau {
		for j := range tau[i] {
			tau[i][j] *= keep
		}
	}
}

// clampField pins every trail into the MaxMin band [τmin, τmax], with
// τmax = bestWeight/ρ and τmin = τmax/(2n).
//
// Complexity: O(n²).
func clampField(tau [][]float64, tauMax float64, n int) {
	if math.IsInf(tauMax, 1) || tauMax <= 0 {
		return // ρ=0 or degenerate best; leave the field unclamped
	}
	tauMin := tauMax / float64(minPheromoneDivisor*n)
	for i := range tau {
		for j := range tau[i] {
			if tau[i][j] > tauMax {
				tau[i][j] = tauMax
			}
			if tau[i][j] < tauMin {
				tau[i][j] = tauMin
			}
		}
	}
}

// addField accumulates src into dst element-wise.
//
// Complexity: O(n²).
func addField(dst, src [][]float64) {
	for i := range dst {
		for j := range dst[i] {
			dst[i][j] += src[i][j]
		}
	}
}

// zeroField resets every cell.
//
// Complexity: O(n²).
func zeroField(field [][]float64) {
	for i := range field {
		for j := range field[i] {
			field[i][j] = 0
		}
	}
}

// newField allocates an n×n matrix filled with v.
//
// Complexity: O(n²).
func newField(n int, v float64) [][]float64 {
	field := make([][]float64, n)
	for i := range field {
		field[i] = make([]float64, n)
		for j := range field[i] {
			field[i][j] = v
		}
	}
	return field
}
