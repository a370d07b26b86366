// Package genetic - parent selection rules.
//
// All three rules operate on a population sorted best-first (the driver
// sorts every generation) and return an index into it. Each consumes a
// bounded number of RNG draws so runs stay reproducible.
package genetic

import (
	"math"

	"github.com/katalvlaran/lvlopt/solve"
)

// rouletteOffsetShare sizes the positive offset added to every roulette
// weight, as a share of the population's cost span. It keeps the worst
// individual selectable and the rule total under flat populations.
const rouletteOffsetShare = 0.01

// selectParent routes to the configured selection rule.
//
// Complexity: Tournament O(k), Roulette O(P), Rank O(P).
func selectParent[E solve.Gene](pop []solve.Solution[E], o Options, rng *solve.RNG) int {
	switch o.Selection {
	case Roulette:
		return selectRoulette(pop, o.Direction, rng)
	case Rank:
		return selectRank(pop, rng)
	default:
		return selectTournament(pop, o.TournamentK, o.Direction, rng)
	}
}

// selectTournament draws k random individuals and returns the fittest.
//
// Complexity: O(k).
func selectTournament[E solve.Gene](pop []solve.Solution[E], k int, dir solve.Direction, rng *solve.RNG) int {
	best := rng.Intn(len(pop))
	for i := 1; i < k; i++ {
		c := rng.Intn(len(pop))
		if dir.Better(pop[c].Cost, pop[best].Cost) {
			best = c
		}
	}
	return best
}

// selectRoulette performs fitness-proportional selection. Costs are
// shifted against the worst individual so weights stay non-negative under
// minimization and negative costs; a small offset keeps every individual
// selectable. A flat population degenerates to a uniform draw.
//
// Complexity: O(P) time, O(1) extra space.
func selectRoulette[E solve.Gene](pop []solve.Solution[E], dir solve.Direction, rng *solve.RNG) int {
	var (
		worst  = pop[len(pop)-1].Cost // population is sorted best-first
		span   = math.Abs(pop[0].Cost - worst)
		offset = span*rouletteOffsetShare + 1e-12
		total  float64
		i      int
	)

	if span == 0 {
		return rng.Intn(len(pop))
	}

	for i = 0; i < len(pop); i++ {
		total += rouletteWeight(pop[i].Cost, worst, dir) + offset
	}

	var (
		r   = rng.Uniform() * total
		acc float64
	)
	for i = 0; i < len(pop); i++ {
		acc += rouletteWeight(pop[i].Cost, worst, dir) + offset
		if r < acc {
			return i
		}
	}

	// Rounding slack: the last individual absorbs it.
	return len(pop) - 1
}

// rouletteWeight maps a cost to its non-negative selection weight.
//
// Complexity: O(1).
func rouletteWeight(cost, worst float64, dir solve.Direction) float64 {
	if dir == solve.Maximize {
		return cost - worst
	}
	return worst - cost
}

// selectRank performs linear rank selection on the sorted population:
// the best rank carries weight P, the worst weight 1.
//
// Complexity: O(P) time, O(1) extra space.
func selectRank[E solve.Gene](pop []solve.Solution[E], rng *solve.RNG) int {
	var (
		n     = len(pop)
		total = float64(n) * float64(n+1) / 2
		r     = rng.Uniform() * total
		acc   float64
	)
	for i := 0; i < n; i++ {
		acc += float64(n - i)
		if r < acc {
			return i
		}
	}
	return n - 1
}
