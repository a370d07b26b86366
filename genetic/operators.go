// Package genetic - builtin crossover and mutation operators.
//
// Two families ship with the engine:
//
//   - Permutation operators (OrderCrossover, PMXCrossover, SwapMutate,
//     InsertMutate) assume genomes are permutations of 0..n-1 and keep
//     that property by construction, so a valid tour can never become
//     invalid through recombination.
//   - Continuous operators (BlendCrossover, GaussianMutate) are builders:
//     they capture the domain bounds and return a callback that clamps
//     every produced gene into them.
//
// All operators draw randomness only from the *solve.RNG they receive.
package genetic

import "github.com/katalvlaran/lvlopt/solve"

// defaultGaussianSigma is used when a GaussianMutate builder receives a
// non-positive step width.
const defaultGaussianSigma = 0.1

// OrderCrossover (OX) copies a random segment from each parent and fills
// the remaining positions with the other parent's genes in their order of
// appearance after the segment. Both children are valid permutations of
// 0..n-1 whenever the parents are.
//
// Matches solve.Crossover[int].
//
// Complexity: O(n) time, O(n) scratch.
func OrderCrossover(p1, p2, c1, c2 []int, rng *solve.RNG) {
	n := len(p1)
	if n == 0 {
		return
	}

	a, b := segment(n, rng)
	oxChild(c1, p1, p2, a, b)
	oxChild(c2, p2, p1, a, b)
}

// oxChild builds one OX child: keep's segment [a,b] verbatim, the rest
// filled from fill starting after b, skipping genes already present.
//
// Complexity: O(n).
func oxChild(child, keep, fill []int, a, b int) {
	var (
		n    = len(keep)
		used = make([]bool, n) // gene already placed
		pos  = (b + 1) % n     // next write position, wrapping
		k    int
		v    int
	)

	for k = a; k <= b; k++ {
		child[k] = keep[k]
		used[keep[k]] = true
	}

	for k = 0; k < n; k++ {
		v = fill[(b+1+k)%n]
		if used[v] {
			continue
		}
		child[pos] = v
		used[v] = true
		pos = (pos + 1) % n
	}
}

// PMXCrossover (partially mapped crossover) copies a random segment from
// each parent and places the other parent's displaced genes through the
// segment's value mapping, preserving absolute positions where possible.
// Both children are valid permutations of 0..n-1 whenever the parents are.
//
// Matches solve.Crossover[int].
//
// Complexity: O(n) time, O(n) scratch.
func PMXCrossover(p1, p2, c1, c2 []int, rng *solve.RNG) {
	n := len(p1)
	if n == 0 {
		return
	}

	a, b := segment(n, rng)
	pmxChild(c1, p1, p2, a, b)
	pmxChild(c2, p2, p1, a, b)
}

// pmxChild builds one PMX child: keep's segment [a,b] verbatim; fill's
// segment genes displaced by it land at the position their replacement
// chain exits the segment; every other position takes fill's gene.
//
// Complexity: O(n) amortized (each chain hop consumes a segment slot).
func pmxChild(child, keep, fill []int, a, b int) {
	var (
		n      = len(keep)
		pos    = make([]int, n)  // pos[v] = index of gene v in fill
		filled = make([]bool, n) // child position already written
		inner  = make([]bool, n) // gene already present from keep's segment
		i      int
		j      int
		v      int
	)

	for i, v = range fill {
		pos[v] = i
	}
	for i = a; i <= b; i++ {
		child[i] = keep[i]
		filled[i] = true
		inner[keep[i]] = true
	}

	// Chain-place fill's segment genes displaced by keep's segment.
	for i = a; i <= b; i++ {
		v = fill[i]
		if inner[v] {
			continue
		}
		j = i
		for j >= a && j <= b {
			j = pos[keep[j]]
		}
		child[j] = v
		filled[j] = true
	}

	for i = 0; i < n; i++ {
		if !filled[i] {
			child[i] = fill[i]
		}
	}
}

// SwapMutate exchanges each position, with probability rate, with another
// uniformly chosen position. Permutations stay permutations.
//
// Matches solve.Mutate[E].
//
// Complexity: O(n).
func SwapMutate[E solve.Gene](data []E, rate float64, rng *solve.RNG) {
	n := len(data)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		if rng.Uniform() < rate {
			j := rng.Intn(n)
			data[i], data[j] = data[j], data[i]
		}
	}
}

// InsertMutate removes each position, with probability rate, and reinserts
// it at a uniformly chosen position, shifting the span between them.
// Permutations stay permutations.
//
// Matches solve.Mutate[E].
//
// Complexity: O(n) per triggered move, O(n·rate) expected moves.
func InsertMutate[E solve.Gene](data []E, rate float64, rng *solve.RNG) {
	n := len(data)
	if n < 2 {
		return
	}

	var (
		i  int
		to int
		v  E
	)
	for i = 0; i < n; i++ {
		if rng.Uniform() >= rate {
			continue
		}
		to = rng.Intn(n)
		v = data[i]
		switch {
		case to < i:
			copy(data[to+1:i+1], data[to:i])
			data[to] = v
		case to > i:
			copy(data[i:to], data[i+1:to+1])
			data[to] = v
		}
	}
}

// BlendCrossover returns a BLX-α crossover for continuous genomes: each
// child gene is drawn uniformly from the parents' interval extended by
// alpha on both sides, then clamped into [lo[i], hi[i]]. Nil or short
// bounds leave the corresponding genes unclamped.
//
// The returned callback matches solve.Crossover[float64].
//
// Complexity: O(n) per call.
func BlendCrossover(alpha float64, lo, hi []float64) solve.Crossover[float64] {
	if alpha < 0 {
		alpha = 0
	}
	return func(p1, p2, c1, c2 []float64, rng *solve.RNG) {
		var (
			a, b  float64
			span  float64
			gLo   float64
			gSpan float64
		)
		for i := range p1 {
			a, b = p1[i], p2[i]
			if a > b {
				a, b = b, a
			}
			span = b - a
			gLo = a - alpha*span
			gSpan = span + 2*alpha*span

			c1[i] = clampGene(gLo+rng.Uniform()*gSpan, lo, hi, i)
			c2[i] = clampGene(gLo+rng.Uniform()*gSpan, lo, hi, i)
		}
	}
}

// GaussianMutate returns a Gaussian mutation for continuous genomes: each
// gene is nudged, with probability rate, by a normal step of width sigma,
// then clamped into [lo[i], hi[i]]. Non-positive sigma falls back to 0.1.
//
// The returned callback matches solve.Mutate[float64].
//
// Complexity: O(n) per call.
func GaussianMutate(sigma float64, lo, hi []float64) solve.Mutate[float64] {
	if sigma <= 0 {
		sigma = defaultGaussianSigma
	}
	return func(data []float64, rate float64, rng *solve.RNG) {
		for i := range data {
			if rng.Uniform() < rate {
				data[i] = clampGene(data[i]+sigma*rng.Gaussian(), lo, hi, i)
			}
		}
	}
}

// segment draws a random inclusive index range [a,b] within 0..n-1.
//
// Complexity: O(1).
func segment(n int, rng *solve.RNG) (int, int) {
	a := rng.Intn(n)
	b := rng.Intn(n)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// clampGene pins x into the i-th domain bound when one is provided.
//
// Complexity: O(1).
func clampGene(x float64, lo, hi []float64, i int) float64 {
	if i < len(lo) && x < lo[i] {
		return lo[i]
	}
	if i < len(hi) && x > hi[i] {
		return hi[i]
	}
	return x
}
