// Package solve - builtin fallback local search.
//
// Several drivers (GRASP, VNS, memetic) call a local-search step that the
// collaborator may or may not supply. When Problem.LocalSearch is nil they
// fall back to Descent: a stochastic first-improvement hill descent built
// from the neighbor callback alone.
package solve

// descentMaxRounds bounds the number of improvement rounds so a noisy
// neighborhood cannot stall a run; typical descents converge far earlier.
const descentMaxRounds = 100

// defaultDescentTries floors the per-round sample count for tiny genomes.
const defaultDescentTries = 8

// Descent refines data in place by sampling up to tries neighbors per round
// and moving to the first one that improves cost; a round without any
// improvement ends the descent. Returns the refined cost and the number of
// objective evaluations consumed.
//
// tries<=0 is clamped to max(8, len(data)).
//
// Complexity: O(rounds · tries · eval) time, O(n) extra space.
func Descent[E Gene](p Problem[E], data []E, cost float64, dir Direction, tries int, rng *RNG) (float64, int) {
	if tries <= 0 {
		tries = len(data)
		if tries < defaultDescentTries {
			tries = defaultDescentTries
		}
	}

	var (
		scratch = make([]E, len(data)) // candidate buffer, reused every sample
		evals   int                    // objective calls performed
		round   int
		t       int
		c       float64
	)

	for round = 0; round < descentMaxRounds; round++ {
		var improved bool
		for t = 0; t < tries; t++ {
			p.Neighbor(scratch, data, rng)
			c = p.Objective(scratch)
			evals++
			if dir.Better(c, cost) {
				// First improvement: move immediately and restart sampling
				// from the new point.
				copy(data, scratch)
				cost = c
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}

	return cost, evals
}
