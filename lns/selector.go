// Package lns - adaptive operator selection.
package lns

import "github.com/katalvlaran/lvlopt/solve"

// selector draws operators by roulette and, when adaptive, re-learns the
// wheel every segment from the scores the operators earned.
type selector struct {
	weights  []float64 // roulette weights, uniform at start
	scores   []float64 // score earned by each operator this segment
	uses     []int     // draws charged to each operator this segment
	adaptive bool      // re-weight at segment boundaries
	segment  int       // iterations per segment
	reaction float64   // learning rate λ
	since    int       // iterations since the last re-weighting
}

// newSelector starts every operator at weight 1 so the first segment
// samples the pairs uniformly.
func newSelector(n int, adaptive bool, segment int, reaction float64) *selector {
	s := &selector{
		weights:  make([]float64, n),
		scores:   make([]float64, n),
		uses:     make([]int, n),
		adaptive: adaptive,
		segment:  segment,
		reaction: reaction,
	}
	for i := range s.weights {
		s.weights[i] = 1
	}

	return s
}

// pick draws one operator index by roulette over the current weights.
//
// Complexity: O(n).
func (s *selector) pick(rng *solve.RNG) int {
	var total float64
	for _, w := range s.weights {
		total += w
	}

	r := rng.Uniform() * total
	for i, w := range s.weights {
		r -= w
		if r < 0 {
			return i
		}
	}

	// Float residue lands on the last entry.
	return len(s.weights) - 1
}

// score credits operator i for one finished iteration: a new global best
// earns the most, mere acceptance still outranks improving the current
// solution. At segment boundaries the wheel is re-learned.
//
// Complexity: O(1) amortized, O(n) on a segment boundary.
func (s *selector) score(i int, newBest, improving, accepted bool) {
	s.uses[i]++
	switch {
	case newBest:
		s.scores[i] += scoreNewBest
	case accepted && !improving:
		s.scores[i] += scoreAccepted
	case accepted:
		s.scores[i] += scoreImproving
	}

	s.since++
	if !s.adaptive || s.since < s.segment {
		return
	}
	s.since = 0
	s.reweight()
}

// reweight folds each used operator's average segment score into its
// weight with learning rate λ, floors the result so nothing starves, and
// resets the segment counters.
//
// Complexity: O(n).
func (s *selector) reweight() {
	for i := range s.weights {
		if s.uses[i] == 0 {
			continue
		}
		s.weights[i] = (1-s.reaction)*s.weights[i] +
			s.reaction*s.scores[i]/float64(s.uses[i])
		if s.weights[i] < weightFloor {
			s.weights[i] = weightFloor
		}
		s.scores[i] = 0
		s.uses[i] = 0
	}
}
