// Package grasp - reactive α bookkeeping.
package grasp

import "github.com/katalvlaran/lvlopt/solve"

// reactivePool tracks the quality each pooled α value has produced and
// converts it into selection weights. All state is private to one run.
type reactivePool struct {
	alphas  []float64 // candidate greediness values
	weights []float64 // selection weights, uniform at start
	sums    []float64 // cumulative final cost charged to each α
	counts  []int     // restarts charged to each α
	period  int       // restarts between re-weightings
	since   int       // restarts since the last re-weighting
}

// newReactivePool starts every α at weight 1 so the first period samples
// the pool uniformly.
func newReactivePool(alphas []float64, period int) *reactivePool {
	p := &reactivePool{
		alphas:  alphas,
		weights: make([]float64, len(alphas)),
		sums:    make([]float64, len(alphas)),
		counts:  make([]int, len(alphas)),
		period:  period,
	}
	for i := range p.weights {
		p.weights[i] = 1
	}

	return p
}

// pick draws one α index by roulette over the current weights.
//
// Complexity: O(len(alphas)).
func (p *reactivePool) pick(rng *solve.RNG) int {
	var total float64
	for _, w := range p.weights {
		total += w
	}

	r := rng.Uniform() * total
	for i, w := range p.weights {
		r -= w
		if r < 0 {
			return i
		}
	}

	// Float residue lands on the last entry.
	return len(p.weights) - 1
}

// record charges one finished restart's cost to α index i and re-weights
// the pool once per period.
//
// Complexity: O(1) amortized, O(len(alphas)) on a re-weighting restart.
func (p *reactivePool) record(i int, cost float64, dir solve.Direction) {
	p.sums[i] += cost
	p.counts[i]++
	p.since++
	if p.since < p.period {
		return
	}
	p.since = 0
	p.reweight(dir)
}

// reweight maps each sampled α's average cost onto [reactiveFloor, 1]:
// the best average earns weight 1, the worst earns the floor, entries not
// yet sampled keep their previous weight. The min-max normalization works
// for either direction and for negative costs, where the textbook
// incumbent/average ratio would not. Fewer than two sampled values, or
// all averages equal, leaves the weights unchanged.
//
// Complexity: O(len(alphas)).
func (p *reactivePool) reweight(dir solve.Direction) {
	var (
		bestAvg  float64
		worstAvg float64
		sampled  int
	)
	for i := range p.alphas {
		if p.counts[i] == 0 {
			continue
		}
		avg := p.sums[i] / float64(p.counts[i])
		if sampled == 0 {
			bestAvg, worstAvg = avg, avg
		} else if dir.Better(avg, bestAvg) {
			bestAvg = avg
		} else if dir.Better(worstAvg, avg) {
			worstAvg = avg
		}
		sampled++
	}
	if sampled < 2 || bestAvg == worstAvg {
		return
	}

	span := bestAvg - worstAvg
	for i := range p.alphas {
		if p.counts[i] == 0 {
			continue
		}
		avg := p.sums[i] / float64(p.counts[i])
		p.weights[i] = reactiveFloor + (1-reactiveFloor)*(avg-worstAvg)/span
	}
}
