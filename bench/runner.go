package bench

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// Algorithm pairs a display name with a closure that performs one
// complete optimization run at the given seed and returns the best cost
// it found. Build produces these from a Scenario; tests and callers may
// also hand-roll them around any driver call.
type Algorithm struct {
	Name string
	Run  func(seed int64) (float64, error)
}

// Runner repeats algorithms and summarizes the batches.
type Runner struct {
	// Runs is the number of repetitions per algorithm. Values below 1
	// clamp to 1.
	Runs int

	// BaseSeed feeds the per-run seed derivation: repetition i runs at
	// solve.DeriveSeed(BaseSeed, i), so batches are reproducible and
	// the repetitions stay decorrelated.
	BaseSeed int64

	// Direction tells the summary which end of the cost axis is best.
	// The zero value minimizes.
	Direction solve.Direction
}

// Run repeats one algorithm and reduces the batch to a Summary.
//
// Complexity: O(Runs · run cost).
func (r Runner) Run(algo Algorithm) (Summary, error) {
	if algo.Run == nil {
		return Summary{}, ErrNilRun
	}
	if !r.Direction.Valid() {
		return Summary{}, solve.ErrBadDirection
	}

	runs := r.Runs
	if runs < 1 {
		runs = 1
	}

	costs := make([]float64, 0, runs)
	timesMs := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		begin := time.Now()
		cost, err := algo.Run(solve.DeriveSeed(r.BaseSeed, uint64(i)))
		if err != nil {
			return Summary{}, fmt.Errorf("bench: %s run %d: %w", algo.Name, i, err)
		}

		costs = append(costs, cost)
		timesMs = append(timesMs, float64(time.Since(begin).Microseconds())/1000.0)
	}

	return summarize(algo.Name, r.Direction, costs, timesMs), nil
}

// RunAll repeats every algorithm in order and collects the summaries.
// The first failing algorithm aborts the batch.
//
// Complexity: O(len(algos) · Runs · run cost).
func (r Runner) RunAll(algos []Algorithm) ([]Summary, error) {
	sums := make([]Summary, 0, len(algos))
	for _, a := range algos {
		s, err := r.Run(a)
		if err != nil {
			return nil, err
		}
		sums = append(sums, s)
	}

	return sums, nil
}
