// Package solve - run outcome and convergence bookkeeping.
//
// Every driver produces the same Result shape and records its convergence
// through a Trace, so downstream tooling (tests, the bench harness, plots)
// treats all ten algorithms uniformly.
//
// Design:
//   - One convergence sample per iteration, always the best cost seen so
//     far, which makes monotonicity hold by construction.
//   - The trace buffer is allocated once, sized to the configured iteration
//     cap; recording past the cap is silently skipped (bounded memory, no
//     error). len(Samples()) therefore equals the iterations executed.
//   - Samples are stabilized to 1e-9 so traces compare bit-identically
//     across platforms and optimization levels.
package solve

import (
	"math"
	"time"
)

// roundScale controls cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

// Round1e9 returns x rounded to 1e-9 absolute precision. Drivers apply it
// to every reported and recorded cost. Infinities pass through unchanged.
//
// Complexity: O(1).
func Round1e9(x float64) float64 {
	if math.IsInf(x, 0) {
		return x
	}
	return math.Round(x*roundScale) / roundScale
}

// Result is the outcome of one driver run.
type Result[E Gene] struct {
	// Best is the best solution found, deep-copied from the run's working
	// state. Best.Cost equals the objective of Best.Data within 1e-9.
	Best Solution[E]

	// Convergence holds one best-so-far cost per executed iteration.
	// Length equals Iterations, capped at the configured maximum.
	Convergence []float64

	// Iterations is the number of iterations executed.
	Iterations int

	// Evaluations counts objective calls observed by the driver. A
	// collaborator's LocalSearch is opaque and counts as one evaluation.
	Evaluations int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Trace records best-so-far costs, one sample per iteration, into a buffer
// pre-sized at construction.
type Trace struct {
	samples []float64
}

// NewTrace returns a recorder with capacity for maxSamples entries.
// Negative capacities are treated as zero.
//
// Complexity: O(1) time, O(maxSamples) space.
func NewTrace(maxSamples int) *Trace {
	if maxSamples < 0 {
		maxSamples = 0
	}
	return &Trace{samples: make([]float64, 0, maxSamples)}
}

// Record appends one stabilized sample. Samples beyond the construction
// capacity are silently dropped.
//
// Complexity: O(1).
func (t *Trace) Record(best float64) {
	if len(t.samples) == cap(t.samples) {
		return
	}
	t.samples = append(t.samples, Round1e9(best))
}

// Len returns the number of samples recorded so far.
//
// Complexity: O(1).
func (t *Trace) Len() int {
	return len(t.samples)
}

// Samples returns the recorded trace. The slice is the recorder's backing
// store; callers take ownership once the run is over.
//
// Complexity: O(1).
func (t *Trace) Samples() []float64 {
	return t.samples
}
