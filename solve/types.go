package solve

import (
	"errors"
	"math"
)

// ErrZeroSize is returned when a problem declares a non-positive genome size.
var ErrZeroSize = errors.New("solve: problem size must be positive")

// ErrMissingObjective is returned when a driver requires the objective callback.
var ErrMissingObjective = errors.New("solve: objective callback is required")

// ErrMissingNeighbor is returned when a driver requires the neighbor callback.
var ErrMissingNeighbor = errors.New("solve: neighbor callback is required")

// ErrMissingPerturb is returned when a driver requires the perturb callback.
var ErrMissingPerturb = errors.New("solve: perturb callback is required")

// ErrMissingGenerate is returned when a driver requires the generate callback.
var ErrMissingGenerate = errors.New("solve: generate callback is required")

// ErrMissingCrossover is returned when a driver requires the crossover callback.
var ErrMissingCrossover = errors.New("solve: crossover callback is required")

// ErrMissingMutate is returned when a driver requires the mutate callback.
var ErrMissingMutate = errors.New("solve: mutate callback is required")

// ErrBadDirection is returned when a config carries an unknown Direction value.
var ErrBadDirection = errors.New("solve: unknown optimization direction")

// Direction selects the optimization sense of a run.
//
//   - Minimize — lower cost is better (the zero value).
//   - Maximize — higher cost is better.
type Direction int

const (
	// Minimize treats lower costs as better.
	Minimize Direction = iota

	// Maximize treats higher costs as better.
	Maximize
)

// Valid reports whether d is one of the two known directions.
//
// Complexity: O(1).
func (d Direction) Valid() bool {
	return d == Minimize || d == Maximize
}

// Better reports whether cost a is strictly better than cost b under d.
//
// Complexity: O(1).
func (d Direction) Better(a, b float64) bool {
	if d == Maximize {
		return a > b
	}
	return a < b
}

// NotWorse reports whether cost a is at least as good as cost b under d.
// Used by replacement rules that accept ties (e.g. differential evolution).
//
// Complexity: O(1).
func (d Direction) NotWorse(a, b float64) bool {
	if d == Maximize {
		return a >= b
	}
	return a <= b
}

// Worst returns the worst representable cost under d: +Inf when minimizing,
// -Inf when maximizing. Fresh solutions start at this value so any evaluated
// candidate immediately dominates them.
//
// Complexity: O(1).
func (d Direction) Worst() float64 {
	if d == Maximize {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
