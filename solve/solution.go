// Package solve - solution container shared by all drivers.
//
// A Solution owns its genome buffer exclusively: drivers clone whenever two
// trajectories must diverge (best-so-far vs. working copy), and no buffer is
// ever aliased outward. Release is the garbage collector's job, so the
// destroy step of the lifecycle is a no-op here and trivially idempotent.
package solve

// Gene constrains genome element types to the two supported encodings:
// permutation indices (~int) and continuous coordinates (~float64).
type Gene interface {
	~int | ~float64
}

// Solution is an owned genome buffer plus its last evaluated cost.
//
// Invariant maintained by the drivers: after a run, Cost equals the
// objective of Data within 1e-9 (see Round1e9).
type Solution[E Gene] struct {
	// Data is the genome. Length equals the problem size.
	Data []E

	// Cost is the objective value of Data, or Direction.Worst() when the
	// genome has not been evaluated yet.
	Cost float64
}

// NewSolution allocates a zeroed genome of the given size with the cost set
// to the worst representable value for dir, so the first evaluated candidate
// always wins any best-so-far comparison. Negative sizes allocate nothing.
//
// Complexity: O(size) time and space.
func NewSolution[E Gene](size int, dir Direction) Solution[E] {
	if size < 0 {
		size = 0
	}
	return Solution[E]{
		Data: make([]E, size),
		Cost: dir.Worst(),
	}
}

// Clone returns a deep copy: a freshly owned genome with the same contents
// and cost. The receiver is left untouched.
//
// Complexity: O(n) time and space.
func (s Solution[E]) Clone() Solution[E] {
	var out Solution[E]
	out.Data = make([]E, len(s.Data))
	copy(out.Data, s.Data)
	out.Cost = s.Cost
	return out
}

// CopyFrom deep-copies src into the receiver, reusing the existing buffer
// when the sizes already match. Use this in hot loops to avoid allocation.
//
// Complexity: O(n) time, O(1) extra space when sizes match.
func (s *Solution[E]) CopyFrom(src Solution[E]) {
	if len(s.Data) != len(src.Data) {
		s.Data = make([]E, len(src.Data))
	}
	copy(s.Data, src.Data)
	s.Cost = src.Cost
}
