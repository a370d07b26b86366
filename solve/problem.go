// Package solve - callback contracts between collaborators and drivers.
//
// A collaborator describes its problem as a bundle of pure functions over
// genome slices. Problem-specific context (distance matrices, bounds, …)
// is captured by the closures themselves; the engine never inspects it.
//
// Contracts (uniform across all drivers):
//   - Callbacks receive pre-sized slices and must not resize or retain them.
//   - Callbacks draw randomness only from the *RNG they are handed, so a
//     run's determinism guarantee extends through collaborator code.
//   - Objective must be a pure function of the genome: no side effects,
//     no hidden state. Drivers may call it any number of times.
//   - Validity of produced genomes (e.g. "a tour visits every city once")
//     is the collaborator's responsibility, preserved by its own
//     neighbor/generate/crossover implementations.
package solve

// Objective evaluates a genome and returns its scalar cost.
type Objective[E Gene] func(data []E) float64

// Neighbor writes one small perturbation of src into dst.
// len(dst) == len(src) == Size; src must not be modified.
type Neighbor[E Gene] func(dst, src []E, rng *RNG)

// Perturb writes a strength-graded perturbation of src into dst.
// Strength semantics are driver-specific: large-neighborhood search passes
// a destruction fraction in (0,1], variable neighborhood search passes the
// neighborhood index k as a float. Stronger means further from src.
type Perturb[E Gene] func(dst, src []E, strength float64, rng *RNG)

// Generate fills dst with one valid random genome.
type Generate[E Gene] func(dst []E, rng *RNG)

// Crossover recombines parents p1, p2 into children c1, c2.
// All four slices have identical length and the parents must not be modified.
type Crossover[E Gene] func(p1, p2, c1, c2 []E, rng *RNG)

// Mutate perturbs data in place; rate is the per-gene mutation probability.
type Mutate[E Gene] func(data []E, rate float64, rng *RNG)

// LocalSearch refines data in place and returns the refined cost.
// Implementations should re-evaluate via obj so the returned cost matches
// the final genome exactly.
type LocalSearch[E Gene] func(data []E, obj Objective[E], rng *RNG) float64

// Hash maps a genome to a 64-bit fingerprint. Optional: drivers that need
// hashing (tabu search) fall back to HashGenes when none is supplied.
type Hash[E Gene] func(data []E) uint64

// Need is a bitmask naming the callbacks a driver requires.
// Combine with bitwise OR: NeedObjective | NeedNeighbor | NeedGenerate.
type Need uint8

const (
	// NeedObjective requires Problem.Objective.
	NeedObjective Need = 1 << iota

	// NeedNeighbor requires Problem.Neighbor.
	NeedNeighbor

	// NeedPerturb requires Problem.Perturb.
	NeedPerturb

	// NeedGenerate requires Problem.Generate.
	NeedGenerate

	// NeedCrossover requires Problem.Crossover.
	NeedCrossover

	// NeedMutate requires Problem.Mutate.
	NeedMutate
)

// Problem bundles a collaborator's callbacks with the genome size.
// Only the callbacks a driver declares via Need are required; the rest may
// stay nil. Problems are plain values: copy them freely, run them anywhere.
type Problem[E Gene] struct {
	// Size is the genome length. Must be positive.
	Size int

	// Objective evaluates a genome. Required by every driver.
	Objective Objective[E]

	// Neighbor produces one local move. Required by trajectory drivers.
	Neighbor Neighbor[E]

	// Perturb produces a strength-graded move. Required by VNS; optional
	// fallback for LNS when no destroy/repair operators are configured.
	Perturb Perturb[E]

	// Generate produces one valid random genome. Required by every driver
	// that must seed an initial solution or population.
	Generate Generate[E]

	// Crossover recombines two parents. Required by genetic and memetic.
	Crossover Crossover[E]

	// Mutate perturbs a genome in place. Required by genetic and memetic.
	Mutate Mutate[E]

	// LocalSearch refines a genome in place. Optional: GRASP, VNS and the
	// memetic driver fall back to Descent when nil.
	LocalSearch LocalSearch[E]

	// Hash fingerprints a genome. Optional: tabu search falls back to
	// HashGenes when nil.
	Hash Hash[E]
}

// Validate checks the structural requirements a driver declares: a positive
// Size and every callback named in need. First failure wins; tuning values
// are deliberately not checked here (drivers clamp those silently).
//
// Complexity: O(1).
func (p Problem[E]) Validate(need Need) error {
	if p.Size <= 0 {
		return ErrZeroSize
	}
	if need&NeedObjective != 0 && p.Objective == nil {
		return ErrMissingObjective
	}
	if need&NeedNeighbor != 0 && p.Neighbor == nil {
		return ErrMissingNeighbor
	}
	if need&NeedPerturb != 0 && p.Perturb == nil {
		return ErrMissingPerturb
	}
	if need&NeedGenerate != 0 && p.Generate == nil {
		return ErrMissingGenerate
	}
	if need&NeedCrossover != 0 && p.Crossover == nil {
		return ErrMissingCrossover
	}
	if need&NeedMutate != 0 && p.Mutate == nil {
		return ErrMissingMutate
	}
	return nil
}
