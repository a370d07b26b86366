// Package solve provides the shared machinery behind every metaheuristic
// in lvlopt: solutions, results, callback contracts, deterministic RNG
// streams and convergence bookkeeping.
//
// 🚀 What lives here?
//
//	The pieces every driver (anneal, tabu, genetic, …) consumes:
//	  • Solution[E] — an owned genome buffer plus its evaluated cost
//	  • Result[E]   — best solution, convergence trace, iteration/evaluation
//	    counters and elapsed wall time
//	  • Problem[E]  — the callback bundle a collaborator supplies
//	    (objective, neighbor, perturb, generate, crossover, mutate, …)
//	  • RNG         — a seedable uniform/integer/Gaussian generator with
//	    independent derived substreams
//	  • Trace       — a pre-sized best-so-far recorder
//
// ✨ Design rules:
//   - Determinism: every stochastic step draws from an explicit *RNG;
//     same seed ⇒ identical trace and best solution, bit for bit.
//   - Genome encodings: permutations ([]int) and continuous vectors
//     ([]float64), selected at compile time via the Gene constraint.
//   - Problem context travels inside closures; callbacks never see
//     engine internals and the engine never inspects genome semantics.
//   - Strict sentinels for structural mistakes (missing callbacks,
//     non-positive size); numeric tuning is clamped by the drivers.
//   - Costs are stabilized to 1e-9 before recording so traces compare
//     bit-identically across platforms.
//
// ⚙️ Usage:
//
//	p := solve.Problem[int]{
//	  Size:      n,
//	  Objective: func(tour []int) float64 { return length(tour) },
//	  Neighbor:  swapTwoCities,
//	  Generate:  randomTour,
//	}
//	// hand p to any driver package, e.g. anneal.Anneal(p, opts).
//
// See the driver packages for complete, runnable examples.
package solve
