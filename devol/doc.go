// Package devol implements differential evolution over real vectors.
//
// 🚀 What is differential evolution?
//
//	A population metaheuristic for continuous domains: each target
//	vector receives a donor built from scaled differences of other
//	population members, binomial crossover mixes donor and target into
//	a trial, and the trial replaces the target only when it is not
//	worse. Difference vectors adapt the step size to the population's
//	own spread, so the search needs no explicit neighborhood.
//
// ✨ Key features:
//   - five donor strategies: Rand1, Best1, CurrentToBest1, Rand2, Best2
//   - binomial crossover with a forced coordinate, so every trial
//     inherits at least one donor gene
//   - not-worse replacement: ties move the population sideways across
//     plateaus instead of freezing on them
//   - optional per-coordinate bounds clamping
//   - deterministic: a seed fully determines the evolution
//
// ⚙️ Usage:
//
//	opts := devol.DefaultOptions()
//	opts.Lo, opts.Hi = instance.Bounds()
//	res, err := devol.Evolve(problem, opts)
//
// The run needs Problem.Objective and Problem.Generate; the vector
// arithmetic is the package's own, so no crossover or mutation callbacks
// are consumed.
//
// Performance:
//
//   - Time:   O(Generations · PopulationSize · (eval + dim))
//   - Memory: O(PopulationSize · dim)
package devol
