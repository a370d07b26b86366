// Package anneal implements simulated annealing over any genome encoding.
//
// 🚀 What is simulated annealing?
//
//	A trajectory metaheuristic inspired by metallurgic annealing: a
//	temperature parameter T starts hot, letting the search accept
//	worsening moves and roam freely, then cools so the walk gradually
//	freezes into a good basin. Worsening moves of magnitude Δ are
//	accepted with the Metropolis probability exp(−Δ/T).
//
// ✨ Key features:
//   - four cooling schedules: Geometric (T←αT), Linear, Logarithmic and
//     Adaptive (cooling factor steered by the recent acceptance rate)
//   - Markov chains: ChainLength proposals per temperature step
//   - optional reheating when the walk freezes prematurely
//   - optional auto-calibration of the initial temperature from sampled
//     neighbor deltas and a target acceptance rate
//   - deterministic: a seed fully determines the trajectory
//
// ⚙️ Usage:
//
//	opts := anneal.DefaultOptions()
//	opts.Seed = 42
//	res, err := anneal.Anneal(problem, opts)
//
// The run needs Problem.Objective, Problem.Neighbor and Problem.Generate.
//
// Performance:
//
//   - Time:   O(MaxIterations · (eval + neighbor))
//   - Memory: O(n) working buffers + O(MaxIterations) convergence trace
//
// See example_test.go for a complete TSP walkthrough.
package anneal
