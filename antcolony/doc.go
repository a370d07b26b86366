// Package antcolony implements ant colony optimization over index tours.
//
// 🚀 What is ant colony optimization?
//
//	A constructive population metaheuristic: artificial ants build
//	tours city by city, choosing the next step with probability
//	proportional to τ^α·η^β, where τ is the shared pheromone memory
//	and η a static desirability heuristic. Good tours deposit more
//	pheromone, evaporation forgets stale trails, and the colony
//	gradually concentrates on short cycles.
//
// ✨ Key features:
//   - three deposit variants: AntSystem (every ant reinforces),
//     ElitistAS (the best-so-far tour gets extra weight every
//     iteration) and MaxMin (only the best deposits, with pheromone
//     clamped to [τmin, τmax] derived from the best cost)
//   - static heuristic matrix η injected via Options.Heuristic; when
//     absent the colony walks on pheromone alone
//   - symmetric arc treatment: deposits land on both directions
//   - deterministic: a seed fully determines every tour
//
// ⚙️ Usage:
//
//	inst := problems.RingTSP(16)
//	opts := antcolony.DefaultOptions()
//	opts.Heuristic = inst.Heuristic()
//	res, err := antcolony.Optimize(inst.Problem(), opts)
//
// The run needs Problem.Objective only; construction replaces the
// neighbor and generate callbacks entirely.
//
// Performance:
//
//   - Time:   O(MaxIterations · Ants · n²)
//   - Memory: O(n²) pheromone + O(n) per-construction scratch
package antcolony
