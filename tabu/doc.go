// Package tabu implements tabu search over any genome encoding.
//
// 🚀 What is tabu search?
//
//	A trajectory metaheuristic with short-term memory: the walk always
//	moves to the best admissible neighbor, even when that worsens the
//	cost, and a tabu list of recently visited states forbids immediate
//	backtracking. Aspiration overrides the taboo when a forbidden state
//	would beat the best solution ever seen.
//
// ✨ Key features:
//   - ring-buffer tabu list keyed by genome hashes, capacity = tenure
//   - aspiration: tabu states are admitted when they dominate the best
//   - frequency memory with a visit-count penalty that pushes the walk
//     away from over-visited states (diversification)
//   - intensification (jump back to the best) and diversification
//     (regenerate from scratch) on stagnation triggers
//   - reactive tenure: the list grows when states are revisited and
//     shrinks on improvement, resizing in place
//   - deterministic: a seed fully determines the trajectory
//
// ⚙️ Usage:
//
//	opts := tabu.DefaultOptions()
//	opts.Seed = 42
//	res, err := tabu.Search(problem, opts)
//
// The run needs Problem.Objective, Problem.Neighbor and Problem.Generate;
// Problem.Hash is optional (a built-in genome hash is the fallback).
//
// Performance:
//
//   - Time:   O(MaxIterations · NeighborsPerIter · (eval + hash))
//   - Memory: O(n + tenure + frequency capacity)
//
// See example_test.go for a complete TSP walkthrough.
package tabu
