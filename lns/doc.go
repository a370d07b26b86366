// Package lns implements large neighborhood search and its adaptive
// variant (ALNS).
//
// 🚀 What is LNS?
//
//	A single-trajectory metaheuristic built on ruin and recreate: each
//	iteration destroys a degree-sized fraction of the incumbent, repairs
//	the hole with a reconstruction heuristic, and accepts the rebuilt
//	solution per the configured policy. Because a destroy/repair pair
//	moves many decisions at once, LNS escapes basins that single-move
//	neighborhoods crawl out of.
//
// ✨ Key features:
//   - pluggable destroy/repair operator pairs; with none configured the
//     driver degrades to Problem.Perturb with the degree as strength
//   - two acceptance policies: strictly-improving, or simulated-annealing
//     style with its own geometric temperature
//   - adaptive operator selection (ALNS): roulette over weights that are
//     re-learned every segment from the scores each pair earned (new
//     global best, improving, or merely accepted)
//   - deterministic: a seed fully determines the trajectory
//
// ⚙️ Usage:
//
//	tsp := problems.RingTSP(12)
//	opts := lns.DefaultOptions[int]()
//	opts.Operators = []lns.Operator[int]{
//		{Destroy: removeRandomCities, Repair: greedyInsert},
//		{Destroy: removeSegment, Repair: greedyInsert},
//	}
//	opts.Adaptive = true
//	res, err := lns.Search(tsp.Problem(), opts)
//
// One iteration = one destroy/repair round; the convergence trace records
// the best cost after each round.
//
// Performance:
//
//   - Time:   O(MaxIterations · (destroy + repair + eval))
//   - Memory: O(n)
package lns
