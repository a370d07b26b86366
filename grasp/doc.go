// Package grasp implements the greedy randomized adaptive search procedure.
//
// 🚀 What is GRASP?
//
//	A multi-start metaheuristic: every restart builds a fresh solution
//	with a greedy-randomized constructor (the greediness knob α blends
//	pure greed at 0 with pure randomness at 1), then refines it with
//	local search to a local optimum. The best local optimum across all
//	restarts wins. Because restarts are independent, GRASP explores
//	broadly where trajectory methods would have to tunnel.
//
// ✨ Key features:
//   - pluggable construction: Options.Construct receives α and the run's
//     RNG; when absent the driver degrades to Problem.Generate, turning
//     the run into repeated random restarts with refinement
//   - refinement via Problem.LocalSearch, or the builtin first-improvement
//     descent when the collaborator supplies none
//   - reactive α: an optional pool of α values sampled with probability
//     proportional to the historical quality each value produced,
//     re-weighted every ReactivePeriod restarts
//   - deterministic: a seed fully determines every restart
//
// ⚙️ Usage:
//
//	tsp := problems.RingTSP(8)
//	opts := grasp.DefaultOptions[int]()
//	opts.Construct = tsp.Construct
//	res, err := grasp.Search(tsp.Problem(), opts)
//
// One iteration = one restart; the convergence trace records the best
// cost seen so far after each restart. See example_test.go for a complete
// TSP walkthrough.
//
// Performance:
//
//   - Time:   O(Restarts · (construction + local search))
//   - Memory: O(n)
package grasp
