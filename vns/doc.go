// Package vns implements variable neighborhood search.
//
// 🚀 What is VNS?
//
//	A single-trajectory metaheuristic built on one observation: a local
//	optimum for one neighborhood is rarely one for all of them. Each
//	iteration shakes the incumbent with a perturbation of strength k,
//	refines the shaken point, and accepts it only when it improves.
//	Improvement resets k to 1; failure advances k, so the search probes
//	progressively larger jumps before cycling back to small ones.
//
// ✨ Key features:
//   - three variants: Basic (shake + local search), Reduced (shake only,
//     cheapest per iteration), General (shake + variable neighborhood
//     descent across the whole k ladder)
//   - shaking through Problem.Perturb with the neighborhood index as the
//     strength argument, so the collaborator decides what "further" means
//   - refinement via Problem.LocalSearch, or the builtin first-improvement
//     descent when the collaborator supplies none
//   - deterministic: a seed fully determines the trajectory
//
// ⚙️ Usage:
//
//	inst := problems.Rastrigin(6)
//	opts := vns.DefaultOptions()
//	opts.Variant = vns.General
//	res, err := vns.Search(inst.Problem(), opts)
//
// One iteration = one shake/improve/accept round; the convergence trace
// records the best cost after each round.
//
// Performance:
//
//   - Time:   O(MaxIterations · (eval + improvement))
//   - Memory: O(n)
package vns
