// Package problems supplies ready-made benchmark collaborators for the
// lvlopt drivers: symmetric TSP instances over permutation genomes and
// the classic continuous test suite over float64 vectors.
//
// 🚀 What is a collaborator?
//
//	The engine is problem-agnostic: it only sees the callback bundle in
//	solve.Problem. A collaborator owns the problem data (a distance
//	matrix, domain bounds) inside closures and guarantees the validity
//	of every genome its callbacks produce.
//
// ✨ What ships here:
//   - TSP: Euclidean instances from coordinates, a ring layout with a
//     known optimum, and seeded random instances; segment-reversal
//     neighbors, 2-opt local search, a greedy-randomized constructor
//     for GRASP and a 1/d heuristic matrix for ant colonies
//   - Continuous: Sphere, Rosenbrock, Rastrigin, Ackley and Griewank,
//     each with its canonical bounds and known optimum; Gaussian-step
//     neighbors and bound-clamped operators
//
// ⚙️ Usage:
//
//	inst := problems.RingTSP(12)
//	res, err := anneal.Anneal(inst.Problem(), anneal.DefaultOptions())
//
//	fn := problems.Rastrigin(8)
//	res, err := swarm.Optimize(fn.Problem(), swarm.DefaultOptions())
//
// Every callback draws randomness only from the *solve.RNG it receives,
// so runs stay deterministic end to end.
package problems
