// Package swarm implements particle swarm optimization over real vectors.
//
// 🚀 What is particle swarm optimization?
//
//	A population metaheuristic modeled on flocking: particles fly
//	through the search space with a velocity pulled toward their own
//	best position (cognitive term) and the swarm's best position
//	(social term), with inertia carrying momentum between iterations.
//	The swarm converges as the two attractors agree.
//
// ✨ Key features:
//   - three inertia regimes: Constant, Linear (w decays from start to
//     end over the run) and Constriction (Clerc's χ from φ = c1+c2 > 4)
//   - per-coordinate velocity clamp; when unset it derives from the
//     domain span
//   - position clamp to [Lo, Hi] box bounds
//   - synchronous updates: every particle sees the same global best
//     within one iteration
//   - deterministic: a seed fully determines every trajectory
//
// ⚙️ Usage:
//
//	opts := swarm.DefaultOptions()
//	opts.Lo, opts.Hi = instance.Bounds()
//	res, err := swarm.Optimize(problem, opts)
//
// The run needs Problem.Objective and Problem.Generate; velocities are
// the package's own state, so no neighbor callback is consumed.
//
// Performance:
//
//   - Time:   O(MaxIterations · Particles · (eval + dim))
//   - Memory: O(Particles · dim)
package swarm
