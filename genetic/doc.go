// Package genetic implements a generational genetic algorithm with
// selection, elitism, crossover, mutation and optional per-child local
// search, plus the classic builtin operators for permutation and
// continuous genomes.
//
// 🚀 What is a genetic algorithm?
//
//	A population metaheuristic: candidate solutions compete for parent
//	slots (selection), recombine (crossover), drift (mutation) and the
//	best individuals survive verbatim between generations (elitism).
//
// ✨ Key features:
//   - selection: tournament, roulette (minimization-safe offset) or
//     linear rank
//   - elitism: the top individuals are copied unchanged every generation
//   - adaptive mutation: population diversity steers the mutation rate
//     between a configured floor and ceiling
//   - memetic mode: each child is refined by local search, with the
//     extra objective calls counted in Result.Evaluations
//   - builtin operators: OrderCrossover and PMXCrossover keep
//     permutations valid by construction; BlendCrossover (BLX-α) and
//     GaussianMutate clamp continuous genes to domain bounds
//
// ⚙️ Usage:
//
//	opts := genetic.DefaultOptions()
//	opts.Seed = 42
//	p.Crossover = genetic.OrderCrossover // permutation encoding
//	p.Mutate = genetic.SwapMutate[int]
//	res, err := genetic.Evolve(p, opts)
//
// The run needs Problem.Objective, Problem.Generate, Problem.Crossover
// and Problem.Mutate.
//
// Performance:
//
//   - Time:   O(Generations · PopulationSize · (eval + operators))
//   - Memory: two population arenas of PopulationSize solutions
//
// See example_test.go for a complete permutation walkthrough.
package genetic
