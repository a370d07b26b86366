// Package memetic implements a memetic algorithm: a genetic loop with
// mandatory per-individual local search.
//
// 🚀 What is a memetic algorithm?
//
//	Evolution plus lifetime learning. Each learning generation every
//	individual is refined by local search before selection, so parents
//	compete on what they can become, not on what they were born as.
//	The Learning mode decides what the refinement leaves behind:
//	Lamarckian writes the improved genotype and cost back into the
//	population, Baldwinian only credits the improved fitness while the
//	genotype stays as generated.
//
// ✨ Key features:
//   - tournament selection over learned fitness, elitism over the same,
//     crossover and mutation through the collaborator's callbacks
//   - learning cadence: LocalSearchEvery selects which generations pay
//     for refinement; the first generation always learns
//   - refinement via Problem.LocalSearch, or the builtin first-improvement
//     descent when the collaborator supplies none
//   - the best-so-far is tracked on true genotype cost, so Result.Best
//     always satisfies Best.Cost == Objective(Best.Data) even under
//     Baldwinian learning
//   - deterministic: a seed fully determines the evolution
//
// ⚙️ Usage:
//
//	tsp := problems.RingTSP(10)
//	opts := memetic.DefaultOptions()
//	opts.Learning = memetic.Baldwinian
//	res, err := memetic.Evolve(tsp.Problem(), opts)
//
// One iteration = one generation; the convergence trace records the best
// true cost after each generation.
//
// Performance:
//
//   - Time:   O(Generations · PopulationSize · (eval + operators + learning))
//   - Memory: O(PopulationSize · n)
package memetic
