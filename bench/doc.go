// Package bench repeats optimization runs and turns them into numbers
// you can compare: best, mean, standard deviation and median of cost,
// plus wall-clock timing, per algorithm.
//
// 🚀 Why repeat?
//
//	Every driver in this module is stochastic. A single run tells you
//	what one seed did; only a batch of runs tells you what the
//	algorithm does. The Runner executes the same configuration Runs
//	times, deriving a decorrelated seed for each repetition from
//	BaseSeed, and summarizes the batch with gonum's stat package.
//
// ✨ What ships here:
//   - Algorithm: a name plus a closure that performs one full run at a
//     given seed and reports the best cost found
//   - Runner: repeats an Algorithm and produces a Summary
//   - Report: a batch of summaries under one uuid, exportable to CSV
//   - Scenario: a YAML description of problem, algorithms and budgets
//     that Build turns into ready-to-run closures
//
// ⚙️ Usage:
//
//	sc, err := bench.LoadScenario("shootout.yaml")
//	runner, algos, err := sc.Build()
//	sums, err := runner.RunAll(algos)
//	report := bench.NewReport(sc.Name, sums)
//	err = report.WriteCSV("results.csv")
//
// Scenario files look like:
//
//	name: ring-shootout
//	problem: {kind: ring, size: 12}
//	runs: 20
//	base_seed: 1000
//	algorithms:
//	  - {name: anneal, iterations: 4000}
//	  - {name: genetic, iterations: 150, population: 40}
//
// Cost columns of a Summary are deterministic for a fixed scenario;
// only the timing columns vary between machines.
package bench
