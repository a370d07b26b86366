// Command optbench repeats the lvlopt drivers over a benchmark problem
// and prints comparable statistics per algorithm.
//
// Either point it at a YAML scenario:
//
//	optbench -scenario shootout.yaml -csv results.csv
//
// or describe the experiment inline:
//
//	optbench -problem ring -size 12 -algos anneal,tabu,genetic -runs 20
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/lvlopt/bench"
)

func main() {
	var (
		scenarioPath = flag.String("scenario", "", "YAML scenario file; when set, the inline flags below are ignored")
		csvPath      = flag.String("csv", "", "write the report as CSV to this path")

		problem      = flag.String("problem", "ring", "problem kind: ring, random, sphere, rosenbrock, rastrigin, ackley, griewank")
		size         = flag.Int("size", 12, "problem size: cities for tours, dimensions for functions")
		instanceSeed = flag.Int64("instance-seed", 7, "instance seed for the random tour kind")

		algos    = flag.String("algos", "anneal,tabu,genetic", "comma-separated algorithm names")
		runs     = flag.Int("runs", bench.DefaultRuns, "repetitions per algorithm")
		baseSeed = flag.Int64("seed", 1000, "base seed; repetition i derives its own stream from it")
		iters    = flag.Int("iters", 0, "iteration/generation/restart budget override; 0 keeps driver defaults")
		pop      = flag.Int("pop", 0, "population size override for population drivers; 0 keeps driver defaults")
	)
	flag.Parse()

	sc, err := scenario(*scenarioPath, *problem, *size, *instanceSeed, *algos, *runs, *baseSeed, *iters, *pop)
	if err != nil {
		fmt.Fprintln(os.Stderr, "optbench:", err)
		os.Exit(2)
	}

	runner, algorithms, err := sc.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "optbench:", err)
		os.Exit(2)
	}

	sums := make([]bench.Summary, 0, len(algorithms))
	for _, a := range algorithms {
		fmt.Printf("running %s on %s (%d runs)...\n", a.Name, sc.Problem.Kind, runner.Runs)
		s, err := runner.Run(a)
		if err != nil {
			fmt.Fprintln(os.Stderr, "optbench:", err)
			os.Exit(1)
		}
		sums = append(sums, s)
	}

	printSummaries(sums)

	if *csvPath != "" {
		report := bench.NewReport(sc.Name, sums)
		if err := report.WriteCSV(*csvPath); err != nil {
			fmt.Fprintln(os.Stderr, "optbench: write csv:", err)
			os.Exit(1)
		}
		fmt.Println("saved:", *csvPath)
	}
}

// scenario loads the YAML file when given, otherwise assembles one from
// the inline flags.
func scenario(path, problem string, size int, instanceSeed int64, algos string, runs int, baseSeed int64, iters, pop int) (*bench.Scenario, error) {
	if path != "" {
		return bench.LoadScenario(path)
	}

	names := splitCSV(algos)
	if len(names) == 0 {
		return nil, bench.ErrNoAlgorithms
	}

	sc := &bench.Scenario{
		Name:     "adhoc",
		Problem:  bench.ProblemSpec{Kind: problem, Size: size, Seed: instanceSeed},
		Runs:     runs,
		BaseSeed: baseSeed,
	}
	for _, n := range names {
		sc.Algorithms = append(sc.Algorithms, bench.AlgorithmSpec{
			Name:       n,
			Iterations: iters,
			Population: pop,
		})
	}

	return sc, nil
}

func printSummaries(sums []bench.Summary) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tRUNS\tBEST\tMEAN\tSTD\tMEDIAN\tMEAN MS")
	for _, s := range sums {
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.3f\n",
			s.Algorithm, s.Runs, s.BestCost, s.MeanCost, s.StdCost, s.MedianCost, s.MeanMs)
	}
	w.Flush()
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}
