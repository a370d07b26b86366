package bench

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/anneal"
	"github.com/katalvlaran/lvlopt/antcolony"
	"github.com/katalvlaran/lvlopt/devol"
	"github.com/katalvlaran/lvlopt/genetic"
	"github.com/katalvlaran/lvlopt/grasp"
	"github.com/katalvlaran/lvlopt/lns"
	"github.com/katalvlaran/lvlopt/memetic"
	"github.com/katalvlaran/lvlopt/problems"
	"github.com/katalvlaran/lvlopt/solve"
	"github.com/katalvlaran/lvlopt/swarm"
	"github.com/katalvlaran/lvlopt/tabu"
	"github.com/katalvlaran/lvlopt/vns"
)

// Build turns the scenario into a configured runner plus one runnable
// closure per algorithm entry. Every closure starts from the driver's
// DefaultOptions, applies the spec's budget overrides and the per-run
// seed, and reports the run's best cost.
//
// Complexity: O(len(Algorithms)) plus the problem construction.
func (s *Scenario) Build() (Runner, []Algorithm, error) {
	if err := s.validate(); err != nil {
		return Runner{}, nil, err
	}

	runner := Runner{Runs: s.Runs, BaseSeed: s.BaseSeed}
	algos := make([]Algorithm, 0, len(s.Algorithms))

	if problemKinds[s.Problem.Kind] {
		inst := tourInstance(s.Problem)
		p := inst.Problem()
		for _, spec := range s.Algorithms {
			a, err := tourAlgorithm(inst, p, spec)
			if err != nil {
				return Runner{}, nil, err
			}
			algos = append(algos, a)
		}

		return runner, algos, nil
	}

	fn := vectorInstance(s.Problem)
	p := fn.Problem()
	for _, spec := range s.Algorithms {
		a, err := vectorAlgorithm(fn, p, spec)
		if err != nil {
			return Runner{}, nil, err
		}
		algos = append(algos, a)
	}

	return runner, algos, nil
}

func tourInstance(ps ProblemSpec) *problems.TSP {
	if ps.Kind == "ring" {
		return problems.RingTSP(ps.Size)
	}
	return problems.RandomTSP(ps.Size, ps.Seed)
}

func vectorInstance(ps ProblemSpec) *problems.Continuous {
	switch ps.Kind {
	case "rosenbrock":
		return problems.Rosenbrock(ps.Size)
	case "rastrigin":
		return problems.Rastrigin(ps.Size)
	case "ackley":
		return problems.Ackley(ps.Size)
	case "griewank":
		return problems.Griewank(ps.Size)
	default:
		return problems.Sphere(ps.Size)
	}
}

// tourAlgorithm builds the closures available over permutation genomes.
func tourAlgorithm(inst *problems.TSP, p solve.Problem[int], spec AlgorithmSpec) (Algorithm, error) {
	if a, ok := genomeAlgorithm(p, spec); ok {
		return a, nil
	}

	switch spec.Name {
	case "antcolony":
		eta := inst.Heuristic()
		return algo(spec, func(seed int64) (float64, error) {
			o := antcolony.DefaultOptions()
			o.Heuristic = eta
			if spec.Iterations > 0 {
				o.MaxIterations = spec.Iterations
			}
			if spec.Population > 0 {
				o.Ants = spec.Population
			}
			o.Seed = seed
			res, err := antcolony.Optimize(p, o)
			return res.Best.Cost, err
		}), nil

	case "grasp":
		return algo(spec, func(seed int64) (float64, error) {
			o := grasp.DefaultOptions[int]()
			o.Construct = inst.Construct
			if spec.Iterations > 0 {
				o.Restarts = spec.Iterations
			}
			o.Seed = seed
			res, err := grasp.Search(p, o)
			return res.Best.Cost, err
		}), nil
	}

	return Algorithm{}, fmt.Errorf("%w: %q over tours", ErrUnknownAlgorithm, spec.Name)
}

// vectorAlgorithm builds the closures available over float64 vectors.
func vectorAlgorithm(fn *problems.Continuous, p solve.Problem[float64], spec AlgorithmSpec) (Algorithm, error) {
	if a, ok := genomeAlgorithm(p, spec); ok {
		return a, nil
	}

	switch spec.Name {
	case "devol":
		return algo(spec, func(seed int64) (float64, error) {
			o := devol.DefaultOptions()
			if spec.Iterations > 0 {
				o.Generations = spec.Iterations
			}
			if spec.Population > 0 {
				o.PopulationSize = spec.Population
			}
			o.Seed = seed
			res, err := devol.Evolve(p, o)
			return res.Best.Cost, err
		}), nil

	case "swarm":
		lo, hi := fn.Bounds()
		return algo(spec, func(seed int64) (float64, error) {
			o := swarm.DefaultOptions()
			o.Lo, o.Hi = lo, hi
			if spec.Iterations > 0 {
				o.MaxIterations = spec.Iterations
			}
			if spec.Population > 0 {
				o.Particles = spec.Population
			}
			o.Seed = seed
			res, err := swarm.Optimize(p, o)
			return res.Best.Cost, err
		}), nil

	case "grasp":
		// No constructor over vectors; the driver degrades to Generate.
		return algo(spec, func(seed int64) (float64, error) {
			o := grasp.DefaultOptions[float64]()
			if spec.Iterations > 0 {
				o.Restarts = spec.Iterations
			}
			o.Seed = seed
			res, err := grasp.Search(p, o)
			return res.Best.Cost, err
		}), nil
	}

	return Algorithm{}, fmt.Errorf("%w: %q over float vectors", ErrUnknownAlgorithm, spec.Name)
}

// genomeAlgorithm covers the drivers that run unchanged over either
// genome kind; the per-kind builders add the rest.
func genomeAlgorithm[E solve.Gene](p solve.Problem[E], spec AlgorithmSpec) (Algorithm, bool) {
	var run func(seed int64) (float64, error)

	switch spec.Name {
	case "anneal":
		run = func(seed int64) (float64, error) {
			o := anneal.DefaultOptions()
			if spec.Iterations > 0 {
				o.MaxIterations = spec.Iterations
			}
			o.Seed = seed
			res, err := anneal.Anneal(p, o)
			return res.Best.Cost, err
		}

	case "tabu":
		run = func(seed int64) (float64, error) {
			o := tabu.DefaultOptions()
			if spec.Iterations > 0 {
				o.MaxIterations = spec.Iterations
			}
			o.Seed = seed
			res, err := tabu.Search(p, o)
			return res.Best.Cost, err
		}

	case "genetic":
		run = func(seed int64) (float64, error) {
			o := genetic.DefaultOptions()
			if spec.Iterations > 0 {
				o.Generations = spec.Iterations
			}
			if spec.Population > 0 {
				o.PopulationSize = spec.Population
			}
			o.Seed = seed
			res, err := genetic.Evolve(p, o)
			return res.Best.Cost, err
		}

	case "vns":
		run = func(seed int64) (float64, error) {
			o := vns.DefaultOptions()
			if spec.Iterations > 0 {
				o.MaxIterations = spec.Iterations
			}
			o.Seed = seed
			res, err := vns.Search(p, o)
			return res.Best.Cost, err
		}

	case "lns":
		run = func(seed int64) (float64, error) {
			o := lns.DefaultOptions[E]()
			if spec.Iterations > 0 {
				o.MaxIterations = spec.Iterations
			}
			o.Seed = seed
			res, err := lns.Search(p, o)
			return res.Best.Cost, err
		}

	case "memetic":
		run = func(seed int64) (float64, error) {
			o := memetic.DefaultOptions()
			if spec.Iterations > 0 {
				o.Generations = spec.Iterations
			}
			if spec.Population > 0 {
				o.PopulationSize = spec.Population
			}
			o.Seed = seed
			res, err := memetic.Evolve(p, o)
			return res.Best.Cost, err
		}

	default:
		return Algorithm{}, false
	}

	return algo(spec, run), true
}

func algo(spec AlgorithmSpec, run func(seed int64) (float64, error)) Algorithm {
	return Algorithm{Name: spec.Name, Run: run}
}
