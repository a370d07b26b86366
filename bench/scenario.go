package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRuns is the repetition count a scenario gets when it names none.
const DefaultRuns = 20

// Scenario is the YAML description of one experiment: a problem, a list
// of algorithms with optional budget overrides, and the run policy.
type Scenario struct {
	// Name labels the report. Empty defaults to "scenario".
	Name string `yaml:"name,omitempty"`

	// Problem picks the benchmark instance every algorithm runs on.
	Problem ProblemSpec `yaml:"problem"`

	// Runs is the repetition count per algorithm. Zero defaults to
	// DefaultRuns.
	Runs int `yaml:"runs,omitempty"`

	// BaseSeed feeds the runner's per-repetition seed derivation.
	BaseSeed int64 `yaml:"base_seed,omitempty"`

	// Algorithms lists what to run. At least one entry is required.
	Algorithms []AlgorithmSpec `yaml:"algorithms"`
}

// ProblemSpec selects a benchmark instance from the problems package.
//
// Tour kinds: "ring" (known optimum) and "random" (seeded coordinates).
// Vector kinds: "sphere", "rosenbrock", "rastrigin", "ackley",
// "griewank". Size and seed pass straight to the constructors, which
// clamp degenerate values themselves.
type ProblemSpec struct {
	Kind string `yaml:"kind"`
	Size int    `yaml:"size,omitempty"`
	Seed int64  `yaml:"seed,omitempty"`
}

// AlgorithmSpec names a driver plus the two budget knobs shared across
// the module. Zero values keep the driver's documented defaults.
type AlgorithmSpec struct {
	// Name is the driver: anneal, tabu, genetic, devol, antcolony,
	// swarm, grasp, vns, lns or memetic. Availability depends on the
	// problem's genome kind (antcolony is tours-only; devol and swarm
	// are vectors-only).
	Name string `yaml:"name"`

	// Iterations overrides the driver's main budget: iterations for the
	// trajectory drivers, generations for the population drivers,
	// restarts for grasp.
	Iterations int `yaml:"iterations,omitempty"`

	// Population overrides the population size where the driver has one
	// (genetic, devol, antcolony ants, swarm particles, memetic);
	// trajectory drivers ignore it.
	Population int `yaml:"population,omitempty"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bench: read scenario %s: %w", path, err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, fmt.Errorf("bench: scenario %s: %w", path, err)
	}

	return sc, nil
}

// ParseScenario parses YAML bytes, applies defaults and validates the
// structure. Budget values are not range-checked here; the drivers clamp
// their own tuning.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("bench: parse scenario yaml: %w", err)
	}

	if sc.Name == "" {
		sc.Name = "scenario"
	}
	if sc.Runs <= 0 {
		sc.Runs = DefaultRuns
	}
	if err := sc.validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// validate rejects structural problems; the builder re-checks names when
// it knows the genome kind.
func (s *Scenario) validate() error {
	if _, ok := problemKinds[s.Problem.Kind]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProblem, s.Problem.Kind)
	}
	if len(s.Algorithms) == 0 {
		return ErrNoAlgorithms
	}
	for _, a := range s.Algorithms {
		if _, ok := algorithmNames[a.Name]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, a.Name)
		}
	}

	return nil
}

// problemKinds maps every known kind to whether it runs over tours.
var problemKinds = map[string]bool{
	"ring":       true,
	"random":     true,
	"sphere":     false,
	"rosenbrock": false,
	"rastrigin":  false,
	"ackley":     false,
	"griewank":   false,
}

var algorithmNames = map[string]struct{}{
	"anneal":    {},
	"tabu":      {},
	"genetic":   {},
	"devol":     {},
	"antcolony": {},
	"swarm":     {},
	"grasp":     {},
	"vns":       {},
	"lns":       {},
	"memetic":   {},
}
