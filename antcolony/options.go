// Package antcolony - configuration surface.
package antcolony

import "github.com/katalvlaran/lvlopt/solve"

// Variant names the pheromone deposit rule.
type Variant int

const (
	// AntSystem lets every ant deposit on its own tour.
	AntSystem Variant = iota

	// ElitistAS adds an extra, weighted deposit on the best-so-far tour
	// on top of the plain AntSystem rule.
	ElitistAS

	// MaxMin lets only the best tour deposit and clamps every trail to
	// [τmin, τmax] derived from the best cost.
	MaxMin
)

// Default tuning values, exposed for documentation and tests.
const (
	// DefaultAlpha weights the pheromone term τ^α.
	DefaultAlpha = 1.0

	// DefaultBeta weights the heuristic term η^β.
	DefaultBeta = 2.0

	// DefaultEvaporation is the per-iteration trail decay ρ.
	DefaultEvaporation = 0.5

	// DefaultDeposit is the reinforcement constant Q.
	DefaultDeposit = 100.0

	// DefaultElitistWeight scales the extra best-tour deposit of
	// ElitistAS.
	DefaultElitistWeight = 5.0

	// DefaultMaxIterations caps the colony loop.
	DefaultMaxIterations = 100

	// initialPheromone seeds every arc before the first deposit.
	initialPheromone = 1.0

	// minPheromoneDivisor derives τmin = τmax/(2n) for MaxMin.
	minPheromoneDivisor = 2

	// depositFloor guards the deposit weight against degenerate costs.
	depositFloor = 1e-9
)

// Options configures one colony run.
type Options struct {
	// Ants is the colony size. Non-positive values derive it from the
	// problem size (one ant per city).
	Ants int

	// Alpha weights the pheromone term. Negative values clamp to zero.
	Alpha float64

	// Beta weights the heuristic term. Negative values clamp to zero.
	Beta float64

	// Evaporation is the trail decay ρ per iteration. Clamped to [0,1].
	Evaporation float64

	// Deposit is the reinforcement constant Q. Non-positive values clamp
	// to the default.
	Deposit float64

	// Variant picks the deposit rule. Unknown values clamp to AntSystem.
	Variant Variant

	// ElitistWeight scales the extra best-tour deposit of ElitistAS.
	// Negative values clamp to zero.
	ElitistWeight float64

	// Heuristic is the static desirability matrix η, indexed [from][to].
	// Nil lets the colony walk on pheromone alone.
	Heuristic [][]float64

	// MaxIterations caps the colony loop. Negative values clamp to zero.
	MaxIterations int

	// Direction selects minimization (default) or maximization.
	Direction solve.Direction

	// Seed feeds the run's RNG; 0 selects the fixed default stream.
	Seed int64
}

// DefaultOptions returns the documented defaults: ants = problem size,
// α=1, β=2, ρ=0.5, Q=100, AntSystem, 100 iterations, minimization,
// seed 0.
func DefaultOptions() Options {
	return Options{
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
		Evaporation:   DefaultEvaporation,
		Deposit:       DefaultDeposit,
		Variant:       AntSystem,
		ElitistWeight: DefaultElitistWeight,
		MaxIterations: DefaultMaxIterations,
	}
}

// normalized returns a copy with every tuning value clamped to its safe
// range. Silent by policy. The ant count is resolved in the driver where
// the problem size is known.
//
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.Alpha < 0 {
		o.Alpha = 0
	}
	if o.Beta < 0 {
		o.Beta = 0
	}
	if o.Evaporation < 0 {
		o.Evaporation = 0
	}
	if o.Evaporation > 1 {
		o.Evaporation = 1
	}
	if o.Deposit <= 0 {
		o.Deposit = DefaultDeposit
	}
	if o.Variant < AntSystem || o.Variant > MaxMin {
		o.Variant = AntSystem
	}
	if o.ElitistWeight < 0 {
		o.ElitistWeight = 0
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	return o
}
