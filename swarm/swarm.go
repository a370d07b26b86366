// Package swarm - flight driver.
//
// This file implements the full PSO loop: velocity updates with the
// cognitive and social pulls, the three inertia regimes, velocity and
// position clamping, and synchronous global-best bookkeeping.
//
// Goals:
//   - Determinism: every r1/r2 draw comes from the run's RNG in a fixed
//     particle-then-coordinate order; same seed ⇒ identical flight.
//   - Synchronous semantics: all particles of one iteration see the
//     global best as it stood when the iteration began.
//   - Clamp discipline: velocity first, position second, so a clamped
//     position never hides an exploding velocity.
//
// Contracts:
//   - Requires Problem.Objective and Problem.Generate.
//   - One iteration = one swarm pass (Particles evaluations). The trace
//     records best-so-far once per iteration.
//   - Termination: MaxIterations iterations.
//
// Complexity: O(MaxIterations · Particles · (eval + dim)) time,
// O(Particles · dim) space.
package swarm

import (
	"math"
	"time"

	"github.com/katalvlaran/lvlopt/solve"
)

// particle is one swarm member: position, velocity and personal best.
type particle struct {
	pos  solve.Solution[float64]
	vel  []float64
	best solve.Solution[float64]
}

// Optimize runs particle swarm optimization on p and returns the best
// position ever observed.
//
// Particles start at Problem.Generate positions with zero velocity; the
// personal bests seed the global best before the first iteration, so a
// zero-iteration run still returns an evaluated solution.
//
// Errors: solve.ErrZeroSize, solve.ErrMissingObjective,
// solve.ErrMissingGenerate, solve.ErrBadDirection.
//
// Complexity: O(MaxIterations · Particles · (eval + dim)).
func Optimize(p solve.Problem[float64], opts Options) (solve.Result[float64], error) {
	// Stage 1 - structural validation; tuning is clamped, never rejected.
	if err := p.Validate(solve.NeedObjective | solve.NeedGenerate); err != nil {
		return solve.Result[float64]{}, err
	}
	if !opts.Direction.Valid() {
		return solve.Result[float64]{}, solve.ErrBadDirection
	}
	o := opts.normalized()

	var (
		begin = time.Now()           // wall clock for Result.Elapsed
		rng   = solve.NewRNG(o.Seed) // the run's only randomness source
		dir   = o.Direction          // optimization sense
		trace = solve.NewTrace(o.MaxIterations)
		evals int // objective calls observed
	)

	// Stage 2 - swarm at rest: generated positions, zero velocities.
	flock := make([]particle, o.Particles)
	for i := range flock {
		flock[i] = particle{
			pos:  solve.NewSolution[float64](p.Size, dir),
			vel:  make([]float64, p.Size),
			best: solve.NewSolution[float64](p.Size, dir),
		}
		p.Generate(flock[i].pos.Data, rng)
		flock[i].pos.Cost = solve.Round1e9(p.Objective(flock[i].pos.Data))
		evals++
		flock[i].best.CopyFrom(flock[i].pos)
	}

	gbest := flock[0].best.Clone()
	for i := 1; i < len(flock); i++ {
		if dir.Better(flock[i].best.Cost, gbest.Cost) {
			gbest.CopyFrom(flock[i].best)
		}
	}

	vmax := resolveVMax(o, p.Size)

	// Stage 3 - flight.
	var iter int
	for iter = 0; iter < o.MaxIterations; iter++ {
		var (
			w   = inertiaAt(o, iter)
			chi = 1.0
		)
		if o.Mode == InertiaConstriction {
			w, chi = 1.0, constriction(o.Cognitive, o.Social)
		}

		for i := range flock {
			pt := &flock[i]
			for j := 0; j < p.Size; j++ {
				var (
					r1 = rng.Uniform()
					r2 = rng.Uniform()
					v  = w*pt.vel[j] +
						o.Cognitive*r1*(pt.best.Data[j]-pt.pos.Data[j]) +
						o.Social*r2*(gbest.Data[j]-pt.pos.Data[j])
				)
				v *= chi
				if j < len(vmax) && vmax[j] > 0 {
					v = math.Max(-vmax[j], math.Min(vmax[j], v))
				}
				pt.vel[j] = v
				pt.pos.Data[j] += v
			}
			clampTo(pt.pos.Data, o.Lo, o.Hi)

			pt.pos.Cost = solve.Round1e9(p.Objective(pt.pos.Data))
			evals++
			if dir.Better(pt.pos.Cost, pt.best.Cost) {
				pt.best.CopyFrom(pt.pos)
			}
		}

		// Synchronous global-best update after the whole pass.
		for i := range flock {
			if dir.Better(flock[i].best.Cost, gbest.Cost) {
				gbest.CopyFrom(flock[i].best)
			}
		}
		trace.Record(gbest.Cost)
	}

	return solve.Result[float64]{
		Best:        gbest,
		Convergence: trace.Samples(),
		Iterations:  iter,
		Evaluations: evals,
		Elapsed:     time.Since(begin),
	}, nil
}

// inertiaAt returns the weight for the given iteration: constant, or the
// linear interpolation from Weight to WeightEnd across the budget.
//
// Complexity: O(1).
func inertiaAt(o Options, iter int) float64 {
	if o.Mode != InertiaLinear || o.MaxIterations <= 1 {
		return o.Weight
	}
	frac := float64(iter) / float64(o.MaxIterations-1)
	return o.Weight + (o.WeightEnd-o.Weight)*frac
}

// constriction computes Clerc's χ = 2/|2−φ−√(φ²−4φ)| with φ = c1+c2.
// Degenerate φ ≤ 4 silently uses the canonical 4.1.
//
// Complexity: O(1).
func constriction(c1, c2 float64) float64 {
	phi := c1 + c2
	if phi <= 4 {
		phi = constrictionPhi
	}
	return 2 / math.Abs(2-phi-math.Sqrt(phi*phi-4*phi))
}

// resolveVMax expands the scalar clamp per coordinate, deriving it from
// the box span when unset. An empty result means unclamped.
//
// Complexity: O(dim).
func resolveVMax(o Options, dim int) []float64 {
	vmax := make([]float64, dim)
	for j := 0; j < dim; j++ {
		switch {
		case o.VMax > 0:
			vmax[j] = o.VMax
		case j < len(o.Lo) && j < len(o.Hi) && o.Hi[j] > o.Lo[j]:
			vmax[j] = vmaxShare * (o.Hi[j] - o.Lo[j])
		}
	}
	return vmax
}

// clampTo pins every covered coordinate into [lo, hi]. Nil or short
// bounds leave the remaining coordinates free.
//
// Complexity: O(dim).
func clampTo(x, lo, hi []float64) {
	for j := range x {
		if j < len(lo) && x[j] < lo[j] {
			x[j] = lo[j]
		}
		if j < len(hi) && x[j] > hi[j] {
			x[j] = hi[j]
		}
	}
}
