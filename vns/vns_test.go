// Package vns_test exercises variable neighborhood search via the public
// API. Focus: the k ladder's cycling and reset rules, per-variant
// evaluation budgets, determinism, the zero-iteration boundary and
// validation errors.
package vns_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/katalvlaran/lvlopt/problems"
	"github.com/katalvlaran/lvlopt/solve"
	"github.com/katalvlaran/lvlopt/vns"
)

// -----------------------------------------------------------------------------
// Helpers (minimal, stdlib-only)
// -----------------------------------------------------------------------------

// ringOptions is the permutation benchmark configuration: Basic variant,
// 60 shake rounds, seed 42.
func ringOptions() vns.Options {
	o := vns.DefaultOptions()
	o.MaxIterations = 60
	o.Seed = 42
	return o
}

// strengthSpy builds a sum objective over three coordinates whose Perturb
// records every shake strength it is handed. shift is added to each
// coordinate per shake; a negative shift makes every shake an improvement,
// zero makes every shake a rejected tie.
func strengthSpy(shift float64, strengths *[]float64) solve.Problem[float64] {
	return solve.Problem[float64]{
		Size: 3,
		Objective: func(x []float64) float64 {
			return x[0] + x[1] + x[2]
		},
		Perturb: func(dst, src []float64, strength float64, _ *solve.RNG) {
			*strengths = append(*strengths, strength)
			for i := range dst {
				dst[i] = src[i] + shift
			}
		},
		Generate: func(dst []float64, _ *solve.RNG) {
			for i := range dst {
				dst[i] = 0
			}
		},
	}
}

// assertNonIncreasing fails on any minimizing-trace regression.
func assertNonIncreasing(t *testing.T, trace []float64) {
	t.Helper()
	for i := 1; i < len(trace); i++ {
		if trace[i] > trace[i-1] {
			t.Fatalf("trace regressed at round %d: %.9f > %.9f", i, trace[i], trace[i-1])
		}
	}
}

// -----------------------------------------------------------------------------
// 1) Medium - Basic VNS on a ring tour: valid, near-optimal, monotone.
// -----------------------------------------------------------------------------

func TestSearch_RingConverges(t *testing.T) {
	inst := problems.RingTSP(6)

	res, err := vns.Search(inst.Problem(), ringOptions())
	if err != nil {
		t.Fatalf("Search on ring: unexpected error %v", err)
	}

	if !inst.ValidTour(res.Best.Data) {
		t.Fatalf("best tour is not a permutation: %v", res.Best.Data)
	}
	if res.Best.Cost > 2*inst.Optimum {
		t.Fatalf("60 rounds with 2-opt should land near the ring: got %.9f, optimum %.9f",
			res.Best.Cost, inst.Optimum)
	}
	if len(res.Convergence) != 60 {
		t.Fatalf("trace length: got %d, want 60", len(res.Convergence))
	}
	assertNonIncreasing(t, res.Convergence)

	diff := inst.TourCost(res.Best.Data) - res.Best.Cost
	if diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("best cost %.9f does not match its tour (recomputed %.9f)",
			res.Best.Cost, inst.TourCost(res.Best.Data))
	}
}

// -----------------------------------------------------------------------------
// 2) Medium - every variant replays bit-identically.
// -----------------------------------------------------------------------------

func TestSearch_VariantsDeterministic(t *testing.T) {
	inst := problems.Rastrigin(4)

	variants := []struct {
		name string
		v    vns.Variant
	}{
		{"basic", vns.Basic},
		{"reduced", vns.Reduced},
		{"general", vns.General},
	}

	for _, vt := range variants {
		o := ringOptions()
		o.Variant = vt.v
		o.MaxIterations = 40

		first, err := vns.Search(inst.Problem(), o)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", vt.name, err)
		}
		again, err := vns.Search(inst.Problem(), o)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", vt.name, err)
		}

		if !slices.Equal(first.Best.Data, again.Best.Data) {
			t.Fatalf("%s: best genomes diverged between runs", vt.name)
		}
		if !slices.Equal(first.Convergence, again.Convergence) {
			t.Fatalf("%s: traces diverged between runs", vt.name)
		}
		if first.Evaluations != again.Evaluations {
			t.Fatalf("%s: evaluation counts diverged between runs", vt.name)
		}
	}
}

// -----------------------------------------------------------------------------
// 3) Easy - zero-iteration boundary: evaluated initial incumbent.
// -----------------------------------------------------------------------------

func TestSearch_ZeroIterations(t *testing.T) {
	inst := problems.RingTSP(7)
	o := ringOptions()
	o.MaxIterations = 0

	res, err := vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("zero-iteration run: unexpected error %v", err)
	}

	if res.Iterations != 0 {
		t.Fatalf("expected zero iterations, got %d", res.Iterations)
	}
	if len(res.Convergence) != 0 {
		t.Fatalf("expected an empty trace, got %d samples", len(res.Convergence))
	}
	if res.Evaluations != 1 {
		t.Fatalf("expected exactly the initial evaluation, got %d", res.Evaluations)
	}
	if !inst.ValidTour(res.Best.Data) {
		t.Fatalf("unrefined incumbent is not a permutation: %v", res.Best.Data)
	}
}

// -----------------------------------------------------------------------------
// 4) Medium - per-variant evaluation budgets are exact.
// -----------------------------------------------------------------------------

func TestSearch_EvaluationBudgets(t *testing.T) {
	inst := problems.RingTSP(6)

	// Reduced: one shake evaluation per round, nothing else.
	o := ringOptions()
	o.Variant = vns.Reduced
	o.MaxIterations = 25
	res, err := vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("reduced: unexpected error %v", err)
	}
	if res.Evaluations != 1+25 {
		t.Fatalf("reduced budget: got %d evaluations, want %d", res.Evaluations, 1+25)
	}

	// Basic with a collaborator local search: shake + one opaque call.
	o = ringOptions()
	o.MaxIterations = 25
	res, err = vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("basic: unexpected error %v", err)
	}
	if res.Evaluations != 1+2*25 {
		t.Fatalf("basic budget: got %d evaluations, want %d", res.Evaluations, 1+2*25)
	}
}

// -----------------------------------------------------------------------------
// 5) Medium - rejected shakes climb the ladder and wrap past KMax.
// -----------------------------------------------------------------------------

func TestSearch_LadderCyclesOnRejection(t *testing.T) {
	var strengths []float64
	p := strengthSpy(0, &strengths) // ties are rejected, k keeps climbing

	o := vns.DefaultOptions()
	o.Variant = vns.Reduced
	o.KMax = 3
	o.MaxIterations = 7
	o.Seed = 42

	if _, err := vns.Search(p, o); err != nil {
		t.Fatalf("ladder run: unexpected error %v", err)
	}

	want := []float64{1, 2, 3, 1, 2, 3, 1}
	if !slices.Equal(strengths, want) {
		t.Fatalf("shake strengths: got %v, want %v", strengths, want)
	}
}

// -----------------------------------------------------------------------------
// 6) Medium - every improvement resets the ladder to k=1.
// -----------------------------------------------------------------------------

func TestSearch_ImprovementResetsLadder(t *testing.T) {
	var strengths []float64
	p := strengthSpy(-1, &strengths) // every shake strictly improves

	o := vns.DefaultOptions()
	o.Variant = vns.Reduced
	o.KMax = 4
	o.MaxIterations = 6
	o.Seed = 42

	res, err := vns.Search(p, o)
	if err != nil {
		t.Fatalf("reset run: unexpected error %v", err)
	}

	want := []float64{1, 1, 1, 1, 1, 1}
	if !slices.Equal(strengths, want) {
		t.Fatalf("shake strengths: got %v, want %v", strengths, want)
	}
	if res.Best.Cost != -18 {
		t.Fatalf("six accepted unit shifts over three coordinates: got %v, want -18", res.Best.Cost)
	}
}

// -----------------------------------------------------------------------------
// 7) Medium - General descends the whole ladder and pays for it.
// -----------------------------------------------------------------------------

func TestSearch_GeneralRefines(t *testing.T) {
	inst := problems.Sphere(4)
	o := ringOptions()
	o.Variant = vns.General
	o.MaxIterations = 30

	res, err := vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("general: unexpected error %v", err)
	}

	assertNonIncreasing(t, res.Convergence)
	if res.Best.Cost >= res.Convergence[0] {
		t.Fatalf("ladder descent made no progress: best %.9f vs first sample %.9f",
			res.Best.Cost, res.Convergence[0])
	}
	if res.Evaluations <= 1+30 {
		t.Fatalf("ladder descent must evaluate beyond the shakes, got %d", res.Evaluations)
	}
	diff := inst.Eval(res.Best.Data) - res.Best.Cost
	if diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("best cost %.9f does not match its vector", res.Best.Cost)
	}
}

// -----------------------------------------------------------------------------
// 8) Easy - structural validation errors surface as sentinels.
// -----------------------------------------------------------------------------

func TestSearch_ValidationErrors(t *testing.T) {
	inst := problems.RingTSP(5)

	noPerturb := inst.Problem()
	noPerturb.Perturb = nil
	if _, err := vns.Search(noPerturb, ringOptions()); !errors.Is(err, solve.ErrMissingPerturb) {
		t.Fatalf("missing perturb: got %v, want solve.ErrMissingPerturb", err)
	}

	noGenerate := inst.Problem()
	noGenerate.Generate = nil
	if _, err := vns.Search(noGenerate, ringOptions()); !errors.Is(err, solve.ErrMissingGenerate) {
		t.Fatalf("missing generate: got %v, want solve.ErrMissingGenerate", err)
	}

	bare := inst.Problem()
	bare.LocalSearch = nil
	bare.Neighbor = nil
	if _, err := vns.Search(bare, ringOptions()); !errors.Is(err, solve.ErrMissingNeighbor) {
		t.Fatalf("basic without refinement: got %v, want solve.ErrMissingNeighbor", err)
	}

	// Reduced never refines, so the same problem is acceptable there.
	o := ringOptions()
	o.Variant = vns.Reduced
	if _, err := vns.Search(bare, o); err != nil {
		t.Fatalf("reduced without refinement callbacks: unexpected error %v", err)
	}

	crooked := ringOptions()
	crooked.Direction = solve.Direction(7)
	if _, err := vns.Search(inst.Problem(), crooked); !errors.Is(err, solve.ErrBadDirection) {
		t.Fatalf("bad direction: got %v, want solve.ErrBadDirection", err)
	}
}

// -----------------------------------------------------------------------------
// 9) Easy - an unknown variant silently degrades to Basic.
// -----------------------------------------------------------------------------

func TestSearch_UnknownVariantClamps(t *testing.T) {
	inst := problems.RingTSP(5)

	o := ringOptions()
	o.MaxIterations = 20
	base, err := vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("basic reference: unexpected error %v", err)
	}

	o.Variant = vns.Variant(99)
	clamped, err := vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("clamped variant: unexpected error %v", err)
	}

	if !slices.Equal(base.Convergence, clamped.Convergence) {
		t.Fatalf("Variant(99) must replay exactly as Basic")
	}
}

// -----------------------------------------------------------------------------
// 10) Medium - maximization climbs instead of descending.
// -----------------------------------------------------------------------------

func TestSearch_Maximize(t *testing.T) {
	inst := problems.Sphere(3)
	o := ringOptions()
	o.MaxIterations = 50
	o.Direction = solve.Maximize

	res, err := vns.Search(inst.Problem(), o)
	if err != nil {
		t.Fatalf("maximizing run: unexpected error %v", err)
	}

	for i := 1; i < len(res.Convergence); i++ {
		if res.Convergence[i] < res.Convergence[i-1] {
			t.Fatalf("maximizing trace regressed at round %d", i)
		}
	}
	if res.Best.Cost <= 0 {
		t.Fatalf("climbing a sphere must leave the origin, got %.9f", res.Best.Cost)
	}
}
