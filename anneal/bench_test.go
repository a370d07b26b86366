// Package anneal_test - end-to-end benchmarks for the annealing driver.
//
// Scope:
//   - Full runs on a tour instance and on a smooth continuous bowl.
//   - One sub-benchmark per cooling schedule at a shared budget.
//
// Policy:
//   - Instances and options are built outside the timer; each loop
//     iteration measures one complete run.
//   - Fixed seeds so the measured work is identical run to run.
package anneal_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/anneal"
	"github.com/katalvlaran/lvlopt/problems"
)

// benchOptions returns a run budget small enough for CI: 2000 proposals
// in chains of 50, geometric cooling from the default T₀.
func benchOptions() anneal.Options {
	o := anneal.DefaultOptions()
	o.MaxIterations = 2000
	o.Seed = 42
	return o
}

// BenchmarkAnneal_Ring16 measures a complete run on a 16-city ring.
func BenchmarkAnneal_Ring16(b *testing.B) {
	inst := problems.RingTSP(16)
	p := inst.Problem()
	o := benchOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := anneal.Anneal(p, o); err != nil {
			b.Fatalf("Anneal: %v", err)
		}
	}
}

// BenchmarkAnneal_Sphere8 measures a complete run on an 8-dimensional
// sphere, the cheapest continuous objective in the suite.
func BenchmarkAnneal_Sphere8(b *testing.B) {
	p := problems.Sphere(8).Problem()
	o := benchOptions()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := anneal.Anneal(p, o); err != nil {
			b.Fatalf("Anneal: %v", err)
		}
	}
}

// BenchmarkAnneal_Schedules compares the four cooling rules at a shared
// 1000-proposal budget on a 12-city ring.
func BenchmarkAnneal_Schedules(b *testing.B) {
	inst := problems.RingTSP(12)
	p := inst.Problem()

	cases := []struct {
		name     string
		schedule anneal.Schedule
	}{
		{"Geometric", anneal.Geometric},
		{"Linear", anneal.Linear},
		{"Logarithmic", anneal.Logarithmic},
		{"Adaptive", anneal.Adaptive},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			o := benchOptions()
			o.MaxIterations = 1000
			o.Schedule = tc.schedule

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := anneal.Anneal(p, o); err != nil {
					b.Fatalf("Anneal: %v", err)
				}
			}
		})
	}
}
