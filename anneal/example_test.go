package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/anneal"
	"github.com/katalvlaran/lvlopt/problems"
)

// ExampleAnneal anneals an 8-city ring tour. The budget arithmetic is
// exact: one evaluation seeds the walk, then one per proposal, and with
// T₀=100, α=0.95 and chains of 50 the temperature is still above the
// 0.001 floor when the 4000th proposal lands.
func ExampleAnneal() {
	inst := problems.RingTSP(8)

	o := anneal.DefaultOptions()
	o.MaxIterations = 4000
	o.Seed = 42

	res, err := anneal.Anneal(inst.Problem(), o)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("iterations:", res.Iterations)
	fmt.Println("evaluations:", res.Evaluations)
	fmt.Println("valid tour:", inst.ValidTour(res.Best.Data))
	fmt.Println("within 2x of optimum:", res.Best.Cost <= 2*inst.Optimum)
	// Output:
	// iterations: 4000
	// evaluations: 4001
	// valid tour: true
	// within 2x of optimum: true
}

// ExampleAnneal_zeroIterations shows the documented cold-start contract:
// a zero budget still evaluates the generated tour once and returns it.
func ExampleAnneal_zeroIterations() {
	inst := problems.RingTSP(6)

	o := anneal.DefaultOptions()
	o.MaxIterations = 0
	o.Seed = 7

	res, _ := anneal.Anneal(inst.Problem(), o)

	fmt.Println("iterations:", res.Iterations)
	fmt.Println("evaluations:", res.Evaluations)
	fmt.Println("trace samples:", len(res.Convergence))
	// Output:
	// iterations: 0
	// evaluations: 1
	// trace samples: 0
}
