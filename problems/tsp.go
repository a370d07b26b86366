// Package problems - symmetric TSP collaborator.
//
// Genome encoding: an open permutation of 0..N-1; the tour cost closes the
// cycle with the wrap edge from the last city back to the first. All
// callbacks preserve permutation validity by construction.
//
// Design:
//   - The distance matrix lives inside the instance; callbacks capture it
//     by closure, so the engine never sees problem data.
//   - The neighbor move is a segment reversal (the 2-opt move), the
//     strongest simple move for tour improvement.
//   - Local search is a first-improvement 2-opt sweep with O(1) delta
//     evaluation against the matrix, finishing with one exact
//     re-evaluation so the returned cost matches the genome.
package problems

import (
	"math"

	"github.com/katalvlaran/lvlopt/genetic"
	"github.com/katalvlaran/lvlopt/solve"
)

// twoOptEps is the improvement tolerance of the 2-opt sweep: deltas above
// -twoOptEps are treated as noise, keeping the descent strictly monotone.
const twoOptEps = 1e-9

// twoOptMaxSweeps bounds the number of full 2-opt sweeps per refinement.
const twoOptMaxSweeps = 64

// heuristicFloor replaces 1/d on zero-distance arcs so the ant colony
// heuristic matrix stays finite.
const heuristicFloor = 1e9

// TSP is a symmetric travelling-salesman instance.
type TSP struct {
	// N is the number of cities.
	N int

	// Dist is the symmetric N×N distance matrix with a zero diagonal.
	Dist [][]float64

	// Optimum is the known optimal closed-tour cost, 0 when unknown.
	Optimum float64
}

// NewTSP builds an instance from city coordinates using Euclidean
// distances. The optimum is left unknown.
//
// Complexity: O(n²) time and space.
func NewTSP(coords [][2]float64) *TSP {
	var (
		n = len(coords)
		d = make([][]float64, n)
	)
	for i := 0; i < n; i++ {
		d[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			d[i][j] = math.Hypot(coords[i][0]-coords[j][0], coords[i][1]-coords[j][1])
		}
	}
	return &TSP{N: n, Dist: d}
}

// RingTSP places n cities uniformly on the unit circle. The optimal tour
// is the ring itself, with cost n·2·sin(π/n), recorded in Optimum.
//
// Complexity: O(n²).
func RingTSP(n int) *TSP {
	if n < 3 {
		n = 3
	}
	coords := make([][2]float64, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = [2]float64{math.Cos(theta), math.Sin(theta)}
	}

	inst := NewTSP(coords)
	inst.Optimum = solve.Round1e9(float64(n) * 2 * math.Sin(math.Pi/float64(n)))
	return inst
}

// RandomTSP scatters n cities uniformly in the unit square using a
// deterministic stream derived from seed. The optimum is unknown.
//
// Complexity: O(n²).
func RandomTSP(n int, seed int64) *TSP {
	if n < 3 {
		n = 3
	}
	var (
		rng    = solve.NewRNG(seed)
		coords = make([][2]float64, n)
	)
	for i := 0; i < n; i++ {
		coords[i] = [2]float64{rng.Uniform(), rng.Uniform()}
	}
	return NewTSP(coords)
}

// TourCost returns the closed-cycle cost of an open permutation tour,
// stabilized to 1e-9.
//
// Complexity: O(n).
func (t *TSP) TourCost(tour []int) float64 {
	var sum float64
	for i := 0; i < len(tour)-1; i++ {
		sum += t.Dist[tour[i]][tour[i+1]]
	}
	if len(tour) > 1 {
		sum += t.Dist[tour[len(tour)-1]][tour[0]]
	}
	return solve.Round1e9(sum)
}

// ValidTour reports whether tour is a permutation of 0..N-1: every city
// visited exactly once. This is the instance's validity predicate.
//
// Complexity: O(n) time, O(n) space.
func (t *TSP) ValidTour(tour []int) bool {
	if len(tour) != t.N {
		return false
	}
	seen := make([]bool, t.N)
	for _, c := range tour {
		if c < 0 || c >= t.N || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// Heuristic returns the ant-colony desirability matrix η = 1/d, with a
// large finite value on zero-distance arcs and a zero diagonal.
//
// Complexity: O(n²).
func (t *TSP) Heuristic() [][]float64 {
	h := make([][]float64, t.N)
	for i := 0; i < t.N; i++ {
		h[i] = make([]float64, t.N)
		for j := 0; j < t.N; j++ {
			switch {
			case i == j:
				h[i][j] = 0
			case t.Dist[i][j] == 0:
				h[i][j] = heuristicFloor
			default:
				h[i][j] = 1 / t.Dist[i][j]
			}
		}
	}
	return h
}

// Construct fills dst with a greedy-randomized tour for GRASP: each step
// picks uniformly from the restricted candidate list of unvisited cities
// within alpha·(dmax-dmin) of the nearest one. alpha=0 is pure greedy,
// alpha=1 pure random.
//
// Complexity: O(n²) time, O(n) space.
func (t *TSP) Construct(dst []int, alpha float64, rng *solve.RNG) {
	var (
		visited = make([]bool, t.N)
		cur     = rng.Intn(t.N)
		rcl     = make([]int, 0, t.N)
	)
	dst[0] = cur
	visited[cur] = true

	for step := 1; step < t.N; step++ {
		// Distance band of the unvisited frontier.
		var (
			dMin = math.Inf(1)
			dMax = math.Inf(-1)
		)
		for c := 0; c < t.N; c++ {
			if visited[c] {
				continue
			}
			if t.Dist[cur][c] < dMin {
				dMin = t.Dist[cur][c]
			}
			if t.Dist[cur][c] > dMax {
				dMax = t.Dist[cur][c]
			}
		}

		// Restricted candidate list within the greediness band.
		cut := dMin + alpha*(dMax-dMin)
		rcl = rcl[:0]
		for c := 0; c < t.N; c++ {
			if !visited[c] && t.Dist[cur][c] <= cut {
				rcl = append(rcl, c)
			}
		}

		cur = rcl[rng.Intn(len(rcl))]
		dst[step] = cur
		visited[cur] = true
	}
}

// Problem bundles the instance into the engine's callback contract:
// segment-reversal neighbors, shuffled generation, order crossover, swap
// mutation and 2-opt local search.
//
// Complexity: O(1); the callbacks capture the instance by reference.
func (t *TSP) Problem() solve.Problem[int] {
	return solve.Problem[int]{
		Size:      t.N,
		Objective: t.TourCost,
		Neighbor: func(dst, src []int, rng *solve.RNG) {
			copy(dst, src)
			reverseRandomSegment(dst, rng)
		},
		Perturb: func(dst, src []int, strength float64, rng *solve.RNG) {
			copy(dst, src)
			for m := perturbMoves(strength, len(dst)); m > 0; m-- {
				reverseRandomSegment(dst, rng)
			}
		},
		Generate: func(dst []int, rng *solve.RNG) {
			for i := range dst {
				dst[i] = i
			}
			rng.Shuffle(len(dst), func(i, j int) { dst[i], dst[j] = dst[j], dst[i] })
		},
		Crossover:   genetic.OrderCrossover,
		Mutate:      genetic.SwapMutate[int],
		LocalSearch: t.twoOpt,
	}
}

// twoOpt refines tour to a 2-opt local optimum with first-improvement
// sweeps and O(1) delta evaluation, then returns the exact re-evaluated
// cost. Matches solve.LocalSearch[int]; the rng parameter is unused
// because the sweep order is deterministic.
//
// Complexity: O(sweeps · n²) time, O(1) extra space.
func (t *TSP) twoOpt(tour []int, obj solve.Objective[int], _ *solve.RNG) float64 {
	n := len(tour)

	var ( // hot loop state
		sweep    int
		improved = true
		i        int
		j        int
		delta    float64
	)

	for sweep = 0; sweep < twoOptMaxSweeps && improved; sweep++ {
		improved = false
		for i = 1; i < n-1; i++ {
			for j = i + 1; j < n-1; j++ {
				// Reconnect (i-1,i)+(j,j+1) as (i-1,j)+(i,j+1).
				delta = t.Dist[tour[i-1]][tour[j]] + t.Dist[tour[i]][tour[j+1]] -
					t.Dist[tour[i-1]][tour[i]] - t.Dist[tour[j]][tour[j+1]]
				if delta < -twoOptEps {
					reverseSegment(tour, i, j)
					improved = true
				}
			}
		}
	}

	return obj(tour)
}

// reverseRandomSegment reverses a random non-degenerate segment in place,
// the classic 2-opt move.
//
// Complexity: O(n).
func reverseRandomSegment(tour []int, rng *solve.RNG) {
	n := len(tour)
	if n < 2 {
		return
	}
	i := rng.Intn(n - 1)
	j := i + 1 + rng.Intn(n-1-i)
	reverseSegment(tour, i, j)
}

// reverseSegment reverses tour[i..j] inclusive.
//
// Complexity: O(j-i).
func reverseSegment(tour []int, i, j int) {
	for i < j {
		tour[i], tour[j] = tour[j], tour[i]
		i++
		j--
	}
}

// perturbMoves grades a perturbation strength into a move count: integer
// strengths k≥1 (neighborhood indices) apply k moves, fractional strengths
// (destruction degrees) scale with the genome size.
//
// Complexity: O(1).
func perturbMoves(strength float64, n int) int {
	var m int
	if strength >= 1 {
		m = int(strength)
	} else if strength > 0 {
		m = int(math.Ceil(strength * float64(n) / 4))
	}
	if m < 1 {
		m = 1
	}
	if m > n {
		m = n
	}
	return m
}
