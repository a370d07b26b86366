// Package solve - deterministic random generation for all drivers.
//
// This file centralizes every source of randomness in the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical draw sequence ⇒ identical run
//     outcome for fixed config and callbacks, across platforms.
//   - Encapsulation: one RNG handle threaded through every stochastic
//     call; no time-based sources and no process-wide state anywhere.
//   - Safety: no panics or logging; degenerate arguments fall back to
//     deterministic defaults.
//   - Performance: O(1) draws, no hidden allocations in hot paths.
//
// Concurrency:
//   - An *RNG is NOT goroutine-safe. Do not share one across goroutines.
//   - Use Derive to create independent streams for parallel restarts; runs
//     holding distinct RNGs are race-free by construction.
package solve

import (
	"math"
	"math/rand"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// RNG is a seedable generator of uniform, integer and Gaussian draws.
// The Gaussian path caches the spare Box-Muller value, so seeding and the
// draw sequence fully determine every output.
type RNG struct {
	src      *rand.Rand
	spare    float64
	hasSpare bool
}

// NewRNG returns a deterministic generator.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *RNG {
	var s int64
	s = seed
	if s == 0 {
		s = defaultSeed
	}
	return &RNG{src: rand.New(rand.NewSource(s))}
}

// Reseed resets the generator to the state NewRNG(seed) would produce,
// discarding any cached Gaussian spare. Drivers reseed at run start so a
// reused handle cannot leak state between runs.
//
// Complexity: O(1).
func (r *RNG) Reseed(seed int64) {
	var s int64
	s = seed
	if s == 0 {
		s = defaultSeed
	}
	r.src = rand.New(rand.NewSource(s))
	r.spare = 0
	r.hasSpare = false
}

// Uniform returns the next draw in [0, 1).
//
// Complexity: O(1).
func (r *RNG) Uniform() float64 {
	return r.src.Float64()
}

// Intn returns a uniform integer in [0, n). n<=1 returns 0, so degenerate
// ranges never panic mid-run.
//
// Complexity: O(1).
func (r *RNG) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	return r.src.Intn(n)
}

// IntRange returns a uniform integer in [lo, hi] inclusive.
// hi<=lo collapses to lo.
//
// Complexity: O(1).
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.src.Intn(hi-lo+1)
}

// Gaussian returns the next standard normal draw via the Box-Muller
// transform. Each transform yields two values; the second is cached and
// returned by the next call, halving the uniform draws consumed.
//
// Complexity: O(1) amortized.
func (r *RNG) Gaussian() float64 {
	if r.hasSpare {
		r.hasSpare = false
		return r.spare
	}

	var (
		u1 float64 // radius source; must be > 0 for the log
		u2 float64 // angle source
		m  float64 // shared magnitude sqrt(-2 ln u1)
	)
	u1 = r.src.Float64()
	for u1 == 0 {
		u1 = r.src.Float64()
	}
	u2 = r.src.Float64()
	m = math.Sqrt(-2 * math.Log(u1))

	r.spare = m * math.Sin(2*math.Pi*u2)
	r.hasSpare = true

	return m * math.Cos(2*math.Pi*u2)
}

// Perm returns a random permutation of 0..n-1. n<=0 returns an empty slice.
// Allocation is required by contract (the returned slice).
//
// Complexity: O(n) time and space.
func (r *RNG) Perm(n int) []int {
	if n <= 0 {
		return []int{}
	}
	return r.src.Perm(n)
}

// Shuffle performs an in-place Fisher-Yates shuffle of n elements through
// the caller's swap function.
//
// Complexity: O(n) time, O(1) extra space.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	if n <= 1 {
		return
	}
	r.src.Shuffle(n, swap)
}

// Derive creates an independent deterministic substream identified by
// stream. One draw of the parent is consumed to decorrelate consecutive
// derivations, then mixed with the stream id via a SplitMix64 finalizer.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-restart or
//     per-run generators, e.g. in the bench harness.
//
// Complexity: O(1).
func (r *RNG) Derive(stream uint64) *RNG {
	// Int63 advances parent state; this is intentional so children differ
	// even when the same stream id is reused by mistake.
	return NewRNG(deriveSeed(r.src.Int63(), stream))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// without constructing intermediate generators. The bench harness uses it
// to give each repeated run its own decorrelated stream.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	return deriveSeed(parent, stream)
}

// deriveSeed applies a SplitMix64-style avalanche mix to eliminate
// correlations between substreams.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer; small
//     input changes produce large, well-distributed output changes.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants.
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
