// Package lvlopt is your in-memory playground for attacking hard
// optimization problems with classic metaheuristics — from simulated
// annealing to ant colonies, swarms and adaptive large neighborhood search.
//
// 🚀 What is lvlopt?
//
//	A modern, deterministic, allocation-conscious library that brings together:
//		• Trajectory methods: Simulated Annealing, Tabu Search, GRASP, VNS, LNS/ALNS
//		• Population methods: Genetic Algorithm, Differential Evolution,
//		  Ant Colony Optimization, Particle Swarm Optimization
//		• Hybrids: Memetic Algorithm (Lamarckian & Baldwinian local search)
//		• Shared machinery: callback-driven problems, seedable RNG streams,
//		  convergence traces, benchmark problems & an experiment runner
//
// ✨ Why choose lvlopt?
//
//   - Beginner-friendly – one Options struct with sane defaults per algorithm
//   - Reproducible – same seed, same trace, bit for bit, on every platform
//   - Problem-agnostic – bring an objective and a neighborhood, keep your types
//   - Extensible – plug custom crossover, destroy/repair or local-search moves
//
// Under the hood, everything is organized under flat subpackages:
//
//	solve/     — Solution, Result, Problem callbacks, RNG & convergence traces
//	anneal/    — simulated annealing with four cooling schedules
//	tabu/      — tabu search with aspiration, frequency memory, reactive tenure
//	genetic/   — generational GA + permutation & continuous operators
//	devol/     — differential evolution over float64 vectors
//	antcolony/ — ant systems (AS, elitist, MAX-MIN) over permutations
//	swarm/     — particle swarms with three inertia regimes
//	grasp/     — greedy randomized construction + reactive alpha
//	vns/       — basic, reduced and general variable neighborhood search
//	lns/       — (adaptive) large neighborhood search
//	memetic/   — GA hybridized with per-individual local search
//	problems/  — TSP and continuous benchmark suites wired for every driver
//	bench/     — repeated-run experiment harness with summary statistics
//
// Quick ASCII intuition:
//
//	cost
//	 │ ╲    ╱╲        escape local valleys (shake, reheat, mutate),
//	 │  ╲__╱  ╲   ╱╲  then descend — and remember the best you ever saw.
//	 │         ╲_╱  ╲____
//	 └──────────────────── search
//
// Dive into README.md and the runnable examples for full walkthroughs,
// parameter guides and the benchmark CLI.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
