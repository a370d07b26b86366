package bench

import "errors"

// ErrNilRun reports an Algorithm whose Run closure is nil.
var ErrNilRun = errors.New("bench: algorithm with nil run function")

// ErrUnknownProblem reports a scenario problem kind this package cannot build.
var ErrUnknownProblem = errors.New("bench: unknown problem kind")

// ErrUnknownAlgorithm reports an algorithm name this package cannot build,
// or one that does not run over the scenario's genome kind.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// ErrNoAlgorithms reports a scenario whose algorithm list is empty.
var ErrNoAlgorithms = errors.New("bench: scenario names no algorithms")
