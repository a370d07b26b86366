package solve

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// HashGenes fingerprints a genome with FNV-1a over the 64-bit image of each
// gene. It is the builtin fallback for Problem.Hash: deterministic,
// platform-independent and collision-resistant enough for tabu bookkeeping.
//
// Integer genes are exact up to 2^53 (they pass through a float64 image),
// which comfortably covers permutation indices.
//
// Complexity: O(n).
func HashGenes[E Gene](data []E) uint64 {
	var (
		h = fnv.New64a()
		b [8]byte
	)
	for _, v := range data {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(float64(v)))
		_, _ = h.Write(b[:])
	}
	return h.Sum64()
}
