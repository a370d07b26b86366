// Package tabu - short-term and long-term memory structures.
package tabu

// tabuList is a fixed-capacity ring buffer of genome hashes. The newest
// entry overwrites the oldest once the buffer is full, so the list always
// holds the `tenure` most recent states.
type tabuList struct {
	buf  []uint64 // ring storage, capacity = tenure
	head int      // index of the next write
	size int      // number of live entries, ≤ len(buf)
}

// newTabuList allocates a list with the given capacity (≥ 1).
//
// Complexity: O(capacity).
func newTabuList(capacity int) *tabuList {
	return &tabuList{buf: make([]uint64, capacity)}
}

// push records h as the most recent state, evicting the oldest entry when
// the list is full.
//
// Complexity: O(1).
func (l *tabuList) push(h uint64) {
	l.buf[l.head] = h
	l.head = (l.head + 1) % len(l.buf)
	if l.size < len(l.buf) {
		l.size++
	}
}

// contains reports whether h is currently tabu. Tenures are small, so a
// linear scan beats any map bookkeeping here.
//
// Complexity: O(tenure).
func (l *tabuList) contains(h uint64) bool {
	for i := 0; i < l.size; i++ {
		if l.buf[i] == h {
			return true
		}
	}
	return false
}

// resize changes the capacity in place, preserving the most recent
// min(size, capacity) entries in their original order.
//
// Complexity: O(tenure).
func (l *tabuList) resize(capacity int) {
	if capacity == len(l.buf) {
		return
	}

	keep := l.size
	if keep > capacity {
		keep = capacity
	}

	// Unroll the ring oldest→newest, then keep the newest suffix.
	next := make([]uint64, capacity)
	first := l.head - l.size // index of the oldest entry, possibly negative
	for i := 0; i < keep; i++ {
		src := first + (l.size - keep) + i
		if src < 0 {
			src += len(l.buf)
		}
		next[i] = l.buf[src%len(l.buf)]
	}

	l.buf = next
	l.size = keep
	l.head = keep % capacity
}

// freqMemory counts state visits with a bounded map. When full, inserting
// a new state evicts the least-frequent entry (oldest insertion on ties)
// so the memory stays deterministic run to run.
type freqMemory struct {
	counts map[uint64]int
	order  []uint64 // insertion order, drives deterministic eviction
	cap    int
}

// newFreqMemory allocates a memory bounded to capacity entries.
//
// Complexity: O(1).
func newFreqMemory(capacity int) *freqMemory {
	return &freqMemory{
		counts: make(map[uint64]int, capacity),
		order:  make([]uint64, 0, capacity),
		cap:    capacity,
	}
}

// count returns the recorded visits for h (0 when unknown).
//
// Complexity: O(1).
func (m *freqMemory) count(h uint64) int {
	return m.counts[h]
}

// bump records one more visit of h, evicting the least-frequent entry
// when a new state would overflow the capacity.
//
// Complexity: O(1) amortized, O(capacity) on eviction.
func (m *freqMemory) bump(h uint64) {
	if _, ok := m.counts[h]; ok {
		m.counts[h]++
		return
	}

	if len(m.order) >= m.cap {
		m.evictLeastFrequent()
	}
	m.counts[h] = 1
	m.order = append(m.order, h)
}

// evictLeastFrequent drops the entry with the smallest count, breaking
// ties toward the oldest insertion.
//
// Complexity: O(capacity).
func (m *freqMemory) evictLeastFrequent() {
	if len(m.order) == 0 {
		return
	}

	victim := 0
	for i := 1; i < len(m.order); i++ {
		if m.counts[m.order[i]] < m.counts[m.order[victim]] {
			victim = i
		}
	}

	delete(m.counts, m.order[victim])
	m.order = append(m.order[:victim], m.order[victim+1:]...)
}
