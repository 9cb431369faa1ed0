// Package pool provides reusable scratch buffers for row reordering.
// Uses sync.Pool for memory reuse and a bitset for duplicate tracking.
package pool

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// MaxRetainedRows is the largest scratch size returned to the pool.
// Bigger buffers are left to the garbage collector.
const MaxRetainedRows = 1 << 22

// Scratch holds the buffers needed to validate and apply one permutation.
type Scratch struct {
	// Ints has the length requested from Get. Its contents are unspecified.
	Ints []int
	// Seen is empty when handed out by Get.
	Seen *bitset.BitSet
}

var scratchPool = sync.Pool{
	New: func() any {
		return &Scratch{Seen: bitset.New(0)}
	},
}

// Get retrieves a Scratch sized for n rows from the pool.
func Get(n int) *Scratch {
	s := scratchPool.Get().(*Scratch)
	if cap(s.Ints) < n {
		s.Ints = make([]int, n)
	} else {
		s.Ints = s.Ints[:n]
	}
	s.Seen.ClearAll()
	return s
}

// Put returns a Scratch to the pool for reuse.
func Put(s *Scratch) {
	if cap(s.Ints) > MaxRetainedRows {
		return
	}
	if s.Seen.Len() > MaxRetainedRows {
		s.Seen = bitset.New(0)
	}
	scratchPool.Put(s)
}

// MarkSeen marks i as seen.
// Returns true if i was already marked, false otherwise.
func (s *Scratch) MarkSeen(i int) bool {
	u := uint(i) //nolint:gosec // callers pass non-negative row indices
	if s.Seen.Test(u) {
		return true
	}
	s.Seen.Set(u)
	return false
}
