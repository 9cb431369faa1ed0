package soa

import (
	"time"

	"github.com/hupe1980/soa/internal/pool"
)

// ApplyIndex reorders the rows so that row i of the result is the row
// currently at indices[i].
//
// indices must be a permutation of [0, Len()); otherwise ApplyIndex panics
// with a *PermutationError and leaves the table untouched. The reorder runs
// in place with O(Len()) swaps per column and a pooled scratch array of
// Len() ints.
//
//	// rows with timestamps [1, 2, 3]
//	t.ApplyIndex([]int{2, 0, 1}) // timestamps [3, 1, 2]
func (t *Table[R]) ApplyIndex(indices []int) {
	t.checkBorrow("apply index")
	s := pool.Get(t.Len())
	defer pool.Put(s)

	invertPermutation(indices, s)
	t.mutate("apply index")
	t.permute(s.Ints, "apply index")
}

// invertPermutation validates indices as a new-to-old permutation of
// [0, len(s.Ints)) and stores the old-to-new mapping in s.Ints.
func invertPermutation(indices []int, s *pool.Scratch) {
	n := len(s.Ints)
	if len(indices) != n {
		panic(&PermutationError{Position: -1, Value: len(indices), Len: n, Reason: ReasonLength})
	}

	for newPos, oldPos := range indices {
		if oldPos < 0 || oldPos >= n {
			panic(&PermutationError{Position: newPos, Value: oldPos, Len: n, Reason: ReasonOutOfRange})
		}
		if s.MarkSeen(oldPos) {
			panic(&PermutationError{Position: newPos, Value: oldPos, Len: n, Reason: ReasonDuplicate})
		}
		s.Ints[oldPos] = newPos
	}
}

// permute moves the row at i to inverse[i] for every i by following the
// permutation's cycles. inverse is consumed: it ends as the identity.
//
// Each step swaps the same two rows in every column, so columns never
// disagree about which row lives where.
func (t *Table[R]) permute(inverse []int, op string) {
	start := time.Now()
	for i := range inverse {
		for inverse[i] != i {
			j := inverse[i]
			for _, c := range t.cols {
				c.swap(i, j)
			}
			inverse[i], inverse[j] = inverse[j], inverse[i]
		}
	}
	t.opts.logger.LogReorder(op, len(inverse))
	t.opts.metricsCollector.RecordReorder(len(inverse), time.Since(start))
}
