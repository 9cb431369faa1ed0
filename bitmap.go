package soa

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/soa/internal/conv"
)

// Select returns the indices of the rows for which pred reports true.
// The table is borrowed while pred runs.
//
// It panics with an *IndexError if the table has more rows than a 32-bit
// bitmap can address.
func (t *Table[R]) Select(pred func(Ref[R]) bool) *roaring.Bitmap {
	n := t.Len()
	if !conv.FitsRowIDs(n) {
		panic(&IndexError{Op: "select", Index: n - 1, Len: n})
	}
	rows := roaring.New()
	t.borrow(0, n, func(i int) bool {
		if pred(t.ref(i)) {
			rows.Add(uint32(i)) //nolint:gosec // bounded by FitsRowIDs
		}
		return true
	})
	return rows
}

// RemoveSet removes every row listed in rows, preserving the order of the
// remaining rows, and returns the number of rows removed. All columns are
// compacted in a single pass.
//
// It panics with an *IndexError, before moving anything, if rows lists an
// index >= Len().
func (t *Table[R]) RemoveSet(rows *roaring.Bitmap) int {
	t.checkBorrow("remove set")
	n := t.Len()
	if rows.IsEmpty() {
		return 0
	}
	if maxID, err := conv.Index(rows.Maximum()); err != nil || maxID >= n {
		panic(&IndexError{Op: "remove set", Index: maxID, Len: n})
	}
	t.mutate("remove set")
	return t.compact(rows)
}

// Retain keeps only the rows for which keep reports true, preserving their
// order. keep is called once per row, in order, before any row moves; a
// panicking keep leaves the table unchanged.
func (t *Table[R]) Retain(keep func(Ref[R]) bool) {
	t.checkBorrow("retain")
	drop := t.Select(func(r Ref[R]) bool { return !keep(r) })
	if drop.IsEmpty() {
		return
	}
	t.mutate("retain")
	t.compact(drop)
}

// Gather returns a new table holding copies of the rows listed in rows, in
// ascending index order. It panics with an *IndexError if rows lists an
// index >= Len().
func (t *Table[R]) Gather(rows *roaring.Bitmap) *Table[R] {
	n := t.Len()
	if !rows.IsEmpty() {
		if maxID, err := conv.Index(rows.Maximum()); err != nil || maxID >= n {
			panic(&IndexError{Op: "gather", Index: maxID, Len: n})
		}
	}

	out := t.empty(int(rows.GetCardinality())) //nolint:gosec // bounded by Len()
	for k, c := range out.cols {
		src := t.cols[k]
		it := rows.Iterator()
		for it.HasNext() {
			c.pushFrom(src, int(it.Next()))
		}
	}
	return out
}

// compact moves every row not in drop towards the front and truncates the
// columns. drop must be non-empty and only list valid indices.
func (t *Table[R]) compact(drop *roaring.Bitmap) int {
	start := time.Now()
	n := t.Len()

	it := drop.Iterator()
	next := int(it.Next())
	w := next
	for i := next; i < n; i++ {
		if i == next {
			next = -1
			if it.HasNext() {
				next = int(it.Next())
			}
			continue
		}
		for _, c := range t.cols {
			c.move(w, i)
		}
		w++
	}
	for _, c := range t.cols {
		c.truncate(w)
	}

	removed := n - w
	t.opts.logger.LogCompact(removed, w)
	t.opts.metricsCollector.RecordCompact(removed, time.Since(start))
	return removed
}
