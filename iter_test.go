package soa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIter(t *testing.T) {
	tb := tableOf(3, 1, 2)

	collect := func() []uint64 {
		var out []uint64
		for r := range tb.Iter() {
			out = append(out, timestamp.Get(r))
		}
		return out
	}

	assert.Equal(t, []uint64{3, 1, 2}, collect())
	assert.Equal(t, []uint64{3, 1, 2}, collect(), "iteration is restartable")

	var indices []int
	for r := range tb.Iter() {
		indices = append(indices, r.Index())
	}
	assert.Equal(t, []int{0, 1, 2}, indices)
}

func TestIterEmpty(t *testing.T) {
	tb := New(readingSchema)
	for range tb.Iter() {
		t.Fatal("empty table yielded a row")
	}
	assert.Equal(t, 0, tb.borrows)
}

func TestIterMut(t *testing.T) {
	tb := tableOf(0, 1, 2)
	for r := range tb.IterMut() {
		*temperature.Ptr(r) += 10
	}
	assert.Equal(t, []float64{10.5, 11.5, 12.5}, temperature.Column(tb.AsSlice()))
}

func TestIterBreakReleasesBorrow(t *testing.T) {
	tb := tableOf(0, 1, 2)
	for r := range tb.Iter() {
		if r.Index() == 1 {
			break
		}
	}
	assert.Equal(t, 0, tb.borrows)

	tb.Push(row(3))
	assert.Equal(t, 4, tb.Len())
}

func TestIterBorrow(t *testing.T) {
	tb := tableOf(0, 1, 2)

	err := requirePanicAs[*BorrowError](t, func() {
		for range tb.Iter() {
			tb.Push(row(9))
		}
	})
	assert.Equal(t, "push", err.Op)
	assert.ErrorIs(t, err, ErrBorrowed)

	// The panic unwound the loop and released the borrow.
	assert.Equal(t, 0, tb.borrows)
	assert.Equal(t, []uint64{0, 1, 2}, stampsOf(tb))

	requirePanicAs[*BorrowError](t, func() {
		for range tb.IterMut() {
			tb.SwapRemove(0)
		}
	})
	requirePanicAs[*BorrowError](t, func() {
		for range tb.Slice(From(1)).Iter() {
			tb.ApplyIndex([]int{0, 1, 2})
		}
	})
	assert.Equal(t, []uint64{0, 1, 2}, stampsOf(tb))

	// Non-structural writes are allowed while iterating.
	for r := range tb.Iter() {
		tb.Replace(r.Index(), row(timestamp.Get(r)+10))
	}
	assert.Equal(t, []uint64{10, 11, 12}, stampsOf(tb))
}

func TestNestedIter(t *testing.T) {
	tb := tableOf(0, 1)
	pairs := 0
	for range tb.Iter() {
		for range tb.Iter() {
			pairs++
		}
	}
	assert.Equal(t, 4, pairs)
	assert.Equal(t, 0, tb.borrows)
}

func TestValues(t *testing.T) {
	tb := tableOf(5, 6, 7)
	assert.Equal(t, []uint64{5, 6, 7}, slices.Collect(timestamp.Values(tb)))

	var sum float64
	for v := range pressure.Values(tb) {
		sum += v
	}
	assert.InDelta(t, 3018.0, sum, 1e-9)

	requirePanicAs[*BorrowError](t, func() {
		for range timestamp.Values(tb) {
			tb.Clear()
		}
	})
	require.Equal(t, 3, tb.Len())
}
