package soa

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeBounds(t *testing.T) {
	tests := []struct {
		name       string
		r          Range
		start, end int
	}{
		{"Full", Full(), 0, 3},
		{"Zero", Range{}, 0, 3},
		{"Span", Span(1, 2), 1, 2},
		{"EmptySpan", Span(3, 3), 3, 3},
		{"SpanInclusive", SpanInclusive(1, 1), 1, 2},
		{"From", From(1), 1, 3},
		{"FromEnd", From(3), 3, 3},
		{"To", To(2), 0, 2},
		{"ToInclusive", ToInclusive(2), 0, 3},
		{"ExcludedStart", Range{Start: ExcludedBound(0), End: ExcludedBound(3)}, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.r.Bounds(3)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestRangeBoundsInvalid(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"StartAfterEnd", Span(2, 1)},
		{"EndPastLen", Span(0, 4)},
		{"StartPastLen", From(4)},
		{"NegativeStart", Span(-1, 2)},
		{"InclusivePastLen", ToInclusive(3)},
		{"InclusiveMaxInt", ToInclusive(math.MaxInt)},
		{"ExcludedMaxInt", Range{Start: ExcludedBound(math.MaxInt)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requirePanicAs[*RangeError](t, func() { tt.r.Bounds(3) })
			assert.Equal(t, 3, err.Len)
			assert.ErrorIs(t, err, ErrInvalidRange)
		})
	}
}

func TestSlice(t *testing.T) {
	tb := tableOf(0, 1, 2, 3)

	t.Run("SingleRow", func(t *testing.T) {
		s := tb.Slice(SpanInclusive(1, 1))
		assert.Equal(t, 1, s.Len())
		assert.Equal(t, []uint64{1}, timestamp.Column(s))
	})

	t.Run("Prefix", func(t *testing.T) {
		s := tb.Slice(To(2))
		assert.Equal(t, []uint64{0, 1}, timestamp.Column(s))
		assert.Equal(t, []float64{0.5, 1.5}, temperature.Column(s))
	})

	t.Run("Suffix", func(t *testing.T) {
		s := tb.Slice(From(1))
		start, end := s.Range()
		assert.Equal(t, 1, start)
		assert.Equal(t, 4, end)
		assert.Equal(t, []reading{row(1), row(2), row(3)}, s.Rows())
	})

	t.Run("Empty", func(t *testing.T) {
		s := tb.Slice(Span(2, 2))
		assert.True(t, s.IsEmpty())
		assert.Empty(t, timestamp.Column(s))
	})

	t.Run("Invalid", func(t *testing.T) {
		requirePanicAs[*RangeError](t, func() { tb.Slice(Span(3, 5)) })
		requirePanicAs[*RangeError](t, func() { tb.SliceMut(From(5)) })
	})

	t.Run("Relative", func(t *testing.T) {
		s := tb.Slice(From(1)).Slice(Span(1, 3))
		start, end := s.Range()
		assert.Equal(t, 2, start)
		assert.Equal(t, 4, end)
		assert.Equal(t, []uint64{2, 3}, timestamp.Column(s))

		requirePanicAs[*RangeError](t, func() { tb.Slice(From(2)).Slice(To(3)) })
	})

	t.Run("Index", func(t *testing.T) {
		s := tb.Slice(From(2))
		assert.Equal(t, uint64(3), timestamp.Get(s.Index(1)))

		r, ok := s.Get(0)
		require.True(t, ok)
		assert.Equal(t, 2, r.Index())

		_, ok = s.Get(2)
		assert.False(t, ok)

		err := requirePanicAs[*IndexError](t, func() { s.Index(2) })
		assert.Equal(t, "slice index", err.Op)
		assert.Equal(t, 2, err.Len)
	})
}

func TestColumnIsClipped(t *testing.T) {
	tb := NewWithCapacity(readingSchema, 8)
	tb.Extend(row(0), row(1), row(2))

	col := timestamp.Column(tb.Slice(To(2)))
	assert.Equal(t, 2, cap(col))

	_ = append(col, 42)
	assert.Equal(t, []uint64{0, 1, 2}, stampsOf(tb))
}

func TestColumnMut(t *testing.T) {
	tb := tableOf(0, 1, 2, 3)
	gen := tb.gen

	temps := temperature.ColumnMut(tb.SliceMut(From(2)))
	for i := range temps {
		temps[i] = -temps[i]
	}

	assert.Equal(t, gen, tb.gen)
	assert.Equal(t, []float64{0.5, 1.5, -2.5, -3.5}, temperature.Column(tb.AsSlice()))
}

func TestSlicesMut(t *testing.T) {
	tb := tableOf(0, 1, 2, 3)
	s := tb.AsMutSlice().SliceMut(Span(1, 3))
	assert.Equal(t, 2, s.Len())

	r, ok := s.GetMut(1)
	require.True(t, ok)
	timestamp.Set(r, 20)
	timestamp.Set(s.IndexMut(0), 10)

	_, ok = s.GetMut(2)
	assert.False(t, ok)
	assert.Equal(t, []uint64{0, 10, 20, 3}, stampsOf(tb))

	for r := range s.IterMut() {
		*timestamp.Ptr(r) += 100
	}
	assert.Equal(t, []uint64{0, 110, 120, 3}, stampsOf(tb))
}
