package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tb := tableOf(10, 11, 12)

	r, ok := tb.Get(1)
	require.True(t, ok)
	assert.Equal(t, 1, r.Index())
	assert.Equal(t, uint64(11), timestamp.Get(r))
	assert.InDelta(t, 11.5, temperature.Get(r), 1e-12)
	assert.Equal(t, row(11), r.Load())

	for _, i := range []int{3, 8, -1} {
		_, ok := tb.Get(i)
		assert.False(t, ok, "index %d", i)
		_, ok = tb.GetMut(i)
		assert.False(t, ok, "index %d", i)
	}
}

func TestIndex(t *testing.T) {
	tb := tableOf(10, 11, 12)
	assert.Equal(t, uint64(12), timestamp.Get(tb.Index(2)))

	err := requirePanicAs[*IndexError](t, func() { tb.Index(3) })
	assert.Equal(t, 3, err.Index)
	assert.Equal(t, 3, err.Len)
	assert.Contains(t, err.Error(), "index 3")

	requirePanicAs[*IndexError](t, func() { tb.IndexMut(-1) })
	requirePanicAs[*IndexError](t, func() { tb.Row(3) })
}

func TestFirstLast(t *testing.T) {
	empty := New(readingSchema)
	_, ok := empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)
	_, ok = empty.LastMut()
	assert.False(t, ok)

	tb := tableOf(10, 11, 12)
	first, ok := tb.First()
	require.True(t, ok)
	assert.Equal(t, uint64(10), timestamp.Get(first))

	last, ok := tb.LastMut()
	require.True(t, ok)
	timestamp.Set(last, 99)
	assert.Equal(t, []uint64{10, 11, 99}, stampsOf(tb))

	head, ok := tb.FirstMut()
	require.True(t, ok)
	*pressure.Ptr(head) = -1
	assert.InDelta(t, -1.0, tb.Row(0).Pressure, 1e-12)
}

func TestRefMut(t *testing.T) {
	tb := tableOf(1, 2, 3)
	gen := tb.gen

	r := tb.IndexMut(1)
	r.Store(row(20))
	*temperature.Ptr(r) *= 2

	assert.Equal(t, gen, tb.gen, "writes through a view are not structural")
	assert.Equal(t, reading{Temperature: 41, Pressure: 1020, Timestamp: 20}, tb.Row(1))
}

func TestStaleViews(t *testing.T) {
	structural := map[string]func(tb *Table[reading]){
		"Push":        func(tb *Table[reading]) { tb.Push(row(9)) },
		"Pop":         func(tb *Table[reading]) { tb.Pop() },
		"Insert":      func(tb *Table[reading]) { tb.Insert(0, row(9)) },
		"Remove":      func(tb *Table[reading]) { tb.Remove(0) },
		"SwapRemove":  func(tb *Table[reading]) { tb.SwapRemove(0) },
		"Swap":        func(tb *Table[reading]) { tb.Swap(0, 1) },
		"Truncate":    func(tb *Table[reading]) { tb.Truncate(1) },
		"Clear":       func(tb *Table[reading]) { tb.Clear() },
		"Reserve":     func(tb *Table[reading]) { tb.Reserve(100) },
		"ShrinkToFit": func(tb *Table[reading]) { tb.ShrinkToFit() },
		"ApplyIndex":  func(tb *Table[reading]) { tb.ApplyIndex([]int{2, 1, 0}) },
		"SortBy":      func(tb *Table[reading]) { SortByField(tb, timestamp) },
		"SplitOff":    func(tb *Table[reading]) { tb.SplitOff(1) },
		"Append":      func(tb *Table[reading]) { tb.Append(tableOf(7)) },
		"Retain":      func(tb *Table[reading]) { tb.Retain(func(Ref[reading]) bool { return false }) },
	}

	for name, mutate := range structural {
		t.Run(name, func(t *testing.T) {
			tb := tableOf(1, 2, 3)
			ref := tb.Index(0)
			refMut := tb.IndexMut(0)
			view := tb.AsSlice()
			viewMut := tb.AsMutSlice()

			mutate(tb)

			assert.False(t, ref.Valid())
			assert.False(t, view.Valid())
			assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Get(ref) }))
			assert.Equal(t, ErrStaleView, panicValue(func() { ref.Load() }))
			assert.Equal(t, ErrStaleView, panicValue(func() { refMut.Store(row(0)) }))
			assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Set(refMut, 0) }))
			assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Column(view) }))
			assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.ColumnMut(viewMut) }))
			assert.Equal(t, ErrStaleView, panicValue(func() { view.Rows() }))
		})
	}
}

func TestZeroViews(t *testing.T) {
	tb := tableOf(1)
	ref, ok := tb.Get(5)
	require.False(t, ok)
	assert.False(t, ref.Valid())

	var refMut RefMut[reading]
	var view Slices[reading]
	var viewMut SlicesMut[reading]
	assert.False(t, view.Valid())

	assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Get(ref) }))
	assert.Equal(t, ErrStaleView, panicValue(func() { ref.Load() }))
	assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Set(refMut, 1) }))
	assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Ptr(refMut) }))
	assert.Equal(t, ErrStaleView, panicValue(func() { refMut.Store(row(0)) }))
	assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.Column(view) }))
	assert.Equal(t, ErrStaleView, panicValue(func() { timestamp.ColumnMut(viewMut) }))
	assert.Equal(t, ErrStaleView, panicValue(func() { view.Rows() }))
}

func TestForeignField(t *testing.T) {
	other := NewField("timestamp", func(r *reading) *uint64 { return &r.Timestamp })
	_ = NewSchema[reading](other)

	tb := tableOf(1)
	r := tb.Index(0)

	err := requirePanicAs[*SchemaError](t, func() { other.Get(r) })
	assert.Contains(t, err.Error(), "timestamp")
	requirePanicAs[*SchemaError](t, func() { other.Column(tb.AsSlice()) })
}

func TestZeroRef(t *testing.T) {
	var r Ref[reading]
	assert.False(t, r.Valid())
}
