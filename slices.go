package soa

import "iter"

// Slices is a read-only view of a contiguous run of rows of a Table, one
// column slice per field.
//
// Get the slice of one field with field.Column(s). Indices passed to the
// view's methods are relative to its start. Like Ref, a Slices view is
// invalidated by any structural mutation of its table.
type Slices[R any] struct {
	t      *Table[R]
	lo, hi int
	gen    uint64
}

// Len returns the number of rows in the view.
func (s Slices[R]) Len() int { return s.hi - s.lo }

// IsEmpty reports whether the view covers no rows.
func (s Slices[R]) IsEmpty() bool { return s.hi == s.lo }

// Range returns the half-open table range [start, end) the view covers.
func (s Slices[R]) Range() (start, end int) { return s.lo, s.hi }

// Valid reports whether the view can still be used.
func (s Slices[R]) Valid() bool {
	return s.t != nil && s.gen == s.t.gen
}

// Get returns the row at view index i, or false if i is out of range.
func (s Slices[R]) Get(i int) (Ref[R], bool) {
	s.check()
	if i < 0 || i >= s.Len() {
		return Ref[R]{}, false
	}
	return s.t.ref(s.lo + i), true
}

// Index returns the row at view index i. It panics with an *IndexError if i
// is out of range.
func (s Slices[R]) Index(i int) Ref[R] {
	s.check()
	if i < 0 || i >= s.Len() {
		panic(&IndexError{Op: "slice index", Index: i, Len: s.Len()})
	}
	return s.t.ref(s.lo + i)
}

// Slice narrows the view to r, interpreted relative to the view.
func (s Slices[R]) Slice(r Range) Slices[R] {
	s.check()
	lo, hi := r.Bounds(s.Len())
	return Slices[R]{t: s.t, lo: s.lo + lo, hi: s.lo + hi, gen: s.gen}
}

// Rows returns owned copies of the rows in the view.
func (s Slices[R]) Rows() []R {
	s.check()
	return s.t.rows(s.lo, s.hi)
}

// Iter returns an iterator over the rows of the view.
func (s Slices[R]) Iter() iter.Seq[Ref[R]] {
	return func(yield func(Ref[R]) bool) {
		s.check()
		s.t.borrow(s.lo, s.hi, func(i int) bool {
			return yield(s.t.ref(i))
		})
	}
}

func (s Slices[R]) check() {
	if s.t == nil || s.gen != s.t.gen {
		panic(ErrStaleView)
	}
}

// SlicesMut is a read-write view of a contiguous run of rows. Column slices
// from field.ColumnMut may be modified in place.
type SlicesMut[R any] struct {
	Slices[R]
}

// GetMut returns a mutable view of the row at view index i, or false if i is
// out of range.
func (s SlicesMut[R]) GetMut(i int) (RefMut[R], bool) {
	r, ok := s.Get(i)
	return RefMut[R]{r}, ok
}

// IndexMut returns a mutable view of the row at view index i. It panics with
// an *IndexError if i is out of range.
func (s SlicesMut[R]) IndexMut(i int) RefMut[R] {
	return RefMut[R]{s.Index(i)}
}

// SliceMut narrows the view to r, interpreted relative to the view.
func (s SlicesMut[R]) SliceMut(r Range) SlicesMut[R] {
	return SlicesMut[R]{s.Slice(r)}
}

// IterMut returns an iterator over mutable views of the rows.
func (s SlicesMut[R]) IterMut() iter.Seq[RefMut[R]] {
	return func(yield func(RefMut[R]) bool) {
		s.check()
		s.t.borrow(s.lo, s.hi, func(i int) bool {
			return yield(RefMut[R]{s.t.ref(i)})
		})
	}
}

// AsSlice returns a read-only view of all rows.
func (t *Table[R]) AsSlice() Slices[R] {
	return Slices[R]{t: t, lo: 0, hi: t.Len(), gen: t.gen}
}

// AsMutSlice returns a read-write view of all rows.
func (t *Table[R]) AsMutSlice() SlicesMut[R] {
	return SlicesMut[R]{t.AsSlice()}
}

// Slice returns a read-only view of the rows selected by r.
// It panics with a *RangeError if r does not fit the table.
//
//	t.Slice(soa.SpanInclusive(1, 1)) // row 1
//	t.Slice(soa.To(2))               // rows 0 and 1
//	t.Slice(soa.From(1))             // rows 1 to Len()-1
func (t *Table[R]) Slice(r Range) Slices[R] {
	lo, hi := r.Bounds(t.Len())
	return Slices[R]{t: t, lo: lo, hi: hi, gen: t.gen}
}

// SliceMut returns a read-write view of the rows selected by r.
// It panics with a *RangeError if r does not fit the table.
func (t *Table[R]) SliceMut(r Range) SlicesMut[R] {
	return SlicesMut[R]{t.Slice(r)}
}
