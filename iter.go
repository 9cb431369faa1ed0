package soa

import "iter"

// Iter returns an iterator over all rows in ascending index order.
//
// Each call starts again at row 0. While the loop body runs the table is
// borrowed: structural mutations panic with a *BorrowError.
//
//	for r := range t.Iter() {
//	    sum += Temperature.Get(r)
//	}
func (t *Table[R]) Iter() iter.Seq[Ref[R]] {
	return func(yield func(Ref[R]) bool) {
		t.borrow(0, t.Len(), func(i int) bool {
			return yield(t.ref(i))
		})
	}
}

// IterMut returns an iterator over mutable views of all rows in ascending
// index order. Members may be modified through the views; structural
// mutations panic with a *BorrowError while the loop runs.
func (t *Table[R]) IterMut() iter.Seq[RefMut[R]] {
	return func(yield func(RefMut[R]) bool) {
		t.borrow(0, t.Len(), func(i int) bool {
			return yield(RefMut[R]{t.ref(i)})
		})
	}
}

// Values returns an iterator over the field's column of t.
func (f *Field[R, T]) Values(t *Table[R]) iter.Seq[T] {
	return func(yield func(T) bool) {
		c := f.column(t)
		t.borrow(0, len(c.data), func(i int) bool {
			return yield(c.data[i])
		})
	}
}

// borrow calls fn for every index in [lo, hi) while holding a borrow on t.
// The borrow is released when fn returns false, the range is exhausted or fn
// panics.
func (t *Table[R]) borrow(lo, hi int, fn func(i int) bool) {
	t.borrows++
	defer func() { t.borrows-- }()
	for i := lo; i < hi; i++ {
		if !fn(i) {
			return
		}
	}
}
