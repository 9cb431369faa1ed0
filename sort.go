package soa

import (
	"cmp"
	"slices"

	"github.com/hupe1980/soa/internal/pool"
)

// SortBy sorts the rows with the comparison function compare, which must return
// a negative number when a < b, a positive number when a > b and zero when
// they are equal. The sort is stable.
//
// compare sees row views; the order is computed on a scratch index array before
// any column moves, so a panicking compare leaves the table unchanged. While it
// runs the table is borrowed.
func (t *Table[R]) SortBy(compare func(a, b Ref[R]) int) {
	t.checkBorrow("sort")
	order := t.sortedOrder(compare)
	t.applyOrder(order, "sort")
}

// SortByKey sorts the rows of t by the key extracted from each row. The key
// function is called on both rows of every comparison. The sort is stable.
func SortByKey[R any, K cmp.Ordered](t *Table[R], key func(Ref[R]) K) {
	t.SortBy(func(a, b Ref[R]) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortByCachedKey is like SortByKey but calls key exactly once per row,
// which pays off when the key is expensive to compute.
func SortByCachedKey[R any, K cmp.Ordered](t *Table[R], key func(Ref[R]) K) {
	t.checkBorrow("sort")
	n := t.Len()
	keys := make([]K, n)
	t.borrow(0, n, func(i int) bool {
		keys[i] = key(t.ref(i))
		return true
	})

	order := identity(n)
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(keys[a], keys[b])
	})
	t.applyOrder(order, "sort")
}

// SortByField sorts the rows of t by the values of field f.
func SortByField[R any, T cmp.Ordered](t *Table[R], f *Field[R, T]) {
	c := f.column(t)
	t.checkBorrow("sort")
	order := identity(t.Len())
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(c.data[a], c.data[b])
	})
	t.applyOrder(order, "sort")
}

// IsSortedBy reports whether the rows are in order according to compare.
func (t *Table[R]) IsSortedBy(compare func(a, b Ref[R]) int) bool {
	sorted := true
	t.borrow(1, t.Len(), func(i int) bool {
		if compare(t.ref(i-1), t.ref(i)) > 0 {
			sorted = false
		}
		return sorted
	})
	return sorted
}

func (t *Table[R]) sortedOrder(compare func(a, b Ref[R]) int) []int {
	order := identity(t.Len())
	t.borrows++
	defer func() { t.borrows-- }()
	slices.SortStableFunc(order, func(a, b int) int {
		return compare(t.ref(a), t.ref(b))
	})
	return order
}

// applyOrder applies a new-to-old order known to be a permutation.
func (t *Table[R]) applyOrder(order []int, op string) {
	t.mutate(op)
	s := pool.Get(len(order))
	defer pool.Put(s)
	for newPos, oldPos := range order {
		s.Ints[oldPos] = newPos
	}
	t.permute(s.Ints, op)
}

func identity(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
