package soa

import (
	"math"
	"slices"
)

// minGrowCapacity is the smallest capacity chosen by amortized growth.
const minGrowCapacity = 4

// Table is a struct-of-arrays container for records of type R.
//
// Each field of the schema is stored in its own contiguous column. All
// columns always have the same length and the same capacity, and index i
// across all columns is one logical row.
//
// A Table is not safe for concurrent use. Structural mutations (anything that
// adds, removes, reorders rows or may reallocate) invalidate every view
// previously handed out; using such a view panics with ErrStaleView. While an
// iteration, sort comparator or Retain predicate is running, structural
// mutations panic with a *BorrowError.
type Table[R any] struct {
	schema  *Schema[R]
	cols    []column[R]
	gen     uint64
	borrows int
	opts    options
}

// New creates an empty table with one column per schema field.
func New[R any](schema *Schema[R], opts ...Option) *Table[R] {
	if schema == nil {
		panic(&SchemaError{Reason: "nil schema"})
	}
	o := applyOptions(opts)
	o.logger = o.logger.WithTable(schema.names)
	return &Table[R]{
		schema: schema,
		cols:   schema.newColumns(o.capacity),
		opts:   o,
	}
}

// NewWithCapacity creates an empty table whose columns are reserved for at
// least n rows.
func NewWithCapacity[R any](schema *Schema[R], n int, opts ...Option) *Table[R] {
	return New(schema, append(slices.Clip(opts), WithCapacity(n))...)
}

// FromRows creates a table holding rows in order.
func FromRows[R any](schema *Schema[R], rows []R, opts ...Option) *Table[R] {
	t := NewWithCapacity(schema, len(rows), opts...)
	t.Extend(rows...)
	return t
}

// Schema returns the schema the table was created with.
func (t *Table[R]) Schema() *Schema[R] { return t.schema }

// Len returns the number of rows.
func (t *Table[R]) Len() int { return t.cols[0].len() }

// IsEmpty reports whether the table has no rows.
func (t *Table[R]) IsEmpty() bool { return t.Len() == 0 }

// Cap returns the number of rows the columns can hold without reallocating.
func (t *Table[R]) Cap() int { return t.cols[0].cap() }

// Push appends row.
func (t *Table[R]) Push(row R) {
	t.mutate("push")
	t.reserve("push", 1, false)
	for _, c := range t.cols {
		c.push(&row)
	}
}

// Extend appends rows in order, reserving capacity once.
func (t *Table[R]) Extend(rows ...R) {
	t.mutate("extend")
	t.reserve("extend", len(rows), false)
	for _, c := range t.cols {
		for i := range rows {
			c.push(&rows[i])
		}
	}
}

// Insert inserts row at index, shifting all rows at or after index one
// position to the right. It panics with an *IndexError unless
// 0 <= index <= Len().
func (t *Table[R]) Insert(index int, row R) {
	t.checkBorrow("insert")
	if index < 0 || index > t.Len() {
		panic(&IndexError{Op: "insert", Index: index, Len: t.Len()})
	}
	t.mutate("insert")
	t.reserve("insert", 1, false)
	for _, c := range t.cols {
		c.insert(index, &row)
	}
}

// Remove removes and returns the row at index, shifting all rows after it
// one position to the left. It panics with an *IndexError if index is out
// of range.
func (t *Table[R]) Remove(index int) R {
	t.checkBorrow("remove")
	t.checkIndex("remove", index)
	t.mutate("remove")
	var row R
	for _, c := range t.cols {
		c.remove(index, &row)
	}
	return row
}

// SwapRemove removes and returns the row at index in O(1) by moving the last
// row into its place. It does not preserve row order. It panics with an
// *IndexError if index is out of range.
func (t *Table[R]) SwapRemove(index int) R {
	t.checkBorrow("swap remove")
	t.checkIndex("swap remove", index)
	t.mutate("swap remove")
	var row R
	for _, c := range t.cols {
		c.swapRemove(index, &row)
	}
	return row
}

// Pop removes and returns the last row, or false if the table is empty.
func (t *Table[R]) Pop() (R, bool) {
	t.checkBorrow("pop")
	var row R
	n := t.Len()
	if n == 0 {
		return row, false
	}
	t.mutate("pop")
	for _, c := range t.cols {
		c.swapRemove(n-1, &row)
	}
	return row, true
}

// Replace stores row at index and returns the row previously stored there.
// It panics with an *IndexError if index is out of range.
//
// Replace is not a structural mutation: outstanding views stay valid.
func (t *Table[R]) Replace(index int, row R) R {
	t.checkIndex("replace", index)
	for _, c := range t.cols {
		c.replace(index, &row)
	}
	return row
}

// Swap exchanges the rows at i and j. It panics with an *IndexError if
// either index is out of range.
func (t *Table[R]) Swap(i, j int) {
	t.checkBorrow("swap")
	t.checkIndex("swap", i)
	t.checkIndex("swap", j)
	t.mutate("swap")
	if i == j {
		return
	}
	for _, c := range t.cols {
		c.swap(i, j)
	}
}

// Truncate keeps the first n rows and drops the rest. It has no effect if
// n >= Len(). Capacity is unchanged. It panics with an *IndexError if n is
// negative.
func (t *Table[R]) Truncate(n int) {
	t.checkBorrow("truncate")
	if n < 0 {
		panic(&IndexError{Op: "truncate", Index: n, Len: t.Len()})
	}
	t.mutate("truncate")
	if n >= t.Len() {
		return
	}
	for _, c := range t.cols {
		c.truncate(n)
	}
}

// Clear removes all rows. Capacity is unchanged.
func (t *Table[R]) Clear() {
	t.Truncate(0)
}

// Reserve ensures room for at least additional more rows, growing
// amortized (at least doubling) when a reallocation is needed.
func (t *Table[R]) Reserve(additional int) {
	t.mutate("reserve")
	t.reserve("reserve", additional, false)
}

// ReserveExact ensures room for exactly Len()+additional rows when a
// reallocation is needed.
func (t *Table[R]) ReserveExact(additional int) {
	t.mutate("reserve exact")
	t.reserve("reserve exact", additional, true)
}

// ShrinkToFit reallocates all columns so that capacity equals length.
func (t *Table[R]) ShrinkToFit() {
	t.mutate("shrink to fit")
	if t.Cap() > t.Len() {
		t.realloc("shrink to fit", t.Len())
	}
}

// Append moves all rows of other to the end of t, leaving other empty.
// other keeps its capacity. It panics with a *SchemaError if other uses a
// different schema or is t itself.
func (t *Table[R]) Append(other *Table[R]) {
	if other == t {
		panic(&SchemaError{Reason: "cannot append a table to itself"})
	}
	if other.schema != t.schema {
		panic(&SchemaError{Reason: "cannot append a table with a different schema"})
	}
	t.checkBorrow("append")
	other.checkBorrow("append")
	t.mutate("append")
	other.mutate("append")

	m := other.Len()
	t.reserve("append", m, false)
	for k, c := range t.cols {
		c.appendRange(other.cols[k], 0, m)
		other.cols[k].truncate(0)
	}
	t.opts.logger.LogSplit("append", m, t.Len())
}

// SplitOff moves the rows [at, Len()) into a new table and returns it; t
// keeps [0, at). The new table uses the same schema and options, and its
// capacity equals its length. It panics with an *IndexError unless
// 0 <= at <= Len().
func (t *Table[R]) SplitOff(at int) *Table[R] {
	t.checkBorrow("split off")
	n := t.Len()
	if at < 0 || at > n {
		panic(&IndexError{Op: "split off", Index: at, Len: n})
	}
	t.mutate("split off")

	tail := t.empty(n - at)
	for k, c := range tail.cols {
		c.appendRange(t.cols[k], at, n)
		t.cols[k].truncate(at)
	}
	t.opts.logger.LogSplit("split off", n-at, at)
	return tail
}

// Clone returns an independent copy of t with identical rows. Field values
// are copied with Go assignment semantics.
func (t *Table[R]) Clone() *Table[R] {
	n := t.Len()
	out := t.empty(n)
	for k, c := range out.cols {
		c.appendRange(t.cols[k], 0, n)
	}
	return out
}

// empty returns a table with t's schema and options and capacity n.
func (t *Table[R]) empty(n int) *Table[R] {
	return &Table[R]{
		schema: t.schema,
		cols:   t.schema.newColumns(n),
		opts:   t.opts,
	}
}

// mutate marks the start of a structural mutation: it fails if the table is
// borrowed and invalidates outstanding views.
func (t *Table[R]) mutate(op string) {
	t.checkBorrow(op)
	t.gen++
}

func (t *Table[R]) checkBorrow(op string) {
	if t.borrows > 0 {
		panic(&BorrowError{Op: op})
	}
}

func (t *Table[R]) checkIndex(op string, index int) {
	if index < 0 || index >= t.Len() {
		panic(&IndexError{Op: op, Index: index, Len: t.Len()})
	}
}

// reserve makes room for additional rows on every column at once, so that no
// column ever grows on its own.
func (t *Table[R]) reserve(op string, additional int, exact bool) {
	if additional <= 0 {
		return
	}
	n := t.Len()
	if additional > math.MaxInt-n {
		panic(ErrCapacityOverflow)
	}
	need := n + additional
	old := t.Cap()
	if need <= old {
		return
	}

	newCap := need
	if !exact {
		grown := minGrowCapacity
		if old <= math.MaxInt/2 {
			grown = max(grown, 2*old)
		}
		newCap = max(need, grown)
	}
	t.realloc(op, newCap)
}

func (t *Table[R]) realloc(op string, newCap int) {
	old := t.Cap()
	for _, c := range t.cols {
		c.realloc(newCap)
	}
	t.opts.logger.LogGrow(op, t.Len(), old, newCap)
	if newCap > old {
		t.opts.metricsCollector.RecordGrow(old, newCap)
	}
}
