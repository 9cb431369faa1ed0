package soa

// Ref is a read-only view of one row of a Table.
//
// Read a member with the field handle: field.Get(ref). A Ref stays valid
// until the next structural mutation of its table; afterwards every access
// panics with ErrStaleView.
type Ref[R any] struct {
	t   *Table[R]
	i   int
	gen uint64
}

// Index returns the row index the view refers to.
func (r Ref[R]) Index() int { return r.i }

// Valid reports whether the view can still be used.
func (r Ref[R]) Valid() bool {
	return r.t != nil && r.gen == r.t.gen
}

// Load returns an owned copy of the row.
func (r Ref[R]) Load() R {
	r.check()
	var row R
	for _, c := range r.t.cols {
		c.load(r.i, &row)
	}
	return row
}

func (r Ref[R]) check() {
	if r.t == nil || r.gen != r.t.gen {
		panic(ErrStaleView)
	}
}

// RefMut is a read-write view of one row of a Table.
//
// Use field.Ptr or field.Set to modify a member in place, or Store to
// overwrite the whole row. Writing through a RefMut is not a structural
// mutation.
type RefMut[R any] struct {
	Ref[R]
}

// Store overwrites every column of the row with the members of row.
func (r RefMut[R]) Store(row R) {
	r.check()
	for _, c := range r.t.cols {
		c.store(r.i, &row)
	}
}

// Get returns the row at index, or false if index is out of range.
func (t *Table[R]) Get(index int) (Ref[R], bool) {
	if index < 0 || index >= t.Len() {
		return Ref[R]{}, false
	}
	return t.ref(index), true
}

// GetMut returns a mutable view of the row at index, or false if index is
// out of range.
func (t *Table[R]) GetMut(index int) (RefMut[R], bool) {
	r, ok := t.Get(index)
	return RefMut[R]{r}, ok
}

// Index returns the row at index. It panics with an *IndexError if index is
// out of range.
func (t *Table[R]) Index(index int) Ref[R] {
	t.checkIndex("index", index)
	return t.ref(index)
}

// IndexMut returns a mutable view of the row at index. It panics with an
// *IndexError if index is out of range.
func (t *Table[R]) IndexMut(index int) RefMut[R] {
	t.checkIndex("index mut", index)
	return RefMut[R]{t.ref(index)}
}

// First returns the first row, or false if the table is empty.
func (t *Table[R]) First() (Ref[R], bool) { return t.Get(0) }

// Last returns the last row, or false if the table is empty.
func (t *Table[R]) Last() (Ref[R], bool) { return t.Get(t.Len() - 1) }

// FirstMut returns a mutable view of the first row, or false if the table
// is empty.
func (t *Table[R]) FirstMut() (RefMut[R], bool) { return t.GetMut(0) }

// LastMut returns a mutable view of the last row, or false if the table is
// empty.
func (t *Table[R]) LastMut() (RefMut[R], bool) { return t.GetMut(t.Len() - 1) }

// Row returns an owned copy of the row at index. It panics with an
// *IndexError if index is out of range.
func (t *Table[R]) Row(index int) R {
	t.checkIndex("row", index)
	return t.ref(index).Load()
}

// Rows returns owned copies of all rows in order.
func (t *Table[R]) Rows() []R {
	return t.rows(0, t.Len())
}

func (t *Table[R]) rows(lo, hi int) []R {
	out := make([]R, hi-lo)
	for _, c := range t.cols {
		for i := range out {
			c.load(lo+i, &out[i])
		}
	}
	return out
}

func (t *Table[R]) ref(index int) Ref[R] {
	return Ref[R]{t: t, i: index, gen: t.gen}
}
