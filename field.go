package soa

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/soa/internal/mem"
)

// Scalar is the set of pointer-free element types accepted by NewAlignedField.
type Scalar = mem.Scalar

// Column lists one field in a Schema. It is implemented by *Field only.
type Column[R any] interface {
	// Name returns the field name.
	Name() string

	bound() bool
	bind(s *Schema[R], index int)
	newColumn(capacity int) column[R]
}

// Field is a typed handle for one column of records of type R holding
// values of type T.
//
// A Field is created once, next to the record type, and bound to exactly one
// Schema. Its methods read and write the column through views handed out by
// a Table built from that schema.
type Field[R, T any] struct {
	name   string
	access func(*R) *T
	alloc  func(n int) []T

	schema *Schema[R]
	index  int
}

// NewField declares a column named name. access must return the address of
// the member inside the given record.
//
//	var Temperature = soa.NewField("temperature", func(r *Reading) *float32 { return &r.Temperature })
func NewField[R, T any](name string, access func(*R) *T) *Field[R, T] {
	if access == nil {
		panic(&SchemaError{Reason: fmt.Sprintf("field %q has no accessor", name)})
	}
	return &Field[R, T]{
		name:   name,
		access: access,
		alloc: func(n int) []T {
			return make([]T, 0, n)
		},
		index: -1,
	}
}

// NewAlignedField is like NewField, but the column's backing storage is
// 64-byte aligned, which lets SIMD kernels operate on whole cache lines.
func NewAlignedField[R any, T Scalar](name string, access func(*R) *T) *Field[R, T] {
	f := NewField(name, access)
	f.alloc = func(n int) []T {
		return mem.Alloc[T](n)[:0]
	}
	return f
}

// Name returns the field name.
func (f *Field[R, T]) Name() string { return f.name }

// Position returns the index of the field within its schema, or -1 if the
// field has not been bound yet.
func (f *Field[R, T]) Position() int { return f.index }

func (f *Field[R, T]) bound() bool { return f.schema != nil }

func (f *Field[R, T]) bind(s *Schema[R], index int) {
	f.schema = s
	f.index = index
}

func (f *Field[R, T]) newColumn(capacity int) column[R] {
	c := &fieldColumn[R, T]{field: f}
	if capacity > 0 {
		c.data = f.alloc(capacity)
	}
	return c
}

func (f *Field[R, T]) column(t *Table[R]) *fieldColumn[R, T] {
	if f.schema != t.schema {
		panic(&SchemaError{Reason: fmt.Sprintf("field %q does not belong to the table's schema", f.name)})
	}
	return t.cols[f.index].(*fieldColumn[R, T])
}

// Get returns the value of the field in the row viewed by r.
func (f *Field[R, T]) Get(r Ref[R]) T {
	r.check()
	return f.column(r.t).data[r.i]
}

// Ptr returns the address of the field's value in the row viewed by r.
// The pointer is valid until the next structural mutation of the table.
func (f *Field[R, T]) Ptr(r RefMut[R]) *T {
	r.check()
	return &f.column(r.t).data[r.i]
}

// Set overwrites the field's value in the row viewed by r.
func (f *Field[R, T]) Set(r RefMut[R], v T) {
	r.check()
	f.column(r.t).data[r.i] = v
}

// Column returns the field's values for the rows covered by s.
// The slice shares memory with the table and must be treated as read-only;
// its capacity is clipped so appending to it never writes into the table.
func (f *Field[R, T]) Column(s Slices[R]) []T {
	s.check()
	data := f.column(s.t).data
	return data[s.lo:s.hi:s.hi]
}

// ColumnMut returns the field's values for the rows covered by s for
// in-place modification.
func (f *Field[R, T]) ColumnMut(s SlicesMut[R]) []T {
	s.check()
	data := f.column(s.t).data
	return data[s.lo:s.hi:s.hi]
}

// Raw returns the pointer captured for this field by p.
func (f *Field[R, T]) Raw(p RawPtrs[R]) unsafe.Pointer {
	if f.schema != p.schema {
		panic(&SchemaError{Reason: fmt.Sprintf("field %q does not belong to the pointers' schema", f.name)})
	}
	return p.ptrs[f.index]
}

// RawSlice reinterprets the pointer captured by p as a slice of p.Len()
// values. No checks are performed against the table: the result is only
// meaningful until the next structural mutation.
func (f *Field[R, T]) RawSlice(p RawPtrs[R]) []T {
	ptr := f.Raw(p)
	if p.n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(ptr), p.n)
}

// RawSliceMut is RawSlice for writable pointers.
func (f *Field[R, T]) RawSliceMut(p RawPtrsMut[R]) []T {
	return f.RawSlice(p.RawPtrs)
}

// Schema is the ordered, non-empty list of columns of record type R.
type Schema[R any] struct {
	fields []Column[R]
	names  []string
}

// NewSchema binds fields, in order, into a schema. It panics with a
// *SchemaError if no field is given, a field is nil, two fields share a name,
// or a field already belongs to another schema.
func NewSchema[R any](fields ...Column[R]) *Schema[R] {
	if len(fields) == 0 {
		panic(&SchemaError{Reason: "at least one field is required"})
	}

	names := make([]string, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f == nil {
			panic(&SchemaError{Reason: fmt.Sprintf("field %d is nil", i)})
		}
		name := f.Name()
		if _, dup := seen[name]; dup {
			panic(&SchemaError{Reason: fmt.Sprintf("duplicate field name %q", name)})
		}
		if f.bound() {
			panic(&SchemaError{Reason: fmt.Sprintf("field %q is already bound to a schema", name)})
		}
		seen[name] = struct{}{}
		names[i] = name
	}

	// Bind only after every field has been validated.
	s := &Schema[R]{
		fields: append([]Column[R](nil), fields...),
		names:  names,
	}
	for i, f := range s.fields {
		f.bind(s, i)
	}
	return s
}

// NumFields returns the number of columns.
func (s *Schema[R]) NumFields() int { return len(s.fields) }

// Names returns the field names in column order.
func (s *Schema[R]) Names() []string {
	return append([]string(nil), s.names...)
}

// Lookup returns the column position of the named field.
func (s *Schema[R]) Lookup(name string) (int, bool) {
	for i, n := range s.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

func (s *Schema[R]) newColumns(capacity int) []column[R] {
	cols := make([]column[R], len(s.fields))
	for i, f := range s.fields {
		cols[i] = f.newColumn(capacity)
	}
	return cols
}
