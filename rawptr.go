package soa

import "unsafe"

// UnsafeAccess is the acknowledgment required to obtain raw column pointers.
// Only AcknowledgeUnsafe carries the acknowledgment; the zero value panics.
type UnsafeAccess struct {
	acknowledged bool
}

// AcknowledgeUnsafe states that the caller takes responsibility for the
// lifetime and aliasing of raw column pointers: they are valid only until
// the next structural mutation of the table, and nothing checks their use.
var AcknowledgeUnsafe = UnsafeAccess{acknowledged: true}

// RawPtrs holds one pointer per column to the first element of its storage,
// plus the row count at the time it was taken.
//
// Raw pointers are an escape hatch for code that cannot work with slices,
// such as assembly kernels or cgo. Unlike Ref and Slices they carry no
// staleness check.
type RawPtrs[R any] struct {
	schema *Schema[R]
	ptrs   []unsafe.Pointer
	n      int
}

// Len returns the row count captured with the pointers.
func (p RawPtrs[R]) Len() int { return p.n }

// At returns the pointer of the column at schema position i.
func (p RawPtrs[R]) At(i int) unsafe.Pointer { return p.ptrs[i] }

// RawPtrsMut is the writable variant of RawPtrs.
type RawPtrsMut[R any] struct {
	RawPtrs[R]
}

// AsPtr returns read-only raw pointers to every column.
//
// A column without storage yields a dangling, non-nil pointer that must not
// be dereferenced; Len() is zero in that case.
func (t *Table[R]) AsPtr(ack UnsafeAccess) RawPtrs[R] {
	if !ack.acknowledged {
		panic(ErrUnsafeNotAcknowledged)
	}
	ptrs := make([]unsafe.Pointer, len(t.cols))
	for i, c := range t.cols {
		ptrs[i] = c.ptr()
	}
	return RawPtrs[R]{schema: t.schema, ptrs: ptrs, n: t.Len()}
}

// AsMutPtr returns writable raw pointers to every column.
func (t *Table[R]) AsMutPtr(ack UnsafeAccess) RawPtrsMut[R] {
	return RawPtrsMut[R]{t.AsPtr(ack)}
}
