// Package soa provides struct-of-arrays tables for Go.
//
// A Table[R] stores every field of the record type R in its own contiguous
// column instead of storing whole records next to each other. Loops that only
// touch a few fields then stream through exactly the memory they need, while
// the table still behaves like a list of records: rows are pushed and removed
// by value, borrowed as views, sliced and sorted.
//
// # Declaring a Layout
//
// Columns are declared once per record type with typed field handles:
//
//	type Reading struct {
//	    Temperature float64
//	    Pressure    float64
//	    Timestamp   uint64
//	}
//
//	var (
//	    Temperature = soa.NewAlignedField("temperature", func(r *Reading) *float64 { return &r.Temperature })
//	    Pressure    = soa.NewAlignedField("pressure", func(r *Reading) *float64 { return &r.Pressure })
//	    Timestamp   = soa.NewField("timestamp", func(r *Reading) *uint64 { return &r.Timestamp })
//
//	    ReadingSchema = soa.NewSchema[Reading](Temperature, Pressure, Timestamp)
//	)
//
// The soagen command (cmd/soagen) writes these declarations for you:
//
//	//go:generate soagen -type=Reading
//
// # Rows and Views
//
//	t := soa.New(ReadingSchema)
//	t.Push(Reading{Temperature: 21.5, Pressure: 1013, Timestamp: 1})
//
//	if r, ok := t.Get(0); ok {
//	    fmt.Println(Temperature.Get(r))
//	}
//	for r := range t.IterMut() {
//	    *Temperature.Ptr(r) += 1.5
//	}
//	temps := Temperature.Column(t.Slice(soa.From(1)))
//
// Views (Ref, RefMut, Slices, SlicesMut) stay valid until the next
// structural mutation of the table, i.e. anything that adds, removes or
// reorders rows or may reallocate columns. A stale view panics with
// ErrStaleView when used. While an iterator, sort comparator or Retain
// predicate runs, structural mutations panic with a *BorrowError.
//
// # Errors
//
// Contract violations (out-of-range indices, malformed ranges, index
// sequences that are not permutations) panic with typed errors such as
// *IndexError, *RangeError and *PermutationError. Every operation validates
// its arguments before touching a column, so a recovered panic never leaves
// columns of different lengths behind. Absence (Pop on an empty table, Get
// past the end) is reported with a boolean instead.
//
// # Reordering
//
// ApplyIndex applies a new-to-old permutation in place by following its
// cycles; SortBy, SortByKey, SortByCachedKey and SortByField compute a
// stable order on a scratch index array first and then apply it the same way.
//
// # Raw Pointers
//
// AsPtr and AsMutPtr return one unsafe.Pointer per column for assembly
// kernels or cgo. They require the AcknowledgeUnsafe marker and carry no
// staleness check.
package soa
