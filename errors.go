package soa

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is wrapped by every IndexError.
	ErrOutOfBounds = errors.New("soa: index out of bounds")

	// ErrInvalidRange is wrapped by every RangeError.
	ErrInvalidRange = errors.New("soa: invalid range")

	// ErrNotPermutation is wrapped by every PermutationError.
	ErrNotPermutation = errors.New("soa: not a permutation")

	// ErrBorrowed is wrapped by every BorrowError.
	ErrBorrowed = errors.New("soa: table is borrowed")

	// ErrInvalidSchema is wrapped by every SchemaError.
	ErrInvalidSchema = errors.New("soa: invalid schema")

	// ErrStaleView is the panic value raised when a Ref, RefMut, Slices or
	// SlicesMut is used after a structural mutation of its table.
	ErrStaleView = errors.New("soa: view used after structural mutation")

	// ErrCapacityOverflow is the panic value raised when a requested capacity
	// does not fit in an int.
	ErrCapacityOverflow = errors.New("soa: capacity overflow")

	// ErrUnsafeNotAcknowledged is the panic value raised when a raw pointer
	// view is requested with the zero UnsafeAccess value.
	ErrUnsafeNotAcknowledged = errors.New("soa: raw pointer access requires AcknowledgeUnsafe")
)

// IndexError reports an index outside the valid range of an operation.
//
// Operations accepting an insertion point (Insert, SplitOff) allow Index == Len;
// all others require Index < Len.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("soa: %s: index %d out of bounds for length %d", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// RangeError reports a malformed or out-of-bounds range.
// Start and End are the normalized half-open bounds.
type RangeError struct {
	Op    string
	Start int
	End   int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("soa: %s: range [%d, %d) invalid for length %d", e.Op, e.Start, e.End, e.Len)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// PermutationReason classifies why an index sequence was rejected.
type PermutationReason uint8

const (
	// ReasonLength means the sequence length differs from the table length.
	ReasonLength PermutationReason = iota + 1
	// ReasonOutOfRange means an entry is negative or >= the table length.
	ReasonOutOfRange
	// ReasonDuplicate means an entry appears more than once.
	ReasonDuplicate
)

// String returns the string representation of a PermutationReason.
func (r PermutationReason) String() string {
	switch r {
	case ReasonLength:
		return "length mismatch"
	case ReasonOutOfRange:
		return "entry out of range"
	case ReasonDuplicate:
		return "duplicate entry"
	default:
		return "unknown"
	}
}

// PermutationError reports an index sequence that is not a permutation of
// [0, Len). For ReasonLength, Value holds the sequence length and Position is -1.
type PermutationError struct {
	Position int
	Value    int
	Len      int
	Reason   PermutationReason
}

func (e *PermutationError) Error() string {
	if e.Reason == ReasonLength {
		return fmt.Sprintf("soa: apply index: %s: got %d indices for length %d", e.Reason, e.Value, e.Len)
	}
	return fmt.Sprintf("soa: apply index: %s: indices[%d] = %d for length %d", e.Reason, e.Position, e.Value, e.Len)
}

func (e *PermutationError) Unwrap() error { return ErrNotPermutation }

// BorrowError reports a structural mutation attempted while the table is
// being iterated, sorted or filtered.
type BorrowError struct {
	Op string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("soa: %s: table is borrowed by a running iteration", e.Op)
}

func (e *BorrowError) Unwrap() error { return ErrBorrowed }

// SchemaError reports an invalid schema declaration or a schema mismatch
// between two tables.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "soa: invalid schema: " + e.Reason
}

func (e *SchemaError) Unwrap() error { return ErrInvalidSchema }
