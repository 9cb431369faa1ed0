package soa

import "math"

// BoundKind is the kind of one end of a Range.
type BoundKind uint8

const (
	// Unbounded extends the range to the start or end of the table.
	Unbounded BoundKind = iota
	// Included makes the bound's value part of the range.
	Included
	// Excluded leaves the bound's value out of the range.
	Excluded
)

// Bound is one end of a Range.
type Bound struct {
	Kind  BoundKind
	Value int
}

// IncludedBound returns a bound that includes v.
func IncludedBound(v int) Bound { return Bound{Kind: Included, Value: v} }

// ExcludedBound returns a bound that excludes v.
func ExcludedBound(v int) Bound { return Bound{Kind: Excluded, Value: v} }

// Range selects a contiguous run of rows. The zero Range covers all rows.
type Range struct {
	Start Bound
	End   Bound
}

// Span returns the half-open range [start, end).
func Span(start, end int) Range {
	return Range{Start: IncludedBound(start), End: ExcludedBound(end)}
}

// SpanInclusive returns the closed range [start, end].
func SpanInclusive(start, end int) Range {
	return Range{Start: IncludedBound(start), End: IncludedBound(end)}
}

// From returns the range [start, len).
func From(start int) Range {
	return Range{Start: IncludedBound(start)}
}

// To returns the range [0, end).
func To(end int) Range {
	return Range{End: ExcludedBound(end)}
}

// ToInclusive returns the range [0, end].
func ToInclusive(end int) Range {
	return Range{End: IncludedBound(end)}
}

// Full returns the range covering all rows.
func Full() Range {
	return Range{}
}

// Bounds normalizes r against a sequence of length n and returns the
// half-open [start, end) it denotes. It panics with a *RangeError if the
// result is not within [0, n] or start > end.
func (r Range) Bounds(n int) (start, end int) {
	start, end, ok := r.normalize(n)
	if !ok {
		panic(&RangeError{Op: "slice", Start: start, End: end, Len: n})
	}
	return start, end
}

func (r Range) normalize(n int) (start, end int, ok bool) {
	ok = true

	switch r.Start.Kind {
	case Included:
		start = r.Start.Value
	case Excluded:
		if r.Start.Value == math.MaxInt {
			return r.Start.Value, r.Start.Value, false
		}
		start = r.Start.Value + 1
	default:
		start = 0
	}

	switch r.End.Kind {
	case Included:
		if r.End.Value == math.MaxInt {
			return start, r.End.Value, false
		}
		end = r.End.Value + 1
	case Excluded:
		end = r.End.Value
	default:
		end = n
	}

	if start < 0 || end < 0 || start > end || end > n {
		ok = false
	}
	return start, end, ok
}
