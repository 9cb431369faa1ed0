// Package conv provides checked conversions between Go's int row indices and
// the uint32 row ids used by roaring bitmaps.
//
// Row indices are ints everywhere in the table API; bitmaps address rows with
// uint32. Tables that grow past math.MaxUint32 rows cannot be described by a
// bitmap, and these helpers are where that limit is detected.
package conv
