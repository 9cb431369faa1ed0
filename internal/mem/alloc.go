package mem

import (
	"unsafe"
)

// Alignment is the byte alignment required for AVX-512 (64 bytes).
const Alignment = 64

// Scalar is the set of pointer-free element types that may live in memory
// obtained from AllocAligned.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64,
// and its capacity equals its length.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+size]
}

// Alloc allocates a zeroed slice of n elements of T whose first element is
// 64-byte aligned. len and cap of the result are both n.
func Alloc[T Scalar](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	buf := AllocAligned(n * int(unsafe.Sizeof(zero)))

	// 64-byte alignment satisfies the alignment of every Scalar type.
	ptr := unsafe.Pointer(unsafe.SliceData(buf)) //nolint:gosec // unsafe is required for memory alignment
	return unsafe.Slice((*T)(ptr), n)            //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of s is 64-byte aligned.
// Empty slices are reported as aligned.
func IsAligned[T any](s []T) bool {
	if cap(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%Alignment == 0 //nolint:gosec // address inspection only
}
