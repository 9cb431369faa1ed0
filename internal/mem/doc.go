// Package mem provides memory allocation utilities for column storage.
//
// # Aligned Allocation
//
// Provides 64-byte aligned backing arrays for numeric columns, so SIMD
// kernels can load whole cache lines (AVX-512 friendly). Only pointer-free
// element types (Scalar) may be allocated this way: the memory is obtained as
// a []byte, which the garbage collector never scans for pointers.
package mem
