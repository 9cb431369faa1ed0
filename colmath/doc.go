// Package colmath provides float64 kernels over table columns.
//
// The kernels operate on whole column slices of a soa view, which is where the
// struct-of-arrays layout pays off: every operand is one contiguous run of
// memory.
//
// # Operations
//
//   - In place: Scale, Add, Mul
//   - Complex pairs: Magnitude, Power
//   - Reductions: Sum, Mean
//
// # Dispatch
//
// Runtime CPU feature detection selects between the algo-vecmath kernels and
// a pure Go fallback. Set SOA_COLMATH=generic to force the fallback.
package colmath
