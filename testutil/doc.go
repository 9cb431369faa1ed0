// Package testutil provides testing utilities for soa tables.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, goroutine-safe RNG for generating column data,
// sensor-style readings and random permutations.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	temps := rng.Float64s(1000, 15, 35) // uniform [15, 35)
//	perm := rng.Perm(1000)              // random new-to-old order
//
// # Permutations
//
//	inv := testutil.Invert(perm) // applying perm then inv is the identity
package testutil
