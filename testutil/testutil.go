package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test data
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Perm returns a pseudo-random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Float64s returns n values in range [minVal, maxVal).
// Locks only once per call.
func (r *RNG) Float64s(n int, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	out := make([]float64, n)
	for i := range out {
		out[i] = minVal + r.rand.Float64()*span
	}
	return out
}

// Uint64s returns n values in range [0, limit).
func (r *RNG) Uint64s(n int, limit uint64) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint64, n)
	for i := range out {
		out[i] = r.rand.Uint64() % limit
	}
	return out
}

// Reading is one sensor sample. Tests across the module use it as their
// record type.
type Reading struct {
	Temperature float64
	Pressure    float64
	Timestamp   uint64
}

// Readings returns n readings with temperatures in [15, 35), pressures in
// [950, 1050) and timestamps in [0, 10*n).
func (r *RNG) Readings(n int) []Reading {
	temps := r.Float64s(n, 15, 35)
	pressures := r.Float64s(n, 950, 1050)
	stamps := r.Uint64s(n, uint64(max(10*n, 1)))

	out := make([]Reading, n)
	for i := range out {
		out[i] = Reading{Temperature: temps[i], Pressure: pressures[i], Timestamp: stamps[i]}
	}
	return out
}

// Invert returns the inverse of the permutation p.
func Invert(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}

// Permute returns a copy of s reordered so that element i is s[p[i]].
// It is the reference model for new-to-old index application.
func Permute[T any](s []T, p []int) []T {
	out := make([]T, len(p))
	for i, src := range p {
		out[i] = s[src]
	}
	return out
}
