package testutil

import (
	"math/rand"
	"slices"
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
		rand: rand.New(rand.NewSource(seed)),
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Ints returns n pseudo-random values in [0,max). Duplicates are expected
// whenever n approaches max; bounded-selection tests rely on that.
func (r *RNG) Ints(n, max int) []int {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = r.Intn(max)
	}

	return xs
}

// Floats returns n pseudo-random values in [0.0,1.0).
func (r *RNG) Floats(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = r.Float64()
	}

	return xs
}

// ExactBestN returns the n best items under beats, sorted ascending from
// worst to best. It is a brute-force oracle for verifying selection results:
// the output matches what draining a capacity-n selection of items must
// yield, up to the relative order of tied values.
func ExactBestN[X any](items []X, n int, beats func(a, b X) bool) []X {
	sorted := slices.Clone(items)

	slices.SortFunc(sorted, func(a, b X) int {
		switch {
		case beats(a, b):
			return 1
		case beats(b, a):
			return -1
		default:
			return 0
		}
	})

	if n < 0 {
		n = 0
	}

	if n > len(sorted) {
		n = len(sorted)
	}

	return sorted[len(sorted)-n:]
}
