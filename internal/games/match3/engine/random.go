package engine

import "math/rand"

// Random is the pseudo-random source the engines draw from.
type Random interface {
	// Float returns a uniform value in [0, 1).
	Float() float64
	// IntRange returns a uniform value in [min, max). It returns min when
	// the range is empty.
	IntRange(min, max int) int
}

// SeededRandom is the default Random, backed by math/rand.
type SeededRandom struct {
	seed int64
	rng  *rand.Rand
}

// NewRandom creates a deterministic source for the given seed.
func NewRandom(seed int64) *SeededRandom {
	return &SeededRandom{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with.
func (r *SeededRandom) Seed() int64 { return r.seed }

// Float returns a uniform value in [0, 1).
func (r *SeededRandom) Float() float64 {
	return r.rng.Float64()
}

// IntRange returns a uniform value in [min, max), or min for an empty range.
func (r *SeededRandom) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rng.Intn(max-min)
}
