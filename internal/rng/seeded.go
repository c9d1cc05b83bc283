package rng

import "math/rand"

// Seeded is a deterministic generator. Two Seeded generators created with the same
// seed return the same sequence, which is what the tests rely on.
type Seeded struct {
	seed int64
	rng  *rand.Rand
}

// NewSeeded returns a deterministic generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)), // nolint:gosec
	}
}

// Seed returns the seed the generator was created with
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Intn returns a random number in [0, n)
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
