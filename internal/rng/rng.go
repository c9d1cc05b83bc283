package rng

// Generator provides the randomness used for shuffling and card re-insertion
type Generator interface {
	// Intn will return a random number in [0, n)
	Intn(n int) int
}

// New returns a seeded generator, or the crypto generator when seed is 0
func New(seed int64) Generator {
	if seed == 0 {
		return Crypto{}
	}

	return NewSeeded(seed)
}
