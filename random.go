package qsim

import "math/rand/v2"

/*
Source is the random generator threaded through every operation that samples
an outcome. *rand.Rand from math/rand/v2 satisfies it, so callers can pass
their own generator, and tests can pass a seeded one for repeatable draws.
*/
type Source interface {
	// Float32 returns a pseudo-random number in the half-open interval [0, 1).
	Float32() float32
}

// NewSource returns a PCG-backed generator seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return NewStreamSource(seed, 0)
}

// NewStreamSource returns a PCG generator for one of many independent streams
// derived from the same seed, such as one stream per sampled shot.
func NewStreamSource(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
