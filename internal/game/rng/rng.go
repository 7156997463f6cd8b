// Package rng provides the randomness abstraction for the battle engine.
//
// Every chance-based decision in a battle (damage variance, status rolls,
// paralysis checks) draws from a single injected Source, so a battle run
// against a seeded source replays the same sequence of draws.
package rng

// Source is the randomness provider for battle simulation.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int

	// Float64 returns a random float64 in [0.0, 1.0).
	Float64() float64
}

// Uniform returns a random float64 in [lo, hi) drawn from src.
//
// Precondition: src non-nil, lo <= hi.
// Postcondition: lo <= result < hi (result == lo when lo == hi).
func Uniform(src Source, lo, hi float64) float64 {
	if lo > hi {
		panic("rng: Uniform called with lo > hi")
	}
	return lo + src.Float64()*(hi-lo)
}

// Chance returns true with probability p, where p is in [0.0, 1.0].
//
// Postcondition: always false for p <= 0, always true for p >= 1.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}
