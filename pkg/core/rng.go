package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2. A run shares one
// instance for every random draw; there is no per-agent seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeRNG creates an RNG seeded from the current wall clock.
func NewTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Float returns a uniform float64 in [lo, hi).
func (r *RNG) Float(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}

// Trial returns a uniform float64 in [0, 1), used for chance draws.
func (r *RNG) Trial() float64 {
	return r.r.Float64()
}

// IntN returns a uniform int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
