package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r    *rand.Rand
	seed uint64
}

// NewRNG creates a deterministic RNG using the provided seed. A zero seed is
// replaced by one taken from the clock and the runtime's entropy source.
func NewRNG(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = uint64(time.Now().UnixNano()) ^ rand.Uint64()
	}
	return &RNG{r: rand.New(rand.NewPCG(s, 0)), seed: s}
}

// Seed returns the seed actually in use, so a random run can be replayed.
func (r *RNG) Seed() uint64 { return r.seed }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
