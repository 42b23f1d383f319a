package core

import (
	"math/rand/v2"
	"time"
)

// Random is the draw surface every stochastic step consumes.
type Random interface {
	Uint64() uint64
	Float64() float64
	Float32() float32
	IntRange(min, max int) int
	FloatRange(min, max float32) float32
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	pcg  *rand.PCG
	r    *rand.Rand
	seed uint64
}

var _ Random = (*RNG)(nil)

// NewRNG creates a deterministic RNG using the provided seed. A zero seed is
// replaced with the wall clock.
func NewRNG(seed uint64) *RNG {
	pcg := rand.NewPCG(0, 0)
	r := &RNG{pcg: pcg, r: rand.New(pcg)}
	r.Seed(seed)
	return r
}

// Seed restarts the sequence. Zero seeds from the wall clock.
func (r *RNG) Seed(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r.seed = seed
	r.pcg.Seed(seed, 0)
}

// SeedValue reports the effective seed of the current sequence.
func (r *RNG) SeedValue() uint64 { return r.seed }

// Uint64 returns a raw 64-bit draw.
func (r *RNG) Uint64() uint64 { return r.r.Uint64() }

// Uint32 returns the low half of a raw draw.
func (r *RNG) Uint32() uint32 { return uint32(r.r.Uint64()) }

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 { return r.r.Float64() }

// Float32 returns a value in [0, 1).
func (r *RNG) Float32() float32 { return r.r.Float32() }

// IntRange returns an integer in [min, max]. Swapped bounds are reordered.
func (r *RNG) IntRange(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.r.IntN(max-min+1)
}

// FloatRange returns a value in [min, max).
func (r *RNG) FloatRange(min, max float32) float32 {
	return min + r.r.Float32()*(max-min)
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
