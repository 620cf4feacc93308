package prng

import "math"

const (
	multiplier = 6364136223846793005
	increment  = 1

	// maxFloat is math.MaxUint32 rounded to binary32.
	maxFloat = float32(math.MaxUint32)
)

// LCG is a Newlib-style linear congruential generator. The zero value is not
// seeded; use New or Seed. State is never zero after seeding.
type LCG struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) LCG {
	var g LCG
	g.Seed(seed)
	return g
}

// Seed resets the generator state. Seed 0 is remapped to 1.
func (g *LCG) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	g.state = seed
}

// State returns the current 64-bit state.
func (g *LCG) State() uint64 {
	return g.state
}

func (g *LCG) next() uint32 {
	g.state = multiplier*g.state + increment
	return uint32(g.state >> 32)
}

// Uint returns a uniform integer in [0, max]. Draws that would bias the
// result toward small values are rejected and redrawn; max == MaxUint32
// never rejects.
func (g *LCG) Uint(max uint32) uint32 {
	if max == math.MaxUint32 {
		return g.next()
	}

	span := uint64(max) + 1
	limit := (1 << 32) / span * span

	for {
		if n := g.next(); uint64(n) < limit {
			return uint32(uint64(n) % span)
		}
	}
}

// Float returns a value in [0, scale] computed in binary32 arithmetic.
func (g *LCG) Float(scale float32) float32 {
	return float32(g.Uint(math.MaxUint32)) * scale / maxFloat
}

// Bool draws one uniform bit.
func (g *LCG) Bool() bool {
	return g.Uint(1) != 0
}

// Uint64 joins two draws, high word first. It makes *LCG a math/rand/v2
// Source for callers that want the standard distributions on the same stream.
func (g *LCG) Uint64() uint64 {
	hi := g.next()
	return uint64(hi)<<32 | uint64(g.next())
}
