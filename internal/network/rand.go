package network

import (
	"math/rand/v2"
)

// Rand is the randomness the generator draws from. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a reproducible source for the given seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// SystemRand returns an unseeded source
func SystemRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// intBetween draws uniformly from the closed range [lo, hi]
func intBetween(r Rand, lo, hi int) int {
	if hi < lo {
		panic("network: empty range")
	}
	return lo + r.IntN(hi-lo+1)
}

// Range is a closed integer interval
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies in the range
func (r Range) Contains(v int) bool { return v >= r.Min && v <= r.Max }

func (r Range) draw(src Rand) int { return intBetween(src, r.Min, r.Max) }
