// Package random provides a small deterministic number stream keyed by a
// string seed. It never reads the clock or the OS entropy pool, so the same
// seed always yields the same sequence.
package random

import (
	"math"
	"unicode/utf16"
)

const mixMultiplier uint32 = 0x45d9f3b

// Seeded is a reproducible stream of floats in [0, 1].
// A Seeded value must not be shared between goroutines.
type Seeded struct {
	state uint32
}

// New derives the initial state from seed using the 31-multiplier string
// hash over UTF-16 code units, wrapping at 32 bits.
func New(seed string) *Seeded {
	var hash int32
	for _, unit := range utf16.Encode([]rune(seed)) {
		hash = hash*31 + int32(unit)
	}
	return &Seeded{state: uint32(hash)}
}

// Next advances the stream and returns the next value in [0, 1].
func (s *Seeded) Next() float64 {
	x := s.state
	x = (x ^ x>>16) * mixMultiplier
	x = (x ^ x>>13) * mixMultiplier
	x ^= x >> 16
	s.state = x
	return float64(x) / math.MaxUint32
}

// Intn draws one value and scales it to an integer in [0, n).
// Next can return exactly 1, which is folded into n-1.
func (s *Seeded) Intn(n int) int {
	if n <= 0 {
		s.Next()
		return 0
	}
	i := int(math.Floor(s.Next() * float64(n)))
	if i >= n {
		return n - 1
	}
	return i
}
