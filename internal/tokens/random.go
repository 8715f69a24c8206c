// SPDX-License-Identifier: MIT
package tokens

import "math/rand"

// RandomSource supplies the randomness used when style or seed color is
// omitted. *math/rand.Rand satisfies it. Implementations need not be safe
// for concurrent use; use one source per call.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

// DefaultRandomSeed seeds the source used when callers supply none.
const DefaultRandomSeed int64 = 0

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	return rand.New(rand.NewSource(seed))
}
