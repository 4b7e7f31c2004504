// Package identifier mints member identifiers.
//
// Every member carries two IDs: the stable internal unique ID
// (M-######) used as the aggregation key, and the human-facing display
// ID (G<generation>-######) printed on entry cards. The display ID is
// derived and may be regenerated; the unique ID never changes.
package identifier

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const digits = 6

// NewUniqueID returns a fresh internal member ID, e.g. "M-493027".
func NewUniqueID() string {
	return "M-" + randomDigits()
}

// NewDisplayID returns a fresh display ID for the given generation,
// e.g. "G3-582114". Generations below 1 are clamped to 1.
func NewDisplayID(generation int) string {
	if generation < 1 {
		generation = 1
	}
	return fmt.Sprintf("G%d-%s", generation, randomDigits())
}

func randomDigits() string {
	max := big.NewInt(1)
	for i := 0; i < digits; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		// crypto/rand only fails when the OS entropy source is broken;
		// there is no sensible fallback for ID minting.
		panic(fmt.Sprintf("identifier: random source unavailable: %v", err))
	}
	return fmt.Sprintf("%0*d", digits, n)
}
