package huffman

import (
	"math"
)

// addSaturating adds two weights, pinning the result at math.MaxUint64
// instead of wrapping around.
func addSaturating(a, b uint64) uint64 {
	sum := a + b
	if sum < a {
		sum = math.MaxUint64
	}
	return sum
}
