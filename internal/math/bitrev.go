package math

import "math/bits"

// ReverseBits reverses the lower nbits bits of x. Bits above nbits are
// dropped.
func ReverseBits(x, nbits int) int {
	if nbits <= 0 {
		return 0
	}

	return int(bits.Reverse64(uint64(x)) >> (64 - nbits))
}

// IsBase4 reports whether n is a power of four.
func IsBase4(n int) bool {
	return IsPowerOf2(n) && Log2(n)%2 == 0
}
