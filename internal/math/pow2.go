package math

import "math/bits"

// MaxInt is the largest value representable by int.
const MaxInt = int(^uint(0) >> 1)

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	if n <= 1 {
		return 0
	}

	return bits.Len(uint(n)) - 1
}

// NextPowerOfTwo returns the smallest power of two that is >= n. The
// search doubles a candidate starting at 1; ok is false if the next
// doubling would leave the int range before reaching n.
func NextPowerOfTwo(n int) (p int, ok bool) {
	p = 1
	for p < n {
		if p > MaxInt/2 {
			return 0, false
		}

		p <<= 1
	}

	return p, true
}
