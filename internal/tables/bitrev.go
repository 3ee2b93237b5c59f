package tables

import m "github.com/cwbudde/fft3v/internal/math"

// NewSwaps returns the bit-reversal table for size n: entry i holds
// bitrev(i) - i. A negative entry marks the later member of a pair, whose
// partner was finalized earlier, so the swap is done when i is reached. A
// positive entry defers to the partner, and zero marks an index that is
// its own reversal. Walking the table in increasing order resolves every
// pair exactly once.
func NewSwaps(n int) []int {
	bits := m.Log2(n)
	swaps := make([]int, n)

	for i := range n {
		swaps[i] = m.ReverseBits(i, bits) - i
	}

	return swaps
}

// SwapPairs lists the (lower, upper) index pairs exchanged by a full
// bit-reversal permutation of size n, ordered by the upper index.
func SwapPairs(n int) [][2]int {
	swaps := NewSwaps(n)

	var pairs [][2]int

	for i, d := range swaps {
		if d < 0 {
			pairs = append(pairs, [2]int{i + d, i})
		}
	}

	return pairs
}
