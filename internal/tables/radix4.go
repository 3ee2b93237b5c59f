package tables

import (
	"fmt"

	m "github.com/cwbudde/fft3v/internal/math"
)

// MinGenericSize is the smallest transform the preorder engine handles.
const MinGenericSize = 16

// Step is one entry of the preorder traversal schedule: a radix-4 level
// whose blocks have Span*4 elements, with its w^j, w^2j, w^3j triples
// (j = 1..Span-1) starting at Twiddles[Offset]. A Span of zero ends the
// schedule.
type Step struct {
	Span   int
	Offset int
}

// Radix4 holds the stride-independent tables of one complex transform
// size. Values are read-only after construction and shared between
// configurations.
type Radix4 struct {
	Size int
	Log2 int

	// Twiddles concatenates the per-level triples in schedule order. For
	// odd Log2 the fifteen 32nd roots w32^1..w32^15 used by the radix-2
	// pass follow at Radix2Offset.
	Twiddles     []complex128
	Schedule     []Step
	Radix2Offset int

	// Bottom is the block size handed to the fixed kernel after the last
	// radix-4 level: 16 for even Log2, 32 for odd Log2.
	Bottom int

	// Leaf is the block size at which the walk stops issuing radix-4
	// passes (four bottom blocks per leaf), or Size when the schedule is
	// empty.
	Leaf int

	// Swaps is the bit-reversal table; see NewSwaps.
	Swaps []int
}

// NewRadix4 builds the tables for a power-of-two size n >= 16.
func NewRadix4(n int) (*Radix4, error) {
	if n < MinGenericSize || !m.IsPowerOf2(n) {
		return nil, fmt.Errorf("tables: radix-4 size %d is not a power of two >= %d", n, MinGenericSize)
	}

	t := &Radix4{
		Size:         n,
		Log2:         m.Log2(n),
		Radix2Offset: -1,
		Leaf:         n,
	}

	roots := RootsOfUnity(n)

	for size := n; size >= 64; size /= 4 {
		span := size / 4
		step := n / size // w_size^j == w_n^(j*step)
		t.Schedule = append(t.Schedule, Step{Span: span, Offset: len(t.Twiddles)})

		for j := 1; j < span; j++ {
			t.Twiddles = append(t.Twiddles,
				roots[j*step],
				roots[2*j*step],
				roots[3*j*step],
			)
		}

		t.Leaf = size
	}

	t.Schedule = append(t.Schedule, Step{})

	t.Bottom = 16
	if t.Log2%2 == 1 {
		t.Bottom = 32
		t.Radix2Offset = len(t.Twiddles)

		step := n / 32
		for j := 1; j < 16; j++ {
			t.Twiddles = append(t.Twiddles, roots[j*step])
		}
	}

	if want := TwiddleLen(n); len(t.Twiddles) != want {
		panic(fmt.Sprintf("tables: twiddle table for size %d has %d entries, want %d", n, len(t.Twiddles), want))
	}

	t.Swaps = NewSwaps(n)

	return t, nil
}

// TwiddleLen is the closed form length of the twiddle table:
// n - 3k/2 - 10 for k = log2(n) even, n - 3(k-1)/2 - 11 for k odd.
func TwiddleLen(n int) int {
	k := m.Log2(n)
	if m.IsBase4(n) {
		return n - 3*k/2 - 10
	}

	return n - 3*(k-1)/2 - 11
}

// Levels returns the number of radix-4 levels in the schedule.
func (t *Radix4) Levels() int {
	return len(t.Schedule) - 1
}
