// Package tables builds the read-only tables shared by the transform
// kernels: roots of unity, the radix-4 twiddle table with its preorder
// traversal schedule, the bit-reversal swap table and the roots used to
// unpack a real transform from a half-size complex one.
package tables

import (
	"math"

	m "github.com/cwbudde/fft3v/internal/math"
)

// RootsOfUnity returns w^k for k = 0..n-1 with w = exp(-2πi/n). Only one
// octant is evaluated with math.Sincos; the rest of the circle is filled
// by reflection so that symmetric roots agree bit for bit.
func RootsOfUnity(n int) []complex128 {
	if n <= 0 {
		return nil
	}

	w := make([]complex128, n)

	switch n {
	case 1:
		w[0] = 1
		return w
	case 2:
		w[0], w[1] = 1, -1
		return w
	case 4:
		w[0], w[1], w[2], w[3] = 1, complex(0, -1), -1, complex(0, 1)
		return w
	}

	if n%8 != 0 {
		for k := range n {
			s, c := math.Sincos(m.TwoPi * float64(k) / float64(n))
			w[k] = complex(c, -s)
		}

		return w
	}

	q := n / 4
	h := n / 2

	for k := 0; k <= n/8; k++ {
		s, c := math.Sincos(m.TwoPi * float64(k) / float64(n))
		switch 8 * k {
		case 0:
			s, c = 0, 1
		case n:
			s, c = m.SqrtHalf, m.SqrtHalf
		}

		w[k] = complex(c, -s)
		w[q-k] = complex(s, -c)
		w[q+k] = complex(-s, -c)
		w[h-k] = complex(-c, -s)
		w[h+k] = complex(-c, s)
		w[3*q-k] = complex(-s, c)
		w[3*q+k] = complex(s, c)

		if k > 0 {
			w[n-k] = complex(c, s)
		}
	}

	return w
}
