// Package reference holds slow, direct transforms used as test oracles.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT128 computes X[k] = sum_j x[j] e^{-2 pi i jk/n} directly.
func NaiveDFT128(src []complex128) []complex128 {
	return naive(src, -1)
}

// NaiveIDFT128 is the unnormalized inverse: no 1/n factor is applied.
func NaiveIDFT128(src []complex128) []complex128 {
	return naive(src, 1)
}

func naive(src []complex128, sign float64) []complex128 {
	n := len(src)
	dst := make([]complex128, n)

	for k := range n {
		var sum complex128

		for j := range n {
			// Reduce jk mod n first so large sizes keep full precision.
			angle := sign * 2 * math.Pi * float64((j*k)%n) / float64(n)
			sum += src[j] * cmplx.Rect(1, angle)
		}

		dst[k] = sum
	}

	return dst
}

// NaiveRealDFT returns bins 0..n/2 of a real sequence of length n.
func NaiveRealDFT(src []float64) []complex128 {
	z := make([]complex128, len(src))
	for i, x := range src {
		z[i] = complex(x, 0)
	}

	return NaiveDFT128(z)[:len(src)/2+1]
}

// NaiveRealIDFT rebuilds n real samples from bins 0..n/2, unnormalized.
func NaiveRealIDFT(bins []complex128, n int) []float64 {
	full := make([]complex128, n)
	for k := range n {
		if k <= n/2 {
			full[k] = bins[k]
		} else {
			full[k] = cmplx.Conj(bins[n-k])
		}
	}

	z := NaiveIDFT128(full)
	out := make([]float64, n)

	for i := range z {
		out[i] = real(z[i])
	}

	return out
}
