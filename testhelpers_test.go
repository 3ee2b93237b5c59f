package fft3v

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func randomReal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// bin returns bin k of channel c in complex row r of carr.
func bin(carr []float64, stride, r, k, c int) complex128 {
	i := r*stride + 6*k + 2*c
	return complex(carr[i], carr[i+1])
}

// channelOf extracts channel c of row r, zero padded to n samples.
func channelOf(rarr []float64, stride, r, c, logical, n int) []float64 {
	out := make([]float64, n)
	for j := range logical {
		out[j] = rarr[r*stride+3*j+c]
	}

	return out
}

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxFloat64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected panic", name)
		}
	}()

	fn()
}
