package kernels

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/fft3v/internal/tables"
)

const (
	kernelTol = 1e-10
	realTol   = 1e-9
)

func randomComplex128(n int, seed int64) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)

	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func randomFloat64(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)

	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// column extracts rows [0, n) of column c from an interleaved view.
func column(v View, c, n int) []complex128 {
	out := make([]complex128, n)
	for j := range out {
		out[j] = v.Data[v.Index(j, c)]
	}

	return out
}

func tablesFor(t *testing.T, n int) *tables.Radix4 {
	t.Helper()

	if n < tables.MinGenericSize {
		return nil
	}

	tab, _, err := tables.Shared.Radix4(n)
	if err != nil {
		t.Fatalf("Radix4(%d): %v", n, err)
	}

	return tab
}

func assertComplex128Close(t *testing.T, got, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v want %v (diff=%v)", i, got[i], want[i], cmplx.Abs(got[i]-want[i]))
		}
	}
}

func assertFloat64Close(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	for i := range want {
		if math.Abs(got[i]-want[i]) > tol {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}
