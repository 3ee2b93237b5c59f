package fft3v

import (
	"errors"
	"fmt"
	"testing"

	m "github.com/cwbudde/fft3v/internal/math"
	"github.com/cwbudde/fft3v/internal/reference"
)

type shape struct{ x, y, z int }

func newConfigured3D(t *testing.T, r, c shape, opts ...Option) *FFT3D {
	t.Helper()

	f := NewFFT3D(opts...)
	if err := f.SetDimensions(r.x, r.y, r.z, c.x, c.y, c.z); err != nil {
		t.Fatalf("SetDimensions(%v, %v): %v", r, c, err)
	}

	return f
}

func recommend(t *testing.T, r shape) shape {
	t.Helper()

	x, y, z, err := RecommendDimensions(r.x, r.y, r.z)
	if err != nil {
		t.Fatalf("RecommendDimensions(%v): %v", r, err)
	}

	return shape{x, y, z}
}

// paddedChannel lays channel c of the real volume into an nx*ny*nz
// volume, zero beyond the real extent.
func paddedChannel(rarr []float64, r shape, nx, ny, nz, c int) []float64 {
	out := make([]float64, nx*ny*nz)
	for z := range r.z {
		for y := range r.y {
			for x := range r.x {
				out[(z*ny+y)*nx+x] = rarr[3*((z*r.y+y)*r.x+x)+c]
			}
		}
	}

	return out
}

func TestRecommendDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want shape
	}{
		{shape{1, 1, 1}, shape{1, 1, 1}},
		{shape{2, 1, 1}, shape{2, 1, 1}},
		{shape{3, 5, 9}, shape{3, 8, 16}},
		{shape{64, 2, 3}, shape{33, 2, 4}},
		{shape{6, 10, 2}, shape{5, 16, 2}},
	}

	for _, tc := range tests {
		if got := recommend(t, tc.in); got != tc.want {
			t.Errorf("RecommendDimensions(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}

	if _, _, _, err := RecommendDimensions(1, m.MaxInt, 1); !errors.Is(err, ErrOverflow) {
		t.Errorf("overflow: err = %v", err)
	}

	if _, _, _, err := RecommendDimensions(1, 1, 0); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("zero extent: err = %v", err)
	}
}

func TestFFT3DMatchesNaive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r      shape
		padded bool // double every axis, as for a linear convolution
	}{
		{shape{3, 2, 3}, false},
		{shape{1, 1, 1}, false},
		{shape{1, 5, 2}, false},
		{shape{5, 1, 1}, false},
		{shape{8, 4, 2}, false},
		{shape{3, 3, 2}, true},
		{shape{2, 1, 3}, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%v/padded=%v", tc.r, tc.padded), func(t *testing.T) {
			t.Parallel()

			req := tc.r
			if tc.padded {
				req = shape{2 * tc.r.x, 2 * tc.r.y, 2 * tc.r.z}
			}

			c := recommend(t, req)
			f := newConfigured3D(t, tc.r, c)
			nx, ny, nz := f.LogicalDimensions()

			rarr := randomReal(f.RealLen(), int64(tc.r.x*100+tc.r.y*10+tc.r.z))
			carr := randomReal(f.ComplexLen(), 1) // stale data must not leak in
			f.ForwardRealToComplexFFT(rarr, carr)

			for ch := range 3 {
				want := reference.NaiveRealDFT3D(paddedChannel(rarr, tc.r, nx, ny, nz, ch), nx, ny, nz)

				for k := range c.z {
					for j := range c.y {
						for i := range c.x {
							idx := 6*((k*c.y+j)*c.x+i) + 2*ch
							got := complex(carr[idx], carr[idx+1])
							assertApproxComplex128Tolf(t, got, want[(k*ny+j)*c.x+i], 1e-9, "channel %d bin (%d,%d,%d)", ch, i, j, k)
						}
					}
				}
			}

			out := make([]float64, f.RealLen())
			f.InverseComplexToRealFFT(carr, out)
			Scale(out, f.Scaling())

			for i := range rarr {
				assertApproxFloat64Tolf(t, out[i], rarr[i], 1e-12, "scalar %d", i)
			}
		})
	}
}

func TestFFT3DAdjustInputDimensions(t *testing.T) {
	t.Parallel()

	c := recommend(t, shape{16, 8, 8})
	f := newConfigured3D(t, shape{16, 8, 8}, c)

	small := shape{5, 3, 4}
	if err := f.AdjustInputDimensions(small.x, small.y, small.z); err != nil {
		t.Fatalf("AdjustInputDimensions: %v", err)
	}

	fresh := newConfigured3D(t, small, c)
	rarr := randomReal(fresh.RealLen(), 8)

	a := make([]float64, f.ComplexLen())
	b := make([]float64, fresh.ComplexLen())
	f.ForwardRealToComplexFFT(rarr, a)
	fresh.ForwardRealToComplexFFT(rarr, b)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("scalar %d: %v != %v", i, a[i], b[i])
		}
	}

	if err := f.AdjustInputDimensions(17, 1, 1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("rdimx past Nx: err = %v", err)
	}
}

func TestFFT3DErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		r, c  shape
		field string
	}{
		{"cdimx zero", shape{1, 1, 1}, shape{0, 1, 1}, "cdimx"},
		{"nx not power of two", shape{3, 1, 1}, shape{4, 1, 1}, "cdimx"},
		{"rdimx past nx", shape{5, 1, 1}, shape{3, 1, 1}, "rdimx"},
		{"cdimy not power of two", shape{1, 3, 1}, shape{1, 6, 1}, "cdimy"},
		{"rdimz past cdimz", shape{1, 1, 5}, shape{1, 1, 4}, "rdimz"},
		{"rdimy zero", shape{1, 0, 1}, shape{1, 1, 1}, "rdimy"},
	}

	for _, tc := range tests {
		err := NewFFT3D().SetDimensions(tc.r.x, tc.r.y, tc.r.z, tc.c.x, tc.c.y, tc.c.z)

		var pe *ParameterError
		if !errors.Is(err, ErrInvalidLength) || !errors.As(err, &pe) || pe.Field != tc.field {
			t.Errorf("%s: err = %v, want field %s", tc.name, err, tc.field)
		}
	}

	mustPanic(t, "unconfigured forward", func() { NewFFT3D().ForwardRealToComplexFFT(nil, nil) })
}

func TestFFT3DCloneRunsIndependently(t *testing.T) {
	t.Parallel()

	c := recommend(t, shape{6, 6, 6})
	f := newConfigured3D(t, shape{6, 6, 6}, c)
	g := f.Clone()

	if g.fx == f.fx || g.fy == f.fy || g.fz == f.fz {
		t.Fatal("clone shares axis transforms")
	}

	rarr := randomReal(f.RealLen(), 4)
	a := make([]float64, f.ComplexLen())
	b := make([]float64, g.ComplexLen())

	done := make(chan struct{})

	go func() {
		g.ForwardRealToComplexFFT(rarr, b)
		close(done)
	}()

	f.ForwardRealToComplexFFT(rarr, a)
	<-done

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("scalar %d: %v != %v", i, a[i], b[i])
		}
	}
}
