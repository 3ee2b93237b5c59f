package fft3v

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/cwbudde/fft3v/internal/fftypes"
	m "github.com/cwbudde/fft3v/internal/math"
	"github.com/cwbudde/fft3v/internal/reference"
)

const (
	realTol      = 1e-9
	roundTripTol = 1e-12 // per unit of transform size
)

func newConfiguredReal(t *testing.T, logical, size, count int, opts ...Option) *RealFFT {
	t.Helper()

	r := NewRealFFT(opts...)
	if err := r.SetDimensions(logical, size, count); err != nil {
		t.Fatalf("SetDimensions(%d, %d, %d): %v", logical, size, count, err)
	}

	return r
}

func TestRealFFTConcreteScenario(t *testing.T) {
	t.Parallel()

	// Channel 0 holds 1, 2, 3; channels 1 and 2 are zero.
	rarr := []float64{1, 0, 0, 2, 0, 0, 3, 0, 0}
	r := newConfiguredReal(t, 3, 4, 1)

	carr := make([]float64, 6*r.SpectrumLen())
	r.Forward(rarr, carr, nil)

	assertApproxComplex128Tolf(t, bin(carr, 0, 0, 0, 0), 6, realTol, "bin 0")

	out := make([]float64, 9)
	r.Inverse(carr, out)

	for j, want := range []float64{1, 2, 3} {
		assertApproxFloat64Tolf(t, out[3*j]/4, want, realTol, "sample %d", j)
	}

	if got := r.Scaling(); got != 0.25 {
		t.Fatalf("Scaling() = %v, want 0.25", got)
	}
}

func TestRealFFTInterleavedBuffer(t *testing.T) {
	t.Parallel()

	// The buffer read as interleaved samples: (1,2,3), (3,2,1), (0,0,0).
	rarr := []float64{1, 2, 3, 3, 2, 1, 0, 0, 0}
	r := newConfiguredReal(t, 3, 4, 1)

	carr := make([]float64, 18)
	r.Forward(rarr, carr, nil)

	for c := range 3 {
		assertApproxComplex128Tolf(t, bin(carr, 0, 0, 0, c), 4, realTol, "channel %d bin 0", c)
	}

	out := make([]float64, 9)
	r.Inverse(carr, out)
	Scale(out, r.Scaling())

	for i := range rarr {
		assertApproxFloat64Tolf(t, out[i], rarr[i], realTol, "scalar %d", i)
	}
}

func TestRealFFTMatchesNaive(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 256, 2048} {
		for _, logical := range []int{n, max(n/2, 1), max(n/2+1, 1)} {
			if logical > n {
				continue
			}

			t.Run(fmt.Sprintf("n=%d/logical=%d", n, logical), func(t *testing.T) {
				t.Parallel()

				const count = 2

				r := newConfiguredReal(t, logical, n, count)
				rarr := randomReal(3*logical*count, int64(n*31+logical))
				carr := make([]float64, 6*r.SpectrumLen()*count)
				r.Forward(rarr, carr, nil)

				for row := range count {
					for c := range 3 {
						want := reference.NaiveRealDFT(channelOf(rarr, 3*logical, row, c, logical, n))
						for k := range want {
							assertApproxComplex128Tolf(t, bin(carr, 6*r.SpectrumLen(), row, k, c), want[k], realTol,
								"row %d channel %d bin %d", row, c, k)
						}
					}
				}
			})
		}
	}
}

func TestRealFFTRoundTripWithStrides(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 4, 8, 16, 32, 64, 128, 512, 4096} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			const count = 3

			logical := max(n-1, 1)
			r := newConfiguredReal(t, logical, n, count)

			rs, cs := 3*logical+5, 6*r.SpectrumLen()+4
			if err := r.SetRowStrides(rs, cs, logical); err != nil {
				t.Fatalf("SetRowStrides: %v", err)
			}

			rarr := randomReal(rs*count, int64(n))
			carr := make([]float64, cs*count)
			r.Forward(rarr, carr, nil)

			out := make([]float64, len(rarr))
			for i := range out {
				out[i] = math.NaN()
			}

			r.Inverse(carr, out)

			for row := range count {
				for i := range 3 * logical {
					k := row*rs + i
					assertApproxFloat64Tolf(t, out[k]*r.Scaling(), rarr[k], roundTripTol*float64(n)+1e-13, "row %d scalar %d", row, i)
				}

				for i := 3 * logical; i < rs; i++ {
					if !math.IsNaN(out[row*rs+i]) {
						t.Fatalf("row %d: stride padding %d was written", row, i)
					}
				}
			}
		})
	}
}

func TestRealFFTMultiplier(t *testing.T) {
	t.Parallel()

	const (
		n       = 64
		logical = 40
		count   = 2
	)

	r := newConfiguredReal(t, logical, n, count)
	if err := r.SetRowStrides(3*logical, 6*r.SpectrumLen(), logical+3); err != nil {
		t.Fatal(err)
	}

	rarr := randomReal(3*logical*count, 1)
	mult := randomReal((logical+3)*count, 2)

	scaled := append([]float64(nil), rarr...)
	for row := range count {
		for j := range logical {
			for c := range 3 {
				scaled[row*3*logical+3*j+c] *= mult[row*(logical+3)+j]
			}
		}
	}

	got := make([]float64, 6*r.SpectrumLen()*count)
	want := make([]float64, len(got))
	r.Forward(rarr, got, mult)
	r.Forward(scaled, want, nil)

	for i := range got {
		assertApproxFloat64Tolf(t, got[i], want[i], 1e-12, "scalar %d", i)
	}
}

func TestRealFFTConjugateSymmetry(t *testing.T) {
	t.Parallel()

	const n = 128

	r := newConfiguredReal(t, n, n, 1)
	rarr := randomReal(3*n, 9)
	carr := make([]float64, 6*r.SpectrumLen())
	r.Forward(rarr, carr, nil)

	for c := range 3 {
		x := channelOf(rarr, 0, 0, c, n, n)
		z := make([]complex128, n)

		for j := range x {
			z[j] = complex(x[j], 0)
		}

		full := reference.NaiveDFT128(z)
		for k := range n {
			got := bin(carr, 0, 0, min(k, n-k), c)
			if k > n/2 {
				got = complex(real(got), -imag(got))
			}

			assertApproxComplex128Tolf(t, got, full[k], realTol, "channel %d bin %d", c, k)
		}

		if imag(bin(carr, 0, 0, 0, c)) != 0 || imag(bin(carr, 0, 0, n/2, c)) != 0 {
			t.Fatalf("channel %d: DC or Nyquist bin is not real", c)
		}
	}
}

func TestRealFFTCrossKernel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, logical int
		exact      bool
	}{
		{32, 32, false},
		{64, 64, true},
		{64, 20, true},
		{128, 128, true},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("n=%d/logical=%d", tc.n, tc.logical), func(t *testing.T) {
			t.Parallel()

			auto := newConfiguredReal(t, tc.logical, tc.n, 1)
			gen := newConfiguredReal(t, tc.logical, tc.n, 1, WithKernelStrategy(KernelGeneric))

			if gen.Kernel() != fftypes.KindGeneric {
				t.Fatalf("generic kernel = %v", gen.Kernel())
			}

			rarr := randomReal(3*tc.logical, int64(tc.n))
			a := make([]float64, 6*auto.SpectrumLen())
			b := make([]float64, len(a))
			auto.Forward(rarr, a, nil)
			gen.Forward(rarr, b, nil)

			for i := range a {
				if tc.exact && a[i] != b[i] {
					t.Fatalf("scalar %d: %v != %v", i, a[i], b[i])
				}

				assertApproxFloat64Tolf(t, a[i], b[i], realTol, "scalar %d", i)
			}

			ra := make([]float64, 3*tc.logical)
			rb := make([]float64, len(ra))
			auto.Inverse(a, ra)
			gen.Inverse(a, rb)

			for i := range ra {
				if tc.exact && ra[i] != rb[i] {
					t.Fatalf("inverse scalar %d: %v != %v", i, ra[i], rb[i])
				}

				assertApproxFloat64Tolf(t, ra[i], rb[i], realTol*float64(tc.n), "inverse scalar %d", i)
			}
		})
	}
}

func TestRealFFTZeroPaddingEquivalence(t *testing.T) {
	t.Parallel()

	for _, n := range []int{4, 8, 16, 32, 64, 128, 1024} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			logical := n / 2
			zp := newConfiguredReal(t, logical, n, 1)
			full := newConfiguredReal(t, n, n, 1)

			if !zp.ZeroPadded() || full.ZeroPadded() {
				t.Fatalf("ZeroPadded: zp=%v full=%v", zp.ZeroPadded(), full.ZeroPadded())
			}

			short := randomReal(3*logical, int64(n))
			padded := make([]float64, 3*n)
			copy(padded, short)

			a := make([]float64, 6*zp.SpectrumLen())
			b := make([]float64, len(a))
			zp.Forward(short, a, nil)
			full.Forward(padded, b, nil)

			for i := range a {
				assertApproxFloat64Tolf(t, a[i], b[i], realTol, "forward scalar %d", i)
			}

			ra := make([]float64, 3*logical)
			rb := make([]float64, 3*n)
			zp.Inverse(a, ra)
			full.Inverse(a, rb)

			for i := range ra {
				assertApproxFloat64Tolf(t, ra[i], rb[i], realTol*float64(n), "inverse scalar %d", i)
			}
		})
	}
}

func TestRealFFTInverseLeavesInputIntact(t *testing.T) {
	t.Parallel()

	r := newConfiguredReal(t, 100, 256, 2)
	carr := randomReal(6*r.SpectrumLen()*2, 3)
	saved := append([]float64(nil), carr...)

	r.Inverse(carr, make([]float64, 600))

	for i := range carr {
		if carr[i] != saved[i] {
			t.Fatalf("carr[%d] changed", i)
		}
	}
}

func TestRealFFTAdjustInputDimensions(t *testing.T) {
	t.Parallel()

	r := newConfiguredReal(t, 64, 64, 1)
	kind := r.Kernel()

	if err := r.AdjustInputDimensions(20, 4); err != nil {
		t.Fatalf("AdjustInputDimensions: %v", err)
	}

	if !r.ZeroPadded() || r.Kernel() != kind || r.LogicalDimension() != 64 {
		t.Fatalf("after adjust: zp=%v kernel=%v size=%d", r.ZeroPadded(), r.Kernel(), r.LogicalDimension())
	}

	fresh := newConfiguredReal(t, 20, 64, 4)
	rarr := randomReal(3*20*4, 5)
	a := make([]float64, 6*33*4)
	b := make([]float64, len(a))
	r.Forward(rarr, a, nil)
	fresh.Forward(rarr, b, nil)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("scalar %d: %v != %v", i, a[i], b[i])
		}
	}

	if err := r.AdjustInputDimensions(65, 1); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("logical 65: err = %v", err)
	}

	if err := r.AdjustArrayCount(0); !errors.Is(err, ErrInvalidCount) {
		t.Fatalf("count 0: err = %v", err)
	}
}

func TestRealFFTErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		logical, size, count int
		want                 error
		field                string
	}{
		{"zero size", 1, 0, 1, ErrInvalidLength, "transformSize"},
		{"not power of two", 3, 6, 1, ErrInvalidLength, "transformSize"},
		{"logical too big", 5, 4, 1, ErrInvalidLength, "logicalSize"},
		{"logical zero", 0, 4, 1, ErrInvalidLength, "logicalSize"},
		{"count zero", 3, 4, 0, ErrInvalidCount, "arrayCount"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := NewRealFFT().SetDimensions(tc.logical, tc.size, tc.count)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}

			var pe *ParameterError
			if !errors.As(err, &pe) || pe.Field != tc.field || pe.Op != "RealFFT.SetDimensions" {
				t.Fatalf("ParameterError = %+v, want field %q", pe, tc.field)
			}
		})
	}

	r := newConfiguredReal(t, 10, 16, 2)
	strides := []struct {
		rs, cs, ms int
	}{
		{29, 54, 10},
		{30, 52, 10},
		{30, 55, 10},
		{30, 54, 9},
	}

	for _, s := range strides {
		if err := r.SetRowStrides(s.rs, s.cs, s.ms); !errors.Is(err, ErrInvalidStride) {
			t.Errorf("SetRowStrides(%d, %d, %d): err = %v", s.rs, s.cs, s.ms, err)
		}
	}

	if err := r.SetRowStrides(30, 54, 10); err != nil {
		t.Fatalf("minimal strides rejected: %v", err)
	}
}

func TestRecommendSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want int
		err      error
	}{
		{1, 1, nil},
		{2, 2, nil},
		{3, 4, nil},
		{64, 64, nil},
		{65, 128, nil},
		{0, 0, ErrInvalidLength},
		{-4, 0, ErrInvalidLength},
		{m.MaxInt, 0, ErrOverflow},
		{m.MaxInt/2 + 2, 0, ErrOverflow},
	}

	for _, tc := range tests {
		got, err := RecommendSize(tc.in)
		if !errors.Is(err, tc.err) || got != tc.want {
			t.Errorf("RecommendSize(%d) = %d, %v; want %d, %v", tc.in, got, err, tc.want, tc.err)
		}
	}
}

func TestRealFFTUnconfiguredPanics(t *testing.T) {
	t.Parallel()

	var r RealFFT

	mustPanic(t, "Forward", func() { r.Forward(nil, nil, nil) })
	mustPanic(t, "Inverse", func() { r.Inverse(nil, nil) })
	mustPanic(t, "AdjustArrayCount", func() { _ = r.AdjustArrayCount(1) })

	if err := r.SetDimensions(4, 8, 1); err != nil {
		t.Fatalf("zero value SetDimensions: %v", err)
	}

	r.Reset()
	mustPanic(t, "Forward after Reset", func() { r.Forward(nil, nil, nil) })
}

func TestRealFFTCloneIsIndependent(t *testing.T) {
	t.Parallel()

	r := newConfiguredReal(t, 100, 128, 1)
	c := r.Clone()

	if err := c.AdjustInputDimensions(10, 1); err != nil {
		t.Fatal(err)
	}

	if r.ZeroPadded() == c.ZeroPadded() {
		t.Fatal("adjusting the clone changed the original")
	}

	if &r.ws.buf[0] == &c.ws.buf[0] {
		t.Fatal("clone shares the workspace")
	}
}

func TestRealFFTLogsConfiguration(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	newConfiguredReal(t, 16, 32, 1, WithLogger(logger))

	out := buf.String()
	for _, want := range []string{`"transform":"real"`, `"size":32`, `"kernel":"size16"`, `"zp":true`, `"message":"configured"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %s", out, want)
		}
	}
}
