package fft3v

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 60

	return parameters
}

// realCase derives a transform size and logical size from two exponents.
func realCase(sizeExp, logicalSeed int) (n, logical int) {
	n = 1 << sizeExp
	logical = 1 + logicalSeed%n

	return n, logical
}

// TestRealFFTRoundTrip_PropertyBased checks Inverse(Forward(x)) = N*x for
// random sizes, logical sizes and data.
func TestRealFFTRoundTrip_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("Inverse(Forward(x)) == N*x", prop.ForAll(
		func(sizeExp, logicalSeed int, seed int64) bool {
			n, logical := realCase(sizeExp, logicalSeed)

			r := NewRealFFT()
			if err := r.SetDimensions(logical, n, 2); err != nil {
				t.Logf("SetDimensions(%d, %d): %v", logical, n, err)
				return false
			}

			x := randomReal(3*logical*2, seed)
			carr := make([]float64, 6*r.SpectrumLen()*2)
			out := make([]float64, len(x))

			r.Forward(x, carr, nil)
			r.Inverse(carr, out)

			for i := range x {
				if math.Abs(out[i]-float64(n)*x[i]) > 1e-11*float64(n) {
					t.Logf("n=%d logical=%d scalar %d: %v vs %v", n, logical, i, out[i], float64(n)*x[i])
					return false
				}
			}

			return true
		},
		gen.IntRange(0, 11),
		gen.IntRange(0, 1<<12),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestRealFFTLinearity_PropertyBased checks F(a*x + b*y) = a*F(x) + b*F(y).
func TestRealFFTLinearity_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("Forward is linear", prop.ForAll(
		func(sizeExp int, a, b float64, seed int64) bool {
			n := 1 << sizeExp

			r := NewRealFFT()
			if err := r.SetDimensions(n, n, 1); err != nil {
				return false
			}

			x := randomReal(3*n, seed)
			y := randomReal(3*n, seed+1)
			mix := make([]float64, 3*n)

			for i := range mix {
				mix[i] = a*x[i] + b*y[i]
			}

			fx := make([]float64, 6*r.SpectrumLen())
			fy := make([]float64, len(fx))
			fm := make([]float64, len(fx))
			r.Forward(x, fx, nil)
			r.Forward(y, fy, nil)
			r.Forward(mix, fm, nil)

			tol := 1e-10 * float64(n) * (math.Abs(a) + math.Abs(b) + 1)
			for i := range fm {
				if math.Abs(fm[i]-(a*fx[i]+b*fy[i])) > tol {
					return false
				}
			}

			return true
		},
		gen.IntRange(0, 10),
		gen.Float64Range(-10, 10),
		gen.Float64Range(-10, 10),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestRealFFTConstant_PropertyBased checks that a constant sequence puts
// all of its energy into bin 0.
func TestRealFFTConstant_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("constant input has only a DC bin", prop.ForAll(
		func(sizeExp int, v float64) bool {
			n := 1 << sizeExp

			r := NewRealFFT()
			if err := r.SetDimensions(n, n, 1); err != nil {
				return false
			}

			x := make([]float64, 3*n)
			for i := range x {
				x[i] = v
			}

			carr := make([]float64, 6*r.SpectrumLen())
			r.Forward(x, carr, nil)

			for c := range 3 {
				dc := bin(carr, 0, 0, 0, c)
				if imag(dc) != 0 || math.Abs(real(dc)-float64(n)*v) > 1e-12*float64(n)*(math.Abs(v)+1) {
					return false
				}

				for k := 1; k < r.SpectrumLen(); k++ {
					b := bin(carr, 0, 0, k, c)
					if math.Hypot(real(b), imag(b)) > 1e-12*float64(n)*(math.Abs(v)+1) {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(0, 10),
		gen.Float64Range(-100, 100),
	))

	properties.TestingRun(t)
}

// TestStridedFFTRoundTrip_PropertyBased covers random sizes, logical
// sizes, column counts and stride padding.
func TestStridedFFTRoundTrip_PropertyBased(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("Inverse(Forward(x)) == N*x on logical rows", prop.ForAll(
		func(sizeExp, logicalSeed, count, pad int, seed int64) bool {
			n, logical := realCase(sizeExp, logicalSeed)
			rowStride := 2*count + 2*pad

			s := NewStridedFFT()
			if err := s.SetDimensions(logical, n, rowStride, count); err != nil {
				t.Logf("SetDimensions: %v", err)
				return false
			}

			buf := randomReal(n*rowStride, seed)
			in := append([]float64(nil), buf...)

			s.Forward(buf)
			s.Inverse(buf)

			for j := range logical {
				for i := range 2 * count {
					k := j*rowStride + i
					if math.Abs(buf[k]-float64(n)*in[k]) > 1e-11*float64(n) {
						return false
					}
				}
			}

			return true
		},
		gen.IntRange(0, 10),
		gen.IntRange(0, 1<<11),
		gen.IntRange(1, 9),
		gen.IntRange(0, 3),
		gen.Int64(),
	))

	properties.TestingRun(t)
}
