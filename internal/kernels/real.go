package kernels

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/fft3v/internal/fftypes"
	m "github.com/cwbudde/fft3v/internal/math"
	"github.com/cwbudde/fft3v/internal/tables"
)

// Channels is the number of interleaved real channels per sample.
const Channels = 3

// Real transforms rows of three interleaved real channels. A row of
// Size samples is packed two samples per complex value into the output
// row, run through the Size/2-point complex kernel with the three
// channels as columns, and unpacked in place into Size/2+1 bins.
//
// Real input: sample j of channel c at src[sbase+3j+c].
// Complex output: bin k of channel c at dst[dbase+3k+c].
type Real struct {
	Size    int
	Logical int
	ZP      bool
	Kind    fftypes.KernelKind

	half     int
	packRows int
	fwd      fftypes.ColumnKernel
	inv      fftypes.ColumnKernel
	unpack   func(d []complex128, o, s int)
	repack   func(src []complex128, so, ss int, dst []complex128, do, ds int)
}

// NewReal resolves the kernels for a real transform of size n over
// logical input samples. tab holds the radix-4 tables of n/2 when
// n/2 >= 16; roots are the real-unpack roots of n.
func NewReal(n, logical int, strategy fftypes.KernelStrategy, tab *tables.Radix4, roots []complex128) (*Real, error) {
	if !m.IsPowerOf2(n) || logical < 1 || logical > n {
		return nil, fmt.Errorf("kernels: invalid real transform %d/%d", logical, n)
	}

	r := &Real{Size: n, Logical: logical, half: n / 2}
	if r.half == 0 {
		r.Kind = fftypes.KindSize1
		return r, nil
	}

	if n > 64 {
		strategy = fftypes.KernelGeneric
	}

	set, err := Select(r.half, strategy, tab)
	if err != nil {
		return nil, err
	}

	r.Kind = set.Kind
	r.ZP = logical <= r.half && r.half >= 2
	r.fwd, r.inv = set.Forward, set.Inverse
	r.packRows = r.half

	if r.ZP {
		r.fwd, r.inv = set.ForwardZP, set.InverseZP
		r.packRows = r.half / 2
	}

	switch r.half {
	case 1:
		r.unpack, r.repack = unpack2, repack2
	case 2:
		r.unpack, r.repack = unpack4, repack4
	case 4:
		r.unpack, r.repack = unpack8, repack8
	case 8:
		r.unpack, r.repack = unpack16, repack16
	default:
		if len(roots) != r.half/2 {
			return nil, fmt.Errorf("kernels: real transform of size %d needs %d unpack roots, got %d", n, r.half/2, len(roots))
		}

		h := r.half
		r.unpack = func(d []complex128, o, s int) { unpackRoots(d, o, s, h, roots) }
		r.repack = func(src []complex128, so, ss int, dst []complex128, do, ds int) {
			repackRoots(src, so, ss, dst, do, ds, h, roots)
		}
	}

	return r, nil
}

// WorkLen is the complex workspace Inverse needs.
func (r *Real) WorkLen() int {
	return Channels * r.half
}

// Forward transforms one row. mult, when non-nil, scales sample j by
// mult[mbase+j].
func (r *Real) Forward(src []float64, sbase int, mult []float64, mbase int, dst []complex128, dbase int) {
	if r.half == 0 {
		m0 := 1.0
		if mult != nil {
			m0 = mult[mbase]
		}

		dst[dbase] = complex(src[sbase]*m0, 0)
		dst[dbase+1] = complex(src[sbase+1]*m0, 0)
		dst[dbase+2] = complex(src[sbase+2]*m0, 0)

		return
	}

	r.pack(src, sbase, mult, mbase, dst, dbase)
	r.fwd(View{Data: dst, Base: dbase, Stride: Channels, Count: Channels})
	r.unpack(dst, dbase, Channels)
	r.unpack(dst, dbase+1, Channels)
	r.unpack(dst, dbase+2, Channels)
}

// Inverse transforms one row of Size/2+1 bins back to Logical samples,
// scaled by Size. src is left untouched; work must hold WorkLen values.
func (r *Real) Inverse(src []complex128, sbase int, dst []float64, dbase int, work []complex128) {
	if r.half == 0 {
		dst[dbase] = real(src[sbase])
		dst[dbase+1] = real(src[sbase+1])
		dst[dbase+2] = real(src[sbase+2])

		return
	}

	r.repack(src, sbase, Channels, work, 0, Channels)
	r.repack(src, sbase+1, Channels, work, 1, Channels)
	r.repack(src, sbase+2, Channels, work, 2, Channels)
	r.inv(View{Data: work, Base: 0, Stride: Channels, Count: Channels})

	n := r.Logical
	j := 0
	t := 0

	for ; t+1 < n; t += 2 {
		z0, z1, z2 := work[j], work[j+1], work[j+2]
		o := dbase + 3*t
		dst[o], dst[o+1], dst[o+2] = real(z0), real(z1), real(z2)
		dst[o+3], dst[o+4], dst[o+5] = imag(z0), imag(z1), imag(z2)
		j += Channels
	}

	if t < n {
		o := dbase + 3*t
		dst[o], dst[o+1], dst[o+2] = real(work[j]), real(work[j+1]), real(work[j+2])
	}
}

// pack writes z_j = x_2j + i*x_2j+1 for the rows the complex kernel
// reads, with samples at or beyond Logical taken as zero.
func (r *Real) pack(src []float64, sbase int, mult []float64, mbase int, dst []complex128, dbase int) {
	n := r.Logical
	j := 0
	t := 0

	if mult == nil {
		for ; t+1 < n && j < r.packRows; t += 2 {
			i, o := sbase+3*t, dbase+3*j
			dst[o] = complex(src[i], src[i+3])
			dst[o+1] = complex(src[i+1], src[i+4])
			dst[o+2] = complex(src[i+2], src[i+5])
			j++
		}

		if t < n && j < r.packRows {
			i, o := sbase+3*t, dbase+3*j
			dst[o] = complex(src[i], 0)
			dst[o+1] = complex(src[i+1], 0)
			dst[o+2] = complex(src[i+2], 0)
			j++
		}
	} else {
		for ; t+1 < n && j < r.packRows; t += 2 {
			i, o := sbase+3*t, dbase+3*j
			m0, m1 := mult[mbase+t], mult[mbase+t+1]
			dst[o] = complex(src[i]*m0, src[i+3]*m1)
			dst[o+1] = complex(src[i+1]*m0, src[i+4]*m1)
			dst[o+2] = complex(src[i+2]*m0, src[i+5]*m1)
			j++
		}

		if t < n && j < r.packRows {
			i, o := sbase+3*t, dbase+3*j
			m0 := mult[mbase+t]
			dst[o] = complex(src[i]*m0, 0)
			dst[o+1] = complex(src[i+1]*m0, 0)
			dst[o+2] = complex(src[i+2]*m0, 0)
			j++
		}
	}

	for ; j < r.packRows; j++ {
		o := dbase + 3*j
		dst[o], dst[o+1], dst[o+2] = 0, 0, 0
	}
}

// unpackRoots turns the h-point transform Z of one packed channel into
// bins 0..h of the real spectrum, in place. With A = Z[k] and
// B = conj(Z[h-k]), the even and odd half transforms are E = (A+B)/2 and
// O = (A-B)/2i, and X[k] = E + w^k O, X[h-k] = conj(E - w^k O).
func unpackRoots(d []complex128, o, s, h int, roots []complex128) {
	z0 := d[o]
	d[o] = complex(real(z0)+imag(z0), 0)
	d[o+h*s] = complex(real(z0)-imag(z0), 0)

	for k := 1; 2*k < h; k++ {
		ia, ib := o+k*s, o+(h-k)*s
		a, b := d[ia], d[ib]
		e := complex(0.5*(real(a)+real(b)), 0.5*(imag(a)-imag(b)))
		p := complex(0.5*(imag(a)+imag(b)), 0.5*(real(b)-real(a))) * roots[k]
		d[ia] = e + p
		d[ib] = complex(real(e)-real(p), imag(p)-imag(e))
	}

	i := o + (h/2)*s
	d[i] = cmplx.Conj(d[i])
}

// repackRoots is the inverse of unpackRoots up to a factor of two: it
// builds the h-point spectrum whose unnormalized inverse is 2h times the
// packed real sequence. src is read only.
func repackRoots(src []complex128, so, ss int, dst []complex128, do, ds, h int, roots []complex128) {
	x0, xh := real(src[so]), real(src[so+h*ss])
	dst[do] = complex(x0+xh, x0-xh)

	for k := 1; 2*k < h; k++ {
		a, b := src[so+k*ss], src[so+(h-k)*ss]
		f := complex(real(a)+real(b), imag(a)-imag(b))
		g := complex(real(a)-real(b), imag(a)+imag(b)) * cmplx.Conj(roots[k])
		dst[do+k*ds] = complex(real(f)-imag(g), imag(f)+real(g))
		dst[do+(h-k)*ds] = complex(real(f)+imag(g), real(g)-imag(f))
	}

	c := src[so+(h/2)*ss]
	dst[do+(h/2)*ds] = complex(2*real(c), -2*imag(c))
}
