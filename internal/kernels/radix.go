package kernels

import "math/cmplx"

// The radix passes below are decimation-in-frequency levels over a block
// of rows [base, base+4*span) (radix 4) or [base, base+32) (radix 2) of
// every column in v. The radix-4 quarters are stored in the order 0, 2,
// 1, 3, which makes the final output order the plain bit reversal.
// tw holds the level's twiddle triples w^j, w^2j, w^3j for j = 1..span-1.

func radix4Forward(v View, base, span int, tw []complex128) {
	d, s := v.Data, v.Stride
	q := span * s
	o := v.Base + base*s

	for c := range v.Count {
		i := o + c
		x0, x1, x2, x3 := d[i], d[i+q], d[i+2*q], d[i+3*q]
		t0 := x0 + x2
		t1 := x0 - x2
		t2 := x1 + x3
		t3 := x1 - x3
		t3NegI := complex(imag(t3), -real(t3))
		d[i] = t0 + t2
		d[i+q] = t0 - t2
		d[i+2*q] = t1 + t3NegI
		d[i+3*q] = t1 - t3NegI
	}

	for j := 1; j < span; j++ {
		w1, w2, w3 := tw[3*j-3], tw[3*j-2], tw[3*j-1]
		oj := o + j*s

		for c := range v.Count {
			i := oj + c
			x0, x1, x2, x3 := d[i], d[i+q], d[i+2*q], d[i+3*q]
			t0 := x0 + x2
			t1 := x0 - x2
			t2 := x1 + x3
			t3 := x1 - x3
			t3NegI := complex(imag(t3), -real(t3))
			d[i] = t0 + t2
			d[i+q] = (t0 - t2) * w2
			d[i+2*q] = (t1 + t3NegI) * w1
			d[i+3*q] = (t1 - t3NegI) * w3
		}
	}
}

func radix4Inverse(v View, base, span int, tw []complex128) {
	d, s := v.Data, v.Stride
	q := span * s
	o := v.Base + base*s

	for c := range v.Count {
		i := o + c
		x0, x1, x2, x3 := d[i], d[i+q], d[i+2*q], d[i+3*q]
		t0 := x0 + x2
		t1 := x0 - x2
		t2 := x1 + x3
		t3 := x1 - x3
		t3PosI := complex(-imag(t3), real(t3))
		d[i] = t0 + t2
		d[i+q] = t0 - t2
		d[i+2*q] = t1 + t3PosI
		d[i+3*q] = t1 - t3PosI
	}

	for j := 1; j < span; j++ {
		w1, w2, w3 := cmplx.Conj(tw[3*j-3]), cmplx.Conj(tw[3*j-2]), cmplx.Conj(tw[3*j-1])
		oj := o + j*s

		for c := range v.Count {
			i := oj + c
			x0, x1, x2, x3 := d[i], d[i+q], d[i+2*q], d[i+3*q]
			t0 := x0 + x2
			t1 := x0 - x2
			t2 := x1 + x3
			t3 := x1 - x3
			t3PosI := complex(-imag(t3), real(t3))
			d[i] = t0 + t2
			d[i+q] = (t0 - t2) * w2
			d[i+2*q] = (t1 + t3PosI) * w1
			d[i+3*q] = (t1 - t3PosI) * w3
		}
	}
}

// radix4ForwardZP is the top level of a zero-padded forward transform:
// rows in the upper half of the block are zero and are never read.
func radix4ForwardZP(v View, base, span int, tw []complex128) {
	d, s := v.Data, v.Stride
	q := span * s
	o := v.Base + base*s

	for c := range v.Count {
		i := o + c
		x0, x1 := d[i], d[i+q]
		x1NegI := complex(imag(x1), -real(x1))
		d[i] = x0 + x1
		d[i+q] = x0 - x1
		d[i+2*q] = x0 + x1NegI
		d[i+3*q] = x0 - x1NegI
	}

	for j := 1; j < span; j++ {
		w1, w2, w3 := tw[3*j-3], tw[3*j-2], tw[3*j-1]
		oj := o + j*s

		for c := range v.Count {
			i := oj + c
			x0, x1 := d[i], d[i+q]
			x1NegI := complex(imag(x1), -real(x1))
			d[i] = x0 + x1
			d[i+q] = (x0 - x1) * w2
			d[i+2*q] = (x0 + x1NegI) * w1
			d[i+3*q] = (x0 - x1NegI) * w3
		}
	}
}

// radix2Forward splits a 32-row block into two 16-row halves; tw holds
// w32^1..w32^15.
func radix2Forward(v View, base int, tw []complex128) {
	d, s := v.Data, v.Stride
	h := 16 * s
	o := v.Base + base*s

	for c := range v.Count {
		i := o + c
		x0, x1 := d[i], d[i+h]
		d[i] = x0 + x1
		d[i+h] = x0 - x1
	}

	for j := 1; j < 16; j++ {
		w := tw[j-1]
		oj := o + j*s

		for c := range v.Count {
			i := oj + c
			x0, x1 := d[i], d[i+h]
			d[i] = x0 + x1
			d[i+h] = (x0 - x1) * w
		}
	}
}

func radix2Inverse(v View, base int, tw []complex128) {
	d, s := v.Data, v.Stride
	h := 16 * s
	o := v.Base + base*s

	for c := range v.Count {
		i := o + c
		x0, x1 := d[i], d[i+h]
		d[i] = x0 + x1
		d[i+h] = x0 - x1
	}

	for j := 1; j < 16; j++ {
		w := cmplx.Conj(tw[j-1])
		oj := o + j*s

		for c := range v.Count {
			i := oj + c
			x0, x1 := d[i], d[i+h]
			d[i] = x0 + x1
			d[i+h] = (x0 - x1) * w
		}
	}
}

// radix2ForwardZP: rows 16..31 of the block are zero on input.
func radix2ForwardZP(v View, base int, tw []complex128) {
	d, s := v.Data, v.Stride
	h := 16 * s
	o := v.Base + base*s

	for c := range v.Count {
		i := o + c
		d[i+h] = d[i]
	}

	for j := 1; j < 16; j++ {
		w := tw[j-1]
		oj := o + j*s

		for c := range v.Count {
			i := oj + c
			x0 := d[i]
			d[i+h] = x0 * w
		}
	}
}
