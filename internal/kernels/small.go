package kernels

import "github.com/cwbudde/fft3v/internal/fftypes"

type View = fftypes.View

// identity is the 1-point transform.
func identity(View) {}

func butterfly2(v View) {
	d, s := v.Data, v.Stride
	for c := range v.Count {
		i := v.Base + c
		x0, x1 := d[i], d[i+s]
		d[i] = x0 + x1
		d[i+s] = x0 - x1
	}
}

// butterfly2ZP: row 1 is zero on input.
func butterfly2ZP(v View) {
	d, s := v.Data, v.Stride
	for c := range v.Count {
		i := v.Base + c
		d[i+s] = d[i]
	}
}

// butterfly2OutZP: only row 0 is wanted on output.
func butterfly2OutZP(v View) {
	d, s := v.Data, v.Stride
	for c := range v.Count {
		i := v.Base + c
		d[i] += d[i+s]
	}
}

// perColumn lifts a single-column kernel to a view.
func perColumn(k func(d []complex128, o, s int)) fftypes.ColumnKernel {
	return func(v View) {
		for c := range v.Count {
			k(v.Data, v.Base+c, v.Stride)
		}
	}
}

// swapRows exchanges the listed row pairs in every column of v.
func swapRows(v View, pairs [][2]int) {
	d, s := v.Data, v.Stride
	for _, p := range pairs {
		a := v.Base + p[0]*s
		b := v.Base + p[1]*s

		for c := range v.Count {
			d[a+c], d[b+c] = d[b+c], d[a+c]
		}
	}
}
