package fft3v

import "unsafe"

// Workspace is the complex scratch a RealFFT uses for its inverse. Each
// configuration owns one; clones get their own.
type Workspace struct {
	buf []complex128
}

// ensure returns a zeroed scratch of exactly n values, reusing capacity.
func (w *Workspace) ensure(n int) []complex128 {
	if cap(w.buf) < n {
		w.buf = make([]complex128, n)
	} else {
		w.buf = w.buf[:n]
		clear(w.buf)
	}

	return w.buf
}

// Len reports the current scratch size in complex values.
func (w *Workspace) Len() int {
	return len(w.buf)
}

// complexView reinterprets interleaved re/im scalars as complex values.
// The caller's slice keeps ownership; no copy is made.
func complexView(s []float64) []complex128 {
	if len(s) < 2 {
		return nil
	}

	return unsafe.Slice((*complex128)(unsafe.Pointer(&s[0])), len(s)/2)
}
