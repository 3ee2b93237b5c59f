package kernels

import m "github.com/cwbudde/fft3v/internal/math"

const (
	sqrtHalf = m.SqrtHalf
	cos16    = m.Cos16
	sin16    = m.Sin16
)
