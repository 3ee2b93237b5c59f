package fft3v

import "github.com/cwbudde/fft3v/internal/fftypes"

// KernelStrategy chooses between unrolled kernels and the generic engine.
// The canonical definition is in internal/fftypes.
type KernelStrategy = fftypes.KernelStrategy

// KernelKind names the complex kernel a configuration resolved to.
type KernelKind = fftypes.KernelKind

const (
	KernelAuto        = fftypes.KernelAuto
	KernelSpecialized = fftypes.KernelSpecialized
	KernelGeneric     = fftypes.KernelGeneric
)

// ParseKernelStrategy maps "auto", "specialized" or "generic" to a strategy.
func ParseKernelStrategy(name string) (KernelStrategy, bool) {
	return fftypes.ParseKernelStrategy(name)
}
