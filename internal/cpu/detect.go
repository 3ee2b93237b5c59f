package cpu

import (
	"runtime"
	"sync"

	"github.com/cwbudde/fft3v/internal/fftypes"
	"golang.org/x/sys/cpu"
)

// Features describes the instruction set extensions of the running CPU.
type Features struct {
	HasSSE2      bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
}

// Level returns the widest SIMD extension present.
func (f Features) Level() fftypes.SIMDLevel {
	switch {
	case f.HasAVX512:
		return fftypes.SIMDAVX512
	case f.HasAVX2:
		return fftypes.SIMDAVX2
	case f.HasSSE2:
		return fftypes.SIMDSSE2
	case f.HasNEON:
		return fftypes.SIMDNEON
	default:
		return fftypes.SIMDNone
	}
}

var (
	featuresOnce sync.Once
	features     Features
)

// DetectFeatures reports the available CPU features for the current
// process. Detection runs once; later calls return the cached result.
func DetectFeatures() Features {
	featuresOnce.Do(func() {
		features = Features{
			HasSSE2:      cpu.X86.HasSSE2,
			HasAVX2:      cpu.X86.HasAVX2,
			HasAVX512:    cpu.X86.HasAVX512F,
			HasNEON:      cpu.ARM64.HasASIMD,
			Architecture: runtime.GOARCH,
		}
	})

	return features
}
