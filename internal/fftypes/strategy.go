package fftypes

// KernelStrategy controls how configurations choose between the unrolled
// fixed-size kernels and the generic preorder radix-4 engine.
type KernelStrategy uint32

const (
	KernelAuto        KernelStrategy = iota
	KernelSpecialized                // unrolled kernels wherever one exists
	KernelGeneric                    // generic engine wherever it is defined (sizes >= 16)
)

// String returns the strategy name used in logs and harness output.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelSpecialized:
		return "specialized"
	case KernelGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// ParseKernelStrategy maps a strategy name back to its value.
func ParseKernelStrategy(name string) (KernelStrategy, bool) {
	switch name {
	case "auto", "":
		return KernelAuto, true
	case "specialized":
		return KernelSpecialized, true
	case "generic":
		return KernelGeneric, true
	default:
		return KernelAuto, false
	}
}

// KernelKind identifies the complex kernel a configuration resolved to.
type KernelKind uint8

const (
	KindNone KernelKind = iota
	KindSize1
	KindSize2
	KindSize4
	KindSize8
	KindSize16
	KindSize32
	KindSize64
	KindGeneric
)

// String returns a human-readable name for the kernel kind.
func (k KernelKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindSize1:
		return "size1"
	case KindSize2:
		return "size2"
	case KindSize4:
		return "size4"
	case KindSize8:
		return "size8"
	case KindSize16:
		return "size16"
	case KindSize32:
		return "size32"
	case KindSize64:
		return "size64"
	case KindGeneric:
		return "generic"
	default:
		return "unknown"
	}
}

// SIMDLevel describes the widest vector extension reported by the CPU.
// The kernels are portable Go; the level is informational.
type SIMDLevel uint8

const (
	SIMDNone   SIMDLevel = iota // Pure Go implementation
	SIMDSSE2                    // Requires SSE2 (x86_64 baseline)
	SIMDAVX2                    // Requires AVX2
	SIMDAVX512                  // Requires AVX-512
	SIMDNEON                    // Requires ARM NEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "generic"
	case SIMDSSE2:
		return "sse2"
	case SIMDAVX2:
		return "avx2"
	case SIMDAVX512:
		return "avx512"
	case SIMDNEON:
		return "neon"
	default:
		return "unknown"
	}
}
