package math

import "math"

// Mathematical constants for FFT computations.

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// SqrtHalf is √2/2, the real and imaginary magnitude of the odd eighth
// roots of unity.
const SqrtHalf = 0.70710678118654752440084436210484903928483593768847

// Cos16 and Sin16 are cos(π/8) and sin(π/8); together with SqrtHalf they
// give every sixteenth root of unity.
const (
	Cos16 = 0.92387953251128675612818318939678828682241662586364
	Sin16 = 0.38268343236508977172845998403039886676134456248563
)
