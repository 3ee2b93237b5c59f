package tables

// RealRoots returns w^k for k = 0..n/4-1 with w = exp(-2πi/n): the roots
// needed to unpack the spectrum of a real sequence of length n from the
// n/2-point complex transform of its even/odd packing. Sizes below 4
// need none.
func RealRoots(n int) []complex128 {
	if n < 4 {
		return nil
	}

	roots := RootsOfUnity(n)
	out := make([]complex128, n/4)
	copy(out, roots)

	return out
}
