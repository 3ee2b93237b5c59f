package math

import "testing"

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want bool
	}{
		{-4, false}, {0, false}, {1, true}, {2, true}, {3, false},
		{4, true}, {6, false}, {64, true}, {96, false}, {1 << 40, true},
	}

	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.want {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for k := range 30 {
		if got := Log2(1 << k); got != k {
			t.Errorf("Log2(%d) = %d, want %d", 1<<k, got, k)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n, want int
	}{
		{-3, 1}, {0, 1}, {1, 1}, {2, 2}, {3, 4}, {5, 8}, {64, 64}, {65, 128}, {1000, 1024},
	}

	for _, tt := range tests {
		got, ok := NextPowerOfTwo(tt.n)
		if !ok || got != tt.want {
			t.Errorf("NextPowerOfTwo(%d) = (%d, %v), want (%d, true)", tt.n, got, ok, tt.want)
		}
	}
}

func TestNextPowerOfTwoOverflow(t *testing.T) {
	t.Parallel()

	limit := MaxInt/2 + 1 // largest power of two in range

	if got, ok := NextPowerOfTwo(limit); !ok || got != limit {
		t.Errorf("NextPowerOfTwo(%d) = (%d, %v), want (%d, true)", limit, got, ok, limit)
	}

	if _, ok := NextPowerOfTwo(limit + 1); ok {
		t.Errorf("NextPowerOfTwo(%d) did not report overflow", limit+1)
	}

	if _, ok := NextPowerOfTwo(MaxInt); ok {
		t.Errorf("NextPowerOfTwo(MaxInt) did not report overflow")
	}
}
