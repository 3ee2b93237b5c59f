package math

import (
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      int
		nbits  int
		expect int
	}{
		{"zero value", 0, 3, 0},
		{"zero nbits", 6, 0, 0},
		{"1 bit: 1", 1, 1, 1},
		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b110", 0b110, 3, 0b011},
		{"4 bits: 0b0001", 0b0001, 4, 0b1000},
		{"4 bits: 0b0011", 0b0011, 4, 0b1100},
		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"10 bits: 0x123", 0x123, 10, 0x312},
		{"16 bits: 0x1234", 0x1234, 16, 0x2C48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ReverseBits(tt.x, tt.nbits)
			if got != tt.expect {
				t.Errorf("ReverseBits(%#b, %d) = %#b, want %#b", tt.x, tt.nbits, got, tt.expect)
			}
		})
	}
}

func TestReverseBitsIsInvolution(t *testing.T) {
	t.Parallel()

	for nbits := 0; nbits <= 10; nbits++ {
		n := 1 << nbits
		seen := make([]bool, n)

		for i := range n {
			j := ReverseBits(i, nbits)
			if j < 0 || j >= n {
				t.Fatalf("nbits=%d: %d maps outside range to %d", nbits, i, j)
			}

			if seen[j] {
				t.Fatalf("nbits=%d: %d hit twice", nbits, j)
			}

			seen[j] = true

			if back := ReverseBits(j, nbits); back != i {
				t.Fatalf("nbits=%d: reverse(reverse(%d)) = %d", nbits, i, back)
			}
		}
	}
}

func TestIsBase4(t *testing.T) {
	t.Parallel()

	for n, want := range map[int]bool{1: true, 2: false, 4: true, 8: false, 16: true, 64: true, 128: false, 0: false, 12: false} {
		if got := IsBase4(n); got != want {
			t.Errorf("IsBase4(%d) = %v, want %v", n, got, want)
		}
	}
}
