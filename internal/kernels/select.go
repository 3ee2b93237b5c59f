package kernels

import (
	"fmt"

	"github.com/cwbudde/fft3v/internal/fftypes"
	m "github.com/cwbudde/fft3v/internal/math"
	"github.com/cwbudde/fft3v/internal/tables"
)

// Set is the resolved kernel family of one complex transform size.
//
// ForwardZP may assume rows >= Size/2 are zero and never reads them.
// InverseZP only guarantees output rows < Size/2; the remaining rows hold
// unspecified values.
type Set struct {
	Kind      fftypes.KernelKind
	Size      int
	Forward   fftypes.ColumnKernel
	Inverse   fftypes.ColumnKernel
	ForwardZP fftypes.ColumnKernel
	InverseZP fftypes.ColumnKernel
}

// Select resolves the kernels for size n. tab must hold the radix-4
// tables of n when n >= 16 and is ignored otherwise.
func Select(n int, strategy fftypes.KernelStrategy, tab *tables.Radix4) (Set, error) {
	if !m.IsPowerOf2(n) {
		return Set{}, fmt.Errorf("kernels: size %d is not a power of two", n)
	}

	if n >= tables.MinGenericSize && (tab == nil || tab.Size != n) {
		return Set{}, fmt.Errorf("kernels: missing radix-4 tables for size %d", n)
	}

	if n >= tables.MinGenericSize && (n > 64 || strategy == fftypes.KernelGeneric) {
		e := NewEngine(tab)

		return Set{
			Kind:      fftypes.KindGeneric,
			Size:      n,
			Forward:   e.Forward,
			Inverse:   e.Inverse,
			ForwardZP: e.ForwardZP,
			InverseZP: e.InverseZP,
		}, nil
	}

	switch n {
	case 1:
		return Set{fftypes.KindSize1, 1, identity, identity, identity, identity}, nil
	case 2:
		return Set{fftypes.KindSize2, 2, butterfly2, butterfly2, butterfly2ZP, butterfly2OutZP}, nil
	case 4:
		return Set{
			fftypes.KindSize4, 4,
			perColumn(forward4), perColumn(inverse4),
			perColumn(forward4ZP), perColumn(inverse4ZP),
		}, nil
	case 8:
		return Set{
			fftypes.KindSize8, 8,
			perColumn(forward8), perColumn(inverse8),
			perColumn(forward8ZP), perColumn(inverse8ZP),
		}, nil
	case 16:
		return Set{
			fftypes.KindSize16, 16,
			perColumn(forward16), perColumn(inverse16),
			perColumn(forward16ZP), perColumn(inverse16ZP),
		}, nil
	case 32:
		return size32(tab), nil
	default:
		return size64(tab), nil
	}
}

var pairs32 = [][2]int{
	{2, 8}, {6, 12}, {1, 16}, {9, 18}, {5, 20}, {13, 22},
	{3, 24}, {19, 25}, {11, 26}, {7, 28}, {23, 29}, {15, 30},
}

var pairs64 = [][2]int{
	{4, 8}, {2, 16}, {10, 20}, {6, 24}, {22, 26}, {14, 28}, {1, 32},
	{17, 34}, {9, 36}, {25, 38}, {5, 40}, {37, 41}, {21, 42}, {13, 44},
	{29, 46}, {3, 48}, {35, 49}, {19, 50}, {11, 52}, {43, 53}, {27, 54},
	{7, 56}, {39, 57}, {23, 58}, {55, 59}, {15, 60}, {47, 61}, {31, 62},
}

// size32 is a radix-2 split into two bottom 16-point kernels.
func size32(tab *tables.Radix4) Set {
	r2 := tab.Twiddles[tab.Radix2Offset:]

	return Set{
		Kind: fftypes.KindSize32,
		Size: 32,
		Forward: func(v View) {
			radix2Forward(v, 0, r2)
			bottom16(v, 0, forward16Rev)
			bottom16(v, 16, forward16Rev)
			swapRows(v, pairs32)
		},
		Inverse: func(v View) {
			radix2Inverse(v, 0, r2)
			bottom16(v, 0, inverse16Rev)
			bottom16(v, 16, inverse16Rev)
			swapRows(v, pairs32)
		},
		ForwardZP: func(v View) {
			radix2ForwardZP(v, 0, r2)
			bottom16(v, 0, forward16Rev)
			bottom16(v, 16, forward16Rev)
			swapRows(v, pairs32)
		},
		InverseZP: func(v View) {
			radix2Inverse(v, 0, r2)
			bottom16(v, 0, inverse16RevZP)
			bottom16(v, 16, inverse16RevZP)
			swapRows(v, pairs32)
		},
	}
}

// size64 is one radix-4 level over four bottom 16-point kernels.
func size64(tab *tables.Radix4) Set {
	tw := tab.Twiddles[tab.Schedule[0].Offset:]

	bottoms := func(v View, k func(d []complex128, o, s int)) {
		for row := 0; row < 64; row += 16 {
			bottom16(v, row, k)
		}
	}

	return Set{
		Kind: fftypes.KindSize64,
		Size: 64,
		Forward: func(v View) {
			radix4Forward(v, 0, 16, tw)
			bottoms(v, forward16Rev)
			swapRows(v, pairs64)
		},
		Inverse: func(v View) {
			radix4Inverse(v, 0, 16, tw)
			bottoms(v, inverse16Rev)
			swapRows(v, pairs64)
		},
		ForwardZP: func(v View) {
			radix4ForwardZP(v, 0, 16, tw)
			bottoms(v, forward16Rev)
			swapRows(v, pairs64)
		},
		InverseZP: func(v View) {
			radix4Inverse(v, 0, 16, tw)
			bottoms(v, inverse16RevZP)
			swapRows(v, pairs64)
		},
	}
}
