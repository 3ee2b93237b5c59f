package fft3v

import (
	"github.com/cwbudde/fft3v/internal/cpu"
	m "github.com/cwbudde/fft3v/internal/math"
	"github.com/cwbudde/fft3v/internal/tables"
)

// radix4 fetches the shared tables for a complex size, or nil below the
// generic engine's minimum size.
func (o *options) radix4(op string, n int) (*tables.Radix4, bool, error) {
	if n < tables.MinGenericSize {
		return nil, false, nil
	}

	tab, hit, err := tables.Shared.Radix4(n)
	if err != nil {
		return nil, false, paramErr(op, "transformSize", n, ErrInvalidLength, "%v", err)
	}

	o.metrics.TableLookup(hit)

	return tab, hit, nil
}

func validateSizes(op string, logical, size int) error {
	if !m.IsPowerOf2(size) {
		return paramErr(op, "transformSize", size, ErrInvalidLength, "must be a power of two >= 1")
	}

	if logical < 1 || logical > size {
		return paramErr(op, "logicalSize", logical, ErrInvalidLength, "must be in [1, %d]", size)
	}

	return nil
}

func validateCount(op string, count int) error {
	if count < 1 {
		return paramErr(op, "arrayCount", count, ErrInvalidCount, "must be >= 1")
	}

	return nil
}

func simdLevel() string {
	return cpu.DetectFeatures().Level().String()
}

// RecommendSize returns the smallest power of two >= logicalSize.
func RecommendSize(logicalSize int) (int, error) {
	const op = "RecommendSize"

	if logicalSize < 1 {
		return 0, paramErr(op, "logicalSize", logicalSize, ErrInvalidLength, "must be >= 1")
	}

	p, ok := m.NextPowerOfTwo(logicalSize)
	if !ok {
		return 0, paramErr(op, "logicalSize", logicalSize, ErrOverflow, "no power of two >= size fits in an int")
	}

	return p, nil
}
