package fft3v

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by configuration operations.
var (
	// ErrInvalidLength is returned when a transform size is not a power of
	// two, a logical size is below 1 or exceeds its transform size, or a
	// 3-D shape is inconsistent.
	ErrInvalidLength = errors.New("fft3v: invalid length")

	// ErrInvalidCount is returned when an array count is below 1.
	ErrInvalidCount = errors.New("fft3v: invalid array count")

	// ErrInvalidStride is returned when a row stride is too small for the
	// row it separates, or odd where complex alignment is required.
	ErrInvalidStride = errors.New("fft3v: invalid stride")

	// ErrInvalidBlockWidth is returned for a negative column block width.
	ErrInvalidBlockWidth = errors.New("fft3v: invalid block width")

	// ErrOverflow is returned when the next power of two of a requested
	// size does not fit in an int.
	ErrOverflow = errors.New("fft3v: size overflow")
)

// ParameterError reports a rejected configuration value. Unwrap returns
// one of the sentinels above.
type ParameterError struct {
	Op     string // operation, e.g. "RealFFT.SetDimensions"
	Field  string
	Value  int
	Reason string
	Err    error
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%d: %s: %v", e.Op, e.Field, e.Value, e.Reason, e.Err)
}

func (e *ParameterError) Unwrap() error { return e.Err }

func paramErr(op, field string, value int, err error, format string, args ...any) error {
	return &ParameterError{Op: op, Field: field, Value: value, Reason: fmt.Sprintf(format, args...), Err: err}
}
