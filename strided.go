package fft3v

import (
	"github.com/cwbudde/fft3v/internal/fftypes"
	"github.com/cwbudde/fft3v/internal/kernels"
	"github.com/cwbudde/fft3v/internal/tables"
)

// StridedFFT transforms arrayCount complex columns in place. Row j of the
// transformed axis starts at scalar j*rowStride; its columns are packed
// re/im pairs. Rows from logicalSize up to the transform size are zeroed
// by Forward.
//
// With logicalSize <= transformSize/2 the ZP kernels are used: Forward
// zeroes only rows below transformSize/2 and Inverse only guarantees
// rows below logicalSize.
type StridedFFT struct {
	opts options

	size       int
	logical    int
	count      int
	rowStride  int
	blockWidth int
	zp         bool

	tab *tables.Radix4
	set kernels.Set
}

// NewStridedFFT returns an unconfigured transform.
func NewStridedFFT(opts ...Option) *StridedFFT {
	return &StridedFFT{opts: newOptions(opts)}
}

// SetDimensions configures the transform and resolves its kernels.
// rowStride is in scalars and must be even and at least 2*arrayCount.
func (s *StridedFFT) SetDimensions(logicalSize, transformSize, rowStride, arrayCount int) error {
	const op = "StridedFFT.SetDimensions"

	if !s.opts.ready {
		s.opts = newOptions(nil)
	}

	if s.opts.blockWidth < 0 {
		return paramErr(op, "blockWidth", s.opts.blockWidth, ErrInvalidBlockWidth, "must be >= 0")
	}

	if err := validateSizes(op, logicalSize, transformSize); err != nil {
		return err
	}

	if err := validateShape(op, rowStride, arrayCount); err != nil {
		return err
	}

	tab, hit, err := s.opts.radix4(op, transformSize)
	if err != nil {
		return err
	}

	set, err := kernels.Select(transformSize, s.opts.strategy, tab)
	if err != nil {
		return paramErr(op, "transformSize", transformSize, ErrInvalidLength, "%v", err)
	}

	s.size, s.tab, s.set = transformSize, tab, set
	s.blockWidth = s.opts.resolvedBlockWidth()
	s.adjust(logicalSize, rowStride, arrayCount)

	s.opts.logger.Debug().
		Str("transform", "strided").
		Int("size", transformSize).
		Int("logical", logicalSize).
		Int("count", arrayCount).
		Int("row_stride", rowStride).
		Int("block_width", s.blockWidth).
		Stringer("kernel", set.Kind).
		Bool("zp", s.zp).
		Bool("table_hit", hit).
		Msg("configured")
	s.opts.metrics.Configured("strided", set.Kind.String())

	return nil
}

// AdjustInputDimensions changes the logical size, row stride and column
// count while keeping the transform size, tables and kernels.
func (s *StridedFFT) AdjustInputDimensions(logicalSize, rowStride, arrayCount int) error {
	const op = "StridedFFT.AdjustInputDimensions"

	s.mustConfigured(op)

	if err := validateSizes(op, logicalSize, s.size); err != nil {
		return err
	}

	if err := validateShape(op, rowStride, arrayCount); err != nil {
		return err
	}

	s.adjust(logicalSize, rowStride, arrayCount)

	s.opts.logger.Debug().
		Str("transform", "strided").
		Int("logical", logicalSize).
		Int("count", arrayCount).
		Int("row_stride", rowStride).
		Bool("zp", s.zp).
		Msg("adjusted")

	return nil
}

// AdjustArrayCount changes only the number of columns per call.
func (s *StridedFFT) AdjustArrayCount(arrayCount int) error {
	const op = "StridedFFT.AdjustArrayCount"

	s.mustConfigured(op)

	if err := validateShape(op, s.rowStride, arrayCount); err != nil {
		return err
	}

	s.count = arrayCount

	return nil
}

func (s *StridedFFT) adjust(logicalSize, rowStride, arrayCount int) {
	s.logical, s.rowStride, s.count = logicalSize, rowStride, arrayCount
	s.zp = s.size >= 2 && logicalSize <= s.size/2
}

func validateShape(op string, rowStride, arrayCount int) error {
	if err := validateCount(op, arrayCount); err != nil {
		return err
	}

	if rowStride < 2*arrayCount || rowStride%2 != 0 {
		return paramErr(op, "rowStride", rowStride, ErrInvalidStride, "must be even and >= 2*arrayCount (%d)", 2*arrayCount)
	}

	return nil
}

// Forward zero-fills the padding rows and transforms every column.
func (s *StridedFFT) Forward(buf []float64) {
	s.mustConfigured("StridedFFT.Forward")

	c := complexView(buf)
	stride := s.rowStride / 2

	end := s.size
	k := s.set.Forward

	if s.zp {
		end = s.size / 2
		k = s.set.ForwardZP
	}

	for j := s.logical; j < end; j++ {
		clear(c[j*stride : j*stride+s.count])
	}

	s.run(c, stride, k)
}

// Inverse transforms every column back, scaled by the transform size.
func (s *StridedFFT) Inverse(buf []float64) {
	s.mustConfigured("StridedFFT.Inverse")

	k := s.set.Inverse
	if s.zp {
		k = s.set.InverseZP
	}

	s.run(complexView(buf), s.rowStride/2, k)
}

// run walks the columns in blocks of blockWidth so one block's rows stay
// in cache for the whole transform.
func (s *StridedFFT) run(c []complex128, stride int, k fftypes.ColumnKernel) {
	for c0 := 0; c0 < s.count; c0 += s.blockWidth {
		k(fftypes.View{Data: c, Base: c0, Stride: stride, Count: min(s.blockWidth, s.count-c0)})
	}
}

// Scaling is 1/transformSize.
func (s *StridedFFT) Scaling() float64 {
	s.mustConfigured("StridedFFT.Scaling")

	return 1 / float64(s.size)
}

// LogicalDimension returns the transform size.
func (s *StridedFFT) LogicalDimension() int { return s.size }

// BlockWidth is the number of columns transformed per cache block.
func (s *StridedFFT) BlockWidth() int { return s.blockWidth }

// ZeroPadded reports whether the ZP kernels were selected.
func (s *StridedFFT) ZeroPadded() bool { return s.zp }

// Kernel reports the resolved complex kernel.
func (s *StridedFFT) Kernel() KernelKind {
	if s.set.Forward == nil {
		return fftypes.KindNone
	}

	return s.set.Kind
}

// Clone returns an independent copy; tables and kernels are shared
// read-only.
func (s *StridedFFT) Clone() *StridedFFT {
	c := *s

	return &c
}

// Reset returns the transform to the unconfigured state, keeping its
// options.
func (s *StridedFFT) Reset() {
	*s = StridedFFT{opts: s.opts}
}

func (s *StridedFFT) mustConfigured(op string) {
	if s.set.Forward == nil {
		panic("fft3v: " + op + " called on an unconfigured StridedFFT")
	}
}
