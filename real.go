package fft3v

import (
	"github.com/cwbudde/fft3v/internal/fftypes"
	"github.com/cwbudde/fft3v/internal/kernels"
	"github.com/cwbudde/fft3v/internal/tables"
)

// RealFFT transforms rows of 3-vector samples (three interleaved real
// channels) to their half spectra and back.
//
// Real rows hold logicalSize samples of 3 scalars; samples beyond the
// logical size up to the transform size are taken as zero. Complex rows
// hold transformSize/2+1 bins of 3 interleaved complex values (6
// scalars). Rows are realStride and complexStride scalars apart.
//
// Forward and Inverse perform no validation. A RealFFT must not be used
// from several goroutines at once; use Clone for per-worker copies.
type RealFFT struct {
	opts options

	size    int
	logical int
	count   int

	realStride    int
	complexStride int
	multStride    int

	tab   *tables.Radix4
	roots []complex128
	kern  *kernels.Real
	ws    Workspace
}

// NewRealFFT returns an unconfigured transform.
func NewRealFFT(opts ...Option) *RealFFT {
	return &RealFFT{opts: newOptions(opts)}
}

// SetDimensions configures rows of logicalSize samples zero padded to
// transformSize, arrayCount rows per call, with packed default strides.
func (r *RealFFT) SetDimensions(logicalSize, transformSize, arrayCount int) error {
	const op = "RealFFT.SetDimensions"

	if !r.opts.ready {
		r.opts = newOptions(nil)
	}

	if err := validateSizes(op, logicalSize, transformSize); err != nil {
		return err
	}

	if err := validateCount(op, arrayCount); err != nil {
		return err
	}

	tab, hit, err := r.opts.radix4(op, transformSize/2)
	if err != nil {
		return err
	}

	var roots []complex128
	if transformSize/2 >= tables.MinGenericSize {
		roots = tables.Shared.RealRoots(transformSize)
	}

	kern, err := kernels.NewReal(transformSize, logicalSize, r.opts.strategy, tab, roots)
	if err != nil {
		return paramErr(op, "transformSize", transformSize, ErrInvalidLength, "%v", err)
	}

	r.size, r.logical, r.count = transformSize, logicalSize, arrayCount
	r.tab, r.roots, r.kern = tab, roots, kern
	r.defaultStrides()
	r.ws.ensure(kern.WorkLen())

	r.opts.logger.Debug().
		Str("transform", "real").
		Int("size", transformSize).
		Int("logical", logicalSize).
		Int("count", arrayCount).
		Stringer("kernel", kern.Kind).
		Bool("zp", kern.ZP).
		Bool("table_hit", hit).
		Str("simd", simdLevel()).
		Msg("configured")
	r.opts.metrics.Configured("real", kern.Kind.String())

	return nil
}

// AdjustInputDimensions changes the logical size and row count while
// keeping the transform size and its tables. The ZP kernel is reselected
// and strides return to their packed defaults.
func (r *RealFFT) AdjustInputDimensions(logicalSize, arrayCount int) error {
	const op = "RealFFT.AdjustInputDimensions"

	r.mustConfigured(op)

	if err := validateSizes(op, logicalSize, r.size); err != nil {
		return err
	}

	if err := validateCount(op, arrayCount); err != nil {
		return err
	}

	kern, err := kernels.NewReal(r.size, logicalSize, r.opts.strategy, r.tab, r.roots)
	if err != nil {
		return paramErr(op, "logicalSize", logicalSize, ErrInvalidLength, "%v", err)
	}

	r.logical, r.count, r.kern = logicalSize, arrayCount, kern
	r.defaultStrides()

	r.opts.logger.Debug().
		Str("transform", "real").
		Int("logical", logicalSize).
		Int("count", arrayCount).
		Bool("zp", kern.ZP).
		Msg("adjusted")

	return nil
}

// AdjustArrayCount changes only the number of rows per call.
func (r *RealFFT) AdjustArrayCount(arrayCount int) error {
	const op = "RealFFT.AdjustArrayCount"

	r.mustConfigured(op)

	if err := validateCount(op, arrayCount); err != nil {
		return err
	}

	r.count = arrayCount

	return nil
}

// SetRowStrides sets the scalar distance between rows of the real input,
// complex output and multiplier buffers.
func (r *RealFFT) SetRowStrides(realStride, complexStride, multStride int) error {
	const op = "RealFFT.SetRowStrides"

	r.mustConfigured(op)

	if realStride < 3*r.logical {
		return paramErr(op, "realStride", realStride, ErrInvalidStride, "must be >= %d", 3*r.logical)
	}

	if complexStride < 6*r.SpectrumLen() || complexStride%2 != 0 {
		return paramErr(op, "complexStride", complexStride, ErrInvalidStride, "must be even and >= %d", 6*r.SpectrumLen())
	}

	if multStride < r.logical {
		return paramErr(op, "multStride", multStride, ErrInvalidStride, "must be >= %d", r.logical)
	}

	r.realStride, r.complexStride, r.multStride = realStride, complexStride, multStride

	return nil
}

func (r *RealFFT) defaultStrides() {
	r.realStride = 3 * r.logical
	r.complexStride = 6 * r.SpectrumLen()
	r.multStride = r.logical
}

// Forward transforms arrayCount rows of rarr into carr. When mult is not
// nil, sample j of row i is first multiplied by mult[i*multStride+j].
func (r *RealFFT) Forward(rarr, carr, mult []float64) {
	r.mustConfigured("RealFFT.Forward")

	c := complexView(carr)
	for row := range r.count {
		r.kern.Forward(rarr, row*r.realStride, mult, row*r.multStride, c, row*r.complexStride/2)
	}
}

// Inverse transforms arrayCount rows of carr back into the first
// logicalSize samples of each rarr row, scaled by the transform size.
// carr is not modified.
func (r *RealFFT) Inverse(carr, rarr []float64) {
	r.mustConfigured("RealFFT.Inverse")

	c := complexView(carr)
	work := r.ws.buf

	for row := range r.count {
		r.kern.Inverse(c, row*r.complexStride/2, rarr, row*r.realStride, work)
	}
}

// Scaling is the factor that normalizes Inverse(Forward(x)) back to x.
func (r *RealFFT) Scaling() float64 {
	r.mustConfigured("RealFFT.Scaling")

	return 1 / float64(r.size)
}

// LogicalDimension returns the transform size.
func (r *RealFFT) LogicalDimension() int { return r.size }

// SpectrumLen is the number of bins per channel in a complex row.
func (r *RealFFT) SpectrumLen() int { return r.size/2 + 1 }

// Kernel reports the complex kernel behind the real transform.
func (r *RealFFT) Kernel() KernelKind {
	if r.kern == nil {
		return fftypes.KindNone
	}

	return r.kern.Kind
}

// ZeroPadded reports whether the ZP kernels were selected.
func (r *RealFFT) ZeroPadded() bool {
	return r.kern != nil && r.kern.ZP
}

// Clone returns a copy sharing the read-only tables with its own
// workspace.
func (r *RealFFT) Clone() *RealFFT {
	c := *r
	c.ws = Workspace{}

	if r.kern != nil {
		c.ws.ensure(r.kern.WorkLen())
	}

	return &c
}

// Reset returns the transform to the unconfigured state, keeping its
// options.
func (r *RealFFT) Reset() {
	*r = RealFFT{opts: r.opts}
}

func (r *RealFFT) mustConfigured(op string) {
	if r.kern == nil {
		panic("fft3v: " + op + " called on an unconfigured RealFFT")
	}
}
