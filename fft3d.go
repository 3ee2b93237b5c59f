package fft3v

import "errors"

// FFT3D is the separable 3-D transform of a real 3-vector field.
//
// The real volume holds rdimx*rdimy*rdimz samples of 3 scalars, x
// fastest. The complex volume holds cdimx*cdimy*cdimz bins of 3 complex
// values (6 scalars), x fastest, where cdimx = Nx/2+1 for the axis-1
// transform size Nx (1 when Nx is 1).
//
// Forward runs axis 1 then axis 2 on every real plane, then axis 3 on
// the whole complex volume. Inverse mirrors that order and overwrites
// the complex volume.
type FFT3D struct {
	opts options

	rdimx, rdimy, rdimz int
	cdimx, cdimy, cdimz int
	nx                  int

	fx *RealFFT
	fy *StridedFFT
	fz *StridedFFT
}

// NewFFT3D returns an unconfigured 3-D transform.
func NewFFT3D(opts ...Option) *FFT3D {
	return &FFT3D{opts: newOptions(opts)}
}

// RecommendDimensions returns the smallest complex shape that holds a
// real volume of the given shape. For linear convolution pass twice the
// real extent per axis.
func RecommendDimensions(rdimx, rdimy, rdimz int) (cdimx, cdimy, cdimz int, err error) {
	nx, err := RecommendSize(rdimx)
	if err != nil {
		return 0, 0, 0, err
	}

	if cdimy, err = RecommendSize(rdimy); err != nil {
		return 0, 0, 0, err
	}

	if cdimz, err = RecommendSize(rdimz); err != nil {
		return 0, 0, 0, err
	}

	cdimx = 1
	if nx > 1 {
		cdimx = nx/2 + 1
	}

	return cdimx, cdimy, cdimz, nil
}

// SetDimensions configures the three axis transforms.
func (f *FFT3D) SetDimensions(rdimx, rdimy, rdimz, cdimx, cdimy, cdimz int) error {
	const op = "FFT3D.SetDimensions"

	if !f.opts.ready {
		f.opts = newOptions(nil)
	}

	if cdimx < 1 {
		return paramErr(op, "cdimx", cdimx, ErrInvalidLength, "must be >= 1")
	}

	nx := 1
	if cdimx > 1 {
		nx = 2 * (cdimx - 1)
	}

	if err := checkAxis(op, "x", rdimx, nx); err != nil {
		return err
	}

	if err := checkAxis(op, "y", rdimy, cdimy); err != nil {
		return err
	}

	if err := checkAxis(op, "z", rdimz, cdimz); err != nil {
		return err
	}

	fx := &RealFFT{opts: f.opts}
	if err := fx.SetDimensions(rdimx, nx, rdimy); err != nil {
		return err
	}

	fy := &StridedFFT{opts: f.opts}
	if err := fy.SetDimensions(rdimy, cdimy, 6*cdimx, 3*cdimx); err != nil {
		return err
	}

	fz := &StridedFFT{opts: f.opts}
	if err := fz.SetDimensions(rdimz, cdimz, 6*cdimx*cdimy, 3*cdimx*cdimy); err != nil {
		return err
	}

	f.rdimx, f.rdimy, f.rdimz = rdimx, rdimy, rdimz
	f.cdimx, f.cdimy, f.cdimz = cdimx, cdimy, cdimz
	f.nx = nx
	f.fx, f.fy, f.fz = fx, fy, fz

	f.opts.logger.Debug().
		Str("transform", "3d").
		Ints("real", []int{rdimx, rdimy, rdimz}).
		Ints("complex", []int{cdimx, cdimy, cdimz}).
		Msg("configured")
	f.opts.metrics.Configured("3d", fx.Kernel().String())

	return nil
}

// checkAxis validates one axis: a power-of-two transform size holding
// at least rdim samples.
func checkAxis(op, axis string, rdim, size int) error {
	if rdim < 1 {
		return paramErr(op, "rdim"+axis, rdim, ErrInvalidLength, "must be >= 1")
	}

	if err := validateSizes(op, rdim, size); err != nil {
		var pe *ParameterError
		if errors.As(err, &pe) && pe.Field == "transformSize" {
			pe.Field = "cdim" + axis
		} else if pe != nil {
			pe.Field = "rdim" + axis
		}

		return err
	}

	return nil
}

// AdjustInputDimensions changes the real shape while keeping the complex
// shape and every table.
func (f *FFT3D) AdjustInputDimensions(rdimx, rdimy, rdimz int) error {
	const op = "FFT3D.AdjustInputDimensions"

	f.mustConfigured(op)

	if err := checkAxis(op, "x", rdimx, f.nx); err != nil {
		return err
	}

	if err := checkAxis(op, "y", rdimy, f.cdimy); err != nil {
		return err
	}

	if err := checkAxis(op, "z", rdimz, f.cdimz); err != nil {
		return err
	}

	if err := f.fx.AdjustInputDimensions(rdimx, rdimy); err != nil {
		return err
	}

	if err := f.fy.AdjustInputDimensions(rdimy, 6*f.cdimx, 3*f.cdimx); err != nil {
		return err
	}

	if err := f.fz.AdjustInputDimensions(rdimz, 6*f.cdimx*f.cdimy, 3*f.cdimx*f.cdimy); err != nil {
		return err
	}

	f.rdimx, f.rdimy, f.rdimz = rdimx, rdimy, rdimz

	return nil
}

// ForwardRealToComplexFFT transforms rarr into carr.
func (f *FFT3D) ForwardRealToComplexFFT(rarr, carr []float64) {
	f.mustConfigured("FFT3D.ForwardRealToComplexFFT")

	for z := range f.rdimz {
		f.forwardPlane(f.fx, f.fy, rarr, carr, z)
	}

	f.fz.Forward(carr)
}

// InverseComplexToRealFFT transforms carr back into rarr, scaled by
// Nx*cdimy*cdimz. carr is overwritten.
func (f *FFT3D) InverseComplexToRealFFT(carr, rarr []float64) {
	f.mustConfigured("FFT3D.InverseComplexToRealFFT")

	f.fz.Inverse(carr)

	for z := range f.rdimz {
		f.inversePlane(f.fx, f.fy, carr, rarr, z)
	}
}

func (f *FFT3D) forwardPlane(fx *RealFFT, fy *StridedFFT, rarr, carr []float64, z int) {
	c := carr[z*f.complexPlane():]
	fx.Forward(rarr[z*f.realPlane():], c, nil)
	fy.Forward(c)
}

func (f *FFT3D) inversePlane(fx *RealFFT, fy *StridedFFT, carr, rarr []float64, z int) {
	c := carr[z*f.complexPlane():]
	fy.Inverse(c)
	fx.Inverse(c, rarr[z*f.realPlane():])
}

func (f *FFT3D) realPlane() int    { return 3 * f.rdimx * f.rdimy }
func (f *FFT3D) complexPlane() int { return 6 * f.cdimx * f.cdimy }

// RealLen is the scalar length of the real volume.
func (f *FFT3D) RealLen() int { return f.realPlane() * f.rdimz }

// ComplexLen is the scalar length of the complex volume.
func (f *FFT3D) ComplexLen() int { return f.complexPlane() * f.cdimz }

// LogicalDimensions returns the transform size of each axis.
func (f *FFT3D) LogicalDimensions() (int, int, int) {
	return f.nx, f.cdimy, f.cdimz
}

// Scaling is 1/(Nx*cdimy*cdimz).
func (f *FFT3D) Scaling() float64 {
	f.mustConfigured("FFT3D.Scaling")

	return 1 / float64(f.nx*f.cdimy*f.cdimz)
}

// Clone returns an independent copy for use on another goroutine.
func (f *FFT3D) Clone() *FFT3D {
	c := *f
	if f.fx != nil {
		c.fx, c.fy, c.fz = f.fx.Clone(), f.fy.Clone(), f.fz.Clone()
	}

	return &c
}

func (f *FFT3D) mustConfigured(op string) {
	if f.fx == nil {
		panic("fft3v: " + op + " called on an unconfigured FFT3D")
	}
}
