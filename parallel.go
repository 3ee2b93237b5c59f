package fft3v

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ParallelFFT3D runs the 3-D transform on a fixed number of workers,
// each with its own clone of the axis transforms. Results are identical
// to FFT3D.
type ParallelFFT3D struct {
	opts    options
	workers int
	base    *FFT3D
	clones  []*FFT3D
}

// NewParallelFFT3D returns an unconfigured parallel transform. workers
// below 1 is treated as 1.
func NewParallelFFT3D(workers int, opts ...Option) *ParallelFFT3D {
	o := newOptions(opts)
	o.workers = max(workers, 1)

	return &ParallelFFT3D{opts: o, workers: o.workers}
}

// SetDimensions configures the shared shape and one clone per worker.
func (p *ParallelFFT3D) SetDimensions(rdimx, rdimy, rdimz, cdimx, cdimy, cdimz int) error {
	base := &FFT3D{opts: p.opts}
	if err := base.SetDimensions(rdimx, rdimy, rdimz, cdimx, cdimy, cdimz); err != nil {
		return err
	}

	p.base = base
	p.cloneWorkers()

	return nil
}

// AdjustInputDimensions changes the real shape on every worker.
func (p *ParallelFFT3D) AdjustInputDimensions(rdimx, rdimy, rdimz int) error {
	p.mustConfigured("ParallelFFT3D.AdjustInputDimensions")

	if err := p.base.AdjustInputDimensions(rdimx, rdimy, rdimz); err != nil {
		return err
	}

	p.cloneWorkers()

	return nil
}

func (p *ParallelFFT3D) cloneWorkers() {
	p.clones = make([]*FFT3D, p.workers)
	for w := range p.clones {
		p.clones[w] = p.base.Clone()
	}
}

// Forward transforms rarr into carr. Real planes are claimed first (axis
// 1 then axis 2 per plane); after all planes are done, column ranges of
// the axis-3 transform are claimed. A cancelled ctx stops further claims
// and its error is returned.
func (p *ParallelFFT3D) Forward(ctx context.Context, rarr, carr []float64) error {
	p.mustConfigured("ParallelFFT3D.Forward")

	b := p.base

	err := p.phase(ctx, "forward_planes", b.rdimz, func(f *FFT3D, z0, z1 int) {
		for z := z0; z < z1; z++ {
			f.forwardPlane(f.fx, f.fy, rarr, carr, z)
		}
	})
	if err != nil {
		return err
	}

	return p.phase(ctx, "forward_columns", b.fz.count, func(f *FFT3D, c0, c1 int) {
		f.columns(c0, c1).Forward(carr[2*c0:])
	})
}

// Inverse transforms carr back into rarr, overwriting carr, in the
// mirror order of Forward.
func (p *ParallelFFT3D) Inverse(ctx context.Context, carr, rarr []float64) error {
	p.mustConfigured("ParallelFFT3D.Inverse")

	b := p.base

	err := p.phase(ctx, "inverse_columns", b.fz.count, func(f *FFT3D, c0, c1 int) {
		f.columns(c0, c1).Inverse(carr[2*c0:])
	})
	if err != nil {
		return err
	}

	return p.phase(ctx, "inverse_planes", b.rdimz, func(f *FFT3D, z0, z1 int) {
		for z := z0; z < z1; z++ {
			f.inversePlane(f.fx, f.fy, carr, rarr, z)
		}
	})
}

// columns narrows the worker's axis-3 transform to columns [c0, c1).
func (f *FFT3D) columns(c0, c1 int) *StridedFFT {
	if err := f.fz.AdjustArrayCount(c1 - c0); err != nil {
		panic("fft3v: " + err.Error())
	}

	return f.fz
}

// phase runs fn over [0, imax) on every worker and waits for all of
// them.
func (p *ParallelFFT3D) phase(ctx context.Context, name string, imax int, fn func(f *FFT3D, start, stop int)) error {
	jc := newJobControl(imax, p.workers, 1)
	g, ctx := errgroup.WithContext(ctx)

	var jobs atomic.Int64

	for w := range p.workers {
		f := p.clones[w]

		g.Go(func() error {
			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				start, stop := jc.claim()
				if start >= stop {
					return nil
				}

				jobs.Add(1)
				fn(f, start, stop)
			}
		})
	}

	err := g.Wait()
	p.opts.metrics.Jobs(name, int(jobs.Load()))

	return err
}

// Scaling is 1/(Nx*cdimy*cdimz).
func (p *ParallelFFT3D) Scaling() float64 {
	p.mustConfigured("ParallelFFT3D.Scaling")

	return p.base.Scaling()
}

// LogicalDimensions returns the transform size of each axis.
func (p *ParallelFFT3D) LogicalDimensions() (int, int, int) {
	p.mustConfigured("ParallelFFT3D.LogicalDimensions")

	return p.base.LogicalDimensions()
}

// RealLen and ComplexLen are the volume sizes in scalars.
func (p *ParallelFFT3D) RealLen() int    { return p.base.RealLen() }
func (p *ParallelFFT3D) ComplexLen() int { return p.base.ComplexLen() }
func (p *ParallelFFT3D) Workers() int    { return p.workers }

func (p *ParallelFFT3D) mustConfigured(op string) {
	if p.base == nil {
		panic("fft3v: " + op + " called on an unconfigured ParallelFFT3D")
	}
}
