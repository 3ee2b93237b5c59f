package fft3v

import (
	"github.com/rs/zerolog"

	"github.com/cwbudde/fft3v/internal/cpu"
)

type options struct {
	blockWidth int // 0 selects cpu.DefaultBlockWidth
	strategy   KernelStrategy
	logger     zerolog.Logger
	metrics    *Metrics
	workers    int // set by ParallelFFT3D for the default block width
	ready      bool
}

// Option tunes a transform configuration.
type Option func(*options)

// WithBlockWidth sets how many complex columns a strided transform
// processes per cache block. Zero selects the platform default.
func WithBlockWidth(n int) Option {
	return func(o *options) { o.blockWidth = n }
}

// WithKernelStrategy forces specialised or generic kernels.
func WithKernelStrategy(s KernelStrategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLogger receives one debug event per configuration call.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics counts configurations and table cache lookups.
func WithMetrics(m *Metrics) Option {
	return func(o *options) { o.metrics = m }
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop(), ready: true}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o *options) resolvedBlockWidth() int {
	if o.blockWidth > 0 {
		return min(o.blockWidth, cpu.MaxBlockWidth)
	}

	return cpu.DefaultBlockWidth(max(o.workers, 1))
}
