// Command fft3vcheck runs a forward/inverse round trip through the 1-D real
// transform or the parallel 3-D driver and reports the reconstruction error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/cwbudde/fft3v"
	"github.com/cwbudde/fft3v/internal/config"
)

func main() {
	cfg, err := config.ParseCheck(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()

	var m *fft3v.Metrics
	if cfg.Metrics {
		m, err = fft3v.NewMetrics(prometheus.NewRegistry())
		if err != nil {
			logger.Fatal().Err(err).Msg("metrics")
		}
	}

	opts := []fft3v.Option{
		fft3v.WithKernelStrategy(cfg.Strategy),
		fft3v.WithLogger(logger),
		fft3v.WithMetrics(m),
	}

	rnd := rand.New(rand.NewSource(cfg.Seed))

	if cfg.ThreeD() {
		err = check3D(cfg, rnd, logger, opts)
	} else {
		err = check1D(cfg, rnd, logger, opts)
	}

	if err != nil {
		logger.Error().Err(err).Msg("round trip failed")
		os.Exit(1)
	}

	if cfg.Metrics {
		printSnapshot(m.Snapshot())
	}
}

func check1D(cfg config.CheckConfig, rnd *rand.Rand, logger zerolog.Logger, opts []fft3v.Option) error {
	logical := cfg.Logical
	if logical == 0 {
		logical = cfg.Size
	}

	r := fft3v.NewRealFFT(opts...)
	if err := r.SetDimensions(logical, cfg.Size, cfg.Count); err != nil {
		return err
	}

	rarr := make([]float64, 3*cfg.Size*cfg.Count)
	for row := range cfg.Count {
		for i := range 3 * logical {
			rarr[3*cfg.Size*row+i] = rnd.Float64()*2 - 1
		}
	}

	carr := make([]float64, 6*r.SpectrumLen()*cfg.Count)
	out := make([]float64, len(rarr))

	start := time.Now()

	r.Forward(rarr, carr, nil)
	r.Inverse(carr, out)
	fft3v.Scale(out, r.Scaling())

	maxErr, rms := compare(rarr, out, func(i int) bool {
		return i%(3*cfg.Size) < 3*logical
	})

	logger.Info().
		Int("size", cfg.Size).
		Int("logical", logical).
		Int("count", cfg.Count).
		Str("kernel", r.Kernel().String()).
		Bool("zp", r.ZeroPadded()).
		Dur("elapsed", time.Since(start)).
		Float64("max_err", maxErr).
		Float64("rms_err", rms).
		Msg("1-D round trip")

	return tolerance(maxErr)
}

func check3D(cfg config.CheckConfig, rnd *rand.Rand, logger zerolog.Logger, opts []fft3v.Option) error {
	rx, ry, rz := cfg.Dims[0], cfg.Dims[1], cfg.Dims[2]

	cx, cy, cz, err := fft3v.RecommendDimensions(rx, ry, rz)
	if err != nil {
		return err
	}

	p := fft3v.NewParallelFFT3D(cfg.Workers, opts...)
	if err := p.SetDimensions(rx, ry, rz, cx, cy, cz); err != nil {
		return err
	}

	rarr := make([]float64, p.RealLen())
	for i := range rarr {
		rarr[i] = rnd.Float64()*2 - 1
	}

	carr := make([]float64, p.ComplexLen())
	out := make([]float64, len(rarr))

	ctx := context.Background()
	start := time.Now()

	if err := p.Forward(ctx, rarr, carr); err != nil {
		return err
	}

	if err := p.Inverse(ctx, carr, out); err != nil {
		return err
	}

	fft3v.Scale(out, p.Scaling())

	maxErr, rms := compare(rarr, out, func(int) bool { return true })

	logger.Info().
		Ints("real", cfg.Dims[:]).
		Ints("complex", []int{cx, cy, cz}).
		Int("workers", p.Workers()).
		Dur("elapsed", time.Since(start)).
		Float64("max_err", maxErr).
		Float64("rms_err", rms).
		Msg("3-D round trip")

	return tolerance(maxErr)
}

func compare(want, got []float64, include func(i int) bool) (maxErr, rms float64) {
	var sum float64

	n := 0

	for i := range want {
		if !include(i) {
			continue
		}

		d := math.Abs(want[i] - got[i])
		maxErr = math.Max(maxErr, d)
		sum += d * d
		n++
	}

	if n > 0 {
		rms = math.Sqrt(sum / float64(n))
	}

	return maxErr, rms
}

func tolerance(maxErr float64) error {
	if maxErr > 1e-9 || math.IsNaN(maxErr) {
		return fmt.Errorf("max error %g exceeds 1e-9", maxErr)
	}

	return nil
}

func printSnapshot(snap map[string]float64) {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s %g\n", k, snap[k])
	}
}
