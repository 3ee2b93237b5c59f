package main

import (
	"flag"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/cwbudde/fft3v"
	"github.com/cwbudde/fft3v/internal/cpu"
)

const modeInverse = "inverse"

type benchResult struct {
	strategy fft3v.KernelStrategy
	kernel   fft3v.KernelKind
	nsPerOp  float64
}

// transform is the common surface of the two 1-D transforms under test.
type transform interface {
	forward()
	inverse()
	kernel() fft3v.KernelKind
}

type realBench struct {
	r          *fft3v.RealFFT
	rarr, carr []float64
	out        []float64
}

func (b *realBench) forward()                 { b.r.Forward(b.rarr, b.carr, nil) }
func (b *realBench) inverse()                 { b.r.Inverse(b.carr, b.out) }
func (b *realBench) kernel() fft3v.KernelKind { return b.r.Kernel() }

type stridedBench struct {
	s   *fft3v.StridedFFT
	buf []float64
}

func (b *stridedBench) forward()                 { b.s.Forward(b.buf) }
func (b *stridedBench) inverse()                 { b.s.Inverse(b.buf) }
func (b *stridedBench) kernel() fft3v.KernelKind { return b.s.Kernel() }

func main() {
	var (
		sizeList = flag.String("sizes", "16,32,64,256,1024,4096", "comma-separated sizes")
		iters    = flag.Int("iters", 200, "benchmark iterations")
		warmup   = flag.Int("warmup", 10, "warmup iterations")
		count    = flag.Int("count", 16, "rows (real) or columns (strided) per call")
		kind     = flag.String("transform", "real", "transform: real or strided")
		mode     = flag.String("mode", "forward", "benchmark mode: forward, inverse, roundtrip, all")
		emit     = flag.Bool("emit", false, "emit WithKernelStrategy lines for the fastest strategy")
		seed     = flag.Int64("seed", 1, "rng seed")
	)
	flag.Parse()

	sizes := parseSizes(*sizeList)
	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("simd=%s block_width=%d iters=%d warmup=%d\n",
		cpu.DetectFeatures().Level(), cpu.DefaultBlockWidth(1), *iters, *warmup)
	fmt.Printf("%8s  %10s  %12s  %10s  %12s\n", "size", "mode", "strategy", "kernel", "ns/op")

	for _, n := range sizes {
		for _, runMode := range resolveModes(*mode) {
			results := benchmarkSize(rnd, *kind, n, *count, *iters, *warmup, runMode)
			if len(results) == 0 {
				continue
			}

			sort.Slice(results, func(i, j int) bool {
				return results[i].nsPerOp < results[j].nsPerOp
			})

			for _, res := range results {
				fmt.Printf("%8d  %10s  %12s  %10s  %12.1f\n", n, runMode, res.strategy, res.kernel, res.nsPerOp)
			}

			if *emit && runMode == "forward" {
				fmt.Printf("size %d: fft3v.WithKernelStrategy(fft3v.%s)\n", n, strategyConst(results[0].strategy))
			}
		}
	}
}

func newTransform(rnd *rand.Rand, kind string, n, count int, strategy fft3v.KernelStrategy) (transform, error) {
	opt := fft3v.WithKernelStrategy(strategy)

	if kind == "strided" {
		s := fft3v.NewStridedFFT(opt)
		if err := s.SetDimensions(n, n, 2*count, count); err != nil {
			return nil, err
		}

		return &stridedBench{s: s, buf: randomSlice(rnd, 2*n*count)}, nil
	}

	r := fft3v.NewRealFFT(opt)
	if err := r.SetDimensions(n, n, count); err != nil {
		return nil, err
	}

	return &realBench{
		r:    r,
		rarr: randomSlice(rnd, 3*n*count),
		carr: make([]float64, 6*r.SpectrumLen()*count),
		out:  make([]float64, 3*n*count),
	}, nil
}

func benchmarkSize(rnd *rand.Rand, kind string, n, count, iters, warmup int, mode string) []benchResult {
	strategies := []fft3v.KernelStrategy{
		fft3v.KernelAuto,
		fft3v.KernelGeneric,
	}

	results := make([]benchResult, 0, len(strategies))

	for _, strategy := range strategies {
		tr, err := newTransform(rnd, kind, n, count, strategy)
		if err != nil {
			fmt.Printf("size %d %s: %v\n", n, strategy, err)
			continue
		}

		if mode == modeInverse {
			tr.forward()
		}

		for range warmup {
			runMode(tr, mode)
		}

		runtime.GC()

		start := time.Now()

		for range iters {
			runMode(tr, mode)
		}

		elapsed := time.Since(start)

		results = append(results, benchResult{
			strategy: strategy,
			kernel:   tr.kernel(),
			nsPerOp:  float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results
}

func runMode(tr transform, mode string) {
	switch mode {
	case modeInverse:
		tr.inverse()
	case "roundtrip":
		tr.forward()
		tr.inverse()
	default:
		tr.forward()
	}
}

func resolveModes(mode string) []string {
	switch mode {
	case "all":
		return []string{"forward", "inverse", "roundtrip"}
	case "inverse", "roundtrip", "forward":
		return []string{mode}
	default:
		return []string{"forward"}
	}
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}

func randomSlice(rnd *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = rnd.Float64()*2 - 1
	}

	return out
}

func strategyConst(strategy fft3v.KernelStrategy) string {
	switch strategy {
	case fft3v.KernelGeneric:
		return "KernelGeneric"
	case fft3v.KernelSpecialized:
		return "KernelSpecialized"
	default:
		return "KernelAuto"
	}
}
