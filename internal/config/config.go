// Package config parses the command line of the fft3vcheck harness.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/fft3v/internal/fftypes"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "FFT3V_"

// CheckConfig holds the round-trip harness settings.
type CheckConfig struct {
	Size     int // 1-D transform size (positional)
	Logical  int // 0 means Size
	Count    int
	Seed     int64
	Dims     [3]int // real 3-D shape; all zero selects the 1-D check
	Workers  int
	Strategy fftypes.KernelStrategy
	Metrics  bool
	Verbose  bool
}

// ThreeD reports whether a 3-D shape was requested.
func (c CheckConfig) ThreeD() bool {
	return c.Dims != [3]int{}
}

// ParseCheck parses args (without the program name). Flags win over
// FFT3V_ environment variables, which win over defaults.
func ParseCheck(name string, args []string, errOut io.Writer) (CheckConfig, error) {
	cfg := CheckConfig{}

	var (
		dims     string
		strategy string
	)

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "usage: %s [flags] size\n", name)
		fs.PrintDefaults()
	}

	fs.IntVar(&cfg.Logical, "logical", 0, "logical (unpadded) size; 0 means size")
	fs.IntVar(&cfg.Count, "count", 4, "rows per transform call")
	fs.Int64Var(&cfg.Seed, "seed", 1, "random seed")
	fs.StringVar(&dims, "dims", "", "real 3-D shape x,y,z; switches to a 3-D round trip")
	fs.IntVar(&cfg.Workers, "workers", 1, "workers for the 3-D round trip")
	fs.StringVar(&strategy, "strategy", "auto", "kernel strategy: auto, specialized or generic")
	fs.BoolVar(&cfg.Metrics, "metrics", false, "print gathered metrics")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	vals := map[string]*string{"dims": &dims, "strategy": &strategy}
	applyEnvOverrides(&cfg, vals, fs)

	if fs.NArg() > 0 {
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return cfg, fmt.Errorf("size %q: %w", fs.Arg(0), err)
		}

		cfg.Size = n
	} else if v := getEnv("SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%sSIZE %q: %w", EnvPrefix, v, err)
		}

		cfg.Size = n
	}

	s, ok := fftypes.ParseKernelStrategy(strategy)
	if !ok {
		return cfg, fmt.Errorf("unknown strategy %q", strategy)
	}

	cfg.Strategy = s

	if dims != "" {
		d, err := parseDims(dims)
		if err != nil {
			return cfg, err
		}

		cfg.Dims = d
	}

	return cfg, cfg.Validate()
}

// Validate checks the settings a transform cannot check itself.
func (c CheckConfig) Validate() error {
	if !c.ThreeD() && c.Size < 1 {
		return errors.New("a positive size argument is required")
	}

	if c.Logical < 0 || (!c.ThreeD() && c.Logical > c.Size) {
		return fmt.Errorf("logical size %d out of range [0, %d]", c.Logical, c.Size)
	}

	if c.Count < 1 {
		return fmt.Errorf("count %d must be >= 1", c.Count)
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers %d must be >= 1", c.Workers)
	}

	return nil
}

func parseDims(s string) ([3]int, error) {
	var d [3]int

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return d, fmt.Errorf("dims %q: want x,y,z", s)
	}

	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 {
			return d, fmt.Errorf("dims %q: bad extent %q", s, p)
		}

		d[i] = n
	}

	return d, nil
}
