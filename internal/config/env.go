package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
)

func getEnv(key string) string {
	return os.Getenv(EnvPrefix + key)
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})

	return found
}

// envOverride maps an env key (without the prefix) to its flag and a
// function applying the value.
type envOverride struct {
	envKey string
	flag   string
	apply  func(*CheckConfig, map[string]*string, string)
}

var envOverrides = []envOverride{
	{"LOGICAL", "logical", func(c *CheckConfig, _ map[string]*string, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			c.Logical = n
		}
	}},
	{"COUNT", "count", func(c *CheckConfig, _ map[string]*string, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			c.Count = n
		}
	}},
	{"SEED", "seed", func(c *CheckConfig, _ map[string]*string, v string) {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}},
	{"WORKERS", "workers", func(c *CheckConfig, _ map[string]*string, v string) {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}},
	{"DIMS", "dims", func(_ *CheckConfig, s map[string]*string, v string) {
		*s["dims"] = v
	}},
	{"STRATEGY", "strategy", func(_ *CheckConfig, s map[string]*string, v string) {
		*s["strategy"] = v
	}},
	{"METRICS", "metrics", func(c *CheckConfig, _ map[string]*string, v string) {
		c.Metrics = parseBoolEnv(v, c.Metrics)
	}},
	{"VERBOSE", "verbose", func(c *CheckConfig, _ map[string]*string, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
}

// parseBoolEnv accepts "true", "1", "yes" and "false", "0", "no"
// (case-insensitive) and returns defaultVal otherwise.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}

	return defaultVal
}

// applyEnvOverrides applies FFT3V_ variables for every flag not set on
// the command line. String-valued flags are passed through strs.
func applyEnvOverrides(c *CheckConfig, strs map[string]*string, fs *flag.FlagSet) {
	for _, o := range envOverrides {
		if isFlagSet(fs, o.flag) {
			continue
		}

		if v := getEnv(o.envKey); v != "" {
			o.apply(c, strs, v)
		}
	}
}
