package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// envOverride maps an environment key (without EnvPrefix) to the flags it
// shadows and the setter applying its value. Unparsable values are ignored.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*AppConfig, string)
}

var envOverrides = []envOverride{
	{"FFT_THRESHOLD", []string{"fft-threshold"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.FFTThreshold = parsed
		}
	}},
	{"WORKERS", []string{"workers"}, func(c *AppConfig, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}},

	{"TIMEOUT", []string{"timeout"}, func(c *AppConfig, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.Timeout = parsed
		}
	}},

	{"MODE", []string{"mode"}, func(c *AppConfig, v string) {
		c.Mode = v
	}},
	{"CALIBRATION_PROFILE", []string{"calibration-profile"}, func(c *AppConfig, v string) {
		c.CalibrationProfile = v
	}},
	{"METRICS_ADDR", []string{"metrics-addr"}, func(c *AppConfig, v string) {
		c.MetricsAddr = v
	}},
	{"LOG_LEVEL", []string{"log-level"}, func(c *AppConfig, v string) {
		c.LogLevel = v
	}},
	{"LOG_FORMAT", []string{"log-format"}, func(c *AppConfig, v string) {
		c.LogFormat = v
	}},

	{"VERBOSE", []string{"v", "verbose"}, func(c *AppConfig, v string) {
		c.Verbose = parseBoolEnv(v, c.Verbose)
	}},
	{"QUIET", []string{"quiet", "q"}, func(c *AppConfig, v string) {
		c.Quiet = parseBoolEnv(v, c.Quiet)
	}},
	{"JSON", []string{"json"}, func(c *AppConfig, v string) {
		c.JSONOutput = parseBoolEnv(v, c.JSONOutput)
	}},
	{"TUI", []string{"tui"}, func(c *AppConfig, v string) {
		c.TUI = parseBoolEnv(v, c.TUI)
	}},
	{"NO_COLOR", []string{"no-color"}, func(c *AppConfig, v string) {
		c.NoColor = parseBoolEnv(v, c.NoColor)
	}},
}

// parseBoolEnv understands the usual yes/no spellings and falls back to
// defaultVal otherwise.
func parseBoolEnv(val string, defaultVal bool) bool {
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "yes", "y", "on":
		return true
	case "no", "n", "off":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies BIGCALC_* variables to every setting whose
// flag was not given on the command line.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) {
	explicit := make(map[string]struct{})
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = struct{}{} })

	for _, o := range envOverrides {
		if anySet(explicit, o.flags) {
			continue
		}
		if val, ok := os.LookupEnv(EnvPrefix + o.envKey); ok && val != "" {
			o.apply(config, val)
		}
	}
}

func anySet(explicit map[string]struct{}, names []string) bool {
	for _, n := range names {
		if _, ok := explicit[n]; ok {
			return true
		}
	}
	return false
}
