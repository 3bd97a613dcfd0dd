// Package config provides the configuration of the bigcalc command: the
// AppConfig structure, command-line parsing, BIGCALC_ environment overrides
// and validation.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/logging"
)

const (
	// EnvPrefix is the prefix of all environment variables read by bigcalc.
	EnvPrefix = "BIGCALC_"
)

// Default configuration values.
const (
	DefaultMode     = string(eval.ModeInt)
	DefaultTimeout  = 5 * time.Minute
	DefaultLogLevel  = "warn"
	DefaultLogFormat = string(logging.FormatConsole)
)

// ErrInvalidConfig is returned by ParseConfig after the validation
// message and usage have been printed.
var ErrInvalidConfig = errors.New("invalid configuration")

// AppConfig holds the settings of one bigcalc run.
type AppConfig struct {
	// Mode is the number domain: "int" or "rat".
	Mode string
	// FFTThreshold is the operand size, in base-100 digit groups, from which
	// multiplication uses the FFT kernel. 0 selects the calibration profile
	// or a hardware estimate.
	FFTThreshold int
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Workers limits concurrent evaluations in batch mode. 0 means one per
	// logical CPU.
	Workers int
	// Quiet prints bare values only.
	Quiet bool
	// Verbose prints full values, timings and memory statistics.
	Verbose bool
	// JSONOutput prints one JSON object per expression.
	JSONOutput bool
	// Interactive starts the line-oriented REPL.
	Interactive bool
	// TUI starts the full-screen calculator.
	TUI bool
	// Calibrate measures the FFT threshold of this machine and saves it.
	Calibrate bool
	// CalibrationProfile overrides the profile path
	// (default ~/.bigcalc_calibration.json).
	CalibrationProfile string
	// MetricsAddr, if set, serves Prometheus metrics on this address.
	MetricsAddr string
	// LogLevel is a zerolog level name.
	LogLevel string
	// LogFormat is "console" or "json".
	LogFormat string
	// NoColor disables colored output. NO_COLOR is honored as well.
	NoColor bool
	// Completion prints a shell completion script for the named shell.
	Completion string
	// Version prints the version and exits.
	Version bool
	// Exprs are the positional arguments, one expression each.
	Exprs []string
}

// EvalMode returns Mode as an eval.Mode. It assumes a validated config.
func (c AppConfig) EvalMode() eval.Mode {
	m, err := eval.ParseMode(c.Mode)
	if err != nil {
		return eval.ModeInt
	}
	return m
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if _, err := eval.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.FFTThreshold < 0 {
		return apperrors.NewConfigError("FFT threshold cannot be negative: %d", c.FFTThreshold)
	}
	if c.Workers < 0 {
		return apperrors.NewConfigError("worker count cannot be negative: %d", c.Workers)
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("-quiet and -v are mutually exclusive")
	}
	if c.Interactive && c.TUI {
		return apperrors.NewConfigError("-interactive and -tui are mutually exclusive")
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if c.Completion != "" && !isSupportedShell(c.Completion) {
		return apperrors.NewConfigError("unsupported shell %q (accepted values: %s)", c.Completion, strings.Join(SupportedShells, ", "))
	}
	return nil
}

// SupportedShells lists the values accepted by -completion.
var SupportedShells = []string{"bash", "zsh", "fish"}

func isSupportedShell(s string) bool {
	for _, sh := range SupportedShells {
		if sh == s {
			return true
		}
	}
	return false
}

// ParseConfig parses args into an AppConfig. Flags take precedence over
// BIGCALC_ environment variables, which take precedence over defaults.
// Parsing and usage messages go to errorWriter. flag.ErrHelp is returned
// unchanged for -h.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Mode, "mode", DefaultMode, "Number domain: 'int' (truncating division) or 'rat' (exact fractions).")
	fs.IntVar(&config.FFTThreshold, "fft-threshold", 0, "Operand size in base-100 digit groups from which FFT multiplication is used (0 = calibrated or estimated).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.IntVar(&config.Workers, "workers", 0, "Maximum concurrent evaluations in batch mode (0 = number of CPUs).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print bare values only.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Print full values, timings and memory statistics.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Alias for -v.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Print one JSON object per expression.")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start the interactive REPL.")
	fs.BoolVar(&config.Interactive, "i", false, "Interactive mode (shorthand).")
	fs.BoolVar(&config.TUI, "tui", false, "Start the full-screen calculator.")
	fs.BoolVar(&config.Calibrate, "calibrate", false, "Measure the FFT threshold of this machine and save the profile.")
	fs.StringVar(&config.CalibrationProfile, "calibration-profile", "", "Path to the calibration profile (default: ~/.bigcalc_calibration.json).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error or disabled.")
	fs.StringVar(&config.LogFormat, "log-format", DefaultLogFormat, "Log encoding on stderr: console or json.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")
	fs.BoolVar(&config.Version, "version", false, "Print version information.")
	fs.BoolVar(&config.Version, "V", false, "Print version information (shorthand).")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	config.Mode = strings.ToLower(strings.TrimSpace(config.Mode))
	config.LogFormat = strings.ToLower(strings.TrimSpace(config.LogFormat))
	config.Exprs = fs.Args()
	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return config, nil
}
