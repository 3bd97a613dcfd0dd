package calibration

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/ui"
)

// Measurement is the best observed time of each kernel for one operand
// size.
type Measurement struct {
	Groups     int           `json:"groups"`
	Schoolbook time.Duration `json:"schoolbook_ns"`
	FFT        time.Duration `json:"fft_ns"`
}

// FFTWins reports whether the FFT kernel was strictly faster.
func (m Measurement) FFTWins() bool { return m.FFT < m.Schoolbook }

// Kernel multiplies two integers. It matches bigint.MulSchoolbook and
// bigint.MulFFT.
type Kernel func(x, y *bigint.Int) *bigint.Int

// Runner times both multiplication kernels over a list of sizes.
type Runner struct {
	Sizes      []int
	Schoolbook Kernel
	FFT        Kernel
	// Seed makes operand generation reproducible.
	Seed uint64
}

// NewRunner returns a Runner over sizes using the bigint kernels.
func NewRunner(sizes []int) *Runner {
	return &Runner{
		Sizes:      sizes,
		Schoolbook: bigint.MulSchoolbook,
		FFT:        bigint.MulFFT,
		Seed:       uint64(time.Now().UnixNano()),
	}
}

// Run measures every size in order. It stops at the first size started
// after ctx is done and returns the measurements gathered so far with the
// context error.
func (r *Runner) Run(ctx context.Context) ([]Measurement, error) {
	rng := rand.New(rand.NewPCG(r.Seed, uint64(len(r.Sizes))))
	measurements := make([]Measurement, 0, len(r.Sizes))
	for _, groups := range r.Sizes {
		if err := ctx.Err(); err != nil {
			return measurements, err
		}
		x := randomOperand(rng, groups)
		y := randomOperand(rng, groups)
		iterations := IterationsForSize(groups)
		measurements = append(measurements, Measurement{
			Groups:     groups,
			Schoolbook: timeKernel(r.Schoolbook, x, y, iterations),
			FFT:        timeKernel(r.FFT, x, y, iterations),
		})
	}
	return measurements, nil
}

func randomOperand(rng *rand.Rand, groups int) *bigint.Int {
	var b strings.Builder
	n := groups * bigint.GroupWidth
	b.Grow(n)
	b.WriteByte(byte('1' + rng.IntN(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + rng.IntN(10)))
	}
	return bigint.MustParse(b.String())
}

// timeKernel returns the fastest of n runs.
func timeKernel(k Kernel, x, y *bigint.Int, n int) time.Duration {
	best := time.Duration(1<<63 - 1)
	for range n {
		start := time.Now()
		k(x, y)
		if d := time.Since(start); d < best {
			best = d
		}
	}
	return best
}

// ChooseThreshold returns the smallest measured size from which FFT wins
// at that size and every larger one. If FFT loses at the largest size the
// crossover lies beyond the measured range and twice the largest size is
// returned. Measurements must be sorted by size.
func ChooseThreshold(ms []Measurement) int {
	if len(ms) == 0 {
		return bigint.DefaultFFTThreshold
	}
	best := 2 * ms[len(ms)-1].Groups
	for i := len(ms) - 1; i >= 0 && ms[i].FFTWins(); i-- {
		best = ms[i].Groups
	}
	return best
}

// Options configures Calibrate.
type Options struct {
	// Quick times GenerateQuickSizes instead of DefaultSizes.
	Quick bool
	// ProfilePath overrides the default profile location.
	ProfilePath string
	Logger      logging.Logger
}

// Calibrate measures the crossover, prints a summary to out, saves the
// profile and applies the threshold. It returns the process exit code.
func Calibrate(ctx context.Context, opts Options, out io.Writer) int {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	sizes := DefaultSizes
	if opts.Quick {
		sizes = GenerateQuickSizes()
	}

	fmt.Fprintf(out, "--- Calibration ---\nTiming schoolbook and FFT multiplication at %s%d%s sizes...\n",
		ui.ColorCyan(), len(sizes), ui.ColorReset())

	start := time.Now()
	measurements, err := NewRunner(sizes).Run(ctx)
	if err != nil {
		return apperrors.HandleError(err, time.Since(start), out, nil)
	}
	threshold := ChooseThreshold(measurements)
	printCalibrationResults(out, measurements, threshold)

	profile := NewProfile()
	profile.OptimalFFTThreshold = threshold
	profile.Measurements = measurements
	profile.CalibrationTime = time.Since(start).Round(time.Millisecond).String()
	profile.Apply()

	if err := profile.SaveProfile(opts.ProfilePath); err != nil {
		logger.Error("saving calibration profile failed", err)
		fmt.Fprintf(out, "%sWarning: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	} else {
		logger.Info("calibration profile saved",
			logging.Int("fft_threshold", threshold),
			logging.String("path", profilePathOrDefault(opts.ProfilePath)))
	}
	printCalibrationOutput(out, profile)
	return apperrors.ExitSuccess
}

func profilePathOrDefault(p string) string {
	if p == "" {
		return GetDefaultProfilePath()
	}
	return p
}

// Source names where a resolved threshold came from.
type Source string

const (
	SourceConfig   Source = "config"
	SourceProfile  Source = "profile"
	SourceEstimate Source = "estimate"
)

// ResolveFFTThreshold picks the FFT threshold for cfg: an explicit setting
// wins, then a valid profile at cfg.CalibrationProfile, then the hardware
// estimate. The result is applied to the bigint package.
func ResolveFFTThreshold(cfg config.AppConfig) (int, Source) {
	threshold, source := cfg.FFTThreshold, SourceConfig
	if threshold == 0 {
		if profile, ok := LoadOrCreateProfile(cfg.CalibrationProfile); ok {
			threshold, source = profile.OptimalFFTThreshold, SourceProfile
		} else {
			threshold, source = config.ApplyAdaptiveThresholds(cfg).FFTThreshold, SourceEstimate
		}
	}
	bigint.SetFFTThreshold(threshold)
	return threshold, source
}
