package config

import (
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/agbru/bigcalc/internal/bigint"
)

// FFT threshold resolution, highest priority first:
//   1. -fft-threshold flag
//   2. BIGCALC_FFT_THRESHOLD
//   3. calibration profile (~/.bigcalc_calibration.json)
//   4. hardware estimate (this file)

// ApplyAdaptiveThresholds fills a zero FFTThreshold with the hardware
// estimate.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.FFTThreshold == 0 {
		cfg.FFTThreshold = EstimateOptimalFFTThreshold()
	}
	return cfg
}

// EstimateOptimalFFTThreshold guesses the FFT crossover, in digit groups,
// without running benchmarks. Wide vector units make the complex
// butterflies cheaper and move the crossover down; 32-bit targets move it
// up.
func EstimateOptimalFFTThreshold() int {
	threshold := bigint.DefaultFFTThreshold
	switch {
	case runtime.GOARCH == "amd64" && cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		threshold = threshold * 7 / 8
	case runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD:
		threshold = threshold * 7 / 8
	}
	if 32<<(^uint(0)>>63) == 32 {
		threshold = threshold * 3 / 2
	}
	return threshold
}

// EstimateWorkers returns the default batch concurrency.
func EstimateWorkers() int {
	return runtime.GOMAXPROCS(0)
}
