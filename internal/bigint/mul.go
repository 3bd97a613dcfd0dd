package bigint

import (
	"sync/atomic"

	"github.com/agbru/bigcalc/internal/metrics"
)

// DefaultFFTThreshold is the operand size, in digit groups, from which Mul
// uses the FFT kernel. Below it the schoolbook kernel's lower constant
// factor wins. Hosts should measure their own crossover (see the
// calibration package) and install it with SetFFTThreshold.
const DefaultFFTThreshold = 140

// fftThreshold holds the active threshold; 0 selects the default.
var fftThreshold atomic.Int64

// FFTThreshold returns the active schoolbook/FFT switch point in groups.
func FFTThreshold() int {
	if v := fftThreshold.Load(); v > 0 {
		return int(v)
	}
	return DefaultFFTThreshold
}

// SetFFTThreshold installs a new switch point and returns the previous
// one. A value <= 0 restores DefaultFFTThreshold.
func SetFFTThreshold(groups int) int {
	prev := FFTThreshold()
	if groups < 0 {
		groups = 0
	}
	fftThreshold.Store(int64(groups))
	return prev
}

// Mul sets z to z * y and returns z.
func (z *Int) Mul(y *Int) *Int {
	z.init()
	if z.IsZero() || y.IsZero() {
		return z.SetInt64(0)
	}
	neg := z.neg != y.neg
	a, b := z.digits, y.mag()
	if max(len(a), len(b)) >= FFTThreshold() {
		metrics.ObserveMultiplication(metrics.KernelFFT)
		z.digits = convolveFFT(a, b)
	} else {
		metrics.ObserveMultiplication(metrics.KernelSchoolbook)
		z.digits = convolveSchoolbook(a, b)
	}
	z.carry()
	z.setNeg(neg)
	return z
}

// Mul returns x * y.
func Mul(x, y *Int) *Int { return x.Clone().Mul(y) }

// Sqr returns x * x.
func Sqr(x *Int) *Int { return x.Clone().Mul(x) }

// MulSchoolbook returns x * y computed by the schoolbook kernel whatever
// the operand sizes.
func MulSchoolbook(x, y *Int) *Int {
	return mulWith(x, y, convolveSchoolbook)
}

// MulFFT returns x * y computed by the FFT kernel whatever the operand
// sizes.
func MulFFT(x, y *Int) *Int {
	return mulWith(x, y, convolveFFT)
}

func mulWith(x, y *Int, kernel func(a, b []digit) []digit) *Int {
	if x.IsZero() || y.IsZero() {
		return new(Int).SetInt64(0)
	}
	z := &Int{digits: kernel(x.mag(), y.mag())}
	z.carry()
	z.setNeg(x.neg != y.neg)
	return z
}

// convolveSchoolbook returns the raw convolution r[i+j] = sum a[i]*b[j].
func convolveSchoolbook(a, b []digit) []digit {
	r := make([]digit, len(a)+len(b))
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			r[i+j] += av * bv
		}
	}
	return r
}
