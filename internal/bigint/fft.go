package bigint

import "math"

// convolveFFT returns the raw convolution of a and b computed with a single
// complex FFT: a is packed into the real parts and b into the imaginary
// parts, so that squaring the transform yields FFT(a)*FFT(b) in its
// imaginary part, times two. The buffer is at least twice the longer
// operand so the cyclic convolution never wraps.
//
// Each coefficient is at most (Radix-1)^2 * min(len(a), len(b)), which
// must stay well inside float64's 53-bit mantissa for the +0.5 rounding
// below to recover the exact integer.
func convolveFFT(a, b []digit) []digit {
	n := 1
	for n < 2*max(len(a), len(b)) {
		n <<= 1
	}
	buf := acquireComplex(n)
	defer releaseComplex(buf)
	for i, v := range a {
		buf[i] = complex(float64(v), 0)
	}
	for i, v := range b {
		buf[i] = complex(real(buf[i]), float64(v))
	}

	fft(buf, false)
	for i, c := range buf {
		buf[i] = c * c
	}
	fft(buf, true)

	r := make([]digit, len(a)+len(b))
	for i := range r {
		r[i] = digit(math.Floor(imag(buf[i])/2 + 0.5))
	}
	return r
}

// fft transforms a in place. len(a) must be a power of two. The inverse
// transform includes the 1/n scaling.
func fft(a []complex128, invert bool) {
	n := len(a)
	if n <= 1 {
		return
	}

	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	// Twiddles are computed directly rather than by repeated
	// multiplication, which drifts on long transforms.
	sign := 1.0
	if invert {
		sign = -1.0
	}
	roots := acquireComplex(n / 2)
	defer releaseComplex(roots)
	for k := range roots {
		s, c := math.Sincos(2 * math.Pi * float64(k) / float64(n))
		roots[k] = complex(c, sign*s)
	}

	for length := 2; length <= n; length <<= 1 {
		half := length >> 1
		step := n / length
		for i := 0; i < n; i += length {
			for k := 0; k < half; k++ {
				u := a[i+k]
				v := a[i+k+half] * roots[k*step]
				a[i+k] = u + v
				a[i+k+half] = u - v
			}
		}
	}

	if invert {
		inv := complex(1/float64(n), 0)
		for i := range a {
			a[i] *= inv
		}
	}
}
