package bigint

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrSyntax reports input that is not an optionally signed decimal integer.
var ErrSyntax = errors.New("bigint: invalid syntax")

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	d := z.digits[:0]
	for {
		d = append(d, digit(x%Radix))
		x /= Radix
		if x == 0 {
			break
		}
	}
	z.digits = d
	z.neg = false
	return z
}

// SetString sets z to the value of s, which must match -?[0-9]+, and
// returns z. Leading zeros are accepted and "-0" is zero. On failure z is
// unchanged and the error wraps ErrSyntax.
func (z *Int) SetString(s string) (*Int, error) {
	body, neg := s, false
	if strings.HasPrefix(body, "-") {
		body, neg = body[1:], true
	}
	if body == "" {
		return z, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	for i := 0; i < len(body); i++ {
		if body[i] < '0' || body[i] > '9' {
			return z, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
	}

	d := make([]digit, 0, (len(body)+GroupWidth-1)/GroupWidth)
	for end := len(body); end > 0; end -= GroupWidth {
		start := max(end-GroupWidth, 0)
		var g digit
		for _, c := range body[start:end] {
			g = g*10 + digit(c-'0')
		}
		d = append(d, g)
	}
	z.digits = d
	z.trim()
	z.setNeg(neg)
	return z, nil
}

// Parse returns the Int represented by s. See SetString.
func Parse(s string) (*Int, error) {
	z, err := new(Int).SetString(s)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// MustParse is like Parse but panics on malformed input.
// It is meant for constants in tests and examples.
func MustParse(s string) *Int {
	z, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return z
}

// String returns the decimal representation of x.
func (x *Int) String() string {
	if x == nil {
		return "<nil>"
	}
	m := x.mag()
	var b strings.Builder
	b.Grow(len(m)*GroupWidth + 1)
	if x.neg {
		b.WriteByte('-')
	}
	fmt.Fprintf(&b, "%d", m[len(m)-1])
	for i := len(m) - 2; i >= 0; i-- {
		fmt.Fprintf(&b, "%0*d", GroupWidth, m[i])
	}
	return b.String()
}

// Len returns the number of decimal digits of |x|. Len of zero is 1.
func (x *Int) Len() int {
	m := x.mag()
	n := (len(m) - 1) * GroupWidth
	for top := m[len(m)-1]; ; top /= 10 {
		n++
		if top < 10 {
			return n
		}
	}
}

// Int64 returns x as an int64 and reports whether it fits.
func (x *Int) Int64() (int64, bool) {
	m := x.mag()
	var u uint64
	for i := len(m) - 1; i >= 0; i-- {
		if u > (math.MaxUint64-uint64(m[i]))/Radix {
			return 0, false
		}
		u = u*Radix + uint64(m[i])
	}
	if x.neg {
		if u > 1<<63 {
			return 0, false
		}
		return int64(-u), true
	}
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

// MarshalText implements encoding.TextMarshaler.
func (x *Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Int) UnmarshalText(text []byte) error {
	_, err := z.SetString(string(text))
	return err
}
