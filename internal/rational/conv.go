package rational

import (
	"strings"

	"github.com/agbru/bigcalc/internal/bigint"
)

// Parse reads "a" or "a/b" where a and b are decimal integers. Malformed
// input wraps bigint.ErrSyntax; b == 0 returns ErrZeroDenominator.
func Parse(s string) (*Rat, error) {
	numText, denText, found := strings.Cut(s, "/")
	num, err := bigint.Parse(numText)
	if err != nil {
		return nil, err
	}
	if !found {
		return FromInt(num), nil
	}
	den, err := bigint.Parse(denText)
	if err != nil {
		return nil, err
	}
	return New(num, den)
}

// String returns "n" for integers and "n/d" otherwise.
func (x *Rat) String() string {
	if x == nil {
		return "<nil>"
	}
	if x.IsInt() {
		return x.num.String()
	}
	return x.num.String() + "/" + x.denom().String()
}

// MarshalText implements encoding.TextMarshaler.
func (x *Rat) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (z *Rat) UnmarshalText(text []byte) error {
	r, err := Parse(string(text))
	if err != nil {
		return err
	}
	z.Set(r)
	return nil
}
