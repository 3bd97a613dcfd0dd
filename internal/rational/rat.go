package rational

import (
	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

var (
	// ErrZeroDenominator is returned when a fraction is built over zero.
	ErrZeroDenominator error = apperrors.InvalidOperandError{Op: "rational", Reason: "denominator can't be zero"}
	// ErrZeroReciprocal is returned when inverting zero, including division
	// by a zero Rat and negative powers of zero.
	ErrZeroReciprocal error = apperrors.InvalidOperandError{Op: "rational", Reason: "zero has no reciprocal"}
)

var intOne = bigint.NewInt(1)

// A Rat is a fraction num/den in lowest terms with den > 0.
type Rat struct {
	num bigint.Int
	den bigint.Int // zero only in the zero value, read as 1
}

// New returns num/den in lowest terms. A negative denominator moves its
// sign to the numerator.
func New(num, den *bigint.Int) (*Rat, error) {
	if den.IsZero() {
		return nil, refuse("new", ErrZeroDenominator)
	}
	z := &Rat{}
	z.num.Set(num)
	z.den.Set(den)
	z.reduce()
	return z, nil
}

// NewInt64 is New for int64 operands.
func NewInt64(num, den int64) (*Rat, error) {
	return New(bigint.NewInt(num), bigint.NewInt(den))
}

// MustNew is like New but panics on a zero denominator.
func MustNew(num, den *bigint.Int) *Rat {
	z, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return z
}

// FromInt returns x/1.
func FromInt(x *bigint.Int) *Rat {
	z := &Rat{}
	z.num.Set(x)
	z.den.SetInt64(1)
	return z
}

// fix repairs the zero value before z is mutated.
func (z *Rat) fix() {
	if z.den.IsZero() {
		z.den.SetInt64(1)
	}
}

// denom returns the denominator, reading the zero value as 1.
func (x *Rat) denom() *bigint.Int {
	if x.den.IsZero() {
		return intOne
	}
	return &x.den
}

// reduce restores the sign and lowest-terms invariants.
func (z *Rat) reduce() {
	if z.den.Sign() < 0 {
		z.den.Neg()
		z.num.Neg()
	}
	if z.num.IsZero() {
		z.den.SetInt64(1)
		return
	}
	g := bigint.GCD(&z.num, &z.den)
	if g.Equal(intOne) {
		return
	}
	// g is non-zero, so neither division can fail.
	_, _ = z.num.Quo(g)
	_, _ = z.den.Quo(g)
}

// Set sets z to x and returns z.
func (z *Rat) Set(x *Rat) *Rat {
	if z != x {
		z.num.Set(&x.num)
		z.den.Set(x.denom())
	}
	z.fix()
	return z
}

// Clone returns a deep copy of x.
func (x *Rat) Clone() *Rat {
	return new(Rat).Set(x)
}

// Num returns a copy of the numerator. Its sign is the sign of x.
func (x *Rat) Num() *bigint.Int { return x.num.Clone() }

// Denom returns a copy of the denominator, which is always positive.
func (x *Rat) Denom() *bigint.Int { return x.denom().Clone() }

// Sign returns -1, 0 or +1.
func (x *Rat) Sign() int { return x.num.Sign() }

// IsZero reports whether x == 0.
func (x *Rat) IsZero() bool { return x.num.IsZero() }

// IsInt reports whether the denominator of x is 1.
func (x *Rat) IsInt() bool { return x.denom().Equal(intOne) }
