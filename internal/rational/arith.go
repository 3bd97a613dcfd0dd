package rational

import "github.com/agbru/bigcalc/internal/bigint"

// Add sets z to z + y and returns z.
func (z *Rat) Add(y *Rat) *Rat {
	z.fix()
	if y == z {
		y = y.Clone()
	}
	cross := bigint.Mul(z.denom(), &y.num)
	z.num.Mul(y.denom()).Add(cross)
	z.den.Mul(y.denom())
	z.reduce()
	return z
}

// Sub sets z to z - y and returns z.
func (z *Rat) Sub(y *Rat) *Rat {
	return z.Add(Neg(y))
}

// Mul sets z to z * y and returns z.
func (z *Rat) Mul(y *Rat) *Rat {
	z.fix()
	z.num.Mul(&y.num)
	z.den.Mul(y.denom())
	z.reduce()
	return z
}

// Quo sets z to z / y and returns z. Dividing by zero returns
// ErrZeroReciprocal and leaves z unchanged.
func (z *Rat) Quo(y *Rat) (*Rat, error) {
	inv, err := Reciprocal(y)
	if err != nil {
		return z, err
	}
	return z.Mul(inv), nil
}

// Neg sets z to -z and returns z.
func (z *Rat) Neg() *Rat {
	z.fix()
	z.num.Neg()
	return z
}

// Abs sets z to |z| and returns z.
func (z *Rat) Abs() *Rat {
	z.fix()
	z.num.Abs()
	return z
}

// Add returns x + y.
func Add(x, y *Rat) *Rat { return x.Clone().Add(y) }

// Sub returns x - y.
func Sub(x, y *Rat) *Rat { return x.Clone().Sub(y) }

// Mul returns x * y.
func Mul(x, y *Rat) *Rat { return x.Clone().Mul(y) }

// Quo returns x / y, or ErrZeroReciprocal if y is zero.
func Quo(x, y *Rat) (*Rat, error) {
	inv, err := Reciprocal(y)
	if err != nil {
		return nil, err
	}
	return x.Clone().Mul(inv), nil
}

// Neg returns -x.
func Neg(x *Rat) *Rat { return x.Clone().Neg() }

// Abs returns |x|.
func Abs(x *Rat) *Rat { return x.Clone().Abs() }

// Reciprocal returns 1/x. Zero has no reciprocal.
func Reciprocal(x *Rat) (*Rat, error) {
	if x.IsZero() {
		return nil, refuse("reciprocal", ErrZeroReciprocal)
	}
	z := &Rat{}
	z.num.Set(x.denom())
	z.den.Set(&x.num)
	z.reduce()
	return z, nil
}

// Pow returns x**exp. A negative exponent raises the reciprocal, which
// fails for zero; x**0 is 1.
func Pow(x *Rat, exp *bigint.Int) (*Rat, error) {
	base := x
	if exp.Sign() < 0 {
		inv, err := Reciprocal(x)
		if err != nil {
			return nil, err
		}
		base = inv
	}
	e := bigint.Abs(exp)
	// Powers of coprime terms stay coprime and the denominator stays
	// positive, so no reduction is needed.
	z := &Rat{}
	z.num.Set(bigint.Pow(&base.num, e))
	z.den.Set(bigint.Pow(base.denom(), e))
	return z, nil
}

// Cmp compares x and y by cross-multiplication and returns -1, 0 or +1.
func (x *Rat) Cmp(y *Rat) int {
	if x.denom().Equal(y.denom()) {
		return x.num.Cmp(&y.num)
	}
	return bigint.Mul(&x.num, y.denom()).Cmp(bigint.Mul(&y.num, x.denom()))
}

// Equal reports whether x == y. Both are reduced, so this compares terms.
func (x *Rat) Equal(y *Rat) bool {
	return x.num.Equal(&y.num) && x.denom().Equal(y.denom())
}

// Less reports whether x < y.
func (x *Rat) Less(y *Rat) bool { return x.Cmp(y) < 0 }

// Greater reports whether x > y.
func (x *Rat) Greater(y *Rat) bool { return x.Cmp(y) > 0 }

// LessEq reports whether x <= y.
func (x *Rat) LessEq(y *Rat) bool { return x.Cmp(y) <= 0 }

// GreaterEq reports whether x >= y.
func (x *Rat) GreaterEq(y *Rat) bool { return x.Cmp(y) >= 0 }
