package bigint

var intTwo = NewInt(2)

// Pow returns base**exp by binary exponentiation. A non-positive exponent
// yields 1.
func Pow(base, exp *Int) *Int {
	z := NewInt(1)
	if exp.Sign() <= 0 {
		return z
	}
	b := base.Clone()
	e := exp.Clone()
	for {
		if e.digits[0]&1 == 1 {
			z.Mul(b)
		}
		e.halve()
		if e.IsZero() {
			return z
		}
		b.Mul(b)
	}
}

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(x, 0) is |x| and GCD(0, 0) is 0.
func GCD(a, b *Int) *Int {
	x, y := Abs(a), Abs(b)
	for !y.IsZero() {
		_, r := quoRem(x, y)
		x, y = y, r
	}
	return x
}

func pow2(n uint) *Int {
	return Pow(intTwo, new(Int).SetUint64(uint64(n)))
}

// Lsh sets z to z * 2**n and returns z.
func (z *Int) Lsh(n uint) *Int {
	if n == 0 {
		z.init()
		return z
	}
	return z.Mul(pow2(n))
}

// Rsh sets z to z / 2**n, truncated toward zero, and returns z.
func (z *Int) Rsh(n uint) *Int {
	z.init()
	if n == 0 || z.IsZero() {
		return z
	}
	q, _ := quoRem(z, pow2(n))
	return z.Set(q)
}

// Lsh returns x * 2**n.
func Lsh(x *Int, n uint) *Int { return x.Clone().Lsh(n) }

// Rsh returns x / 2**n truncated toward zero.
func Rsh(x *Int, n uint) *Int { return x.Clone().Rsh(n) }
