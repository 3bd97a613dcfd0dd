package bigint

var intOne = NewInt(1)

// Add sets z to z + y and returns z.
func (z *Int) Add(y *Int) *Int {
	z.init()
	if y.IsZero() {
		return z
	}
	if y == z {
		y = y.Clone()
	}
	if z.neg != y.neg {
		return z.Sub(Neg(y))
	}
	ym := y.mag()
	if len(z.digits) < len(ym) {
		z.digits = append(z.digits, make([]digit, len(ym)-len(z.digits))...)
	}
	z.digits = append(z.digits, 0)
	for i, v := range ym {
		z.digits[i] += v
	}
	z.carry()
	return z
}

// Sub sets z to z - y and returns z.
func (z *Int) Sub(y *Int) *Int {
	z.init()
	if y.IsZero() {
		return z
	}
	if y == z {
		z.digits = z.digits[:1]
		z.digits[0] = 0
		z.neg = false
		return z
	}
	if z.neg != y.neg {
		return z.Add(Neg(y))
	}
	ym := y.mag()
	if cmpMag(z.digits, ym) >= 0 {
		for i, v := range ym {
			z.digits[i] -= v
		}
	} else {
		// |z| < |y|: the result is |y| - |z| with the opposite sign.
		n := len(z.digits)
		z.digits = append(z.digits, ym[n:]...)
		for i := 0; i < n; i++ {
			z.digits[i] = ym[i] - z.digits[i]
		}
		z.neg = !z.neg
	}
	z.borrow()
	return z
}

// Inc increments z by one and returns z.
func (z *Int) Inc() *Int { return z.Add(intOne) }

// Dec decrements z by one and returns z.
func (z *Int) Dec() *Int { return z.Sub(intOne) }

// Neg negates z in place and returns z.
func (z *Int) Neg() *Int {
	z.init()
	z.setNeg(!z.neg)
	return z
}

// Abs sets z to |z| and returns z.
func (z *Int) Abs() *Int {
	z.init()
	z.neg = false
	return z
}

// Add returns x + y.
func Add(x, y *Int) *Int { return x.Clone().Add(y) }

// Sub returns x - y.
func Sub(x, y *Int) *Int { return x.Clone().Sub(y) }

// Neg returns -x.
func Neg(x *Int) *Int { return x.Clone().Neg() }

// Abs returns |x|.
func Abs(x *Int) *Int { return x.Clone().Abs() }
