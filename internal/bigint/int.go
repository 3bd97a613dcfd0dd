package bigint

// digit is the storage type of one digit group. It is wider than Radix
// requires so that unnormalized intermediate values (schoolbook sums, FFT
// coefficients, pending borrows) fit before carry or borrow runs.
type digit = int64

const (
	// Radix is the value base of one digit group.
	Radix = 100
	// GroupWidth is the number of decimal digits held by one group.
	GroupWidth = 2
)

// An Int is a signed arbitrary-precision integer.
// The zero value for an Int represents the value 0.
type Int struct {
	neg    bool    // sign; zero is never negative
	digits []digit // magnitude, least significant group first
}

// zeroMag is the magnitude of the zero value. It is never written.
var zeroMag = []digit{0}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// mag returns the magnitude of x, treating an unset Int as zero.
func (x *Int) mag() []digit {
	if len(x.digits) == 0 {
		return zeroMag
	}
	return x.digits
}

// init repairs the zero value before x is mutated in place.
func (x *Int) init() {
	if len(x.digits) == 0 {
		x.digits = []digit{0}
		x.neg = false
	}
}

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	u := uint64(x)
	if x < 0 {
		u = -u
	}
	d := z.digits[:0]
	for {
		d = append(d, digit(u%Radix))
		u /= Radix
		if u == 0 {
			break
		}
	}
	z.digits = d
	z.neg = x < 0
	return z
}

// Set sets z to a copy of x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z == x {
		z.init()
		return z
	}
	m := x.mag()
	z.digits = append(z.digits[:0], m...)
	z.neg = x.neg
	return z
}

// Clone returns a deep copy of x.
func (x *Int) Clone() *Int {
	m := x.mag()
	d := make([]digit, len(m))
	copy(d, m)
	return &Int{neg: x.neg, digits: d}
}

// Sign returns -1, 0 or +1 depending on whether x is negative, zero or
// positive.
func (x *Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.neg:
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x *Int) IsZero() bool {
	m := x.mag()
	return len(m) == 1 && m[0] == 0
}

// setNeg gives a freshly computed magnitude its sign; zero stays
// non-negative.
func (z *Int) setNeg(neg bool) {
	z.neg = neg && !z.IsZero()
}
