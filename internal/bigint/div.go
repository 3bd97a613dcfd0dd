package bigint

import (
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
)

// ErrDivisionByZero is returned by Quo, Rem and QuoRem for a zero divisor.
// It matches apperrors.ErrInvalidOperand.
var ErrDivisionByZero error = apperrors.InvalidOperandError{Op: "bigint", Reason: "division by zero"}

func refuse(op string) error {
	logger().Error("refusing division", ErrDivisionByZero, logging.String("op", op))
	metrics.ObserveInvalidOperand(op)
	return ErrDivisionByZero
}

// double sets z to 2z.
func (z *Int) double() {
	for i := range z.digits {
		z.digits[i] <<= 1
	}
	z.digits = append(z.digits, 0)
	z.carry()
}

// halve sets z to floor(|z| / 2), keeping the sign of a non-zero result.
func (z *Int) halve() {
	var rem digit
	for i := len(z.digits) - 1; i >= 0; i-- {
		cur := rem*Radix + z.digits[i]
		z.digits[i] = cur >> 1
		rem = cur & 1
	}
	z.trim()
}

// quoRem divides x by a non-zero y, truncating toward zero. The remainder
// takes the sign of x. Neither operand is modified.
func quoRem(x, y *Int) (q, r *Int) {
	if x.CmpAbs(y) < 0 {
		return new(Int).SetInt64(0), x.Clone()
	}

	r = Abs(x)
	q = new(Int).SetInt64(0)
	rhsT := Abs(y)
	t := NewInt(1)
	for cmpMag(rhsT.digits, r.digits) <= 0 {
		rhsT.double()
		t.double()
	}
	for !t.IsZero() {
		if cmpMag(r.digits, rhsT.digits) >= 0 {
			r.Sub(rhsT)
			q.Add(t)
		}
		rhsT.halve()
		t.halve()
	}

	q.setNeg(x.neg != y.neg)
	r.setNeg(x.neg)
	return q, r
}

// Quo sets z to the quotient z/y, truncated toward zero, and returns z.
// If y is zero Quo returns ErrDivisionByZero and leaves z unchanged.
func (z *Int) Quo(y *Int) (*Int, error) {
	if y.IsZero() {
		return z, refuse(metrics.DivQuo)
	}
	metrics.ObserveDivision(metrics.DivQuo)
	q, _ := quoRem(z, y)
	return z.Set(q), nil
}

// Rem sets z to the remainder z%y, which has the sign of z, and returns z.
// If y is zero Rem returns ErrDivisionByZero and leaves z unchanged.
func (z *Int) Rem(y *Int) (*Int, error) {
	if y.IsZero() {
		return z, refuse(metrics.DivRem)
	}
	metrics.ObserveDivision(metrics.DivRem)
	_, r := quoRem(z, y)
	return z.Set(r), nil
}

// Quo returns x/y truncated toward zero.
func Quo(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, refuse(metrics.DivQuo)
	}
	metrics.ObserveDivision(metrics.DivQuo)
	q, _ := quoRem(x, y)
	return q, nil
}

// Rem returns x%y; a non-zero result has the sign of x.
func Rem(x, y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, refuse(metrics.DivRem)
	}
	metrics.ObserveDivision(metrics.DivRem)
	_, r := quoRem(x, y)
	return r, nil
}

// QuoRem returns the quotient and remainder of x/y from a single pass.
// They satisfy x == q*y + r with |r| < |y|.
func QuoRem(x, y *Int) (q, r *Int, err error) {
	if y.IsZero() {
		return nil, nil, refuse(metrics.DivQuoRem)
	}
	metrics.ObserveDivision(metrics.DivQuoRem)
	q, r = quoRem(x, y)
	return q, r, nil
}
