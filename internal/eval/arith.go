package eval

import (
	"fmt"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/rational"
)

// Value is an evaluation result: a *bigint.Int in ModeInt and a
// *rational.Rat in ModeRat.
type Value interface {
	fmt.Stringer
	Sign() int
}

// Limits on operands that would otherwise run for unbounded time.
const (
	MaxShift    = 1 << 20
	MaxExponent = 1 << 20
)

// arithmetic implements the operators of one Mode.
type arithmetic interface {
	number(x *bigint.Int) Value
	negate(v Value) Value
	binary(op tokenKind, a, b Value) (Value, error)
	call(name string, args []Value) (Value, error)
}

func operandError(op, format string, args ...any) error {
	return apperrors.InvalidOperandError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// smallCount converts a shift count or exponent to a uint within limit.
func smallCount(op string, x *bigint.Int, limit int64) (uint, error) {
	n, ok := x.Int64()
	switch {
	case !ok || n > limit:
		return 0, operandError(op, "%s exceeds the limit of %d", x, limit)
	case n < 0:
		return 0, operandError(op, "negative count %s", x)
	}
	return uint(n), nil
}

type intArithmetic struct{}

func (intArithmetic) number(x *bigint.Int) Value { return x }

func (intArithmetic) negate(v Value) Value { return bigint.Neg(v.(*bigint.Int)) }

func (intArithmetic) binary(op tokenKind, a, b Value) (Value, error) {
	x, y := a.(*bigint.Int), b.(*bigint.Int)
	switch op {
	case tokPlus:
		return bigint.Add(x, y), nil
	case tokMinus:
		return bigint.Sub(x, y), nil
	case tokStar:
		return bigint.Mul(x, y), nil
	case tokSlash:
		return bigint.Quo(x, y)
	case tokPercent:
		return bigint.Rem(x, y)
	case tokShl, tokShr:
		n, err := smallCount("shift", y, MaxShift)
		if err != nil {
			return nil, err
		}
		if op == tokShl {
			return bigint.Lsh(x, n), nil
		}
		return bigint.Rsh(x, n), nil
	case tokCaret:
		return intPow(x, y)
	}
	return nil, fmt.Errorf("unsupported operator %s", op)
}

func intPow(x, y *bigint.Int) (Value, error) {
	if y.Sign() > 0 {
		if _, err := smallCount("pow", y, MaxExponent); err != nil {
			return nil, err
		}
	}
	return bigint.Pow(x, y), nil
}

func (a intArithmetic) call(name string, args []Value) (Value, error) {
	switch name {
	case "abs":
		return bigint.Abs(args[0].(*bigint.Int)), nil
	case "gcd":
		return bigint.GCD(args[0].(*bigint.Int), args[1].(*bigint.Int)), nil
	case "pow":
		return intPow(args[0].(*bigint.Int), args[1].(*bigint.Int))
	case "inv":
		return nil, operandError("inv", "reciprocals require rat mode")
	}
	return nil, fmt.Errorf("unknown function %q", name)
}

type ratArithmetic struct{}

func (ratArithmetic) number(x *bigint.Int) Value { return rational.FromInt(x) }

func (ratArithmetic) negate(v Value) Value { return rational.Neg(v.(*rational.Rat)) }

// integer returns the integer value of v or an error naming op.
func integer(op string, v Value) (*bigint.Int, error) {
	r := v.(*rational.Rat)
	if !r.IsInt() {
		return nil, operandError(op, "%s is not an integer", r)
	}
	return r.Num(), nil
}

func (ratArithmetic) binary(op tokenKind, a, b Value) (Value, error) {
	x, y := a.(*rational.Rat), b.(*rational.Rat)
	switch op {
	case tokPlus:
		return rational.Add(x, y), nil
	case tokMinus:
		return rational.Sub(x, y), nil
	case tokStar:
		return rational.Mul(x, y), nil
	case tokSlash:
		return rational.Quo(x, y)
	case tokCaret:
		return ratPow(x, y)
	}

	// The remaining operators are only defined on integers.
	xi, err := integer(op.String(), x)
	if err != nil {
		return nil, err
	}
	yi, err := integer(op.String(), y)
	if err != nil {
		return nil, err
	}
	v, err := intArithmetic{}.binary(op, xi, yi)
	if err != nil {
		return nil, err
	}
	return rational.FromInt(v.(*bigint.Int)), nil
}

func ratPow(x, y *rational.Rat) (Value, error) {
	e, err := integer("pow", y)
	if err != nil {
		return nil, err
	}
	if _, err := smallCount("pow", bigint.Abs(e), MaxExponent); err != nil {
		return nil, err
	}
	return rational.Pow(x, e)
}

func (ratArithmetic) call(name string, args []Value) (Value, error) {
	switch name {
	case "abs":
		return rational.Abs(args[0].(*rational.Rat)), nil
	case "inv":
		return rational.Reciprocal(args[0].(*rational.Rat))
	case "pow":
		return ratPow(args[0].(*rational.Rat), args[1].(*rational.Rat))
	case "gcd":
		a, err := integer("gcd", args[0])
		if err != nil {
			return nil, err
		}
		b, err := integer("gcd", args[1])
		if err != nil {
			return nil, err
		}
		return rational.FromInt(bigint.GCD(a, b)), nil
	}
	return nil, fmt.Errorf("unknown function %q", name)
}
