package bigint

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// fromDigits builds an Int from a generated digit string and a sign.
func fromDigits(s string, neg bool) *Int {
	if s == "" {
		s = "0"
	}
	x := MustParse(s)
	if neg {
		x.Neg()
	}
	return x
}

// propertyParams sizes digit strings up to 400 digits so that products
// cross the FFT threshold.
func propertyParams() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MaxSize = 400
	return parameters
}

// shortNumString keeps divisors short so that binary-doubling divisions
// stay fast.
func shortNumString(n int) gopter.Gen {
	return gen.NumString().Map(func(s string) string {
		if len(s) > n {
			return s[:n]
		}
		return s
	})
}

func TestArithmeticProperties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(propertyParams())

	properties.Property("(a + b) - b == a", prop.ForAll(
		func(as, bs string, an, bn bool) bool {
			a, b := fromDigits(as, an), fromDigits(bs, bn)
			return Sub(Add(a, b), b).Equal(a)
		},
		gen.NumString(), gen.NumString(), gen.Bool(), gen.Bool(),
	))

	properties.Property("(a * b) / b == a for b != 0", prop.ForAll(
		func(as, bs string, an, bn bool) bool {
			a, b := fromDigits(as, an), fromDigits(bs, bn)
			if b.IsZero() {
				return true
			}
			q, err := Quo(Mul(a, b), b)
			return err == nil && q.Equal(a)
		},
		gen.NumString(), gen.NumString(), gen.Bool(), gen.Bool(),
	))

	properties.Property("a/b*b + a%b == a with sign(a%b) == sign(a)", prop.ForAll(
		func(as, bs string, an, bn bool) bool {
			a, b := fromDigits(as, an), fromDigits(bs, bn)
			if b.IsZero() {
				return true
			}
			q, r, err := QuoRem(a, b)
			if err != nil {
				return false
			}
			if !Add(Mul(q, b), r).Equal(a) {
				return false
			}
			if r.CmpAbs(b) >= 0 {
				return false
			}
			return r.IsZero() || r.Sign() == a.Sign()
		},
		gen.NumString(), shortNumString(60), gen.Bool(), gen.Bool(),
	))

	properties.Property("exactly one of a < b, a == b, a > b", prop.ForAll(
		func(as, bs string, an, bn bool) bool {
			a, b := fromDigits(as, an), fromDigits(bs, bn)
			n := 0
			if a.Less(b) {
				n++
			}
			if a.Equal(b) {
				n++
			}
			if a.Greater(b) {
				n++
			}
			return n == 1 && a.Cmp(b) == -b.Cmp(a)
		},
		gen.NumString(), gen.NumString(), gen.Bool(), gen.Bool(),
	))

	properties.Property("kernels agree", prop.ForAll(
		func(as, bs string) bool {
			a, b := fromDigits(as, false), fromDigits(bs, true)
			return MulSchoolbook(a, b).Equal(MulFFT(a, b))
		},
		gen.NumString(), gen.NumString(),
	))

	properties.TestingRun(t)
}

// TestMathBigOracle_PropertyBased cross-checks every operation against
// math/big on the same operands.
func TestMathBigOracle_PropertyBased(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(propertyParams())

	properties.Property("matches math/big", prop.ForAll(
		func(as, bs string, an, bn bool) bool {
			a, b := fromDigits(as, an), fromDigits(bs, bn)
			ba, bb := toBig(t, a), toBig(t, b)

			if Add(a, b).String() != new(big.Int).Add(ba, bb).String() {
				return false
			}
			if Sub(a, b).String() != new(big.Int).Sub(ba, bb).String() {
				return false
			}
			if Mul(a, b).String() != new(big.Int).Mul(ba, bb).String() {
				return false
			}
			if a.Cmp(b) != ba.Cmp(bb) {
				return false
			}
			if GCD(a, b).String() != new(big.Int).GCD(nil, nil, new(big.Int).Abs(ba), new(big.Int).Abs(bb)).String() {
				return false
			}
			if b.IsZero() {
				return true
			}
			q, r, err := QuoRem(a, b)
			wq, wr := new(big.Int).QuoRem(ba, bb, new(big.Int))
			return err == nil && q.String() == wq.String() && r.String() == wr.String()
		},
		gen.NumString(), shortNumString(80), gen.Bool(), gen.Bool(),
	))

	properties.Property("parse/format round trip", prop.ForAll(
		func(s string, neg bool) bool {
			x := fromDigits(s, neg)
			return MustParse(x.String()).Equal(x) && x.String() == toBig(t, x).String()
		},
		gen.NumString(), gen.Bool(),
	))

	properties.Property("shifts match math/big", prop.ForAll(
		func(s string, neg bool, n uint) bool {
			x := fromDigits(s, neg)
			bx := toBig(t, x)
			if Lsh(x, n).String() != new(big.Int).Lsh(bx, n).String() {
				return false
			}
			// math/big Rsh floors; Rsh truncates toward zero.
			want := new(big.Int).Quo(bx, new(big.Int).Lsh(big.NewInt(1), n))
			return Rsh(x, n).String() == want.String()
		},
		gen.NumString(), gen.Bool(), gen.UIntRange(0, 200),
	))

	properties.TestingRun(t)
}
