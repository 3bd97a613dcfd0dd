package rational

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/bigcalc/internal/bigint"
)

func reduced(r *Rat) bool {
	return r.Denom().Sign() > 0 && bigint.GCD(r.Num(), r.Denom()).Equal(bigint.NewInt(1))
}

func toBigRat(r *Rat) *big.Rat {
	br, _ := new(big.Rat).SetString(r.Num().String() + "/" + r.Denom().String())
	return br
}

func TestReductionInvariant_PropertyBased(t *testing.T) {
	t.Parallel()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	nonZero := gen.Int64Range(-1_000_000, 1_000_000).SuchThat(func(v int64) bool { return v != 0 })
	anyInt := gen.Int64Range(-1_000_000, 1_000_000)

	properties.Property("results are reduced and match math/big", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, err := NewInt64(an, ad)
			if err != nil {
				return false
			}
			b, err := NewInt64(bn, bd)
			if err != nil {
				return false
			}
			ba, bb := big.NewRat(an, ad), big.NewRat(bn, bd)

			results := []struct {
				got  *Rat
				want *big.Rat
			}{
				{a, ba},
				{Add(a, b), new(big.Rat).Add(ba, bb)},
				{Sub(a, b), new(big.Rat).Sub(ba, bb)},
				{Mul(a, b), new(big.Rat).Mul(ba, bb)},
			}
			if !b.IsZero() {
				q, err := Quo(a, b)
				if err != nil {
					return false
				}
				results = append(results, struct {
					got  *Rat
					want *big.Rat
				}{q, new(big.Rat).Quo(ba, bb)})
			}
			for _, r := range results {
				if !reduced(r.got) || r.got.String() != r.want.RatString() {
					return false
				}
			}
			return a.Cmp(b) == ba.Cmp(bb)
		},
		anyInt, nonZero, anyInt, nonZero,
	))

	properties.Property("comparison is total and antisymmetric", prop.ForAll(
		func(an, ad, bn, bd int64) bool {
			a, _ := NewInt64(an, ad)
			b, _ := NewInt64(bn, bd)
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
			return n == 1 && a.Cmp(b) == -b.Cmp(a) && toBigRat(a).Cmp(toBigRat(b)) == a.Cmp(b)
		},
		anyInt, nonZero, anyInt, nonZero,
	))

	properties.TestingRun(t)
}
