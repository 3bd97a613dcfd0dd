package rational

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
)

func mustRat(t *testing.T, s string) *Rat {
	t.Helper()
	r, err := Parse(s)
	require.NoError(t, err)
	return r
}

// requireReduced asserts den > 0 and gcd(|num|, den) == 1.
func requireReduced(t *testing.T, r *Rat) {
	t.Helper()
	require.Equal(t, 1, r.Denom().Sign(), "denominator of %s must be positive", r)
	require.Equal(t, "1", bigint.GCD(r.Num(), r.Denom()).String(), "%s is not in lowest terms", r)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		num, den int64
		want     string
	}{
		{4, 8, "1/2"},
		{0, 5, "0"},
		{0, -5, "0"},
		{6, 3, "2"},
		{3, -6, "-1/2"},
		{-3, -6, "1/2"},
		{-7, 1, "-7"},
		{10, 4, "5/2"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			r, err := NewInt64(tt.num, tt.den)
			require.NoError(t, err)
			require.Equal(t, tt.want, r.String())
			requireReduced(t, r)
		})
	}
}

func TestZeroDenominator(t *testing.T) {
	t.Parallel()

	_, err := NewInt64(1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)
	require.ErrorIs(t, err, apperrors.ErrInvalidOperand)

	_, err = Parse("3/0")
	require.ErrorIs(t, err, ErrZeroDenominator)

	require.Panics(t, func() { MustNew(bigint.NewInt(1), bigint.NewInt(0)) })
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var z Rat
	require.True(t, z.IsZero())
	require.True(t, z.IsInt())
	require.Equal(t, "0", z.String())
	require.Equal(t, "1", z.Denom().String())

	half := mustRat(t, "1/2")
	require.Equal(t, "1/2", z.Add(half).String())

	var w Rat
	require.Equal(t, 0, w.Cmp(mustRat(t, "0")))
	require.True(t, w.Equal(mustRat(t, "0/7")))
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y                string
		sum, diff, prod, qu string
	}{
		{"1/2", "1/3", "5/6", "1/6", "1/6", "3/2"},
		{"1/2", "1/2", "1", "0", "1/4", "1"},
		{"-3/4", "1/4", "-1/2", "-1", "-3/16", "-3"},
		{"2", "-1/2", "3/2", "5/2", "-1", "-4"},
		{"0", "7/9", "7/9", "-7/9", "0", "0"},
		{"123456789/1000", "1/1000", "12345679/100", "30864197/250", "123456789/1000000", "123456789"},
	}
	for _, tt := range tests {
		t.Run(tt.x+"_"+tt.y, func(t *testing.T) {
			t.Parallel()
			x, y := mustRat(t, tt.x), mustRat(t, tt.y)

			for _, c := range []struct {
				name string
				got  *Rat
				want string
			}{
				{"add", Add(x, y), tt.sum},
				{"sub", Sub(x, y), tt.diff},
				{"mul", Mul(x, y), tt.prod},
			} {
				require.Equal(t, c.want, c.got.String(), c.name)
				requireReduced(t, c.got)
			}

			q, err := Quo(x, y)
			require.NoError(t, err)
			require.Equal(t, tt.qu, q.String())
			requireReduced(t, q)

			require.Equal(t, tt.x, x.String(), "operand modified")
			require.Equal(t, tt.y, y.String(), "operand modified")
		})
	}
}

func TestMutatorsChain(t *testing.T) {
	t.Parallel()

	z := mustRat(t, "1/2")
	z.Add(mustRat(t, "1/3")).Mul(mustRat(t, "6")).Sub(mustRat(t, "1"))
	require.Equal(t, "4", z.String())

	_, err := z.Quo(mustRat(t, "8"))
	require.NoError(t, err)
	require.Equal(t, "1/2", z.String())

	require.Equal(t, "1", z.Add(z).String())
	require.Equal(t, "1", z.Mul(z).String())
	require.Equal(t, "-1", z.Neg().String())
	require.Equal(t, "1", z.Abs().String())
}

func TestReciprocal(t *testing.T) {
	t.Parallel()

	r, err := Reciprocal(mustRat(t, "-2/3"))
	require.NoError(t, err)
	require.Equal(t, "-3/2", r.String())
	requireReduced(t, r)

	_, err = Reciprocal(mustRat(t, "0"))
	require.ErrorIs(t, err, ErrZeroReciprocal)

	z := mustRat(t, "5/7")
	_, err = z.Quo(new(Rat))
	require.True(t, errors.Is(err, apperrors.ErrInvalidOperand))
	require.Equal(t, "5/7", z.String(), "receiver changed on failed Quo")

	q, err := Quo(z, mustRat(t, "0"))
	require.Nil(t, q)
	require.ErrorIs(t, err, ErrZeroReciprocal)
}

func TestPow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x    string
		exp  int64
		want string
	}{
		{"2/3", 3, "8/27"},
		{"2/3", -3, "27/8"},
		{"-2/3", 3, "-8/27"},
		{"-2/3", -2, "9/4"},
		{"5/7", 0, "1"},
		{"0", 0, "1"},
		{"0", 4, "0"},
	}
	for _, tt := range tests {
		got, err := Pow(mustRat(t, tt.x), bigint.NewInt(tt.exp))
		require.NoError(t, err)
		require.Equal(t, tt.want, got.String(), "(%s)^%d", tt.x, tt.exp)
		requireReduced(t, got)
	}

	_, err := Pow(mustRat(t, "0"), bigint.NewInt(-1))
	require.ErrorIs(t, err, ErrZeroReciprocal)
}

func TestCmp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y string
		want int
	}{
		{"1/2", "1/3", 1},
		{"1/3", "1/2", -1},
		{"-1/2", "1/3", -1},
		{"2/4", "1/2", 0},
		{"-1/3", "-1/2", 1},
		{"7", "7", 0},
		{"0", "-1/1000", 1},
	}
	for _, tt := range tests {
		x, y := mustRat(t, tt.x), mustRat(t, tt.y)
		require.Equal(t, tt.want, x.Cmp(y), "Cmp(%s, %s)", tt.x, tt.y)
		require.Equal(t, tt.want < 0, x.Less(y))
		require.Equal(t, tt.want > 0, x.Greater(y))
		require.Equal(t, tt.want == 0, x.Equal(y))
		require.Equal(t, tt.want <= 0, x.LessEq(y), "LessEq(%s, %s)", tt.x, tt.y)
		require.Equal(t, tt.want >= 0, x.GreaterEq(y), "GreaterEq(%s, %s)", tt.x, tt.y)
		require.Equal(t, x.LessEq(y), y.GreaterEq(x))
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"5":      "5",
		"-10/4":  "-5/2",
		"10/-4":  "-5/2",
		"0/9":    "0",
		"0012/6": "2",
	} {
		r, err := Parse(in)
		require.NoError(t, err, in)
		require.Equal(t, want, r.String(), in)
	}

	for _, in := range []string{"", "/", "1/", "/2", "1/2/3", "a/b", "1.5"} {
		_, err := Parse(in)
		require.ErrorIs(t, err, bigint.ErrSyntax, in)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	r := mustRat(t, "-3/4")
	r.Num().Neg()
	r.Denom().Add(bigint.NewInt(1))
	require.Equal(t, "-3/4", r.String())
	require.Equal(t, -1, r.Sign())
	require.False(t, r.IsInt())
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	in := map[string]*Rat{"half": mustRat(t, "-1/2"), "two": mustRat(t, "2")}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"half":"-1/2","two":"2"}`, string(data))

	var out map[string]*Rat
	require.NoError(t, json.Unmarshal(data, &out))
	require.True(t, out["half"].Equal(in["half"]))
	require.True(t, out["two"].Equal(in["two"]))

	var r Rat
	require.ErrorIs(t, r.UnmarshalText([]byte("1/0")), ErrZeroDenominator)
}
