package bigint

import (
	"math"
	"testing"
)

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var z Int
	if !z.IsZero() || z.Sign() != 0 {
		t.Fatalf("zero value: IsZero=%v Sign=%d", z.IsZero(), z.Sign())
	}
	if got := z.String(); got != "0" {
		t.Errorf("String() = %q, want %q", got, "0")
	}
	if got := z.Add(NewInt(42)).String(); got != "42" {
		t.Errorf("zero value Add = %q, want %q", got, "42")
	}

	var w Int
	if got := w.Neg().String(); got != "0" {
		t.Errorf("-0 = %q, want %q", got, "0")
	}
}

func TestNewInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   int64
		want string
		sign int
	}{
		{0, "0", 0},
		{1, "1", 1},
		{-1, "-1", -1},
		{99, "99", 1},
		{100, "100", 1},
		{-10001, "-10001", -1},
		{math.MaxInt64, "9223372036854775807", 1},
		{math.MinInt64, "-9223372036854775808", -1},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			x := NewInt(tt.in)
			if got := x.String(); got != tt.want {
				t.Errorf("NewInt(%d) = %q, want %q", tt.in, got, tt.want)
			}
			if got := x.Sign(); got != tt.sign {
				t.Errorf("Sign() = %d, want %d", got, tt.sign)
			}
			checkNormalized(t, x)
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	t.Parallel()

	x := MustParse("123456789")
	y := x.Clone()
	y.Add(NewInt(1))
	if x.String() != "123456789" {
		t.Errorf("original changed to %s after mutating the clone", x)
	}

	var z Int
	z.Set(x)
	x.Neg()
	if z.String() != "123456789" {
		t.Errorf("Set did not copy: got %s", &z)
	}
}

func TestCmp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"1", "0", 1},
		{"0", "1", -1},
		{"-1", "0", -1},
		{"-1", "1", -1},
		{"1", "-1", 1},
		{"100", "99", 1},
		{"-100", "-99", -1},
		{"12345", "12346", -1},
		{"-12345", "-12346", 1},
		{"99999999999999999999", "99999999999999999999", 0},
	}
	for _, tt := range tests {
		t.Run(tt.x+"_"+tt.y, func(t *testing.T) {
			t.Parallel()
			x, y := MustParse(tt.x), MustParse(tt.y)
			if got := x.Cmp(y); got != tt.want {
				t.Errorf("Cmp(%s, %s) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
			if got := x.Less(y); got != (tt.want < 0) {
				t.Errorf("Less = %v", got)
			}
			if got := x.LessEq(y); got != (tt.want <= 0) {
				t.Errorf("LessEq = %v", got)
			}
			if got := x.Greater(y); got != (tt.want > 0) {
				t.Errorf("Greater = %v", got)
			}
			if got := x.GreaterEq(y); got != (tt.want >= 0) {
				t.Errorf("GreaterEq = %v", got)
			}
			if got := x.Equal(y); got != (tt.want == 0) {
				t.Errorf("Equal = %v", got)
			}
		})
	}
}

func TestCmpAbs(t *testing.T) {
	t.Parallel()

	if got := MustParse("-500").CmpAbs(NewInt(499)); got != 1 {
		t.Errorf("CmpAbs(-500, 499) = %d, want 1", got)
	}
	if got := MustParse("-7").CmpAbs(NewInt(7)); got != 0 {
		t.Errorf("CmpAbs(-7, 7) = %d, want 0", got)
	}
}

func TestNormalizationPasses(t *testing.T) {
	t.Parallel()

	t.Run("carry", func(t *testing.T) {
		t.Parallel()
		// 9999 - 150*100 + 1*10000 = 4999
		z := &Int{digits: []digit{9999, -150, 1}}
		z.carry()
		if got := z.String(); got != "4999" {
			t.Errorf("carry = %s, want 4999", got)
		}
		checkNormalized(t, z)
		z.carry()
		if got := z.String(); got != "4999" {
			t.Errorf("second carry changed value to %s", got)
		}
	})

	t.Run("carry grows", func(t *testing.T) {
		t.Parallel()
		z := &Int{digits: []digit{1234567}}
		z.carry()
		if got := z.String(); got != "1234567" {
			t.Errorf("carry = %s, want 1234567", got)
		}
		checkNormalized(t, z)
	})

	t.Run("borrow", func(t *testing.T) {
		t.Parallel()
		// 1*10000 + 0*100 - 1 = 9999
		z := &Int{digits: []digit{-1, 0, 1}}
		z.borrow()
		if got := z.String(); got != "9999" {
			t.Errorf("borrow = %s, want 9999", got)
		}
		checkNormalized(t, z)
	})

	t.Run("trim zero", func(t *testing.T) {
		t.Parallel()
		z := &Int{neg: true, digits: []digit{0, 0, 0}}
		z.trim()
		if z.neg || len(z.digits) != 1 {
			t.Errorf("trim(-000) = neg %v, %d groups", z.neg, len(z.digits))
		}
	})
}

// checkNormalized fails the test if x violates the representation
// invariants: a non-empty slice, groups in [0, Radix), no leading zero
// group and a non-negative zero.
func checkNormalized(t *testing.T, x *Int) {
	t.Helper()
	if len(x.digits) == 0 {
		t.Fatalf("%v: empty digit slice", x.digits)
	}
	for i, d := range x.digits {
		if d < 0 || d >= Radix {
			t.Fatalf("group %d out of range: %d", i, d)
		}
	}
	if n := len(x.digits); n > 1 && x.digits[n-1] == 0 {
		t.Fatalf("leading zero group in %v", x.digits)
	}
	if x.IsZero() && x.neg {
		t.Fatalf("negative zero")
	}
}
