package eval

import (
	"context"
	"errors"
	"strings"
	"testing"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// FuzzEvaluate checks that arbitrary input either evaluates or fails with
// a syntax or operand error, never a panic.
func FuzzEvaluate(f *testing.F) {
	for _, seed := range []string{"1+2", "-(3^4)%5", "gcd(12,18)", "1<<3>>1", "((", "inv(0)", "2^-3"} {
		f.Add(seed)
	}
	ctx := context.Background()

	f.Fuzz(func(t *testing.T, expr string) {
		// Exponents and shifts can legitimately build huge values.
		if len(expr) > 64 || strings.ContainsAny(expr, "^<>") || strings.Contains(strings.ToLower(expr), "pow") {
			return
		}
		for _, mode := range []Mode{ModeInt, ModeRat} {
			e, err := New(mode)
			if err != nil {
				t.Fatal(err)
			}
			_, err = e.Evaluate(ctx, expr)
			if err == nil {
				continue
			}
			var synErr apperrors.SyntaxError
			if !errors.As(err, &synErr) && !errors.Is(err, apperrors.ErrInvalidOperand) {
				t.Fatalf("%s %q: unexpected error %v", mode, expr, err)
			}
		}
	})
}
