package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/eval"
)

func runREPL(t *testing.T, cfg REPLConfig, input string) string {
	t.Helper()
	r, err := NewREPL(cfg)
	if err != nil {
		t.Fatalf("NewREPL: %v", err)
	}
	var out bytes.Buffer
	r.SetInput(strings.NewReader(input))
	r.SetOutput(&out)
	r.Start(context.Background())
	return out.String()
}

func TestREPLCommands(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{"BareExpression", "2^10 + 1\n", []string{"= 1025"}},
		{"EvalCommand", "eval gcd(1071, 462)\n", []string{"= 21"}},
		{"EvalUsage", "eval\n", []string{"Usage: eval <expr>"}},
		{"IntDivisionTruncates", "-7/2\n", []string{"= -3"}},
		{"SwitchToRat", "mode rat\n1/3 + 1/6\n", []string{"Mode changed to: rat", "= 1/2", "rat> "}},
		{"ShowMode", "mode\n", []string{"Mode: int"}},
		{"BadMode", "mode float\n", []string{"unknown mode"}},
		{"SyntaxCaret", "1 + * 2\n", []string{"1 + * 2\n      ^", "syntax error at offset 4"}},
		{"DivisionByZero", "5 % 0\n", []string{"Error:", "division by zero"}},
		{"Status", "status\n", []string{"Current configuration", "Mode:", "FFT threshold:"}},
		{"Help", "help\n", []string{"Available commands"}},
		{"Exit", "exit\n2+2\n", []string{"Goodbye!"}},
		{"EOFWithoutNewline", "3*3", []string{"= 9", "Goodbye!"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := runREPL(t, REPLConfig{Timeout: time.Minute}, tt.input)
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output lacks %q:\n%s", s, out)
				}
			}
		})
	}
}

func TestREPLExitStopsReading(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{}, "exit\n2+2\n")
	if strings.Contains(out, "= 4") {
		t.Errorf("input after exit was evaluated:\n%s", out)
	}
}

func TestREPLVerboseShowsDigits(t *testing.T) {
	t.Parallel()
	out := runREPL(t, REPLConfig{Mode: eval.ModeInt, Verbose: true}, "10^120\n")
	if !strings.Contains(out, "121 digits in") {
		t.Errorf("verbose output lacks digit count:\n%s", out)
	}
	if strings.Contains(out, "...") {
		t.Errorf("verbose output was abbreviated:\n%s", out)
	}
}

func TestREPLCanceledContext(t *testing.T) {
	t.Parallel()
	r, err := NewREPL(REPLConfig{})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	r.SetInput(strings.NewReader("1+1\n"))
	r.SetOutput(&out)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Start(ctx)
	if !strings.Contains(out.String(), "Interrupted.") || strings.Contains(out.String(), "= 2") {
		t.Errorf("canceled session output:\n%s", out.String())
	}
}

func TestNewREPLUnknownMode(t *testing.T) {
	t.Parallel()
	if _, err := NewREPL(REPLConfig{Mode: "hex"}); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

// Not parallel: changes the process-wide FFT threshold.
func TestREPLThreshold(t *testing.T) {
	defer bigint.SetFFTThreshold(bigint.FFTThreshold())

	out := runREPL(t, REPLConfig{}, "threshold 64\nthreshold\nthreshold -3\nthreshold abc\n")
	for _, s := range []string{"FFT threshold set to: 64", "FFT threshold: 64", "Invalid threshold: -3", "Invalid threshold: abc"} {
		if !strings.Contains(out, s) {
			t.Errorf("output lacks %q:\n%s", s, out)
		}
	}
	if bigint.FFTThreshold() != 64 {
		t.Errorf("threshold = %d, want 64", bigint.FFTThreshold())
	}
}
