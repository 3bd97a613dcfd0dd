package app

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		args     []string
		expected bool
	}{
		{"empty", []string{}, false},
		{"expression only", []string{"2^10"}, false},
		{"long flag", []string{"--version"}, true},
		{"short flag", []string{"-V"}, true},
		{"single dash", []string{"-version"}, true},
		{"after other flags", []string{"-mode", "rat", "--version"}, true},
		{"similar flag", []string{"--verbose"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := HasVersionFlag(tc.args); got != tc.expected {
				t.Errorf("HasVersionFlag(%v) = %v, want %v", tc.args, got, tc.expected)
			}
		})
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()

	for _, want := range []string{"bigcalc " + Version, "Commit:", runtime.Version(), runtime.GOOS + "/" + runtime.GOARCH} {
		if !strings.Contains(out, want) {
			t.Errorf("PrintVersion output missing %q:\n%s", want, out)
		}
	}
}
