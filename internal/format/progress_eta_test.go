package format

import (
	"strings"
	"testing"
	"time"
)

func TestNewProgressWithETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(3)

	if p.total != 3 || p.done != 0 {
		t.Errorf("total/done = %d/%d, want 3/0", p.total, p.done)
	}
	if p.startTime.IsZero() {
		t.Error("startTime should not be zero")
	}
	if got := p.GetETA(); got != 0 {
		t.Errorf("initial ETA = %v, want 0", got)
	}
}

func TestComplete(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(4)

	progress, eta := p.Complete()
	if progress != 0.25 {
		t.Errorf("progress = %f, want 0.25", progress)
	}
	if eta < 0 {
		t.Errorf("ETA should not be negative, got %v", eta)
	}

	for i := 0; i < 5; i++ {
		progress, eta = p.Complete()
	}
	if progress != 1 || eta != 0 {
		t.Errorf("after overrun: progress = %f, eta = %v; want 1, 0", progress, eta)
	}
}

func TestGetETA(t *testing.T) {
	t.Parallel()
	p := NewProgressWithETA(2)
	p.done = 1
	p.progressRate = 0.1 // 10% per second

	eta := p.GetETA()
	if want := 5 * time.Second; eta < want-time.Second || eta > want+time.Second {
		t.Errorf("ETA = %v, want approximately %v", eta, want)
	}
}

func TestEmptyBatchIsComplete(t *testing.T) {
	t.Parallel()
	if got := NewProgressWithETA(0).Progress(); got != 1 {
		t.Errorf("Progress() = %f, want 1", got)
	}
}

func TestFormatETA(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name     string
		eta      time.Duration
		expected string
	}{
		{"Zero duration", 0, "calculating..."},
		{"Negative duration", -time.Second, "calculating..."},
		{"Less than a second", 500 * time.Millisecond, "< 1s"},
		{"Multiple seconds", 45 * time.Second, "45s"},
		{"One minute", time.Minute, "1m"},
		{"Minutes and seconds", 2*time.Minute + 30*time.Second, "2m30s"},
		{"Hours and minutes", time.Hour + 15*time.Minute, "1h15m"},
		{"Hours only", 2 * time.Hour, "2h"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatETA(tc.eta); got != tc.expected {
				t.Errorf("FormatETA(%v) = %q, want %q", tc.eta, got, tc.expected)
			}
		})
	}
}

func TestFormatProgressBarWithETA(t *testing.T) {
	t.Parallel()
	got := FormatProgressBarWithETA(0.5, 30*time.Second, 10)
	if got != " 50.00% [█████░░░░░] ETA: 30s" {
		t.Errorf("FormatProgressBarWithETA = %q", got)
	}
	if bar := ProgressBar(1.5, 4); bar != strings.Repeat("█", 4) {
		t.Errorf("ProgressBar(1.5) = %q", bar)
	}
	if bar := ProgressBar(-1, 4); bar != strings.Repeat("░", 4) {
		t.Errorf("ProgressBar(-1) = %q", bar)
	}
}

func TestFormatExecutionDuration(t *testing.T) {
	t.Parallel()
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
	}
	for _, tt := range tests {
		if got := FormatExecutionDuration(tt.d); got != tt.want {
			t.Errorf("FormatExecutionDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
