package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/sysmon"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	m := NewMetricsModel()
	msg := MemStatsMsg{
		Snapshot:     metrics.MemorySnapshot{HeapAlloc: 50 << 20, HeapSys: 80 << 20, NumGC: 10},
		PeakHeap:     64 << 20,
		NumGoroutine: 8,
	}
	m.UpdateMemStats(msg)

	if m.peakHeap != msg.PeakHeap {
		t.Errorf("peakHeap = %d, want %d", m.peakHeap, msg.PeakHeap)
	}
	if m.mem != msg.Snapshot {
		t.Errorf("mem = %+v, want %+v", m.mem, msg.Snapshot)
	}
	if m.numGoroutine != 8 {
		t.Errorf("numGoroutine = %d, want 8", m.numGoroutine)
	}
}

func TestMetricsModel_UpdateSysStats(t *testing.T) {
	m := NewMetricsModel()
	m.SetWidth(100)
	m.UpdateSysStats(SysStatsMsg{Stats: sysmon.Stats{CPUPercent: 37.4, MemPercent: 61.6}})

	view := m.View()
	if !strings.Contains(view, "CPU: 37%") {
		t.Errorf("expected CPU usage in view:\n%s", view)
	}
	if !strings.Contains(view, "RAM: 62%") {
		t.Errorf("expected RAM usage in view:\n%s", view)
	}
}

func TestMetricsModel_Record(t *testing.T) {
	m := NewMetricsModel()
	m.Record([]Entry{
		{Expr: "1+1", Value: "2", Duration: time.Millisecond},
		{Expr: "1/0", Err: errors.New("division by zero")},
		{Expr: "2^10", Value: "1024", Duration: 2 * time.Millisecond},
	})

	if m.evaluated != 3 || m.failed != 1 {
		t.Errorf("evaluated=%d failed=%d, want 3 and 1", m.evaluated, m.failed)
	}
	if m.durations.Len() != 2 {
		t.Errorf("durations recorded = %d, want 2 (failures excluded)", m.durations.Len())
	}
	if m.durations.Last() != 2*time.Millisecond {
		t.Errorf("last duration = %v, want 2ms", m.durations.Last())
	}

	m.Reset()
	if m.evaluated != 0 || m.failed != 0 || m.durations.Len() != 0 {
		t.Error("Reset did not clear the counters")
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel()
	m.SetWidth(100)
	m.UpdateMemStats(MemStatsMsg{
		Snapshot:     metrics.MemorySnapshot{HeapAlloc: 50 << 20, HeapSys: 80 << 20, NumGC: 10, PauseTotalNs: 2_500_000},
		PeakHeap:     72 << 20,
		NumGoroutine: 8,
	})

	view := m.View()
	for _, want := range []string{"Heap", "50.0 MiB", "Peak", "72.0 MiB", "10 (2.5ms)", "Goroutines", "Evaluated", "no timings yet"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m.Record([]Entry{{Value: "1", Duration: time.Millisecond}})
	if strings.Contains(m.View(), "no timings yet") {
		t.Error("expected the sparkline once a timing is recorded")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		input uint64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"one KiB", 1024, "1.0 KiB"},
		{"fractional", 1536, "1.5 KiB"},
		{"MiB", 3 << 20, "3.0 MiB"},
		{"GiB", 2 << 30, "2.0 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBytes(tt.input); got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
