package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/sysmon"
)

// MetricsModel shows runtime memory, session counters and a sparkline of
// recent evaluation times.
type MetricsModel struct {
	mem          metrics.MemorySnapshot
	peakHeap     uint64
	numGoroutine int
	sys          sysmon.Stats
	evaluated    int
	failed       int
	durations    *DurationRing
	width        int
}

// NewMetricsModel creates the metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{durations: NewDurationRing(64)}
}

// SetWidth updates the panel width.
func (m *MetricsModel) SetWidth(w int) { m.width = w }

// UpdateMemStats stores a memory sample.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.mem = msg.Snapshot
	m.peakHeap = msg.PeakHeap
	m.numGoroutine = msg.NumGoroutine
}

// UpdateSysStats stores a machine-wide sample.
func (m *MetricsModel) UpdateSysStats(msg SysStatsMsg) {
	m.sys = msg.Stats
}

// Record accounts for finished entries.
func (m *MetricsModel) Record(entries []Entry) {
	for _, e := range entries {
		m.evaluated++
		if e.Err != nil {
			m.failed++
			continue
		}
		m.durations.Add(e.Duration)
	}
}

// Reset clears the counters and the sparkline.
func (m *MetricsModel) Reset() {
	m.evaluated, m.failed = 0, 0
	m.durations.Clear()
}

// View renders the panel.
func (m MetricsModel) View() string {
	var b strings.Builder
	b.WriteString(formatMetricCol("Heap", formatBytes(m.mem.HeapAlloc)+" / "+formatBytes(m.mem.HeapSys)))
	b.WriteString(formatMetricCol("GC", fmt.Sprintf("%d (%.1fms)", m.mem.NumGC, float64(m.mem.GCPause())/float64(time.Millisecond))))
	b.WriteString(formatMetricCol("Goroutines", fmt.Sprintf("%d", m.numGoroutine)))
	b.WriteString(formatMetricCol("CPU", fmt.Sprintf("%.0f%%", m.sys.CPUPercent)))
	b.WriteString(formatMetricCol("RAM", fmt.Sprintf("%.0f%%", m.sys.MemPercent)))
	b.WriteString("\n")
	b.WriteString(formatMetricCol("Evaluated", fmt.Sprintf("%d", m.evaluated)))
	b.WriteString(formatMetricCol("Failed", fmt.Sprintf("%d", m.failed)))
	last := "-"
	if m.durations.Len() > 0 {
		last = format.FormatExecutionDuration(m.durations.Last())
	}
	b.WriteString(formatMetricCol("Last", last))
	b.WriteString(formatMetricCol("Peak heap", formatBytes(m.peakHeap)))
	b.WriteString("\n")
	spark := RenderSparkline(m.durations.Values(), max(m.width-6, 1))
	if spark == "" {
		spark = dimStyle.Render("no timings yet")
	} else {
		spark = sparklineStyle.Render(spark)
	}
	b.WriteString(spark)

	return panelStyle.Width(max(m.width-2, 0)).Padding(0, 1).Render(b.String())
}

func formatMetricCol(label, value string) string {
	return metricLabelStyle.Render(label+": ") + metricValueStyle.Render(value) + "  "
}

func formatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
