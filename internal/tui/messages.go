package tui

import (
	"time"

	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/sysmon"
)

// TickMsg drives the periodic memory sampling.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Snapshot     metrics.MemorySnapshot
	PeakHeap     uint64
	NumGoroutine int
}

// SysStatsMsg carries a machine-wide usage sample.
type SysStatsMsg struct {
	sysmon.Stats
}

// ProgressMsg reports batch progress while a multi-expression input runs.
type ProgressMsg struct {
	orchestration.AggregatedProgress
	Generation uint64
}

// BatchDoneMsg carries the entries of a finished input line.
type BatchDoneMsg struct {
	Entries    []Entry
	ExitCode   int
	Duration   time.Duration
	Generation uint64
}

// ContextCancelledMsg is sent when the session context ends.
type ContextCancelledMsg struct {
	Err error
}
