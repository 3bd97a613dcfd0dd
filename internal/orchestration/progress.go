package orchestration

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// ProgressAggregator turns per-expression completion updates into batch
// progress and an ETA. Both the CLI spinner and the TUI use it.
type ProgressAggregator struct {
	state  *format.ProgressWithETA
	total  int
	failed int
}

// NewProgressAggregator creates an aggregator for a batch of total
// expressions. It returns nil if total <= 0.
func NewProgressAggregator(total int) *ProgressAggregator {
	if total <= 0 {
		return nil
	}
	return &ProgressAggregator{state: format.NewProgressWithETA(total), total: total}
}

// AggregatedProgress is the batch state after one update.
type AggregatedProgress struct {
	Done     int
	Total    int
	Failed   int
	Progress float64
	ETA      time.Duration
}

// Update records one completion.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if update.Err != nil {
		a.failed++
	}
	progress, eta := a.state.Complete()
	return AggregatedProgress{
		Done:     update.Done,
		Total:    a.total,
		Failed:   a.failed,
		Progress: progress,
		ETA:      eta,
	}
}

// Progress returns the completed fraction without updating.
func (a *ProgressAggregator) Progress() float64 { return a.state.Progress() }

// GetETA returns the current ETA without updating.
func (a *ProgressAggregator) GetETA() time.Duration { return a.state.GetETA() }

// Total returns the batch size.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel reads all updates from the channel and discards them.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
