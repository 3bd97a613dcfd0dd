//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

const (
	// TruncationLimit is the digit count above which a value is shown
	// abbreviated unless verbose output is requested.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of an
	// abbreviated value.
	DisplayEdges = 25
	// ProgressRefreshRate is the spinner redraw interval.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with a batch progress bar and ETA until
// progressChan is closed. Batches of a single expression show the spinner
// only. It calls wg.Done on return.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(total)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(" Evaluating...")
	s.Start()
	defer s.Stop()

	for update := range progressChan {
		p := agg.Update(update)
		if total == 1 {
			continue
		}
		suffix := fmt.Sprintf(" %d/%d %s", p.Done, p.Total,
			format.FormatProgressBarWithETA(p.Progress, p.ETA, ProgressBarWidth))
		if p.Failed > 0 {
			suffix += fmt.Sprintf(" %s(%d failed)%s", ui.ColorRed(), p.Failed, ui.ColorReset())
		}
		s.UpdateSuffix(suffix)
	}
}

// FormatValue abbreviates a decimal string longer than TruncationLimit to
// its first and last DisplayEdges characters. The boolean reports whether
// the value was abbreviated.
func FormatValue(s string, verbose bool) (string, bool) {
	if verbose || len(s) <= TruncationLimit {
		return s, false
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:], true
}
