package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// programRef survives the model copies bubbletea makes on every Update,
// so bridge goroutines can reach the running program.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the program reference.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send forwards msg to the program. It is a no-op before SetProgram.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// TUIProgressReporter forwards batch progress to the program as
// ProgressMsg.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress drains the channel, sending one ProgressMsg per update.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(total)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}
	for update := range progressChan {
		t.ref.Send(ProgressMsg{AggregatedProgress: agg.Update(update), Generation: t.generation})
	}
}

// TUIResultPresenter collects results as history entries instead of
// writing them. It is used from a single goroutine.
type TUIResultPresenter struct {
	entries []Entry
}

var _ orchestration.ResultPresenter = (*TUIResultPresenter)(nil)

// PresentResult records a successful result.
func (t *TUIResultPresenter) PresentResult(res orchestration.EvaluationResult, _ io.Writer) {
	t.entries = append(t.entries, Entry{
		Expr:     res.Expr,
		Value:    res.Result.Value.String(),
		Digits:   res.Result.Digits,
		Duration: res.Duration,
	})
}

// PresentSummary is a no-op; the metrics panel keeps the counters.
func (t *TUIResultPresenter) PresentSummary([]orchestration.EvaluationResult, io.Writer) {}

// HandleError records a failed evaluation and returns its exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	code := apperrors.ExitCodeFor(err)
	e := Entry{Err: err, Duration: duration, ExitCode: code}
	var evalErr apperrors.EvalError
	if errors.As(err, &evalErr) {
		e.Expr = evalErr.Expr
	}
	t.entries = append(t.entries, e)
	return code
}

// Entries returns the collected entries in presentation order.
func (t *TUIResultPresenter) Entries() []Entry { return t.entries }

// SplitInput splits an input line into expressions on ';', dropping
// blank pieces.
func SplitInput(line string) []string {
	var exprs []string
	for _, part := range strings.Split(line, ";") {
		if part = strings.TrimSpace(part); part != "" {
			exprs = append(exprs, part)
		}
	}
	return exprs
}

// evaluateCmd runs exprs as one batch and reports the outcome as a
// BatchDoneMsg.
// A positive timeout bounds the whole batch.
func evaluateCmd(ctx context.Context, ref *programRef, evaluator orchestration.Evaluator, exprs []string, workers int, timeout time.Duration, gen uint64) tea.Cmd {
	return func() tea.Msg {
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		start := time.Now()
		reporter := &TUIProgressReporter{ref: ref, generation: gen}
		presenter := &TUIResultPresenter{}
		results := orchestration.ExecuteBatch(ctx, evaluator, exprs, workers, reporter, io.Discard)
		code := orchestration.AnalyzeResults(results, presenter, io.Discard)
		return BatchDoneMsg{
			Entries:    presenter.Entries(),
			ExitCode:   code,
			Duration:   time.Since(start),
			Generation: gen,
		}
	}
}
