package orchestration

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/bigcalc/internal/eval"
)

// Evaluator evaluates one expression. *eval.Evaluator implements it.
type Evaluator interface {
	Evaluate(ctx context.Context, expr string) (eval.Result, error)
}

// EvaluationResult is the outcome of one expression of a batch.
type EvaluationResult struct {
	// Index is the position of the expression in the batch input.
	Index int
	// Expr is the expression text.
	Expr string
	// Result holds the value. It is the zero Result if Err is set.
	Result eval.Result
	// Duration is the wall time spent on the expression, including
	// queueing behind the worker limit.
	Duration time.Duration
	// Err is the evaluation error, if any.
	Err error
}

// ProgressUpdate is sent once per finished expression.
type ProgressUpdate struct {
	Index int
	Done  int
	Total int
	Err   error
}

// ProgressReporter displays batch progress. DisplayProgress runs in its
// own goroutine until progressChan is closed and then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter drains the progress channel without output.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders batch results.
type ResultPresenter interface {
	// PresentResult displays one successful result.
	PresentResult(result EvaluationResult, out io.Writer)
	// PresentSummary displays the batch summary after all results.
	PresentSummary(results []EvaluationResult, out io.Writer)
	// HandleError reports a failed evaluation and returns its exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
