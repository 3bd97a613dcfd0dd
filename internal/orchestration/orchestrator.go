package orchestration

import (
	"context"
	"io"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// ExecuteBatch evaluates exprs concurrently with at most workers
// evaluations in flight (workers <= 0 means one per CPU) and returns one
// result per expression, in input order. Evaluation errors are recorded in
// the results; they do not stop the rest of the batch. Cancelling ctx makes
// the remaining evaluations fail with the context error.
func ExecuteBatch(ctx context.Context, evaluator Evaluator, exprs []string, workers int, reporter ProgressReporter, out io.Writer) []EvaluationResult {
	ctx, span := otel.Tracer("orchestration").Start(ctx, "ExecuteBatch")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.size", len(exprs)))

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	results := make([]EvaluationResult, len(exprs))
	progressChan := make(chan ProgressUpdate, len(exprs))

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(exprs), out)

	var g errgroup.Group
	g.SetLimit(workers)
	var done atomic.Int64
	for i, expr := range exprs {
		g.Go(func() error {
			start := time.Now()
			res, err := evaluator.Evaluate(ctx, expr)
			results[i] = EvaluationResult{
				Index: i, Expr: expr, Result: res, Duration: time.Since(start), Err: err,
			}
			progressChan <- ProgressUpdate{Index: i, Done: int(done.Add(1)), Total: len(exprs), Err: err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeResults presents every result in input order and returns the exit
// code of the first failure, or apperrors.ExitSuccess.
func AnalyzeResults(results []EvaluationResult, presenter ResultPresenter, out io.Writer) int {
	exitCode := apperrors.ExitSuccess
	for _, res := range results {
		if res.Err != nil {
			code := presenter.HandleError(res.Err, res.Duration, out)
			if exitCode == apperrors.ExitSuccess {
				exitCode = code
			}
			continue
		}
		presenter.PresentResult(res, out)
	}
	presenter.PresentSummary(results, out)
	return exitCode
}

// SuccessCount returns how many results carry no error.
func SuccessCount(results []EvaluationResult) int {
	n := 0
	for _, r := range results {
		if r.Err == nil {
			n++
		}
	}
	return n
}
