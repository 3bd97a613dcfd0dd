package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/bigcalc/internal/calibration"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/eval"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// runBatch evaluates the positional expressions, or the lines of a.In
// when there are none, and prints the results.
func (a *Application) runBatch(ctx context.Context, out io.Writer, source calibration.Source) int {
	ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancel()

	exprs, code := a.expressions()
	if code != apperrors.ExitSuccess {
		return code
	}

	evaluator, err := eval.New(a.Config.EvalMode(), eval.WithLogger(a.logger))
	if err != nil {
		return apperrors.HandleError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	workers := a.Config.Workers
	if workers <= 0 {
		workers = config.EstimateWorkers()
	}
	workers = min(workers, len(exprs))

	plain := !a.Config.Quiet && !a.Config.JSONOutput
	var reporter orchestration.ProgressReporter = orchestration.NullProgressReporter{}
	progressOut := io.Discard
	if plain {
		cli.PrintExecutionConfig(a.Config, len(exprs), workers, string(source), out)
		reporter = cli.CLIProgressReporter{}
		progressOut = out
	}

	mem := metrics.NewMemoryCollector()
	before := mem.Snapshot()
	results := orchestration.ExecuteBatch(ctx, evaluator, exprs, workers, reporter, progressOut)
	after := mem.Snapshot()
	a.logger.Info("batch finished",
		logging.Int("expressions", len(results)),
		logging.Int("succeeded", orchestration.SuccessCount(results)),
		logging.Uint64("allocated_bytes", after.AllocatedSince(before)),
		logging.Uint64("peak_heap_bytes", mem.PeakHeap()))

	presenter := cli.CLIResultPresenter{
		Quiet:   a.Config.Quiet,
		Verbose: a.Config.Verbose,
		JSON:    a.Config.JSONOutput,
	}
	return orchestration.AnalyzeResults(results, presenter, out)
}

func (a *Application) expressions() ([]string, int) {
	if len(a.Config.Exprs) > 0 {
		return a.Config.Exprs, apperrors.ExitSuccess
	}
	if a.In == nil {
		fmt.Fprintln(a.ErrWriter, "No expressions given. Pass them as arguments, on stdin, or use -i / --tui.")
		return nil, apperrors.ExitErrorConfig
	}
	exprs, err := orchestration.ReadExpressions(a.In)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error reading expressions: %v\n", err)
		return nil, apperrors.ExitErrorGeneric
	}
	if len(exprs) == 0 {
		fmt.Fprintln(a.ErrWriter, "No expressions given. Pass them as arguments, on stdin, or use -i / --tui.")
		return nil, apperrors.ExitErrorConfig
	}
	return exprs, apperrors.ExitSuccess
}
