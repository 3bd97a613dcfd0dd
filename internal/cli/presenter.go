package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress delegates to DisplayProgress.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	DisplayProgress(wg, progressChan, total, out)
}

// CLIColorProvider supplies the active theme's colors to apperrors.
type CLIColorProvider struct{}

func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIResultPresenter implements orchestration.ResultPresenter.
//
// Quiet prints bare values, one per line. JSON prints one JSON object per
// expression. Otherwise each result is labeled and colorized, long values
// are abbreviated unless Verbose is set, and a summary table follows a
// batch of more than one expression.
type CLIResultPresenter struct {
	Quiet   bool
	Verbose bool
	JSON    bool
}

var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResult displays one successful evaluation.
func (p CLIResultPresenter) PresentResult(res orchestration.EvaluationResult, out io.Writer) {
	switch {
	case p.JSON:
		DisplayJSONResult(out, res)
	case p.Quiet:
		DisplayQuietResult(out, res)
	default:
		DisplayResult(out, res, p.Verbose)
	}
}

// DisplayResult writes a labeled result.
func DisplayResult(out io.Writer, res orchestration.EvaluationResult, verbose bool) {
	value, abbreviated := FormatValue(res.Result.Value.String(), verbose)
	fmt.Fprintf(out, "%s%s%s = %s%s%s\n",
		ui.ColorBlue(), res.Expr, ui.ColorReset(),
		ui.ColorGreen(), value, ui.ColorReset())
	if abbreviated {
		fmt.Fprintf(out, "  %s(%d digits, truncated; use -v for the full value)%s\n",
			ui.ColorGrey(), res.Result.Digits, ui.ColorReset())
	}
	if verbose {
		fmt.Fprintf(out, "  Digits: %s%d%s  Time: %s%s%s\n",
			ui.ColorCyan(), res.Result.Digits, ui.ColorReset(),
			ui.ColorYellow(), format.FormatExecutionDuration(res.Result.Duration), ui.ColorReset())
	}
}

// PresentSummary displays a status table for batches of more than one
// expression, followed by memory statistics when Verbose is set. Quiet and
// JSON output have no summary.
func (p CLIResultPresenter) PresentSummary(results []orchestration.EvaluationResult, out io.Writer) {
	if p.Quiet || p.JSON {
		return
	}
	if len(results) > 1 {
		PresentSummaryTable(results, out)
	}
	if p.Verbose {
		DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
	}
}

// PresentSummaryTable prints one row per expression with its duration and
// status. Padding is computed on the uncolored text so ANSI codes do not
// break alignment.
func PresentSummaryTable(results []orchestration.EvaluationResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Summary ---\n")

	exprWidth := len("Expression")
	durWidth := len("Duration")
	exprs := make([]string, len(results))
	durations := make([]string, len(results))
	for i, res := range results {
		exprs[i], _ = FormatValue(res.Expr, false)
		durations[i] = format.FormatExecutionDuration(res.Duration)
		if res.Duration == 0 {
			durations[i] = "< 1µs"
		}
		exprWidth = max(exprWidth, len(exprs[i]))
		durWidth = max(durWidth, len(durations[i]))
	}

	fmt.Fprintf(out, "%sExpression%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", exprWidth-len("Expression")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", durWidth-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	failed := 0
	for i, res := range results {
		status := fmt.Sprintf("%sOK%s", ui.ColorGreen(), ui.ColorReset())
		if res.Err != nil {
			failed++
			status = fmt.Sprintf("%sFAILED (exit %d)%s", ui.ColorRed(), apperrors.ExitCodeFor(res.Err), ui.ColorReset())
		}
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), exprs[i], ui.ColorReset(), padRight("", exprWidth-len(exprs[i])),
			ui.ColorYellow(), durations[i], ui.ColorReset(), padRight("", durWidth-len(durations[i])),
			status)
	}
	fmt.Fprintf(out, "%d evaluated, %d failed\n", len(results), failed)
}

func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + strings.Repeat(" ", length)
}

// HandleError reports a failed evaluation and returns its exit code.
func (p CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	if p.JSON {
		return DisplayJSONError(out, err, duration)
	}
	return apperrors.HandleError(err, duration, out, CLIColorProvider{})
}

// DisplayMemoryStats shows the process memory statistics after a batch.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", formatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", formatBytes(snap.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.GCPause())/float64(time.Millisecond))
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
