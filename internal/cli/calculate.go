package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig describes the run about to start: the batch size,
// mode, limits, environment and the active FFT threshold with its origin.
func PrintExecutionConfig(cfg config.AppConfig, exprCount, workers int, thresholdSource string, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Evaluating %s%d%s expression(s) in %s%s%s mode with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), exprCount, ui.ColorReset(),
		ui.ColorGreen(), cfg.EvalMode(), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, %s%d%s worker(s), Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), workers, ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "FFT multiplication from %s%d%s digit groups (%s).\n",
		ui.ColorCyan(), bigint.FFTThreshold(), ui.ColorReset(), thresholdSource)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
