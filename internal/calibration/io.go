package calibration

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/ui"
)

func printCalibrationResults(out io.Writer, ms []Measurement, best int) {
	fmt.Fprintf(out, "\n--- Calibration Summary ---\n")
	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintf(tw, "  %sGroups%s\t│ %sSchoolbook%s\t│ %sFFT%s\n",
		ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())
	fmt.Fprintf(tw, "  %s\t┼%s\t┼%s\n", strings.Repeat("─", 8), strings.Repeat("─", 14), strings.Repeat("─", 14))
	for _, m := range ms {
		fft := format.FormatExecutionDuration(m.FFT)
		if m.FFTWins() {
			fft = ui.ColorGreen() + fft + ui.ColorReset()
		}
		marker := ""
		if m.Groups == best {
			marker = fmt.Sprintf(" %s(threshold)%s", ui.ColorGreen(), ui.ColorReset())
		}
		fmt.Fprintf(tw, "  %s%d%s\t│ %s\t│ %s%s\n",
			ui.ColorCyan(), m.Groups, ui.ColorReset(),
			format.FormatExecutionDuration(m.Schoolbook), fft, marker)
	}
	tw.Flush()
}

func printCalibrationOutput(out io.Writer, p *CalibrationProfile) {
	fmt.Fprintf(out, "\n%sCalibration complete%s in %s: FFT threshold=%s%d%s digit groups (%d decimal digits)\n",
		ui.ColorGreen(), ui.ColorReset(), p.CalibrationTime,
		ui.ColorYellow(), p.OptimalFFTThreshold, ui.ColorReset(), p.OptimalFFTThreshold*bigint.GroupWidth)
}
