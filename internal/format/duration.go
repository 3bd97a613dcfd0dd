package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders an evaluation time. Sub-millisecond values
// print in whole microseconds and sub-second values in whole milliseconds so
// short results stay readable in the summary table.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}
