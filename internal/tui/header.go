package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// HeaderModel is the top bar: title and version on the left, evaluation
// mode and FFT threshold on the right.
type HeaderModel struct {
	version   string
	mode      string
	threshold int
	busy      bool
	width     int
}

// NewHeaderModel creates a header.
func NewHeaderModel(version, mode string, threshold int) HeaderModel {
	return HeaderModel{version: version, mode: mode, threshold: threshold}
}

// SetMode records the active evaluation mode.
func (h *HeaderModel) SetMode(mode string) { h.mode = mode }

// SetBusy toggles the running indicator.
func (h *HeaderModel) SetBusy(busy bool) { h.busy = busy }

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) { h.width = w }

// View renders the header.
func (h HeaderModel) View() string {
	title := "bigcalc"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	left := titleStyle.Render(title)

	status := statusReadyStyle.Render("ready")
	if h.busy {
		status = statusBusyStyle.Render("running")
	}
	right := dimStyle.Render("mode ") + accentStyle.Render(h.mode) +
		dimStyle.Render(fmt.Sprintf(" | fft %d | ", h.threshold)) + status

	gap := h.width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	return headerStyle.Render(left + spaces(gap) + right)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
