package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/format"
)

// maxHistoryEntries bounds the scroll-back.
const maxHistoryEntries = 500

// Entry is one evaluated expression in the scroll-back.
type Entry struct {
	Expr     string
	Value    string
	Digits   int
	Duration time.Duration
	Err      error
	ExitCode int
}

// HistoryModel is the scroll-back panel. offset counts lines scrolled up
// from the bottom.
type HistoryModel struct {
	entries []Entry
	offset  int
	width   int
	height  int
}

// SetSize updates the panel dimensions, borders included.
func (h *HistoryModel) SetSize(w, ht int) {
	h.width, h.height = w, ht
}

// Append adds entries and scrolls back to the newest line.
func (h *HistoryModel) Append(entries ...Entry) {
	h.entries = append(h.entries, entries...)
	if over := len(h.entries) - maxHistoryEntries; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
	h.offset = 0
}

// Entries returns the recorded entries, oldest first.
func (h *HistoryModel) Entries() []Entry { return h.entries }

// Clear empties the scroll-back.
func (h *HistoryModel) Clear() {
	h.entries = nil
	h.offset = 0
}

// Scroll moves the view by delta lines; positive scrolls toward older
// entries.
func (h *HistoryModel) Scroll(delta int) {
	limit := max(len(h.lines())-h.innerHeight(), 0)
	h.offset = min(max(h.offset+delta, 0), limit)
}

// Page returns the number of lines in one screen of the panel.
func (h *HistoryModel) Page() int { return max(h.innerHeight(), 1) }

func (h *HistoryModel) innerHeight() int { return max(h.height-2, 0) }

func (h *HistoryModel) innerWidth() int { return max(h.width-4, 8) }

func (h *HistoryModel) lines() []string {
	width := h.innerWidth()
	var out []string
	for _, e := range h.entries {
		out = append(out, exprStyle.Render("> "+e.Expr))
		if e.Err != nil {
			out = append(out, errorStyle.Render(truncateLine("  "+e.Err.Error(), width)))
			continue
		}
		out = append(out, valueStyle.Render(truncateLine("  = "+e.Value, width)))
		out = append(out, dimStyle.Render(fmt.Sprintf("  %d digits in %s", e.Digits, format.FormatExecutionDuration(e.Duration))))
	}
	return out
}

// truncateLine shortens s to width runes, marking the cut with an
// ellipsis.
func truncateLine(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// View renders the visible window of the scroll-back.
func (h HistoryModel) View() string {
	lines := h.lines()
	height := h.innerHeight()
	end := len(lines) - h.offset
	start := max(end-height, 0)
	visible := lines[start:end]
	if len(lines) == 0 {
		visible = []string{dimStyle.Render("Type an expression and press enter. Separate several with ';'.")}
	}
	body := strings.Join(visible, "\n")
	return panelStyle.
		Width(max(h.width-2, 0)).
		Height(height).
		Padding(0, 1).
		Render(lipgloss.NewStyle().MaxHeight(height).Render(body))
}
