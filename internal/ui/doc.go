// Package ui holds the color themes shared by the CLI presenter and the
// TUI. ANSI codes serve plain terminal output; lipgloss colors serve the
// TUI. Colors are disabled by --no-color or the NO_COLOR variable.
package ui
