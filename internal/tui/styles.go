package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/ui"
)

// Initialized from the ui theme by initTUIStyles.
var (
	panelStyle       lipgloss.Style
	headerStyle      lipgloss.Style
	titleStyle       lipgloss.Style
	dimStyle         lipgloss.Style
	accentStyle      lipgloss.Style
	exprStyle        lipgloss.Style
	valueStyle       lipgloss.Style
	errorStyle       lipgloss.Style
	metricLabelStyle lipgloss.Style
	metricValueStyle lipgloss.Style
	sparklineStyle   lipgloss.Style
	footerKeyStyle   lipgloss.Style
	footerDescStyle  lipgloss.Style
	statusBusyStyle  lipgloss.Style
	statusReadyStyle lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds the styles from the current ui theme. Run calls
// it again after the theme has been initialized.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	accentStyle = lipgloss.NewStyle().Foreground(t.Accent)
	exprStyle = lipgloss.NewStyle().Foreground(t.Border)
	valueStyle = lipgloss.NewStyle().Foreground(t.Success)
	errorStyle = lipgloss.NewStyle().Foreground(t.Error)
	metricLabelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	metricValueStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	sparklineStyle = lipgloss.NewStyle().Foreground(t.Warning)
	footerKeyStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(t.Dim)
	statusBusyStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	statusReadyStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}
