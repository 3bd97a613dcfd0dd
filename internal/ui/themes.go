package ui

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the raw escape sequences used by the line-oriented output
// (REPL, batch tables, error reports).
type Theme struct {
	Name      string
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Info      string
	Bold      string
	Underline string
	Reset     string
}

func fg256(code int) string { return fmt.Sprintf("\033[38;5;%dm", code) }

// palette builds a Theme from 256-color codes given in the order
// primary, secondary, success, warning, error, info.
func palette(name string, codes [6]int) Theme {
	return Theme{
		Name:      name,
		Primary:   fg256(codes[0]),
		Secondary: fg256(codes[1]),
		Success:   fg256(codes[2]),
		Warning:   fg256(codes[3]),
		Error:     fg256(codes[4]),
		Info:      fg256(codes[5]),
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}
}

var (
	DarkTheme    = palette("dark", [6]int{39, 245, 82, 220, 196, 141})
	LightTheme   = palette("light", [6]int{27, 240, 28, 130, 124, 54})
	NoColorTheme = Theme{Name: "none"}

	themesByName = map[string]Theme{
		DarkTheme.Name:    DarkTheme,
		LightTheme.Name:   LightTheme,
		NoColorTheme.Name: NoColorTheme,
	}

	active atomic.Pointer[Theme]
)

func init() { SetCurrentTheme(DarkTheme) }

// TUITheme is the lipgloss palette of the full-screen dashboard.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

var (
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#4488FF"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#e0af68"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
	}

	LightTUITheme = TUITheme{
		Text:    lipgloss.Color("#202020"),
		Border:  lipgloss.Color("#1F5FBF"),
		Accent:  lipgloss.Color("#B35900"),
		Success: lipgloss.Color("#2E7D32"),
		Warning: lipgloss.Color("#9A6700"),
		Error:   lipgloss.Color("#B00020"),
		Dim:     lipgloss.Color("#8A8A8A"),
	}

	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
	}
)

// GetCurrentTUITheme maps the active line theme onto its dashboard palette.
func GetCurrentTUITheme() TUITheme {
	switch GetCurrentTheme().Name {
	case NoColorTheme.Name:
		return NoColorTUITheme
	case LightTheme.Name:
		return LightTUITheme
	default:
		return DarkTUITheme
	}
}

func GetCurrentTheme() Theme { return *active.Load() }

func SetCurrentTheme(t Theme) { active.Store(&t) }

// SetTheme selects "dark", "light" or "none"; anything else means dark.
func SetTheme(name string) {
	t, ok := themesByName[name]
	if !ok {
		t = DarkTheme
	}
	SetCurrentTheme(t)
}

// InitTheme honours both the --no-color flag and the NO_COLOR convention
// (https://no-color.org/).
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetTheme(NoColorTheme.Name)
		return
	}
	SetTheme(DarkTheme.Name)
}
