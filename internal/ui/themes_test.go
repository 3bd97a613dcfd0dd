package ui

import "testing"

// Not parallel: the theme is process-wide.
func TestSetTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	tests := []struct {
		name string
		want string
	}{
		{"light", "light"},
		{"none", "none"},
		{"dark", "dark"},
		{"unknown", "dark"},
	}
	for _, tt := range tests {
		SetTheme(tt.name)
		if got := GetCurrentTheme().Name; got != tt.want {
			t.Errorf("SetTheme(%q) selected %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	InitTheme(true)
	if ColorRed() != "" || ColorReset() != "" {
		t.Error("InitTheme(true) left colors enabled")
	}
	if GetCurrentTUITheme() != NoColorTUITheme {
		t.Error("TUI theme should follow the no-color theme")
	}

	t.Setenv("NO_COLOR", "1")
	InitTheme(false)
	if GetCurrentTheme().Name != "none" {
		t.Error("NO_COLOR was ignored")
	}
}

func TestColorsFollowTheme(t *testing.T) {
	defer SetCurrentTheme(GetCurrentTheme())

	SetCurrentTheme(DarkTheme)
	if ColorGreen() != DarkTheme.Success || ColorUnderline() != DarkTheme.Underline {
		t.Error("color accessors do not read the active theme")
	}
	if GetCurrentTUITheme() != DarkTUITheme {
		t.Error("dark theme should select the dark TUI palette")
	}
}
