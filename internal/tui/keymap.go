package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the calculator's key bindings.
type KeyMap struct {
	Evaluate   key.Binding
	Clear      key.Binding
	ToggleMode key.Binding
	// Quit only applies while the input is empty, so 'q' can be typed.
	Quit      key.Binding
	ForceQuit key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Evaluate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
		Clear:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		ToggleMode: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "int/rat")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Evaluate, k.ToggleMode, k.Clear, k.Up, k.Quit}
}
