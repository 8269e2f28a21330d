package tui

import "github.com/charmbracelet/bubbles/v2/key"

// KeyMap defines the application-level key bindings. Everything else goes
// to the focused pane.
type KeyMap struct {
	Save          key.Binding
	Quit          key.Binding
	TogglePreview key.Binding
	SwitchFocus   key.Binding
	CycleLanguage key.Binding
	CycleTheme    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("ctrl+q", "quit"),
		),
		TogglePreview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "switch pane"),
		),
		CycleLanguage: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "language"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "theme"),
		),
	}
}

// ShortHelp lists the bindings shown in the title bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Quit, k.TogglePreview, k.CycleLanguage}
}
