package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the dashboard's key bindings; it doubles as the footer's
// help.KeyMap.
type KeyMap struct {
	Quit key.Binding
}

// Keys is the active key map.
var Keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "Q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Quit} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
