package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the menu-level bindings shown by the help bubble.
type keyMap struct {
	Type     key.Binding
	Cycle    key.Binding
	Mistyped key.Binding
	Clear    key.Binding
	Track    key.Binding
	Notices  key.Binding
	Help     key.Binding
	Quit     key.Binding
	Back     key.Binding
	Restart  key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Type: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "start typing"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "cycle mode"),
		),
		Mistyped: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "mistyped chars"),
		),
		Clear: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "clear mistyped"),
		),
		Track: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle tracking"),
		),
		Notices: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle notices"),
		),
		Help: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "new target"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Type, k.Cycle, k.Mistyped, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Type, k.Cycle, k.Restart, k.Back},
		{k.Mistyped, k.Clear, k.Track, k.Notices},
		{k.Help, k.Quit},
	}
}
