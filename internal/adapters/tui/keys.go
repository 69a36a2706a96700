package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Build   key.Binding
	Dismiss key.Binding
	Scroll  key.Binding
	Quit    key.Binding
	Force   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Build: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "build"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter", "dismiss"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown", "home", "end"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Force: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Build, k.Scroll, k.Dismiss, k.Quit, k.Force}
}
