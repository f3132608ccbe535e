package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
	Reset  key.Binding
	Mode   key.Binding
	Share  key.Binding
	Filter key.Binding
	Motion key.Binding
	Sound  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Share:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "share")),
		Filter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
		Motion: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "motion")),
		Sound:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "sound")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
