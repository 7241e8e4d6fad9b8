package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Cancel  key.Binding
	Animate key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Animate: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle animation")),
		Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy order")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Animate, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Cancel, k.Animate, k.Copy},
		{k.Help, k.Quit},
	}
}
