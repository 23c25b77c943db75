package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	toggle    key.Binding
	quit      key.Binding
	refresh   key.Binding
	signOut   key.Binding
	buildInfo key.Binding
}

var keys = keyMap{
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	toggle:    key.NewBinding(key.WithKeys("ctrl+t")),
	quit:      key.NewBinding(key.WithKeys("q")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	signOut:   key.NewBinding(key.WithKeys("o")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
}
