package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	unlock  key.Binding
	enroll  key.Binding
	lock    key.Binding
	signOut key.Binding
	profile key.Binding
	version key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	unlock:  key.NewBinding(key.WithKeys("u")),
	enroll:  key.NewBinding(key.WithKeys("e")),
	lock:    key.NewBinding(key.WithKeys("l")),
	signOut: key.NewBinding(key.WithKeys("o")),
	profile: key.NewBinding(key.WithKeys("p")),
	version: key.NewBinding(key.WithKeys("v")),
}
