package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	sync      key.Binding
	region    key.Binding
	copy      key.Binding
	complete  key.Binding
	sos       key.Binding
	chat      key.Binding
	name      key.Binding
	buildInfo key.Binding
	tab       key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:      key.NewBinding(key.WithKeys("s")),
	region:    key.NewBinding(key.WithKeys("r")),
	copy:      key.NewBinding(key.WithKeys("c")),
	complete:  key.NewBinding(key.WithKeys("d")),
	sos:       key.NewBinding(key.WithKeys("!")),
	chat:      key.NewBinding(key.WithKeys("m")),
	name:      key.NewBinding(key.WithKeys("u")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
