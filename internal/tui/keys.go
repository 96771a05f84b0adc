package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up             key.Binding
	down           key.Binding
	enter          key.Binding
	esc            key.Binding
	tab            key.Binding
	backtab        key.Binding
	quit           key.Binding
	forceQuit      key.Binding
	logout         key.Binding
	toggleCritical key.Binding
	toggleApproach key.Binding
	toggleSafe     key.Binding
	newItem        key.Binding
	edit           key.Binding
	archive        key.Binding
	archiveAll     key.Binding
	delete         key.Binding
	deleteAll      key.Binding
	switchView     key.Binding
	copy           key.Binding
	reload         key.Binding
	version        key.Binding
	yes            key.Binding
	no             key.Binding
}

var keys = keyMap{
	up:             key.NewBinding(key.WithKeys("up", "k")),
	down:           key.NewBinding(key.WithKeys("down", "j")),
	enter:          key.NewBinding(key.WithKeys("enter")),
	esc:            key.NewBinding(key.WithKeys("esc")),
	tab:            key.NewBinding(key.WithKeys("tab")),
	backtab:        key.NewBinding(key.WithKeys("shift+tab")),
	quit:           key.NewBinding(key.WithKeys("q", "ctrl+c")),
	forceQuit:      key.NewBinding(key.WithKeys("ctrl+c")),
	logout:         key.NewBinding(key.WithKeys("l")),
	toggleCritical: key.NewBinding(key.WithKeys("1")),
	toggleApproach: key.NewBinding(key.WithKeys("2")),
	toggleSafe:     key.NewBinding(key.WithKeys("3")),
	newItem:        key.NewBinding(key.WithKeys("n")),
	edit:           key.NewBinding(key.WithKeys("e")),
	archive:        key.NewBinding(key.WithKeys("a")),
	archiveAll:     key.NewBinding(key.WithKeys("A")),
	delete:         key.NewBinding(key.WithKeys("d")),
	deleteAll:      key.NewBinding(key.WithKeys("D")),
	switchView:     key.NewBinding(key.WithKeys("v")),
	copy:           key.NewBinding(key.WithKeys("c")),
	reload:         key.NewBinding(key.WithKeys("r")),
	version:        key.NewBinding(key.WithKeys("i")),
	yes:            key.NewBinding(key.WithKeys("y")),
	no:             key.NewBinding(key.WithKeys("n", "esc")),
}
