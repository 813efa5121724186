package fm

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the global keymap, consulted only for keys the routing target
// did not handle.
type KeyMap struct {
	Quit        key.Binding
	Interrupt   key.Binding
	Redraw      key.Binding
	Suspend     key.Binding
	SwitchPanel key.Binding
}

// DefaultKeyMap returns the global bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "Q", "f10"), key.WithHelp("q/F10", "quit")),
		Interrupt:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "interrupt")),
		Redraw:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "redraw")),
		Suspend:     key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "suspend")),
		SwitchPanel: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "other panel")),
	}
}
