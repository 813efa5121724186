package panel

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings a panel consumes.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Home      key.Binding
	End       key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Open      key.Binding
	Parent    key.Binding
	View      key.Binding
	Goto      key.Binding
	Search    key.Binding
	HexSearch key.Binding
	Next      key.Binding
	Prev      key.Binding
}

// DefaultKeyMap returns the panel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Home:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first")),
		End:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Parent:    key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "parent")),
		View:      key.NewBinding(key.WithKeys("f3"), key.WithHelp("F3", "view")),
		Goto:      key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "goto")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		HexSearch: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "hex search")),
		Next:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		Prev:      key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous match")),
	}
}
