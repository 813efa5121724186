// Package events turns terminal input and OS signals into raw events on one
// shared, unbounded channel.
package events

import (
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
)

// Event is a raw notification produced by a Source. Key, Mouse and
// Unsupported are the input variants; Signal is the OS-signal variant.
type Event interface {
	isEvent()
}

// Key is a decoded key press.
type Key struct {
	Msg tea.KeyMsg
}

// Mouse is a decoded mouse event.
type Mouse struct {
	Msg tea.MouseMsg
}

// Unsupported is any other decoded terminal input (focus reports, resize
// notifications from the backend, resume notices).
type Unsupported struct {
	Msg tea.Msg
}

// Signal is an OS signal from the fixed registration set.
type Signal struct {
	Sig syscall.Signal
}

func (Key) isEvent()         {}
func (Mouse) isEvent()       {}
func (Unsupported) isEvent() {}
func (Signal) isEvent()      {}

// Decode maps a terminal message onto an input event. It reports false for
// messages that carry nothing to forward.
func Decode(msg tea.Msg) (Event, bool) {
	switch msg := msg.(type) {
	case nil:
		return nil, false
	case tea.KeyMsg:
		return Key{Msg: msg}, true
	case tea.MouseMsg:
		return Mouse{Msg: msg}, true
	default:
		return Unsupported{Msg: msg}, true
	}
}
