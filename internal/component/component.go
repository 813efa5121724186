// Package component defines the contract every UI component implements.
package component

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/surface"
)

// Focus tells a component how to draw itself.
type Focus int

const (
	Normal Focus = iota
	Focused
)

func (f Focus) String() string {
	if f == Focused {
		return "focused"
	}
	return "normal"
}

// Component receives routed input and bus broadcasts and draws into a frame
// region. Components hold a bus.Publisher to talk to the rest of the UI.
type Component interface {
	// HandleKey reports whether the key was consumed.
	HandleKey(key tea.KeyMsg) (bool, error)
	HandleMouse(mouse tea.MouseMsg) error
	HandleMessage(msg bus.Message) error
	Render(s *surface.Surface, area surface.Rect, focus Focus)
}
