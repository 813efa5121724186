// Package dialog implements the modal dialogs: message boxes for errors,
// warnings and information, and the goto, text search and hex search input
// dialogs. A dialog captures every key while it is open and closes itself by
// publishing bus.CloseDialog.
package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/surface"
)

// KeyMap lists the dialog bindings.
type KeyMap struct {
	Confirm   key.Binding
	Cancel    key.Binding
	Dismiss   key.Binding
	CycleType key.Binding

	Case      key.Binding
	Words     key.Binding
	Regex     key.Binding
	Fuzzy     key.Binding
	Backwards key.Binding
}

// DefaultKeyMap returns the dialog bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Dismiss:   key.NewBinding(key.WithKeys("enter", "esc", " "), key.WithHelp("enter", "close")),
		CycleType: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "mode")),

		Case:      key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "case sensitive")),
		Words:     key.NewBinding(key.WithKeys("alt+w"), key.WithHelp("alt+w", "whole words")),
		Regex:     key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "regular expression")),
		Fuzzy:     key.NewBinding(key.WithKeys("alt+f"), key.WithHelp("alt+f", "fuzzy")),
		Backwards: key.NewBinding(key.WithKeys("alt+b"), key.WithHelp("alt+b", "backwards")),
	}
}

// ignore is the shared message handler: no dialog reacts to bus traffic.
func ignore(msg bus.Message) error {
	switch msg.(type) {
	case bus.Error, bus.Warning, bus.Info, bus.CloseDialog,
		bus.FileInfo, bus.ToggleHex, bus.Highlight,
		bus.FromHexOffset, bus.ToHexOffset, bus.HVStartSearch, bus.HVSearchNext, bus.HVSearchPrev,
		bus.DlgGoto, bus.Goto, bus.DlgTextSearch, bus.TextSearch, bus.DlgHexSearch, bus.HexSearch:
	}
	return nil
}

// closeWith publishes msgs followed by CloseDialog.
func closeWith(pub bus.Publisher, msgs ...bus.Message) error {
	for _, m := range msgs {
		if err := pub.Publish(m); err != nil {
			return err
		}
	}
	return pub.Publish(bus.CloseDialog{})
}

// drawBox paints a framed box of the given width centered in area, with a
// shadow, and returns its rectangle.
func drawBox(s *surface.Surface, area surface.Rect, width int, title string, body []string, style, shadow lipgloss.Style) surface.Rect {
	r := surface.Centered(width, len(body)+2, area)
	if r.Empty() {
		return r
	}
	inner := max(0, r.Width-2)
	lines := make([]string, len(body))
	for i, line := range body {
		lines[i] = styled(style, line, inner)
	}
	s.Fill(r, style)
	s.Draw(r, surface.Frame(r.Width, r.Height, style.Bold(true).Render(title), lines, style))
	s.Shadow(r, shadow)
	return r
}

func styled(style lipgloss.Style, line string, width int) string {
	line = ansi.Truncate(line, width, "")
	return style.Render(line + strings.Repeat(" ", max(0, width-ansi.StringWidth(line))))
}

func center(text string, width int) string {
	pad := max(0, width-ansi.StringWidth(text)) / 2
	return strings.Repeat(" ", pad) + text
}

// newInput returns a focused text input. The cursor does not blink: dialogs
// run outside the bubbletea update loop, so its commands are dropped.
func newInput(value string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = limit
	in.Cursor.SetMode(cursor.CursorStatic)
	in.SetValue(value)
	in.Focus()
	return in
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
