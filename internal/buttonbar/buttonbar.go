// Package buttonbar draws the function-key bar at the bottom of the screen.
package buttonbar

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

// Labels are the function-key captions, F1 first.
var Labels = []string{" ", " ", "View", "Edit", "Copy", "Move", "Mkdir", "Delete", " ", "Quit"}

// ButtonBar shows one button per label and highlights the one held down
// with the mouse.
type ButtonBar struct {
	styles  theme.Styles
	labels  []string
	area    surface.Rect // hit-test cache from the last Render
	pressed int
}

var _ component.Component = (*ButtonBar)(nil)

// New returns a button bar for labels.
func New(labels []string, styles theme.Styles) *ButtonBar {
	return &ButtonBar{
		styles:  styles,
		labels:  append([]string(nil), labels...),
		pressed: -1,
	}
}

// Pressed returns the index of the button held down, or -1.
func (b *ButtonBar) Pressed() int {
	return b.pressed
}

// HandleKey implements component.Component. The bar takes no keys.
func (b *ButtonBar) HandleKey(tea.KeyMsg) (bool, error) {
	return false, nil
}

// HandleMouse implements component.Component.
func (b *ButtonBar) HandleMouse(m tea.MouseMsg) error {
	switch {
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
		b.pressed = b.buttonAt(m.X, m.Y)
	case m.Action == tea.MouseActionRelease:
		b.pressed = -1
	}
	return nil
}

// HandleMessage implements component.Component.
func (b *ButtonBar) HandleMessage(msg bus.Message) error {
	switch msg.(type) {
	case bus.Error, bus.Warning, bus.Info, bus.CloseDialog,
		bus.FileInfo, bus.ToggleHex, bus.Highlight,
		bus.FromHexOffset, bus.ToHexOffset, bus.HVStartSearch, bus.HVSearchNext, bus.HVSearchPrev,
		bus.DlgGoto, bus.Goto, bus.DlgTextSearch, bus.TextSearch, bus.DlgHexSearch, bus.HexSearch:
		// The bar has no message-driven state.
	}
	return nil
}

// Render implements component.Component.
func (b *ButtonBar) Render(s *surface.Surface, area surface.Rect, _ component.Focus) {
	b.area = area // only mouse hit-testing reads it
	if area.Empty() {
		return
	}
	var line strings.Builder
	for i, r := range b.buttons(area) {
		if r.Empty() {
			continue
		}
		num := strconv.Itoa(i + 1)
		label := b.styles.Label
		if i == b.pressed {
			label = b.styles.LabelActive
		}
		numWidth := min(len(num), r.Width)
		text := ansi.Truncate(b.labels[i], r.Width-numWidth, "")
		text += strings.Repeat(" ", max(0, r.Width-numWidth-ansi.StringWidth(text)))
		line.WriteString(b.styles.Hotkey.Render(num[:numWidth]))
		line.WriteString(label.Render(text))
	}
	s.Draw(surface.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}, line.String())
}

// buttons splits the first row of area evenly; leftover cells go to the
// leftmost buttons.
func (b *ButtonBar) buttons(area surface.Rect) []surface.Rect {
	n := len(b.labels)
	rects := make([]surface.Rect, n)
	if n == 0 {
		return rects
	}
	base, extra := area.Width/n, area.Width%n
	x := area.X
	for i := range rects {
		w := base
		if i < extra {
			w++
		}
		rects[i] = surface.Rect{X: x, Y: area.Y, Width: w, Height: 1}
		x += w
	}
	return rects
}

func (b *ButtonBar) buttonAt(x, y int) int {
	for i, r := range b.buttons(b.area) {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
