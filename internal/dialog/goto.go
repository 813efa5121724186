package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

const inputWidth = 40

// Goto asks for a line number, a percentage or an offset.
type Goto struct {
	pub    bus.Publisher
	styles theme.Styles
	keys   KeyMap
	typ    bus.GotoType
	origin int
	input  textinput.Model
}

var _ component.Component = (*Goto)(nil)

// NewGoto returns a goto dialog answering req.
func NewGoto(pub bus.Publisher, styles theme.Styles, req bus.DlgGoto) *Goto {
	return &Goto{
		pub:    pub,
		styles: styles,
		keys:   DefaultKeyMap(),
		typ:    req.Type,
		origin: req.Origin,
		input:  newInput("", 20),
	}
}

// Type returns the current goto mode.
func (g *Goto) Type() bus.GotoType {
	return g.typ
}

// HandleKey implements component.Component. Every key is consumed.
func (g *Goto) HandleKey(k tea.KeyMsg) (bool, error) {
	switch {
	case key.Matches(k, g.keys.Cancel):
		return true, g.pub.Publish(bus.CloseDialog{})
	case key.Matches(k, g.keys.Confirm):
		return true, g.submit()
	case key.Matches(k, g.keys.CycleType):
		g.typ = (g.typ + 1) % 3
	default:
		g.input, _ = g.input.Update(k)
	}
	return true, nil
}

func (g *Goto) submit() error {
	value := strings.TrimSpace(g.input.Value())
	if value == "" {
		return g.pub.Publish(bus.CloseDialog{})
	}
	n, err := strconv.ParseUint(value, 0, 64)
	if err != nil || (g.typ == bus.GotoPercent && n > 100) {
		return g.pub.Publish(bus.Error{Text: fmt.Sprintf("Invalid %s: %q", strings.ToLower(g.typ.String()), value)})
	}
	return closeWith(g.pub, bus.Goto{Type: g.typ, Value: value, Origin: g.origin})
}

// HandleMouse implements component.Component.
func (g *Goto) HandleMouse(tea.MouseMsg) error {
	return nil
}

// HandleMessage implements component.Component.
func (g *Goto) HandleMessage(msg bus.Message) error {
	return ignore(msg)
}

// Render implements component.Component.
func (g *Goto) Render(s *surface.Surface, area surface.Rect, _ component.Focus) {
	inner := min(inputWidth, max(10, area.Width-6))
	g.input.Width = inner - 3
	body := []string{
		" " + g.typ.String() + ":",
		" " + styled(g.styles.Input, g.input.View(), inner-2),
		"",
		" " + gotoModes(g.typ) + "  (tab)",
	}
	drawBox(s, area, inner+2, "Goto", body, g.styles.Info, g.styles.Shadow)
}

func gotoModes(current bus.GotoType) string {
	modes := make([]string, 0, 3)
	for t := bus.GotoLine; t <= bus.GotoOffset; t++ {
		mark := "( )"
		if t == current {
			mark = "(*)"
		}
		modes = append(modes, mark+" "+t.String())
	}
	return strings.Join(modes, " ")
}
