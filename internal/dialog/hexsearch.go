package dialog

import (
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

// HexSearch edits a byte-sequence query written as hex pairs.
type HexSearch struct {
	pub       bus.Publisher
	styles    theme.Styles
	keys      KeyMap
	backwards bool
	origin    int
	input     textinput.Model
}

var _ component.Component = (*HexSearch)(nil)

// NewHexSearch returns a hex search dialog prefilled with the query of req.
func NewHexSearch(pub bus.Publisher, styles theme.Styles, req bus.DlgHexSearch) *HexSearch {
	return &HexSearch{
		pub:       pub,
		styles:    styles,
		keys:      DefaultKeyMap(),
		backwards: req.Query.Backwards,
		origin:    req.Origin,
		input:     newInput(req.Query.Text, 256),
	}
}

// ParseHex decodes hex pairs, ignoring whitespace ("de ad BE ef").
func ParseHex(text string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	if compact == "" {
		return nil, fmt.Errorf("empty byte sequence")
	}
	if len(compact)%2 != 0 {
		return nil, fmt.Errorf("odd number of hex digits")
	}
	b, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}

// HandleKey implements component.Component. Every key is consumed.
func (d *HexSearch) HandleKey(k tea.KeyMsg) (bool, error) {
	switch {
	case key.Matches(k, d.keys.Cancel):
		return true, d.pub.Publish(bus.CloseDialog{})
	case key.Matches(k, d.keys.Confirm):
		return true, d.submit()
	case key.Matches(k, d.keys.Backwards):
		d.backwards = !d.backwards
	default:
		d.input, _ = d.input.Update(k)
	}
	return true, nil
}

func (d *HexSearch) submit() error {
	text := strings.TrimSpace(d.input.Value())
	if text == "" {
		return d.pub.Publish(bus.CloseDialog{})
	}
	b, err := ParseHex(text)
	if err != nil {
		return d.pub.Publish(bus.Error{Text: fmt.Sprintf("Invalid hex search %q: %v", text, err)})
	}
	return closeWith(d.pub, bus.HexSearch{Query: bus.HexQuery{Text: text, Bytes: b, Backwards: d.backwards}, Origin: d.origin})
}

// HandleMouse implements component.Component.
func (d *HexSearch) HandleMouse(tea.MouseMsg) error {
	return nil
}

// HandleMessage implements component.Component.
func (d *HexSearch) HandleMessage(msg bus.Message) error {
	return ignore(msg)
}

// Render implements component.Component.
func (d *HexSearch) Render(s *surface.Surface, area surface.Rect, _ component.Focus) {
	inner := min(inputWidth+10, max(10, area.Width-6))
	d.input.Width = inner - 3
	body := []string{
		" Enter hex bytes:",
		" " + styled(d.styles.Input, d.input.View(), inner-2),
		"",
		" " + checkbox(d.backwards) + " Backwards        (alt+b)",
	}
	drawBox(s, area, inner+2, "Hex Search", body, d.styles.Info, d.styles.Shadow)
}
