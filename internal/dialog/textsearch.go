package dialog

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

// TextSearch edits a text query and its options.
type TextSearch struct {
	pub    bus.Publisher
	styles theme.Styles
	keys   KeyMap
	query  bus.TextQuery
	origin int
	input  textinput.Model
}

var _ component.Component = (*TextSearch)(nil)

// NewTextSearch returns a text search dialog prefilled with the query of req.
func NewTextSearch(pub bus.Publisher, styles theme.Styles, req bus.DlgTextSearch) *TextSearch {
	return &TextSearch{
		pub:    pub,
		styles: styles,
		keys:   DefaultKeyMap(),
		query:  req.Query,
		origin: req.Origin,
		input:  newInput(req.Query.Pattern, 256),
	}
}

// Query returns the query as currently edited.
func (d *TextSearch) Query() bus.TextQuery {
	q := d.query
	q.Pattern = d.input.Value()
	return q
}

// HandleKey implements component.Component. Every key is consumed.
func (d *TextSearch) HandleKey(k tea.KeyMsg) (bool, error) {
	switch {
	case key.Matches(k, d.keys.Cancel):
		return true, d.pub.Publish(bus.CloseDialog{})
	case key.Matches(k, d.keys.Confirm):
		return true, d.submit()
	case key.Matches(k, d.keys.Case):
		d.query.CaseSensitive = !d.query.CaseSensitive
	case key.Matches(k, d.keys.Words):
		d.query.WholeWords = !d.query.WholeWords
	case key.Matches(k, d.keys.Regex):
		d.query.Regex = !d.query.Regex
		if d.query.Regex {
			d.query.Fuzzy = false
		}
	case key.Matches(k, d.keys.Fuzzy):
		d.query.Fuzzy = !d.query.Fuzzy
		if d.query.Fuzzy {
			d.query.Regex = false
		}
	case key.Matches(k, d.keys.Backwards):
		d.query.Backwards = !d.query.Backwards
	default:
		d.input, _ = d.input.Update(k)
	}
	return true, nil
}

func (d *TextSearch) submit() error {
	q := d.Query()
	if q.Pattern == "" {
		return d.pub.Publish(bus.CloseDialog{})
	}
	if q.Regex {
		if _, err := regexp.Compile(q.Pattern); err != nil {
			return d.pub.Publish(bus.Error{Text: fmt.Sprintf("Invalid regular expression: %v", err)})
		}
	}
	return closeWith(d.pub, bus.TextSearch{Query: q, Origin: d.origin})
}

// HandleMouse implements component.Component.
func (d *TextSearch) HandleMouse(tea.MouseMsg) error {
	return nil
}

// HandleMessage implements component.Component.
func (d *TextSearch) HandleMessage(msg bus.Message) error {
	return ignore(msg)
}

// Render implements component.Component.
func (d *TextSearch) Render(s *surface.Surface, area surface.Rect, _ component.Focus) {
	inner := min(inputWidth+10, max(10, area.Width-6))
	d.input.Width = inner - 3
	q := d.query
	body := []string{
		" Enter search string:",
		" " + styled(d.styles.Input, d.input.View(), inner-2),
		"",
		" " + checkbox(q.CaseSensitive) + " Case sensitive   (alt+c)",
		" " + checkbox(q.WholeWords) + " Whole words      (alt+w)",
		" " + checkbox(q.Regex) + " Regular expr.    (alt+r)",
		" " + checkbox(q.Fuzzy) + " Fuzzy            (alt+f)",
		" " + checkbox(q.Backwards) + " Backwards        (alt+b)",
	}
	drawBox(s, area, inner+2, "Search", body, d.styles.Info, d.styles.Shadow)
}
