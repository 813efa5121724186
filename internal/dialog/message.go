package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

// Severity selects the message dialog styling.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "error"
	}
}

const (
	okButton     = "[ OK ]"
	minTextWidth = 20
)

// Message shows a title, some text and an OK button.
type Message struct {
	pub      bus.Publisher
	styles   theme.Styles
	keys     KeyMap
	severity Severity
	title    string
	text     string

	ok surface.Rect // hit-test cache: OK button position from the last Render
}

var _ component.Component = (*Message)(nil)

// NewMessage returns a message dialog.
func NewMessage(pub bus.Publisher, styles theme.Styles, severity Severity, title, text string) *Message {
	return &Message{
		pub:      pub,
		styles:   styles,
		keys:     DefaultKeyMap(),
		severity: severity,
		title:    title,
		text:     text,
	}
}

// Severity returns the dialog severity.
func (m *Message) Severity() Severity {
	return m.severity
}

// Title returns the dialog title.
func (m *Message) Title() string {
	return m.title
}

// Text returns the dialog text.
func (m *Message) Text() string {
	return m.text
}

// HandleKey implements component.Component. Every key is consumed.
func (m *Message) HandleKey(k tea.KeyMsg) (bool, error) {
	if key.Matches(k, m.keys.Dismiss) {
		return true, m.pub.Publish(bus.CloseDialog{})
	}
	return true, nil
}

// HandleMouse implements component.Component.
func (m *Message) HandleMouse(ev tea.MouseMsg) error {
	if ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft && m.ok.Contains(ev.X, ev.Y) {
		return m.pub.Publish(bus.CloseDialog{})
	}
	return nil
}

// HandleMessage implements component.Component.
func (m *Message) HandleMessage(msg bus.Message) error {
	return ignore(msg)
}

func (m *Message) style() lipgloss.Style {
	switch m.severity {
	case SeverityWarning:
		return m.styles.Warning
	case SeverityInfo:
		return m.styles.Info
	default:
		return m.styles.Error
	}
}

// Render implements component.Component.
func (m *Message) Render(s *surface.Surface, area surface.Rect, _ component.Focus) {
	maxText := max(minTextWidth, area.Width-8)
	textWidth := minTextWidth
	for _, line := range strings.Split(m.text, "\n") {
		textWidth = max(textWidth, ansi.StringWidth(line))
	}
	textWidth = min(textWidth, maxText)

	lines := strings.Split(ansi.Wrap(m.text, textWidth, ""), "\n")
	if room := area.Height - 5; room > 0 && len(lines) > room {
		lines = lines[len(lines)-room:]
	}

	inner := textWidth + 2
	body := make([]string, 0, len(lines)+2)
	for _, line := range lines {
		body = append(body, " "+line)
	}
	body = append(body, "", center(okButton, inner))

	r := drawBox(s, area, inner+2, m.title, body, m.style(), m.styles.Shadow)
	okX := r.X + 1 + max(0, inner-ansi.StringWidth(okButton))/2
	m.ok = surface.Rect{X: okX, Y: r.Y + r.Height - 2, Width: ansi.StringWidth(okButton), Height: 1}.Intersect(r)
}
