// Package panel implements the directory listing shown in each half of the
// screen.
package panel

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/tail"
	"github.com/five82/fm/internal/theme"
)

// viewLines is how much of a file the quick view shows.
const viewLines = 15

var lastID atomic.Int64

// Panel lists one directory and moves a cursor over it.
type Panel struct {
	id     int
	pub    bus.Publisher
	styles theme.Styles
	keys   KeyMap

	dir     string
	entries []Entry
	cursor  int

	// Layout cache written by Render and read by paging and scrolling.
	offset int
	rows   int

	// pending is set between requesting a dialog and the next CloseDialog.
	// Results are applied only when they also carry this panel's id.
	pending  bool
	lastText *bus.TextQuery
	lastHex  *bus.HexQuery
}

var _ component.Component = (*Panel)(nil)

// New lists dir. It fails when the directory cannot be read.
func New(dir string, pub bus.Publisher, styles theme.Styles) (*Panel, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve dir: %w", err)
	}
	entries, err := readEntries(abs)
	if err != nil {
		return nil, err
	}
	return &Panel{
		id:      int(lastID.Add(1)),
		pub:     pub,
		styles:  styles,
		keys:    DefaultKeyMap(),
		dir:     abs,
		entries: entries,
		rows:    10,
	}, nil
}

// ID identifies the panel in dialog requests and results.
func (p *Panel) ID() int {
	return p.id
}

// Dir returns the listed directory.
func (p *Panel) Dir() string {
	return p.dir
}

// Selected returns the entry under the cursor.
func (p *Panel) Selected() (Entry, bool) {
	if p.cursor < 0 || p.cursor >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[p.cursor], true
}

// Status describes the selected entry for the status line.
func (p *Panel) Status() string {
	e, ok := p.Selected()
	if !ok {
		return ""
	}
	if e.Name == parentName {
		return fmt.Sprintf("%s  %s", e.Name, e.SizeText())
	}
	return fmt.Sprintf("%s  %s  %s", e.Name, e.SizeText(), humanize.Time(e.ModTime))
}

// HandleKey implements component.Component.
func (p *Panel) HandleKey(k tea.KeyMsg) (bool, error) {
	switch {
	case key.Matches(k, p.keys.Up):
		return true, p.moveTo(p.cursor - 1)
	case key.Matches(k, p.keys.Down):
		return true, p.moveTo(p.cursor + 1)
	case key.Matches(k, p.keys.Home):
		return true, p.moveTo(0)
	case key.Matches(k, p.keys.End):
		return true, p.moveTo(len(p.entries) - 1)
	case key.Matches(k, p.keys.PageUp):
		return true, p.moveTo(p.cursor - p.page())
	case key.Matches(k, p.keys.PageDown):
		return true, p.moveTo(p.cursor + p.page())
	case key.Matches(k, p.keys.Open):
		return true, p.open()
	case key.Matches(k, p.keys.Parent):
		return true, p.parent()
	case key.Matches(k, p.keys.View):
		return true, p.view()
	case key.Matches(k, p.keys.Goto):
		p.pending = true
		return true, p.pub.Publish(bus.DlgGoto{Type: bus.GotoLine, Origin: p.id})
	case key.Matches(k, p.keys.Search):
		p.pending = true
		var q bus.TextQuery
		if p.lastText != nil {
			q = *p.lastText
		}
		return true, p.pub.Publish(bus.DlgTextSearch{Query: q, Origin: p.id})
	case key.Matches(k, p.keys.HexSearch):
		p.pending = true
		var q bus.HexQuery
		if p.lastHex != nil {
			q = *p.lastHex
		}
		return true, p.pub.Publish(bus.DlgHexSearch{Query: q, Origin: p.id})
	case key.Matches(k, p.keys.Next):
		return p.repeat(false)
	case key.Matches(k, p.keys.Prev):
		return p.repeat(true)
	}
	return false, nil
}

// HandleMouse implements component.Component. Panels take no mouse input.
func (p *Panel) HandleMouse(tea.MouseMsg) error {
	return nil
}

// HandleMessage implements component.Component.
func (p *Panel) HandleMessage(msg bus.Message) error {
	switch m := msg.(type) {
	case bus.Goto:
		if p.awaits(m.Origin) {
			return p.applyGoto(m)
		}
	case bus.TextSearch:
		if p.awaits(m.Origin) {
			q := m.Query
			p.lastText, p.lastHex = &q, nil
			match, err := textMatcher(q)
			return p.search(match, err, q.Backwards, q.Pattern)
		}
	case bus.HexSearch:
		if p.awaits(m.Origin) {
			q := m.Query
			p.lastHex, p.lastText = &q, nil
			match, err := hexMatcher(q)
			return p.search(match, err, q.Backwards, q.Text)
		}
	case bus.CloseDialog:
		p.pending = false
	case bus.Error, bus.Warning, bus.Info,
		bus.FileInfo, bus.ToggleHex, bus.Highlight,
		bus.FromHexOffset, bus.ToHexOffset, bus.HVStartSearch, bus.HVSearchNext, bus.HVSearchPrev,
		bus.DlgGoto, bus.DlgTextSearch, bus.DlgHexSearch:
		// Not addressed to panels.
	}
	return nil
}

func (p *Panel) awaits(origin int) bool {
	return p.pending && origin == p.id
}

func (p *Panel) page() int {
	return max(1, p.rows-1)
}

func (p *Panel) moveTo(idx int) error {
	if len(p.entries) == 0 {
		return nil
	}
	idx = max(0, min(idx, len(p.entries)-1))
	if idx == p.cursor {
		return nil
	}
	p.cursor = idx
	return p.publishInfo()
}

func (p *Panel) publishInfo() error {
	e, ok := p.Selected()
	if !ok {
		return nil
	}
	return p.pub.Publish(bus.FileInfo{Name: e.Name, Kind: e.Kind(), Size: e.SizeText()})
}

func (p *Panel) open() error {
	e, ok := p.Selected()
	if !ok || !e.IsDir() {
		return nil
	}
	if e.Name == parentName {
		return p.parent()
	}
	return p.chdir(filepath.Join(p.dir, e.Name), "")
}

func (p *Panel) parent() error {
	up := filepath.Dir(p.dir)
	if up == p.dir {
		return nil
	}
	return p.chdir(up, filepath.Base(p.dir))
}

// chdir lists target and places the cursor on selectName when present. On
// failure the current listing is kept and an error dialog is requested.
func (p *Panel) chdir(target, selectName string) error {
	entries, err := readEntries(target)
	if err != nil {
		log.Debug().Err(err).Str("dir", target).Msg("panel: change directory failed")
		return p.pub.Publish(bus.Error{Text: fmt.Sprintf("Cannot open %s: %v", target, err)})
	}

	p.dir = target
	p.entries = entries
	p.cursor = 0
	p.offset = 0
	for i, e := range entries {
		if e.Name == selectName {
			p.cursor = i
			break
		}
	}
	log.Debug().Str("dir", target).Int("entries", len(entries)).Msg("panel: directory changed")
	return p.publishInfo()
}

func (p *Panel) view() error {
	e, ok := p.Selected()
	if !ok {
		return nil
	}
	if e.IsDir() {
		return p.open()
	}
	if !e.Mode.IsRegular() {
		return p.pub.Publish(bus.Warning{Title: "View", Text: fmt.Sprintf("%s is not a regular file", e.Name)})
	}

	res, err := tail.Read(filepath.Join(p.dir, e.Name), viewLines)
	if err != nil {
		return p.pub.Publish(bus.Error{Text: fmt.Sprintf("Cannot view %s: %v", e.Name, err)})
	}
	var text string
	switch {
	case res.Binary:
		text = fmt.Sprintf("Binary file, %s", humanize.Bytes(uint64(max(0, e.Size))))
	case len(res.Lines) == 0:
		text = "(empty file)"
	default:
		lines := res.Lines
		if res.Truncated {
			lines = append([]string{"…"}, lines...)
		}
		text = strings.Join(lines, "\n")
	}
	return p.pub.Publish(bus.Info{Title: e.Name, Text: text})
}

func (p *Panel) applyGoto(m bus.Goto) error {
	v, err := strconv.ParseUint(strings.TrimSpace(m.Value), 0, 64)
	if err != nil {
		return p.pub.Publish(bus.Error{Text: fmt.Sprintf("Invalid %s value %q", strings.ToLower(m.Type.String()), m.Value)})
	}
	last := uint64(max(0, len(p.entries)-1))
	var idx uint64
	switch m.Type {
	case bus.GotoLine:
		if v > 0 {
			idx = v - 1
		}
	case bus.GotoPercent:
		idx = last * min(v, 100) / 100
	case bus.GotoOffset:
		idx = v
	}
	return p.moveTo(int(min(idx, last)))
}

// search moves to the next entry matching m. A matcher construction error is
// reported through an error dialog.
func (p *Panel) search(m matcher, err error, backwards bool, pattern string) error {
	if err != nil {
		return p.pub.Publish(bus.Error{Text: err.Error()})
	}
	idx, ok := find(p.entries, p.cursor, backwards, m)
	if !ok {
		return p.pub.Publish(bus.Warning{Title: "Search", Text: fmt.Sprintf("%q not found", pattern)})
	}
	return p.moveTo(idx)
}

func (p *Panel) repeat(reverse bool) (bool, error) {
	switch {
	case p.lastText != nil:
		q := *p.lastText
		m, err := textMatcher(q)
		return true, p.search(m, err, q.Backwards != reverse, q.Pattern)
	case p.lastHex != nil:
		q := *p.lastHex
		m, err := hexMatcher(q)
		return true, p.search(m, err, q.Backwards != reverse, q.Text)
	}
	return false, nil
}

// Render implements component.Component. Besides drawing it only updates the
// layout cache (rows and the scroll offset).
func (p *Panel) Render(s *surface.Surface, area surface.Rect, focus component.Focus) {
	if area.Empty() {
		return
	}
	rows := max(0, area.Height-2)
	inner := max(0, area.Width-2)
	p.rows = max(1, rows)
	switch {
	case p.cursor < p.offset:
		p.offset = p.cursor
	case rows > 0 && p.cursor >= p.offset+rows:
		p.offset = p.cursor - rows + 1
	}

	border := p.styles.Border
	if focus == component.Focused {
		border = p.styles.BorderFocus
	}

	body := make([]string, 0, rows)
	for i := p.offset; i < len(p.entries) && len(body) < rows; i++ {
		e := p.entries[i]
		style := p.entryStyle(e)
		if i == p.cursor && focus == component.Focused {
			style = p.styles.Selected
		}
		body = append(body, style.Render(formatEntry(e, inner)))
	}

	s.Fill(area, p.styles.Panel)
	s.Draw(area, surface.Frame(area.Width, area.Height, p.styles.PanelTitle.Render(p.dir), body, border))
}

func (p *Panel) entryStyle(e Entry) lipgloss.Style {
	switch {
	case e.Link:
		return p.styles.Symlink
	case e.IsDir():
		return p.styles.Directory
	case e.Mode&0o111 != 0:
		return p.styles.Executable
	default:
		return p.styles.Panel
	}
}
