// Package surface is the drawable frame components render into: a fixed grid
// of ANSI-styled lines that rectangular areas are composited onto.
package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rect is a cell-addressed rectangle.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersect returns the overlap of r and o.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.X, o.X)
	y1 := max(r.Y, o.Y)
	x2 := min(r.X+r.Width, o.X+o.Width)
	y2 := min(r.Y+r.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Surface is one frame of terminal output.
type Surface struct {
	width  int
	height int
	lines  []string
}

// New returns a blank surface of the given size.
func New(width, height int) *Surface {
	width = max(0, width)
	height = max(0, height)
	lines := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range lines {
		lines[i] = blank
	}
	return &Surface{width: width, height: height, lines: lines}
}

// Area returns the full surface rectangle.
func (s *Surface) Area() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Draw composites content into area. Lines are clipped and padded to the
// area width; missing lines are blanked; cells outside the surface are dropped.
func (s *Surface) Draw(area Rect, content string) {
	clip := area.Intersect(s.Area())
	if clip.Empty() {
		return
	}
	lines := strings.Split(content, "\n")
	dx, dy := clip.X-area.X, clip.Y-area.Y
	for row := 0; row < clip.Height; row++ {
		var line string
		if i := row + dy; i < len(lines) {
			line = lines[i]
		}
		if dx > 0 {
			line = ansi.Cut(line, dx, dx+clip.Width)
		}
		line = fit(line, clip.Width)

		base := s.lines[clip.Y+row]
		left := ansi.Cut(base, 0, clip.X)
		right := ansi.Cut(base, clip.X+clip.Width, s.width)
		s.lines[clip.Y+row] = left + line + right
	}
}

// Fill paints area with blank cells in style.
func (s *Surface) Fill(area Rect, style lipgloss.Style) {
	clip := area.Intersect(s.Area())
	if clip.Empty() {
		return
	}
	row := style.Render(strings.Repeat(" ", clip.Width))
	rows := make([]string, clip.Height)
	for i := range rows {
		rows[i] = row
	}
	s.Draw(clip, strings.Join(rows, "\n"))
}

// Lines returns a copy of the rendered lines.
func (s *Surface) Lines() []string {
	return append([]string(nil), s.lines...)
}

// String joins the lines into one frame.
func (s *Surface) String() string {
	return strings.Join(s.lines, "\n")
}

// PlainLines returns the lines with ANSI sequences removed.
func (s *Surface) PlainLines() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = ansi.Strip(line)
	}
	return out
}

func fit(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w < width:
		return line + strings.Repeat(" ", width-w)
	case w > width:
		return ansi.Truncate(line, width, "")
	default:
		return line
	}
}
