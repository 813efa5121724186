package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Regions is the top-level screen partition.
type Regions struct {
	Panels  Rect
	Status  Rect
	Buttons Rect
}

// Split partitions area vertically into the panel region, a one-line status
// region and a one-line button bar. The bottom rows win when space is short.
func Split(area Rect) Regions {
	buttons := min(1, max(0, area.Height))
	status := min(1, max(0, area.Height-buttons))
	panels := max(0, area.Height-buttons-status)
	return Regions{
		Panels:  Rect{X: area.X, Y: area.Y, Width: area.Width, Height: panels},
		Status:  Rect{X: area.X, Y: area.Y + panels, Width: area.Width, Height: status},
		Buttons: Rect{X: area.X, Y: area.Y + panels + status, Width: area.Width, Height: buttons},
	}
}

// SplitHalves splits area horizontally; the left half takes 50% rounded down.
func SplitHalves(area Rect) (Rect, Rect) {
	left := area.Width / 2
	return Rect{X: area.X, Y: area.Y, Width: left, Height: area.Height},
		Rect{X: area.X + left, Y: area.Y, Width: area.Width - left, Height: area.Height}
}

// Centered returns a width×height rectangle centered in r, clipped to r.
func Centered(width, height int, r Rect) Rect {
	top := (max(0, r.Height-height) + 1) / 2
	leftPad := (max(0, r.Width-width) + 1) / 2
	return Rect{
		X:      r.X + leftPad,
		Y:      r.Y + top,
		Width:  max(0, min(width, r.Width-leftPad)),
		Height: max(0, min(height, r.Height-top)),
	}
}

// Shadow paints a drop shadow below and to the right of r.
func (s *Surface) Shadow(r Rect, style lipgloss.Style) {
	below := Rect{X: r.X + 2, Y: r.Y + r.Height, Width: r.Width, Height: 1}
	right := Rect{X: r.X + r.Width, Y: r.Y + 1, Width: 2, Height: max(0, r.Height-1)}
	s.Fill(below.Intersect(s.Area()), style)
	s.Fill(right.Intersect(s.Area()), style)
}

// Frame returns a width×height single-line box with title centered in the top
// edge and body clipped to the interior.
func Frame(width, height int, title string, body []string, border lipgloss.Style) string {
	if width < 2 || height < 2 {
		return ""
	}
	inner := width - 2
	if title != "" {
		title = ansi.Truncate(" "+title+" ", inner, "…")
	}
	tw := ansi.StringWidth(title)
	left := (inner - tw) / 2

	lines := make([]string, 0, height)
	lines = append(lines, border.Render("┌"+strings.Repeat("─", left))+title+
		border.Render(strings.Repeat("─", inner-left-tw)+"┐"))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(body) {
			line = body[i]
		}
		lines = append(lines, border.Render("│")+fit(line, inner)+border.Render("│"))
	}
	lines = append(lines, border.Render("└"+strings.Repeat("─", inner)+"┘"))
	return strings.Join(lines, "\n")
}
