package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is a validated terminal colour: "#rrggbb", an ANSI palette index, or
// empty for the terminal default.
type Color string

var namedColors = map[string]string{
	"black":        "0",
	"red":          "1",
	"green":        "2",
	"yellow":       "3",
	"blue":         "4",
	"magenta":      "5",
	"cyan":         "6",
	"gray":         "7",
	"grey":         "7",
	"darkgray":     "8",
	"darkgrey":     "8",
	"lightred":     "9",
	"lightgreen":   "10",
	"lightyellow":  "11",
	"lightblue":    "12",
	"lightmagenta": "13",
	"lightcyan":    "14",
	"white":        "15",
	"reset":        "",
}

// ParseColor normalises a colour name, hex triplet or palette index.
func ParseColor(s string) (Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("-", "", "_", "", " ", "").Replace(v)
	if v == "" {
		return "", fmt.Errorf("empty colour")
	}
	if named, ok := namedColors[v]; ok {
		return Color(named), nil
	}
	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		if len(hex) != 6 {
			return "", fmt.Errorf("invalid hex colour %q", s)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return "", fmt.Errorf("invalid hex colour %q", s)
		}
		return Color(v), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n > 255 {
		return "", fmt.Errorf("unknown colour %q", s)
	}
	return Color(strconv.Itoa(n)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	if c == "" {
		return []byte("reset"), nil
	}
	return []byte(c), nil
}

// Terminal returns the lipgloss colour, NoColor for the terminal default.
func (c Color) Terminal() lipgloss.TerminalColor {
	if c == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(string(c))
}
