// Package theme turns the colour configuration into lipgloss styles.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/fm/internal/config"
)

// Styles contains pre-built lipgloss styles for every component.
type Styles struct {
	// Panels
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Border      lipgloss.Style
	BorderFocus lipgloss.Style
	Selected    lipgloss.Style
	Directory   lipgloss.Style
	Symlink     lipgloss.Style
	Executable  lipgloss.Style
	Status      lipgloss.Style

	// Button bar
	Hotkey      lipgloss.Style
	Label       lipgloss.Style
	LabelActive lipgloss.Style

	// Dialogs
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Input   lipgloss.Style
	Shadow  lipgloss.Style

	// Syntax colouring, indexed by base16 slot.
	Highlight Palette
}

// Palette is the subset of a base16 scheme used for colouring text.
type Palette struct {
	Background lipgloss.TerminalColor // base00
	Comment    lipgloss.TerminalColor // base03
	Foreground lipgloss.TerminalColor // base05
	Red        lipgloss.TerminalColor // base08
	Orange     lipgloss.TerminalColor // base09
	Yellow     lipgloss.TerminalColor // base0A
	Green      lipgloss.TerminalColor // base0B
	Cyan       lipgloss.TerminalColor // base0C
	Blue       lipgloss.TerminalColor // base0D
	Purple     lipgloss.TerminalColor // base0E
	Brown      lipgloss.TerminalColor // base0F
}

// New builds the styles for cfg.
func New(cfg config.Config) Styles {
	ui := cfg.UI
	hl := cfg.Highlight
	dlg := cfg.Dialog

	palette := Palette{
		Background: hl.Base00.Terminal(),
		Comment:    hl.Base03.Terminal(),
		Foreground: hl.Base05.Terminal(),
		Red:        hl.Base08.Terminal(),
		Orange:     hl.Base09.Terminal(),
		Yellow:     hl.Base0A.Terminal(),
		Green:      hl.Base0B.Terminal(),
		Cyan:       hl.Base0C.Terminal(),
		Blue:       hl.Base0D.Terminal(),
		Purple:     hl.Base0E.Terminal(),
		Brown:      hl.Base0F.Terminal(),
	}

	return Styles{
		Panel: lipgloss.NewStyle(),

		PanelTitle: lipgloss.NewStyle().
			Bold(true),

		Border: lipgloss.NewStyle().
			Foreground(palette.Comment),

		BorderFocus: lipgloss.NewStyle().
			Foreground(ui.SelectedBg.Terminal()),

		Selected: lipgloss.NewStyle().
			Foreground(ui.SelectedFg.Terminal()).
			Background(ui.SelectedBg.Terminal()),

		Directory: lipgloss.NewStyle().
			Foreground(palette.Blue).
			Bold(true),

		Symlink: lipgloss.NewStyle().
			Foreground(palette.Cyan),

		Executable: lipgloss.NewStyle().
			Foreground(palette.Green),

		Status: lipgloss.NewStyle().
			Foreground(palette.Foreground),

		Hotkey: lipgloss.NewStyle().
			Foreground(ui.HotkeyFg.Terminal()).
			Background(ui.HotkeyBg.Terminal()),

		Label: lipgloss.NewStyle().
			Foreground(ui.SelectedFg.Terminal()).
			Background(ui.SelectedBg.Terminal()),

		LabelActive: lipgloss.NewStyle().
			Foreground(ui.SelectedBg.Terminal()).
			Background(ui.SelectedFg.Terminal()),

		Error: lipgloss.NewStyle().
			Foreground(dlg.ErrorFg.Terminal()).
			Background(dlg.ErrorBg.Terminal()),

		Warning: lipgloss.NewStyle().
			Foreground(dlg.WarningFg.Terminal()).
			Background(dlg.WarningBg.Terminal()),

		Info: lipgloss.NewStyle().
			Foreground(dlg.InfoFg.Terminal()).
			Background(dlg.InfoBg.Terminal()),

		Input: lipgloss.NewStyle().
			Foreground(dlg.InputFg.Terminal()).
			Background(dlg.InputBg.Terminal()),

		Shadow: lipgloss.NewStyle().
			Background(lipgloss.Color("0")),

		Highlight: palette,
	}
}

// Default returns the styles for the built-in configuration.
func Default() Styles {
	return New(config.Default())
}
