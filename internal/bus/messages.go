package bus

import "github.com/charmbracelet/lipgloss"

// Message is the closed set of notifications carried by the bus. The marker
// method is unexported so no type outside this package can join the set.
//
//sumtype:decl
type Message interface {
	isMessage()
}

// App-wide messages.

// Error asks for an error dialog.
type Error struct {
	Text string
}

// Warning asks for a warning dialog.
type Warning struct {
	Title string
	Text  string
}

// Info asks for an informational dialog.
type Info struct {
	Title string
	Text  string
}

// CloseDialog dismisses the active dialog, if any.
type CloseDialog struct{}

// File viewer messages.

// FileInfo describes the entry currently selected by a panel or viewer.
type FileInfo struct {
	Name string
	Kind string
	Size string
}

type ToggleHex struct{}

// Text viewer messages.

// Span is a run of text rendered with one style.
type Span struct {
	Style lipgloss.Style
	Text  string
}

// Highlight carries syntax-highlighted lines.
type Highlight struct {
	Lines [][]Span
}

// Hex viewer messages.

type FromHexOffset struct {
	Offset uint64
}

type ToHexOffset struct {
	Offset uint64
}

type HVStartSearch struct{}

type HVSearchNext struct{}

type HVSearchPrev struct{}

// Goto dialog messages.

// GotoType selects how a goto value is interpreted.
type GotoType int

const (
	GotoLine GotoType = iota
	GotoPercent
	GotoOffset
)

func (g GotoType) String() string {
	switch g {
	case GotoPercent:
		return "Percent"
	case GotoOffset:
		return "Offset"
	default:
		return "Line"
	}
}

// DlgGoto requests the goto dialog. Origin identifies the requester and is
// copied into the result.
type DlgGoto struct {
	Type   GotoType
	Origin int
}

// Goto carries the validated value entered in the goto dialog.
type Goto struct {
	Type   GotoType
	Value  string
	Origin int
}

// Text search dialog messages.

// TextQuery describes a text search.
type TextQuery struct {
	Pattern       string
	CaseSensitive bool
	WholeWords    bool
	Regex         bool
	Fuzzy         bool
	Backwards     bool
}

// DlgTextSearch requests the text search dialog, prefilled with Query.
type DlgTextSearch struct {
	Query  TextQuery
	Origin int
}

// TextSearch carries a confirmed text search.
type TextSearch struct {
	Query  TextQuery
	Origin int
}

// Hex search dialog messages.

// HexQuery describes a byte-sequence search.
type HexQuery struct {
	Text      string
	Bytes     []byte
	Backwards bool
}

// DlgHexSearch requests the hex search dialog, prefilled with Query.
type DlgHexSearch struct {
	Query  HexQuery
	Origin int
}

// HexSearch carries a confirmed hex search.
type HexSearch struct {
	Query  HexQuery
	Origin int
}

func (Error) isMessage()         {}
func (Warning) isMessage()       {}
func (Info) isMessage()          {}
func (CloseDialog) isMessage()   {}
func (FileInfo) isMessage()      {}
func (ToggleHex) isMessage()     {}
func (Highlight) isMessage()     {}
func (FromHexOffset) isMessage() {}
func (ToHexOffset) isMessage()   {}
func (HVStartSearch) isMessage() {}
func (HVSearchNext) isMessage()  {}
func (HVSearchPrev) isMessage()  {}
func (DlgGoto) isMessage()       {}
func (Goto) isMessage()          {}
func (DlgTextSearch) isMessage() {}
func (TextSearch) isMessage()    {}
func (DlgHexSearch) isMessage()  {}
func (HexSearch) isMessage()     {}

// All returns one zero value of every message kind, in declaration order.
func All() []Message {
	return []Message{
		Error{}, Warning{}, Info{}, CloseDialog{},
		FileInfo{}, ToggleHex{},
		Highlight{},
		FromHexOffset{}, ToHexOffset{}, HVStartSearch{}, HVSearchNext{}, HVSearchPrev{},
		DlgGoto{}, Goto{},
		DlgTextSearch{}, TextSearch{},
		DlgHexSearch{}, HexSearch{},
	}
}
