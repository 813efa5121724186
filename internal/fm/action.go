package fm

import "errors"

// ErrDisconnected is returned by Step, wrapped with the channel name, when the
// event channel or the bus has closed.
var ErrDisconnected = errors.New("fm: channel disconnected")

// Action is the per-tick decision handed back to the run loop.
type Action int

const (
	Continue Action = iota
	Redraw
	Quit
	CtrlC
	SigTerm
	CtrlZ
	SigCont
)

func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case Redraw:
		return "Redraw"
	case Quit:
		return "Quit"
	case CtrlC:
		return "CtrlC"
	case SigTerm:
		return "SigTerm"
	case CtrlZ:
		return "CtrlZ"
	case SigCont:
		return "SigCont"
	default:
		return "Action(?)"
	}
}

// Exits reports whether the run loop should stop after this action.
func (a Action) Exits() bool {
	return a == Quit || a == CtrlC || a == SigTerm
}
