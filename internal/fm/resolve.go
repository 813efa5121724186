package fm

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/events"
)

// HandleEvent resolves one raw event into an Action.
func (a *App) HandleEvent(ev events.Event) (Action, error) {
	switch ev := ev.(type) {
	case events.Key:
		return a.handleKey(ev.Msg)
	case events.Mouse:
		return Continue, a.handleMouse(ev.Msg)
	case events.Unsupported:
		return Continue, nil
	case events.Signal:
		return resolveSignal(ev.Sig), nil
	}
	return Continue, nil
}

// target is the component with keyboard priority: the dialog when one is
// open, otherwise the focused panel.
func (a *App) target() component.Component {
	if a.dialog != nil {
		return a.dialog
	}
	return a.panels[a.focus]
}

func (a *App) handleKey(k tea.KeyMsg) (Action, error) {
	handled, err := a.target().HandleKey(k)
	if err != nil {
		return Continue, fmt.Errorf("handle key %s: %w", k, err)
	}
	if handled {
		return Continue, nil
	}

	switch {
	case key.Matches(k, a.keys.Quit):
		return Quit, nil
	case key.Matches(k, a.keys.Interrupt):
		return CtrlC, nil
	case key.Matches(k, a.keys.Redraw):
		return Redraw, nil
	case key.Matches(k, a.keys.Suspend):
		return CtrlZ, nil
	case key.Matches(k, a.keys.SwitchPanel):
		a.focus = 1 - a.focus
		return Continue, nil
	}
	log.Debug().Str("key", k.String()).Msg("unhandled key")
	return Continue, nil
}

// handleMouse offers the event to the dialog and then, unconditionally, to
// the button bar. Panels take no mouse input.
func (a *App) handleMouse(m tea.MouseMsg) error {
	var errs []error
	if a.dialog != nil {
		if err := a.dialog.HandleMouse(m); err != nil {
			errs = append(errs, fmt.Errorf("dialog: %w", err))
		}
	}
	if err := a.buttons.HandleMouse(m); err != nil {
		errs = append(errs, fmt.Errorf("button bar: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("handle mouse: %w", err)
	}
	return nil
}

// resolveSignal maps the registered signal set. Any other signal means the
// registration and this table disagree.
func resolveSignal(sig syscall.Signal) Action {
	switch sig {
	case syscall.SIGWINCH:
		return Redraw
	case syscall.SIGINT:
		return CtrlC
	case syscall.SIGTERM:
		return SigTerm
	case syscall.SIGCONT:
		return SigCont
	}
	panic(fmt.Sprintf("fm: unregistered signal %v", sig))
}
