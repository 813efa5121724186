// Package fm is the orchestrator of the file manager. It owns the two
// panels, the button bar and the single dialog slot, and turns each event or
// bus message into one Action for the run loop.
package fm

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/component"
	"github.com/five82/fm/internal/dialog"
	"github.com/five82/fm/internal/events"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/theme"
)

// Panel is a component showing a directory.
type Panel interface {
	component.Component
	Dir() string
	Status() string
}

// Options wires an App to its collaborators.
type Options struct {
	Styles    theme.Styles
	Events    <-chan events.Event
	Messages  <-chan bus.Message
	Publisher bus.Publisher
	Left      Panel
	Right     Panel
	ButtonBar component.Component
	Focus     int // 0 for the left panel, 1 for the right
}

// App multiplexes the event channel and the bus. All of its state is
// confined to the goroutine calling Step and Render.
type App struct {
	styles   theme.Styles
	events   <-chan events.Event
	messages <-chan bus.Message
	pub      bus.Publisher
	keys     KeyMap

	panels  [2]Panel
	buttons component.Component
	dialog  component.Component
	focus   int
}

// New builds an App. Panels and the button bar must be non-nil.
func New(opts Options) *App {
	focus := 0
	if opts.Focus == 1 {
		focus = 1
	}
	return &App{
		styles:   opts.Styles,
		events:   opts.Events,
		messages: opts.Messages,
		pub:      opts.Publisher,
		keys:     DefaultKeyMap(),
		panels:   [2]Panel{opts.Left, opts.Right},
		buttons:  opts.ButtonBar,
		focus:    focus,
	}
}

// Focus returns the index of the panel with keyboard priority.
func (a *App) Focus() int {
	return a.focus
}

// Dialog returns the open dialog, or nil.
func (a *App) Dialog() component.Component {
	return a.dialog
}

// Dir returns the focused panel's directory.
func (a *App) Dir() string {
	return a.panels[a.focus].Dir()
}

// Dirs returns both panel directories, left first.
func (a *App) Dirs() (string, string) {
	return a.panels[0].Dir(), a.panels[1].Dir()
}

// Step blocks until an event or a bus message is ready and handles exactly
// one of them. When both are ready the choice is arbitrary.
func (a *App) Step() (Action, error) {
	select {
	case ev, ok := <-a.events:
		if !ok {
			return Continue, fmt.Errorf("events: %w", ErrDisconnected)
		}
		return a.HandleEvent(ev)
	case msg, ok := <-a.messages:
		if !ok {
			return Continue, fmt.Errorf("bus: %w", ErrDisconnected)
		}
		return Continue, a.HandleMessage(msg)
	}
}

// HandleMessage broadcasts msg to the panels, the button bar and the dialog,
// in that order, then applies the orchestrator's own reaction. A failing
// component does not stop the broadcast; all failures are returned joined.
func (a *App) HandleMessage(msg bus.Message) error {
	var errs []error
	for i, p := range a.panels {
		if err := p.HandleMessage(msg); err != nil {
			errs = append(errs, fmt.Errorf("panel %d: %w", i, err))
		}
	}
	if err := a.buttons.HandleMessage(msg); err != nil {
		errs = append(errs, fmt.Errorf("button bar: %w", err))
	}
	if a.dialog != nil {
		if err := a.dialog.HandleMessage(msg); err != nil {
			errs = append(errs, fmt.Errorf("dialog: %w", err))
		}
	}

	a.react(msg)

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("dispatch %T: %w", msg, err)
	}
	return nil
}

// react manages the dialog slot. Installing a dialog discards the previous one.
func (a *App) react(msg bus.Message) {
	switch m := msg.(type) {
	case bus.Error:
		a.setDialog(dialog.NewMessage(a.pub, a.styles, dialog.SeverityError, "Error", m.Text))
	case bus.Warning:
		a.setDialog(dialog.NewMessage(a.pub, a.styles, dialog.SeverityWarning, m.Title, m.Text))
	case bus.Info:
		a.setDialog(dialog.NewMessage(a.pub, a.styles, dialog.SeverityInfo, m.Title, m.Text))
	case bus.CloseDialog:
		a.dialog = nil
	case bus.DlgGoto:
		a.setDialog(dialog.NewGoto(a.pub, a.styles, m))
	case bus.DlgTextSearch:
		a.setDialog(dialog.NewTextSearch(a.pub, a.styles, m))
	case bus.DlgHexSearch:
		a.setDialog(dialog.NewHexSearch(a.pub, a.styles, m))
	case bus.FileInfo, bus.ToggleHex, bus.Highlight,
		bus.FromHexOffset, bus.ToHexOffset, bus.HVStartSearch, bus.HVSearchNext, bus.HVSearchPrev,
		bus.Goto, bus.TextSearch, bus.HexSearch:
		// Component-to-component traffic.
	}
}

func (a *App) setDialog(d component.Component) {
	if a.dialog != nil {
		log.Debug().Str("old", fmt.Sprintf("%T", a.dialog)).Str("new", fmt.Sprintf("%T", d)).Msg("dialog replaced")
	}
	a.dialog = d
}

// Render composes the frame: panels, status line, button bar and, over the
// panel region, the dialog.
func (a *App) Render(s *surface.Surface) {
	regions := surface.Split(s.Area())
	left, right := surface.SplitHalves(regions.Panels)

	a.panels[0].Render(s, left, a.focusOf(0))
	a.panels[1].Render(s, right, a.focusOf(1))
	s.Draw(regions.Status, a.styles.Status.Render(a.panels[a.focus].Status()))
	a.buttons.Render(s, regions.Buttons, component.Normal)

	if a.dialog != nil {
		a.dialog.Render(s, regions.Panels, component.Normal)
	}
}

func (a *App) focusOf(i int) component.Focus {
	if i == a.focus {
		return component.Focused
	}
	return component.Normal
}
