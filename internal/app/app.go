package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/five82/fm/internal/bus"
	"github.com/five82/fm/internal/buttonbar"
	"github.com/five82/fm/internal/config"
	"github.com/five82/fm/internal/events"
	"github.com/five82/fm/internal/fm"
	"github.com/five82/fm/internal/logging"
	"github.com/five82/fm/internal/panel"
	"github.com/five82/fm/internal/state"
	"github.com/five82/fm/internal/surface"
	"github.com/five82/fm/internal/terminal"
	"github.com/five82/fm/internal/theme"
)

// Options configure the file manager.
type Options struct {
	ConfigPath string // empty uses $XDG_CONFIG_HOME/fm/fm-config.toml
	PrefsPath  string // empty uses $XDG_CONFIG_HOME/fm/prefs.toml
	LogPath    string // empty uses $XDG_CACHE_HOME/fm/fm.log
	PrintWD    string // file receiving the focused directory on exit
	Debug      bool
	NoRestore  bool     // ignore the saved panel directories
	Dirs       []string // optional left and right directories
}

// screen is what the run loop needs from the terminal.
type screen interface {
	Show(frame string)
	Clear()
	Suspend()
	Size() (int, int)
}

// Run boots the file manager until the user quits, a terminating signal
// arrives or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	closer, err := logging.Setup(logging.Options{Path: opts.LogPath, Debug: opts.Debug})
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer closer.Close()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	styles := theme.New(cfg)

	leftDir, rightDir, err := panelDirs(opts)
	if err != nil {
		return err
	}

	b := bus.New()
	defer b.Close()

	left, err := panel.New(leftDir, b, styles)
	if err != nil {
		return fmt.Errorf("init left panel: %w", err)
	}
	right, err := panel.New(rightDir, b, styles)
	if err != nil {
		return fmt.Errorf("init right panel: %w", err)
	}

	store := &state.Store{}
	term := terminal.New(store, tea.WithContext(ctx))
	src := events.Start(term)
	defer src.Close()

	a := fm.New(fm.Options{
		Styles:    styles,
		Events:    src.Events(),
		Messages:  b.Messages(),
		Publisher: b,
		Left:      left,
		Right:     right,
		ButtonBar: buttonbar.New(buttonbar.Labels, styles),
	})
	log.Info().Str("left", leftDir).Str("right", rightDir).Msg("fm started")

	done := make(chan error, 1)
	go func() {
		action, err := loop(a, term)
		log.Info().Stringer("action", action).Err(err).Int("undelivered", b.Pending()).Msg("run loop finished")
		term.Quit()
		done <- err
	}()

	termErr := term.Run()
	var loopErr error
	select {
	case loopErr = <-done:
	default:
		// The terminal went away first; closing the source wakes the loop.
		src.Close()
		loopErr = <-done
		if errors.Is(loopErr, fm.ErrDisconnected) {
			loopErr = nil
		}
	}

	l, r := a.Dirs()
	if err := finish(opts, l, r, a.Dir()); err != nil {
		return err
	}
	return errors.Join(loopErr, termErr)
}

// loop renders a frame, waits for one tick and applies the resulting action,
// until an exiting action or an error.
func loop(a *fm.App, scr screen) (fm.Action, error) {
	for {
		w, h := scr.Size()
		s := surface.New(w, h)
		a.Render(s)
		scr.Show(s.String())

		action, err := a.Step()
		if err != nil {
			return action, err
		}
		switch action {
		case fm.Redraw, fm.SigCont:
			scr.Clear()
		case fm.CtrlZ:
			scr.Suspend()
		case fm.Continue, fm.Quit, fm.CtrlC, fm.SigTerm:
		}
		if action.Exits() {
			return action, nil
		}
	}
}
