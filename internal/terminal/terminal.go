// Package terminal drives the screen through a bubbletea program. The program
// only does terminal I/O: decoded input is queued for the event source and
// frames rendered elsewhere are displayed as-is.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"

	"github.com/five82/fm/internal/mailbox"
	"github.com/five82/fm/internal/state"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type (
	frameMsg   string
	clearMsg   struct{}
	suspendMsg struct{}
)

// Terminal owns the bubbletea program and the input queue it feeds.
type Terminal struct {
	program *tea.Program
	model   *model
	input   *mailbox.Mailbox[tea.Msg]
	store   *state.Store
	out     *os.File

	done    chan struct{}
	runOnce sync.Once
	err     error
}

// New prepares a program in the alternate screen with mouse reporting and
// without bubbletea's own signal handling. Extra options are appended.
func New(store *state.Store, opts ...tea.ProgramOption) *Terminal {
	tx, box := mailbox.New[tea.Msg]()
	m := &model{input: tx, store: store}

	base := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithoutSignalHandler(),
	}
	return &Terminal{
		program: tea.NewProgram(m, append(base, opts...)...),
		model:   m,
		input:   box,
		store:   store,
		out:     os.Stdout,
		done:    make(chan struct{}),
	}
}

// Run blocks until the program exits. The input queue is closed afterwards so
// readers see io.EOF once it drains.
func (t *Terminal) Run() error {
	t.runOnce.Do(func() {
		defer close(t.done)
		defer t.model.input.Close()

		_, err := t.program.Run()
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			t.err = fmt.Errorf("run terminal: %w", err)
		}
		log.Debug().Err(err).Msg("terminal program exited")
	})
	return t.err
}

// Done is closed when Run returns.
func (t *Terminal) Done() <-chan struct{} {
	return t.done
}

// ReadMsg implements events.InputReader.
func (t *Terminal) ReadMsg() (tea.Msg, error) {
	msg, ok := <-t.input.Receive()
	if !ok {
		return nil, io.EOF
	}
	return msg, nil
}

// Show displays frame on the next repaint.
func (t *Terminal) Show(frame string) {
	t.program.Send(frameMsg(frame))
}

// Clear forces a full repaint.
func (t *Terminal) Clear() {
	t.program.Send(clearMsg{})
}

// Suspend releases the terminal and stops the process until it is resumed.
func (t *Terminal) Suspend() {
	t.program.Send(suspendMsg{})
}

// Quit stops the program.
func (t *Terminal) Quit() {
	t.program.Quit()
}

// Size probes the terminal and records the result. When stdout is not a
// terminal the last reported size is used.
func (t *Terminal) Size() (int, int) {
	if w, h, err := term.GetSize(int(t.out.Fd())); err == nil && t.store.Update(w, h) {
		return w, h
	}
	return t.store.Size(fallbackWidth, fallbackHeight)
}

// model is the bubbletea side of the terminal.
type model struct {
	input *mailbox.Sender[tea.Msg]
	store *state.Store
	frame string
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
		return m, nil
	case clearMsg:
		return m, tea.ClearScreen
	case suspendMsg:
		return m, tea.Suspend
	case tea.WindowSizeMsg:
		if m.store.Update(msg.Width, msg.Height) {
			snap := m.store.Snapshot()
			log.Debug().
				Int("width", snap.Width).
				Int("height", snap.Height).
				Int("resizes", snap.Resizes).
				Time("at", snap.LastUpdated).
				Msg("terminal size")
		}
	}
	m.forward(msg)
	return m, nil
}

func (m *model) View() string {
	return m.frame
}

func (m *model) forward(msg tea.Msg) {
	if err := m.input.Send(msg); err != nil {
		log.Debug().Err(err).Str("msg", fmt.Sprintf("%T", msg)).Msg("terminal: input dropped")
	}
}
