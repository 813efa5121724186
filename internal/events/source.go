package events

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/five82/fm/internal/mailbox"
)

// Signals is the fixed registration set forwarded by the signal producer.
var Signals = []os.Signal{syscall.SIGWINCH, syscall.SIGINT, syscall.SIGTERM, syscall.SIGCONT}

// InputReader supplies decoded terminal messages. ReadMsg blocks until the
// next message is available; io.EOF ends the stream.
type InputReader interface {
	ReadMsg() (tea.Msg, error)
}

// Source owns the two producers and the shared channel they write to.
type Source struct {
	box  *mailbox.Mailbox[Event]
	stop func()
	wg   sync.WaitGroup
	once sync.Once
}

// Start registers the signal set and spawns the input and signal producers.
func Start(input InputReader) *Source {
	sigs := make(chan os.Signal, len(Signals))
	signal.Notify(sigs, Signals...)
	return start(input, sigs, func() {
		signal.Stop(sigs)
		close(sigs)
	})
}

func start(input InputReader, sigs <-chan os.Signal, stop func()) *Source {
	tx, box := mailbox.New[Event]()
	s := &Source{box: box, stop: stop}

	inputTx := tx.Clone()
	signalTx := tx.Clone()
	tx.Close()

	s.wg.Add(2)
	go s.readInput(input, inputTx)
	go s.readSignals(sigs, signalTx)
	return s
}

// Events returns the shared channel. It is closed once both producers exit.
func (s *Source) Events() <-chan Event {
	return s.box.Receive()
}

// Close drops the consumer side. Producers notice on their next send and exit.
func (s *Source) Close() {
	s.once.Do(func() {
		s.box.Close()
		if s.stop != nil {
			s.stop()
		}
	})
}

// Wait blocks until both producers have exited.
func (s *Source) Wait() {
	s.wg.Wait()
}

func (s *Source) readInput(input InputReader, tx *mailbox.Sender[Event]) {
	defer s.wg.Done()
	defer tx.Close()

	for {
		msg, err := input.ReadMsg()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Warn().Err(err).Msg("input producer: read failed")
			}
			return
		}
		ev, ok := Decode(msg)
		if !ok {
			continue
		}
		if err := tx.Send(ev); err != nil {
			log.Warn().Err(err).Msg("input producer stopped")
			return
		}
	}
}

func (s *Source) readSignals(sigs <-chan os.Signal, tx *mailbox.Sender[Event]) {
	defer s.wg.Done()
	defer tx.Close()

	for sig := range sigs {
		code, ok := sig.(syscall.Signal)
		if !ok {
			continue
		}
		if err := tx.Send(Signal{Sig: code}); err != nil {
			log.Warn().Err(err).Msg("signal producer stopped")
			return
		}
	}
}
