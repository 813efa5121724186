// Package mailbox provides an unbounded multi-producer, single-consumer queue
// that is drained through an ordinary channel so it can take part in select.
package mailbox

import (
	"errors"
	"sync"
)

// ErrClosed is returned by Send once the consumer has closed the mailbox.
var ErrClosed = errors.New("mailbox: receiver closed")

// Mailbox is the receiving side of the queue.
type Mailbox[T any] struct {
	mu       sync.Mutex
	queue    []T
	inflight int // value taken off the queue but not yet received
	senders  int
	closed   bool

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	out       chan T
}

// Sender is a producer handle. Each handle must be closed exactly once; the
// receive channel closes after the last sender is closed and the queue drains.
type Sender[T any] struct {
	m    *Mailbox[T]
	once sync.Once
}

// New creates a mailbox together with its first sender.
func New[T any]() (*Sender[T], *Mailbox[T]) {
	m := &Mailbox[T]{
		senders: 1,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		out:     make(chan T),
	}
	go m.pump()
	return &Sender[T]{m: m}, m
}

// Receive returns the channel delivering queued values in FIFO order.
func (m *Mailbox[T]) Receive() <-chan T {
	return m.out
}

// Len reports the number of values not yet received. A value handed to the
// receiver may still be counted until the pump resumes.
func (m *Mailbox[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue) + m.inflight
}

// Close drops the consumer side. Pending values are discarded and every
// subsequent Send fails with ErrClosed.
func (m *Mailbox[T]) Close() {
	m.closeOnce.Do(func() {
		m.mu.Lock()
		m.closed = true
		m.queue = nil
		m.inflight = 0
		m.mu.Unlock()
		close(m.done)
	})
}

func (m *Mailbox[T]) pump() {
	defer close(m.out)
	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			finished := m.closed || m.senders == 0
			m.mu.Unlock()
			if finished {
				return
			}
			select {
			case <-m.wake:
			case <-m.done:
				return
			}
			continue
		}
		next := m.queue[0]
		var zero T
		m.queue[0] = zero
		m.queue = m.queue[1:]
		m.inflight = 1
		m.mu.Unlock()

		select {
		case m.out <- next:
			m.mu.Lock()
			m.inflight = 0
			m.mu.Unlock()
		case <-m.done:
			return
		}
	}
}

func (m *Mailbox[T]) notify() {
	select {
	case m.wake <- struct{}{}:
	default:
	}
}

// Clone returns an additional sender for the same mailbox.
func (s *Sender[T]) Clone() *Sender[T] {
	s.m.mu.Lock()
	s.m.senders++
	s.m.mu.Unlock()
	return &Sender[T]{m: s.m}
}

// Send enqueues v without blocking.
func (s *Sender[T]) Send(v T) error {
	m := s.m
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	m.queue = append(m.queue, v)
	m.mu.Unlock()
	m.notify()
	return nil
}

// Close releases this sender handle.
func (s *Sender[T]) Close() {
	s.once.Do(func() {
		s.m.mu.Lock()
		s.m.senders--
		s.m.mu.Unlock()
		s.m.notify()
	})
}
