// Package bus carries semantic application messages between UI components.
// Any component may publish; the orchestrator drains the bus and broadcasts
// every message to all components.
package bus

import (
	"fmt"

	"github.com/five82/fm/internal/mailbox"
)

// Publisher is the capability handed to components at construction time.
type Publisher interface {
	Publish(msg Message) error
}

// Bus is an unbounded message queue with a single draining consumer.
type Bus struct {
	tx  *mailbox.Sender[Message]
	box *mailbox.Mailbox[Message]
}

// New creates an empty bus.
func New() *Bus {
	tx, box := mailbox.New[Message]()
	return &Bus{tx: tx, box: box}
}

// Publish enqueues msg. It never blocks and only fails after Close.
func (b *Bus) Publish(msg Message) error {
	if err := b.tx.Send(msg); err != nil {
		return fmt.Errorf("publish %T: %w", msg, err)
	}
	return nil
}

// Messages returns the channel the orchestrator drains.
func (b *Bus) Messages() <-chan Message {
	return b.box.Receive()
}

// Pending reports how many messages are queued.
func (b *Bus) Pending() int {
	return b.box.Len()
}

// Close stops delivery; later publishes fail.
func (b *Bus) Close() {
	b.box.Close()
}
