// Package pubsub provides a small typed publish/subscribe broker and the glue
// needed to receive its events inside a Bubble Tea update loop.
package pubsub

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EventType names what happened to the payload.
type EventType string

const (
	CreatedEvent EventType = "created"
	UpdatedEvent EventType = "updated"
	DeletedEvent EventType = "deleted"
)

// Event wraps a payload with its type and publish time.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

const defaultBuffer = 32

// Broker fans events out to every live subscriber. Slow subscribers lose
// events rather than blocking the publisher.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]struct{}
	buffer int
	closed bool
}

// NewBroker creates a broker whose subscriber channels hold 32 events.
func NewBroker[T any]() *Broker[T] {
	return &Broker[T]{
		subs:   make(map[chan Event[T]]struct{}),
		buffer: defaultBuffer,
	}
}

// Subscribe registers a subscriber. The returned channel is closed when ctx
// is done or the broker is closed.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event[T], b.buffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()
	return ch
}

func (b *Broker[T]) unsubscribe(ch chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; !ok {
		return
	}
	delete(b.subs, ch)
	close(ch)
}

// Publish delivers payload to all subscribers without blocking.
func (b *Broker[T]) Publish(t EventType, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	ev := Event[T]{Type: t, Payload: payload, Timestamp: time.Now()}
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes every subscriber channel. Further publishes are dropped.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	b.subs = nil
}

// SubscriberCount reports the number of live subscriptions.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Listener turns a subscription into a stream of tea.Cmds. Call Listen again
// after handling each event to keep receiving.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewListener subscribes to broker for the lifetime of ctx.
func NewListener[T any](ctx context.Context, broker *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Listen waits for the next event. It yields nil once the subscription ends.
func (l *Listener[T]) Listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-l.ctx.Done():
			return nil
		case ev, ok := <-l.ch:
			if !ok {
				return nil
			}
			return ev
		}
	}
}
