// Package debounce coalesces bursts of events inside a Bubble Tea program.
//
// Each Trigger tags its scheduled message with an increasing sequence number.
// When the message comes back through Update, Accept only lets the most
// recent tag through, so a newer trigger supersedes any pending one without
// timers having to be cancelled.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Msg is delivered when a debounced call fires (or would have fired).
type Msg[T any] struct {
	ID      int
	Tag     int
	Leading bool
	Payload T
}

// Debouncer is a value type; Trigger and Accept return the updated copy.
type Debouncer[T any] struct {
	id         int
	tag        int
	leadingTag int
	pending    bool
	wait       time.Duration
	leading    bool
}

// New creates a trailing-edge debouncer. With leading set, the first call of
// a burst also fires immediately.
func New[T any](wait time.Duration, leading bool) Debouncer[T] {
	return Debouncer[T]{id: nextID(), wait: wait, leading: leading}
}

// ID distinguishes debouncers sharing a message type.
func (d Debouncer[T]) ID() int { return d.id }

// Pending reports whether a trailing call is scheduled.
func (d Debouncer[T]) Pending() bool { return d.pending }

// Trigger records a call. The trailing message fires after the wait period
// unless another Trigger happens first.
func (d Debouncer[T]) Trigger(payload T) (Debouncer[T], tea.Cmd) {
	d.tag++
	tag, id := d.tag, d.id
	trailing := tea.Tick(d.wait, func(time.Time) tea.Msg {
		return Msg[T]{ID: id, Tag: tag, Payload: payload}
	})

	if d.leading && !d.pending {
		d.pending = true
		d.leadingTag = tag
		leading := func() tea.Msg {
			return Msg[T]{ID: id, Tag: tag, Leading: true, Payload: payload}
		}
		return d, tea.Batch(leading, trailing)
	}
	d.pending = true
	return d, trailing
}

// Accept reports whether msg should run. Superseded trailing messages and
// messages for other debouncers are rejected. A trailing message that only
// repeats an already-fired leading call is rejected too.
func (d Debouncer[T]) Accept(msg Msg[T]) (Debouncer[T], bool) {
	if msg.ID != d.id {
		return d, false
	}
	if msg.Leading {
		return d, msg.Tag == d.leadingTag
	}
	if msg.Tag != d.tag {
		return d, false
	}
	d.pending = false
	if d.leading && msg.Tag == d.leadingTag {
		return d, false
	}
	return d, true
}

// Cancel drops any pending call. Messages already in flight are rejected by
// Accept.
func (d Debouncer[T]) Cancel() Debouncer[T] {
	d.tag++
	d.pending = false
	d.leadingTag = 0
	return d
}
