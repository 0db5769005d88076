// Package tooltip provides a delayed hover hint that attaches to a zone on
// screen. Hovering something new before the delay elapses supersedes the
// pending hint.
package tooltip

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
)

// DefaultDelay is how long the pointer must rest before the hint shows.
const DefaultDelay = 500 * time.Millisecond

const defaultMaxWidth = 40

// Model is a single tooltip. Components embed one per hint.
type Model struct {
	text     string
	maxWidth int
	side     overlay.Side
	anchor   overlay.Rect
	visible  bool
	delay    debounce.Debouncer[overlay.Rect]
}

// New creates a tooltip shown above its anchor after DefaultDelay.
func New(text string) Model {
	return Model{
		text:     text,
		maxWidth: defaultMaxWidth,
		side:     overlay.Above,
		delay:    debounce.New[overlay.Rect](DefaultDelay, false),
	}
}

// WithDelay replaces the hover delay.
func (m Model) WithDelay(d time.Duration) Model {
	m.delay = debounce.New[overlay.Rect](d, false)
	return m
}

// WithSide sets which side of the anchor the hint appears on.
func (m Model) WithSide(s overlay.Side) Model {
	m.side = s
	return m
}

// WithMaxWidth sets the wrap width of the hint text.
func (m Model) WithMaxWidth(w int) Model {
	if w > 0 {
		m.maxWidth = w
	}
	return m
}

// SetText replaces the hint text without changing visibility.
func (m Model) SetText(text string) Model {
	m.text = text
	return m
}

// Text returns the hint text.
func (m Model) Text() string { return m.text }

// Visible reports whether the hint is showing.
func (m Model) Visible() bool { return m.visible }

// Show schedules the hint for anchor. Re-hovering the anchor that is already
// shown is a no-op.
func (m Model) Show(anchor overlay.Rect) (Model, tea.Cmd) {
	if m.visible && m.anchor == anchor {
		return m, nil
	}
	m.visible = false
	var cmd tea.Cmd
	m.delay, cmd = m.delay.Trigger(anchor)
	return m, cmd
}

// Hide hides the hint and cancels a pending one.
func (m Model) Hide() Model {
	m.visible = false
	m.delay = m.delay.Cancel()
	return m
}

// Update handles the delayed show message.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if dm, ok := msg.(debounce.Msg[overlay.Rect]); ok {
		var accept bool
		m.delay, accept = m.delay.Accept(dm)
		if accept {
			m.visible = true
			m.anchor = dm.Payload
		}
	}
	return m, nil
}

// View renders the hint box, or "" when hidden.
func (m Model) View() string {
	if !m.visible || m.text == "" {
		return ""
	}
	return styles.TooltipStyle.Render(wordwrap.String(m.text, m.maxWidth))
}

// Overlay draws the hint beside its anchor on top of bg.
func (m Model) Overlay(bg string, width, height int) string {
	view := m.View()
	if view == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Beside,
		Anchor:   m.anchor,
		Side:     m.side,
	}, view, bg)
}
