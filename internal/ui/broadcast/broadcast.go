// Package broadcast is the "Also send to ~channel" checkbox shown under a
// thread reply box.
package broadcast

import (
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
	"github.com/zjrosen/parley/internal/ui/tooltip"
)

// TooltipText explains the checkbox.
const TooltipText = "Select this if you want your reply to be visible in the channel as well"

// ToggledMsg reports the new checkbox state.
type ToggledMsg struct {
	ChannelID string
	Checked   bool
}

var lastID atomic.Int64

// Model is the checkbox.
type Model struct {
	id                 int
	channelID          string
	channelDisplayName string
	checked            bool
	focused            bool
	tip                tooltip.Model
}

// New creates an unchecked box for a channel.
func New(channelID, channelDisplayName string) Model {
	return Model{
		id:                 int(lastID.Add(1)),
		channelID:          channelID,
		channelDisplayName: channelDisplayName,
		tip:                tooltip.New(TooltipText),
	}
}

// SetChannel retargets the box and clears it.
func (m Model) SetChannel(channelID, channelDisplayName string) Model {
	if channelID != m.channelID {
		m.checked = false
	}
	m.channelID = channelID
	m.channelDisplayName = channelDisplayName
	return m
}

// Checked reports the state.
func (m Model) Checked() bool { return m.checked }

// SetChecked sets the state without emitting ToggledMsg.
func (m Model) SetChecked(v bool) Model {
	m.checked = v
	return m
}

// Focus gives the box keyboard focus.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur removes keyboard focus and hides the hint.
func (m Model) Blur() Model {
	m.focused = false
	m.tip = m.tip.Hide()
	return m
}

// Focused reports keyboard focus.
func (m Model) Focused() bool { return m.focused }

// Tooltip is the hover hint.
func (m Model) Tooltip() tooltip.Model { return m.tip }

// Label is the unstyled label text.
func (m Model) Label() string {
	return "Also send to ~" + m.channelDisplayName
}

func (m Model) zoneID() string { return fmt.Sprintf("broadcast-%d", m.id) }

// Update handles toggling by key or click and the hover hint.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.Msg[overlay.Rect]:
		var cmd tea.Cmd
		m.tip, cmd = m.tip.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.focused && key.Matches(msg, keys.App.Toggle) {
			return m.toggle()
		}

	case tea.MouseMsg:
		z := zone.Get(m.zoneID())
		if !z.InBounds(msg) {
			if msg.Action == tea.MouseActionMotion {
				m.tip = m.tip.Hide()
			}
			return m, nil
		}
		switch msg.Action {
		case tea.MouseActionRelease:
			if msg.Button == tea.MouseButtonLeft {
				return m.toggle()
			}
		case tea.MouseActionMotion:
			var cmd tea.Cmd
			m.tip, cmd = m.tip.Show(overlay.ZoneRect(z))
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) toggle() (Model, tea.Cmd) {
	m.checked = !m.checked
	msg := ToggledMsg{ChannelID: m.channelID, Checked: m.checked}
	return m, func() tea.Msg { return msg }
}

// View renders "[x] Also send to ~channel".
func (m Model) View() string {
	box := "[ ]"
	if m.checked {
		box = "[x]"
	}
	boxStyle := styles.CheckboxStyle
	if m.focused {
		boxStyle = styles.CheckboxFocusedStyle
	}
	label := styles.CheckboxLabelStyle.Render("Also send to ") +
		styles.DraftNameStyle.Render("~"+m.channelDisplayName)
	return zone.Mark(m.zoneID(), boxStyle.Render(box)+" "+label)
}

// Overlay draws the hint over bg when visible.
func (m Model) Overlay(bg string, width, height int) string {
	return m.tip.Overlay(bg, width, height)
}
