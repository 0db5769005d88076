// Package toaster shows a short-lived notification at the bottom of the
// screen. A newer toast replaces the current one and restarts its timer.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style picks the toast's icon and border color.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// ShowMsg asks the owner of the toaster to display a toast.
type ShowMsg struct {
	Message string
	Style   Style
}

// Show returns a command that emits ShowMsg.
func Show(message string, style Style) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Message: message, Style: style} }
}

// DismissMsg hides the toast it was scheduled for. Dismissals for toasts
// that were since replaced are ignored.
type DismissMsg struct {
	Seq int
}

// Model holds the toaster state.
type Model struct {
	message  string
	style    Style
	visible  bool
	seq      int
	duration time.Duration
}

// New creates a hidden toaster.
func New() Model {
	return Model{duration: DefaultDuration}
}

// WithDuration changes how long toasts stay up.
func (m Model) WithDuration(d time.Duration) Model {
	if d > 0 {
		m.duration = d
	}
	return m
}

// Show displays message and schedules its dismissal.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.seq++
	m.message = message
	m.style = style
	m.visible = true
	seq := m.seq
	return m, tea.Tick(m.duration, func(time.Time) tea.Msg { return DismissMsg{Seq: seq} })
}

// Hide dismisses the toast now.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible reports whether a toast is showing.
func (m Model) Visible() bool { return m.visible }

// Message is the current text.
func (m Model) Message() string { return m.message }

// Update handles ShowMsg and DismissMsg.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		return m.Show(msg.Message, msg.Style)
	case DismissMsg:
		if msg.Seq == m.seq {
			m = m.Hide()
		}
	}
	return m, nil
}

// View renders the toast box, or "" when hidden.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}
	style := lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
	var icon string
	switch m.style {
	case StyleError:
		style, icon = style.BorderForeground(styles.ToastErrorColor), "✗"
	case StyleInfo:
		style, icon = style.BorderForeground(styles.ToastInfoColor), "i"
	case StyleWarn:
		style, icon = style.BorderForeground(styles.StatusWarningColor), "!"
	default:
		style, icon = style.BorderForeground(styles.ToastSuccessColor), "✓"
	}
	return style.Render(icon + " " + m.message)
}

// Overlay draws the toast bottom-center over bg.
func (m Model) Overlay(bg string, width, height int) string {
	fg := m.View()
	if fg == "" {
		return bg
	}
	return overlay.Place(overlay.Config{Width: width, Height: height, Position: overlay.Bottom, PadY: 1}, fg, bg)
}
