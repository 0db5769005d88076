// Package logoverlay is the in-app debug log viewer. It keeps the most
// recent entries published by internal/log and shows them filtered by level.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/pubsub"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
)

const (
	maxEntries        = 500
	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	entries  []string
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden overlay showing every level.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Append records a log entry, dropping the oldest past the buffer size.
func (m Model) Append(entry string) Model {
	entry = strings.TrimSuffix(entry, "\n")
	m.entries = append(m.entries, entry)
	if over := len(m.entries) - maxEntries; over > 0 {
		m.entries = append([]string(nil), m.entries[over:]...)
	}
	if m.visible {
		m = m.refresh()
	}
	return m
}

// Entries returns the buffered entries, oldest first.
func (m Model) Entries() []string { return m.entries }

// Update handles log events and, while visible, the overlay keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pubsub.Event[string]:
		return m.Append(msg.Payload), nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "c":
			m.entries = nil
		case "d":
			m.minLevel = log.LevelDebug
		case "i":
			m.minLevel = log.LevelInfo
		case "w":
			m.minLevel = log.LevelWarn
		case "e":
			m.minLevel = log.LevelError
		case "j", "down":
			m.viewport.ScrollDown(1)
			return m, nil
		case "k", "up":
			m.viewport.ScrollUp(1)
			return m, nil
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "ctrl+x", "esc":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		default:
			return m, nil
		}
		return m.refresh(), nil

	case tea.MouseMsg:
		if m.visible {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// Toggle flips visibility.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m = m.refresh()
	}
	return m
}

// Hide closes the overlay.
func (m Model) Hide() Model {
	m.visible = false
	return m
}

// Visible reports whether the overlay shows.
func (m Model) Visible() bool { return m.visible }

// SetSize records the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	return m.refresh()
}

func (m Model) boxWidth() int { return max(min(m.width-4, boxMaxWidth), boxMinWidth) }

func (m Model) refresh() Model {
	if m.width == 0 || m.height == 0 {
		return m
	}
	contentWidth := m.boxWidth() - 2
	// Header, footer and borders take six lines.
	h := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)
	m.viewport = viewport.New(contentWidth, h)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.GotoBottom()
	return m
}

func (m Model) content(width int) string {
	var lines []string
	for _, e := range m.entries {
		if level, ok := entryLevel(e); ok && level < m.minLevel {
			continue
		}
		lines = append(lines, colorize(e, width))
	}
	if len(lines) == 0 {
		return styles.NoResultsStyle.Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

func entryLevel(entry string) (log.Level, bool) {
	for _, l := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+l.String()+"]") {
			return l, true
		}
	}
	return 0, false
}

func colorize(entry string, width int) string {
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width, "…")
	}
	color := styles.TextPrimaryColor
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.ToastInfoColor
		default:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w := m.boxWidth()
	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", w))
	header := lipgloss.NewStyle().Bold(true).Foreground(styles.OverlayTitleColor).PaddingLeft(1).Render("Logs")

	body := strings.Join([]string{header, divider, m.viewport.View(), divider, m.hints()}, "\n")
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(w).
		Render(body)
}

func (m Model) hints() string {
	hints := []string{styles.MutedStyle.Render("[c] Clear")}
	for _, h := range []struct {
		label string
		level log.Level
	}{{"[d] Debug", log.LevelDebug}, {"[i] Info", log.LevelInfo}, {"[w] Warn", log.LevelWarn}, {"[e] Error", log.LevelError}} {
		style := styles.MutedStyle
		if h.level == m.minLevel {
			style = styles.PreviewNameStyle
		}
		hints = append(hints, style.Render(h.label))
	}
	return strings.Join(hints, "  ")
}

// Overlay centers the box over bg.
func (m Model) Overlay(bg string) string {
	fg := m.View()
	if fg == "" {
		return bg
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, fg, bg)
}
