package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/ui/drafts"
	"github.com/zjrosen/parley/internal/ui/nav"
	"github.com/zjrosen/parley/internal/ui/styles"
	"github.com/zjrosen/parley/internal/ui/tutorialtip"
)

const (
	composerHeight = 5
	footerHeight   = 1
	zoneComposer   = "app-composer"
)

// View implements tea.Model. Overlays are stacked bottom to top: hints,
// the tutorial tip, the picker, toasts and the debug log.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	main := lipgloss.JoinVertical(lipgloss.Left, m.drafts.View(), m.composerView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), main)
	view := lipgloss.JoinVertical(lipgloss.Left, body, m.help.ShortHelpView(keys.ShortHelp()))

	view = m.drafts.Overlay(view, m.width, m.height)
	view = m.broadcast.Overlay(view, m.width, m.height)
	if !m.picker.IsOpen() {
		view = m.tip.Overlay(view, m.width, m.height)
	}
	view = m.picker.Overlay(view)
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.debugMode && m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}

	return zone.Scan(view)
}

func (m Model) sidebarView() string {
	dir := m.svc.Directory
	team := m.svc.Config.Team.Name
	inner := sidebarWidth - 2

	lines := []string{
		styles.DraftNameStyle.Render(dir.Me().DisplayName()),
		"",
	}

	threadsPath := nav.TeamPath(team, "threads")
	threads := "💬 Threads"
	if m.route == threadsPath {
		threads = styles.CategoryTabActiveStyle.Render(threads)
	}
	lines = append(lines, zone.Mark(tutorialtip.ThreadsButtonZone, threads), "")

	for _, c := range dir.Channels() {
		label := channelIcon(dir, c) + " " + dir.ChannelName(c.ID)
		if m.route == nav.TeamPath(team, "channels", c.ID) {
			label = styles.CategoryTabActiveStyle.Render(label)
		}
		lines = append(lines, label)
	}

	height := max(m.height-footerHeight, 3)
	return styles.RenderPanel(strings.Join(lines, "\n"), team, inner+2, height, false)
}

func channelIcon(dir *chat.Directory, c chat.Channel) string {
	p := drafts.PropsFor(dir, chat.Draft{ChannelID: c.ID})
	return drafts.Icon(p)
}

func (m Model) composerView() string {
	width := max(m.width-sidebarWidth, 20)
	title := "Reply in " + m.svc.Directory.ChannelName(m.channelID)
	if m.draftKey != "" {
		title += " (draft)"
	}
	content := m.composer.View() + "\n\n" + m.broadcast.View()
	return zone.Mark(zoneComposer, styles.RenderPanel(content, title, width, composerHeight, m.focus != focusDrafts))
}
