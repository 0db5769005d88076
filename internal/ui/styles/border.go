package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderPanel renders content inside a rounded border with the title embedded
// in the top edge: ╭─ Title ─────╮. Content is clipped to the inner area.
func RenderPanel(content, title string, width, height int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = BorderFocusColor
	}
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(OverlayTitleColor).Bold(true)

	innerWidth := max(width-2, 1)
	contentHeight := max(height-2, 1)

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(topBorder(title, innerWidth, borderStyle, titleStyle))
	for i := range contentHeight {
		var line string
		if i < len(lines) {
			line = ansi.Truncate(lines[i], innerWidth, "")
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

func topBorder(title string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	// "─ " + title + " " needs at least four cells.
	if title == "" || innerWidth < 4 {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	title = ansi.Truncate(title, innerWidth-4, "…")
	remaining := max(innerWidth-3-lipgloss.Width(title), 0)

	return borderStyle.Render(borderTopLeft+borderHorizontal+" ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, remaining)+borderTopRight)
}

// Truncate shortens s to maxWidth cells, ending with an ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}
