package drafts

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
	"github.com/zjrosen/parley/internal/ui/tooltip"
)

// RowHeight is the number of lines a row occupies, including the spacer.
const RowHeight = 5

const previewLines = 2

var lastRowID atomic.Int64

// Row is one draft.
type Row struct {
	id      int
	draft   chat.Draft
	props   Props
	author  chat.User
	status  chat.Status
	actions []Action
	hover   int // hovered action, -1 for none
	tip     tooltip.Model
}

// NewRow builds a row for d.
func NewRow(d chat.Draft, p Props, author chat.User, status chat.Status) Row {
	return Row{
		id:      int(lastRowID.Add(1)),
		draft:   d,
		props:   p,
		author:  author,
		status:  status,
		actions: DefaultActions(),
		hover:   -1,
		tip:     tooltip.New(""),
	}
}

// Draft is the row's draft.
func (r Row) Draft() chat.Draft { return r.draft }

// Props is the row's destination.
func (r Row) Props() Props { return r.props }

// SetProps replaces the destination, e.g. after a profile loads.
func (r Row) SetProps(p Props) Row {
	r.props = p
	return r
}

// Tooltip is the row's hover hint.
func (r Row) Tooltip() tooltip.Model { return r.tip }

func (r Row) actionZoneID(kind ActionKind) string {
	return fmt.Sprintf("draft-%d:%s", r.id, kind)
}

// Update handles action hover/click, delayed hints and, when selected,
// the action keys.
func (r Row) Update(msg tea.Msg, selected bool) (Row, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.Msg[overlay.Rect]:
		var cmd tea.Cmd
		r.tip, cmd = r.tip.Update(msg)
		return r, cmd

	case tea.MouseMsg:
		return r.handleMouse(msg)

	case tea.KeyMsg:
		if !selected {
			return r, nil
		}
		for kind, binding := range map[ActionKind]key.Binding{
			ActionEdit:   keys.Drafts.Edit,
			ActionDelete: keys.Drafts.Delete,
			ActionSend:   keys.Drafts.Send,
		} {
			if key.Matches(msg, binding) {
				return r, r.emit(kind)
			}
		}
	}
	return r, nil
}

func (r Row) handleMouse(msg tea.MouseMsg) (Row, tea.Cmd) {
	for i, a := range r.actions {
		z := zone.Get(r.actionZoneID(a.Kind))
		if !z.InBounds(msg) {
			continue
		}
		switch {
		case msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft:
			r.tip = r.tip.Hide()
			return r, r.emit(a.Kind)
		case msg.Action == tea.MouseActionMotion:
			if r.hover == i && (r.tip.Visible() || r.tip.Text() == a.Tooltip) {
				return r, nil
			}
			r.hover = i
			r.tip = r.tip.SetText(a.Tooltip)
			var cmd tea.Cmd
			r.tip, cmd = r.tip.Show(overlay.ZoneRect(z))
			return r, cmd
		}
		return r, nil
	}
	if msg.Action == tea.MouseActionMotion && r.hover >= 0 {
		r.hover = -1
		r.tip = r.tip.Hide()
	}
	return r, nil
}

func (r Row) emit(kind ActionKind) tea.Cmd {
	dk := r.draft.Key
	return func() tea.Msg { return ActionMsg{Kind: kind, DraftKey: dk} }
}

// View renders the row in width cells. Unknown draft types render nothing.
func (r Row) View(width int, selected bool) string {
	if r.draft.Type != chat.DraftChannel && r.draft.Type != chat.DraftThread {
		return ""
	}
	inner := max(width-1, 10)

	var buttons []string
	for i, a := range r.actions {
		buttons = append(buttons, zone.Mark(r.actionZoneID(a.Kind), a.View(i == r.hover)))
	}
	actions := strings.Join(buttons, "")

	header := styles.AvatarStyle.Render(r.author.Initials()) + " " +
		styles.DraftNameStyle.Render(r.author.DisplayName()) + " " +
		statusDot(r.status)
	gap := max(inner-lipgloss.Width(header)-lipgloss.Width(actions), 1)
	header = header + strings.Repeat(" ", gap) + actions

	lines := []string{
		header,
		ansi.Truncate(Title(r.props), inner, "…"),
	}
	lines = append(lines, preview(r.draft.Message, inner)...)

	body := strings.Join(lines, "\n")
	if selected {
		return styles.DraftSelectedStyle.Render(body)
	}
	return " " + strings.ReplaceAll(body, "\n", "\n ")
}

// preview word-wraps msg to width and keeps previewLines lines, marking a
// cut with an ellipsis.
func preview(msg string, width int) []string {
	msg = strings.Join(strings.Fields(msg), " ")
	wrapped := strings.Split(wordwrap.String(msg, width), "\n")
	if len(wrapped) <= previewLines {
		return wrapped
	}
	lines := wrapped[:previewLines]
	last := lines[previewLines-1]
	if ansi.StringWidth(last)+1 > width {
		last = ansi.Truncate(last, width-1, "")
	}
	lines[previewLines-1] = last + "…"
	return lines
}

func statusDot(s chat.Status) string {
	color := styles.TextMutedColor
	switch s {
	case chat.StatusOnline:
		color = styles.StatusSuccessColor
	case chat.StatusAway:
		color = styles.StatusWarningColor
	case chat.StatusDND:
		color = styles.StatusErrorColor
	}
	return lipgloss.NewStyle().Foreground(color).Render("●")
}
