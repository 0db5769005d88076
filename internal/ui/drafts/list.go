package drafts

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
	"github.com/zjrosen/parley/internal/ui/vlist"
)

// Model is the draft list pane.
type Model struct {
	ctx      context.Context
	dir      Directory
	fetcher  ProfileFetcher
	rows     []Row
	selected int
	focused  bool
	list     vlist.Model
	width    int
	height   int
}

// New creates an empty list resolving destinations through dir.
func New(dir Directory, fetcher ProfileFetcher) Model {
	return Model{
		ctx:     context.Background(),
		dir:     dir,
		fetcher: fetcher,
		list:    vlist.New(RowHeight),
	}
}

// SetDrafts replaces the drafts and starts fetches for unknown teammates.
func (m Model) SetDrafts(drafts []chat.Draft) (Model, tea.Cmd) {
	me := m.dir.Me()
	rows := make([]Row, 0, len(drafts))
	var cmds []tea.Cmd
	requested := map[string]bool{}
	for _, d := range drafts {
		author, ok := m.dir.User(d.UserID)
		if !ok {
			author = me
		}
		p := PropsFor(m.dir, d)
		rows = append(rows, NewRow(d, p, author, m.dir.Status(author.ID)))
		if !requested[p.TeammateID] {
			if cmd := FetchMissingProfile(m.ctx, m.fetcher, p); cmd != nil {
				requested[p.TeammateID] = true
				cmds = append(cmds, cmd)
			}
		}
	}
	m.rows = rows
	m.selected = min(m.selected, max(len(rows)-1, 0))
	m.list = m.list.SetRowCount(len(rows))
	return m, tea.Batch(cmds...)
}

// Len is the number of drafts.
func (m Model) Len() int { return len(m.rows) }

// Rows returns the rows in display order.
func (m Model) Rows() []Row { return m.rows }

// Selected returns the highlighted draft.
func (m Model) Selected() (chat.Draft, bool) {
	if m.selected < 0 || m.selected >= len(m.rows) {
		return chat.Draft{}, false
	}
	return m.rows[m.selected].Draft(), true
}

// Focus makes the list respond to keys.
func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur stops key handling.
func (m Model) Blur() Model {
	m.focused = false
	return m
}

// Focused reports whether the list has focus.
func (m Model) Focused() bool { return m.focused }

// SetSize sets the pane size.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.list = m.list.SetHeight(max(height-2, 0))
	return m
}

// Update handles navigation, profile loads and row messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProfilesLoadedMsg:
		if msg.Err != nil {
			return m, nil
		}
		for i, r := range m.rows {
			m.rows[i] = r.SetProps(PropsFor(m.dir, r.Draft()))
		}
		log.Debug(log.CatUI, "draft titles refreshed", "profiles", len(msg.Users))
		return m, nil

	case debounce.Msg[overlay.Rect]:
		var cmds []tea.Cmd
		for i := range m.rows {
			var cmd tea.Cmd
			m.rows[i], cmd = m.rows[i].Update(msg, i == m.selected)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
		var cmds []tea.Cmd
		start, end := m.list.VisibleRange()
		for i := start; i < end && i < len(m.rows); i++ {
			var cmd tea.Cmd
			m.rows[i], cmd = m.rows[i].Update(msg, i == m.selected)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.focused || len(m.rows) == 0 {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.App.Up):
			m.selected = max(m.selected-1, 0)
			m.list = m.list.EnsureVisible(m.selected)
			return m, nil
		case key.Matches(msg, keys.App.Down):
			m.selected = min(m.selected+1, len(m.rows)-1)
			m.list = m.list.EnsureVisible(m.selected)
			return m, nil
		}
		var cmd tea.Cmd
		m.rows[m.selected], cmd = m.rows[m.selected].Update(msg, true)
		return m, cmd
	}
	return m, nil
}

// View renders the pane.
func (m Model) View() string {
	var content string
	if len(m.rows) == 0 {
		content = styles.MutedStyle.Render("No drafts")
	} else {
		content = m.list.View(func(i int, _ vlist.Style, _ string) string {
			if i >= len(m.rows) {
				return ""
			}
			return m.rows[i].View(m.width-2, m.focused && i == m.selected)
		})
	}
	title := "Drafts"
	if n := len(m.rows); n > 0 {
		title += " (" + strconv.Itoa(n) + ")"
	}
	return styles.RenderPanel(content, title, m.width, m.height, m.focused)
}

// Overlay draws any visible action hint over bg.
func (m Model) Overlay(bg string, width, height int) string {
	for _, r := range m.rows {
		if r.tip.Visible() {
			return r.tip.Overlay(bg, width, height)
		}
	}
	return bg
}
