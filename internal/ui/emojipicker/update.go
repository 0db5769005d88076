package emojipicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/ui/nav"
	"github.com/zjrosen/parley/internal/ui/vlist"
)

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case focusMsg:
		if msg.id != m.id || !m.open {
			return m, nil
		}
		return m, m.input.Focus()

	case debounce.Msg[int]:
		var ok bool
		if m.scroll, ok = m.scroll.Accept(msg); ok {
			m = m.settleScroll(msg.Payload)
		}
		return m, nil

	case vlist.ScrollMsg:
		return m.scrolled()

	case tea.MouseMsg:
		if !m.open {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if !m.open {
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey implements the search-box key semantics: arrow keys move the
// text caret or the emoji cursor depending on where focus logically is.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	value := m.input.Value()
	caret := m.input.Position()
	w := m.cfg.RowWidth

	switch {
	case key.Matches(msg, keys.Picker.Close):
		m = m.Close()
		return m, func() tea.Msg { return CloseMsg{} }

	case key.Matches(msg, keys.Picker.Select):
		return m.selectCurrent()

	case key.Matches(msg, keys.Picker.SkinTone):
		return m.cycleSkinTone()

	case key.Matches(msg, keys.Picker.NextCategory):
		return m.jumpToCategory(m.adjacentCategory(1)), nil

	case key.Matches(msg, keys.Picker.PrevCategory):
		return m.jumpToCategory(m.adjacentCategory(-1)), nil

	case key.Matches(msg, keys.Picker.PageDown):
		m.list = m.list.ScrollBy(m.list.Height())
		return m.scrolled()

	case key.Matches(msg, keys.Picker.PageUp):
		m.list = m.list.ScrollBy(-m.list.Height())
		return m.scrolled()

	case msg.Type == tea.KeyShiftUp || msg.Type == tea.KeyShiftDown:
		// Text selection; the grid ignores it.
		return m, nil

	case key.Matches(msg, keys.Picker.Right):
		if caret+1 > len([]rune(value)) || !m.cursor.IsSentinel() {
			return m.move(1, emoji.Next)
		}

	case key.Matches(msg, keys.Picker.Left):
		c := m.cursor
		switch {
		case c.CategoryIndex > 0 || c.EmojiIndex > 0:
			return m.move(1, emoji.Previous)
		case c.CategoryIndex == 0 && c.EmojiIndex == 0:
			m = m.resetCursor()
			m.input.CursorEnd()
			return m, nil
		}

	case key.Matches(msg, keys.Picker.Up):
		c := m.cursor
		switch {
		case c.CategoryIndex == -1:
			m.input.CursorStart()
			return m, nil
		case c.CategoryIndex == 0 && c.EmojiIndex < w:
			m = m.resetCursor()
			m.input.CursorEnd()
			return m, nil
		default:
			return m.move(w, emoji.Previous)
		}

	case key.Matches(msg, keys.Picker.Down):
		if value != "" && caret == 0 {
			m.input.CursorEnd()
			return m, nil
		}
		return m.move(w, emoji.Next)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == value {
		return m, cmd
	}
	var filterCmd tea.Cmd
	m, filterCmd = m.setFilter(m.input.Value())
	return m, tea.Batch(cmd, filterCmd)
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	click := msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
	hover := msg.Action == tea.MouseActionMotion

	if row, item, ok := m.slotAt(msg); ok {
		switch {
		case click:
			return m.selectEmoji(*item.Emoji)
		case hover:
			m.cursor = m.nav.Hover(row, item)
		}
		return m, nil
	}

	if !click {
		return m, nil
	}

	for _, name := range m.index.Categories {
		if zone.Get(m.categoryZoneID(name)).InBounds(msg) {
			return m.jumpToCategory(name), nil
		}
	}
	if zone.Get(m.zoneID(zoneSkin)).InBounds(msg) {
		return m.cycleSkinTone()
	}
	if m.cfg.CustomEmojisEnabled && zone.Get(m.zoneID(zoneCustomButton)).InBounds(msg) {
		m = m.Close()
		return m, nav.To(nav.TeamPath(m.cfg.TeamName, "emoji"))
	}
	return m, nil
}

// slotAt finds the visible emoji slot under the pointer.
func (m Model) slotAt(msg tea.MouseMsg) (int, emoji.RowItem, bool) {
	start, end := m.list.VisibleRange()
	for r := start; r < end; r++ {
		row, ok := m.rows.At(r)
		if !ok || row.Kind != emoji.EmojisRow {
			continue
		}
		for col, item := range row.Items {
			if item.Emoji != nil && zone.Get(m.slotZoneID(r, col)).InBounds(msg) {
				return r, item, true
			}
		}
	}
	return 0, emoji.RowItem{}, false
}
