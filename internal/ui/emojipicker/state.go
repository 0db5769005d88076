package emojipicker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/tracing"
)

// rebuildCatalog rebuilds the catalog from the current source, recents and
// tone, then rematerializes.
func (m Model) rebuildCatalog() Model {
	_, span := tracing.Start(m.ctx, m.cfg.Tracer, tracing.SpanCatalogBuild,
		attribute.String(tracing.AttrSkinTone, string(m.tone)),
	)
	prev := m.catalog
	var prevPtr *emoji.Catalog
	if prev.Version > 0 {
		prevPtr = &prev
	}
	m.catalog = emoji.Build(m.src, m.recent, m.tone, prevPtr)
	span.SetAttributes(
		attribute.Int(tracing.AttrCatalogVer, m.catalog.Version),
		attribute.Int(tracing.AttrCategoryCount, len(m.catalog.Categories)),
		attribute.Int(tracing.AttrEmojiCount, m.catalog.TotalEmojis()),
	)
	span.End()

	m.cfg.Cache.Flush(m.ctx)
	log.Debug(log.CatEmoji, "catalog rebuilt", "version", m.catalog.Version, "categories", len(m.catalog.Categories))
	return m.rematerialize()
}

// rematerialize derives rows and the offset index from the catalog and
// filter, and drops the cursor if it no longer resolves.
func (m Model) rematerialize() Model {
	_, span := tracing.Start(m.ctx, m.cfg.Tracer, tracing.SpanMaterialize,
		attribute.String(tracing.AttrFilter, m.filter),
		attribute.String(tracing.AttrSkinTone, string(m.tone)),
		attribute.Int(tracing.AttrRowWidth, m.cfg.RowWidth),
	)
	m.rows = m.cfg.Cache.Rows(m.ctx, m.catalog, m.filter, m.tone, m.cfg.RowWidth)
	m.index = emoji.NewOffsetIndex(m.rows)
	span.SetAttributes(
		attribute.Int(tracing.AttrRowCount, m.rows.Len()),
		attribute.Bool(tracing.AttrEmptySearch, m.rows.EmptySearch),
	)
	span.End()

	m.list = m.list.SetRowCount(m.rows.Len())

	m.cursor = m.nav.Relocate(m.cursor, m.index, m.rows)
	if m.index.CategoryIndex(m.activeCategory) < 0 && !m.filtering() {
		m.activeCategory = m.initialActiveCategory()
	}
	return m
}

func (m Model) filtering() bool { return m.filter != "" }

func (m Model) initialActiveCategory() emoji.CategoryName {
	if m.catalog.HasRecent() {
		return emoji.CategoryRecent
	}
	return emoji.CategorySmileys
}

// resetSession clears what a previous session left behind: search text,
// filter, cursor, scroll position and active category.
func (m Model) resetSession() Model {
	m.input.Reset()
	m.filter = ""
	m.cursor = emoji.NoCursor()
	m.scroll = m.scroll.Cancel()
	m = m.rematerialize()
	m.list = m.list.SetOffset(0)
	m.activeCategory = m.initialActiveCategory()
	return m
}

// setFilter applies a search-box edit. The cursor returns to the sentinel,
// the list scrolls to the top and the active category resets.
func (m Model) setFilter(raw string) (Model, tea.Cmd) {
	filter := emoji.NormalizeFilter(raw)
	if filter == m.filter {
		return m, nil
	}
	m.filter = filter
	m.cursor = emoji.NoCursor()
	m.activeCategory = m.initialActiveCategory()
	m.scroll = m.scroll.Cancel()
	m = m.rematerialize()
	m.list = m.list.SetOffset(0)

	cmds := []tea.Cmd{func() tea.Msg { return FilterChangeMsg{Filter: filter} }}
	if term := strings.TrimSpace(filter); term != "" && m.cfg.CustomEmojisEnabled && m.cfg.Search != nil {
		cmds = append(cmds, m.cfg.Search(m.ctx, term))
	}
	return m, tea.Batch(cmds...)
}

// move steps the cursor and keeps its row in view.
func (m Model) move(offset int, dir emoji.Direction) (Model, tea.Cmd) {
	m.cursor = m.nav.Move(m.cursor, offset, dir, m.index, m.rows)
	return m.revealCursor()
}

func (m Model) resetCursor() Model {
	m.cursor = emoji.NoCursor()
	return m
}

func (m Model) revealCursor() (Model, tea.Cmd) {
	if m.cursor.IsSentinel() {
		return m, nil
	}
	before := m.list.Offset()
	row := m.cursor.RowIndex
	// Keep the category header visible when selecting its first row.
	if r, ok := m.index.RowIndexForCategory(m.cursor.CategoryName); ok && row == r+1 {
		m.list = m.list.EnsureVisible(r)
	}
	m.list = m.list.EnsureVisible(row)
	if m.list.Offset() == before {
		return m, nil
	}
	return m.scrolled()
}

// jumpToCategory handles a category bar selection. It is a no-op while
// filtering, for the active category, and for categories not displayed.
func (m Model) jumpToCategory(name emoji.CategoryName) Model {
	if m.filtering() || name == "" || name == m.activeCategory {
		return m
	}
	cur, row, ok := m.nav.JumpToCategory(name, m.index, m.rows)
	if !ok {
		return m
	}
	m.activeCategory = name
	m.scroll = m.scroll.Cancel()
	m.list = m.list.ScrollToItem(row)
	if !cur.IsSentinel() {
		m.cursor = cur
	}
	log.Debug(log.CatPicker, "jumped to category", "category", name, "row", row)
	return m
}

// adjacentCategory returns the displayed category step places from the
// active one, wrapping.
func (m Model) adjacentCategory(step int) emoji.CategoryName {
	n := m.index.Len()
	if n == 0 {
		return ""
	}
	i := m.index.CategoryIndex(m.activeCategory)
	if i < 0 {
		i = 0
	}
	return m.index.Categories[((i+step)%n+n)%n]
}

// scrolled schedules the debounced active-category update.
func (m Model) scrolled() (Model, tea.Cmd) {
	if m.filtering() {
		return m, nil
	}
	var cmd tea.Cmd
	m.scroll, cmd = m.scroll.Trigger(m.list.Offset())
	return m, cmd
}

// settleScroll resolves the category at offset and highlights it.
func (m Model) settleScroll(offset int) Model {
	if m.filtering() {
		return m
	}
	name, ok := m.index.CategoryAtScrollOffset(offset, m.list.RowHeight())
	if ok && name != m.activeCategory {
		m.activeCategory = name
		log.Debug(log.CatPicker, "active category follows scroll", "category", name, "offset", offset)
	}
	return m
}

// cycleSkinTone advances to the next tone and reports it.
func (m Model) cycleSkinTone() (Model, tea.Cmd) {
	tone := m.tone.Next()
	m = m.SetSkinTone(tone)
	return m, func() tea.Msg { return SkinToneChangeMsg{Tone: tone} }
}

// selectCurrent fires EmojiClickMsg for the cursor emoji and ends the session.
func (m Model) selectCurrent() (Model, tea.Cmd) {
	e, ok := m.CurrentEmoji()
	if !ok {
		return m, nil
	}
	return m.selectEmoji(e)
}

func (m Model) selectEmoji(e emoji.Emoji) (Model, tea.Cmd) {
	if span := m.session; span != nil {
		span.SetAttributes(attribute.String(tracing.AttrEmojiID, e.ID))
	}
	log.Info(log.CatPicker, "emoji selected", "id", e.ID, "name", e.ShortName)
	m = m.Close()
	return m, func() tea.Msg { return EmojiClickMsg{Emoji: e} }
}
