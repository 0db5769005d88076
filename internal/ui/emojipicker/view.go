package emojipicker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
	"github.com/zjrosen/parley/internal/ui/vlist"
)

const (
	glyphCells   = 2
	slotCells    = glyphCells + 2 // EmojiSlotStyle pads one cell each side
	swatchCells  = 4
	minBoxWidth  = 30
	minBoxHeight = 8
	maxBoxHeight = 20

	zoneSkin         = "skin"
	zoneCustomButton = "custom-button"

	customButtonLabel = "Custom Emoji"
)

var categoryIcons = map[emoji.CategoryName]string{
	emoji.CategoryRecent:        "🕘",
	emoji.CategorySearchResults: "🔍",
	emoji.CategorySmileys:       "😀",
	emoji.CategoryPeople:        "👋",
	emoji.CategoryNature:        "🐻",
	emoji.CategoryFood:          "🍔",
	emoji.CategoryTravel:        "🚗",
	emoji.CategoryActivities:    "⚽",
	emoji.CategoryObjects:       "💡",
	emoji.CategorySymbols:       "🔣",
	emoji.CategoryFlags:         "🏁",
	emoji.CategoryCustom:        "✨",
}

func (m Model) zoneID(part string) string {
	return fmt.Sprintf("emoji-picker-%d:%s", m.id, part)
}

func (m Model) slotZoneID(row, col int) string {
	return m.zoneID(fmt.Sprintf("slot:%d:%d", row, col))
}

func (m Model) categoryZoneID(name emoji.CategoryName) string {
	return m.zoneID("category:" + string(name))
}

func (m Model) innerWidth() int { return m.boxW - 2 }

// View renders the picker box. Zones are marked but not scanned; the
// screen that owns the program calls zone.Scan.
func (m Model) View() string {
	if !m.open {
		return ""
	}

	sections := []string{m.searchRow(), m.categoryBar()}
	if m.rows.EmptySearch {
		sections = append(sections, m.noResults())
	} else {
		sections = append(sections, m.list.WithKeys(m.rowKey).View(m.renderRow))
	}
	if m.cfg.ShowPreview {
		sections = append(sections, m.previewRow())
	}

	return styles.RenderPanel(strings.Join(sections, "\n"), "Emoji", m.boxW, m.boxH, true)
}

// Overlay draws the picker centered over bg.
func (m Model) Overlay(bg string) string {
	view := m.View()
	if view == "" {
		return bg
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, view, bg)
}

func (m Model) rowKey(i int) string {
	if row, ok := m.rows.At(i); ok {
		return row.Key()
	}
	return ""
}

func (m Model) searchRow() string {
	swatch := zone.Mark(m.zoneID(zoneSkin), " "+fitCells(m.tone.Swatch(), glyphCells)+" ")
	input := m.input.View()
	gap := max(m.innerWidth()-lipgloss.Width(input)-lipgloss.Width(swatch), 1)
	return input + strings.Repeat(" ", gap) + swatch
}

func (m Model) categoryBar() string {
	active := m.activeCategory
	names := m.index.Categories
	if m.filtering() {
		// The bar is disabled while searching; the first entry is lit.
		names = nil
		for _, c := range m.catalog.Categories {
			names = append(names, c.Name)
		}
		if len(names) > 0 {
			active = names[0]
		}
	}

	var tabs []string
	used := 0
	for _, name := range names {
		icon := categoryIcons[name]
		if icon == "" {
			icon = runewidth.Truncate(name.Label(), glyphCells, "")
		}
		tab := fitCells(icon, glyphCells)
		style := styles.CategoryTabStyle
		if name == active {
			style = styles.CategoryTabActiveStyle
		}
		rendered := style.Render(tab)
		if used+lipgloss.Width(rendered)+1 > m.innerWidth() {
			break
		}
		used += lipgloss.Width(rendered) + 1
		tabs = append(tabs, zone.Mark(m.categoryZoneID(name), rendered))
	}
	return strings.Join(tabs, " ")
}

// renderRow is the vlist row renderer: a header label or a grid of slots
// with the cursor slot highlighted.
func (m Model) renderRow(index int, _ vlist.Style, _ string) string {
	row, ok := m.rows.At(index)
	if !ok || len(row.Items) == 0 {
		return ""
	}

	if row.Kind == emoji.HeaderRow {
		label := row.Items[0].CategoryName.Label()
		return styles.CategoryHeaderStyle.Render(runewidth.Truncate(label, m.innerWidth(), "…"))
	}

	var b strings.Builder
	for col, item := range row.Items {
		if item.Emoji == nil {
			continue
		}
		style := styles.EmojiSlotStyle
		if item.CategoryIndex == m.cursor.CategoryIndex && item.EmojiIndex == m.cursor.EmojiIndex {
			style = styles.EmojiSlotSelectedStyle
		}
		b.WriteString(zone.Mark(m.slotZoneID(index, col), style.Render(slotGlyph(*item.Emoji))))
	}
	return b.String()
}

func (m Model) noResults() string {
	msg := styles.NoResultsStyle.Render(
		runewidth.Truncate(fmt.Sprintf("No results for %q", m.filter), m.innerWidth(), "…"),
	)
	lines := make([]string, m.list.Height())
	lines[min(1, len(lines)-1)] = msg
	return strings.Join(lines, "\n")
}

func (m Model) previewRow() string {
	var button string
	if m.cfg.CustomEmojisEnabled {
		button = zone.Mark(m.zoneID(zoneCustomButton), styles.PrimaryButtonStyle.Render(customButtonLabel))
	}
	room := m.innerWidth() - lipgloss.Width(button) - 1

	var left string
	if e, ok := m.CurrentEmoji(); ok {
		left = fitCells(slotGlyph(e), glyphCells) + " " +
			styles.PreviewNameStyle.Render(e.DisplayName()) + " " +
			styles.PreviewShortNameStyle.Render(":"+e.ShortName+":")
	} else {
		left = styles.MutedStyle.Render("Pick an emoji")
	}
	if lipgloss.Width(left) > room {
		left = styles.Truncate(left, room)
	}
	gap := max(m.innerWidth()-lipgloss.Width(left)-lipgloss.Width(button), 0)
	return left + strings.Repeat(" ", gap) + button
}

// slotGlyph is the two-cell grid rendering of e. Custom emoji have no glyph
// and show the start of their short name.
func slotGlyph(e emoji.Emoji) string {
	if e.Custom {
		return fitCells(runewidth.Truncate(e.ShortName, glyphCells, ""), glyphCells)
	}
	return fitCells(e.Glyph(), glyphCells)
}

// fitCells pads s with spaces to n terminal cells, measuring by grapheme
// cluster so ZWJ and skin-tone sequences count once.
func fitCells(s string, n int) string {
	if w := uniseg.StringWidth(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
