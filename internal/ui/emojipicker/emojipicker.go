// Package emojipicker is the stateful shell around the emoji core: a search
// box, a category bar, a windowed emoji grid with a keyboard/mouse cursor,
// a skin-tone selector and a preview footer.
//
// The picker owns the catalog, the materialized rows, the offset index, the
// cursor and the active category. Every change replaces these values
// wholesale; nothing derived is edited in place.
package emojipicker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/tracing"
	"github.com/zjrosen/parley/internal/ui/vlist"
)

// ActiveMarker is set on the root while a picker session is open.
const ActiveMarker = "emoji-picker--active"

// DefaultScrollDebounce is how long scrolling must settle before the active
// category follows it.
const DefaultScrollDebounce = 150 * time.Millisecond

// focusDelay defers focusing the search box by one frame.
const focusDelay = 16 * time.Millisecond

// Marker is the root's marker set.
type Marker interface {
	AddMarker(name string)
	RemoveMarker(name string)
}

// SearchFunc looks up custom emoji for a trimmed, colon-stripped term. The
// returned command's result is fed back through AddCustomEmojis.
type SearchFunc func(ctx context.Context, term string) tea.Cmd

// EmojiClickMsg is sent when an emoji is chosen with Enter or a click.
type EmojiClickMsg struct {
	Emoji emoji.Emoji
}

// FilterChangeMsg is sent on every search-box edit that changes the filter.
type FilterChangeMsg struct {
	Filter string
}

// SkinToneChangeMsg is sent when the skin-tone selector changes.
type SkinToneChangeMsg struct {
	Tone emoji.SkinTone
}

// CloseMsg is sent when the user dismisses the picker.
type CloseMsg struct{}

type focusMsg struct {
	id int
}

// Config holds the picker's inputs.
type Config struct {
	Source              emoji.Source
	Recent              []string
	SkinTone            emoji.SkinTone
	RowWidth            int
	ScrollDebounce      time.Duration
	CustomEmojisEnabled bool
	TeamName            string
	ShowPreview         bool
	Search              SearchFunc
	Tracer              trace.Tracer
	Cache               *emoji.RowCache
}

var lastPickerID atomic.Int64

// Model is the picker state.
type Model struct {
	id  int
	cfg Config
	ctx context.Context

	base   emoji.Source // static source without custom emoji
	custom []emoji.Emoji
	src    emoji.Source
	recent []string
	tone   emoji.SkinTone

	catalog emoji.Catalog
	rows    emoji.Rows
	index   emoji.OffsetIndex
	nav     emoji.Navigator
	cursor  emoji.Cursor

	filter         string
	activeCategory emoji.CategoryName

	input  textinput.Model
	list   vlist.Model
	scroll debounce.Debouncer[int]

	open    bool
	marker  Marker
	session trace.Span

	width, height int // viewport
	boxW, boxH    int // picker box
}

// New creates a picker and builds its first catalog.
func New(cfg Config) Model {
	if cfg.RowWidth <= 0 {
		cfg.RowWidth = emoji.DefaultRowWidth
	}
	if cfg.ScrollDebounce <= 0 {
		cfg.ScrollDebounce = DefaultScrollDebounce
	}
	if cfg.SkinTone == "" {
		cfg.SkinTone = emoji.SkinToneDefault
	}

	input := textinput.New()
	input.Placeholder = "Search Emoji"
	input.Prompt = "› "
	input.CharLimit = 64

	m := Model{
		id:     int(lastPickerID.Add(1)),
		cfg:    cfg,
		ctx:    context.Background(),
		base:   cfg.Source,
		src:    cfg.Source,
		recent: cfg.Recent,
		tone:   cfg.SkinTone,
		nav:    emoji.Navigator{RowWidth: cfg.RowWidth},
		cursor: emoji.NoCursor(),
		input:  input,
		list:   vlist.New(1),
		scroll: debounce.New[int](cfg.ScrollDebounce, true),
	}
	m = m.rebuildCatalog()
	m.activeCategory = m.initialActiveCategory()
	return m.SetSize(80, 24)
}

// Init defers focusing the search box to the next frame.
func (m Model) Init() tea.Cmd {
	return m.focusCmd()
}

func (m Model) focusCmd() tea.Cmd {
	id := m.id
	return tea.Tick(focusDelay, func(time.Time) tea.Msg { return focusMsg{id: id} })
}

// Open starts a session: the search and selection start empty, the root
// marker is acquired, a session span starts and focus is scheduled.
func (m Model) Open(marker Marker) (Model, tea.Cmd) {
	if m.open {
		return m, nil
	}
	m = m.resetSession()
	m.open = true
	m.marker = marker
	if marker != nil {
		marker.AddMarker(ActiveMarker)
	}
	_, m.session = tracing.Start(m.ctx, m.cfg.Tracer, tracing.SpanPickerSession,
		attribute.String(tracing.AttrSkinTone, string(m.tone)),
		attribute.Int(tracing.AttrRowWidth, m.cfg.RowWidth),
	)
	log.Debug(log.CatPicker, "picker opened", "id", m.id)
	return m, m.focusCmd()
}

// Close ends the session and releases the root marker. It is safe to call
// on every exit path, any number of times.
func (m Model) Close() Model {
	if !m.open {
		return m
	}
	m.open = false
	if m.marker != nil {
		m.marker.RemoveMarker(ActiveMarker)
	}
	if m.session != nil {
		m.session.End()
	}
	m.scroll = m.scroll.Cancel()
	m.input.Blur()
	log.Debug(log.CatPicker, "picker closed", "id", m.id)
	return m
}

// IsOpen reports whether a session is active.
func (m Model) IsOpen() bool { return m.open }

// SetSize sets the viewport the picker is placed in and sizes the box.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.boxW = max(m.cfg.RowWidth*slotCells+2, minBoxWidth)
	m.boxH = max(min(height-2, maxBoxHeight), minBoxHeight)
	m.input.Width = max(m.boxW-2-lipgloss.Width(m.input.Prompt)-swatchCells-2, 4)
	m.list = m.list.SetHeight(m.listHeight())
	return m
}

// Size returns the picker box size.
func (m Model) Size() (width, height int) { return m.boxW, m.boxH }

func (m Model) listHeight() int {
	// Border, search row, category bar and optional preview.
	chrome := 4
	if m.cfg.ShowPreview {
		chrome++
	}
	return max(m.boxH-chrome, 1)
}

// Filter is the normalized search filter.
func (m Model) Filter() string { return m.filter }

// Cursor is the current selection.
func (m Model) Cursor() emoji.Cursor { return m.cursor }

// ActiveCategory is the highlighted category.
func (m Model) ActiveCategory() emoji.CategoryName { return m.activeCategory }

// Catalog is the current catalog.
func (m Model) Catalog() emoji.Catalog { return m.catalog }

// Rows is the current row sequence.
func (m Model) Rows() emoji.Rows { return m.rows }

// Index is the current offset index.
func (m Model) Index() emoji.OffsetIndex { return m.index }

// SkinTone is the tone emoji are displayed in.
func (m Model) SkinTone() emoji.SkinTone { return m.tone }

// ScrollOffset is the list's scroll position in rows.
func (m Model) ScrollOffset() int { return m.list.Offset() }

// Focused reports whether the search box has focus.
func (m Model) Focused() bool { return m.input.Focused() }

// CurrentEmoji resolves the cursor against the current rows.
func (m Model) CurrentEmoji() (emoji.Emoji, bool) {
	return m.nav.Resolve(m.cursor, m.index, m.rows)
}

// AccessibleLabel is the live-region text for the selected emoji.
func (m Model) AccessibleLabel() string {
	if e, ok := m.CurrentEmoji(); ok {
		return e.AccessibleLabel()
	}
	return ""
}

// SetRecent replaces the recently used list and rebuilds the catalog.
func (m Model) SetRecent(recent []string) Model {
	m.recent = recent
	return m.rebuildCatalog()
}

// SetSkinTone changes the display tone and rebuilds the catalog.
func (m Model) SetSkinTone(tone emoji.SkinTone) Model {
	if tone == m.tone {
		return m
	}
	m.tone = tone
	return m.rebuildCatalog()
}

// SetCustomEmojis replaces the custom emoji set.
func (m Model) SetCustomEmojis(custom []emoji.Emoji) Model {
	m.custom = append([]emoji.Emoji(nil), custom...)
	return m.mergeCustom()
}

// AddCustomEmojis adds search results to the custom set. Emoji already
// known are skipped.
func (m Model) AddCustomEmojis(found []emoji.Emoji) Model {
	seen := make(map[string]bool, len(m.custom))
	for _, e := range m.custom {
		seen[e.ID] = true
	}
	added := false
	custom := append([]emoji.Emoji(nil), m.custom...)
	for _, e := range found {
		if !seen[e.ID] {
			seen[e.ID] = true
			custom = append(custom, e)
			added = true
		}
	}
	if !added {
		return m
	}
	m.custom = custom
	return m.mergeCustom()
}

func (m Model) mergeCustom() Model {
	src, err := m.base.Merge(m.custom)
	if err != nil {
		log.ErrorErr(log.CatPicker, "merging custom emoji", err)
		return m
	}
	m.src = src
	return m.rebuildCatalog()
}
