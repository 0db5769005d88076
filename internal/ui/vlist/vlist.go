// Package vlist is a windowed list: it renders only the rows that intersect
// the viewport plus a few overscan rows, so a long emoji grid costs
// O(visible) per frame.
package vlist

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultOverscan is the number of rows rendered beyond each edge.
const DefaultOverscan = 2

// wheelRows is how many rows one wheel notch scrolls.
const wheelRows = 3

// Style positions a row inside the list content.
type Style struct {
	Top    int // first content line of the row
	Height int
}

// RowRenderer renders row index. The result should be Style.Height lines;
// shorter output is padded and longer output is clipped.
type RowRenderer func(index int, style Style, key string) string

// ScrollMsg reports a user-driven scroll.
type ScrollMsg struct {
	Offset int
}

// Model is the list state. Offset is measured in lines, not rows.
type Model struct {
	rowCount  int
	rowHeight int
	height    int
	offset    int
	overscan  int
	keyFn     func(int) string
}

// New creates an empty list whose rows are rowHeight lines tall.
func New(rowHeight int) Model {
	return Model{rowHeight: max(rowHeight, 1), overscan: DefaultOverscan}
}

// WithKeys sets the function that names rows for RowRenderer.
func (m Model) WithKeys(fn func(int) string) Model {
	m.keyFn = fn
	return m
}

// SetRowCount replaces the row count, keeping the offset in range.
func (m Model) SetRowCount(n int) Model {
	m.rowCount = max(n, 0)
	return m.SetOffset(m.offset)
}

// SetHeight sets the viewport height in lines.
func (m Model) SetHeight(h int) Model {
	m.height = max(h, 0)
	return m.SetOffset(m.offset)
}

func (m Model) RowCount() int  { return m.rowCount }
func (m Model) RowHeight() int { return m.rowHeight }
func (m Model) Height() int    { return m.height }
func (m Model) Offset() int    { return m.offset }

// ContentHeight is the total height of all rows.
func (m Model) ContentHeight() int { return m.rowCount * m.rowHeight }

func (m Model) maxOffset() int {
	return max(m.ContentHeight()-m.height, 0)
}

// SetOffset scrolls to offset, clamped to the content.
func (m Model) SetOffset(offset int) Model {
	m.offset = min(max(offset, 0), m.maxOffset())
	return m
}

// ScrollBy scrolls by delta lines.
func (m Model) ScrollBy(delta int) Model {
	return m.SetOffset(m.offset + delta)
}

// ScrollToItem aligns row i with the top of the viewport.
func (m Model) ScrollToItem(i int) Model {
	return m.SetOffset(i * m.rowHeight)
}

// EnsureVisible scrolls the minimum distance that brings row i fully into view.
func (m Model) EnsureVisible(i int) Model {
	top := i * m.rowHeight
	bottom := top + m.rowHeight
	switch {
	case top < m.offset:
		return m.SetOffset(top)
	case bottom > m.offset+m.height:
		return m.SetOffset(bottom - m.height)
	}
	return m
}

// TopRow is the row at the top edge of the viewport.
func (m Model) TopRow() int {
	if m.rowCount == 0 {
		return 0
	}
	return min(m.offset/m.rowHeight, m.rowCount-1)
}

// VisibleRange returns the half-open row range that View renders, including
// overscan.
func (m Model) VisibleRange() (start, end int) {
	if m.rowCount == 0 || m.height == 0 {
		return 0, 0
	}
	first := m.offset / m.rowHeight
	last := (m.offset + m.height + m.rowHeight - 1) / m.rowHeight
	return max(first-m.overscan, 0), min(last+m.overscan, m.rowCount)
}

// Update scrolls on mouse wheel events and reports the new offset.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress {
		return m, nil
	}

	before := m.offset
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		m = m.ScrollBy(-wheelRows * m.rowHeight)
	case tea.MouseButtonWheelDown:
		m = m.ScrollBy(wheelRows * m.rowHeight)
	default:
		return m, nil
	}
	if m.offset == before {
		return m, nil
	}
	offset := m.offset
	return m, func() tea.Msg { return ScrollMsg{Offset: offset} }
}

// View renders the viewport. Exactly Height lines are returned; lines past
// the content are blank.
func (m Model) View(render RowRenderer) string {
	if m.height == 0 {
		return ""
	}

	start, end := m.VisibleRange()
	lines := make([]string, 0, (end-start)*m.rowHeight)
	for i := start; i < end; i++ {
		style := Style{Top: i * m.rowHeight, Height: m.rowHeight}
		key := ""
		if m.keyFn != nil {
			key = m.keyFn(i)
		}
		rowLines := strings.Split(render(i, style, key), "\n")
		for j := range m.rowHeight {
			if j < len(rowLines) {
				lines = append(lines, rowLines[j])
			} else {
				lines = append(lines, "")
			}
		}
	}

	// lines[0] is content line start*rowHeight.
	from := m.offset - start*m.rowHeight
	out := make([]string, m.height)
	for i := range out {
		if idx := from + i; idx >= 0 && idx < len(lines) {
			out[i] = lines[idx]
		}
	}
	return strings.Join(out, "\n")
}
