package vlist

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func rowLabel(i int, _ Style, _ string) string { return fmt.Sprintf("row %d", i) }

func TestView_OnlyVisibleRows(t *testing.T) {
	m := New(1).SetRowCount(100).SetHeight(3).SetOffset(10)

	var rendered []int
	out := m.View(func(i int, s Style, k string) string {
		rendered = append(rendered, i)
		return rowLabel(i, s, k)
	})

	assert.Equal(t, "row 10\nrow 11\nrow 12", out)
	assert.Equal(t, []int{8, 9, 10, 11, 12, 13, 14}, rendered, "visible rows plus overscan")
}

func TestView_MultiLineRowsAndPartialOffset(t *testing.T) {
	m := New(2).SetRowCount(5).SetHeight(3).SetOffset(3)
	out := m.View(func(i int, _ Style, _ string) string {
		return fmt.Sprintf("%d-a\n%d-b", i, i)
	})
	assert.Equal(t, "1-b\n2-a\n2-b", out)
}

func TestView_PadsPastContent(t *testing.T) {
	m := New(1).SetRowCount(2).SetHeight(4)
	out := m.View(rowLabel)
	assert.Equal(t, "row 0\nrow 1\n\n", out)
	assert.Empty(t, New(1).SetRowCount(3).View(rowLabel), "zero height renders nothing")
}

func TestView_PassesStyleAndKey(t *testing.T) {
	m := New(2).WithKeys(func(i int) string { return fmt.Sprintf("k%d", i) }).SetRowCount(1).SetHeight(2)
	m.View(func(i int, s Style, k string) string {
		assert.Equal(t, Style{Top: 0, Height: 2}, s)
		assert.Equal(t, "k0", k)
		return ""
	})
}

func TestSetOffset_Clamps(t *testing.T) {
	m := New(1).SetRowCount(10).SetHeight(4)
	assert.Equal(t, 6, m.SetOffset(100).Offset())
	assert.Equal(t, 0, m.SetOffset(-5).Offset())

	short := New(1).SetRowCount(2).SetHeight(4)
	assert.Equal(t, 0, short.SetOffset(1).Offset(), "content shorter than viewport cannot scroll")
}

func TestShrinkingRowCountReclamps(t *testing.T) {
	m := New(1).SetRowCount(50).SetHeight(5).SetOffset(40)
	m = m.SetRowCount(8)
	assert.Equal(t, 3, m.Offset())
}

func TestScrollToItem_StartAligned(t *testing.T) {
	m := New(1).SetRowCount(30).SetHeight(5).ScrollToItem(12)
	assert.Equal(t, 12, m.Offset())
	assert.Equal(t, 12, m.TopRow())

	m = m.ScrollToItem(29)
	assert.Equal(t, 25, m.Offset(), "last rows clamp to the bottom")
}

func TestEnsureVisible(t *testing.T) {
	m := New(1).SetRowCount(30).SetHeight(5).SetOffset(10)
	assert.Equal(t, 10, m.EnsureVisible(12).Offset(), "already visible")
	assert.Equal(t, 8, m.EnsureVisible(8).Offset(), "above scrolls up to the row")
	assert.Equal(t, 16, m.EnsureVisible(20).Offset(), "below scrolls until the row is the last line")
}

func TestUpdate_WheelEmitsScrollMsg(t *testing.T) {
	m := New(1).SetRowCount(30).SetHeight(5)

	m, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.NotNil(t, cmd)
	assert.Equal(t, ScrollMsg{Offset: 3}, cmd())

	m, cmd = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	require.NotNil(t, cmd)
	assert.Equal(t, 0, m.Offset())

	_, cmd = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Nil(t, cmd, "no message when the offset did not change")
}

func TestView_AlwaysHeightLines(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rowHeight := rapid.IntRange(1, 3).Draw(t, "rowHeight")
		rows := rapid.IntRange(0, 40).Draw(t, "rows")
		height := rapid.IntRange(1, 12).Draw(t, "height")
		offset := rapid.IntRange(-5, 200).Draw(t, "offset")

		m := New(rowHeight).SetRowCount(rows).SetHeight(height).SetOffset(offset)
		out := m.View(func(i int, s Style, _ string) string {
			return strings.TrimSuffix(strings.Repeat(fmt.Sprintf("%d\n", i), s.Height), "\n")
		})
		if got := len(strings.Split(out, "\n")); got != height {
			t.Fatalf("got %d lines, want %d", got, height)
		}
		if m.Offset() < 0 || m.Offset() > max(rows*rowHeight-height, 0) {
			t.Fatalf("offset %d out of range", m.Offset())
		}
	})
}
