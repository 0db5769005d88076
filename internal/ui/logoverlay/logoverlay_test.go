package logoverlay

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parley/internal/pubsub"
)

func event(s string) pubsub.Event[string] {
	return pubsub.Event[string]{Type: pubsub.CreatedEvent, Payload: s}
}

func TestUpdate_BuffersEvents(t *testing.T) {
	m := New()
	m, _ = m.Update(event("2025-01-01T00:00:00 [INFO] [picker] opened\n"))
	require.Len(t, m.Entries(), 1)
	assert.Equal(t, "2025-01-01T00:00:00 [INFO] [picker] opened", m.Entries()[0])
}

func TestAppend_Caps(t *testing.T) {
	m := New()
	for i := range maxEntries + 10 {
		m = m.Append(fmt.Sprintf("entry %d", i))
	}
	require.Len(t, m.Entries(), maxEntries)
	assert.Equal(t, "entry 10", m.Entries()[0])
}

func TestView_FiltersByLevel(t *testing.T) {
	m := New().SetSize(100, 40)
	m = m.Append("t [DEBUG] [emoji] catalog rebuilt")
	m = m.Append("t [ERROR] [prefs] saving failed")
	m = m.Toggle()

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "catalog rebuilt")
	assert.Contains(t, view, "saving failed")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	view = ansi.Strip(m.View())
	assert.NotContains(t, view, "catalog rebuilt")
	assert.Contains(t, view, "saving failed")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Contains(t, ansi.Strip(m.View()), "No logs to display")
}

func TestClose(t *testing.T) {
	m := New().SetSize(100, 40).Toggle()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Visible())
	require.NotNil(t, cmd)
	assert.Equal(t, CloseMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestHiddenIgnoresKeys(t *testing.T) {
	m := New().Append("t [DEBUG] [ui] x")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")})
	assert.Len(t, m.Entries(), 1)
}
