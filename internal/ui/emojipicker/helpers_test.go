package emojipicker

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parley/internal/emoji"
)

// fakeMarker records the root marker set.
type fakeMarker struct {
	mu      sync.Mutex
	set     map[string]bool
	added   int
	removed int
}

func newFakeMarker() *fakeMarker { return &fakeMarker{set: map[string]bool{}} }

func (f *fakeMarker) AddMarker(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.set[name] = true
	f.added++
}

func (f *fakeMarker) RemoveMarker(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.set, name)
	f.removed++
}

func (f *fakeMarker) Has(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.set[name]
}

// sourceYAML builds a dataset: smileys-emotion then animals-nature with the
// given counts. Every third emoji has skin tones.
func sourceYAML(smileys, nature int) string {
	var b strings.Builder
	b.WriteString("categories:\n")
	cp := 0x1f300
	for _, c := range []struct {
		name  emoji.CategoryName
		count int
	}{{emoji.CategorySmileys, smileys}, {emoji.CategoryNature, nature}} {
		fmt.Fprintf(&b, "  - name: %s\n    emojis:\n", c.name)
		for i := range c.count {
			fmt.Fprintf(&b, "      - id: \"%x\"\n", cp)
			fmt.Fprintf(&b, "        name: \"%s item %d\"\n", c.name, i)
			fmt.Fprintf(&b, "        short_names: [\"%s_%d\"]\n", strings.ReplaceAll(string(c.name), "-", "_"), i)
			if i%3 == 0 {
				b.WriteString("        skin_tones: true\n")
			}
			cp++
		}
	}
	return b.String()
}

func testSource(t *testing.T, smileys, nature int) emoji.Source {
	t.Helper()
	src, err := emoji.LoadSource([]byte(sourceYAML(smileys, nature)))
	require.NoError(t, err)
	return src
}

type searchCall struct {
	mu    sync.Mutex
	terms []string
}

func (s *searchCall) fn(_ context.Context, term string) tea.Cmd {
	s.mu.Lock()
	s.terms = append(s.terms, term)
	s.mu.Unlock()
	return nil
}

// newPicker builds an opened, focused picker over five smileys and three
// nature emoji with three emoji per row.
func newPicker(t *testing.T, mutate ...func(*Config)) (Model, *fakeMarker) {
	t.Helper()
	cfg := Config{
		Source:         testSource(t, 5, 3),
		RowWidth:       3,
		ScrollDebounce: time.Millisecond,
		ShowPreview:    true,
		TeamName:       "core",
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return openPicker(t, New(cfg).SetSize(80, 40))
}

func openPicker(t *testing.T, m Model) (Model, *fakeMarker) {
	t.Helper()
	m.input.Cursor.SetMode(cursor.CursorStatic)
	marker := newFakeMarker()
	m, cmd := m.Open(marker)
	require.NotNil(t, cmd, "opening schedules focus")
	m, _ = m.Update(cmd())
	require.True(t, m.Focused())
	return m, marker
}

// collect runs cmd and every batched child, returning the produced messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func find[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, []tea.Msg) {
	t.Helper()
	m, cmd := m.Update(tea.KeyMsg{Type: k})
	return m, collect(cmd)
}

func typeText(t *testing.T, m Model, s string) (Model, []tea.Msg) {
	t.Helper()
	var all []tea.Msg
	for _, r := range s {
		var cmd tea.Cmd
		m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		all = append(all, collect(cmd)...)
	}
	return m, all
}

// feed delivers msgs back into the model, as the runtime would.
func feed(m Model, msgs []tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func cursorAt(t *testing.T, m Model, ci, ei int) {
	t.Helper()
	c := m.Cursor()
	require.Equal(t, ci, c.CategoryIndex, "category index")
	require.Equal(t, ei, c.EmojiIndex, "emoji index")
}
