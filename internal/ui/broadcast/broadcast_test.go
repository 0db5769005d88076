package broadcast

import (
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/ui/overlay"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func TestView_Label(t *testing.T) {
	m := New("ts", "Town Square")
	assert.Equal(t, "Also send to ~Town Square", m.Label())
	assert.Equal(t, "[ ] Also send to ~Town Square", ansi.Strip(zone.Scan(m.View())))

	m = m.SetChecked(true)
	assert.Equal(t, "[x] Also send to ~Town Square", ansi.Strip(zone.Scan(m.View())))
}

func TestToggle_Keys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeySpace, Runes: []rune(" ")},
		{Type: tea.KeyEnter},
	} {
		m := New("ts", "Town Square").Focus()
		m, cmd := m.Update(k)
		require.NotNil(t, cmd, k.String())
		assert.Equal(t, ToggledMsg{ChannelID: "ts", Checked: true}, cmd())
		assert.True(t, m.Checked())

		m, cmd = m.Update(k)
		assert.Equal(t, ToggledMsg{ChannelID: "ts", Checked: false}, cmd())
		assert.False(t, m.Checked())
	}
}

func TestToggle_IgnoredWithoutFocus(t *testing.T) {
	m := New("ts", "Town Square")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, m.Checked())
}

func scan(t *testing.T, m Model) *zone.ZoneInfo {
	t.Helper()
	zone.Scan("\n  " + m.View())
	require.Eventually(t, func() bool { return !zone.Get(m.zoneID()).IsZero() }, time.Second, 5*time.Millisecond)
	return zone.Get(m.zoneID())
}

func TestToggle_Click(t *testing.T) {
	m := New("ts", "Town Square")
	z := scan(t, m)
	assert.Equal(t, 1, z.StartY)
	assert.Equal(t, 2, z.StartX)

	m, cmd := m.Update(tea.MouseMsg{X: z.StartX + 1, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.True(t, cmd().(ToggledMsg).Checked)
	assert.True(t, m.Checked())

	_, cmd = m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd, "clicks outside are ignored")
}

func TestTooltip_DelayedOnHover(t *testing.T) {
	m := New("ts", "Town Square")
	z := scan(t, m)

	m, cmd := m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionMotion})
	require.NotNil(t, cmd)
	assert.False(t, m.Tooltip().Visible())

	start := time.Now()
	msg := cmd().(debounce.Msg[overlay.Rect])
	assert.GreaterOrEqual(t, time.Since(start), 400*time.Millisecond)

	m, _ = m.Update(msg)
	require.True(t, m.Tooltip().Visible())
	assert.Contains(t, ansi.Strip(m.Tooltip().View()), "visible in the channel")

	m = m.Blur()
	assert.False(t, m.Tooltip().Visible())
}

func TestSetChannel_ClearsOnChange(t *testing.T) {
	m := New("ts", "Town Square").SetChecked(true)
	m = m.SetChannel("ts", "Town Square!")
	assert.True(t, m.Checked())
	m = m.SetChannel("leads", "Core Leads")
	assert.False(t, m.Checked())
	assert.Equal(t, "Also send to ~Core Leads", m.Label())
}
