package tutorialtip

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parley/internal/prefs"
	"github.com/zjrosen/parley/internal/ui/nav"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newService(t *testing.T) *prefs.Service {
	t.Helper()
	svc := prefs.NewService(prefs.NewMemoryStore())
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	msg := m.Init()()
	m, _ = m.Update(msg)
	return m
}

func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestThreadsWelcome_Config(t *testing.T) {
	m := NewThreadsWelcome("/core/", true, newService(t))
	cfg := m.Config()
	assert.Equal(t, "/core/threads", cfg.NextPath)
	assert.Equal(t, ThreadsCategory, cfg.Category)
	assert.Equal(t, []string{ThreadsButtonZone}, cfg.PunchOut)
	assert.Equal(t, "tutorial_tip_threads-welcome", cfg.TelemetryTag)
	assert.False(t, cfg.ShowOptOut)
}

func TestVisible_MatchesStoredStep(t *testing.T) {
	svc := newService(t)
	m := NewThreadsWelcome("/core", true, svc)
	assert.False(t, m.Visible(), "hidden until the step loads")
	assert.Empty(t, m.View())

	m = loaded(t, m)
	assert.True(t, m.Visible())

	require.NoError(t, svc.SetTutorialStep(context.Background(), ThreadsCategory, ThreadsListStep))
	m = loaded(t, NewThreadsWelcome("/core", true, svc))
	assert.False(t, m.Visible())
}

func TestNext_AdvancesAndNavigates(t *testing.T) {
	svc := newService(t)
	m := loaded(t, NewThreadsWelcome("/core", true, svc))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Visible())

	msgs := run(cmd)
	var paths []string
	var changed []StepChangedMsg
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case nav.NavigateMsg:
			paths = append(paths, msg.Path)
		case StepChangedMsg:
			changed = append(changed, msg)
		}
	}
	assert.Equal(t, []string{"/core/threads"}, paths)
	require.Len(t, changed, 1)
	assert.Equal(t, ThreadsListStep, changed[0].Step)

	step, err := svc.TutorialStep(context.Background(), ThreadsCategory)
	require.NoError(t, err)
	assert.Equal(t, ThreadsListStep, step)
}

func TestNext_BeaconOpensFirst(t *testing.T) {
	svc := newService(t)
	m := loaded(t, NewThreadsWelcome("/core", false, svc))
	require.True(t, m.Visible())
	assert.False(t, m.Opened())
	assert.Equal(t, "◉", ansi.Strip(zone.Scan(m.View())))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.Opened())
	assert.True(t, m.Visible())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotEmpty(t, run(cmd))
}

func TestSkip_FinishesTour(t *testing.T) {
	svc := newService(t)
	m := loaded(t, NewThreadsWelcome("/core", true, svc))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Visible())
	run(cmd)

	step, err := svc.TutorialStep(context.Background(), ThreadsCategory)
	require.NoError(t, err)
	assert.Equal(t, prefs.TutorialFinished, step)
}

func TestFinal_NextFinishes(t *testing.T) {
	svc := newService(t)
	m := loaded(t, New(Config{Title: "Last", Step: 2, Category: "tour", Final: true, AutoTour: true}, svc))
	require.NoError(t, svc.SetTutorialStep(context.Background(), "tour", 2))
	m = loaded(t, m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	run(cmd)
	step, err := svc.TutorialStep(context.Background(), "tour")
	require.NoError(t, err)
	assert.Equal(t, prefs.TutorialFinished, step)
}

func TestKeys_IgnoredWhenHidden(t *testing.T) {
	m := NewThreadsWelcome("/core", true, newService(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

type failingStore struct{}

func (failingStore) TutorialStep(context.Context, string) (int, error) {
	return 0, errors.New("db locked")
}

func (failingStore) SetTutorialStep(context.Context, string, int) error {
	return errors.New("db locked")
}

func TestLoadError_StaysHidden(t *testing.T) {
	m := loaded(t, NewThreadsWelcome("/core", true, failingStore{}))
	assert.False(t, m.Visible())
}

func TestStepChanged_FromElsewhere(t *testing.T) {
	m := loaded(t, NewThreadsWelcome("/core", true, newService(t)))
	m, _ = m.Update(StepChangedMsg{Category: "other", Step: 5})
	assert.True(t, m.Visible())
	m, _ = m.Update(StepChangedMsg{Category: ThreadsCategory, Step: prefs.TutorialFinished})
	assert.False(t, m.Visible())
}

func TestView_RendersTitleAndBody(t *testing.T) {
	m := loaded(t, NewThreadsWelcome("/core", true, newService(t)))
	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Welcome to the Threads view!")
	assert.Contains(t, view, "conversations")
	assert.Contains(t, view, "Next")
	assert.NotContains(t, view, "Skip tips")
}

func TestOverlay_BesidePunchOut(t *testing.T) {
	lines := make([]string, 30)
	for i := range lines {
		lines[i] = strings.Repeat(".", 100)
	}
	lines[3] = zone.Mark(ThreadsButtonZone, "Threads") + strings.Repeat(".", 93)
	bg := zone.Scan(strings.Join(lines, "\n"))
	require.Eventually(t, func() bool { return !zone.Get(ThreadsButtonZone).IsZero() }, time.Second, 5*time.Millisecond)

	m := loaded(t, NewThreadsWelcome("/core", true, newService(t)))
	r := m.PunchOut()
	assert.Equal(t, 0, r.X)
	assert.Equal(t, 3, r.Y)
	assert.Equal(t, 7, r.Width)

	out := strings.Split(ansi.Strip(m.Overlay(bg, 100, 30)), "\n")
	require.Len(t, out, 30)
	assert.Equal(t, 8, strings.Index(out[3], "╭"), "tip starts one cell right of the button")
	assert.True(t, strings.HasPrefix(out[3], "Threads."))
}

func TestClick_NextButton(t *testing.T) {
	svc := newService(t)
	m := loaded(t, NewThreadsWelcome("/core", true, svc))
	zone.Scan(m.View())
	id := m.zoneID("next")
	require.Eventually(t, func() bool { return !zone.Get(id).IsZero() }, time.Second, 5*time.Millisecond)
	z := zone.Get(id)

	m, cmd := m.Update(tea.MouseMsg{X: z.StartX, Y: z.StartY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.False(t, m.Visible())
	assert.NotEmpty(t, run(cmd))
}
