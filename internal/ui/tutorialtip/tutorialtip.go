// Package tutorialtip is a step of an onboarding tour: a popover with a
// title and markdown body, placed beside the element it points at.
//
// A tip is visible while the stored step for its tour category equals its
// own step. Next advances the stored step and can navigate; Esc ends the
// tour.
package tutorialtip

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/prefs"
	"github.com/zjrosen/parley/internal/tracing"
	"github.com/zjrosen/parley/internal/ui/markdown"
	"github.com/zjrosen/parley/internal/ui/nav"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/styles"
)

const defaultWidth = 44

// StepStore persists tour progress.
type StepStore interface {
	TutorialStep(ctx context.Context, category string) (int, error)
	SetTutorialStep(ctx context.Context, category string, step int) error
}

// Config describes one tip.
type Config struct {
	Title        string
	Screen       string // markdown body
	Placement    overlay.Side
	Step         int
	Category     string
	ShowOptOut   bool
	AutoTour     bool
	Final        bool     // Next finishes the tour instead of advancing
	PunchOut     []string // zone ids the tip points at
	TelemetryTag string
	NextPath     string // navigated to after Next, when set
	Width        int
}

// StepLoadedMsg carries the stored step for a category.
type StepLoadedMsg struct {
	Category string
	Step     int
	Err      error
}

// StepChangedMsg is sent after the tip stored a new step.
type StepChangedMsg struct {
	Category string
	Step     int
	Err      error
}

var lastID atomic.Int64

// Model is one tip.
type Model struct {
	id      int
	cfg     Config
	ctx     context.Context
	store   StepStore
	md      *markdown.Pool
	tracer  trace.Tracer
	current int
	loaded  bool
	opened  bool
}

// Option configures a tip.
type Option func(*Model)

// WithMarkdown renders the body with pool instead of a private one.
func WithMarkdown(pool *markdown.Pool) Option {
	return func(m *Model) { m.md = pool }
}

// WithTracer records tip actions as spans.
func WithTracer(t trace.Tracer) Option {
	return func(m *Model) { m.tracer = t }
}

// New creates a tip backed by store.
func New(cfg Config, store StepStore, opts ...Option) Model {
	if cfg.Width <= 0 {
		cfg.Width = defaultWidth
	}
	m := Model{
		id:     int(lastID.Add(1)),
		cfg:    cfg,
		ctx:    context.Background(),
		store:  store,
		opened: cfg.AutoTour,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.md == nil {
		m.md = markdown.NewPool("dark")
	}
	return m
}

// Config returns the tip's configuration.
func (m Model) Config() Config { return m.cfg }

// Init loads the stored step.
func (m Model) Init() tea.Cmd {
	return m.Load()
}

// Load reads the stored step asynchronously.
func (m Model) Load() tea.Cmd {
	ctx, store, category := m.ctx, m.store, m.cfg.Category
	return func() tea.Msg {
		step, err := store.TutorialStep(ctx, category)
		return StepLoadedMsg{Category: category, Step: step, Err: err}
	}
}

// SetStep records a step change made elsewhere, e.g. by a prefs event.
func (m Model) SetStep(step int) Model {
	m.current = step
	m.loaded = true
	return m
}

// Visible reports whether the tour is at this tip's step.
func (m Model) Visible() bool {
	return m.loaded && m.current == m.cfg.Step
}

// Opened reports whether the popover is expanded. Without auto tour the
// tip waits as a beacon until it is opened.
func (m Model) Opened() bool { return m.opened }

func (m Model) zoneID(part string) string { return fmt.Sprintf("tutorial-tip-%d:%s", m.id, part) }

// Update handles step loads, Next/Skip keys and button clicks.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepLoadedMsg:
		if msg.Category != m.cfg.Category {
			return m, nil
		}
		if msg.Err != nil {
			log.ErrorErr(log.CatPrefs, "loading tutorial step", msg.Err, "category", msg.Category)
			return m, nil
		}
		m = m.SetStep(msg.Step)
		if m.Visible() {
			m.record("show")
		}
		return m, nil

	case StepChangedMsg:
		if msg.Category == m.cfg.Category && msg.Err == nil {
			m = m.SetStep(msg.Step)
		}
		return m, nil

	case tea.KeyMsg:
		if !m.Visible() {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Tip.Next):
			return m.next()
		case key.Matches(msg, keys.Tip.Skip):
			return m.skip()
		}

	case tea.MouseMsg:
		if !m.Visible() || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case zone.Get(m.zoneID("next")).InBounds(msg), !m.opened && zone.Get(m.zoneID("beacon")).InBounds(msg):
			return m.next()
		case zone.Get(m.zoneID("skip")).InBounds(msg):
			return m.skip()
		}
		for _, id := range m.cfg.PunchOut {
			if zone.Get(id).InBounds(msg) && !m.opened {
				m.opened = true
				return m, nil
			}
		}
	}
	return m, nil
}

// next opens a closed beacon, or advances the tour and navigates.
func (m Model) next() (Model, tea.Cmd) {
	if !m.opened {
		m.opened = true
		return m, nil
	}
	step := m.cfg.Step + 1
	if m.cfg.Final {
		step = prefs.TutorialFinished
	}
	m.record("next")
	m = m.SetStep(step)
	cmds := []tea.Cmd{m.save(step)}
	if m.cfg.NextPath != "" {
		cmds = append(cmds, nav.To(m.cfg.NextPath))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) skip() (Model, tea.Cmd) {
	m.record("skip")
	m = m.SetStep(prefs.TutorialFinished)
	return m, m.save(prefs.TutorialFinished)
}

func (m Model) save(step int) tea.Cmd {
	ctx, store, category := m.ctx, m.store, m.cfg.Category
	return func() tea.Msg {
		err := store.SetTutorialStep(ctx, category, step)
		if err != nil {
			log.ErrorErr(log.CatPrefs, "saving tutorial step", err, "category", category, "step", step)
		}
		return StepChangedMsg{Category: category, Step: step, Err: err}
	}
}

func (m Model) record(action string) {
	log.Info(log.CatUI, "tutorial tip", "tag", m.cfg.TelemetryTag, "action", action, "step", m.cfg.Step)
	_, span := tracing.Start(m.ctx, m.tracer, tracing.SpanTutorialTip,
		attribute.String(tracing.AttrTelemetryTag, m.cfg.TelemetryTag),
		attribute.String(tracing.AttrTipAction, action),
		attribute.Int(tracing.AttrTipStep, m.cfg.Step),
	)
	span.End()
}

// PunchOut is the screen area covering every punch-out zone, measured from
// the last scanned frame.
func (m Model) PunchOut() overlay.Rect {
	var r overlay.Rect
	for _, id := range m.cfg.PunchOut {
		r = r.Union(overlay.ZoneRect(zone.Get(id)))
	}
	return r
}

// View renders the popover, the beacon when not opened, or "" when the
// tour is elsewhere.
func (m Model) View() string {
	if !m.Visible() {
		return ""
	}
	if !m.opened {
		return zone.Mark(m.zoneID("beacon"), styles.TipTitleStyle.Render("◉"))
	}

	inner := m.cfg.Width - 4
	title := styles.TipTitleStyle.Render(m.cfg.Title)
	body := m.md.Render(m.cfg.Screen, inner)

	next := zone.Mark(m.zoneID("next"), styles.PrimaryButtonStyle.Render("Next"))
	var footer string
	if m.cfg.ShowOptOut {
		skip := zone.Mark(m.zoneID("skip"), styles.MutedStyle.Render("Skip tips"))
		gap := max(inner-lipgloss.Width(skip)-lipgloss.Width(next), 1)
		footer = skip + strings.Repeat(" ", gap) + next
	} else {
		footer = strings.Repeat(" ", max(inner-lipgloss.Width(next), 0)) + next
	}

	return styles.TipStyle.Width(m.cfg.Width - 2).Render(title + "\n\n" + body + "\n\n" + footer)
}

// Overlay places the tip beside its punch-out over bg. Without a measured
// punch-out the tip is centered.
func (m Model) Overlay(bg string, width, height int) string {
	view := m.View()
	if view == "" {
		return bg
	}
	cfg := overlay.Config{Width: width, Height: height, Position: overlay.Center}
	if anchor := m.PunchOut(); !anchor.Empty() {
		cfg.Position = overlay.Beside
		cfg.Anchor = anchor
		cfg.Side = m.cfg.Placement
		cfg.Gap = 1
	}
	return overlay.Place(cfg, view, bg)
}
