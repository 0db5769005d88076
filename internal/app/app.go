// Package app contains the root application model: the playground screen
// that hosts the sidebar, the draft list, the reply composer and the emoji
// picker overlay.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/config"
	"github.com/zjrosen/parley/internal/customemoji"
	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/flags"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/prefs"
	"github.com/zjrosen/parley/internal/pubsub"
	"github.com/zjrosen/parley/internal/ui/broadcast"
	"github.com/zjrosen/parley/internal/ui/drafts"
	"github.com/zjrosen/parley/internal/ui/emojipicker"
	"github.com/zjrosen/parley/internal/ui/logoverlay"
	"github.com/zjrosen/parley/internal/ui/markdown"
	"github.com/zjrosen/parley/internal/ui/nav"
	"github.com/zjrosen/parley/internal/ui/toaster"
	"github.com/zjrosen/parley/internal/ui/tutorialtip"
	"github.com/zjrosen/parley/internal/watcher"
)

// ReplyRoot is the thread the composer replies to unless a draft is loaded.
const ReplyRoot = "welcome-thread"

const sidebarWidth = 24

// Services are the dependencies the screen is built from.
type Services struct {
	Config     config.Config
	ConfigPath string // empty disables writing settings back
	Source     emoji.Source
	Prefs      *prefs.Service
	Custom     *customemoji.Library // nil when custom emoji are disabled
	Directory  *chat.Directory
	Tracer     trace.Tracer
	Markdown   *markdown.Pool
	Flags      *flags.Set // nil uses the flag defaults
	Debug      bool
}

type focusArea int

const (
	focusDrafts focusArea = iota
	focusComposer
	focusBroadcast
	focusCount
)

// Model is the root application state.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc
	svc    Services

	markers *Markers
	route   string

	// Composer target
	channelID string
	rootID    string
	draftKey  string

	drafts    drafts.Model
	composer  textinput.Model
	broadcast broadcast.Model
	picker    emojipicker.Model
	tip       tutorialtip.Model
	toaster   toaster.Model
	help      help.Model
	focus     focusArea

	width  int
	height int

	debugMode     bool
	logOverlay    logoverlay.Model
	logListener   *pubsub.Listener[string]
	prefsListener *pubsub.Listener[prefs.Preference]

	customWatcher *watcher.Watcher
	customChanges <-chan watcher.Change

	initCmds []tea.Cmd
}

// New builds the screen. Stored preferences are read once up front so the
// first frame already shows the user's recents and skin tone.
func New(svc Services) Model {
	ctx, cancel := context.WithCancel(context.Background())
	cfg := svc.Config

	tone := svc.Prefs.SkinTone(ctx)
	if tone == emoji.SkinToneDefault && cfg.Emoji.DefaultSkinTone != "" {
		tone = emoji.ParseSkinTone(cfg.Emoji.DefaultSkinTone)
	}
	recent, err := svc.Prefs.RecentEmojis(ctx)
	if err != nil {
		log.ErrorErr(log.CatPrefs, "loading recent emojis", err)
	}

	m := Model{
		ctx:        ctx,
		cancel:     cancel,
		svc:        svc,
		markers:    NewMarkers(),
		route:      nav.TeamPath(cfg.Team.Name, "channels", chat.DemoTownSquare),
		help:       help.New(),
		toaster:    toaster.New(),
		logOverlay: logoverlay.New(),
		debugMode:  svc.Debug,
		focus:      focusComposer,
	}

	pickerCfg := emojipicker.Config{
		Source:              svc.Source,
		Recent:              recent,
		SkinTone:            tone,
		RowWidth:            cfg.Emoji.RowWidth,
		ScrollDebounce:      cfg.Emoji.ScrollDebounce,
		CustomEmojisEnabled: cfg.Emoji.CustomEnabled && svc.Custom != nil,
		TeamName:            cfg.Team.Name,
		ShowPreview:         cfg.UI.ShowPreview,
		Tracer:              svc.Tracer,
		Cache:               emoji.NewRowCache(),
	}
	if pickerCfg.CustomEmojisEnabled && svc.Flags.Enabled(flags.CustomEmojiSearch) {
		pickerCfg.Search = svc.Custom.SearchCmd
	}
	m.picker = emojipicker.New(pickerCfg)
	if pickerCfg.CustomEmojisEnabled {
		m.picker = m.picker.SetCustomEmojis(svc.Custom.Emojis())
	}

	m.composer = textinput.New()
	m.composer.Placeholder = "Reply to thread…"
	m.composer.Prompt = "› "
	m.composer.CharLimit = 4000

	m.broadcast = broadcast.New("", "")
	m = m.target(chat.DemoTownSquare, ReplyRoot, "", "")
	m = m.setFocus(focusComposer)

	var fetcher drafts.ProfileFetcher
	if svc.Flags.Enabled(flags.DraftProfileFetch) {
		fetcher = svc.Directory
	}
	var cmd tea.Cmd
	m.drafts, cmd = drafts.New(svc.Directory, fetcher).SetDrafts(svc.Directory.Drafts())
	m.initCmds = append(m.initCmds, cmd)

	teamURL := nav.TeamPath(cfg.Team.Name)
	m.tip = tutorialtip.NewThreadsWelcome(teamURL, cfg.Tutorial.AutoTour, svc.Prefs,
		tutorialtip.WithMarkdown(svc.Markdown),
		tutorialtip.WithTracer(svc.Tracer),
	)
	if cfg.Tutorial.Enabled {
		m.initCmds = append(m.initCmds, m.tip.Init())
	}

	m.prefsListener = pubsub.NewListener(ctx, svc.Prefs.Broker())
	if m.debugMode {
		m.logListener = log.NewListener(ctx)
	}

	if pickerCfg.CustomEmojisEnabled && svc.Flags.Enabled(flags.CustomEmojiWatch) {
		w, changes, err := svc.Custom.Watch()
		if err != nil {
			log.Warn(log.CatWatcher, "custom emoji watch unavailable", "dir", svc.Custom.Dir(), "error", err)
		} else {
			m.customWatcher = w
			m.customChanges = changes
		}
	}
	return m
}

// Init starts the listeners and the first asynchronous loads.
func (m Model) Init() tea.Cmd {
	cmds := append([]tea.Cmd{textinput.Blink, m.prefsListener.Listen()}, m.initCmds...)
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	if m.customChanges != nil {
		cmds = append(cmds, m.svc.Custom.WaitForChange(m.ctx, m.customChanges))
	}
	return tea.Batch(cmds...)
}

// Route is the path the screen currently shows.
func (m Model) Route() string { return m.route }

// Markers is the root marker set.
func (m Model) Markers() *Markers { return m.markers }

// Picker exposes the emoji picker state.
func (m Model) Picker() emojipicker.Model { return m.picker }

// Drafts exposes the draft list state.
func (m Model) Drafts() drafts.Model { return m.drafts }

// Composer returns the reply text.
func (m Model) Composer() string { return m.composer.Value() }

// Broadcast exposes the broadcast checkbox state.
func (m Model) Broadcast() broadcast.Model { return m.broadcast }

// Tip exposes the threads welcome tip.
func (m Model) Tip() tutorialtip.Model { return m.tip }

// Toaster exposes the toast state.
func (m Model) Toaster() toaster.Model { return m.toaster }

// Close releases resources held by the application.
func (m *Model) Close() error {
	m.picker = m.picker.Close()
	m.cancel()

	if m.customWatcher != nil {
		if err := m.customWatcher.Stop(); err != nil {
			return err
		}
	}
	return nil
}
