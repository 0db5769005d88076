package app

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/config"
	"github.com/zjrosen/parley/internal/customemoji"
	"github.com/zjrosen/parley/internal/debounce"
	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/keys"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/prefs"
	"github.com/zjrosen/parley/internal/pubsub"
	"github.com/zjrosen/parley/internal/ui/broadcast"
	"github.com/zjrosen/parley/internal/ui/drafts"
	"github.com/zjrosen/parley/internal/ui/emojipicker"
	"github.com/zjrosen/parley/internal/ui/logoverlay"
	"github.com/zjrosen/parley/internal/ui/nav"
	"github.com/zjrosen/parley/internal/ui/overlay"
	"github.com/zjrosen/parley/internal/ui/toaster"
	"github.com/zjrosen/parley/internal/ui/tutorialtip"
)

// recentUpdatedMsg carries the stored recent list after a pick.
type recentUpdatedMsg struct {
	Recent []string
	Err    error
}

// settingsSavedMsg reports the skin tone write-back.
type settingsSavedMsg struct {
	Err error
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pubsub.Event[string]:
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		if m.logListener != nil {
			cmd = tea.Batch(cmd, m.logListener.Listen())
		}
		return m, cmd

	case pubsub.Event[prefs.Preference]:
		p := msg.Payload
		if p.Category == prefs.CategoryTutorial && p.Name == m.tip.Config().Category {
			if step, err := strconv.Atoi(p.Value); err == nil {
				m.tip = m.tip.SetStep(step)
			}
		}
		return m, m.prefsListener.Listen()

	case debounce.Msg[overlay.Rect]:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.drafts, cmd = m.drafts.Update(msg)
		cmds = append(cmds, cmd)
		m.broadcast, cmd = m.broadcast.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case emojipicker.EmojiClickMsg:
		return m.insertEmoji(msg.Emoji)

	case emojipicker.SkinToneChangeMsg:
		log.Info(log.CatPicker, "skin tone changed", "tone", msg.Tone)
		return m, m.saveSkinTone(msg.Tone)

	case emojipicker.FilterChangeMsg:
		log.Debug(log.CatPicker, "filter changed", "filter", msg.Filter)
		return m, nil

	case emojipicker.CloseMsg:
		m.picker = m.picker.Close()
		return m.setFocus(focusComposer), nil

	case recentUpdatedMsg:
		if msg.Err != nil {
			log.ErrorErr(log.CatPrefs, "recording emoji use", msg.Err)
			return m, nil
		}
		m.picker = m.picker.SetRecent(msg.Recent)
		return m, nil

	case settingsSavedMsg:
		if msg.Err != nil {
			log.ErrorErr(log.CatConfig, "saving emoji settings", msg.Err)
			return m, toaster.Show("Could not save skin tone", toaster.StyleError)
		}
		return m, nil

	case customemoji.SearchResultMsg:
		if msg.Err != nil {
			log.Warn(log.CatCustom, "custom emoji search failed", "term", msg.Term, "error", msg.Err)
			return m, nil
		}
		m.picker = m.picker.AddCustomEmojis(msg.Emojis)
		return m, nil

	case customemoji.ReloadedMsg:
		if msg.Err != nil {
			log.Warn(log.CatCustom, "custom emoji reload failed", "packs", msg.Packs, "error", msg.Err)
		} else {
			m.picker = m.picker.SetCustomEmojis(msg.Emojis)
			log.Info(log.CatCustom, "custom emoji reloaded", "packs", msg.Packs, "count", len(msg.Emojis))
		}
		return m, m.svc.Custom.WaitForChange(m.ctx, m.customChanges)

	case nav.NavigateMsg:
		m.picker = m.picker.Close()
		m.route = msg.Path
		log.Info(log.CatUI, "navigate", "path", msg.Path)
		return m, toaster.Show("Opened "+msg.Path, toaster.StyleInfo)

	case drafts.ActionMsg:
		return m.handleDraftAction(msg)

	case drafts.ProfilesLoadedMsg:
		if msg.Err != nil {
			log.Warn(log.CatUI, "profile fetch failed", "ids", msg.IDs, "error", msg.Err)
		}
		var cmd tea.Cmd
		m.drafts, cmd = m.drafts.Update(msg)
		return m, cmd

	case broadcast.ToggledMsg:
		log.Debug(log.CatUI, "broadcast toggled", "channel", msg.ChannelID, "checked", msg.Checked)
		return m, nil

	case tutorialtip.StepLoadedMsg, tutorialtip.StepChangedMsg:
		var cmd tea.Cmd
		m.tip, cmd = m.tip.Update(msg)
		return m, cmd

	case toaster.ShowMsg, toaster.DismissMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Update(msg)
		return m, cmd

	case logoverlay.CloseMsg:
		m.logOverlay = m.logOverlay.Hide()
		return m, nil
	}

	// Blink, focus and scroll messages carry their own ids.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	m.composer, cmd = m.composer.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) resize(width, height int) Model {
	m.width, m.height = width, height
	mainW := max(width-sidebarWidth, 20)
	m.drafts = m.drafts.SetSize(mainW, max(height-composerHeight-footerHeight, 3))
	m.composer.Width = max(mainW-6, 10)
	m.picker = m.picker.SetSize(width, height)
	m.logOverlay = m.logOverlay.SetSize(width, height)
	m.help.Width = width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.App.Quit) {
		return m, tea.Quit
	}

	if m.debugMode && msg.String() == "ctrl+x" {
		m.logOverlay = m.logOverlay.Toggle()
		return m, nil
	}
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}

	// An open picker owns the keyboard.
	if m.picker.IsOpen() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	if m.tip.Visible() && m.tip.Opened() &&
		(key.Matches(msg, keys.Tip.Next) || key.Matches(msg, keys.Tip.Skip)) {
		var cmd tea.Cmd
		m.tip, cmd = m.tip.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.App.OpenPicker):
		var cmd tea.Cmd
		m = m.setFocus(focusComposer)
		m.composer.Blur()
		m.picker, cmd = m.picker.Open(m.markers)
		return m, cmd

	case key.Matches(msg, keys.App.Threads):
		return m, nav.To(nav.TeamPath(m.svc.Config.Team.Name, "threads"))

	case key.Matches(msg, keys.App.FocusNext):
		return m.setFocus((m.focus + 1) % focusCount), nil

	case key.Matches(msg, keys.App.FocusPrev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusDrafts:
		m.drafts, cmd = m.drafts.Update(msg)
	case focusBroadcast:
		m.broadcast, cmd = m.broadcast.Update(msg)
	case focusComposer:
		return m.updateComposer(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.logOverlay.Visible() {
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		return m, cmd
	}
	if m.picker.IsOpen() {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.tip, cmd = m.tip.Update(msg)
	cmds = append(cmds, cmd)

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		if zone.Get(tutorialtip.ThreadsButtonZone).InBounds(msg) {
			cmds = append(cmds, nav.To(nav.TeamPath(m.svc.Config.Team.Name, "threads")))
		}
		if zone.Get(zoneComposer).InBounds(msg) {
			m = m.setFocus(focusComposer)
		}
	}

	m.drafts, cmd = m.drafts.Update(msg)
	cmds = append(cmds, cmd)
	m.broadcast, cmd = m.broadcast.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) setFocus(f focusArea) Model {
	m.focus = f
	m.drafts = m.drafts.Blur()
	m.broadcast = m.broadcast.Blur()
	m.composer.Blur()
	switch f {
	case focusDrafts:
		m.drafts = m.drafts.Focus()
	case focusBroadcast:
		m.broadcast = m.broadcast.Focus()
	case focusComposer:
		m.composer.Focus()
	}
	return m
}

// target points the composer at a channel and thread.
func (m Model) target(channelID, rootID, draftKey, message string) Model {
	m.channelID, m.rootID, m.draftKey = channelID, rootID, draftKey
	m.composer.SetValue(message)
	m.composer.CursorEnd()
	m.broadcast = m.broadcast.SetChannel(channelID, m.svc.Directory.ChannelName(channelID))
	return m
}

func (m Model) updateComposer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.send()
	}
	before := m.composer.Value()
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	if m.composer.Value() == before {
		return m, cmd
	}
	var saveCmd tea.Cmd
	m, saveCmd = m.saveDraft()
	return m, tea.Batch(cmd, saveCmd)
}

// saveDraft mirrors the composer into the directory: a non-empty reply is a
// draft, an emptied one is discarded.
func (m Model) saveDraft() (Model, tea.Cmd) {
	dir := m.svc.Directory
	text := m.composer.Value()
	if text == "" {
		if m.draftKey != "" {
			dir.DeleteDraft(m.draftKey)
			m.draftKey = ""
		}
		return m.refreshDrafts()
	}
	d, err := dir.SaveDraft(chat.Draft{Key: m.draftKey, ChannelID: m.channelID, RootID: m.rootID, Message: text})
	if err != nil {
		log.ErrorErr(log.CatUI, "saving draft", err, "channel", m.channelID)
		return m, toaster.Show("Could not save draft", toaster.StyleError)
	}
	m.draftKey = d.Key
	return m.refreshDrafts()
}

func (m Model) refreshDrafts() (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.drafts, cmd = m.drafts.SetDrafts(m.svc.Directory.Drafts())
	return m, cmd
}

func (m Model) send() (tea.Model, tea.Cmd) {
	text := m.composer.Value()
	if text == "" {
		return m, nil
	}
	name := m.svc.Directory.ChannelName(m.channelID)
	also := m.broadcast.Checked()
	log.Info(log.CatUI, "reply sent", "channel", m.channelID, "root", m.rootID, "broadcast", also)
	if m.draftKey != "" {
		m.svc.Directory.DeleteDraft(m.draftKey)
	}
	m = m.target(m.channelID, m.rootID, "", "")
	m.broadcast = m.broadcast.SetChecked(false)
	var cmd tea.Cmd
	m, cmd = m.refreshDrafts()

	toast := "Reply sent"
	if also {
		toast += " and posted to ~" + name
	}
	return m, tea.Batch(cmd, toaster.Show(toast, toaster.StyleSuccess))
}

func (m Model) handleDraftAction(msg drafts.ActionMsg) (tea.Model, tea.Cmd) {
	dir := m.svc.Directory
	d, ok := dir.Draft(msg.DraftKey)
	if !ok {
		return m, nil
	}
	name := dir.ChannelName(d.ChannelID)
	log.Info(log.CatUI, "draft action", "action", msg.Kind, "draft", d.Key)

	switch msg.Kind {
	case drafts.ActionEdit:
		m = m.target(d.ChannelID, d.RootID, d.Key, d.Message)
		return m.setFocus(focusComposer), nil

	case drafts.ActionDelete:
		dir.DeleteDraft(d.Key)
		if m.draftKey == d.Key {
			m = m.target(m.channelID, m.rootID, "", "")
		}
		var cmd tea.Cmd
		m, cmd = m.refreshDrafts()
		return m, tea.Batch(cmd, toaster.Show("Draft deleted", toaster.StyleInfo))

	case drafts.ActionSend:
		dir.DeleteDraft(d.Key)
		if m.draftKey == d.Key {
			m = m.target(m.channelID, m.rootID, "", "")
		}
		var cmd tea.Cmd
		m, cmd = m.refreshDrafts()
		return m, tea.Batch(cmd, toaster.Show("Message sent to "+name, toaster.StyleSuccess))
	}
	return m, nil
}

// insertEmoji puts the picked glyph at the composer caret and records the
// use so the recent category follows.
func (m Model) insertEmoji(e emoji.Emoji) (tea.Model, tea.Cmd) {
	m = m.setFocus(focusComposer)
	glyph := e.Glyph()
	if glyph == "" {
		glyph = ":" + e.ShortName + ":"
	}
	value := []rune(m.composer.Value())
	pos := min(m.composer.Position(), len(value))
	next := string(value[:pos]) + glyph + string(value[pos:])
	m.composer.SetValue(next)
	m.composer.SetCursor(pos + len([]rune(glyph)))

	var saveCmd tea.Cmd
	m, saveCmd = m.saveDraft()
	return m, tea.Batch(saveCmd, m.recordUse(e.ID))
}

func (m Model) recordUse(id string) tea.Cmd {
	ctx, svc := m.ctx, m.svc.Prefs
	return func() tea.Msg {
		recent, err := svc.RecordEmojiUse(ctx, id)
		return recentUpdatedMsg{Recent: recent, Err: err}
	}
}

func (m Model) saveSkinTone(tone emoji.SkinTone) tea.Cmd {
	ctx, svc, path := m.ctx, m.svc.Prefs, m.svc.ConfigPath
	return func() tea.Msg {
		if err := svc.SetSkinTone(ctx, tone); err != nil {
			return settingsSavedMsg{Err: err}
		}
		if path == "" {
			return settingsSavedMsg{}
		}
		return settingsSavedMsg{Err: config.SaveEmojiSettings(path, config.EmojiSettings{DefaultSkinTone: string(tone)})}
	}
}
