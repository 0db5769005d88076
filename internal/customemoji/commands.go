package customemoji

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/watcher"
)

// SearchResultMsg carries the outcome of SearchCmd.
type SearchResultMsg struct {
	Term   string
	Emojis []emoji.Emoji
	Err    error
}

// ReloadedMsg is sent after the pack directory changed and was re-read.
type ReloadedMsg struct {
	Packs  []string // pack files that changed
	Emojis []emoji.Emoji
	Err    error
}

// SearchCmd runs Search off the update loop.
func (l *Library) SearchCmd(ctx context.Context, term string) tea.Cmd {
	return func() tea.Msg {
		found, err := l.Search(ctx, term)
		return SearchResultMsg{Term: term, Emojis: found, Err: err}
	}
}

// Watch starts a watcher on the pack directory. Feed the returned channel to
// WaitForChange to receive ReloadedMsg.
func (l *Library) Watch() (*watcher.Watcher, <-chan watcher.Change, error) {
	w, err := watcher.New(watcher.DefaultConfig(l.dir))
	if err != nil {
		return nil, nil, err
	}
	ch, err := w.Start()
	if err != nil {
		_ = w.Stop()
		return nil, nil, err
	}
	return w, ch, nil
}

// WaitForChange blocks until the watcher fires, reloads and reports. It
// returns nil when the channel closes.
func (l *Library) WaitForChange(ctx context.Context, changes <-chan watcher.Change) tea.Cmd {
	return func() tea.Msg {
		var change watcher.Change
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-changes:
			if !ok {
				return nil
			}
			change = c
		}
		err := l.Reload(ctx)
		return ReloadedMsg{Packs: change.Packs, Emojis: l.Emojis(), Err: err}
	}
}
