// Package watcher watches a directory of emoji pack files and reports
// debounced change notifications.
package watcher

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/parley/internal/log"
)

// Change lists the pack files touched during one quiet period, by base
// name, sorted.
type Change struct {
	Packs []string
}

// Config holds watcher options.
type Config struct {
	Dir   string
	Ext   string
	Quiet time.Duration // how long the directory must stay still before a Change fires
}

// DefaultConfig watches dir for *.toml pack files.
func DefaultConfig(dir string) Config {
	return Config{Dir: dir, Ext: ".toml", Quiet: 300 * time.Millisecond}
}

// Watcher reports batches of pack file changes in a directory.
type Watcher struct {
	cfg     Config
	fs      *fsnotify.Watcher
	changes chan Change
	done    chan struct{}
}

// New creates a watcher. Nothing is watched until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	cfg.Ext = strings.ToLower(cfg.Ext)
	return &Watcher{
		cfg:     cfg,
		fs:      fsw,
		changes: make(chan Change, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start watches the directory and returns the Change channel. A Change the
// consumer has not received yet is merged into the next one, so nothing is
// lost while the consumer is busy reloading.
func (w *Watcher) Start() (<-chan Change, error) {
	if err := w.fs.Add(w.cfg.Dir); err != nil {
		return nil, fmt.Errorf("watching directory %s: %w", w.cfg.Dir, err)
	}
	log.Debug(log.CatWatcher, "watching", "dir", w.cfg.Dir, "ext", w.cfg.Ext)
	go w.run()
	return w.changes, nil
}

// Stop ends the watch. It is safe to call more than once.
func (w *Watcher) Stop() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) run() {
	pending := map[string]struct{}{}
	quiet := time.NewTimer(w.cfg.Quiet)
	quiet.Stop()
	defer quiet.Stop()

	for {
		select {
		case <-w.done:
			return

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "fsnotify error", err, "dir", w.cfg.Dir)

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name, ok := w.packName(ev)
			if !ok {
				continue
			}
			pending[name] = struct{}{}
			quiet.Reset(w.cfg.Quiet)

		case <-quiet.C:
			if len(pending) == 0 {
				continue
			}
			if w.flush(pending) {
				pending = map[string]struct{}{}
			}
		}
	}
}

// flush hands pending to the consumer, folding in an undelivered Change.
func (w *Watcher) flush(pending map[string]struct{}) bool {
	select {
	case prev := <-w.changes:
		for _, p := range prev.Packs {
			pending[p] = struct{}{}
		}
	default:
	}
	select {
	case w.changes <- Change{Packs: slices.Sorted(maps.Keys(pending))}:
		return true
	default:
		return false
	}
}

// packName returns the base name of a pack file touched by ev. Removes and
// renames count, a deleted pack must drop its emoji.
func (w *Watcher) packName(ev fsnotify.Event) (string, bool) {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return "", false
	}
	name := filepath.Base(ev.Name)
	if strings.ToLower(filepath.Ext(name)) != w.cfg.Ext {
		return "", false
	}
	return name, true
}
