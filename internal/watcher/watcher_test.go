package watcher_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/parley/internal/watcher"
)

func startWatcher(t *testing.T, cfg watcher.Config) <-chan watcher.Change {
	t.Helper()
	w, err := watcher.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	changes, err := w.Start()
	require.NoError(t, err)
	return changes
}

func quickConfig(dir string) watcher.Config {
	return watcher.Config{Dir: dir, Ext: ".toml", Quiet: 50 * time.Millisecond}
}

func TestWatcher_BurstIsOneChange(t *testing.T) {
	dir := t.TempDir()
	packPath := filepath.Join(dir, "team.toml")
	require.NoError(t, os.WriteFile(packPath, []byte("# pack"), 0o644))

	changes := startWatcher(t, quickConfig(dir))

	for i := range 10 {
		require.NoError(t, os.WriteFile(packPath, []byte(fmt.Sprintf("# pack %d", i)), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case c := <-changes:
		assert.Equal(t, []string{"team.toml"}, c.Packs)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected a change")
	}

	select {
	case c := <-changes:
		t.Fatalf("unexpected second change: %v", c.Packs)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_CollectsEveryPack(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, quickConfig(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "zoo.toml"), []byte("# a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Art.TOML"), []byte("# b"), 0o644))

	select {
	case c := <-changes:
		assert.Equal(t, []string{"Art.TOML", "zoo.toml"}, c.Packs)
	case <-time.After(time.Second):
		t.Fatal("expected a change")
	}
}

func TestWatcher_UnreadChangeIsMerged(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, quickConfig(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.toml"), []byte("# 1"), 0o644))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "two.toml"), []byte("# 2"), 0o644))
	time.Sleep(200 * time.Millisecond)

	select {
	case c := <-changes:
		assert.Equal(t, []string{"one.toml", "two.toml"}, c.Packs)
	case <-time.After(time.Second):
		t.Fatal("expected a change")
	}
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(other, []byte("initial"), 0o644))

	changes := startWatcher(t, quickConfig(dir))
	require.NoError(t, os.WriteFile(other, []byte("changed"), 0o644))

	select {
	case c := <-changes:
		t.Fatalf("unexpected change for non-pack file: %v", c.Packs)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_RemoveTriggers(t *testing.T) {
	dir := t.TempDir()
	packPath := filepath.Join(dir, "old.toml")
	require.NoError(t, os.WriteFile(packPath, []byte("# pack"), 0o644))

	changes := startWatcher(t, watcher.DefaultConfig(dir))
	require.NoError(t, os.Remove(packPath))

	select {
	case c := <-changes:
		assert.Equal(t, []string{"old.toml"}, c.Packs)
	case <-time.After(time.Second):
		t.Fatal("expected a change after removing a pack")
	}
}

func TestWatcher_StopIsIdempotent(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	_, err = w.Start()
	require.NoError(t, err)

	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
}

func TestWatcher_StartMissingDir(t *testing.T) {
	w, err := watcher.New(watcher.DefaultConfig(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	defer func() { _ = w.Stop() }()

	_, err = w.Start()
	assert.Error(t, err)
}
