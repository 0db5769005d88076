// Package flags holds feature flags read from the config's flags map.
// Every known flag has a default; config entries override it.
package flags

import (
	"maps"
	"slices"

	"github.com/zjrosen/parley/internal/log"
)

// Known flags.
const (
	// CustomEmojiSearch asks the custom emoji packs for matches while the
	// picker filter changes.
	CustomEmojiSearch = "custom-emoji-search"

	// CustomEmojiWatch reloads the packs when their directory changes.
	CustomEmojiWatch = "custom-emoji-watch"

	// DraftProfileFetch loads unknown DM teammates so draft titles show names.
	DraftProfileFetch = "draft-profile-fetch"
)

var defaults = map[string]bool{
	CustomEmojiSearch: true,
	CustomEmojiWatch:  true,
	DraftProfileFetch: true,
}

// Set is a read-only view of the effective flags.
type Set struct {
	flags map[string]bool
}

// New applies overrides on top of the defaults. Unknown names are kept so
// that All reports them, but they are logged.
func New(overrides map[string]bool) *Set {
	s := &Set{flags: maps.Clone(defaults)}
	for name, on := range overrides {
		if _, known := defaults[name]; !known {
			log.Warn(log.CatConfig, "unknown feature flag", "flag", name)
		}
		s.flags[name] = on
	}
	log.Debug(log.CatConfig, "feature flags", "flags", s.flags)
	return s
}

// Enabled reports whether name is on. A nil Set uses the defaults.
func (s *Set) Enabled(name string) bool {
	if s == nil {
		return defaults[name]
	}
	return s.flags[name]
}

// Names lists every flag in the set, sorted.
func (s *Set) Names() []string {
	if s == nil {
		return slices.Sorted(maps.Keys(defaults))
	}
	return slices.Sorted(maps.Keys(s.flags))
}
