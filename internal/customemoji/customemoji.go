// Package customemoji loads team emoji packs from TOML files and answers
// searches over them.
//
// A pack looks like:
//
//	name = "team"
//
//	[[emoji]]
//	name = "party_parrot"
//	aliases = ["parrot"]
//	keywords = ["celebrate"]
//	image = "https://example.com/parrot.gif"
package customemoji

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/tracing"
)

// IDPrefix namespaces custom emoji ids away from unified code points.
const IDPrefix = "custom-"

// Pack is one TOML file.
type Pack struct {
	Name  string      `toml:"name"`
	Emoji []PackEmoji `toml:"emoji"`
}

// PackEmoji is one entry of a pack.
type PackEmoji struct {
	Name     string   `toml:"name"`
	Aliases  []string `toml:"aliases"`
	Keywords []string `toml:"keywords"`
	Image    string   `toml:"image"`
}

// ParsePack decodes a pack. Entries without a name are rejected.
func ParsePack(data string) (Pack, error) {
	var p Pack
	md, err := toml.Decode(data, &p)
	if err != nil {
		return Pack{}, fmt.Errorf("decoding pack: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warn(log.CatCustom, "ignoring unknown pack keys", "keys", fmt.Sprint(undecoded))
	}
	for i, e := range p.Emoji {
		if strings.TrimSpace(e.Name) == "" {
			return Pack{}, fmt.Errorf("emoji %d in pack %q has no name", i, p.Name)
		}
	}
	return p, nil
}

func (e PackEmoji) toEmoji() emoji.Emoji {
	name := strings.ToLower(strings.TrimSpace(e.Name))
	return emoji.Emoji{
		ID:         IDPrefix + name,
		Name:       strings.ReplaceAll(name, "_", " "),
		ShortName:  name,
		ShortNames: append([]string{name}, e.Aliases...),
		Keywords:   e.Keywords,
		Category:   emoji.CategoryCustom,
		Custom:     true,
		ImageURL:   e.Image,
	}
}

// LoadDir reads every *.toml pack in dir in file-name order. A name claimed
// by an earlier pack wins. A missing dir yields no emoji.
func LoadDir(dir string) ([]emoji.Emoji, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.toml"))
	if err != nil {
		return nil, fmt.Errorf("listing packs: %w", err)
	}
	sort.Strings(paths)

	var out []emoji.Emoji
	seen := map[string]string{}
	for _, path := range paths {
		data, err := os.ReadFile(path) //nolint:gosec // G304: pack paths come from the configured directory
		if err != nil {
			return nil, fmt.Errorf("reading pack %s: %w", path, err)
		}
		pack, err := ParsePack(string(data))
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", filepath.Base(path), err)
		}
		for _, pe := range pack.Emoji {
			e := pe.toEmoji()
			if owner, dup := seen[e.ID]; dup {
				log.Warn(log.CatCustom, "duplicate custom emoji", "name", e.ShortName, "kept", owner, "skipped", path)
				continue
			}
			seen[e.ID] = path
			out = append(out, e)
		}
	}
	return out, nil
}

// Library holds the loaded packs of one directory.
type Library struct {
	dir    string
	tracer trace.Tracer

	mu     sync.RWMutex
	emojis []emoji.Emoji
}

// NewLibrary creates an empty library over dir. Call Reload to load it.
func NewLibrary(dir string, tracer trace.Tracer) *Library {
	return &Library{dir: dir, tracer: tracer}
}

// Dir is the watched pack directory.
func (l *Library) Dir() string { return l.dir }

// Reload re-reads the directory. On error the previous set is kept.
func (l *Library) Reload(ctx context.Context) error {
	_, span := tracing.Start(ctx, l.tracer, tracing.SpanCustomReload)
	defer span.End()

	emojis, err := LoadDir(l.dir)
	if err != nil {
		tracing.RecordError(span, err)
		log.ErrorErr(log.CatCustom, "reloading packs", err, "dir", l.dir)
		return err
	}
	span.SetAttributes(attribute.Int(tracing.AttrEmojiCount, len(emojis)))

	l.mu.Lock()
	l.emojis = emojis
	l.mu.Unlock()
	log.Info(log.CatCustom, "custom emoji loaded", "count", len(emojis), "dir", l.dir)
	return nil
}

// Emojis returns a copy of the loaded set.
func (l *Library) Emojis() []emoji.Emoji {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]emoji.Emoji(nil), l.emojis...)
}

// Search returns the custom emoji whose name, aliases or keywords contain
// term, case-insensitively. Surrounding colons and space are ignored.
func (l *Library) Search(ctx context.Context, term string) ([]emoji.Emoji, error) {
	term = strings.TrimSpace(emoji.NormalizeFilter(term))
	_, span := tracing.Start(ctx, l.tracer, tracing.SpanCustomSearch, attribute.String(tracing.AttrFilter, term))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if term == "" {
		return nil, nil
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []emoji.Emoji
	for _, e := range l.emojis {
		if matches(e, term) {
			out = append(out, e)
		}
	}
	span.SetAttributes(attribute.Int(tracing.AttrEmojiCount, len(out)))
	return out, nil
}

func matches(e emoji.Emoji, term string) bool {
	for _, s := range e.ShortNames {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	for _, k := range e.Keywords {
		if strings.Contains(strings.ToLower(k), term) {
			return true
		}
	}
	return false
}
