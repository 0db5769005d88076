package emoji

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"
)

//go:embed data/emoji.yaml
var defaultData []byte

// ErrDuplicateEmoji is returned when two entries share an id.
var ErrDuplicateEmoji = errors.New("duplicate emoji")

var sourceSeq atomic.Uint64

// Source is the static emoji dictionary the catalog is built from. Emojis
// holds base entries and every skin-tone variant entry.
type Source struct {
	Categories []Category
	Emojis     map[string]Emoji

	byName  map[string]string
	version uint64
}

type sourceFile struct {
	Categories []sourceCategory `yaml:"categories"`
}

type sourceCategory struct {
	Name   string        `yaml:"name"`
	Emojis []sourceEmoji `yaml:"emojis"`
}

type sourceEmoji struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	ShortNames []string `yaml:"short_names"`
	Keywords   []string `yaml:"keywords"`
	SkinTones  bool     `yaml:"skin_tones"`
}

// DefaultSource parses the embedded dataset.
func DefaultSource() (Source, error) {
	return LoadSource(defaultData)
}

// LoadSource parses a YAML emoji dataset. Entries flagged skin_tones get a
// variant entry per non-default tone, with ids "{base}-{tone}".
func LoadSource(data []byte) (Source, error) {
	var f sourceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Source{}, fmt.Errorf("parsing emoji data: %w", err)
	}

	src := Source{Emojis: map[string]Emoji{}, byName: map[string]string{}}
	for _, sc := range f.Categories {
		if sc.Name == "" {
			return Source{}, fmt.Errorf("category without name")
		}
		cat := Category{Name: CategoryName(sc.Name), Label: CategoryName(sc.Name).Label()}
		for _, se := range sc.Emojis {
			e, err := se.toEmoji(cat.Name)
			if err != nil {
				return Source{}, err
			}
			if err := src.add(e); err != nil {
				return Source{}, err
			}
			for tone, id := range e.SkinVariations {
				v := e
				v.ID = id
				v.BaseID = e.ID
				v.SkinVariations = nil
				v.Keywords = append(append([]string(nil), e.Keywords...), string(tone))
				if err := src.add(v); err != nil {
					return Source{}, err
				}
			}
			cat.EmojiIDs = append(cat.EmojiIDs, e.ID)
		}
		src.Categories = append(src.Categories, cat)
	}
	src.version = sourceSeq.Add(1)
	return src, nil
}

func (se sourceEmoji) toEmoji(cat CategoryName) (Emoji, error) {
	id := strings.ToLower(strings.TrimSpace(se.ID))
	if id == "" {
		return Emoji{}, fmt.Errorf("emoji %q in %s has no id", se.Name, cat)
	}
	if len(se.ShortNames) == 0 {
		return Emoji{}, fmt.Errorf("emoji %s has no short names", id)
	}
	e := Emoji{
		ID:         id,
		Name:       se.Name,
		ShortName:  se.ShortNames[0],
		ShortNames: se.ShortNames,
		Keywords:   se.Keywords,
		Category:   cat,
	}
	if se.SkinTones {
		e.SkinVariations = make(map[SkinTone]string, len(SkinTones)-1)
		for _, t := range SkinTones[1:] {
			e.SkinVariations[t] = id + "-" + string(t)
		}
	}
	return e, nil
}

func (s *Source) add(e Emoji) error {
	if _, dup := s.Emojis[e.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateEmoji, e.ID)
	}
	s.Emojis[e.ID] = e
	if e.BaseID == "" {
		for _, n := range e.ShortNames {
			if _, taken := s.byName[n]; !taken {
				s.byName[n] = e.ID
			}
		}
		if _, taken := s.byName[e.ShortName]; !taken && e.ShortName != "" {
			s.byName[e.ShortName] = e.ID
		}
	}
	return nil
}

// Lookup finds an emoji by id or short name.
func (s Source) Lookup(idOrName string) (Emoji, bool) {
	if e, ok := s.Emojis[idOrName]; ok {
		return e, true
	}
	if id, ok := s.byName[strings.Trim(idOrName, ":")]; ok {
		return s.Emojis[id], true
	}
	return Emoji{}, false
}

// Len is the number of base emoji.
func (s Source) Len() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.EmojiIDs)
	}
	return n
}

// Merge returns a copy of s whose custom category holds exactly custom.
// Any custom category already present is replaced.
func (s Source) Merge(custom []Emoji) (Source, error) {
	out := Source{Emojis: make(map[string]Emoji, len(s.Emojis)+len(custom)), byName: map[string]string{}}
	for _, c := range s.Categories {
		if c.Name == CategoryCustom {
			continue
		}
		out.Categories = append(out.Categories, c)
		for _, id := range c.EmojiIDs {
			base := s.Emojis[id]
			if err := out.add(base); err != nil {
				return Source{}, err
			}
			for _, vid := range base.SkinVariations {
				if err := out.add(s.Emojis[vid]); err != nil {
					return Source{}, err
				}
			}
		}
	}

	if len(custom) > 0 {
		cat := Category{Name: CategoryCustom, Label: CategoryCustom.Label()}
		for _, e := range custom {
			e.Custom = true
			e.Category = CategoryCustom
			e.SkinVariations = nil
			e.BaseID = ""
			if e.ShortName == "" && len(e.ShortNames) > 0 {
				e.ShortName = e.ShortNames[0]
			}
			if err := out.add(e); err != nil {
				return Source{}, err
			}
			cat.EmojiIDs = append(cat.EmojiIDs, e.ID)
		}
		out.Categories = append(out.Categories, cat)
	}
	out.version = sourceSeq.Add(1)
	return out, nil
}
