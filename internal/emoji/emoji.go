// Package emoji builds the picker's emoji catalog and derives the windowed
// row sequence, the per-category offset index, and keyboard cursor moves
// from it. Everything here is a pure function of its inputs; the picker
// model replaces derived values wholesale whenever an input changes.
package emoji

import (
	"strconv"
	"strings"
)

// SkinTone selects a skin-tone variant. Values are the unified hex modifier.
type SkinTone string

const (
	SkinToneDefault     SkinTone = "default"
	SkinToneLight       SkinTone = "1f3fb"
	SkinToneMediumLight SkinTone = "1f3fc"
	SkinToneMedium      SkinTone = "1f3fd"
	SkinToneMediumDark  SkinTone = "1f3fe"
	SkinToneDark        SkinTone = "1f3ff"
)

// SkinTones lists every tone in selector order.
var SkinTones = []SkinTone{
	SkinToneDefault,
	SkinToneLight,
	SkinToneMediumLight,
	SkinToneMedium,
	SkinToneMediumDark,
	SkinToneDark,
}

// ParseSkinTone maps user input to a tone. Unknown values fall back to default.
func ParseSkinTone(s string) SkinTone {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, t := range SkinTones {
		if string(t) == s {
			return t
		}
	}
	return SkinToneDefault
}

// Next returns the tone after t, wrapping.
func (t SkinTone) Next() SkinTone {
	for i, tone := range SkinTones {
		if tone == t {
			return SkinTones[(i+1)%len(SkinTones)]
		}
	}
	return SkinToneDefault
}

// Swatch is a single glyph representing the tone in the selector.
func (t SkinTone) Swatch() string {
	if t == SkinToneDefault || t == "" {
		return "✋"
	}
	return glyphFromUnified("270b-" + string(t))
}

// CategoryName identifies a category.
type CategoryName string

const (
	CategoryRecent        CategoryName = "recent"
	CategorySearchResults CategoryName = "searchResults"
	CategorySmileys       CategoryName = "smileys-emotion"
	CategoryPeople        CategoryName = "people-body"
	CategoryNature        CategoryName = "animals-nature"
	CategoryFood          CategoryName = "food-drink"
	CategoryTravel        CategoryName = "travel-places"
	CategoryActivities    CategoryName = "activities"
	CategoryObjects       CategoryName = "objects"
	CategorySymbols       CategoryName = "symbols"
	CategoryFlags         CategoryName = "flags"
	CategoryCustom        CategoryName = "custom"
)

var categoryLabels = map[CategoryName]string{
	CategoryRecent:        "Recently Used",
	CategorySearchResults: "Search Results",
	CategorySmileys:       "Smileys & Emotion",
	CategoryPeople:        "People & Body",
	CategoryNature:        "Animals & Nature",
	CategoryFood:          "Food & Drink",
	CategoryTravel:        "Travel & Places",
	CategoryActivities:    "Activities",
	CategoryObjects:       "Objects",
	CategorySymbols:       "Symbols",
	CategoryFlags:         "Flags",
	CategoryCustom:        "Custom",
}

// Label is the display label for a category, or the raw name when unknown.
func (n CategoryName) Label() string {
	if l, ok := categoryLabels[n]; ok {
		return l
	}
	return string(n)
}

// Emoji is one pickable entry. Variant entries carry the base id in BaseID.
type Emoji struct {
	ID             string
	Name           string
	ShortName      string
	ShortNames     []string
	Keywords       []string
	Category       CategoryName
	SkinVariations map[SkinTone]string
	BaseID         string
	Custom         bool
	ImageURL       string
}

// Glyph renders the emoji for the terminal. Custom emoji have no code
// points and render as their :short_name:.
func (e Emoji) Glyph() string {
	if e.Custom {
		return ":" + e.ShortName + ":"
	}
	if g := glyphFromUnified(e.ID); g != "" {
		return g
	}
	return ":" + e.ShortName + ":"
}

// DisplayName is the short name (or name) with underscores spaced out.
func (e Emoji) DisplayName() string {
	name := e.ShortName
	if name == "" {
		name = e.Name
	}
	return strings.ReplaceAll(name, "_", " ")
}

// AccessibleLabel is the screen-reader text for the emoji.
func (e Emoji) AccessibleLabel() string {
	return e.DisplayName() + " emoji"
}

// Base returns the id of the base emoji for a variant, or ID itself.
func (e Emoji) Base() string {
	if e.BaseID != "" {
		return e.BaseID
	}
	return e.ID
}

// matches reports a case-insensitive substring hit on any search key.
// filter must already be lowercase.
func (e Emoji) matches(filter string) bool {
	if strings.Contains(strings.ToLower(e.Name), filter) ||
		strings.Contains(strings.ToLower(e.ShortName), filter) {
		return true
	}
	for _, s := range e.ShortNames {
		if strings.Contains(strings.ToLower(s), filter) {
			return true
		}
	}
	for _, k := range e.Keywords {
		if strings.Contains(strings.ToLower(k), filter) {
			return true
		}
	}
	return false
}

func glyphFromUnified(id string) string {
	if id == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(id, "-") {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return ""
		}
		b.WriteRune(rune(cp))
	}
	return b.String()
}

// Category is an ordered bucket of display ids.
type Category struct {
	Name     CategoryName
	Label    string
	EmojiIDs []string
}

// Catalog is the merged emoji set for one picker session.
type Catalog struct {
	Categories []Category
	// Emojis holds every id referenced by Categories.
	Emojis   map[string]Emoji
	SkinTone SkinTone
	// Version counts rebuilds within a session.
	Version int

	src         Source
	fingerprint string
}

// Category looks up a category by name.
func (c Catalog) Category(name CategoryName) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}

// Emoji looks up an emoji by display id.
func (c Catalog) Emoji(id string) (Emoji, bool) {
	e, ok := c.Emojis[id]
	return e, ok
}

// TotalEmojis counts category slots, including recents.
func (c Catalog) TotalEmojis() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.EmojiIDs)
	}
	return n
}

// HasRecent reports whether the recent pseudo-category is present.
func (c Catalog) HasRecent() bool {
	_, ok := c.Category(CategoryRecent)
	return ok
}

// Fingerprint identifies the catalog's inputs. Two catalogs with equal
// fingerprints materialize identically.
func (c Catalog) Fingerprint() string { return c.fingerprint }

// Direction is the cursor move direction.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}
