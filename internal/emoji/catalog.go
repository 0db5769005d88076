package emoji

import (
	"fmt"
	"strings"
)

// MaxRecentEmojis caps the recent category at three full rows.
const MaxRecentEmojis = 27

// Build merges src, the recently used ids (most recent first) and the skin
// tone into a catalog. Recent entries may be ids, variant ids or short
// names; unknown entries are dropped. prev, when it was built from the same
// source and tone, lets Build reuse its static categories.
func Build(src Source, recent []string, tone SkinTone, prev *Catalog) Catalog {
	if tone == "" {
		tone = SkinToneDefault
	}

	var static []Category
	var emojis map[string]Emoji
	if prev != nil && prev.src.version == src.version && src.version != 0 && prev.SkinTone == tone {
		static = staticCategories(prev.Categories)
		emojis = prev.Emojis
	} else {
		static, emojis = substitute(src, tone)
	}

	recentIDs := resolveRecent(src, recent, tone)

	cats := make([]Category, 0, len(static)+1)
	if len(recentIDs) > 0 {
		cats = append(cats, Category{Name: CategoryRecent, Label: CategoryRecent.Label(), EmojiIDs: recentIDs})
	}
	cats = append(cats, static...)

	version := 1
	if prev != nil {
		version = prev.Version + 1
	}

	return Catalog{
		Categories:  cats,
		Emojis:      emojis,
		SkinTone:    tone,
		Version:     version,
		src:         src,
		fingerprint: fmt.Sprintf("%d|%s|%s", src.version, tone, strings.Join(recentIDs, ",")),
	}
}

func staticCategories(cats []Category) []Category {
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		if c.Name != CategoryRecent {
			out = append(out, c)
		}
	}
	return out
}

// substitute maps every source slot to its display id for tone. The returned
// map holds exactly the display ids.
func substitute(src Source, tone SkinTone) ([]Category, map[string]Emoji) {
	cats := make([]Category, 0, len(src.Categories))
	emojis := make(map[string]Emoji, src.Len())
	for _, c := range src.Categories {
		ids := make([]string, 0, len(c.EmojiIDs))
		for _, id := range c.EmojiIDs {
			e, ok := src.Emojis[id]
			if !ok {
				continue
			}
			d := displayEmoji(src, e, tone)
			emojis[d.ID] = d
			ids = append(ids, d.ID)
		}
		cats = append(cats, Category{Name: c.Name, Label: c.Label, EmojiIDs: ids})
	}
	return cats, emojis
}

// displayEmoji returns the variant of e for tone, falling back to the base.
func displayEmoji(src Source, e Emoji, tone SkinTone) Emoji {
	if e.BaseID != "" {
		if base, ok := src.Emojis[e.BaseID]; ok {
			e = base
		}
	}
	if tone == SkinToneDefault {
		return e
	}
	vid, ok := e.SkinVariations[tone]
	if !ok {
		return e
	}
	if v, ok := src.Emojis[vid]; ok {
		return v
	}
	return e
}

func resolveRecent(src Source, recent []string, tone SkinTone) []string {
	ids := make([]string, 0, min(len(recent), MaxRecentEmojis))
	seen := make(map[string]bool, len(recent))
	for _, r := range recent {
		if len(ids) == MaxRecentEmojis {
			break
		}
		e, ok := src.Lookup(r)
		if !ok {
			continue
		}
		d := displayEmoji(src, e, tone)
		if seen[d.ID] {
			continue
		}
		seen[d.ID] = true
		ids = append(ids, d.ID)
	}
	return ids
}
