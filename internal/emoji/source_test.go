package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSource_Loads(t *testing.T) {
	src, err := DefaultSource()
	require.NoError(t, err, "embedded dataset should parse")

	require.NotEmpty(t, src.Categories)
	assert.Equal(t, CategorySmileys, src.Categories[0].Name)
	assert.Greater(t, src.Len(), 100)

	thumbs, ok := src.Lookup("+1")
	require.True(t, ok, "short name lookup")
	assert.Equal(t, "1f44d", thumbs.ID)
	assert.Len(t, thumbs.SkinVariations, 5)

	dark, ok := src.Emojis["1f44d-1f3ff"]
	require.True(t, ok, "variant entries are indexed")
	assert.Equal(t, "1f44d", dark.BaseID)
	assert.Equal(t, "👍🏿", dark.Glyph())
}

func TestLoadSource_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "categories: [\n"},
		{name: "missing category name", data: "categories:\n  - emojis: []\n"},
		{name: "missing id", data: "categories:\n  - name: a\n    emojis:\n      - name: x\n        short_names: [x]\n"},
		{name: "missing short names", data: "categories:\n  - name: a\n    emojis:\n      - id: \"1f600\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSource([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadSource_DuplicateID(t *testing.T) {
	data := `
categories:
  - name: a
    emojis:
      - id: "1f600"
        short_names: [one]
  - name: b
    emojis:
      - id: "1f600"
        short_names: [two]
`
	_, err := LoadSource([]byte(data))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateEmoji)
}

func TestSource_Lookup(t *testing.T) {
	src := mustLoad(t, smileYAML)

	e, ok := src.Lookup(":thumbsup:")
	require.True(t, ok, "colon-wrapped alias resolves")
	assert.Equal(t, "1f44d", e.ID)

	_, ok = src.Lookup("1f44d-1f3fc")
	assert.True(t, ok, "variant id resolves")

	_, ok = src.Lookup("nope")
	assert.False(t, ok)
}

func TestSource_MergeReplacesCustom(t *testing.T) {
	src := mustLoad(t, smileYAML)

	first, err := src.Merge([]Emoji{{ID: "custom-party", ShortName: "party_parrot"}})
	require.NoError(t, err)
	require.Len(t, first.Categories, 4)
	assert.Equal(t, CategoryCustom, first.Categories[3].Name)

	parrot, ok := first.Lookup("party_parrot")
	require.True(t, ok)
	assert.True(t, parrot.Custom)
	assert.Equal(t, ":party_parrot:", parrot.Glyph())

	second, err := first.Merge([]Emoji{{ID: "custom-ship", ShortName: "shipit"}})
	require.NoError(t, err)
	custom := second.Categories[len(second.Categories)-1]
	assert.Equal(t, []string{"custom-ship"}, custom.EmojiIDs, "merge replaces the previous custom set")
	_, ok = second.Lookup("party_parrot")
	assert.False(t, ok)

	_, ok = second.Emojis["1f44d-1f3fb"]
	assert.True(t, ok, "variants survive a merge")
	assert.Len(t, src.Categories, 3, "the receiver is left untouched")
}

func TestSource_MergeRejectsDuplicate(t *testing.T) {
	src := mustLoad(t, smileYAML)
	_, err := src.Merge([]Emoji{{ID: "1f436", ShortName: "dog2"}})
	assert.ErrorIs(t, err, ErrDuplicateEmoji)
}

func TestSkinTone(t *testing.T) {
	assert.Equal(t, SkinToneMedium, ParseSkinTone(" 1F3FD "))
	assert.Equal(t, SkinToneDefault, ParseSkinTone("purple"))
	assert.Equal(t, SkinToneLight, SkinToneDefault.Next())
	assert.Equal(t, SkinToneDefault, SkinToneDark.Next(), "cycling wraps")
	assert.Equal(t, "✋🏽", SkinToneMedium.Swatch())
}

func TestEmoji_Labels(t *testing.T) {
	e := Emoji{ID: "1f602", Name: "face with tears of joy", ShortName: "face_with_tears"}
	assert.Equal(t, "face with tears", e.DisplayName())
	assert.Equal(t, "face with tears emoji", e.AccessibleLabel())
	assert.Equal(t, "😂", e.Glyph())

	bad := Emoji{ID: "zz", ShortName: "odd"}
	assert.Equal(t, ":odd:", bad.Glyph(), "unparseable ids fall back to the short name")
}
