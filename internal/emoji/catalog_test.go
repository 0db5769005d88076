package emoji

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuild_NoRecent(t *testing.T) {
	src := peopleNature(t)
	c := Build(src, nil, SkinToneDefault, nil)

	require.Len(t, c.Categories, 2)
	assert.Equal(t, CategoryName("people"), c.Categories[0].Name)
	assert.False(t, c.HasRecent())
	assert.Equal(t, 8, c.TotalEmojis())
	assert.Len(t, c.Emojis, 8, "only displayed ids are in the emoji map")
	assert.Equal(t, 1, c.Version)
}

func TestBuild_RecentFirstAndResolved(t *testing.T) {
	src := mustLoad(t, smileYAML)
	c := Build(src, []string{"dog", "1f604", "unknown", "1f44d-1f3fe", "dog"}, SkinToneDefault, nil)

	recent, ok := c.Category(CategoryRecent)
	require.True(t, ok)
	assert.Equal(t, CategoryRecent, c.Categories[0].Name, "recent is placed first")
	assert.Equal(t, []string{"1f436", "1f604", "1f44d"}, recent.EmojiIDs,
		"names resolve, unknown ids drop, variants fold to the active tone, duplicates collapse")

	for _, id := range recent.EmojiIDs {
		_, ok := c.Emoji(id)
		assert.True(t, ok, "recent id %s must resolve", id)
	}
}

func TestBuild_RecentCapped(t *testing.T) {
	src := fixtureSource(t, fixtureCategory{name: "many", count: 40})
	var recent []string
	for i := 0; i < 40; i++ {
		recent = append(recent, fmt.Sprintf("many_%d", i))
	}

	c := Build(src, recent, SkinToneDefault, nil)
	cat, ok := c.Category(CategoryRecent)
	require.True(t, ok)
	require.Len(t, cat.EmojiIDs, MaxRecentEmojis)
	assert.Equal(t, "1f300", cat.EmojiIDs[0], "most recent stays first")
}

func TestBuild_SkinToneSubstitution(t *testing.T) {
	src := mustLoad(t, smileYAML)

	plain := Build(src, nil, SkinToneDefault, nil)
	people, _ := plain.Category(CategoryPeople)
	assert.Equal(t, []string{"1f44d", "1f63a"}, people.EmojiIDs)

	toned := Build(src, nil, SkinToneMediumDark, &plain)
	people, _ = toned.Category(CategoryPeople)
	assert.Equal(t, []string{"1f44d-1f3fe", "1f63a"}, people.EmojiIDs,
		"the variant replaces the base; emoji without variants are unaffected")

	e, ok := toned.Emoji("1f44d-1f3fe")
	require.True(t, ok, "substitution is total")
	assert.Equal(t, "1f44d", e.Base())
	assert.Equal(t, SkinToneMediumDark, toned.SkinTone)
	assert.Equal(t, 2, toned.Version)
}

func TestBuild_EmptyToneMeansDefault(t *testing.T) {
	src := mustLoad(t, smileYAML)
	c := Build(src, nil, "", nil)
	assert.Equal(t, SkinToneDefault, c.SkinTone)
}

func TestBuild_PrevDoesNotChangeResult(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := fixtureSource(rt,
			fixtureCategory{name: "a", count: rapid.IntRange(0, 12).Draw(rt, "a")},
			fixtureCategory{name: "b", count: rapid.IntRange(0, 12).Draw(rt, "b")},
		)
		toneA := rapid.SampledFrom(SkinTones).Draw(rt, "toneA")
		toneB := rapid.SampledFrom(SkinTones).Draw(rt, "toneB")
		recent := rapid.SliceOfN(rapid.SampledFrom([]string{"a_0", "a_1", "b_2", "b_5", "zzz"}), 0, 6).Draw(rt, "recent")

		prev := Build(src, nil, toneA, nil)
		withPrev := Build(src, recent, toneB, &prev)
		fresh := Build(src, recent, toneB, nil)

		assert.Equal(rt, fresh.Categories, withPrev.Categories)
		assert.Equal(rt, fresh.Emojis, withPrev.Emojis)
		assert.Equal(rt, fresh.Fingerprint(), withPrev.Fingerprint())
	})
}

func TestBuild_EverySlotResolves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := fixtureSource(rt,
			fixtureCategory{name: "a", count: rapid.IntRange(0, 20).Draw(rt, "a")},
			fixtureCategory{name: "b", count: rapid.IntRange(0, 20).Draw(rt, "b")},
		)
		tone := rapid.SampledFrom(SkinTones).Draw(rt, "tone")
		c := Build(src, []string{"a_0", "b_3"}, tone, nil)

		for _, cat := range c.Categories {
			for _, id := range cat.EmojiIDs {
				_, ok := c.Emoji(id)
				assert.True(rt, ok, "slot %s in %s must resolve", id, cat.Name)
			}
		}
	})
}
