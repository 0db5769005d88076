package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestOffsetIndex_PeopleNature(t *testing.T) {
	rows := Materialize(Build(peopleNature(t), nil, SkinToneDefault, nil), "", SkinToneDefault, 3)
	idx := NewOffsetIndex(rows)

	assert.Equal(t, []CategoryName{"people", "nature"}, idx.Categories)
	assert.Equal(t, []int{0, 3}, idx.RowIndices)
	assert.Equal(t, []int{5, 3}, idx.NumEmojis)
	assert.Equal(t, 8, idx.TotalEmojis())

	r, ok := idx.RowIndexForCategory("nature")
	require.True(t, ok)
	assert.Equal(t, 3, r)

	_, ok = idx.RowIndexForCategory("flags")
	assert.False(t, ok, "absent categories are reported, not guessed")
	assert.Equal(t, -1, idx.CategoryIndex("flags"))

	for row, want := range []CategoryName{"people", "people", "people", "nature", "nature"} {
		got, ok := idx.CategoryForRowIndex(row)
		require.True(t, ok, "row %d", row)
		assert.Equal(t, want, got, "row %d", row)
	}
	_, ok = idx.CategoryForRowIndex(5)
	assert.False(t, ok)
	_, ok = idx.CategoryForRowIndex(-1)
	assert.False(t, ok)
}

func TestOffsetIndex_CategoryAtScrollOffset(t *testing.T) {
	rows := Materialize(Build(peopleNature(t), nil, SkinToneDefault, nil), "", SkinToneDefault, 3)
	idx := NewOffsetIndex(rows)

	tests := []struct {
		offset, height int
		want           CategoryName
		ok             bool
	}{
		{offset: 0, height: 2, want: "people", ok: true},
		{offset: 4, height: 2, want: "people", ok: true},
		{offset: 5, height: 2, want: "nature", ok: true}, // rounds up to row 3
		{offset: 9, height: 2, want: "", ok: false},
		{offset: 3, height: 0, want: "", ok: false},
	}
	for _, tt := range tests {
		got, ok := idx.CategoryAtScrollOffset(tt.offset, tt.height)
		assert.Equal(t, tt.ok, ok, "offset %d height %d", tt.offset, tt.height)
		assert.Equal(t, tt.want, got, "offset %d height %d", tt.offset, tt.height)
	}
}

func TestOffsetIndex_EmptySearch(t *testing.T) {
	rows := Materialize(Build(mustLoad(t, smileYAML), nil, SkinToneDefault, nil), "zzz", SkinToneDefault, 9)
	idx := NewOffsetIndex(rows)

	assert.Equal(t, []CategoryName{CategorySearchResults}, idx.Categories)
	assert.Equal(t, []int{0}, idx.NumEmojis)
	assert.Equal(t, 0, idx.TotalEmojis())
}

func TestOffsetIndex_InverseLaw(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := genCatalog(rt)
		filter := rapid.SampledFrom([]string{"", "item", "a_1", "zzz"}).Draw(rt, "filter")
		rows := Materialize(c, filter, c.SkinTone, rapid.IntRange(1, 10).Draw(rt, "width"))
		idx := NewOffsetIndex(rows)

		for i := 1; i < len(idx.RowIndices); i++ {
			assert.Less(rt, idx.RowIndices[i-1], idx.RowIndices[i], "header rows ascend")
		}
		for r := 0; r < rows.Len(); r++ {
			cat, ok := idx.CategoryForRowIndex(r)
			require.True(rt, ok, "row %d has a category", r)
			start, ok := idx.RowIndexForCategory(cat)
			require.True(rt, ok)
			assert.LessOrEqual(rt, start, r)
			assert.Equal(rt, cat, rows.Rows[r].Items[0].CategoryName, "row %d belongs to its preceding header", r)
		}

		slots := 0
		for _, r := range rows.Rows {
			if r.Kind == EmojisRow {
				slots += len(r.Items)
			}
		}
		assert.Equal(rt, slots, idx.TotalEmojis())
	})
}
