package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type navFixture struct {
	nav  Navigator
	rows Rows
	idx  OffsetIndex
}

func newNavFixture(t tb, src Source, filter string, width int) navFixture {
	t.Helper()
	rows := Materialize(Build(src, nil, SkinToneDefault, nil), filter, SkinToneDefault, width)
	return navFixture{nav: Navigator{RowWidth: width}, rows: rows, idx: NewOffsetIndex(rows)}
}

func (f navFixture) at(t *testing.T, ci, ei int) Cursor {
	t.Helper()
	c := f.nav.at(ci, ei, f.idx, f.rows)
	require.False(t, c.IsSentinel(), "(%d,%d) should be positioned", ci, ei)
	return c
}

func (f navFixture) move(c Cursor, offset int, dir Direction) Cursor {
	return f.nav.Move(c, offset, dir, f.idx, f.rows)
}

func pos(c Cursor) [2]int { return [2]int{c.CategoryIndex, c.EmojiIndex} }

func TestNavigator_NextWrapsToNextCategory(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)

	got := f.move(f.at(t, 0, 4), 1, Next)
	assert.Equal(t, [2]int{1, 0}, pos(got))
	assert.Equal(t, CategoryName("nature"), got.CategoryName)
	assert.Equal(t, 4, got.RowIndex)
	require.NotNil(t, got.Emoji)
	assert.Equal(t, "1f305", got.Emoji.ID)
}

func TestNavigator_SentinelMovesToFirst(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)

	for _, dir := range []Direction{Next, Previous} {
		for _, offset := range []int{1, 3} {
			got := f.move(NoCursor(), offset, dir)
			assert.Equal(t, [2]int{0, 0}, pos(got), "%s by %d from sentinel", dir, offset)
			assert.Equal(t, 1, got.RowIndex)
		}
	}
}

func TestNavigator_Clamps(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)

	first := f.at(t, 0, 0)
	assert.Equal(t, pos(first), pos(f.move(first, 1, Previous)), "previous at the first emoji")
	assert.Equal(t, pos(first), pos(f.move(first, 3, Previous)), "up at the first row")

	last := f.at(t, 1, 2)
	assert.Equal(t, pos(last), pos(f.move(last, 1, Next)), "next at the last emoji")
	assert.Equal(t, pos(last), pos(f.move(last, 3, Next)), "down at the last row")
}

func TestNavigator_PreviousRetreatsToLastOfPreviousCategory(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)
	got := f.move(f.at(t, 1, 0), 1, Previous)
	assert.Equal(t, [2]int{0, 4}, pos(got))
}

func TestNavigator_Vertical(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)

	tests := []struct {
		name string
		from [2]int
		dir  Direction
		want [2]int
	}{
		{name: "down within category", from: [2]int{0, 1}, dir: Next, want: [2]int{0, 4}},
		{name: "down onto short last row", from: [2]int{0, 2}, dir: Next, want: [2]int{0, 4}},
		{name: "down from last row keeps column", from: [2]int{0, 3}, dir: Next, want: [2]int{1, 0}},
		{name: "down from last row clamps column", from: [2]int{0, 4}, dir: Next, want: [2]int{1, 1}},
		{name: "up within category", from: [2]int{0, 4}, dir: Previous, want: [2]int{0, 1}},
		{name: "up into previous category last row", from: [2]int{1, 1}, dir: Previous, want: [2]int{0, 4}},
		{name: "up into previous category clamped", from: [2]int{1, 2}, dir: Previous, want: [2]int{0, 4}},
		{name: "up into previous category same column", from: [2]int{1, 0}, dir: Previous, want: [2]int{0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.move(f.at(t, tt.from[0], tt.from[1]), 3, tt.dir)
			assert.Equal(t, tt.want, pos(got))
		})
	}
}

func TestNavigator_MonotonicNext(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := genCatalog(rt)
		width := rapid.IntRange(1, 10).Draw(rt, "width")
		rows := Materialize(c, "", c.SkinTone, width)
		idx := NewOffsetIndex(rows)
		nav := Navigator{RowWidth: width}

		total := idx.TotalEmojis()
		cur := nav.First(idx, rows)
		if total == 0 {
			assert.True(rt, cur.IsSentinel())
			return
		}

		visited := 1
		for i := 0; i < total-1; i++ {
			next := nav.Move(cur, 1, Next, idx, rows)
			require.NotEqual(rt, pos(cur), pos(next), "step %d must advance", i)
			cur = next
			visited++
		}
		lastCat := idx.Len() - 1
		assert.Equal(rt, [2]int{lastCat, idx.NumEmojis[lastCat] - 1}, pos(cur), "reaches the last emoji")
		assert.Equal(rt, pos(cur), pos(nav.Move(cur, 1, Next, idx, rows)), "then clamps")
		assert.Equal(rt, total, visited)
	})
}

func TestNavigator_EveryMoveResolves(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := genCatalog(rt)
		width := rapid.IntRange(1, 10).Draw(rt, "width")
		rows := Materialize(c, "", c.SkinTone, width)
		idx := NewOffsetIndex(rows)
		nav := Navigator{RowWidth: width}

		cur := NoCursor()
		steps := rapid.SliceOfN(rapid.IntRange(0, 3), 1, 40).Draw(rt, "steps")
		for _, s := range steps {
			offset := 1
			if s >= 2 {
				offset = width
			}
			dir := Next
			if s%2 == 1 {
				dir = Previous
			}
			cur = nav.Move(cur, offset, dir, idx, rows)
			if idx.TotalEmojis() == 0 {
				assert.True(rt, cur.IsSentinel())
				continue
			}
			e, ok := nav.Resolve(cur, idx, rows)
			require.True(rt, ok, "cursor %v must resolve", pos(cur))
			assert.Equal(rt, e.ID, cur.Emoji.ID)
		}
	})
}

func TestNavigator_ResolveAfterFilterShrinks(t *testing.T) {
	src := peopleNature(t)
	full := newNavFixture(t, src, "", 3)
	cur := full.at(t, 0, 4)

	filtered := newNavFixture(t, src, "people item 1", 3)
	_, ok := filtered.nav.Resolve(cur, filtered.idx, filtered.rows)
	assert.False(t, ok, "a cursor that no longer fits resolves to nothing")

	_, ok = full.nav.Resolve(NoCursor(), full.idx, full.rows)
	assert.False(t, ok, "the sentinel never resolves")

	got := filtered.move(cur, 1, Next)
	assert.Equal(t, [2]int{0, 0}, pos(got), "a stale cursor restarts from the first result")
}

func TestNavigator_JumpToCategory(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)

	cur, row, ok := f.nav.JumpToCategory("nature", f.idx, f.rows)
	require.True(t, ok)
	assert.Equal(t, 3, row)
	assert.Equal(t, [2]int{1, 0}, pos(cur))
	assert.Equal(t, 4, cur.RowIndex)

	_, _, ok = f.nav.JumpToCategory("flags", f.idx, f.rows)
	assert.False(t, ok)
}

func TestNavigator_JumpToEmptySearchHeader(t *testing.T) {
	f := newNavFixture(t, mustLoad(t, smileYAML), "zzz", 9)

	cur, row, ok := f.nav.JumpToCategory(CategorySearchResults, f.idx, f.rows)
	require.True(t, ok)
	assert.Equal(t, 0, row)
	assert.True(t, cur.IsSentinel())
}

func TestNavigator_Hover(t *testing.T) {
	f := newNavFixture(t, peopleNature(t), "", 3)

	item := f.rows.Rows[2].Items[1]
	cur := f.nav.Hover(2, item)
	assert.Equal(t, [2]int{0, 4}, pos(cur))
	assert.Equal(t, 2, cur.RowIndex)

	header := f.rows.Rows[0].Items[0]
	assert.True(t, f.nav.Hover(0, header).IsSentinel(), "hovering a header selects nothing")
}

func TestNavigator_DefaultWidth(t *testing.T) {
	assert.Equal(t, DefaultRowWidth, Navigator{}.width())
}

func TestNavigator_RelocateFollowsEmojiWhenRecentsArrive(t *testing.T) {
	src := peopleNature(t)
	before := newNavFixture(t, src, "", 3)
	cur := before.at(t, 0, 3)
	require.Equal(t, "1f303", cur.Emoji.ID)

	rows := Materialize(Build(src, []string{"1f305", "1f300"}, SkinToneDefault, nil), "", SkinToneDefault, 3)
	idx := NewOffsetIndex(rows)

	got := before.nav.Relocate(cur, idx, rows)
	assert.Equal(t, [2]int{1, 3}, pos(got))
	assert.Equal(t, CategoryName("people"), got.CategoryName)
	require.NotNil(t, got.Emoji)
	assert.Equal(t, "1f303", got.Emoji.ID)

	e, ok := before.nav.Resolve(got, idx, rows)
	require.True(t, ok)
	assert.Equal(t, "1f303", e.ID)
}

func TestNavigator_ResolveRejectsShiftedCategory(t *testing.T) {
	src := peopleNature(t)
	before := newNavFixture(t, src, "", 3)
	cur := before.at(t, 0, 1)

	rows := Materialize(Build(src, []string{"1f305", "1f300"}, SkinToneDefault, nil), "", SkinToneDefault, 3)
	_, ok := before.nav.Resolve(cur, NewOffsetIndex(rows), rows)
	assert.False(t, ok, "slot (0,1) now belongs to recent, not people")
}

func TestNavigator_RelocateDropsMissingCategory(t *testing.T) {
	src := peopleNature(t)
	before := newNavFixture(t, src, "", 3)
	cur := before.at(t, 1, 0)

	filtered := newNavFixture(t, src, "people item", 3)
	assert.True(t, filtered.nav.Relocate(cur, filtered.idx, filtered.rows).IsSentinel())
	assert.True(t, filtered.nav.Relocate(NoCursor(), filtered.idx, filtered.rows).IsSentinel())
}

func TestNavigator_RelocateDropsMissingEmoji(t *testing.T) {
	before := newNavFixture(t, peopleNature(t), "", 3)
	cur := before.at(t, 0, 4)

	smaller := newNavFixture(t, fixtureSource(t,
		fixtureCategory{name: "people", count: 4},
		fixtureCategory{name: "nature", count: 3},
	), "", 3)
	assert.True(t, smaller.nav.Relocate(cur, smaller.idx, smaller.rows).IsSentinel())
}
