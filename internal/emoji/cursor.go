package emoji

// Cursor is the current keyboard or mouse selection. The sentinel (all
// indices -1) means focus is on the search input.
type Cursor struct {
	RowIndex      int
	CategoryIndex int
	CategoryName  CategoryName
	EmojiIndex    int
	Emoji         *Emoji
}

// NoCursor returns the sentinel.
func NoCursor() Cursor {
	return Cursor{RowIndex: -1, CategoryIndex: -1, EmojiIndex: -1}
}

// IsSentinel reports whether no emoji is selected.
func (c Cursor) IsSentinel() bool {
	return c.CategoryIndex < 0 || c.EmojiIndex < 0
}

// Navigator computes cursor transitions over a row sequence and its index.
type Navigator struct {
	RowWidth int
}

func (n Navigator) width() int {
	if n.RowWidth <= 0 {
		return DefaultRowWidth
	}
	return n.RowWidth
}

// First positions the cursor on emoji 0 of the first non-empty category.
func (n Navigator) First(idx OffsetIndex, rows Rows) Cursor {
	for ci := range idx.Categories {
		if idx.count(ci) > 0 {
			return n.at(ci, 0, idx, rows)
		}
	}
	return NoCursor()
}

// Move steps the cursor by offset slots (1 for horizontal, RowWidth for a
// row) in dir. From the sentinel, or from a cursor that no longer resolves,
// any move lands on First. Moves past the first or last emoji overall leave
// the cursor where it is.
func (n Navigator) Move(cur Cursor, offset int, dir Direction, idx OffsetIndex, rows Rows) Cursor {
	if offset <= 0 {
		return cur
	}
	if _, ok := n.Resolve(cur, idx, rows); !ok {
		return n.First(idx, rows)
	}

	w := n.width()
	ci, ei := cur.CategoryIndex, cur.EmojiIndex
	count := idx.count(ci)
	vertical := offset > 1

	if dir == Next {
		if t := ei + offset; t < count {
			return n.at(ci, t, idx, rows)
		}
		if vertical && ei/w < (count-1)/w {
			// Short last row: land on its final emoji.
			return n.at(ci, count-1, idx, rows)
		}
		nc := n.nextNonEmpty(ci, idx)
		if nc < 0 {
			return cur
		}
		if vertical {
			return n.at(nc, min(ei%w, idx.count(nc)-1), idx, rows)
		}
		return n.at(nc, 0, idx, rows)
	}

	if t := ei - offset; t >= 0 {
		return n.at(ci, t, idx, rows)
	}
	pc := n.prevNonEmpty(ci, idx)
	if pc < 0 {
		return cur
	}
	last := idx.count(pc) - 1
	if vertical {
		lastRowStart := (last / w) * w
		return n.at(pc, min(lastRowStart+ei%w, last), idx, rows)
	}
	return n.at(pc, last, idx, rows)
}

// Hover sets the cursor straight onto a slot under the pointer.
func (n Navigator) Hover(rowIndex int, item RowItem) Cursor {
	if item.EmojiIndex < 0 || item.Emoji == nil {
		return NoCursor()
	}
	e := *item.Emoji
	return Cursor{
		RowIndex:      rowIndex,
		CategoryIndex: item.CategoryIndex,
		CategoryName:  item.CategoryName,
		EmojiIndex:    item.EmojiIndex,
		Emoji:         &e,
	}
}

// JumpToCategory returns the cursor on the first emoji of name and the
// header row to scroll to. ok is false when name is not displayed.
func (n Navigator) JumpToCategory(name CategoryName, idx OffsetIndex, rows Rows) (Cursor, int, bool) {
	ci := idx.CategoryIndex(name)
	if ci < 0 {
		return Cursor{}, 0, false
	}
	row := idx.RowIndices[ci]
	if idx.count(ci) == 0 {
		return NoCursor(), row, true
	}
	return n.at(ci, 0, idx, rows), row, true
}

// Resolve returns the emoji under cur. The sentinel and any cursor that no
// longer fits the current rows resolve to nothing, as does a cursor whose
// category name disagrees with the slot it points at.
func (n Navigator) Resolve(cur Cursor, idx OffsetIndex, rows Rows) (Emoji, bool) {
	if cur.IsSentinel() || cur.EmojiIndex >= idx.count(cur.CategoryIndex) {
		return Emoji{}, false
	}
	item, _, ok := n.slot(cur.CategoryIndex, cur.EmojiIndex, idx, rows)
	if !ok || item.Emoji == nil {
		return Emoji{}, false
	}
	if cur.CategoryName != "" && item.CategoryName != cur.CategoryName {
		return Emoji{}, false
	}
	return *item.Emoji, true
}

// Relocate finds cur again after the rows were rebuilt. The cursor keeps
// its category by name and its emoji by base id, so a skin-tone change
// follows the variant. It returns the sentinel when either is gone.
func (n Navigator) Relocate(cur Cursor, idx OffsetIndex, rows Rows) Cursor {
	if cur.IsSentinel() {
		return cur
	}
	ci := cur.CategoryIndex
	if cur.CategoryName != "" {
		ci = idx.CategoryIndex(cur.CategoryName)
	}
	if ci < 0 {
		return NoCursor()
	}
	if cur.Emoji == nil {
		return n.at(ci, cur.EmojiIndex, idx, rows)
	}
	base := cur.Emoji.Base()
	if item, row, ok := n.slot(ci, cur.EmojiIndex, idx, rows); ok && item.Emoji != nil && item.Emoji.Base() == base {
		return n.Hover(row, item)
	}
	for ei := range idx.count(ci) {
		item, row, ok := n.slot(ci, ei, idx, rows)
		if ok && item.Emoji != nil && item.Emoji.Base() == base {
			return n.Hover(row, item)
		}
	}
	return NoCursor()
}

func (n Navigator) at(ci, ei int, idx OffsetIndex, rows Rows) Cursor {
	item, row, ok := n.slot(ci, ei, idx, rows)
	if !ok {
		return NoCursor()
	}
	return n.Hover(row, item)
}

// slot locates (ci, ei) in the grid: the category's header row, then one row
// per RowWidth emoji.
func (n Navigator) slot(ci, ei int, idx OffsetIndex, rows Rows) (RowItem, int, bool) {
	if ci < 0 || ci >= len(idx.RowIndices) || ei < 0 {
		return RowItem{}, 0, false
	}
	w := n.width()
	ri := idx.RowIndices[ci] + 1 + ei/w
	row, ok := rows.At(ri)
	if !ok || row.Kind != EmojisRow || ei%w >= len(row.Items) {
		return RowItem{}, 0, false
	}
	item := row.Items[ei%w]
	if item.CategoryIndex != ci || item.EmojiIndex != ei {
		return RowItem{}, 0, false
	}
	return item, ri, true
}

func (n Navigator) nextNonEmpty(ci int, idx OffsetIndex) int {
	for c := ci + 1; c < idx.Len(); c++ {
		if idx.count(c) > 0 {
			return c
		}
	}
	return -1
}

func (n Navigator) prevNonEmpty(ci int, idx OffsetIndex) int {
	for c := ci - 1; c >= 0; c-- {
		if idx.count(c) > 0 {
			return c
		}
	}
	return -1
}
