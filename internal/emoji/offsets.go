package emoji

import "sort"

// OffsetIndex records, per displayed category, the row of its header and
// how many emoji it holds after filtering. The three slices are parallel.
type OffsetIndex struct {
	Categories []CategoryName
	RowIndices []int
	NumEmojis  []int
	RowCount   int
}

// NewOffsetIndex scans a materialized row sequence.
func NewOffsetIndex(rows Rows) OffsetIndex {
	idx := OffsetIndex{RowCount: len(rows.Rows)}
	for _, r := range rows.Rows {
		switch r.Kind {
		case HeaderRow:
			if len(r.Items) == 0 {
				continue
			}
			idx.Categories = append(idx.Categories, r.Items[0].CategoryName)
			idx.RowIndices = append(idx.RowIndices, r.Index)
			idx.NumEmojis = append(idx.NumEmojis, 0)
		case EmojisRow:
			if n := len(idx.NumEmojis); n > 0 {
				idx.NumEmojis[n-1] += len(r.Items)
			}
		}
	}
	return idx
}

// Len is the number of indexed categories.
func (o OffsetIndex) Len() int { return len(o.Categories) }

// CategoryIndex returns the position of name, or -1.
func (o OffsetIndex) CategoryIndex(name CategoryName) int {
	for i, c := range o.Categories {
		if c == name {
			return i
		}
	}
	return -1
}

// RowIndexForCategory returns the header row of name.
func (o OffsetIndex) RowIndexForCategory(name CategoryName) (int, bool) {
	i := o.CategoryIndex(name)
	if i < 0 {
		return 0, false
	}
	return o.RowIndices[i], true
}

// CategoryForRowIndex returns the category whose header is the nearest at or
// before row r.
func (o OffsetIndex) CategoryForRowIndex(r int) (CategoryName, bool) {
	i, ok := o.categoryPosForRow(r)
	if !ok {
		return "", false
	}
	return o.Categories[i], true
}

func (o OffsetIndex) categoryPosForRow(r int) (int, bool) {
	if r < 0 || r >= o.RowCount || len(o.RowIndices) == 0 {
		return 0, false
	}
	// First header strictly after r, minus one.
	i := sort.SearchInts(o.RowIndices, r+1) - 1
	if i < 0 {
		return 0, false
	}
	return i, true
}

// CategoryAtScrollOffset approximates the category at the top of the
// viewport, rounding the row up the way the scroll handler always has.
func (o OffsetIndex) CategoryAtScrollOffset(offset, rowHeight int) (CategoryName, bool) {
	if rowHeight <= 0 || offset < 0 {
		return "", false
	}
	r := (offset + rowHeight - 1) / rowHeight
	return o.CategoryForRowIndex(r)
}

// TotalEmojis sums NumEmojis.
func (o OffsetIndex) TotalEmojis() int {
	n := 0
	for _, c := range o.NumEmojis {
		n += c
	}
	return n
}

func (o OffsetIndex) count(ci int) int {
	if ci < 0 || ci >= len(o.NumEmojis) {
		return 0
	}
	return o.NumEmojis[ci]
}
