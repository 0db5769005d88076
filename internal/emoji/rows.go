package emoji

import (
	"strconv"
	"strings"
)

// DefaultRowWidth is the number of emoji per grid row.
const DefaultRowWidth = 9

// RowKind distinguishes header rows from grid rows.
type RowKind int

const (
	HeaderRow RowKind = iota
	EmojisRow
)

// RowItem is one slot of a row. Header rows carry a single item with
// EmojiIndex -1 and no emoji.
type RowItem struct {
	CategoryIndex int
	CategoryName  CategoryName
	EmojiIndex    int
	EmojiID       string
	Emoji         *Emoji
}

// Row is one line of the windowed list.
type Row struct {
	Kind  RowKind
	Index int
	Items []RowItem
}

// Key is stable across rebuilds as long as the row shows the same content.
func (r Row) Key() string {
	if len(r.Items) == 0 {
		return strconv.Itoa(r.Index)
	}
	if r.Kind == HeaderRow {
		it := r.Items[0]
		return strconv.Itoa(it.CategoryIndex) + "-" + string(it.CategoryName)
	}
	parts := make([]string, len(r.Items))
	for i, it := range r.Items {
		parts[i] = strconv.Itoa(it.CategoryIndex) + "-" + it.EmojiID
	}
	return strings.Join(parts, "--")
}

// Rows is a materialized row sequence.
type Rows struct {
	Rows []Row
	// EmptySearch is set when a non-empty filter matched nothing; Rows then
	// holds only the synthetic search-results header.
	EmptySearch bool
	Filter      string
	RowWidth    int
}

// Len is the row count.
func (r Rows) Len() int { return len(r.Rows) }

// At returns row i, or false when out of range.
func (r Rows) At(i int) (Row, bool) {
	if i < 0 || i >= len(r.Rows) {
		return Row{}, false
	}
	return r.Rows[i], true
}

// NormalizeFilter lowercases s and strips one leading and one trailing colon,
// so ":Smile:" searches for "smile".
func NormalizeFilter(s string) string {
	s = strings.ToLower(s)
	s = strings.TrimPrefix(s, ":")
	s = strings.TrimSuffix(s, ":")
	return s
}

// Materialize flattens the catalog into header and grid rows. An empty
// filter yields every non-empty category in catalog order; otherwise the
// matches from all categories except recent are gathered into a single
// search-results category in their original order.
func Materialize(c Catalog, filter string, tone SkinTone, rowWidth int) Rows {
	if rowWidth <= 0 {
		rowWidth = DefaultRowWidth
	}
	resolve := c.resolver(tone)
	out := Rows{Filter: filter, RowWidth: rowWidth}

	if filter == "" {
		ci := 0
		for _, cat := range c.Categories {
			var items []Emoji
			for _, id := range cat.EmojiIDs {
				if e, ok := resolve(id); ok {
					items = append(items, e)
				}
			}
			if len(items) == 0 {
				continue
			}
			out.Rows = appendCategory(out.Rows, ci, cat.Name, items, rowWidth)
			ci++
		}
		return out
	}

	needle := strings.ToLower(filter)
	var matches []Emoji
	for _, cat := range c.Categories {
		if cat.Name == CategoryRecent {
			continue
		}
		for _, id := range cat.EmojiIDs {
			e, ok := resolve(id)
			if ok && e.matches(needle) {
				matches = append(matches, e)
			}
		}
	}
	out.Rows = appendCategory(out.Rows, 0, CategorySearchResults, matches, rowWidth)
	out.EmptySearch = len(matches) == 0
	return out
}

func appendCategory(rows []Row, ci int, name CategoryName, items []Emoji, rowWidth int) []Row {
	rows = append(rows, Row{
		Kind:  HeaderRow,
		Index: len(rows),
		Items: []RowItem{{CategoryIndex: ci, CategoryName: name, EmojiIndex: -1}},
	})
	for start := 0; start < len(items); start += rowWidth {
		end := min(start+rowWidth, len(items))
		row := Row{Kind: EmojisRow, Index: len(rows), Items: make([]RowItem, 0, end-start)}
		for i := start; i < end; i++ {
			e := items[i]
			row.Items = append(row.Items, RowItem{
				CategoryIndex: ci,
				CategoryName:  name,
				EmojiIndex:    i,
				EmojiID:       e.ID,
				Emoji:         &e,
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// resolver maps a catalog display id to the emoji shown for tone. When tone
// differs from the catalog's own tone the variant is re-derived from the
// source.
func (c Catalog) resolver(tone SkinTone) func(id string) (Emoji, bool) {
	if tone == "" || tone == c.SkinTone || c.src.Emojis == nil {
		return c.Emoji
	}
	return func(id string) (Emoji, bool) {
		e, ok := c.Emojis[id]
		if !ok {
			return Emoji{}, false
		}
		return displayEmoji(c.src, e, tone), true
	}
}
