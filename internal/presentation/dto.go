package presentation

import (
	"github.com/zjrosen/parley/internal/emoji"
)

// EmojiDTO is an emoji as printed by the CLI.
type EmojiDTO struct {
	ID         string   `json:"id"`
	Glyph      string   `json:"glyph,omitempty"`
	Name       string   `json:"name"`
	ShortNames []string `json:"short_names"`
	Category   string   `json:"category"`
	Custom     bool     `json:"custom,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// CategoryDTO is one line of the category/offset table.
type CategoryDTO struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	RowIndex int    `json:"row_index"`
	Emojis   int    `json:"emojis"`
}

// FromEmoji converts an emoji for output.
func FromEmoji(e emoji.Emoji) EmojiDTO {
	return EmojiDTO{
		ID:         e.ID,
		Glyph:      e.Glyph(),
		Name:       e.Name,
		ShortNames: e.ShortNames,
		Category:   string(e.Category),
		Custom:     e.Custom,
		ImageURL:   e.ImageURL,
	}
}

// FromRows lists the emoji of materialized rows in display order.
func FromRows(rows emoji.Rows) []EmojiDTO {
	out := make([]EmojiDTO, 0)
	for _, r := range rows.Rows {
		if r.Kind != emoji.EmojisRow {
			continue
		}
		for _, item := range r.Items {
			if item.Emoji != nil {
				out = append(out, FromEmoji(*item.Emoji))
			}
		}
	}
	return out
}

// FromOffsetIndex converts an offset index into table lines.
func FromOffsetIndex(idx emoji.OffsetIndex) []CategoryDTO {
	out := make([]CategoryDTO, 0, idx.Len())
	for i, name := range idx.Categories {
		out = append(out, CategoryDTO{
			Name:     string(name),
			Label:    name.Label(),
			RowIndex: idx.RowIndices[i],
			Emojis:   idx.NumEmojis[i],
		})
	}
	return out
}
