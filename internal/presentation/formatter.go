package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	json   bool
}

// NewFormatter creates a text formatter. Call JSON to switch to JSON output.
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// JSON selects indented JSON output.
func (f *Formatter) JSON(on bool) *Formatter {
	f.json = on
	return f
}

// FormatEmojis prints emoji one per line: glyph, :short_name:, category.
func (f *Formatter) FormatEmojis(emojis []EmojiDTO) error {
	if f.json {
		return f.encode(emojis)
	}
	if len(emojis) == 0 {
		_, err := fmt.Fprintln(f.writer, "No matches")
		return err
	}
	for _, e := range emojis {
		short := e.ID
		if len(e.ShortNames) > 0 {
			short = e.ShortNames[0]
		}
		glyph := runewidth.FillRight(e.Glyph, 3)
		if _, err := fmt.Fprintf(f.writer, "%s :%s:  %s\n", glyph, short, e.Category); err != nil {
			return err
		}
	}
	return nil
}

// FormatCategories prints the category table with its header row offsets.
func (f *Formatter) FormatCategories(categories []CategoryDTO) error {
	if f.json {
		return f.encode(categories)
	}
	width := len("CATEGORY")
	for _, c := range categories {
		width = max(width, len(c.Name))
	}
	pad := func(s string) string { return s + strings.Repeat(" ", width-len(s)) }
	if _, err := fmt.Fprintf(f.writer, "%s  %5s  %6s\n", pad("CATEGORY"), "ROW", "EMOJIS"); err != nil {
		return err
	}
	for _, c := range categories {
		if _, err := fmt.Fprintf(f.writer, "%s  %5d  %6d\n", pad(c.Name), c.RowIndex, c.Emojis); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
