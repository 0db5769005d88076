// Package markdown renders tutorial tip bodies and message previews with glamour.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// noMarginStyle removes document margins so tips line up with their border.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Renderer wraps a glamour renderer for a fixed width and style.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a markdown renderer. style is "dark" or "light" and defaults
// to "dark". WithAutoStyle is avoided because its terminal background query
// leaks escape sequences into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Render transforms markdown to styled terminal output without the trailing
// blank lines glamour appends.
func (r *Renderer) Render(md string) (string, error) {
	out, err := r.renderer.Render(md)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// Pool hands out renderers keyed by width. Tips re-render on every resize and
// building a glamour renderer is not free.
type Pool struct {
	style string

	mu        sync.Mutex
	renderers map[int]*Renderer
}

// NewPool creates a pool for one style.
func NewPool(style string) *Pool {
	return &Pool{style: style, renderers: make(map[int]*Renderer)}
}

// Render renders md at width, falling back to the raw text when glamour fails.
func (p *Pool) Render(md string, width int) string {
	r, err := p.get(width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

func (p *Pool) get(width int) (*Renderer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if r, ok := p.renderers[width]; ok {
		return r, nil
	}
	r, err := New(width, p.style)
	if err != nil {
		return nil, err
	}
	p.renderers[width] = r
	return r, nil
}
