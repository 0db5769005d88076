// Package overlay renders floating content (pickers, tooltips, tips) on top
// of a background view without clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the center of the viewport.
	Center Position = iota
	// Top places the overlay at the top center of the viewport.
	Top
	// Bottom places the overlay at the bottom center of the viewport.
	Bottom
	// Beside places the overlay next to Config.Anchor on Config.Side.
	Beside
)

// Side is the edge of the anchor the overlay attaches to.
type Side int

const (
	Right Side = iota
	Left
	Above
	Below
)

// String returns the placement name used by tutorial tips.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Above:
		return "top"
	case Below:
		return "bottom"
	default:
		return "right"
	}
}

// ParseSide maps "left", "top", "bottom" and "right" to a Side. Unknown
// values are Right.
func ParseSide(s string) Side {
	switch strings.ToLower(s) {
	case "left":
		return Left
	case "top", "above":
		return Above
	case "bottom", "below":
		return Below
	default:
		return Right
	}
}

// Rect is a cell rectangle in viewport coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// ZoneRect converts scanned bubblezone bounds to a Rect. Unknown zones give
// an empty Rect.
func ZoneRect(z *zone.ZoneInfo) Rect {
	if z.IsZero() {
		return Rect{}
	}
	return Rect{X: z.StartX, Y: z.StartY, Width: z.EndX - z.StartX + 1, Height: z.EndY - z.StartY + 1}
}

// Union is the smallest Rect covering both. Empty rects are ignored.
func (r Rect) Union(o Rect) Rect {
	switch {
	case r.Empty():
		return o
	case o.Empty():
		return r
	}
	x, y := min(r.X, o.X), min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.X+r.Width, o.X+o.Width) - x,
		Height: max(r.Y+r.Height, o.Y+o.Height) - y,
	}
}

// Config controls overlay rendering behavior.
type Config struct {
	Width    int // total viewport width
	Height   int // total viewport height
	Position Position
	PadX     int
	PadY     int

	// Anchor and Side are used by Beside. Gap is the number of cells left
	// between the anchor and the overlay.
	Anchor Rect
	Side   Side
	Gap    int
}

// Place renders foreground content on top of background, preserving ANSI
// styling in both.
func Place(cfg Config, fg, bg string) string {
	x, y := Origin(cfg, lipgloss.Width(fg), lipgloss.Height(fg))
	return PlaceAt(cfg, x, y, fg, bg)
}

// PlaceAt renders fg with its top-left corner at (x, y).
func PlaceAt(cfg Config, x, y int, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	for i, fgLine := range fgLines {
		bgY := y + i
		if bgY < 0 {
			continue
		}
		if bgY >= len(bgLines) {
			break
		}

		bgLine := bgLines[bgY]
		left := ansi.Truncate(bgLine, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}

		var right string
		endX := x + ansi.StringWidth(fgLine)
		if endX < ansi.StringWidth(bgLine) {
			right = ansi.TruncateLeft(bgLine, endX, "")
		}

		bgLines[bgY] = left + fgLine + right
	}

	return strings.Join(bgLines, "\n")
}

// Origin returns the top-left coordinates for a foreground of the given size.
// The result is clamped so the overlay stays inside the viewport whenever it
// fits.
func Origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	switch cfg.Position {
	case Top:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.PadY
	case Bottom:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.Height - fgHeight - cfg.PadY
	case Beside:
		x, y = beside(cfg, fgWidth, fgHeight)
	default:
		x = (cfg.Width - fgWidth) / 2
		y = (cfg.Height - fgHeight) / 2
	}

	x = clamp(x, cfg.Width-fgWidth)
	y = clamp(y, cfg.Height-fgHeight)
	return x, y
}

func beside(cfg Config, w, h int) (x, y int) {
	a := cfg.Anchor
	switch cfg.Side {
	case Left:
		x = a.X - cfg.Gap - w
		y = a.Y
	case Above:
		x = a.X
		y = a.Y - cfg.Gap - h
	case Below:
		x = a.X
		y = a.Y + a.Height + cfg.Gap
	default:
		x = a.X + a.Width + cfg.Gap
		y = a.Y
	}
	return x, y
}

func clamp(v, hi int) int {
	if v > hi {
		v = hi
	}
	if v < 0 {
		v = 0
	}
	return v
}
