// Package cell places scroll indicators on a character-cell grid and draws
// them on tcell screens.
package cell

import (
	"math"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/indicator"
)

// Rect is a cell rectangle relative to a viewport.
type Rect struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// GirthCells is the indicator thickness in whole cells, at least one.
func GirthCells(girth float64) int {
	return max(1, int(math.Round(girth)))
}

// Layout returns the cells covered by the indicator inside a width×height
// viewport. The span along the axis is cut at the viewport edges; a visible
// span shorter than a cell still covers one.
func Layout(f indicator.Frame, loc geometry.Location, girth float64, horizontal bool, width, height int) Rect {
	along, across := height, width
	if horizontal {
		along, across = width, height
	}
	if along <= 0 || across <= 0 {
		return Rect{}
	}

	g := min(GirthCells(girth), across)
	off := int(math.Round(loc.Offset))
	var cross int
	switch loc.Edge {
	case geometry.EdgeRight, geometry.EdgeBottom:
		cross = across - g - off
	default:
		cross = off
	}
	cross = max(0, min(cross, across-g))

	start := int(math.Round(f.Start))
	end := int(math.Round(f.End()))
	if f.Length > 0 && end == start {
		end = start + 1
	}
	start = max(0, start)
	end = min(end, along)
	if end <= start {
		return Rect{}
	}

	if horizontal {
		return Rect{X: start, Y: cross, W: end - start, H: g}
	}
	return Rect{X: cross, Y: start, W: g, H: end - start}
}

// Glyph returns the block character for cell (col, row) of an indicator
// rectangle. Rounded indicators get half-block caps at both ends.
func Glyph(r Rect, col, row int, horizontal, rounded bool) rune {
	if !rounded {
		return '█'
	}
	if horizontal && r.W >= 2 {
		switch col {
		case 0:
			return '▐'
		case r.W - 1:
			return '▌'
		}
	}
	if !horizontal && r.H >= 2 {
		switch row {
		case 0:
			return '▄'
		case r.H - 1:
			return '▀'
		}
	}
	return '█'
}
