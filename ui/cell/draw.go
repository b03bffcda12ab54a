package cell

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/indicator"
	"scrollindicator/internal/orchestrator"
)

// Color resolves an indicator colour name with tcell's colour table.
// Unknown names fall back to grey.
func Color(name string) tcell.Color {
	if c := tcell.GetColor(name); c != tcell.ColorDefault {
		return c
	}
	return tcell.ColorGray
}

// DrawIndicator paints the indicator inside area and returns the cells it
// covered, relative to area.
func DrawIndicator(screen tcell.Screen, area Rect, f indicator.Frame, loc geometry.Location,
	style orchestrator.IndicatorStyle, horizontal bool) Rect {
	r := Layout(f, loc, style.Girth, horizontal, area.W, area.H)
	if r.Empty() {
		return r
	}
	st := tcell.StyleDefault.Foreground(Color(style.Color))
	rounded := style.CornerRadius > 0
	for row := 0; row < r.H; row++ {
		for col := 0; col < r.W; col++ {
			screen.SetContent(area.X+r.X+col, area.Y+r.Y+row, Glyph(r, col, row, horizontal, rounded), nil, st)
		}
	}
	return r
}

// drawText writes s at (x, y), skipping the first skip cells and stopping
// after width cells. Wide runes that straddle either bound are dropped.
func drawText(screen tcell.Screen, x, y, skip, width int, s string, style tcell.Style) {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col >= skip && col+w <= skip+width {
			screen.SetContent(x+col-skip, y, r, nil, style)
		}
		col += w
		if col >= skip+width {
			return
		}
	}
}

// fill clears a rectangle of the screen.
func fill(screen tcell.Screen, area Rect, style tcell.Style) {
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
