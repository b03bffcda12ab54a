package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/indicator"
	"scrollindicator/internal/orchestrator"
	"scrollindicator/ui/cell"
	"scrollindicator/ui/tui/styles"
)

// IndicatorSpec is everything needed to place and paint the indicator.
type IndicatorSpec struct {
	Frame      indicator.Frame
	Location   geometry.Location
	Style      orchestrator.IndicatorStyle
	Horizontal bool
}

// Rect is a cell rectangle relative to the viewport.
type Rect = cell.Rect

// GirthCells is the indicator thickness in whole cells.
func GirthCells(girth float64) int { return cell.GirthCells(girth) }

// IndicatorRect lays the indicator out inside a width×height viewport.
func IndicatorRect(spec IndicatorSpec, width, height int) Rect {
	return cell.Layout(spec.Frame, spec.Location, spec.Style.Girth, spec.Horizontal, width, height)
}

func indicatorRow(spec IndicatorSpec, r Rect, row int) string {
	var b strings.Builder
	for col := 0; col < r.W; col++ {
		b.WriteRune(cell.Glyph(r, col, row, spec.Horizontal, spec.Style.CornerRadius > 0))
	}
	return b.String()
}

// Overlay paints the indicator over a rendered width×height viewport.
func Overlay(view string, width, height int, spec IndicatorSpec) string {
	r := IndicatorRect(spec, width, height)
	if r.Empty() {
		return view
	}
	style := lipgloss.NewStyle().Foreground(styles.IndicatorColor(spec.Style.Color))

	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	for row := 0; row < r.H; row++ {
		y := r.Y + row
		line := fit(lines[y], width)
		lines[y] = cut(line, 0, r.X) +
			style.Render(indicatorRow(spec, r, row)) +
			cut(line, r.X+r.W, width)
	}
	return strings.Join(lines[:height], "\n")
}
