package views

import (
	"fmt"
	"strings"

	"scrollindicator/internal/orchestrator"
	"scrollindicator/ui/tui/state"
	"scrollindicator/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// ViewportZone marks the scroll container so mouse events can be mapped to
// viewport cells.
const ViewportZone = "viewport"

// Fixed rows around the viewport: header, toggles, gap, box border, status
// and help.
const (
	headerRows = 3
	chromeRows = headerRows + 1 + 1 + 2 + 1 + 1
	boxCols    = 2 + 2
	traceCols  = 44
)

type DemoView struct{}

func (v DemoView) Render(s state.DemoState, props ViewProps) string {
	// 1. Header
	title := fmt.Sprintf("SCROLLINDICATOR // %s · %s", strings.ToUpper(s.Variant.String()), axisName(s.Horizontal))
	header := MenuHeaderStyle.Width(props.Width).Render(title)

	// 2. Toggles
	variant := 0
	if s.Variant == orchestrator.VariantList {
		variant = 1
	}
	axis := 0
	if s.Horizontal {
		axis = 1
	}
	positions := state.Positions(s.Horizontal)
	labels := make([]string, len(positions))
	for i, p := range positions {
		labels[i] = PositionLabel(p)
	}
	toggles := lipgloss.JoinHorizontal(lipgloss.Top,
		Choice([]string{"content", "list"}, variant), "  ",
		Choice([]string{"vertical", "horizontal"}, axis), "  ",
		Choice(labels, s.PositionIndex%len(labels)), "  ",
		Toggle("crazy", s.Crazy, true),
		Toggle("inverted", s.Inverted, s.Variant == orchestrator.VariantList),
		Toggle("persistent", s.Persistent, true),
		Toggle("trace", s.ShowTrace, true),
	)

	// 3. Container
	box := ViewportBoxStyle.Render(zone.Mark(ViewportZone, props.Viewport))
	body := box
	if s.ShowTrace && props.TraceView != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, box, props.TraceView)
	}

	// 4. Status & help
	status := CopyStyle.Render(props.Status)
	if s.Err != nil {
		status = styles.ErrorStyle.PaddingLeft(2).Render("error: " + s.Err.Error())
	}
	help := lipgloss.NewStyle().PaddingLeft(2).Render(props.HelpView)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left,
		header,
		toggles,
		"",
		body,
		status,
		help,
	))
}

func axisName(horizontal bool) string {
	if horizontal {
		return "HORIZONTAL"
	}
	return "VERTICAL"
}

// ViewportSize returns the size of the scroll container for a terminal of
// the given size.
func ViewportSize(width, height int, horizontal, trace bool) (int, int) {
	w := width - boxCols
	if trace && w-traceCols >= 20 {
		w -= traceCols
	}
	h := height - chromeRows
	if horizontal {
		h = max(3, h/3)
	}
	return max(w, 1), max(h, 1)
}

// TraceSize returns the chart size of the trace panel.
func TraceSize(height int) (int, int) {
	return traceCols - 8, max(height-chromeRows-5, 4)
}

var (
	BrandColor = lipgloss.Color("#f27b24")
	BaseColor  = lipgloss.Color("#444")

	MenuHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(BrandColor).
			Align(lipgloss.Left).
			Padding(1, 2)

	ViewportBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BaseColor).
				MarginLeft(1)

	CopyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888")).
			Italic(true).
			PaddingLeft(2)
)
