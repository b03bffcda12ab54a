package views

import (
	"fmt"

	"scrollindicator/internal/orchestrator"
	"scrollindicator/ui/tui/state"
	"scrollindicator/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func RenderDemo(s state.DemoState, props ViewProps) string {
	v := DemoView{}
	return v.Render(s, props)
}

// StatusLine summarizes the indicator state under the container.
func StatusLine(spinnerView string, o *orchestrator.Orchestrator) string {
	if o == nil {
		return spinnerView + " no indicator"
	}
	e := o.Engine()
	return fmt.Sprintf("%s offset %.1f / %.1f · scale %.2f · %s",
		spinnerView, e.Offset(), o.Geometry().Travel, o.Frame().Scale, e.State())
}

var altRow = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAA"))

// RenderItem styles list items, alternating shades by index.
func RenderItem(index int, item string) string {
	if index%2 == 0 {
		return styles.StatusStyle.UnsetBold().Render(item)
	}
	return altRow.Render(item)
}
