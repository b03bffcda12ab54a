package views

import (
	"strings"

	"scrollindicator/internal/geometry"
	"scrollindicator/ui/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

var (
	toggleOn = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.Color("#ADD8E6")).
			Padding(0, 1)
	toggleOff = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#AAA")).
			Padding(0, 1)
	toggleDisabled = lipgloss.NewStyle().
			Foreground(styles.Subtle).
			Padding(0, 1)
)

// Choice renders a row of mutually exclusive options with one selected.
func Choice(options []string, selected int) string {
	parts := make([]string, len(options))
	for i, o := range options {
		if i == selected {
			parts[i] = toggleOn.Render(o)
		} else {
			parts[i] = toggleOff.Render(o)
		}
	}
	return strings.Join(parts, "")
}

// Toggle renders an on/off switch. Disabled switches are greyed out.
func Toggle(label string, on, enabled bool) string {
	switch {
	case !enabled:
		return toggleDisabled.Render(label)
	case on:
		return toggleOn.Render(label)
	default:
		return toggleOff.Render(label)
	}
}

// PositionLabel names a position toggle entry.
func PositionLabel(p geometry.Position) string {
	if p.IsZero() {
		return "default"
	}
	if p.IsNumeric() {
		return p.String() + "%"
	}
	return p.String()
}
