package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	Highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	Special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	Danger    = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F87"}

	TitleStyle = lipgloss.NewStyle().
			MarginLeft(1).
			MarginRight(5).
			Padding(0, 1).
			Italic(true).
			Foreground(lipgloss.Color("#FFF7DB"))

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Padding(0, 1).
			Margin(0, 1)

	StatusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFF"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger)

	// Native scrollbar drawn by containers that have not been taken over.
	NativeThumb      = "┃"
	NativeTrack      = "│"
	NativeThumbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	NativeTrackStyle = lipgloss.NewStyle().Foreground(Subtle)
)

var namedColors = map[string]string{
	"black":   "0",
	"maroon":  "1",
	"green":   "2",
	"olive":   "3",
	"navy":    "4",
	"purple":  "5",
	"teal":    "6",
	"silver":  "7",
	"grey":    "8",
	"gray":    "8",
	"red":     "9",
	"lime":    "10",
	"yellow":  "11",
	"blue":    "12",
	"fuchsia": "13",
	"aqua":    "14",
	"white":   "15",
}

// IndicatorColor resolves a style colour: a basic colour name, an ANSI index
// or a hex value.
func IndicatorColor(name string) lipgloss.TerminalColor {
	if code, ok := namedColors[strings.ToLower(name)]; ok {
		return lipgloss.Color(code)
	}
	if name == "" {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(name)
}
