package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const Lorem = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. " +
	"Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. " +
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum. " +
	"Curabitur pretium tincidunt lacus. Nulla gravida orci a odio. Nullam varius, turpis et commodo pharetra, est eros bibendum elit, nec luctus magna felis sollicitudin mauris. " +
	"Integer in mauris eu nibh euismod gravida. Duis ac tellus et risus vulputate vehicula. Donec lobortis risus a elit. Etiam tempor. " +
	"Ut ullamcorper, ligula eu tempor congue, eros est euismod turpis, id tincidunt sapien risus a quam. Maecenas fermentum consequat mi. " +
	"Donec fermentum. Pellentesque malesuada nulla a mi. Duis sapien sem, aliquet nec, commodo eget, consequat quis, neque. " +
	"Aliquam faucibus, elit ut dictum aliquet, felis nisl adipiscing sapien, sed malesuada diam lacus eget erat. Cras mollis scelerisque nunc. " +
	"Nullam arcu. Aliquam consequat. Curabitur augue lorem, dapibus quis, laoreet et, pretium ac, nisi. Aenean magna nisl, mollis quis, molestie eu, feugiat in, orci. " +
	"In hac habitasse platea dictumst."

// ContentBody returns the text for the content container. Vertical bodies
// are wrapped to width and repeated so they overflow; horizontal bodies are
// a few long unwrapped lines.
func ContentBody(horizontal bool, width int) string {
	if horizontal {
		s := Sentences()
		lines := make([]string, 0, 3)
		for i := 0; i < 3; i++ {
			lines = append(lines, strings.Join(s[i*3:i*3+3], ". ")+".")
		}
		return strings.Join(lines, "\n")
	}
	text := strings.Repeat(Lorem+"\n\n", 3)
	return lipgloss.NewStyle().Width(max(width-2, 10)).Render(strings.TrimSpace(text))
}

// Sentences splits the lorem text into sentences for the list container.
func Sentences() []string {
	var out []string
	for _, s := range strings.Split(Lorem, ".") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
