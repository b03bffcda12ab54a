package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// ContentView is a general content scroll container: a free-form body of
// styled lines. It scrolls along one axis and keeps the other at zero.
type ContentView struct {
	scrollContainer
	body []string
}

// NewContentView returns an empty content container.
func NewContentView(horizontal bool) *ContentView {
	return &ContentView{scrollContainer: newScrollContainer(horizontal)}
}

// SetBody replaces the content and reports its new size.
func (c *ContentView) SetBody(body string) {
	c.body = strings.Split(body, "\n")
	w := 0
	for _, line := range c.body {
		w = max(w, ansi.StringWidth(line))
	}
	c.setContentSize(w, len(c.body))
}

// SetSize sets the viewport size in cells.
func (c *ContentView) SetSize(width, height int) {
	c.setViewport(width, height)
}

// ScrollTo scrolls to an (x, y) position. Only the coordinate on the
// scroll axis is used.
func (c *ContentView) ScrollTo(x, y float64) {
	if c.horizontal {
		c.scrollContainer.ScrollToOffset(x)
	} else {
		c.scrollContainer.ScrollToOffset(y)
	}
}

// ScrollToOffset maps a single-axis offset onto ScrollTo.
func (c *ContentView) ScrollToOffset(offset float64) {
	if c.horizontal {
		c.ScrollTo(offset, 0)
	} else {
		c.ScrollTo(0, offset)
	}
}

func (c *ContentView) Init() tea.Cmd { return nil }

func (c *ContentView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		c.SetSize(msg.Width, msg.Height)
	}
	return c, nil
}

// View renders the visible window of the body.
func (c *ContentView) View() string {
	off := c.scroll.cell()
	var view string
	if c.horizontal {
		view = clip(c.body, off, 0, c.width, c.height)
	} else {
		view = clip(c.body, 0, off, c.width, c.height)
	}
	return c.decorate(view)
}
