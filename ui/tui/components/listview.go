package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// ItemRenderer styles one list item. It must not change the item's cell
// width, which is measured on the raw text.
type ItemRenderer func(index int, item string) string

// ListView is a list-type scroll container: a sequence of items laid out
// along the scroll axis. Inverted lists put the first item at the far end.
type ListView struct {
	scrollContainer

	items     []string
	render    ItemRenderer
	inverted  bool
	separator string

	lines []string // rendered content, already in display order
}

// NewListView returns an empty list scrolling along the given axis.
func NewListView(horizontal, inverted bool, render ItemRenderer) *ListView {
	if render == nil {
		render = func(_ int, item string) string { return item }
	}
	sep := "─"
	if horizontal {
		sep = "│"
	}
	return &ListView{
		scrollContainer: newScrollContainer(horizontal),
		render:          render,
		inverted:        inverted,
		separator:       sep,
	}
}

// Items returns the current items.
func (l *ListView) Items() []string { return l.items }

// SetItems replaces the data sequence and reports the new content size.
func (l *ListView) SetItems(items []string) {
	l.items = items
	l.relayout()
}

// SetSize sets the viewport size in cells.
func (l *ListView) SetSize(width, height int) {
	l.setViewport(width, height)
	l.relayout()
}

func (l *ListView) relayout() {
	order := make([]int, len(l.items))
	for i := range order {
		order[i] = i
		if l.inverted {
			order[i] = len(l.items) - 1 - i
		}
	}

	if !l.horizontal {
		lines := make([]string, 0, 2*len(l.items))
		sepLine := strings.Repeat(l.separator, max(l.width, 1))
		maxW := 0
		for n, i := range order {
			if n > 0 {
				lines = append(lines, sepLine)
			}
			lines = append(lines, " "+l.render(i, l.items[i]))
			maxW = max(maxW, runewidth.StringWidth(l.items[i])+1)
		}
		l.lines = lines
		l.setContentSize(max(maxW, l.width), len(lines))
		return
	}

	// Horizontal: each item is a column, text on the first row and the
	// separator running the full height.
	rows := max(l.height, 1)
	builders := make([]strings.Builder, rows)
	total := 0
	for n, i := range order {
		if n > 0 {
			for r := range builders {
				builders[r].WriteString(l.separator)
			}
			total += runewidth.StringWidth(l.separator)
		}
		w := runewidth.StringWidth(l.items[i]) + 2
		for r := range builders {
			if r == 0 {
				builders[r].WriteString(" " + l.render(i, l.items[i]) + " ")
			} else {
				builders[r].WriteString(strings.Repeat(" ", w))
			}
		}
		total += w
	}
	l.lines = make([]string, rows)
	for r := range builders {
		l.lines[r] = builders[r].String()
	}
	l.setContentSize(total, rows)
}

// windowStart is the first content cell shown along the axis.
func (l *ListView) windowStart() int {
	off := l.scroll.cell()
	if !l.inverted {
		return off
	}
	return l.along(l.contentW, l.contentH) - l.along(l.width, l.height) - off
}

func (l *ListView) Init() tea.Cmd { return nil }

func (l *ListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		l.SetSize(msg.Width, msg.Height)
	}
	return l, nil
}

// View renders the visible window of the list.
func (l *ListView) View() string {
	start := l.windowStart()
	var view string
	if l.horizontal {
		view = clip(l.lines, start, 0, l.width, l.height)
	} else {
		view = clip(l.lines, 0, start, l.width, l.height)
	}
	return l.decorate(view)
}
