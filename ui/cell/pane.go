package cell

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"scrollindicator/internal/orchestrator"
)

// Pane is a scrollable block of text on a tcell screen. It reports its
// metrics to a listener the way a native scroll view would.
type Pane struct {
	area       Rect
	lines      []string
	horizontal bool
	offset     float64
	native     bool
	listener   orchestrator.Listener
}

// NewPane returns an empty pane scrolling along the given axis.
func NewPane(horizontal bool) *Pane {
	return &Pane{horizontal: horizontal, native: true}
}

func (p *Pane) Subscribe(l orchestrator.Listener) {
	p.listener = l
	if l == nil {
		return
	}
	p.notifyLayout()
	p.notifyContent()
	p.notifyScroll()
}

func (p *Pane) ShowNativeIndicators(horizontal, vertical bool) {
	if p.horizontal {
		p.native = horizontal
	} else {
		p.native = vertical
	}
}

// ScrollToOffset scrolls without animation, clamped to the content.
func (p *Pane) ScrollToOffset(offset float64) {
	p.offset = math.Max(0, math.Min(offset, p.maxOffset()))
	p.notifyScroll()
}

// ScrollBy scrolls relative to the current offset.
func (p *Pane) ScrollBy(delta float64) { p.ScrollToOffset(p.offset + delta) }

// Offset returns the scroll offset along the axis.
func (p *Pane) Offset() float64 { return p.offset }

// Area returns where the pane is drawn.
func (p *Pane) Area() Rect { return p.area }

// SetArea places the pane on the screen.
func (p *Pane) SetArea(area Rect) {
	if area == p.area {
		return
	}
	p.area = area
	p.offset = math.Max(0, math.Min(p.offset, p.maxOffset()))
	p.notifyLayout()
}

// SetLines replaces the text.
func (p *Pane) SetLines(lines []string) {
	p.lines = lines
	p.offset = math.Max(0, math.Min(p.offset, p.maxOffset()))
	p.notifyContent()
}

// ContentSize returns the text size in cells.
func (p *Pane) ContentSize() (int, int) {
	w := 0
	for _, l := range p.lines {
		w = max(w, runewidth.StringWidth(l))
	}
	return w, len(p.lines)
}

func (p *Pane) along(w, h int) int {
	if p.horizontal {
		return w
	}
	return h
}

func (p *Pane) maxOffset() float64 {
	cw, ch := p.ContentSize()
	return math.Max(0, float64(p.along(cw, ch)-p.along(p.area.W, p.area.H)))
}

func (p *Pane) notifyLayout() {
	if p.listener != nil {
		p.listener.OnLayout(float64(p.area.W), float64(p.area.H), float64(p.area.X), float64(p.area.Y))
	}
}

func (p *Pane) notifyContent() {
	if p.listener != nil {
		cw, ch := p.ContentSize()
		p.listener.OnContentSizeChange(float64(cw), float64(ch))
	}
}

func (p *Pane) notifyScroll() {
	if p.listener == nil {
		return
	}
	if p.horizontal {
		p.listener.OnScroll(p.offset, 0)
	} else {
		p.listener.OnScroll(0, p.offset)
	}
}

// Draw renders the visible text and, when enabled, a plain scrollbar.
func (p *Pane) Draw(screen tcell.Screen, style tcell.Style) {
	fill(screen, p.area, style)
	off := int(math.Round(p.offset))
	for row := 0; row < p.area.H; row++ {
		i := row
		skip := 0
		if p.horizontal {
			skip = off
		} else {
			i += off
		}
		if i >= len(p.lines) {
			break
		}
		drawText(screen, p.area.X, p.area.Y+row, skip, p.area.W, p.lines[i], style)
	}
	if p.native {
		p.drawNative(screen, style)
	}
}

func (p *Pane) drawNative(screen tcell.Screen, style tcell.Style) {
	cw, ch := p.ContentSize()
	content := p.along(cw, ch)
	length := p.along(p.area.W, p.area.H)
	if length <= 0 || content <= length {
		return
	}
	thumb := max(1, length*length/content)
	start := int(p.offset) * (length - thumb) / (content - length)
	for i := 0; i < length; i++ {
		r := '│'
		if i >= start && i < start+thumb {
			r = '┃'
		}
		if p.horizontal {
			screen.SetContent(p.area.X+i, p.area.Y+p.area.H-1, r, nil, style)
		} else {
			screen.SetContent(p.area.X+p.area.W-1, p.area.Y+i, r, nil, style)
		}
	}
}
