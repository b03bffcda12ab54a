package components

import (
	"strings"

	"scrollindicator/internal/orchestrator"
	"scrollindicator/ui/tui/styles"
)

// scrollContainer holds what ListView and ContentView share: viewport size,
// page origin, the scroll position and the listener they report to.
type scrollContainer struct {
	horizontal bool

	width, height    int
	originX, originY int

	contentW, contentH int
	scroll             scroller

	nativeH, nativeV bool
	listener         orchestrator.Listener
}

func newScrollContainer(horizontal bool) scrollContainer {
	return scrollContainer{
		horizontal: horizontal,
		scroll:     newScroller(),
		nativeH:    true,
		nativeV:    true,
	}
}

// Subscribe registers the listener and replays the current layout, content
// size and scroll position to it.
func (c *scrollContainer) Subscribe(l orchestrator.Listener) {
	c.listener = l
	if l == nil {
		return
	}
	l.OnLayout(float64(c.width), float64(c.height), float64(c.originX), float64(c.originY))
	l.OnContentSizeChange(float64(c.contentW), float64(c.contentH))
	c.emitScroll()
}

// ShowNativeIndicators toggles the plain track/thumb scrollbars.
func (c *scrollContainer) ShowNativeIndicators(horizontal, vertical bool) {
	c.nativeH, c.nativeV = horizontal, vertical
}

// Horizontal reports the scroll axis.
func (c *scrollContainer) Horizontal() bool { return c.horizontal }

// Size returns the viewport size in cells.
func (c *scrollContainer) Size() (int, int) { return c.width, c.height }

// ContentSize returns the content size in cells.
func (c *scrollContainer) ContentSize() (int, int) { return c.contentW, c.contentH }

// Offset returns the raw scroll offset, negative or past the end while
// overscrolled.
func (c *scrollContainer) Offset() float64 { return c.scroll.offset }

func (c *scrollContainer) along(w, h int) int {
	if c.horizontal {
		return w
	}
	return h
}

func (c *scrollContainer) setViewport(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.rebound()
	if c.listener != nil {
		c.listener.OnLayout(float64(width), float64(height), float64(c.originX), float64(c.originY))
	}
}

// SetOrigin records where the viewport was drawn on screen.
func (c *scrollContainer) SetOrigin(x, y int) {
	if x == c.originX && y == c.originY {
		return
	}
	c.originX, c.originY = x, y
	if c.listener != nil {
		c.listener.OnLayout(float64(c.width), float64(c.height), float64(x), float64(y))
	}
}

func (c *scrollContainer) setContentSize(w, h int) {
	if w == c.contentW && h == c.contentH {
		return
	}
	c.contentW, c.contentH = w, h
	c.rebound()
	if c.listener != nil {
		c.listener.OnContentSizeChange(float64(w), float64(h))
	}
}

func (c *scrollContainer) rebound() {
	c.scroll.setBounds(float64(c.along(c.contentW, c.contentH)), float64(c.along(c.width, c.height)))
}

func (c *scrollContainer) emitScroll() {
	if c.listener == nil {
		return
	}
	if c.horizontal {
		c.listener.OnScroll(c.scroll.offset, 0)
	} else {
		c.listener.OnScroll(0, c.scroll.offset)
	}
}

// ScrollToOffset scrolls along the axis without animation.
func (c *scrollContainer) ScrollToOffset(offset float64) {
	c.scroll.jump(offset)
	c.emitScroll()
}

// ScrollBy applies user scroll input, which may overscroll.
func (c *scrollContainer) ScrollBy(delta float64) {
	c.scroll.pull(delta)
	c.emitScroll()
}

// PageBy scrolls by whole viewports, staying inside the content.
func (c *scrollContainer) PageBy(pages float64) {
	c.ScrollToOffset(c.scroll.offset + pages*float64(c.along(c.width, c.height)))
}

// ScrollToStart and ScrollToEnd jump to either end of the content.
func (c *scrollContainer) ScrollToStart() { c.ScrollToOffset(0) }
func (c *scrollContainer) ScrollToEnd()   { c.ScrollToOffset(c.scroll.max) }

// Settle advances any overscroll bounce by one frame.
func (c *scrollContainer) Settle() bool {
	if !c.scroll.settle() {
		return false
	}
	c.emitScroll()
	return true
}

// decorate draws the native scrollbar over the rendered viewport when enabled.
func (c *scrollContainer) decorate(view string) string {
	if c.horizontal && c.nativeH {
		return withNativeBar(view, c.width, c.height, c.contentW, c.scroll.cell(), true)
	}
	if !c.horizontal && c.nativeV {
		return withNativeBar(view, c.width, c.height, c.contentH, c.scroll.cell(), false)
	}
	return view
}

// NativeScrollbar renders a plain track with a thumb sized visible/content.
// It returns an empty string when the content fits.
func NativeScrollbar(length, content, offset int) string {
	return strings.Join(nativeCells(length, content, offset), "")
}

func nativeCells(length, content, offset int) []string {
	if length <= 0 || content <= length {
		return nil
	}
	thumb := max(1, length*length/content)
	maxOffset := content - length
	offset = max(0, min(offset, maxOffset))
	start := min(length-thumb, offset*(length-thumb)/maxOffset)

	cells := make([]string, length)
	for i := range cells {
		if i >= start && i < start+thumb {
			cells[i] = styles.NativeThumbStyle.Render(styles.NativeThumb)
		} else {
			cells[i] = styles.NativeTrackStyle.Render(styles.NativeTrack)
		}
	}
	return cells
}

func withNativeBar(view string, width, height, content, offset int, horizontal bool) string {
	length := height
	if horizontal {
		length = width
	}
	cells := nativeCells(length, content, offset)
	if cells == nil {
		return view
	}
	lines := strings.Split(view, "\n")
	if horizontal {
		lines[len(lines)-1] = strings.Join(cells, "")
		return strings.Join(lines, "\n")
	}
	for i := range lines {
		if i < len(cells) {
			lines[i] = cut(lines[i], 0, width-1) + cells[i]
		}
	}
	return strings.Join(lines, "\n")
}
