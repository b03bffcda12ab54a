package indicator

import (
	"math"

	"scrollindicator/internal/geometry"
)

// Metrics are the sizes of one scroll axis, as last reported by the host.
type Metrics struct {
	ContentSize    float64 // total size of the content along the axis
	VisibleSize    float64 // size of the viewport along the axis
	OrthogonalSize float64 // size of the viewport across the axis
}

// Geometry derives the indicator length and travel range from the metrics.
func (m Metrics) Geometry() geometry.Geometry {
	return geometry.Compute(m.ContentSize, m.VisibleSize)
}

func (m Metrics) degenerate() bool {
	return m.ContentSize <= 0 || m.VisibleSize <= 0
}

// IndicatorOffset maps a raw content scroll offset to the distance traveled by
// the indicator start.
func IndicatorOffset(contentOffset float64, m Metrics) float64 {
	if m.degenerate() {
		return 0
	}
	return contentOffset * m.VisibleSize / m.ContentSize
}

// ContentOffset is the inverse of IndicatorOffset.
func ContentOffset(indicatorOffset float64, m Metrics) float64 {
	if m.degenerate() {
		return 0
	}
	return indicatorOffset * m.ContentSize / m.VisibleSize
}

// Scroller is the programmatic scroll primitive of the host container.
// Offsets are along the indicator axis and must be applied without animation.
type Scroller interface {
	ScrollToOffset(offset float64)
}

// State is the drag state of an Engine.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// Engine owns the animated offset and scale of one indicator and translates
// drags into scroll commands. It is not safe for concurrent use; the host
// serializes events per container.
type Engine struct {
	target Scroller

	offset float64 // d: indicator start along the track, unclamped
	scale  float64 // sc: edge-shrink factor, unclamped

	state      State
	grabOffset float64 // indicator offset when the current drag began
	measured   float64 // rendered indicator length, 0 until reported
}

// New returns an idle engine at offset 0 and full scale.
func New(target Scroller) *Engine {
	return &Engine{target: target, scale: 1}
}

// Offset returns the current, unclamped indicator offset.
func (e *Engine) Offset() float64 { return e.offset }

// Scale returns the current, unclamped shrink factor.
func (e *Engine) Scale() float64 { return e.scale }

// State returns the drag state.
func (e *Engine) State() State { return e.state }

// Dragging reports whether a drag gesture is in progress.
func (e *Engine) Dragging() bool { return e.state == StateDragging }

// OnScroll updates the indicator from a raw container scroll offset, which may
// be negative or past the end while the host overscrolls.
func (e *Engine) OnScroll(rawContentOffset float64, m Metrics, g geometry.Geometry) {
	if m.degenerate() || g.Length <= 0 {
		e.offset, e.scale = 0, 1
		return
	}
	off := IndicatorOffset(rawContentOffset, m)
	e.offset = off
	e.scale = shrink(off, g)
}

// shrink keeps the far end of the indicator flush with the container edge
// while it is scaled around its center.
func shrink(off float64, g geometry.Geometry) float64 {
	if off >= 0 {
		return (g.Length + 2*g.Travel - 2*off) / g.Length
	}
	return (g.Length + 2*off) / g.Length
}

// OnIndicatorLayout records the length the indicator was actually rendered
// with, which can differ from the computed length after rounding.
func (e *Engine) OnIndicatorLayout(length float64) {
	e.measured = length
}

// OnDragStart begins a drag. pointerPage and pointerLocal are the pointer
// position along the axis in page and indicator-local coordinates;
// containerPage is the container origin in page coordinates. A drag already in
// progress is replaced.
func (e *Engine) OnDragStart(pointerPage, pointerLocal, containerPage float64, m Metrics, inverted bool) {
	fromNear := pointerPage - pointerLocal - containerPage
	if inverted {
		length := e.measured
		if length <= 0 {
			length = m.Geometry().Length
		}
		e.grabOffset = m.VisibleSize - fromNear - length
	} else {
		e.grabOffset = fromNear
	}
	e.state = StateDragging
}

// OnDragMove applies the cumulative pointer delta of the current drag, moves
// the indicator and scrolls the container. It returns the content offset it
// scrolled to. Calls outside a drag are ignored.
func (e *Engine) OnDragMove(delta float64, m Metrics, g geometry.Geometry, inverted bool) float64 {
	if e.state != StateDragging {
		return ContentOffset(e.offset, m)
	}
	if inverted {
		delta = -delta
	}
	off := clamp(delta+e.grabOffset, 0, g.Travel)
	e.offset = off
	content := ContentOffset(off, m)
	if e.target != nil {
		e.target.ScrollToOffset(content)
	}
	return content
}

// OnDragEnd finishes the drag. Offset and scale keep their last values.
func (e *Engine) OnDragEnd() {
	e.state = StateIdle
	e.grabOffset = 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
