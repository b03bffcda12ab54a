package orchestrator

import (
	"fmt"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/indicator"
)

// Listener receives the layout, content and scroll events of a container.
type Listener interface {
	OnLayout(width, height, pageX, pageY float64)
	OnContentSizeChange(width, height float64)
	OnScroll(x, y float64)
}

// Container is the capability surface a scrollable host exposes to the
// orchestrator.
type Container interface {
	// Subscribe registers the listener for the container's events.
	Subscribe(l Listener)
	// ScrollToOffset scrolls along the indicator axis without animation.
	ScrollToOffset(offset float64)
	// ShowNativeIndicators toggles the container's built-in scroll bars.
	ShowNativeIndicators(horizontal, vertical bool)
}

// Variant distinguishes the two container kinds.
type Variant int

const (
	VariantContent Variant = iota // arbitrary nested content
	VariantList                   // data sequence plus item renderer
)

func (v Variant) String() string {
	if v == VariantList {
		return "list"
	}
	return "content"
}

// Orchestrator ties one container to one indicator engine. It tracks the
// axis metrics reported by the container and decides whether the indicator
// is shown.
type Orchestrator struct {
	variant   Variant
	opts      Options
	position  geometry.Position
	container Container
	engine    *indicator.Engine

	metrics      indicator.Metrics
	pageX, pageY float64 // container origin in page coordinates
	downX, downY float64 // pointer position at drag start
	lastScroll   float64
}

// New wires an orchestrator to the container. The position is resolved and
// validated up front; an invalid one is returned as *geometry.PositionError.
// Inversion is ignored for content containers.
func New(variant Variant, c Container, opts Options) (*Orchestrator, error) {
	if c == nil {
		return nil, fmt.Errorf("orchestrator: nil container")
	}
	if variant != VariantList {
		opts.Inverted = false
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	o := &Orchestrator{
		variant:   variant,
		opts:      opts,
		position:  geometry.DefaultPosition(opts.Horizontal, opts.Position),
		container: c,
		// Until the container reports, assume one unit of content and no
		// viewport so the first frames never divide by zero.
		metrics: indicator.Metrics{ContentSize: 1},
	}
	o.engine = indicator.New(c)

	c.ShowNativeIndicators(false, false)
	c.Subscribe(o)
	return o, nil
}

// Variant returns the container kind.
func (o *Orchestrator) Variant() Variant { return o.variant }

// Options returns the options in effect, with inversion already normalized.
func (o *Orchestrator) Options() Options { return o.opts }

// Position returns the resolved indicator position.
func (o *Orchestrator) Position() geometry.Position { return o.position }

// Metrics returns the current axis metrics.
func (o *Orchestrator) Metrics() indicator.Metrics { return o.metrics }

// Geometry returns the indicator length and travel for the current metrics.
func (o *Orchestrator) Geometry() geometry.Geometry { return o.metrics.Geometry() }

// Engine exposes the underlying indicator engine.
func (o *Orchestrator) Engine() *indicator.Engine { return o.engine }

// Dragging reports whether the indicator is being dragged.
func (o *Orchestrator) Dragging() bool { return o.engine.Dragging() }

func (o *Orchestrator) along(x, y float64) float64 {
	if o.opts.Horizontal {
		return x
	}
	return y
}

func (o *Orchestrator) across(x, y float64) float64 {
	if o.opts.Horizontal {
		return y
	}
	return x
}

// OnLayout records the viewport size and page origin.
func (o *Orchestrator) OnLayout(width, height, pageX, pageY float64) {
	o.metrics.VisibleSize = o.along(width, height)
	o.metrics.OrthogonalSize = o.across(width, height)
	o.pageX, o.pageY = pageX, pageY
	o.refresh()
}

// OnContentSizeChange records the content size.
func (o *Orchestrator) OnContentSizeChange(width, height float64) {
	o.metrics.ContentSize = o.along(width, height)
	o.refresh()
}

// OnScroll forwards the container scroll offset to the engine.
func (o *Orchestrator) OnScroll(x, y float64) {
	o.lastScroll = o.along(x, y)
	o.engine.OnScroll(o.lastScroll, o.metrics, o.Geometry())
}

// refresh re-derives the indicator from the last scroll offset after the
// metrics changed, so a resize never leaves a stale frame behind.
func (o *Orchestrator) refresh() {
	if o.engine.Dragging() {
		return
	}
	o.engine.OnScroll(o.lastScroll, o.metrics, o.Geometry())
}

// OnIndicatorLayout records the rendered indicator size.
func (o *Orchestrator) OnIndicatorLayout(width, height float64) {
	o.engine.OnIndicatorLayout(o.along(width, height))
}

// OnPointerDown starts a drag on the indicator. page is the pointer in page
// coordinates and local the pointer relative to the indicator.
func (o *Orchestrator) OnPointerDown(pageX, pageY, localX, localY float64) {
	o.downX, o.downY = pageX, pageY
	o.engine.OnDragStart(
		o.along(pageX, pageY),
		o.along(localX, localY),
		o.along(o.pageX, o.pageY),
		o.metrics,
		o.opts.Inverted,
	)
}

// OnPointerMove applies the cumulative drag delta since OnPointerDown and
// returns the content offset the container was scrolled to.
func (o *Orchestrator) OnPointerMove(dx, dy float64) float64 {
	return o.engine.OnDragMove(o.along(dx, dy), o.metrics, o.Geometry(), o.opts.Inverted)
}

// OnPointerMoveTo is OnPointerMove for hosts that report absolute pointer
// positions instead of deltas.
func (o *Orchestrator) OnPointerMoveTo(pageX, pageY float64) float64 {
	return o.OnPointerMove(pageX-o.downX, pageY-o.downY)
}

// OnPointerUp ends the drag.
func (o *Orchestrator) OnPointerUp() {
	o.engine.OnDragEnd()
}

// ShouldRenderIndicator reports whether the indicator is drawn at all.
func (o *Orchestrator) ShouldRenderIndicator() bool {
	return o.opts.PersistentScrollbar || o.Geometry().Overflows(o.metrics.VisibleSize)
}

// Location resolves where the indicator sits across the axis.
func (o *Orchestrator) Location() (geometry.Location, error) {
	return geometry.Locate(o.opts.Horizontal, o.position, o.metrics.OrthogonalSize, o.opts.Style.Girth)
}

// Frame returns the values to draw for the current state.
func (o *Orchestrator) Frame() indicator.Frame {
	return o.engine.Frame(o.Geometry(), o.opts.Inverted)
}
