package output

import (
	"fmt"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/indicator"
	"scrollindicator/internal/orchestrator"
)

// Probe describes a container state to evaluate without a UI.
type Probe struct {
	Variant        orchestrator.Variant
	Options        orchestrator.Options
	ContentSize    float64 // along the scroll axis
	VisibleSize    float64 // along the scroll axis
	OrthogonalSize float64 // across the scroll axis
	Offset         float64 // raw content offset, may be overscrolled
}

// Snapshot is the indicator state derived from a Probe.
type Snapshot struct {
	Probe           Probe
	Position        geometry.Position
	Geometry        geometry.Geometry
	IndicatorOffset float64
	Scale           float64 // unclamped shrink factor
	Frame           indicator.Frame
	Location        geometry.Location
	Visible         bool
	ContentOffset   float64 // where the container ended up scrolled
}

// headless is a container without a screen. It echoes programmatic scrolls
// back to its listener like a real scroll view.
type headless struct {
	horizontal bool
	listener   orchestrator.Listener
	offset     float64
}

func (h *headless) Subscribe(l orchestrator.Listener) { h.listener = l }

func (h *headless) ShowNativeIndicators(bool, bool) {}

func (h *headless) ScrollToOffset(offset float64) {
	h.offset = offset
	h.emit()
}

func (h *headless) emit() {
	if h.horizontal {
		h.listener.OnScroll(h.offset, 0)
	} else {
		h.listener.OnScroll(0, h.offset)
	}
}

func (p Probe) size(along, across float64) (w, h float64) {
	if p.Options.Horizontal {
		return along, across
	}
	return across, along
}

// start wires an orchestrator to a headless container in the probed state.
func (p Probe) start() (*orchestrator.Orchestrator, *headless, error) {
	c := &headless{horizontal: p.Options.Horizontal, offset: p.Offset}
	orch, err := orchestrator.New(p.Variant, c, p.Options)
	if err != nil {
		return nil, nil, err
	}
	w, h := p.size(p.VisibleSize, p.OrthogonalSize)
	orch.OnLayout(w, h, 0, 0)
	orch.OnContentSizeChange(p.size(p.ContentSize, 0))
	c.emit()
	return orch, c, nil
}

func snapshot(p Probe, orch *orchestrator.Orchestrator, c *headless) (Snapshot, error) {
	loc, err := orch.Location()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Probe:           p,
		Position:        orch.Position(),
		Geometry:        orch.Geometry(),
		IndicatorOffset: orch.Engine().Offset(),
		Scale:           orch.Engine().Scale(),
		Frame:           orch.Frame(),
		Location:        loc,
		Visible:         orch.ShouldRenderIndicator(),
		ContentOffset:   c.offset,
	}, nil
}

// Run evaluates the probe: Layout -> Content size -> Scroll -> Snapshot.
func Run(p Probe) (Snapshot, error) {
	orch, c, err := p.start()
	if err != nil {
		return Snapshot{}, fmt.Errorf("probe: %w", err)
	}
	return snapshot(p, orch, c)
}

// Drag describes a pointer drag on the indicator of a probed container.
type Drag struct {
	// Grab is where the pointer lands inside the indicator, measured from
	// its near end along the axis.
	Grab float64
	// Delta is the cumulative pointer movement along the axis.
	Delta float64
}

// RunDrag evaluates the probe, then presses the indicator where it is drawn
// and moves the pointer by Delta.
func RunDrag(p Probe, d Drag) (Snapshot, error) {
	orch, c, err := p.start()
	if err != nil {
		return Snapshot{}, fmt.Errorf("probe: %w", err)
	}
	f := orch.Frame()
	start := f.Translation
	if p.Options.Horizontal {
		orch.OnPointerDown(start+d.Grab, 0, d.Grab, 0)
		orch.OnPointerMove(d.Delta, 0)
	} else {
		orch.OnPointerDown(0, start+d.Grab, 0, d.Grab)
		orch.OnPointerMove(0, d.Delta)
	}
	orch.OnPointerUp()
	return snapshot(p, orch, c)
}
