package cell

import (
	"fmt"
	"log"

	"github.com/gdamore/tcell/v2"

	"scrollindicator/internal/orchestrator"
)

const wheelStep = 3

// Demo drives one pane and its indicator from tcell events.
type Demo struct {
	pane *Pane
	orch *orchestrator.Orchestrator
	text tcell.Style
	bar  tcell.Style
}

// NewDemo wires a pane showing lines to an orchestrator.
func NewDemo(lines []string, opts orchestrator.Options) (*Demo, error) {
	pane := NewPane(opts.Horizontal)
	pane.SetLines(lines)
	orch, err := orchestrator.New(orchestrator.VariantContent, pane, opts)
	if err != nil {
		return nil, fmt.Errorf("cell demo: %w", err)
	}
	return &Demo{
		pane: pane,
		orch: orch,
		text: tcell.StyleDefault,
		bar:  tcell.StyleDefault.Reverse(true),
	}, nil
}

// Pane returns the scrolled pane.
func (d *Demo) Pane() *Pane { return d.pane }

// Orchestrator returns the indicator controller.
func (d *Demo) Orchestrator() *orchestrator.Orchestrator { return d.orch }

// Resize lays the pane out below a one-line status bar.
func (d *Demo) Resize(width, height int) {
	area := Rect{X: 0, Y: 1, W: width, H: max(height-1, 0)}
	if d.orch.Options().Horizontal {
		area.H = min(area.H, 5)
	}
	d.pane.SetArea(area)
	g := d.orch.Geometry()
	girth := float64(GirthCells(d.orch.Options().Style.Girth))
	length := float64(max(1, int(g.Length+0.5)))
	if d.orch.Options().Horizontal {
		d.orch.OnIndicatorLayout(length, girth)
	} else {
		d.orch.OnIndicatorLayout(girth, length)
	}
}

// indicatorRect is the indicator area relative to the pane.
func (d *Demo) indicatorRect() (Rect, bool) {
	if !d.orch.ShouldRenderIndicator() {
		return Rect{}, false
	}
	loc, err := d.orch.Location()
	if err != nil {
		return Rect{}, false
	}
	area := d.pane.Area()
	r := Layout(d.orch.Frame(), loc, d.orch.Options().Style.Girth, d.orch.Options().Horizontal, area.W, area.H)
	return r, !r.Empty()
}

// HandleEvent applies one event and reports whether the demo should quit.
func (d *Demo) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		d.Resize(ev.Size())
	case *tcell.EventKey:
		return d.handleKey(ev)
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	return false
}

func (d *Demo) handleKey(ev *tcell.EventKey) bool {
	area := d.pane.Area()
	page := float64(area.H)
	if d.orch.Options().Horizontal {
		page = float64(area.W)
	}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp, tcell.KeyLeft:
		d.pane.ScrollBy(-1)
	case tcell.KeyDown, tcell.KeyRight:
		d.pane.ScrollBy(1)
	case tcell.KeyPgUp:
		d.pane.ScrollBy(-page)
	case tcell.KeyPgDn:
		d.pane.ScrollBy(page)
	case tcell.KeyHome:
		d.pane.ScrollToOffset(0)
	case tcell.KeyEnd:
		d.pane.ScrollToOffset(d.pane.maxOffset())
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			return true
		}
	}
	return false
}

func (d *Demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	switch ev.Buttons() {
	case tcell.WheelUp, tcell.WheelLeft:
		d.pane.ScrollBy(-wheelStep)
	case tcell.WheelDown, tcell.WheelRight:
		d.pane.ScrollBy(wheelStep)
	case tcell.Button1:
		if d.orch.Dragging() {
			d.orch.OnPointerMoveTo(float64(x), float64(y))
			return
		}
		area := d.pane.Area()
		r, ok := d.indicatorRect()
		lx, ly := x-area.X, y-area.Y
		if !ok || !r.Contains(lx, ly) {
			return
		}
		d.orch.OnPointerDown(float64(x), float64(y), float64(lx-r.X), float64(ly-r.Y))
		log.Printf("drag start at %d,%d", x, y)
	case tcell.ButtonNone:
		if d.orch.Dragging() {
			d.orch.OnPointerUp()
			log.Printf("drag end at offset %.1f", d.pane.Offset())
		}
	}
}

// Draw renders the status bar, the pane and the indicator.
func (d *Demo) Draw(screen tcell.Screen) {
	w, _ := screen.Size()
	e := d.orch.Engine()
	status := fmt.Sprintf(" offset %.1f/%.1f  scale %.2f  %s  (q quits)",
		e.Offset(), d.orch.Geometry().Travel, d.orch.Frame().Scale, e.State())
	fill(screen, Rect{W: w, H: 1}, d.bar)
	drawText(screen, 0, 0, 0, w, status, d.bar)

	d.pane.Draw(screen, d.text)
	if !d.orch.ShouldRenderIndicator() {
		return
	}
	loc, err := d.orch.Location()
	if err != nil {
		return
	}
	opts := d.orch.Options()
	DrawIndicator(screen, d.pane.Area(), d.orch.Frame(), loc, opts.Style, opts.Horizontal)
}
