package cell

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/indicator"
	"scrollindicator/internal/orchestrator"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Skipf("Skipping: simulation screen unavailable: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %d", i)
	}
	return out
}

func TestLayout(t *testing.T) {
	f := indicator.Frame{Start: 2, Length: 4}
	r := Layout(f, geometry.Location{Edge: geometry.EdgeLeft, Offset: 20}, 1, false, 10, 10)
	if r != (Rect{X: 9, Y: 2, W: 1, H: 4}) {
		t.Errorf("Expected offset clamped inside the viewport, got %+v", r)
	}

	r = Layout(f, geometry.Location{Edge: geometry.EdgeTop}, 1, true, 10, 3)
	if r != (Rect{X: 2, Y: 0, W: 4, H: 1}) {
		t.Errorf("Expected top strip, got %+v", r)
	}

	if r := Layout(f, geometry.Location{Edge: geometry.EdgeRight}, 1, false, 0, 10); !r.Empty() {
		t.Errorf("Expected empty rect for empty viewport, got %+v", r)
	}
}

func TestGlyph(t *testing.T) {
	r := Rect{W: 4, H: 1}
	tests := []struct {
		col      int
		rounded  bool
		expected rune
	}{
		{0, false, '█'},
		{0, true, '▐'},
		{1, true, '█'},
		{3, true, '▌'},
	}
	for _, tt := range tests {
		if got := Glyph(r, tt.col, 0, true, tt.rounded); got != tt.expected {
			t.Errorf("Col %d rounded=%v: expected %q, got %q", tt.col, tt.rounded, tt.expected, got)
		}
	}
}

func TestColor(t *testing.T) {
	if c := Color("red"); c != tcell.ColorRed {
		t.Errorf("Expected red, got %v", c)
	}
	if c := Color("#f27b24"); c != tcell.NewHexColor(0xf27b24) {
		t.Errorf("Expected hex colour, got %v", c)
	}
	if c := Color("no-such-colour"); c != tcell.ColorGray {
		t.Errorf("Expected grey fallback, got %v", c)
	}
}

func TestDrawIndicator(t *testing.T) {
	s := newScreen(t, 10, 10)
	f := indicator.Frame{Start: 2, Length: 4}
	loc := geometry.Location{Edge: geometry.EdgeRight}

	r := DrawIndicator(s, Rect{W: 10, H: 10}, f, loc, orchestrator.IndicatorStyle{Girth: 2, Color: "red"}, false)
	if r != (Rect{X: 8, Y: 2, W: 2, H: 4}) {
		t.Fatalf("Expected rect {8 2 2 4}, got %+v", r)
	}
	for y := 2; y < 6; y++ {
		for x := 8; x < 10; x++ {
			if got := runeAt(s, x, y); got != '█' {
				t.Errorf("Cell %d,%d: expected block, got %q", x, y, got)
			}
		}
	}
	if got := runeAt(s, 8, 1); got == '█' {
		t.Error("Expected no block above the indicator")
	}

	s.Clear()
	DrawIndicator(s, Rect{W: 10, H: 10}, f, loc, orchestrator.IndicatorStyle{Girth: 1, CornerRadius: 3}, false)
	if runeAt(s, 9, 2) != '▄' || runeAt(s, 9, 5) != '▀' {
		t.Errorf("Expected rounded caps, got %q and %q", runeAt(s, 9, 2), runeAt(s, 9, 5))
	}
}

func TestPane_ScrollClamps(t *testing.T) {
	p := NewPane(false)
	p.SetArea(Rect{W: 5, H: 2})
	p.SetLines([]string{"one", "two", "three"})

	p.ScrollBy(5)
	if p.Offset() != 1 {
		t.Errorf("Expected offset 1, got %v", p.Offset())
	}
	p.ScrollBy(-5)
	if p.Offset() != 0 {
		t.Errorf("Expected offset 0, got %v", p.Offset())
	}
}

func TestPane_Draw(t *testing.T) {
	s := newScreen(t, 8, 3)
	p := NewPane(false)
	p.SetArea(Rect{W: 8, H: 3})
	p.SetLines(numbered(10))
	p.ScrollToOffset(2)

	p.Draw(s, tcell.StyleDefault)
	if got := runeAt(s, 5, 0); got != '2' {
		t.Errorf("Expected first visible line 2, got %q", got)
	}
	// Native scrollbar in the last column.
	if got := runeAt(s, 7, 0); got != '│' && got != '┃' {
		t.Errorf("Expected scrollbar glyph, got %q", got)
	}

	p.ShowNativeIndicators(false, false)
	p.Draw(s, tcell.StyleDefault)
	if got := runeAt(s, 7, 0); got == '│' || got == '┃' {
		t.Errorf("Expected no scrollbar once hidden, got %q", got)
	}
}

func TestDemo_DragScrolls(t *testing.T) {
	opts := orchestrator.DefaultOptions().WithStyle(orchestrator.IndicatorStyle{Girth: 1})
	d, err := NewDemo(numbered(100), opts)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	d.Resize(20, 11)

	s := newScreen(t, 20, 11)
	d.Draw(s)
	if got := runeAt(s, 19, 1); got != '█' {
		t.Fatalf("Expected indicator at 19,1, got %q", got)
	}

	d.HandleEvent(tcell.NewEventMouse(19, 1, tcell.Button1, tcell.ModNone))
	if !d.Orchestrator().Dragging() {
		t.Fatal("Expected drag to start on the indicator")
	}
	d.HandleEvent(tcell.NewEventMouse(19, 4, tcell.Button1, tcell.ModNone))
	if d.Pane().Offset() != 30 {
		t.Errorf("Expected content offset 30, got %v", d.Pane().Offset())
	}
	d.HandleEvent(tcell.NewEventMouse(19, 4, tcell.ButtonNone, tcell.ModNone))
	if d.Orchestrator().Dragging() {
		t.Error("Expected drag to end on release")
	}
}

func TestDemo_PressOffIndicator(t *testing.T) {
	d, err := NewDemo(numbered(100), orchestrator.DefaultOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	d.Resize(40, 11)

	d.HandleEvent(tcell.NewEventMouse(0, 5, tcell.Button1, tcell.ModNone))
	if d.Orchestrator().Dragging() {
		t.Error("Expected no drag when pressing the content")
	}
	d.HandleEvent(tcell.NewEventMouse(0, 5, tcell.WheelDown, tcell.ModNone))
	if d.Pane().Offset() != wheelStep {
		t.Errorf("Expected wheel to scroll %d, got %v", wheelStep, d.Pane().Offset())
	}
}

func TestDemo_Keys(t *testing.T) {
	d, err := NewDemo(numbered(100), orchestrator.DefaultOptions())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	d.Resize(40, 11)

	d.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	if d.Pane().Offset() != 90 {
		t.Errorf("Expected offset 90 at end, got %v", d.Pane().Offset())
	}
	if !d.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to quit")
	}
}

func TestNewDemo_InvalidPosition(t *testing.T) {
	opts := orchestrator.DefaultOptions().WithPosition(geometry.AtEdge(geometry.EdgeTop))
	if _, err := NewDemo(numbered(3), opts); err == nil {
		t.Error("Expected error for top edge on a vertical pane")
	}
}
