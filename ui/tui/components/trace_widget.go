package components

import (
	"fmt"

	"scrollindicator/ui/tui/styles"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const traceSamples = 60

// TraceSample is one animation frame of indicator state.
type TraceSample struct {
	// Percent is the indicator offset as a share of its travel, 0 to 100
	// inside the bounds and beyond while overscrolled.
	Percent float64
	Scale   float64
}

// TraceWidget charts the indicator position over recent frames.
type TraceWidget struct {
	Chart   linechart.Model
	History []TraceSample
	Width   int
	Height  int
}

func NewTraceWidget(width, height int) *TraceWidget {
	// width, height, minX, maxX, minY, maxY
	lc := linechart.New(width, height, 0, traceSamples-1, -50, 150)
	return &TraceWidget{
		Chart:   lc,
		History: make([]TraceSample, 0, traceSamples),
		Width:   width,
		Height:  height,
	}
}

func (t *TraceWidget) Init() tea.Cmd {
	return nil
}

// Push records a frame. offset and travel are the indicator offset and
// travel range in cells.
func (t *TraceWidget) Push(offset, travel, scale float64) {
	pct := 0.0
	if travel > 0 {
		pct = offset / travel * 100
	}
	t.History = append(t.History, TraceSample{Percent: pct, Scale: scale})
	if len(t.History) > traceSamples {
		t.History = t.History[1:]
	}
}

// Last returns the newest sample.
func (t *TraceWidget) Last() (TraceSample, bool) {
	if len(t.History) == 0 {
		return TraceSample{}, false
	}
	return t.History[len(t.History)-1], true
}

func (t *TraceWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return t, nil
}

func (t *TraceWidget) Resize(w, h int) {
	t.Width = w
	t.Height = h
	t.Chart.Resize(w, h)
}

func (t *TraceWidget) View() string {
	t.Chart.Clear()
	for i := 0; i < len(t.History)-1; i++ {
		t.Chart.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: t.History[i].Percent},
			canvas.Float64Point{X: float64(i + 1), Y: t.History[i+1].Percent},
		)
	}
	t.Chart.DrawXYAxisAndLabel()

	caption := "offset % of travel"
	if last, ok := t.Last(); ok {
		caption = fmt.Sprintf("offset %.0f%%  scale %.2f", last.Percent, last.Scale)
	}
	return styles.CardStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Render("Indicator Trace"),
			lipgloss.NewStyle().Foreground(styles.Subtle).Render(caption),
			t.Chart.View(),
		),
	)
}
