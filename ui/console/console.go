package console

import (
	"fmt"
	"io"
	"strings"

	"scrollindicator/internal/output"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

// trackWidth is the number of cells the track gauge spans.
const trackWidth = 40

// Print renders the indicator report: a gauge of the drawn span over the
// track, then one line per section.
func Print(w io.Writer, view output.Report) {
	fmt.Fprintf(w, "%s■ SCROLL INDICATOR%s  %s\n", colorCyan, colorReset, view.Summary)

	if bar, ok := gauge(view, trackWidth); ok {
		frame := view.SectionByID(output.SectionFrame)
		start, end := frame.ItemByKey("span_start"), frame.ItemByKey("span_end")
		fmt.Fprintf(w, "  %s%-10s%s [%s] %.2f..%.2f\n", colorCyan, "Track", colorReset, bar, start.Value, end.Value)
	}

	for _, sec := range view.Sections {
		cells := make([]string, 0, len(sec.Items))
		for _, it := range sec.Items {
			cells = append(cells, cell(it))
		}
		fmt.Fprintf(w, "  %s%-10s%s %s\n", colorCyan, sec.Title, colorReset, strings.Join(cells, " · "))
	}
	fmt.Fprintln(w)
}

// cell formats one item as "label value", coloured and marked by status.
func cell(it output.Item) string {
	val := it.Note
	if it.Unit != "" {
		val = fmt.Sprintf("%.2f%s", it.Value, it.Unit)
	}
	s := strings.ToLower(it.Label) + " " + val
	if it.Status == "" {
		return s
	}
	return colorFor(it.Status) + s + " " + marker(it.Status) + colorReset
}

func marker(status string) string {
	switch status {
	case output.StatusWarn:
		return "!"
	case output.StatusCrit:
		return "X"
	default:
		return "✓"
	}
}

// gauge draws the drawn span of the indicator over a track of width cells.
// It reports false when the report carries no track metrics.
func gauge(view output.Report, width int) (string, bool) {
	metrics := view.SectionByID(output.SectionMetrics)
	frame := view.SectionByID(output.SectionFrame)
	if metrics == nil || frame == nil {
		return "", false
	}
	visible := metrics.ItemByKey("visible")
	start, end := frame.ItemByKey("span_start"), frame.ItemByKey("span_end")
	if visible == nil || start == nil || end == nil || visible.Value <= 0 || width <= 0 {
		return "", false
	}

	var b strings.Builder
	step := visible.Value / float64(width)
	for i := 0; i < width; i++ {
		pos := (float64(i) + 0.5) * step
		if pos >= start.Value && pos < end.Value {
			b.WriteString("█")
		} else {
			b.WriteString("─")
		}
	}
	return b.String(), true
}

func colorFor(status string) string {
	switch status {
	case output.StatusWarn:
		return colorYellow
	case output.StatusCrit:
		return colorRed
	default:
		return colorGreen
	}
}
