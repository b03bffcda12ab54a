package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/x/ansi"
)

// cut returns the cells [left, right) of a styled line.
func cut(s string, left, right int) string {
	if right <= left {
		return ""
	}
	if left > 0 {
		s = ansi.TruncateLeft(s, left, "")
	}
	return ansi.Truncate(s, right-left, "")
}

// fit pads or truncates a styled line to exactly w cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	n := ansi.StringWidth(s)
	if n > w {
		return ansi.Truncate(s, w, "")
	}
	return s + strings.Repeat(" ", w-n)
}

// clip renders the w×h window at (x, y) of lines. Cells outside the content,
// including negative coordinates while overscrolling, are blank.
func clip(lines []string, x, y, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", w)
	out := make([]string, h)
	for r := 0; r < h; r++ {
		src := y + r
		if src < 0 || src >= len(lines) {
			out[r] = blank
			continue
		}
		line := lines[src]
		lead := 0
		left := x
		if left < 0 {
			lead = min(-left, w)
			left = 0
		}
		seg := cut(line, left, left+w-lead)
		out[r] = fit(strings.Repeat(" ", lead)+seg, w)
	}
	return strings.Join(out, "\n")
}

// Overscroll limits for wheel input past either end.
const (
	slackRatio = 1.0 / 3 // fraction of the viewport that can be pulled past an end
	resistance = 0.5     // wheel delta multiplier while outside the bounds
	settleEps  = 0.01
)

// scroller is the scroll position of a viewport along one axis. Wheel input
// can pull it past the ends; a spring brings it back on each animation tick.
type scroller struct {
	offset   float64
	velocity float64
	max      float64 // content - visible, never negative
	slack    float64
	spring   harmonica.Spring
}

func newScroller() scroller {
	return scroller{spring: harmonica.NewSpring(harmonica.FPS(60), 8.0, 1.0)}
}

func (s *scroller) setBounds(content, visible float64) {
	s.max = math.Max(0, content-visible)
	s.slack = math.Max(0, visible*slackRatio)
}

// jump moves to an exact offset inside the bounds, cancelling any bounce.
func (s *scroller) jump(offset float64) {
	s.offset = math.Max(0, math.Min(offset, s.max))
	s.velocity = 0
}

// pull applies user scroll input, allowing overscroll up to the slack.
func (s *scroller) pull(delta float64) {
	next := s.offset + delta
	if next < 0 || next > s.max {
		// Entering or deepening overscroll damps the part past the edge.
		edge := math.Max(0, math.Min(next, s.max))
		next = edge + (next-edge)*resistance
	}
	s.offset = math.Max(-s.slack, math.Min(next, s.max+s.slack))
	s.velocity = 0
}

// settle advances the bounce back into bounds by one frame and reports
// whether the offset changed.
func (s *scroller) settle() bool {
	target := math.Max(0, math.Min(s.offset, s.max))
	if s.offset == target && s.velocity == 0 {
		return false
	}
	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, target)
	if math.Abs(s.offset-target) < settleEps && math.Abs(s.velocity) < settleEps {
		s.offset, s.velocity = target, 0
	}
	return true
}

// cell rounds the offset to the first visible cell.
func (s *scroller) cell() int {
	return int(math.Round(s.offset))
}
