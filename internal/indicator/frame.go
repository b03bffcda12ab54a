package indicator

import "scrollindicator/internal/geometry"

// Frame is what a host draws for one indicator on one render.
type Frame struct {
	// Translation is the indicator offset along the track, held at the ends
	// of [0, Travel] and mirrored for inverted containers.
	Translation float64
	// Scale is the shrink factor clamped to [0, 1].
	Scale float64

	// Start and Length describe the span actually covered by the scaled
	// indicator, measured from the near edge of the track. While
	// overscrolling the span stays flush with the edge being pulled.
	Start  float64
	Length float64
}

// End returns the far end of the covered span.
func (f Frame) End() float64 {
	return f.Start + f.Length
}

// Frame derives the renderable values from the engine state.
func (e *Engine) Frame(g geometry.Geometry, inverted bool) Frame {
	scale := clamp(e.scale, 0, 1)

	translation := clamp(e.offset, 0, g.Travel)
	extended := e.offset
	if inverted {
		translation = g.Travel - translation
		extended = g.Travel - extended
	}

	length := g.Length * scale
	return Frame{
		Translation: translation,
		Scale:       scale,
		Start:       extended + (g.Length-length)/2,
		Length:      length,
	}
}
