package geometry

import "math"

// travelSentinel is returned by TravelRange when the indicator has nowhere to
// travel, so downstream divisions never see zero.
const travelSentinel = 1.0

// Geometry is the derived size of an indicator along its axis.
type Geometry struct {
	Length float64 // indicator length
	Travel float64 // distance the indicator start can move without shrinking
}

// IndicatorLength returns the length of the indicator for the given content
// and visible sizes. The indicator-to-track ratio equals the visible-to-content
// ratio; when content does not overflow the indicator fills the track.
func IndicatorLength(contentSize, visibleSize float64) float64 {
	if contentSize > visibleSize {
		return visibleSize * visibleSize / contentSize
	}
	return visibleSize
}

// TravelRange returns how far the indicator can travel. It never returns a
// non-positive value.
func TravelRange(visibleSize, indicatorLength float64) float64 {
	if visibleSize > indicatorLength {
		return visibleSize - indicatorLength
	}
	return travelSentinel
}

// Compute returns both the indicator length and its travel range.
func Compute(contentSize, visibleSize float64) Geometry {
	length := IndicatorLength(contentSize, visibleSize)
	return Geometry{
		Length: length,
		Travel: TravelRange(visibleSize, length),
	}
}

// Overflows reports whether the content is larger than what is visible.
func (g Geometry) Overflows(visibleSize float64) bool {
	return g.Length < visibleSize
}

// EdgePosition places the crosswise center line of an indicator of the given
// girth at percent of orthogonalSize, clamped so the indicator stays inside
// the container.
func EdgePosition(orthogonalSize, girth, percent float64) float64 {
	pos := percent/100*orthogonalSize - girth/2
	return math.Max(0, math.Min(pos, orthogonalSize-girth))
}
