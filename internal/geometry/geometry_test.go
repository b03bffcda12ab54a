package geometry

import (
	"math"
	"testing"
)

func TestIndicatorLength_NoOverflow(t *testing.T) {
	tests := []struct {
		content, visible float64
	}{
		{0, 0},
		{0, 200},
		{100, 200},
		{200, 200},
	}

	for _, tt := range tests {
		length := IndicatorLength(tt.content, tt.visible)
		if length != tt.visible {
			t.Errorf("IndicatorLength(%v, %v) = %v; want %v", tt.content, tt.visible, length, tt.visible)
		}
		if travel := TravelRange(tt.visible, length); travel != 1 {
			t.Errorf("TravelRange(%v, %v) = %v; want sentinel 1", tt.visible, length, travel)
		}
	}
}

func TestIndicatorLength_Overflow(t *testing.T) {
	tests := []struct {
		content, visible, want float64
	}{
		{1000, 200, 40},
		{400, 200, 100},
		{201, 200, 200 * 200 / 201.0},
		{30, 10, 10 * 10 / 30.0},
	}

	for _, tt := range tests {
		length := IndicatorLength(tt.content, tt.visible)
		if math.Abs(length-tt.want) > 1e-9 {
			t.Errorf("IndicatorLength(%v, %v) = %v; want %v", tt.content, tt.visible, length, tt.want)
		}
		if length >= tt.visible {
			t.Errorf("Expected length %v < visible %v", length, tt.visible)
		}
	}
}

func TestCompute(t *testing.T) {
	g := Compute(1000, 200)
	if g.Length != 40 {
		t.Errorf("Expected length 40, got %v", g.Length)
	}
	if g.Travel != 160 {
		t.Errorf("Expected travel 160, got %v", g.Travel)
	}
	if !g.Overflows(200) {
		t.Error("Expected 1000/200 to overflow")
	}

	g = Compute(50, 200)
	if g.Overflows(200) {
		t.Error("Expected 50/200 not to overflow")
	}
}

func TestEdgePosition(t *testing.T) {
	tests := []struct {
		name                 string
		orth, girth, percent float64
		want                 float64
	}{
		{"centered at 20%", 100, 10, 20, 15},
		{"clamped at start", 100, 10, 0, 0},
		{"clamped at end", 100, 10, 100, 90},
		{"middle", 100, 10, 50, 45},
		{"girth wider than container", 4, 10, 50, 0},
		{"negative percent", 100, 10, -30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdgePosition(tt.orth, tt.girth, tt.percent)
			if got != tt.want {
				t.Errorf("EdgePosition(%v, %v, %v) = %v; want %v", tt.orth, tt.girth, tt.percent, got, tt.want)
			}
		})
	}
}

func TestEdgePosition_Idempotent(t *testing.T) {
	reclamp := func(x float64) float64 {
		return math.Max(0, math.Min(x, 100-10))
	}
	for _, percent := range []float64{-10, 0, 7, 20, 50, 99, 100, 250} {
		once := EdgePosition(100, 10, percent)
		if again := reclamp(once); again != once {
			t.Errorf("percent %v: expected re-clamp to be stable, got %v then %v", percent, once, again)
		}
		if EdgePosition(100, 10, percent) != once {
			t.Errorf("percent %v: expected repeated calls to agree", percent)
		}
	}
}
