package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultPosition(t *testing.T) {
	if got := DefaultPosition(true, Position{}); got != AtEdge(EdgeBottom) {
		t.Errorf("Expected bottom for horizontal, got %v", got)
	}
	if got := DefaultPosition(false, Position{}); got != AtEdge(EdgeRight) {
		t.Errorf("Expected right for vertical, got %v", got)
	}
	if got := DefaultPosition(false, AtPercent(0)); got != AtPercent(0) {
		t.Errorf("Expected explicit 0%% to be kept, got %v", got)
	}
	if got := DefaultPosition(true, AtEdge(EdgeTop)); got != AtEdge(EdgeTop) {
		t.Errorf("Expected explicit top to be kept, got %v", got)
	}
}

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{"", Position{}, false},
		{"right", AtEdge(EdgeRight), false},
		{" Top ", AtEdge(EdgeTop), false},
		{"20", AtPercent(20), false},
		{"12.5", AtPercent(12.5), false},
		{"middle", Position{}, true},
	}

	for _, tt := range tests {
		got, err := ParsePosition(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePosition(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePosition(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		pos        Position
		want       Location
	}{
		{"vertical right", false, AtEdge(EdgeRight), Location{Edge: EdgeRight}},
		{"vertical left", false, AtEdge(EdgeLeft), Location{Edge: EdgeLeft}},
		{"horizontal bottom", true, AtEdge(EdgeBottom), Location{Edge: EdgeBottom}},
		{"vertical 20%", false, AtPercent(20), Location{Edge: EdgeLeft, Offset: 15}},
		{"horizontal 80%", true, AtPercent(80), Location{Edge: EdgeTop, Offset: 75}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Locate(tt.horizontal, tt.pos, 100, 10)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestLocate_PercentScenario(t *testing.T) {
	// Center line at 20 of a 100-wide container with a 10-wide indicator
	// puts the indicator's near side at 20 - 5 = 15.
	got, err := Locate(false, AtPercent(20), 100, 10)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.Offset != EdgePosition(100, 10, 20) {
		t.Errorf("Expected offset to match EdgePosition, got %v", got.Offset)
	}
}

func TestLocate_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		horizontal bool
		pos        Position
	}{
		{"top on vertical", false, AtEdge(EdgeTop)},
		{"bottom on vertical", false, AtEdge(EdgeBottom)},
		{"left on horizontal", true, AtEdge(EdgeLeft)},
		{"unknown edge", false, AtEdge("middle")},
		{"NaN percent", false, AtPercent(math.NaN())},
		{"Inf percent", true, AtPercent(math.Inf(1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(tt.horizontal, tt.pos, 100, 5)
			var perr *PositionError
			if !errors.As(err, &perr) {
				t.Fatalf("Expected *PositionError, got %v", err)
			}
			if perr.Horizontal != tt.horizontal {
				t.Errorf("Expected Horizontal=%v on error", tt.horizontal)
			}
			if perr.Error() == "" {
				t.Error("Expected a message")
			}
		})
	}
}
