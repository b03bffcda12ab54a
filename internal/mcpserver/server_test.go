package mcpserver

import (
	"context"
	"errors"
	"math"
	"testing"

	"scrollindicator/internal/geometry"
	"scrollindicator/internal/orchestrator"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(Config{
		ServerName:    "scrollindicator-test",
		ServerVersion: "0.0.0",
		Variant:       orchestrator.VariantContent,
		Options:       orchestrator.DefaultOptions(),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return s
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewServer_InvalidOptions(t *testing.T) {
	_, err := NewServer(Config{
		ServerName: "scrollindicator-test",
		Options:    orchestrator.DefaultOptions().WithPosition(geometry.AtEdge(geometry.EdgeTop)),
	})
	if err == nil {
		t.Fatal("Expected error for a top edge on a vertical indicator")
	}
	var posErr *geometry.PositionError
	if !errors.As(err, &posErr) {
		t.Errorf("Expected *geometry.PositionError, got %T", err)
	}
}

func TestHandleGeometry(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      ProbeArgs
		length    float64
		travel    float64
		overflows bool
	}{
		{"overflow", ProbeArgs{ContentSize: 1000, VisibleSize: 200}, 40, 160, true},
		{"fits", ProbeArgs{ContentSize: 100, VisibleSize: 200}, 200, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleGeometry(ctx, nil, tt.args)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !near(result.Length, tt.length) {
				t.Errorf("Expected length %v, got %v", tt.length, result.Length)
			}
			if !near(result.Travel, tt.travel) {
				t.Errorf("Expected travel %v, got %v", tt.travel, result.Travel)
			}
			if result.Overflows != tt.overflows {
				t.Errorf("Expected overflows %v, got %v", tt.overflows, result.Overflows)
			}
		})
	}
}

func TestHandleGeometry_InvalidArgs(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name string
		args ProbeArgs
	}{
		{"zero visible", ProbeArgs{ContentSize: 1000}},
		{"negative content", ProbeArgs{ContentSize: -1, VisibleSize: 200}},
		{"unknown container", ProbeArgs{ContentSize: 1000, VisibleSize: 200, Container: "grid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := s.handleGeometry(ctx, nil, tt.args); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestHandleFrame(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		offset      float64
		indOffset   float64
		translation float64
		scale       float64
	}{
		{"inside", 400, 80, 80, 1},
		{"pulled past start", -50, -10, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleFrame(ctx, nil, ProbeArgs{ContentSize: 1000, VisibleSize: 200, Offset: tt.offset})
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !near(result.IndicatorOffset, tt.indOffset) {
				t.Errorf("Expected indicator offset %v, got %v", tt.indOffset, result.IndicatorOffset)
			}
			if !near(result.Translation, tt.translation) {
				t.Errorf("Expected translation %v, got %v", tt.translation, result.Translation)
			}
			if !near(result.Scale, tt.scale) {
				t.Errorf("Expected scale %v, got %v", tt.scale, result.Scale)
			}
			if !result.Visible {
				t.Error("Expected indicator to be visible")
			}
		})
	}
}

func TestHandleFrame_PersistentWithoutOverflow(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, hidden, err := s.handleFrame(ctx, nil, ProbeArgs{ContentSize: 100, VisibleSize: 200})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if hidden.Visible {
		t.Error("Expected indicator to be hidden without overflow")
	}

	_, shown, err := s.handleFrame(ctx, nil, ProbeArgs{ContentSize: 100, VisibleSize: 200, Persistent: true})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !shown.Visible {
		t.Error("Expected persistent indicator to be visible")
	}
}

func TestHandleLocation(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		args     ProbeArgs
		position string
		edge     string
		offset   float64
	}{
		{"default vertical", ProbeArgs{ContentSize: 1000, VisibleSize: 200}, "right", "right", 0},
		{"default horizontal", ProbeArgs{ContentSize: 1000, VisibleSize: 200, Horizontal: true}, "bottom", "bottom", 0},
		{"percent", ProbeArgs{ContentSize: 1000, VisibleSize: 200, OrthogonalSize: 100, Position: "20"}, "20", "left", 17.5},
		{"percent with girth", ProbeArgs{ContentSize: 1000, VisibleSize: 200, Position: "50", Girth: 10}, "50", "left", 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleLocation(ctx, nil, tt.args)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if result.Position != tt.position {
				t.Errorf("Expected position %q, got %q", tt.position, result.Position)
			}
			if result.Edge != tt.edge {
				t.Errorf("Expected edge %q, got %q", tt.edge, result.Edge)
			}
			if !near(result.Offset, tt.offset) {
				t.Errorf("Expected offset %v, got %v", tt.offset, result.Offset)
			}
		})
	}
}

func TestHandleLocation_InvalidPosition(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	_, _, err := s.handleLocation(ctx, nil, ProbeArgs{ContentSize: 1000, VisibleSize: 200, Position: "top"})
	if err == nil {
		t.Fatal("Expected error for a top edge on a vertical indicator")
	}
	var posErr *geometry.PositionError
	if !errors.As(err, &posErr) {
		t.Errorf("Expected *geometry.PositionError, got %T", err)
	}
}

func TestHandleDrag(t *testing.T) {
	s := newTestServer(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		args        DragArgs
		offset      float64
		translation float64
	}{
		{"content", DragArgs{ContentSize: 1000, VisibleSize: 200, Grab: 10, Delta: 50}, 250, 50},
		{"inverted list", DragArgs{ContentSize: 1000, VisibleSize: 200, Container: "list", Inverted: true, Grab: 5, Delta: -50}, 250, 110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, result, err := s.handleDrag(ctx, nil, tt.args)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if !near(result.ContentOffset, tt.offset) {
				t.Errorf("Expected content offset %v, got %v", tt.offset, result.ContentOffset)
			}
			if !near(result.Translation, tt.translation) {
				t.Errorf("Expected translation %v, got %v", tt.translation, result.Translation)
			}
		})
	}
}
