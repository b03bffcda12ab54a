package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Edge names a container side an indicator can be pinned to.
type Edge string

const (
	EdgeLeft   Edge = "left"
	EdgeRight  Edge = "right"
	EdgeTop    Edge = "top"
	EdgeBottom Edge = "bottom"
)

// Position is either a named edge or a crosswise percentage of the container.
// The zero value means no position was supplied.
type Position struct {
	Edge    Edge
	Percent float64
	numeric bool
}

// AtEdge returns a position pinned to the given edge.
func AtEdge(e Edge) Position {
	return Position{Edge: e}
}

// AtPercent returns a position whose center line sits at percent of the
// orthogonal size.
func AtPercent(percent float64) Position {
	return Position{Percent: percent, numeric: true}
}

// IsZero reports whether no position was supplied.
func (p Position) IsZero() bool {
	return !p.numeric && p.Edge == ""
}

// IsNumeric reports whether the position is a percentage.
func (p Position) IsNumeric() bool {
	return p.numeric
}

func (p Position) String() string {
	if p.numeric {
		return strconv.FormatFloat(p.Percent, 'g', -1, 64)
	}
	return string(p.Edge)
}

// ParsePosition reads an edge name or a number. An empty string yields the
// zero Position.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Position{}, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return AtPercent(f), nil
	}
	switch e := Edge(strings.ToLower(s)); e {
	case EdgeLeft, EdgeRight, EdgeTop, EdgeBottom:
		return AtEdge(e), nil
	}
	return Position{}, &PositionError{Value: s, Reason: "not an edge name or a number", unresolved: true}
}

// MarshalYAML renders the position the way ParsePosition reads it.
func (p Position) MarshalYAML() (interface{}, error) {
	if p.numeric {
		return p.Percent, nil
	}
	return string(p.Edge), nil
}

// UnmarshalYAML accepts both `position: right` and `position: 20`.
func (p *Position) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*p = Position{}
	case int:
		*p = AtPercent(float64(v))
	case float64:
		*p = AtPercent(v)
	case string:
		parsed, err := ParsePosition(v)
		if err != nil {
			return err
		}
		*p = parsed
	default:
		return &PositionError{Value: fmt.Sprint(v), Reason: "unsupported type", unresolved: true}
	}
	return nil
}

// DefaultPosition fills in the position used when the caller supplied none:
// bottom for horizontal indicators, right for vertical ones.
func DefaultPosition(horizontal bool, p Position) Position {
	if !p.IsZero() {
		return p
	}
	if horizontal {
		return AtEdge(EdgeBottom)
	}
	return AtEdge(EdgeRight)
}

// Location is the resolved crosswise placement of an indicator: its near side
// sits Offset away from Edge.
type Location struct {
	Edge   Edge
	Offset float64
}

// Locate resolves a position into a Location for an indicator of the given
// girth inside a container whose crosswise size is orthogonalSize.
func Locate(horizontal bool, p Position, orthogonalSize, girth float64) (Location, error) {
	if p.numeric {
		if math.IsNaN(p.Percent) || math.IsInf(p.Percent, 0) {
			return Location{}, &PositionError{Value: p.String(), Horizontal: horizontal, Reason: "percent must be finite"}
		}
		anchor := EdgeLeft
		if horizontal {
			anchor = EdgeTop
		}
		return Location{Edge: anchor, Offset: EdgePosition(orthogonalSize, girth, p.Percent)}, nil
	}
	if !edgeAllowed(horizontal, p.Edge) {
		return Location{}, &PositionError{Value: p.String(), Horizontal: horizontal, Reason: "edge not valid for axis"}
	}
	return Location{Edge: p.Edge}, nil
}

func edgeAllowed(horizontal bool, e Edge) bool {
	if horizontal {
		return e == EdgeTop || e == EdgeBottom
	}
	return e == EdgeLeft || e == EdgeRight
}

// PositionError reports a position that cannot be used for the indicator.
type PositionError struct {
	Value      string
	Horizontal bool
	Reason     string

	unresolved bool // axis not known yet
}

func (e *PositionError) Error() string {
	if e.unresolved {
		return fmt.Sprintf("position %q: %s", e.Value, e.Reason)
	}
	want := `"left", "right"`
	axis := "vertical"
	if e.Horizontal {
		want = `"top", "bottom"`
		axis = "horizontal"
	}
	return fmt.Sprintf("position %q: %s; must be one of %s or a finite number when the indicator is %s",
		e.Value, e.Reason, want, axis)
}
