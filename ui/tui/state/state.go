package state

import (
	"time"

	"scrollindicator/internal/collector"
	"scrollindicator/internal/geometry"
	"scrollindicator/internal/orchestrator"
)

// DemoState holds the demo toggles and the data shown in the containers.
type DemoState struct {
	Variant       orchestrator.Variant
	Horizontal    bool
	PositionIndex int
	Crazy         bool
	Inverted      bool
	Persistent    bool
	ShowTrace     bool

	Processes  []collector.ProcessInfo
	LastUpdate time.Time
	Err        error
	Logs       []string
}

const maxLogs = 50

// Positions lists the choices the position toggle cycles through for an
// axis. The zero Position means the default edge.
func Positions(horizontal bool) []geometry.Position {
	first, second := geometry.EdgeLeft, geometry.EdgeRight
	if horizontal {
		first, second = geometry.EdgeTop, geometry.EdgeBottom
	}
	return []geometry.Position{
		{},
		geometry.AtEdge(first),
		geometry.AtEdge(second),
		geometry.AtPercent(20),
		geometry.AtPercent(50),
		geometry.AtPercent(80),
	}
}

// Position returns the selected position for the current axis.
func (s DemoState) Position() geometry.Position {
	ps := Positions(s.Horizontal)
	return ps[s.PositionIndex%len(ps)]
}

// NextPosition advances the position toggle.
func (s *DemoState) NextPosition() {
	s.PositionIndex = (s.PositionIndex + 1) % len(Positions(s.Horizontal))
}

// ToggleAxis switches orientation and resets the position to the default,
// since edge names are only valid for one axis.
func (s *DemoState) ToggleAxis() {
	s.Horizontal = !s.Horizontal
	s.PositionIndex = 0
}

// ToggleVariant switches between the content and list containers.
func (s *DemoState) ToggleVariant() {
	if s.Variant == orchestrator.VariantList {
		s.Variant = orchestrator.VariantContent
	} else {
		s.Variant = orchestrator.VariantList
	}
}

// Options builds the orchestrator options from base and the toggles. The
// default position entry keeps the position from base while the axis is
// unchanged.
func (s DemoState) Options(base orchestrator.Options, crazy orchestrator.IndicatorStyle) orchestrator.Options {
	pos := s.Position()
	if pos.IsZero() && s.Horizontal == base.Horizontal {
		pos = base.Position
	}
	opts := base.
		WithHorizontal(s.Horizontal).
		WithPosition(pos).
		WithPersistentScrollbar(s.Persistent).
		WithInverted(s.Inverted && s.Variant == orchestrator.VariantList)
	if s.Crazy {
		opts = opts.WithStyle(crazy)
	}
	return opts
}

// Log appends a timestamped line, keeping the most recent entries.
func (s *DemoState) Log(now time.Time, line string) {
	s.Logs = append(s.Logs, "["+now.Format("15:04:05")+"] "+line)
	if len(s.Logs) > maxLogs {
		s.Logs = s.Logs[1:]
	}
}
