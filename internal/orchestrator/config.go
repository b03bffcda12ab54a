package orchestrator

import (
	"math"

	"scrollindicator/internal/geometry"
)

// IndicatorStyle controls how the indicator bar looks.
type IndicatorStyle struct {
	Girth        float64 `yaml:"girth"`         // thickness across the axis (default: 5)
	Color        string  `yaml:"color"`         // any color the host understands (default: "grey")
	CornerRadius float64 `yaml:"corner_radius"` // rounding of the bar ends (default: 3)
}

// DefaultIndicatorStyle returns the style used when none is supplied.
func DefaultIndicatorStyle() IndicatorStyle {
	return IndicatorStyle{
		Girth:        5,
		Color:        "grey",
		CornerRadius: 3,
	}
}

// Merge overlays the non-zero fields of o onto s.
func (s IndicatorStyle) Merge(o IndicatorStyle) IndicatorStyle {
	if o.Girth != 0 {
		s.Girth = o.Girth
	}
	if o.Color != "" {
		s.Color = o.Color
	}
	if o.CornerRadius != 0 {
		s.CornerRadius = o.CornerRadius
	}
	return s
}

// Options are the settings an embedding application passes to a scroll
// indicator. Use DefaultOptions() and override as needed.
type Options struct {
	Horizontal          bool              `yaml:"horizontal"`           // scroll axis (default: false)
	Position            geometry.Position `yaml:"position"`             // empty means right/bottom
	PersistentScrollbar bool              `yaml:"persistent_scrollbar"` // show even without overflow (default: false)
	Style               IndicatorStyle    `yaml:"style"`
	Inverted            bool              `yaml:"inverted"` // list containers only (default: false)
}

// DefaultOptions returns a vertical, non-persistent indicator with the
// default style.
func DefaultOptions() Options {
	return Options{
		Style: DefaultIndicatorStyle(),
	}
}

// WithHorizontal returns a copy of the options with the scroll axis changed.
func (o Options) WithHorizontal(h bool) Options {
	o.Horizontal = h
	return o
}

// WithPosition returns a copy of the options with a new position.
func (o Options) WithPosition(p geometry.Position) Options {
	o.Position = p
	return o
}

// WithPersistentScrollbar returns a copy of the options with the persistent
// flag changed.
func (o Options) WithPersistentScrollbar(p bool) Options {
	o.PersistentScrollbar = p
	return o
}

// WithStyle returns a copy of the options with the given style merged over
// the current one.
func (o Options) WithStyle(s IndicatorStyle) Options {
	o.Style = o.Style.Merge(s)
	return o
}

// WithInverted returns a copy of the options with inversion changed.
func (o Options) WithInverted(inv bool) Options {
	o.Inverted = inv
	return o
}

// Validate checks the options and returns an error if they cannot be used.
// Position errors are reported as *geometry.PositionError.
func (o Options) Validate() error {
	if o.Style.Girth < 0 || math.IsNaN(o.Style.Girth) || math.IsInf(o.Style.Girth, 0) {
		return &ConfigError{Field: "Style.Girth", Message: "must be a non-negative number"}
	}
	if o.Style.CornerRadius < 0 {
		return &ConfigError{Field: "Style.CornerRadius", Message: "must not be negative"}
	}
	pos := geometry.DefaultPosition(o.Horizontal, o.Position)
	if _, err := geometry.Locate(o.Horizontal, pos, 0, o.Style.Girth); err != nil {
		return err
	}
	return nil
}

// ConfigError represents an options validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
