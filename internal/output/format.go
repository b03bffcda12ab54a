package output

import (
	"fmt"
)

// Section constants to avoid hardcoded strings
const (
	SectionMetrics  = "metrics"
	SectionGeometry = "geometry"
	SectionFrame    = "frame"
	SectionPlace    = "placement"
)

// Status values an item can carry.
const (
	StatusOK   = "OK"
	StatusWarn = "WARN"
	StatusCrit = "CRIT"
)

// UI/view-model types (no printing here)
type Item struct {
	Key    string
	Label  string
	Value  float64
	Unit   string
	Status string
	Note   string
}

type Section struct {
	ID    string
	Title string
	Items []Item
}

type Report struct {
	Sections []Section
	Summary  string
}

// BuildReport converts a snapshot into UI-ready sections.
func BuildReport(s Snapshot) Report {
	p := s.Probe
	axis := "vertical"
	if p.Options.Horizontal {
		axis = "horizontal"
	}

	metrics := Section{ID: SectionMetrics, Title: "Metrics", Items: []Item{
		{Key: "content", Label: "Content", Value: p.ContentSize, Unit: "u"},
		{Key: "visible", Label: "Visible", Value: p.VisibleSize, Unit: "u"},
		{Key: "orthogonal", Label: "Orthogonal", Value: p.OrthogonalSize, Unit: "u"},
		{Key: "offset", Label: "Scroll offset", Value: p.Offset, Unit: "u", Status: offsetStatus(s)},
	}}

	geom := Section{ID: SectionGeometry, Title: "Geometry", Items: []Item{
		{Key: "length", Label: "Indicator length", Value: s.Geometry.Length, Unit: "u"},
		{Key: "travel", Label: "Travel range", Value: s.Geometry.Travel, Unit: "u"},
		{Key: "indicator_offset", Label: "Indicator offset", Value: s.IndicatorOffset, Unit: "u"},
	}}

	frame := Section{ID: SectionFrame, Title: "Frame", Items: []Item{
		{Key: "translation", Label: "Translation", Value: s.Frame.Translation, Unit: "u"},
		{Key: "scale", Label: "Scale", Value: s.Frame.Scale, Unit: "x", Status: scaleStatus(s.Frame.Scale)},
		{Key: "span_start", Label: "Span start", Value: s.Frame.Start, Unit: "u"},
		{Key: "span_end", Label: "Span end", Value: s.Frame.End(), Unit: "u"},
	}}

	visible := "hidden"
	if s.Visible {
		visible = "shown"
	}
	place := Section{ID: SectionPlace, Title: "Placement", Items: []Item{
		{Key: "position", Label: "Position", Note: s.Position.String()},
		{Key: "edge", Label: "Anchored edge", Note: string(s.Location.Edge)},
		{Key: "edge_offset", Label: "Edge offset", Value: s.Location.Offset, Unit: "u"},
		{Key: "visible", Label: "Indicator", Note: visible},
	}}

	return Report{
		Sections: []Section{metrics, geom, frame, place},
		Summary:  fmt.Sprintf("%s %s, %s", axis, p.Variant, visible),
	}
}

// offsetStatus flags overscroll past either end.
func offsetStatus(s Snapshot) string {
	p := s.Probe
	if p.Offset < 0 || p.Offset > max(0, p.ContentSize-p.VisibleSize) {
		return StatusWarn
	}
	return StatusOK
}

func scaleStatus(scale float64) string {
	switch {
	case scale <= 0:
		return StatusCrit
	case scale < 1:
		return StatusWarn
	default:
		return StatusOK
	}
}

func (r Report) SectionByID(id string) *Section {
	for i := range r.Sections {
		if r.Sections[i].ID == id {
			return &r.Sections[i]
		}
	}
	return nil
}

func (s Section) ItemByKey(key string) *Item {
	for i := range s.Items {
		if s.Items[i].Key == key {
			return &s.Items[i]
		}
	}
	return nil
}
