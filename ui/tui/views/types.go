package views

import (
	"scrollindicator/ui/tui/state"
)

// ViewProps contains UI-specific properties provided by the Controller.
type ViewProps struct {
	Width, Height int

	// Component States
	Viewport    string // rendered container with the indicator painted on
	TraceView   string
	SpinnerView string
	HelpView    string
	Status      string
}

// View defines the contract for any renderable page in the TUI.
type View interface {
	Render(s state.DemoState, props ViewProps) string
}
