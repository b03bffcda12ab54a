package components

import (
	tea "github.com/charmbracelet/bubbletea"

	"scrollindicator/internal/orchestrator"
)

// Component is the interface that all UI components must implement.
// It is similar to tea.Model but tailored for widgets.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
}

// ScrollView is a scroll container the demo can host an indicator on.
type ScrollView interface {
	Component
	orchestrator.Container

	SetSize(width, height int)
	SetOrigin(x, y int)
	Size() (int, int)
	Horizontal() bool
	Offset() float64

	ScrollBy(delta float64)
	PageBy(pages float64)
	ScrollToStart()
	ScrollToEnd()
	Settle() bool
}

var (
	_ ScrollView = (*ListView)(nil)
	_ ScrollView = (*ContentView)(nil)
	_ Component  = (*TraceWidget)(nil)
)
