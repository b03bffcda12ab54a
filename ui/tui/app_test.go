package tui

import (
	"context"
	"math"
	"os"
	"strings"
	"testing"
	"time"

	"scrollindicator/internal/collector"
	"scrollindicator/internal/config"
	"scrollindicator/internal/geometry"
	"scrollindicator/internal/orchestrator"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// MockProcessProvider for testing
type MockProcessProvider struct {
	Processes []collector.ProcessInfo
}

func (m MockProcessProvider) ListProcesses(ctx context.Context) ([]collector.ProcessInfo, error) {
	return m.Processes, nil
}

func newTestModel(t *testing.T) *MainModel {
	t.Helper()
	model := InitialModel(MockProcessProvider{}, config.Default())
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return updated.(*MainModel)
}

func press(m *MainModel, keys ...string) *MainModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "end":
			msg = tea.KeyMsg{Type: tea.KeyEnd}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		updated, _ := m.Update(msg)
		m = updated.(*MainModel)
	}
	return m
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(t)

	if m.state.Variant != orchestrator.VariantContent {
		t.Errorf("Expected content container, got %v", m.state.Variant)
	}
	if m.orch == nil {
		t.Fatalf("Expected orchestrator, got error %v", m.state.Err)
	}
	if !m.orch.ShouldRenderIndicator() {
		t.Error("Expected lorem body to overflow the viewport")
	}
	loc, err := m.orch.Location()
	if err != nil {
		t.Fatalf("Expected no location error, got %v", err)
	}
	if loc.Edge != geometry.EdgeRight {
		t.Errorf("Expected default right edge, got %v", loc.Edge)
	}
}

func TestToggleKeys(t *testing.T) {
	m := newTestModel(t)

	// Inversion only applies to lists.
	m = press(m, "i")
	if m.state.Inverted {
		t.Error("Expected inverted toggle ignored for content container")
	}

	m = press(m, "tab")
	if m.state.Variant != orchestrator.VariantList || m.list == nil {
		t.Fatalf("Expected list container after tab, got %v", m.state.Variant)
	}

	m = press(m, "i")
	if !m.state.Inverted || !m.orch.Options().Inverted {
		t.Error("Expected inverted list")
	}

	m = press(m, "o")
	if !m.orch.Options().Horizontal {
		t.Error("Expected horizontal orchestrator after o")
	}
	if pos := m.orch.Position(); pos != geometry.AtEdge(geometry.EdgeBottom) {
		t.Errorf("Expected bottom after axis switch, got %v", pos)
	}

	m = press(m, "p", "p")
	if pos := m.orch.Position(); pos != geometry.AtEdge(geometry.EdgeBottom) {
		t.Errorf("Expected bottom after two position steps, got %v", pos)
	}
	m = press(m, "p")
	if pos := m.orch.Position(); pos != geometry.AtPercent(20) {
		t.Errorf("Expected 20%% after three steps, got %v", pos)
	}

	m = press(m, "s")
	if m.orch.Options().Style.Girth != 3 {
		t.Errorf("Expected crazy girth 3, got %v", m.orch.Options().Style.Girth)
	}
}

func TestScrollKeys(t *testing.T) {
	m := newTestModel(t)

	m = press(m, "down")
	if m.view.Offset() != 1 {
		t.Errorf("Expected offset 1 after down, got %v", m.view.Offset())
	}

	m = press(m, "end")
	e := m.orch.Engine()
	if math.Abs(e.Offset()-m.orch.Geometry().Travel) > 1e-9 {
		t.Errorf("Expected indicator at end of travel %v, got %v", m.orch.Geometry().Travel, e.Offset())
	}
	if scale := m.orch.Frame().Scale; math.Abs(scale-1) > 1e-9 {
		t.Errorf("Expected full scale at the end, got %v", scale)
	}
}

func TestOverscrollBounce(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	m = updated.(*MainModel)
	if m.view.Offset() >= 0 {
		t.Fatalf("Expected overscroll past the start, got %v", m.view.Offset())
	}
	if scale := m.orch.Frame().Scale; scale >= 1 {
		t.Errorf("Expected indicator to shrink, got scale %v", scale)
	}

	for i := 0; i < 600; i++ {
		updated, _ = m.Update(AnimateMsg(time.Now()))
		m = updated.(*MainModel)
	}
	if m.view.Offset() != 0 {
		t.Errorf("Expected bounce to settle at 0, got %v", m.view.Offset())
	}
	if scale := m.orch.Frame().Scale; scale != 1 {
		t.Errorf("Expected scale restored, got %v", scale)
	}
}

func TestProcessesFillList(t *testing.T) {
	m := press(newTestModel(t), "tab")

	procs := []collector.ProcessInfo{
		{PID: 1, Name: "init"},
		{PID: 42, Name: "sshd"},
		{PID: 99, Name: "go"},
	}
	updated, _ := m.Update(ProcessesLoadedMsg{Processes: procs})
	m = updated.(*MainModel)

	if got := len(m.list.Items()); got != 3 {
		t.Errorf("Expected 3 list items, got %d", got)
	}
	if !strings.Contains(m.list.Items()[1], "sshd") {
		t.Errorf("Expected process row for sshd, got %q", m.list.Items()[1])
	}
}

func TestTraceCollectsSamples(t *testing.T) {
	m := press(newTestModel(t), "t")
	updated, _ := m.Update(AnimateMsg(time.Now()))
	m = updated.(*MainModel)

	if len(m.trace.History) != 1 {
		t.Errorf("Expected one trace sample, got %d", len(m.trace.History))
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "SCROLLINDICATOR") {
		t.Error("Expected header in view")
	}

	m = press(m, "q")
	if !m.quitting {
		t.Error("Expected quitting after q")
	}
	if m.View() != "Bye!\n" {
		t.Errorf("Expected goodbye view, got %q", m.View())
	}
}
