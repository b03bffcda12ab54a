package tui

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"scrollindicator/internal/collector"
	"scrollindicator/internal/config"
	"scrollindicator/internal/orchestrator"
	"scrollindicator/ui/tui/components"
	"scrollindicator/ui/tui/state"
	"scrollindicator/ui/tui/views"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// wheelStep is how many cells one wheel notch scrolls.
const wheelStep = 3

// MainModel is the Bubble Tea Model acting as the Controller
type MainModel struct {
	provider collector.ProcessProvider
	config   config.Config
	state    state.DemoState
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	trace    *components.TraceWidget

	list    *components.ListView
	content *components.ContentView
	view    components.ScrollView
	orch    *orchestrator.Orchestrator

	quitting bool
	width    int
	height   int
}

// Messages
type TickMsg time.Time
type AnimateMsg time.Time
type ProcessesLoadedMsg struct {
	Processes []collector.ProcessInfo
	Err       error
}

func InitialModel(provider collector.ProcessProvider, cfg config.Config) MainModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := MainModel{
		provider: provider,
		config:   cfg,
		keys:     defaultKeyMap(),
		help:     help.New(),
		spinner:  s,
		trace:    components.NewTraceWidget(views.TraceSize(0)),
		state: state.DemoState{
			Variant:    cfg.Variant(),
			Horizontal: cfg.Indicator.Horizontal,
			Inverted:   cfg.Indicator.Inverted,
			Persistent: cfg.Indicator.PersistentScrollbar,
		},
	}
	m.rebuild()
	return m
}

func (m *MainModel) Init() tea.Cmd {
	zone.NewGlobal()
	return tea.Batch(
		m.spinner.Tick,
		fetchProcessesCmd(m.provider),
		tickCmd(m.config.Collector.PollInterval),
		animateCmd(),
	)
}

// Commands
func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animateCmd() tea.Cmd {
	return tea.Tick(time.Millisecond*16, func(t time.Time) tea.Msg {
		return AnimateMsg(t)
	})
}

func fetchProcessesCmd(p collector.ProcessProvider) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		procs, err := p.ListProcesses(context.Background())
		return ProcessesLoadedMsg{Processes: procs, Err: err}
	}
}

// rebuild recreates the scroll container and its orchestrator from the
// current toggles.
func (m *MainModel) rebuild() {
	opts := m.state.Options(m.config.Indicator, m.config.Crazy)

	if m.state.Variant == orchestrator.VariantList {
		m.list = components.NewListView(opts.Horizontal, opts.Inverted, views.RenderItem)
		m.content = nil
		m.view = m.list
	} else {
		m.content = components.NewContentView(opts.Horizontal)
		m.list = nil
		m.view = m.content
	}
	m.resize()

	orch, err := orchestrator.New(m.state.Variant, m.view, opts)
	if err != nil {
		log.Printf("indicator disabled: %v", err)
		m.state.Err = err
		m.orch = nil
		return
	}
	m.state.Err = nil
	m.orch = orch
	m.measureIndicator()
	log.Printf("rebuilt %s container: horizontal=%v position=%v inverted=%v persistent=%v",
		m.state.Variant, opts.Horizontal, orch.Position(), opts.Inverted, opts.PersistentScrollbar)
}

// resize fits the container to the terminal and refills its data.
func (m *MainModel) resize() {
	w, h := views.ViewportSize(m.width, m.height, m.state.Horizontal, m.state.ShowTrace)
	m.view.SetSize(w, h)
	m.fill()
}

func (m *MainModel) fill() {
	switch {
	case m.list != nil:
		m.list.SetItems(m.listItems())
	case m.content != nil:
		w, _ := m.content.Size()
		m.content.SetBody(views.ContentBody(m.state.Horizontal, w))
	}
}

func (m *MainModel) listItems() []string {
	procs := m.state.Processes
	if len(procs) == 0 {
		return views.Sentences()
	}
	if m.state.Horizontal {
		names := make([]string, len(procs))
		for i, p := range procs {
			names[i] = fmt.Sprintf("%s (%d)", p.Name, p.PID)
		}
		return names
	}
	return collector.Rows(procs)
}

// measureIndicator reports the drawn indicator size back to the
// orchestrator, the way a host measures its laid-out indicator view.
func (m *MainModel) measureIndicator() {
	if m.orch == nil {
		return
	}
	length := math.Max(1, math.Round(m.orch.Geometry().Length))
	girth := float64(components.GirthCells(m.orch.Options().Style.Girth))
	if m.state.Horizontal {
		m.orch.OnIndicatorLayout(length, girth)
	} else {
		m.orch.OnIndicatorLayout(girth, length)
	}
}

func (m *MainModel) indicatorSpec() (components.IndicatorSpec, bool) {
	if m.orch == nil || !m.orch.ShouldRenderIndicator() {
		return components.IndicatorSpec{}, false
	}
	loc, err := m.orch.Location()
	if err != nil {
		return components.IndicatorSpec{}, false
	}
	opts := m.orch.Options()
	return components.IndicatorSpec{
		Frame:      m.orch.Frame(),
		Location:   loc,
		Style:      opts.Style,
		Horizontal: opts.Horizontal,
	}, true
}

func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case AnimateMsg:
		return m.handleAnimateMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSizeMsg(msg)

	case TickMsg:
		return m, tea.Batch(
			fetchProcessesCmd(m.provider),
			tickCmd(m.config.Collector.PollInterval),
		)

	case ProcessesLoadedMsg:
		return m.handleProcessesLoadedMsg(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}

	return m, nil
}

func (m *MainModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.view.ScrollToOffset(m.view.Offset() - 1)
	case key.Matches(msg, m.keys.Forward):
		m.view.ScrollToOffset(m.view.Offset() + 1)
	case key.Matches(msg, m.keys.PageBack):
		m.view.PageBy(-1)
	case key.Matches(msg, m.keys.PageFwd):
		m.view.PageBy(1)
	case key.Matches(msg, m.keys.Home):
		m.view.ScrollToStart()
	case key.Matches(msg, m.keys.End):
		m.view.ScrollToEnd()

	case key.Matches(msg, m.keys.Container):
		m.state.ToggleVariant()
		m.rebuild()
	case key.Matches(msg, m.keys.Axis):
		m.state.ToggleAxis()
		m.rebuild()
	case key.Matches(msg, m.keys.Position):
		m.state.NextPosition()
		m.rebuild()
	case key.Matches(msg, m.keys.Style):
		m.state.Crazy = !m.state.Crazy
		m.rebuild()
	case key.Matches(msg, m.keys.Inverted):
		if m.state.Variant == orchestrator.VariantList {
			m.state.Inverted = !m.state.Inverted
			m.rebuild()
		}
	case key.Matches(msg, m.keys.Persistent):
		m.state.Persistent = !m.state.Persistent
		m.rebuild()
	case key.Matches(msg, m.keys.Trace):
		m.state.ShowTrace = !m.state.ShowTrace
		m.resize()
		m.measureIndicator()
	}
	return m, nil
}

func (m *MainModel) handleAnimateMsg(msg AnimateMsg) (tea.Model, tea.Cmd) {
	m.view.Settle()
	if m.orch != nil && m.state.ShowTrace {
		m.trace.Push(m.orch.Engine().Offset(), m.orch.Geometry().Travel, m.orch.Frame().Scale)
	}
	return m, animateCmd()
}

func (m *MainModel) handleWindowSizeMsg(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.trace.Resize(views.TraceSize(msg.Height))
	m.resize()
	m.measureIndicator()
	return m, nil
}

func (m *MainModel) handleProcessesLoadedMsg(msg ProcessesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("list processes: %v", msg.Err)
		m.state.Log(time.Now(), "collector: "+msg.Err.Error())
		return m, nil
	}
	m.state.Processes = msg.Processes
	m.state.LastUpdate = time.Now()
	if m.list != nil {
		m.list.SetItems(m.listItems())
		m.measureIndicator()
	}
	return m, nil
}

func (m *MainModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelLeft:
		m.view.ScrollBy(-wheelStep)

	case msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight:
		m.view.ScrollBy(wheelStep)

	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.pressIndicator(msg)

	case msg.Action == tea.MouseActionMotion:
		if m.orch != nil && m.orch.Dragging() {
			m.orch.OnPointerMoveTo(float64(msg.X), float64(msg.Y))
		}

	case msg.Action == tea.MouseActionRelease:
		if m.orch != nil && m.orch.Dragging() {
			m.orch.OnPointerUp()
			m.state.Log(time.Now(), fmt.Sprintf("drag ended at offset %.1f", m.view.Offset()))
		}
	}
	return m, nil
}

// pressIndicator starts a drag when the press lands on the indicator.
func (m *MainModel) pressIndicator(msg tea.MouseMsg) {
	zi := zone.Get(views.ViewportZone)
	if zi == nil || !zi.InBounds(msg) {
		return
	}
	m.view.SetOrigin(zi.StartX, zi.StartY)

	spec, ok := m.indicatorSpec()
	if !ok {
		return
	}
	w, h := m.view.Size()
	r := components.IndicatorRect(spec, w, h)
	lx, ly := zi.Pos(msg)
	if !r.Contains(lx, ly) {
		return
	}
	m.orch.OnPointerDown(float64(msg.X), float64(msg.Y), float64(lx-r.X), float64(ly-r.Y))
	m.state.Log(time.Now(), fmt.Sprintf("drag started at %d,%d", lx, ly))
}

func (m *MainModel) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	w, h := m.view.Size()
	viewport := m.view.View()
	if spec, ok := m.indicatorSpec(); ok {
		viewport = components.Overlay(viewport, w, h, spec)
	}

	status := views.StatusLine(m.spinner.View(), m.orch)

	props := views.ViewProps{
		Width:    m.width,
		Height:   m.height,
		Viewport: viewport,
		Status:   status,
		HelpView: m.help.View(m.keys),
	}
	if m.state.ShowTrace {
		props.TraceView = m.trace.View()
	}
	return views.RenderDemo(m.state, props)
}

func Start(cfg config.Config, provider collector.ProcessProvider) error {
	m := InitialModel(provider, cfg)
	p := tea.NewProgram(
		&m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
