package viz

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/tmarkov/physviz/internal/frame"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
)

var (
	canvasStyle      = lipgloss.NewStyle().Padding(1, 2)
	statsStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(45)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// Model hosts one simulation driver inside a bubbletea program: it owns
// the frame clock, routes parameter tuning to the driver and renders
// the point cloud plus the stat panel.
type Model struct {
	name    string
	driver  frame.Driver
	surface frame.Surface
	canvas  *Canvas
	dt      float64
	t       float64
	running bool

	// pending is handed to the next Advance, then cleared; the driver
	// keeps previous values for keys that go missing afterwards.
	pending   frame.Params
	params    map[string]float64
	paramKeys []string
	selected  int

	history      []float64
	historyLabel string
	showHelp     bool
}

// NewModel initializes the driver against the sub-pixel canvas space.
func NewModel(name string, driver frame.Driver, dt float64, params map[string]float64) Model {
	surface := frame.Surface{
		Width:  float64(canvasWidth * 2),
		Height: float64(canvasHeight * 4),
	}
	driver.Init(surface)

	tuned := make(map[string]float64, len(params))
	keys := make([]string, 0, len(params))
	pending := make(frame.Params, len(params))
	for k, v := range params {
		tuned[k] = v
		pending[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return Model{
		name:      name,
		driver:    driver,
		surface:   surface,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		dt:        dt,
		running:   true,
		pending:   pending,
		params:    tuned,
		paramKeys: keys,
		history:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.driver.Destroy()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.driver.Reset()
			m.t = 0
			m.history = m.history[:0]
		case "tab":
			m.cycleParam()
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.driver.Advance(m.dt, m.pending)
			m.pending = nil
			m.t += m.dt
			m.sample()
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) resize(termW, termH int) {
	w := termW - 50
	h := termH - 4
	if w < 20 || h < 8 {
		return
	}
	m.canvas = NewCanvas(w, h)
	m.surface = frame.Surface{Width: float64(w * 2), Height: float64(h * 4)}
	m.driver.Resize(m.surface.Width, m.surface.Height)
}

func (m *Model) cycleParam() {
	if len(m.paramKeys) == 0 {
		return
	}
	m.selected = (m.selected + 1) % len(m.paramKeys)
}

func (m *Model) adjustParam(factor float64) {
	if len(m.paramKeys) == 0 {
		return
	}
	key := m.paramKeys[m.selected]
	val := m.params[key] * factor
	if val == 0 {
		val = 1e-6
	}
	m.params[key] = val
	if m.pending == nil {
		m.pending = make(frame.Params, 1)
	}
	m.pending[key] = val
}

// sample records the first described stat for the sidebar chart.
func (m *Model) sample() {
	stats := m.driver.Describe()
	if len(stats) == 0 {
		return
	}
	m.historyLabel = stats[0].Label
	m.history = append(m.history, stats[0].Value)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m Model) View() string {
	m.canvas.Clear()
	if src, ok := m.driver.(frame.PointSource); ok {
		m.canvas.PlotPoints(src.Points(), m.surface)
	}
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")
	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(status + "\n\n")

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption(m.historyLabel))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	for _, stat := range m.driver.Describe() {
		val := fmt.Sprintf("%.3f", stat.Value)
		if stat.Unit != "" {
			val += " " + stat.Unit
		}
		s.WriteString(labelStyle.Render(stat.Label) + valueStyle.Render(val) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	if len(m.paramKeys) > 0 {
		for i, k := range m.paramKeys {
			line := fmt.Sprintf("%-14s %.3f", k, m.params[k])
			if i == m.selected {
				s.WriteString(activeParamStyle.Render("> "+line) + "\n")
			} else {
				s.WriteString("  " + labelStyle.Render(line) + "\n")
			}
		}
	} else {
		s.WriteString(labelStyle.Render("  (none)") + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nTab:Select ↑↓:Tune ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
