package viz

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pfrsim/internal/integrators"
	"github.com/san-kum/pfrsim/internal/metrics"
	"github.com/san-kum/pfrsim/internal/reactor"
)

const (
	chartWidth  = 60
	chartHeight = 10
	barWidth    = 12
)

// input is one tunable boundary condition. lo and hi only scale the
// position bar; validity is decided by reactor.Request.Validate.
type input struct {
	name string
	unit string
	step float64
	lo   float64
	hi   float64
	get  func(reactor.Request) float64
	set  func(*reactor.Request, float64)
}

var inputs = []input{
	{
		name: "T_in", unit: "K", step: 1, lo: 273, hi: 350,
		get: func(r reactor.Request) float64 { return r.TIn },
		set: func(r *reactor.Request, v float64) { r.TIn = v },
	},
	{
		name: "Flow_Velocity", unit: "m/s", step: 0.1, lo: 0.5, hi: 5,
		get: func(r reactor.Request) float64 { return r.Velocity },
		set: func(r *reactor.Request, v float64) { r.Velocity = v },
	},
	{
		name: "T_jacket", unit: "K", step: 1, lo: 250, hi: 300,
		get: func(r reactor.Request) float64 { return r.TJacket },
		set: func(r *reactor.Request, v float64) { r.TJacket = v },
	},
}

// Model holds the operating point being tuned and its latest profile.
type Model struct {
	params     reactor.Params
	integrator string
	initial    reactor.Request
	req        reactor.Request
	selected   int
	result     *reactor.Result
	metrics    map[string]float64
	status     string
	showHelp   bool
	width      int
}

func NewModel(req reactor.Request, p reactor.Params, integrator string) (Model, error) {
	if err := p.Validate(); err != nil {
		return Model{}, err
	}
	if integrator == "" {
		integrator = integrators.Default
	}
	m := Model{
		params:     p,
		integrator: integrator,
		initial:    req,
		req:        req,
	}
	if err := m.recompute(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Request() reactor.Request { return m.req }

func (m Model) Result() *reactor.Result { return m.result }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.selected = (m.selected + 1) % len(inputs)
		case "shift+tab":
			m.selected = (m.selected + len(inputs) - 1) % len(inputs)
		case "up", "k":
			m.adjust(1)
		case "down", "j":
			m.adjust(-1)
		case "right", "l":
			m.adjust(10)
		case "left", "h":
			m.adjust(-10)
		case "r":
			m.req = m.initial
			m.status = "reset"
			if err := m.recompute(); err != nil {
				m.status = err.Error()
			}
		case "t":
			nextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	}
	return m, nil
}

// adjust moves the selected input by steps increments and re-integrates.
// Values the reactor would reject leave the model unchanged.
func (m *Model) adjust(steps float64) {
	in := inputs[m.selected]
	next := m.req
	v := in.get(next) + steps*in.step
	in.set(&next, math.Round(v*1e6)/1e6)

	if err := next.Validate(); err != nil {
		m.status = "refused: " + err.Error()
		return
	}
	prev := m.req
	m.req = next
	if err := m.recompute(); err != nil {
		m.req = prev
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *Model) recompute() error {
	integ, err := integrators.New(m.integrator)
	if err != nil {
		return err
	}
	res, err := reactor.Simulate(m.req, m.params, integ)
	if err != nil {
		return err
	}
	m.result = res
	m.metrics = metrics.Evaluate(res.Profile, metrics.Defaults()...)
	return nil
}

func (m Model) View() string {
	if m.showHelp {
		return helpView()
	}
	st := styles()

	var left strings.Builder
	left.WriteString(st.header.Render("OPERATING POINT") + "\n")
	for i, in := range inputs {
		v := in.get(m.req)
		bar := ProgressBar((v-in.lo)/(in.hi-in.lo), barWidth)
		line := fmt.Sprintf("%-14s %s %8.2f %s", in.name, bar, v, in.unit)
		if i == m.selected {
			left.WriteString(st.active.Render("> "+line) + "\n")
		} else {
			left.WriteString("  " + st.muted.Render(line) + "\n")
		}
	}

	left.WriteString("\n" + st.header.Render("RESULT") + "\n")
	sum := m.result.Summary
	left.WriteString(st.label.Render("Conversion") + st.value.Render(fmt.Sprintf("%6.2f %%", sum.FinalConversion)) + "\n")
	left.WriteString(strings.Repeat(" ", 20) + ProgressBar(sum.FinalConversion/100, barWidth) + "\n")
	left.WriteString(st.label.Render("Max temperature") + st.value.Render(fmt.Sprintf("%7.2f K", sum.MaxTemperature)) + "\n")
	for _, name := range []string{"hot_spot_z", "temperature_rise", "outlet_temperature", "runaway_fraction"} {
		if v, ok := m.metrics[name]; ok {
			left.WriteString(st.label.Render(name) + st.value.Render(fmt.Sprintf("%8.3f", v)) + "\n")
		}
	}
	left.WriteString(st.label.Render("Integrator") + st.value.Render(m.result.Integrator) + "\n")
	finiteErr := m.result.Profile.CheckFinite()
	if finiteErr != nil {
		left.WriteString(st.warning.Render("profile diverged") + "\n")
	}
	if m.status != "" {
		left.WriteString("\n" + st.warning.Render(m.status) + "\n")
	}
	left.WriteString("\n" + Separator(36) + "\n")
	left.WriteString(st.help.Render("tab:select ↑↓:step ←→:x10\nr:reset t:theme ?:help q:quit"))

	prof := m.result.Profile
	if finiteErr != nil {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			st.panel.Render(left.String()),
			st.panel.Render(st.warning.Render(finiteErr.Error())),
		)
	}
	tempChart := asciigraph.Plot(prof.T,
		asciigraph.Height(chartHeight), asciigraph.Width(chartWidth),
		asciigraph.Caption(fmt.Sprintf("Temperature [K] over z = 0..%.2f m", m.params.Length)))
	concChart := asciigraph.Plot(prof.C,
		asciigraph.Height(chartHeight), asciigraph.Width(chartWidth),
		asciigraph.Caption("Concentration C_A [-]"))
	right := st.hotGraph.Render(tempChart) + "\n\n" + st.coldGraph.Render(concChart)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		st.panel.Render(left.String()),
		st.panel.Render(right),
	)
}

func helpView() string {
	return `
╔══════════════════════════════════════════╗
║            KEYBOARD SHORTCUTS            ║
╠══════════════════════════════════════════╣
║  Tab/S-Tab  - Select input               ║
║  Up/K       - Increase by one step       ║
║  Down/J     - Decrease by one step       ║
║  Right/L    - Increase by ten steps      ║
║  Left/H     - Decrease by ten steps      ║
║  R          - Reset operating point      ║
║  T          - Cycle themes               ║
║  ?          - Toggle this help           ║
║  Q          - Quit                       ║
╚══════════════════════════════════════════╝
`
}
