package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jwirth/biokin/internal/config"
	"github.com/jwirth/biokin/internal/kinetic"
	"github.com/jwirth/biokin/internal/reaction"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// Explorer is an interactive curve viewer for one kinetic factor: arrow keys
// pick a parameter, +/- nudge it, and the rate (or derivative) curve is
// re-rendered on every change.
type Explorer struct {
	kind   string
	factor kinetic.Factor
	names  []string
	values map[string]float64
	cursor int

	maxS      float64
	showDeriv bool
	err       error

	width  int
	height int
}

func NewExplorer(kind string, params map[string]float64, maxS float64) (*Explorer, error) {
	reg := reaction.NewRegistry()
	factor, err := reg.New(kind)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(params))
	for name, v := range params {
		values[name] = v
	}

	e := &Explorer{
		kind:   kind,
		factor: factor,
		names:  reg.ParamNames(kind),
		values: values,
		maxS:   maxS,
		width:  80,
		height: 24,
	}
	e.reinit()
	if e.err != nil {
		return nil, e.err
	}
	return e, nil
}

func (e *Explorer) reinit() {
	src := make(map[string]any, len(e.values))
	for name, v := range e.values {
		src[name] = v
	}
	e.err = e.factor.Init(config.NewSource(src))
}

func (e *Explorer) Init() tea.Cmd { return nil }

func (e *Explorer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		return e, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return e, tea.Quit
		case "left", "h":
			if e.cursor > 0 {
				e.cursor--
			}
		case "right", "l":
			if e.cursor < len(e.names)-1 {
				e.cursor++
			}
		case "up", "+", "=":
			e.nudge(1.25)
		case "down", "-":
			e.nudge(0.8)
		case "]":
			e.maxS *= 1.5
		case "[":
			e.maxS /= 1.5
		case "d":
			e.showDeriv = !e.showDeriv
		}
	}
	return e, nil
}

func (e *Explorer) nudge(factor float64) {
	if len(e.names) == 0 {
		return
	}
	name := e.names[e.cursor]
	e.values[name] *= factor
	e.reinit()
}

func (e *Explorer) View() string {
	var b strings.Builder

	b.WriteString(cyan.Render(fmt.Sprintf(" %s kinetics", e.kind)))
	b.WriteString(dim.Render(fmt.Sprintf("   S ∈ [0, %.3g]", e.maxS)))
	b.WriteString("\n\n")

	if len(e.names) == 0 {
		b.WriteString(dim.Render(" (no parameters)"))
	}
	for i, name := range e.names {
		label := fmt.Sprintf(" %s = %.4g ", name, e.values[name])
		if i == e.cursor {
			b.WriteString(yellow.Render("[" + label + "]"))
		} else {
			b.WriteString(dim.Render(" " + label + " "))
		}
	}
	b.WriteString("\n\n")

	if e.err != nil {
		b.WriteString(red.Render(fmt.Sprintf(" %v", e.err)))
		b.WriteString("\n")
		return b.String()
	}

	plotWidth := e.width - 12
	if plotWidth < 20 {
		plotWidth = 20
	}
	plotHeight := e.height - 10
	if plotHeight < 6 {
		plotHeight = 6
	}
	if plotHeight > 16 {
		plotHeight = 16
	}

	data := make([]float64, plotWidth)
	for i := range data {
		s := e.maxS * float64(i) / float64(plotWidth-1)
		if e.showDeriv {
			data[i] = e.factor.Derivative(s)
		} else {
			data[i] = e.factor.Rate(s)
		}
	}

	caption := "rate(S)"
	if e.showDeriv {
		caption = "d rate/dS"
	}
	b.WriteString(asciigraph.Plot(data,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
	))
	b.WriteString("\n\n")
	b.WriteString(green.Render(" ←/→") + dim.Render(" select param  "))
	b.WriteString(green.Render("+/-") + dim.Render(" adjust  "))
	b.WriteString(green.Render("[/]") + dim.Render(" zoom S  "))
	b.WriteString(green.Render("d") + dim.Render(" derivative  "))
	b.WriteString(green.Render("q") + dim.Render(" quit"))
	b.WriteString("\n")

	return b.String()
}

// Run starts the explorer in the alternate screen.
func Run(kind string, params map[string]float64, maxS float64) error {
	e, err := NewExplorer(kind, params, maxS)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(e, tea.WithAltScreen()).Run()
	return err
}
