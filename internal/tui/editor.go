package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/gvolsim/internal/engine"
	"github.com/san-kum/gvolsim/internal/gvol"
	"github.com/san-kum/gvolsim/internal/viz"
)

const (
	radiusStep = 0.01
	gammaStep  = 0.1
)

// model edits a force while a built instance keeps running. Edits stay in the
// force until pushed with "p".
type model struct {
	name   string
	force  *gvol.Force
	inst   *engine.Instance
	cursor int
	status string
	err    error
	pushes int

	width  int
	height int
}

func newEditor(name string, f *gvol.Force, inst *engine.Instance) *model {
	return &model{
		name:   name,
		force:  f,
		inst:   inst,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	n := m.force.NumParticles()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < n-1 {
			m.cursor++
		}
	case "r":
		m.adjust(-radiusStep, 0)
	case "R":
		m.adjust(radiusStep, 0)
	case "g":
		m.adjust(0, -gammaStep)
	case "G":
		m.adjust(0, gammaStep)
	case "p":
		m.push()
	}
	return m, nil
}

func (m *model) adjust(dr, dg float64) {
	r, g, h, err := m.force.ParticleParameters(m.cursor)
	if err != nil {
		m.err = err
		return
	}
	if err := m.force.SetParticleParameters(m.cursor, r+dr, g+dg, h); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.status = fmt.Sprintf("particle %d edited (not pushed)", m.cursor)
}

func (m *model) push() {
	if err := m.force.UpdateParametersInContext(m.inst); err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.err = nil
	m.pushes++
	m.status = fmt.Sprintf("pushed %d particles (revision %d)", m.force.NumParticles(), m.inst.Revision())
}

// stale reports whether particle i differs between force and instance.
func (m model) stale(i int) bool {
	r, g, _, err := m.force.ParticleParameters(i)
	if err != nil {
		return false
	}
	ir, ig, err := m.inst.Parameters(i)
	if err != nil {
		return true
	}
	return r != ir || g != ig
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(viz.Title.Render("gvol editor · " + m.name))
	b.WriteString("\n")
	b.WriteString(viz.Separator(min(m.width, 72)))
	b.WriteString("\n")
	b.WriteString(viz.Label.Render(fmt.Sprintf("  %5s  %-22s  %-22s  %s", "index", "force (r, γ)", "instance (r, γ)", "H")))
	b.WriteString("\n")

	for i, p := range m.force.Particles() {
		ir, ig, _ := m.inst.Parameters(i)
		line := fmt.Sprintf("%5d  %-22s  %-22s  %s", i,
			pair(p.Radius, p.Gamma), pair(ir, ig), hydrogenMark(p.IsHydrogen))

		switch {
		case i == m.cursor:
			line = viz.Selected.Render("▸ " + line)
		case m.stale(i):
			line = viz.Stale.Render("  " + line)
		default:
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(viz.Error.Render(m.err.Error()))
	} else if m.status != "" {
		b.WriteString(viz.Fresh.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(viz.KeyHint.Render("↑/↓ select · r/R radius · g/G gamma · p push · q quit"))
	return b.String()
}

func pair(r, g float64) string {
	return viz.FormatFloat(r) + ", " + viz.FormatFloat(g)
}

func hydrogenMark(h bool) string {
	if h {
		return "H"
	}
	return ""
}

func RunEditor(name string, f *gvol.Force, inst *engine.Instance) error {
	p := tea.NewProgram(newEditor(name, f, inst), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
