// Package tui renders a propagation run live in the terminal: current
// attitude, body rates and an error sparkline, advancing in real time.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/integrators"
	"github.com/san-kum/strapdown/internal/motion"
	"github.com/san-kum/strapdown/internal/sim"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

const (
	graphWidth   = 60
	graphHeight  = 8
	errorSamples = 240
)

type tickMsg time.Time

type model struct {
	profile motion.Profile
	integ   integrators.Integrator
	cfg     sim.Config
	fps     int

	q       quatState
	t       float64
	paused  bool
	done    bool
	errHist []float64
}

// quatState keeps the four components addressable without importing quat in
// every render helper.
type quatState struct {
	w, x, y, z float64
}

func (s quatState) number() quat.Number {
	return quat.Number{Real: s.w, Imag: s.x, Jmag: s.y, Kmag: s.z}
}

// Run propagates the profile live at the given frame rate until the run
// duration elapses or the user quits.
func Run(profile motion.Profile, integ integrators.Integrator, cfg sim.Config, fps int) error {
	if fps <= 0 {
		fps = 30
	}
	q0 := profile.Attitude(0)
	m := &model{
		profile: profile,
		integ:   integ,
		cfg:     cfg,
		fps:     fps,
		q:       quatState{q0.Real, q0.Imag, q0.Jmag, q0.Kmag},
		errHist: make([]float64, 0, errorSamples),
	}
	_, err := tea.NewProgram(m).Run()
	return err
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			q0 := m.profile.Attitude(0)
			m.q = quatState{q0.Real, q0.Imag, q0.Jmag, q0.Kmag}
			m.t = 0
			m.done = false
			m.errHist = m.errHist[:0]
		}
		return m, nil

	case tickMsg:
		if !m.paused && !m.done {
			m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance integrates one frame's worth of wall time.
func (m *model) advance() {
	frame := 1.0 / float64(m.fps)
	steps := int(frame / m.cfg.Dt)
	if steps < 1 {
		steps = 1
	}

	q := m.q.number()
	for i := 0; i < steps && !m.done; i++ {
		w0 := m.profile.Rate(m.t)
		w1 := m.profile.Rate(m.t + m.cfg.Dt)
		next, err := m.integ.Integrate(q, w0, w1, m.cfg.Dt)
		if err != nil {
			m.done = true
			break
		}
		q = next
		m.t += m.cfg.Dt
		if m.t >= m.cfg.Duration {
			m.done = true
		}
	}
	m.q = quatState{q.Real, q.Imag, q.Jmag, q.Kmag}

	angleErr := attitude.AngleBetween(m.profile.Attitude(m.t), q)
	m.errHist = append(m.errHist, angleErr)
	if len(m.errHist) > errorSamples {
		m.errHist = m.errHist[1:]
	}
}

func (m *model) View() string {
	var b strings.Builder

	title := fmt.Sprintf(" strapdown  %s / %s ", m.profile.Name(), m.integ.Type())
	b.WriteString(cyan.Render(title))
	b.WriteString(dim.Render(fmt.Sprintf(" t=%.2fs / %.0fs  dt=%gs", m.t, m.cfg.Duration, m.cfg.Dt)))
	if m.paused {
		b.WriteString(yellow.Render("  [paused]"))
	}
	if m.done {
		b.WriteString(green.Render("  [done]"))
	}
	b.WriteString("\n\n")

	q := m.q.number()
	roll, pitch, yaw := attitude.EulerAngles(q)
	b.WriteString(white.Render(fmt.Sprintf("  q = (%+.4f, %+.4f, %+.4f, %+.4f)", m.q.w, m.q.x, m.q.y, m.q.z)))
	b.WriteString("\n")
	b.WriteString(magenta.Render(fmt.Sprintf("  roll %+7.2f°  pitch %+7.2f°  yaw %+7.2f°",
		deg(roll), deg(pitch), deg(yaw))))
	b.WriteString("\n")

	w := m.profile.Rate(m.t)
	b.WriteString(dim.Render(fmt.Sprintf("  rate (%+.3f, %+.3f, %+.3f) rad/s", w.X, w.Y, w.Z)))
	b.WriteString("\n\n")

	if len(m.errHist) >= 2 {
		b.WriteString(dim.Render("  angle error vs analytic (rad)"))
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(m.errHist,
			asciigraph.Width(graphWidth),
			asciigraph.Height(graphHeight),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("  space pause · r restart · q quit"))
	b.WriteString("\n")
	return b.String()
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
