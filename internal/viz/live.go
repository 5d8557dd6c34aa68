package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/orbital/internal/gravity"
	"github.com/san-kum/orbital/internal/metrics"
)

const (
	canvasWidth  = 80
	canvasHeight = 24
)

type TickMsg time.Time

// Model is the bubbletea model for the live orbit view. It consumes
// the system through the Frames pathway, so quitting or restarting the
// view never disturbs the system it was given.
type Model struct {
	sys    *gravity.System
	it     *gravity.Frames
	frame  gravity.Frame
	canvas *Canvas
	energy *metrics.Energy
	drift  *metrics.EnergyDrift

	frameRate int
	running   bool
	started   bool
	done      bool
	err       error
}

func NewModel(sys *gravity.System, frameRate int) Model {
	if frameRate <= 0 {
		frameRate = 30
	}
	return Model{
		sys:       sys,
		it:        sys.Frames(),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		energy:    metrics.NewEnergy(sys),
		drift:     metrics.NewEnergyDrift(sys),
		frameRate: frameRate,
		running:   true,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			// a fresh iteration replays the identical sequence
			m.it = m.sys.Frames()
			m.canvas = NewCanvas(canvasWidth, canvasHeight)
			m.energy.Reset()
			m.drift.Reset()
			m.started = false
			m.done = false
			m.err = nil
			m.running = true
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done {
			if m.it.Next() {
				m.frame = m.it.Current()
				m.started = true
				m.energy.Observe(m.frame)
				m.drift.Observe(m.frame)
				m.canvas.FitFrame(m.frame)
				m.canvas.DrawFrame(m.frame)
			} else {
				m.done = true
				m.err = m.it.Err()
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("orbital live  %d bodies", m.sys.BodyCount()))

	status := "running"
	switch {
	case m.err != nil:
		status = errStyle.Render("error: " + m.err.Error())
	case m.done:
		status = doneStyle.Render("finished")
	case !m.running:
		status = pausedStyle.Render("paused")
	}

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}

	stats := lipgloss.JoinVertical(lipgloss.Left,
		row("step", fmt.Sprintf("%d / %d", m.frame.Step, m.sys.Limit())),
		row("time", fmt.Sprintf("%.3f %s", m.frame.Time, m.frame.TimeUnits)),
		row("energy", fmt.Sprintf("%.4g", m.energy.Value())),
		row("drift", fmt.Sprintf("%.2e", m.drift.Value())),
		row("status", status),
	)

	var body string
	if m.started {
		body = canvasStyle.Render(m.canvas.String())
	} else {
		body = canvasStyle.Render("waiting for first frame...")
	}

	help := helpStyle.Render("space pause · r restart · q quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, body, stats, help)
}

// Run starts the live view and blocks until the user quits.
func Run(sys *gravity.System, frameRate int) error {
	p := tea.NewProgram(NewModel(sys, frameRate))
	_, err := p.Run()
	return err
}
