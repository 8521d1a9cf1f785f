package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lalithu/Classical-TwoBody/internal/orbit"
	"github.com/lalithu/Classical-TwoBody/internal/viz"
)

type tickMsg time.Time

// Model replays a computed trajectory frame by frame. It never integrates;
// it only walks the sample grid the integrator produced.
type Model struct {
	tr      *orbit.Trajectory
	colors  []string
	frame   *viz.Frame
	idx     int
	playing bool
	fps     int
}

func NewPlayback(tr *orbit.Trajectory, colors []string, fps int) Model {
	if fps <= 0 {
		fps = 30
	}
	return Model{
		tr:      tr,
		colors:  colors,
		frame:   viz.NewFrame(tr, 80, 24),
		playing: true,
		fps:     fps,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "left", "h":
			if m.idx > 0 {
				m.idx--
			}
		case "right", "l":
			if m.idx < m.tr.Len()-1 {
				m.idx++
			}
		case "r":
			m.idx = 0
			m.playing = true
		}
		return m, nil

	case tickMsg:
		if m.playing && m.idx < m.tr.Len()-1 {
			m.idx++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	m.frame.Clear()
	m.frame.DrawPaths(m.tr, m.idx+1)

	status := "playing"
	if !m.playing {
		status = "paused"
	}
	if m.idx == m.tr.Len()-1 {
		status = "done"
	}

	header := viz.Title.Render("trajectory playback") + "  " +
		viz.MetricValue.Render(fmt.Sprintf("t=%.3f", m.tr.Times[m.idx])) + "  " +
		viz.Subtle.Render(fmt.Sprintf("sample %d/%d (%s)", m.idx+1, m.tr.Len(), status))

	legend := ""
	for b, name := range m.tr.Names {
		color := ""
		if b < len(m.colors) {
			color = m.colors[b]
		}
		if b > 0 {
			legend += "  "
		}
		legend += viz.BodyStyle(color).Render("● " + name)
	}

	return header + "\n" + m.frame.String() + legend + "\n" +
		viz.KeyHint.Render("space pause · ←/→ step · r restart · q quit") + "\n"
}

// Run starts the playback program and blocks until the user quits.
func Run(tr *orbit.Trajectory, colors []string, fps int) error {
	_, err := tea.NewProgram(NewPlayback(tr, colors, fps)).Run()
	return err
}
