package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/stickslip/internal/analysis"
	"github.com/san-kum/stickslip/internal/dynamo"
)

const (
	sceneWidth    = 48
	sceneHeight   = 8
	frameInterval = time.Second / 30
	historyWindow = 5.0
	historyPoints = 60
	minSpeed      = 1.0 / 16
	maxSpeed      = 16.0
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Playback replays a finished trajectory against the wall clock. The frame
// shown is always tr.IndexAt(elapsed), so playback speed never changes the
// physics.
type Playback struct {
	tr      *dynamo.Trajectory
	scene   *Scene
	energy  []float64
	elapsed float64
	speed   float64
	running bool
}

func NewPlayback(tr *dynamo.Trajectory, p dynamo.Params, eps float64) Playback {
	amp := 0.0
	for _, x := range tr.Positions {
		amp = max(amp, x, -x)
	}
	return Playback{
		tr:      tr,
		scene:   NewScene(p, eps, amp, sceneWidth, sceneHeight),
		energy:  analysis.EnergySeries(tr, p),
		speed:   1,
		running: true,
	}
}

// Frame is the trajectory index currently displayed.
func (m Playback) Frame() int { return m.tr.IndexAt(m.elapsed) }

func (m Playback) Elapsed() float64 { return m.elapsed }
func (m Playback) Speed() float64   { return m.speed }
func (m Playback) Running() bool    { return m.running }

func (m Playback) Init() tea.Cmd { return tick() }

func (m Playback) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.elapsed = 0
			m.running = true
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, minSpeed)
		case "[":
			m.seek(-1)
		case "]":
			m.seek(1)
		}
	case TickMsg:
		if m.running {
			m.seek(m.speed * frameInterval.Seconds())
			if m.elapsed >= m.tr.Duration() {
				m.running = false
			}
		}
		return m, tick()
	}
	return m, nil
}

func (m *Playback) seek(delta float64) {
	m.elapsed = max(0, min(m.elapsed+delta, m.tr.Duration()))
}

func (m Playback) View() string {
	i := m.Frame()
	smp := m.tr.At(i)

	status := StatusRunning.Render("PLAYING")
	if !m.running {
		status = StatusPaused.Render("PAUSED")
	}

	var left strings.Builder
	left.WriteString(TitleStyle.Render("STICK-SLIP OSCILLATOR") + "\n")
	left.WriteString(fmt.Sprintf("%s  t=%.2fs  x%g\n\n", status, smp.Time, m.speed))
	left.WriteString(m.scene.Draw(smp.State))
	left.WriteString("\n" + ProgressBar(m.elapsed/m.tr.Duration(), sceneWidth) + "\n")
	left.WriteString(Subtle.Render("energy ") + Sparkline(m.energy[:i+1], sceneWidth-7) + "\n")

	var right strings.Builder
	right.WriteString(m.scene.Readout(smp.State) + "\n\n")
	if hist := m.history(i); len(hist) > 1 {
		right.WriteString(asciigraph.Plot(hist,
			asciigraph.Height(6),
			asciigraph.Width(30),
			asciigraph.Caption("x(t), last 5 s"),
		))
	}

	help := KeyHint.Render("SPACE:pause  R:restart  +/-:speed  [ ]:seek  Q:quit")
	body := lipgloss.JoinHorizontal(lipgloss.Top, left.String(), Panel.Render(right.String()))
	return body + "\n" + help + "\n"
}

// history returns up to historyPoints positions covering the window that
// ends at index i.
func (m Playback) history(i int) []float64 {
	from := m.tr.IndexAt(m.tr.Times[i] - historyWindow)
	n := i - from + 1
	step := max(n/historyPoints, 1)

	out := make([]float64, 0, historyPoints+1)
	for j := from; j <= i; j += step {
		out = append(out, m.tr.Positions[j])
	}
	return out
}

// RunPlayback shows tr full screen until the user quits.
func RunPlayback(tr *dynamo.Trajectory, p dynamo.Params, eps float64) error {
	_, err := tea.NewProgram(NewPlayback(tr, p, eps), tea.WithAltScreen()).Run()
	return err
}
