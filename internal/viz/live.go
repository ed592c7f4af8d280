package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/motionlab/internal/clock"
	"github.com/san-kum/motionlab/internal/motion"
	"github.com/san-kum/motionlab/internal/session"
)

const (
	defaultCols  = 120
	minCols      = 40
	panelChrome  = 4 // border + padding on both sides
	panStepCells = 10
	tableRows    = 8
)

type TickMsg time.Time

// Model is the terminal front end of a session. It only issues commands and
// reads snapshots; the session owns all state.
type Model struct {
	ctrl  *session.Controller
	loop  *clock.FrameLoop
	fps   int
	cols  int
	theme Theme

	dragging   bool
	dragStartX int

	status   string
	showHelp bool
}

func NewModel(ctrl *session.Controller, loop *clock.FrameLoop, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	return Model{
		ctrl:  ctrl,
		loop:  loop,
		fps:   fps,
		cols:  defaultCols,
		theme: ThemeCyberpunk,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width - panelChrome
		if m.cols < minCols {
			m.cols = minCols
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.report(m.ctrl.ToggleRunning())
		case "r":
			m.report(m.ctrl.Reset(nil))
		case "left", "h":
			m.panCells(panStepCells)
		case "right", "l":
			m.panCells(-panStepCells)
		case "up", "k":
			m.reconfigure(func(c *motion.Config) { c.InitialVelocity++ })
		case "down", "j":
			m.reconfigure(func(c *motion.Config) { c.InitialVelocity-- })
		case "a":
			m.reconfigure(func(c *motion.Config) { c.Acceleration -= 0.5 })
		case "A":
			m.reconfigure(func(c *motion.Config) { c.Acceleration += 0.5 })
		case "[":
			m.reconfigure(func(c *motion.Config) { c.TimeScale /= 2 })
		case "]":
			m.reconfigure(func(c *motion.Config) { c.TimeScale *= 2 })
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.MouseMsg:
		m.mouse(msg)
	case TickMsg:
		m.loop.FrameAt(time.Time(msg))
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *Model) reconfigure(edit func(c *motion.Config)) {
	cfg := m.ctrl.Config()
	edit(&cfg)
	m.report(m.ctrl.Reset(&cfg))
}

func (m *Model) pxPerCell() float64 {
	return m.ctrl.View().WidthPx() / float64(m.cols)
}

// panCells runs a complete pan gesture of n cells.
func (m *Model) panCells(n int) {
	if !m.ctrl.PanStart() {
		m.status = "pause to pan"
		return
	}
	m.ctrl.PanBy(float64(n) * m.pxPerCell())
	m.ctrl.PanEnd()
	m.status = ""
}

func (m *Model) mouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if m.ctrl.PanStart() {
			m.dragging = true
			m.dragStartX = msg.X
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.ctrl.PanBy(float64(msg.X-m.dragStartX) * m.pxPerCell())
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.ctrl.PanEnd()
			m.dragging = false
		}
	}
}

func (m Model) View() string {
	snap := m.ctrl.Snapshot()
	view := m.ctrl.View()

	var b strings.Builder
	b.WriteString(GradientTitle.Render("MOTIONLAB") + "  " + PhaseBadge(snap.Phase) + "\n\n")

	rows := renderTrack(view, snap, m.cols)
	labelStyle := lipgloss.NewStyle().Foreground(m.theme.Samples)
	for i, r := range rows {
		switch i {
		case rowObject:
			b.WriteString(m.colorObjectRow(r))
		case rowTrack:
			b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Track).Render(r))
		case rowMarkLabel:
			b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Marks).Render(r))
		default:
			b.WriteString(labelStyle.Render(r))
		}
		b.WriteString("\n")
	}
	track := GlassPanel.Render(strings.TrimRight(b.String(), "\n"))

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		GlassPanel.Render(m.statsView(snap)),
		GlassPanel.Render(samplesTable(snap, tableRows)),
		GlassPanel.Render(m.plotView(snap)),
	)

	footer := KeyHint.Render("SP:Start/Pause R:Reset ←→:Pan ↑↓:v0 a/A:accel [ ]:speed T:Theme ?:Help Q:Quit")
	if m.status != "" {
		footer = ErrorText.Render(m.status) + "\n" + footer
	}

	out := lipgloss.JoinVertical(lipgloss.Left, track, panels, footer)
	if m.showHelp {
		return helpText + "\n" + out
	}
	return out
}

func (m Model) colorObjectRow(r string) string {
	obj := lipgloss.NewStyle().Foreground(m.theme.Object)
	dot := lipgloss.NewStyle().Foreground(m.theme.Samples)
	var b strings.Builder
	for _, c := range r {
		switch c {
		case glyphObject:
			b.WriteString(obj.Render(string(c)))
		case glyphSample:
			b.WriteString(dot.Render(string(c)))
		default:
			b.WriteRune(c)
		}
	}
	return b.String()
}

func (m Model) statsView(snap session.Snapshot) string {
	var b strings.Builder
	line := func(label, value string) {
		b.WriteString(MetricLabel.Render(label) + MetricValue.Render(value) + "\n")
	}
	line("Time", fmt.Sprintf("%.2fs", snap.ElapsedTime))
	line("Position", fmt.Sprintf("%.2fm", snap.Position))
	line("Velocity", fmt.Sprintf("%.2fm/s", snap.Velocity))
	line("v0", fmt.Sprintf("%.1fm/s", snap.Config.InitialVelocity))
	line("Accel", fmt.Sprintf("%.1fm/s²", snap.Config.Acceleration))
	line("Speed", fmt.Sprintf("%gx", snap.Config.TimeScale))
	line("Camera", fmt.Sprintf("%.1fm", snap.ViewportCenter))
	line("Samples", fmt.Sprintf("%d", len(snap.Samples)))

	vel := make([]float64, len(snap.Samples))
	for i, s := range snap.Samples {
		vel[i] = s.Velocity
	}
	b.WriteString(MetricLabel.Render("v(t)") + SparklineChart(vel, 20))
	return b.String()
}

// samplesTable lists the most recent n samples.
func samplesTable(snap session.Snapshot, n int) string {
	var b strings.Builder
	b.WriteString(TableHeader.Render(fmt.Sprintf("%8s %10s %10s", "time(s)", "vel(m/s)", "pos(m)")) + "\n")
	from := len(snap.Samples) - n
	if from < 0 {
		from = 0
	}
	for _, s := range snap.Samples[from:] {
		b.WriteString(fmt.Sprintf("%8.2f %10.2f %10.2f\n", s.Time, s.Velocity, s.Position))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) plotView(snap session.Snapshot) string {
	if len(snap.Samples) < 2 {
		return KeyHint.Render("waiting for samples")
	}
	pos := make([]float64, len(snap.Samples))
	for i, s := range snap.Samples {
		pos[i] = s.Position
	}
	return asciigraph.Plot(pos, asciigraph.Height(8), asciigraph.Width(40), asciigraph.Caption("position (m)"))
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Space    - Start/Pause              ║
║  R        - Reset                    ║
║  ←/→ h/l  - Pan (while stopped)      ║
║  Mouse    - Drag to pan              ║
║  ↑/↓ k/j  - Initial velocity ±1      ║
║  a/A      - Acceleration ∓0.5        ║
║  [ / ]    - Halve/double speed       ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run drives the session from a Bubble Tea program until the user quits.
func Run(ctrl *session.Controller, loop *clock.FrameLoop, fps int) error {
	p := tea.NewProgram(NewModel(ctrl, loop, fps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
