package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/pomodoro/internal/app"
	"github.com/adibhanna/pomodoro/internal/pomodoro"
)

// Model renders the countdown panel: big digits, progress bar and status.
type Model struct {
	progress progress.Model
	snap     app.Snapshot
	width    int
}

func New() Model {
	prog := progress.New(progress.WithScaledGradient("#FF7CCB", "#FDFF8C"))
	prog.Width = 60

	return Model{
		progress: prog,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// SetSnapshot stores the latest controller state.
func (m Model) SetSnapshot(snap app.Snapshot) Model {
	m.snap = snap
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	timerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(ModeColor(m.snap.State.Mode)).
		Padding(1, 4).
		Align(lipgloss.Center).
		MarginBottom(2)

	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888")).
		Align(lipgloss.Center).
		MarginTop(1)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		timerStyle.Render(BigTime(m.snap.Display)),
		m.progress.ViewAs(m.snap.Progress),
		statusStyle.Render(m.status()),
	)
}

func (m Model) status() string {
	state := m.snap.State
	switch {
	case state.Running && state.Mode == pomodoro.Pomodoro:
		return "Focus time! Stay in the zone..."
	case state.Running:
		return "Break time. Step away from the screen."
	case m.snap.Last != nil && m.snap.Progress == 0 && m.snap.Last.To == state.Mode:
		return "Time's up! Press space to start the " + strings.ToLower(state.Mode.String()) + " " + noun(state.Mode)
	case m.snap.Progress > 0:
		return "PAUSED - Press space to resume"
	default:
		return "Press space to start"
	}
}

func noun(mode pomodoro.Mode) string {
	if mode.IsBreak() {
		return "break"
	}
	return "session"
}

// ModeColor is the accent used for a mode.
func ModeColor(mode pomodoro.Mode) lipgloss.Color {
	switch mode {
	case pomodoro.ShortBreak:
		return lipgloss.Color("#2E8B57")
	case pomodoro.LongBreak:
		return lipgloss.Color("#1E6FA8")
	default:
		return lipgloss.Color("#7D56F4")
	}
}

var digits = map[rune][]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	':': {" ", "█", " ", "█", " "},
}

// BigTime renders an MM:SS string in five-row block digits. Unknown
// characters are skipped.
func BigTime(display string) string {
	lines := make([]string, 5)
	first := true
	for _, r := range display {
		glyph, ok := digits[r]
		if !ok {
			continue
		}
		for row := range lines {
			if !first {
				lines[row] += " "
			}
			lines[row] += glyph[row]
		}
		first = false
	}
	return strings.Join(lines, "\n")
}
