package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/pomodoro/internal/storage"
)

type exportResultMsg struct {
	success bool
	message string
}

type clearMessageMsg struct{}

// Model shows the in-memory session log.
type Model struct {
	storage       *storage.Storage
	exportDir     string
	width         int
	height        int
	exportMessage string
	showMessage   bool
	closed        bool
}

// New creates the view. Reports are exported to exportDir, or to
// ~/Downloads (falling back to ~) when it is empty.
func New(storage *storage.Storage, exportDir string) Model {
	return Model{
		storage:   storage,
		exportDir: exportDir,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Reopen clears the closed flag so the view can be shown again.
func (m Model) Reopen() Model {
	m.closed = false
	return m
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back):
			m.closed = true
			return m, nil
		case key.Matches(msg, keys.Export):
			return m, m.exportStats()
		}

	case exportResultMsg:
		m.exportMessage = msg.message
		m.showMessage = true
		// Clear message after 3 seconds
		return m, tea.Tick(time.Second*3, func(t time.Time) tea.Msg {
			return clearMessageMsg{}
		})

	case clearMessageMsg:
		m.showMessage = false
		m.exportMessage = ""
		return m, nil
	}

	return m, nil
}

func (m Model) exportStats() tea.Cmd {
	report := m.storage.Report()
	exportDir := m.exportDir

	return func() tea.Msg {
		timestamp := time.Now().Format("2006-01-02-150405")
		filename := fmt.Sprintf("pomodoro-report-%s.txt", timestamp)

		if exportDir != "" {
			filePath := filepath.Join(exportDir, filename)
			if err := os.WriteFile(filePath, []byte(report), 0o644); err != nil {
				return exportResultMsg{success: false, message: fmt.Sprintf("Failed to save file: %v", err)}
			}
			return exportResultMsg{success: true, message: fmt.Sprintf("[OK] Exported to %s", filePath)}
		}

		homeDir, err := os.UserHomeDir()
		if err != nil {
			return exportResultMsg{success: false, message: fmt.Sprintf("Failed to get home directory: %v", err)}
		}

		filePath := filepath.Join(homeDir, "Downloads", filename)
		if err := os.WriteFile(filePath, []byte(report), 0o644); err != nil {
			// Try alternative location if Downloads doesn't exist
			filePath = filepath.Join(homeDir, filename)
			if err := os.WriteFile(filePath, []byte(report), 0o644); err != nil {
				return exportResultMsg{success: false, message: fmt.Sprintf("Failed to save file: %v", err)}
			}
		}

		return exportResultMsg{success: true, message: fmt.Sprintf("[OK] Exported to %s", filePath)}
	}
}

func (m Model) View() string {
	containerStyle := lipgloss.NewStyle().
		Padding(2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB")).
		MarginBottom(1)

	statsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C")).
		MarginBottom(1)

	intervalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888")).
		PaddingLeft(2)

	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4CAF50")).
		Bold(true).
		MarginTop(1)

	today := m.storage.GetTodayStats()
	date, _ := time.Parse("2006-01-02", today.Date)
	title := titleStyle.Render(fmt.Sprintf("📊 Session Log - %s", date.Format("Monday, January 2, 2006")))

	summary := statsStyle.Render(fmt.Sprintf(
		"Pomodoros: %d (%s) | Breaks: %d (%s)",
		today.PomodoroCount,
		storage.FormatMinutes(today.FocusMinutes),
		today.BreakCount,
		storage.FormatMinutes(today.BreakMinutes),
	))

	var intervals string
	if len(today.Intervals) == 0 {
		intervals = intervalStyle.Render("Nothing finished yet. Time to focus! 🚀")
	} else {
		for _, interval := range today.Intervals {
			status := "☕"
			if interval.IsPomodoro() {
				status = "🍅"
			}
			ago := m.storage.Elapsed(interval).Round(time.Minute)
			intervals += intervalStyle.Render(fmt.Sprintf(
				"%s %2d. %-8s %3d min - finished %s (%s ago)",
				status,
				interval.Sequence,
				storage.ModeLabel(interval.Mode),
				interval.PlannedMinutes,
				interval.EndTime.Format("3:04 PM"),
				ago,
			)) + "\n"
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		summary,
		intervals,
		m.renderHelp(),
	)

	if m.showMessage {
		content += "\n" + messageStyle.Render(m.exportMessage)
	}

	return containerStyle.Render(content)
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(2)

	return helpStyle.Render("e: export report • b/t: back")
}

func (m Model) Closed() bool {
	return m.closed
}

type keyMap struct {
	Back   key.Binding
	Export key.Binding
}

var keys = keyMap{
	Back: key.NewBinding(
		key.WithKeys("b", "esc", "t"),
		key.WithHelp("b", "back"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
}
