package help

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/pomodoro/internal/models"
)

type Model struct {
	config models.Config
	width  int
	height int
	quit   bool
}

func New(config models.Config) Model {
	return Model{config: config}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit), key.Matches(msg, keys.Home):
			m.quit = true
			return m, nil
		}
	}

	return m, nil
}

// Reopen clears the quit flag so the same model can be shown again.
func (m Model) Reopen(config models.Config) Model {
	m.quit = false
	m.config = config
	return m
}

func (m Model) View() string {
	// Use reasonable defaults if dimensions aren't set
	width := m.width
	height := m.height
	if width == 0 {
		width = 100
	}
	if height == 0 {
		height = 30
	}

	containerStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Padding(2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB")).
		Align(lipgloss.Center).
		MarginBottom(1)

	sectionTitleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FDFF8C")).
		MarginBottom(1).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4CAF50")).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#CCCCCC"))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(2).
		Align(lipgloss.Center)

	title := titleStyle.Render("🍅 Pomodoro Help")

	timerSection := sectionTitleStyle.Render("⏱️  Timer Controls")
	timerContent := fmt.Sprintf("%s - %s\n%s - %s\n%s - %s",
		keyStyle.Render("space / s"), descStyle.Render("Start or pause the countdown"),
		keyStyle.Render("r"), descStyle.Render("Reset the current countdown"),
		keyStyle.Render("1 / 2 / 3"), descStyle.Render("Switch to Pomodoro / Short / Long"))

	navSection := sectionTitleStyle.Render("🧭 Navigation")
	navContent := fmt.Sprintf("%s - %s\n%s - %s\n%s - %s\n%s - %s",
		keyStyle.Render("m"), descStyle.Render("Pick a mode from a menu"),
		keyStyle.Render("t"), descStyle.Render("Toggle the session log"),
		keyStyle.Render("b / esc"), descStyle.Render("Go back to the timer"),
		keyStyle.Render("? / f1"), descStyle.Render("Show this help page"))

	appSection := sectionTitleStyle.Render("⚙️  Settings & App")
	appContent := fmt.Sprintf("%s - %s\n%s - %s",
		keyStyle.Render("g"), descStyle.Render("Open settings"),
		keyStyle.Render("q / Ctrl+C"), descStyle.Render("Quit the application"))

	autoStart := func(on bool) string {
		if on {
			return "on"
		}
		return "off"
	}
	aboutSection := sectionTitleStyle.Render("ℹ️  About")
	aboutContent := descStyle.Render(fmt.Sprintf(
		"Work in focused Pomodoro intervals separated by short breaks.\n"+
			"After every %d Pomodoros a long break replaces the short one.\n\n"+
			"Pomodoro: %d min • Short: %d min • Long: %d min\n"+
			"Auto start breaks: %s • Auto start Pomodoros: %s\n\n"+
			"Nothing is saved between runs; the session log lives in memory.",
		m.config.LongBreakInterval,
		m.config.PomodoroMinutes, m.config.ShortBreakMinutes, m.config.LongBreakMinutes,
		autoStart(m.config.AutoStartBreaks), autoStart(m.config.AutoStartPomodoros)))

	footer := footerStyle.Render("Press 'h' or 'b/esc' to go back • 'q' to close help")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		timerSection,
		timerContent,
		navSection,
		navContent,
		appSection,
		appContent,
		aboutSection,
		aboutContent,
		footer,
	)

	return containerStyle.Render(content)
}

func (m Model) ShouldQuit() bool {
	return m.quit
}

type keyMap struct {
	Back key.Binding
	Quit key.Binding
	Home key.Binding
}

var keys = keyMap{
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b/esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "close help"),
	),
	Home: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "home"),
	),
}
