package settings

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/pomodoro/internal/config"
	"github.com/adibhanna/pomodoro/internal/models"
)

// Saver accepts a new configuration or explains why it was rejected.
type Saver interface {
	UpdateConfig(cfg models.Config) error
}

type field int

const (
	fieldPomodoro field = iota
	fieldShortBreak
	fieldLongBreak
	fieldInterval
	fieldAutoStartBreaks
	fieldAutoStartPomodoros
	fieldVolume
	fieldDarkMode
	fieldCount
)

const numericFields = 4

type Model struct {
	saver      Saver
	config     models.Config
	inputs     []textinput.Model
	focusIndex field
	saved      bool
	defaults   bool
	errorMsg   string
	width      int
	height     int
}

func New(cfg models.Config, saver Saver) Model {
	inputs := make([]textinput.Model, numericFields)

	// Validation function to allow only numeric input
	numericValidation := func(text string) error {
		for _, char := range text {
			if !unicode.IsDigit(char) {
				return fmt.Errorf("only numbers allowed")
			}
		}
		return nil
	}

	placeholders := []string{"25", "5", "15", "4"}
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = placeholders[i]
		inputs[i].CharLimit = 3
		inputs[i].Width = 20
		inputs[i].Validate = numericValidation
	}
	inputs[fieldInterval].CharLimit = 2
	inputs[fieldPomodoro].Focus()

	m := Model{
		saver:  saver,
		config: cfg,
		inputs: inputs,
	}
	m.fillInputs()
	return m
}

func (m *Model) fillInputs() {
	m.inputs[fieldPomodoro].SetValue(strconv.Itoa(m.config.PomodoroMinutes))
	m.inputs[fieldShortBreak].SetValue(strconv.Itoa(m.config.ShortBreakMinutes))
	m.inputs[fieldLongBreak].SetValue(strconv.Itoa(m.config.LongBreakMinutes))
	m.inputs[fieldInterval].SetValue(strconv.Itoa(m.config.LongBreakInterval))
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Tab), key.Matches(msg, keys.Down):
			m.focusIndex++
			if m.focusIndex >= fieldCount {
				m.focusIndex = 0
			}
			m.updateFocus()
			return m, nil

		case key.Matches(msg, keys.ShiftTab), key.Matches(msg, keys.Up):
			m.focusIndex--
			if m.focusIndex < 0 {
				m.focusIndex = fieldCount - 1
			}
			m.updateFocus()
			return m, nil

		case key.Matches(msg, keys.Save):
			if err := m.saveConfig(); err != nil {
				m.errorMsg = err.Error()
				m.saved = false
				return m, nil
			}
			m.saved = true
			m.errorMsg = ""
			return m, tea.Quit

		case key.Matches(msg, keys.Defaults):
			m.config = models.DefaultConfig()
			m.fillInputs()
			m.defaults = true
			m.saved = false
			m.errorMsg = ""
			return m, nil

		case key.Matches(msg, keys.Back), key.Matches(msg, keys.Quit):
			return m, tea.Quit
		}

		if m.focusIndex >= numericFields {
			m.updateControl(msg)
			return m, nil
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *Model) updateFocus() {
	for i := range m.inputs {
		if field(i) == m.focusIndex {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// updateControl handles keys for the toggles and the volume slider.
func (m *Model) updateControl(msg tea.KeyMsg) {
	step := 0
	switch {
	case key.Matches(msg, keys.Toggle):
		switch m.focusIndex {
		case fieldAutoStartBreaks:
			m.config.AutoStartBreaks = !m.config.AutoStartBreaks
		case fieldAutoStartPomodoros:
			m.config.AutoStartPomodoros = !m.config.AutoStartPomodoros
		case fieldDarkMode:
			m.config.DarkModeWhenRunning = !m.config.DarkModeWhenRunning
		}
		m.errorMsg = ""
		return
	case key.Matches(msg, keys.Left):
		step = -1
	case key.Matches(msg, keys.Right):
		step = 1
	case key.Matches(msg, keys.BigLeft):
		step = -10
	case key.Matches(msg, keys.BigRight):
		step = 10
	}
	if m.focusIndex == fieldVolume && step != 0 {
		m.config.AlarmVolume = max(config.MinVolume, min(config.MaxVolume, m.config.AlarmVolume+step))
		m.errorMsg = ""
	}
}

func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		oldValue := m.inputs[i].Value()
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
		// Clear error message when user starts typing
		if m.inputs[i].Value() != oldValue {
			m.errorMsg = ""
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) saveConfig() error {
	labels := []string{"pomodoro duration", "short break duration", "long break duration", "long break interval"}
	values := make([]int, numericFields)
	for i, input := range m.inputs {
		text := strings.TrimSpace(input.Value())
		if text == "" {
			return fmt.Errorf("%s is required", labels[i])
		}
		n, err := strconv.Atoi(text)
		if err != nil {
			return fmt.Errorf("%s must be a number", labels[i])
		}
		values[i] = n
	}

	cfg := m.config
	cfg.PomodoroMinutes = values[fieldPomodoro]
	cfg.ShortBreakMinutes = values[fieldShortBreak]
	cfg.LongBreakMinutes = values[fieldLongBreak]
	cfg.LongBreakInterval = values[fieldInterval]

	if err := m.saver.UpdateConfig(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Config returns the form's current configuration, saved or not.
func (m Model) Config() models.Config {
	return m.config
}

// Saved reports whether the last save was accepted.
func (m Model) Saved() bool {
	return m.saved
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	containerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Padding(2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB")).
		MarginBottom(1).
		Align(lipgloss.Center)

	formStyle := lipgloss.NewStyle().
		Align(lipgloss.Left).
		MarginTop(1).
		MarginBottom(1)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C"))

	focusedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF7CCB")).
		Bold(true)

	inputStyle := lipgloss.NewStyle().
		MarginBottom(1)

	successStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4CAF50")).
		Bold(true).
		MarginTop(1)

	title := titleStyle.Render("⚙️  Settings")

	labels := []string{
		"Pomodoro (minutes):",
		"Short Break (minutes):",
		"Long Break (minutes):",
		"Long Break Interval (pomodoros):",
	}

	var form string
	for i, label := range labels {
		form += labelStyle.Render(label) + "\n"
		form += inputStyle.Render(m.inputs[i].View()) + "\n"
	}

	controls := []struct {
		field field
		label string
		value string
	}{
		{fieldAutoStartBreaks, "Auto Start Breaks", onOff(m.config.AutoStartBreaks)},
		{fieldAutoStartPomodoros, "Auto Start Pomodoros", onOff(m.config.AutoStartPomodoros)},
		{fieldVolume, "Alarm Volume", volumeBar(m.config.AlarmVolume)},
		{fieldDarkMode, "Dark Mode When Running", onOff(m.config.DarkModeWhenRunning)},
	}
	for _, c := range controls {
		line := fmt.Sprintf("%-24s %s", c.label+":", c.value)
		if c.field == m.focusIndex {
			form += focusedStyle.Render("▶ "+line) + "\n"
		} else {
			form += labelStyle.Render("  "+line) + "\n"
		}
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		formStyle.Render(form),
		m.renderHelp(),
	)

	if m.saved {
		content += "\n" + successStyle.Render("✅ Settings saved successfully!")
	}

	if m.defaults {
		content += "\n" + successStyle.Render("🔄 Defaults restored, press 's' to save")
	}

	if m.errorMsg != "" {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true).
			MarginTop(1)
		content += "\n" + errorStyle.Render("❌ "+m.errorMsg)
	}

	return containerStyle.Render(content)
}

func onOff(on bool) string {
	if on {
		return "[x] on"
	}
	return "[ ] off"
}

func volumeBar(volume int) string {
	filled := volume / 5
	return fmt.Sprintf("%s%s %3d", strings.Repeat("█", filled), strings.Repeat("░", 20-filled), volume)
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(1)

	switch {
	case m.focusIndex == fieldVolume:
		return helpStyle.Render("←/→: volume ±1 • shift+←/→: ±10 • tab/↓: next • s: save • d: defaults • b: back")
	case m.focusIndex >= numericFields:
		return helpStyle.Render("space/enter: toggle • tab/↓: next • s: save • d: defaults • b: back")
	}
	return helpStyle.Render("tab/↓: next field • shift+tab/↑: previous • s: save • d: defaults • b: back • q: quit")
}

type keyMap struct {
	Tab      key.Binding
	ShiftTab key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	BigLeft  key.Binding
	BigRight key.Binding
	Toggle   key.Binding
	Save     key.Binding
	Defaults key.Binding
	Back     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous field"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next field"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "increase"),
	),
	BigLeft: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←", "decrease by 10"),
	),
	BigRight: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→", "increase by 10"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Save: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save"),
	),
	Defaults: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "restore defaults"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc"),
		key.WithHelp("b", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
