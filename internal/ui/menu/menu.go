package menu

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/pomodoro/internal/models"
	"github.com/adibhanna/pomodoro/internal/pomodoro"
)

// Model is the mode picker.
type Model struct {
	choices  []pomodoro.Mode
	config   models.Config
	cursor   int
	selected bool
	closed   bool
	width    int
	height   int
}

func New(config models.Config, current pomodoro.Mode) Model {
	m := Model{
		choices: pomodoro.Modes,
		config:  config,
	}
	for i, mode := range m.choices {
		if mode == current {
			m.cursor = i
		}
	}
	return m
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
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			} else {
				m.cursor = len(m.choices) - 1
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			} else {
				m.cursor = 0
			}

		case key.Matches(msg, keys.Enter):
			m.selected = true
			m.closed = true

		case key.Matches(msg, keys.Back):
			m.closed = true
		}
	}

	return m, nil
}

func (m Model) View() string {
	containerStyle := lipgloss.NewStyle().
		Padding(2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF7CCB")).
		MarginBottom(1)

	menuStyle := lipgloss.NewStyle().
		Padding(1, 2)

	selectedStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF7CCB")).
		Bold(true)

	normalStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888"))

	var menu string
	for i, mode := range m.choices {
		cursor := "  "
		style := normalStyle
		if m.cursor == i {
			cursor = "▶ "
			style = selectedStyle
		}
		line := fmt.Sprintf("%-9s %3d min", mode.String(), pomodoro.Minutes(m.config, mode))
		menu += style.Render(cursor+line) + "\n"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Switch mode"),
		menuStyle.Render(menu),
		m.renderHelp(),
	)

	return containerStyle.Render(content)
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(1)

	return helpStyle.Render("↑/↓: navigate • enter: select • b: back")
}

// Closed reports whether the menu is done, with or without a choice.
func (m Model) Closed() bool {
	return m.closed
}

// Selected returns the chosen mode; ok is false when the menu was dismissed.
func (m Model) Selected() (pomodoro.Mode, bool) {
	if !m.selected {
		return pomodoro.Pomodoro, false
	}
	return m.choices[m.cursor], true
}

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
	Back  key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("b", "esc", "q"),
		key.WithHelp("b", "back"),
	),
}
