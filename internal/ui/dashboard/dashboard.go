package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/adibhanna/pomodoro/internal/app"
	"github.com/adibhanna/pomodoro/internal/pomodoro"
	"github.com/adibhanna/pomodoro/internal/storage"
	"github.com/adibhanna/pomodoro/internal/ui/help"
	"github.com/adibhanna/pomodoro/internal/ui/menu"
	"github.com/adibhanna/pomodoro/internal/ui/stats"
	"github.com/adibhanna/pomodoro/internal/ui/timer"
)

// Controller is the part of app.Controller the dashboard drives.
type Controller interface {
	Snapshot() app.Snapshot
	Subscribe(buffer int) (<-chan app.Snapshot, func())
	Toggle()
	Reset()
	SetMode(mode pomodoro.Mode)
	Storage() *storage.Storage
}

type snapshotMsg app.Snapshot

type closedMsg struct{}

type ViewState int

const (
	HomeView ViewState = iota
	StatsView
	HelpView
	MenuView
)

type Model struct {
	ctrl        Controller
	updates     <-chan app.Snapshot
	unsubscribe func()
	snap        app.Snapshot
	viewState   ViewState
	width       int
	height      int

	// Sub-models
	timerModel timer.Model
	helpModel  help.Model
	statsModel stats.Model
	menuModel  menu.Model

	shouldQuit   bool
	openSettings bool
}

// New subscribes to ctrl. Call Detach once the program using the model exits.
func New(ctrl Controller, exportDir string) Model {
	updates, unsubscribe := ctrl.Subscribe(4)
	snap := ctrl.Snapshot()

	return Model{
		ctrl:        ctrl,
		updates:     updates,
		unsubscribe: unsubscribe,
		snap:        snap,
		timerModel:  timer.New().SetSnapshot(snap),
		helpModel:   help.New(snap.Config),
		statsModel:  stats.New(ctrl.Storage(), exportDir),
		menuModel:   menu.New(snap.Config, snap.State.Mode),
	}
}

func (m Model) Init() tea.Cmd {
	return waitForSnapshot(m.updates)
}

func waitForSnapshot(updates <-chan app.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(snap)
	}
}

// Detach stops the subscription created by New.
func (m Model) Detach() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.timerModel, _ = m.timerModel.Update(msg)
		helpModel, _ := m.helpModel.Update(msg)
		m.helpModel = helpModel.(help.Model)
		statsModel, _ := m.statsModel.Update(msg)
		m.statsModel = statsModel.(stats.Model)
		menuModel, _ := m.menuModel.Update(msg)
		m.menuModel = menuModel.(menu.Model)
		return m, nil

	case snapshotMsg:
		m.setSnapshot(app.Snapshot(msg))
		if msg.Closed {
			m.shouldQuit = true
			return m, tea.Quit
		}
		return m, waitForSnapshot(m.updates)

	case closedMsg:
		m.shouldQuit = true
		return m, tea.Quit

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.timerModel, cmd = m.timerModel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			m.shouldQuit = true
			return m, tea.Quit
		}
		if m.viewState != HomeView {
			return m.updateSubView(msg)
		}
		return m.updateHome(msg)
	}

	// Export results and their timers belong to the stats view.
	statsModel, cmd := m.statsModel.Update(msg)
	m.statsModel = statsModel.(stats.Model)
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.shouldQuit = true
		return m, tea.Quit

	case key.Matches(msg, keys.Toggle):
		m.ctrl.Toggle()

	case key.Matches(msg, keys.Reset):
		m.ctrl.Reset()

	case key.Matches(msg, keys.Pomodoro):
		m.ctrl.SetMode(pomodoro.Pomodoro)

	case key.Matches(msg, keys.ShortBreak):
		m.ctrl.SetMode(pomodoro.ShortBreak)

	case key.Matches(msg, keys.LongBreak):
		m.ctrl.SetMode(pomodoro.LongBreak)

	case key.Matches(msg, keys.Menu):
		m.menuModel = m.sized(menu.New(m.snap.Config, m.snap.State.Mode))
		m.viewState = MenuView
		return m, nil

	case key.Matches(msg, keys.Stats):
		m.statsModel = m.statsModel.Reopen()
		m.viewState = StatsView
		return m, nil

	case key.Matches(msg, keys.Help):
		m.helpModel = m.helpModel.Reopen(m.snap.Config)
		m.viewState = HelpView
		return m, nil

	case key.Matches(msg, keys.Settings):
		m.openSettings = true
		return m, tea.Quit

	default:
		return m, nil
	}

	m.setSnapshot(m.ctrl.Snapshot())
	return m, nil
}

func (m Model) updateSubView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.viewState {
	case HelpView:
		helpModel, _ := m.helpModel.Update(msg)
		m.helpModel = helpModel.(help.Model)
		if m.helpModel.ShouldQuit() {
			m.viewState = HomeView
		}
		return m, nil

	case StatsView:
		statsModel, cmd := m.statsModel.Update(msg)
		m.statsModel = statsModel.(stats.Model)
		if m.statsModel.Closed() {
			m.viewState = HomeView
		}
		return m, cmd

	case MenuView:
		menuModel, _ := m.menuModel.Update(msg)
		m.menuModel = menuModel.(menu.Model)
		if m.menuModel.Closed() {
			m.viewState = HomeView
			if mode, ok := m.menuModel.Selected(); ok {
				m.ctrl.SetMode(mode)
				m.setSnapshot(m.ctrl.Snapshot())
			}
		}
		return m, nil
	}

	m.viewState = HomeView
	return m, nil
}

func (m *Model) setSnapshot(snap app.Snapshot) {
	m.snap = snap
	m.timerModel = m.timerModel.SetSnapshot(snap)
}

func (m Model) sized(model menu.Model) menu.Model {
	if m.width == 0 {
		return model
	}
	updated, _ := model.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	return updated.(menu.Model)
}

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.viewState {
	case StatsView:
		return m.statsModel.View()
	case HelpView:
		return m.helpModel.View()
	case MenuView:
		return m.menuModel.View()
	default:
		return m.renderHomeView()
	}
}

func (m Model) dark() bool {
	return m.snap.Config.DarkModeWhenRunning && m.snap.State.Running
}

func (m Model) renderHomeView() string {
	containerStyle := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Padding(2)

	if m.dark() {
		containerStyle = containerStyle.
			Background(lipgloss.Color("#000000")).
			Foreground(lipgloss.Color("#FAFAFA"))
	}

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderTabs(),
		m.timerModel.View(),
		m.renderCounts(),
		m.renderHelp(),
	)

	return containerStyle.Render(content)
}

func (m Model) renderTabs() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Padding(0, 2)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888")).
		Padding(0, 2)

	tabs := make([]string, 0, len(pomodoro.Modes))
	for _, mode := range pomodoro.Modes {
		if mode == m.snap.State.Mode {
			tabs = append(tabs, activeStyle.Background(timer.ModeColor(mode)).Render(mode.String()))
		} else {
			tabs = append(tabs, inactiveStyle.Render(mode.String()))
		}
	}

	return lipgloss.NewStyle().
		MarginBottom(2).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderCounts() string {
	countStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FDFF8C")).
		MarginTop(1)

	today := m.snap.TodayStats
	next := m.snap.Config.LongBreakInterval - m.snap.State.Completed%max(m.snap.Config.LongBreakInterval, 1)

	return countStyle.Render(fmt.Sprintf(
		"🍅 Completed: %d • Long break in %d • Focused today: %s",
		m.snap.State.Completed,
		next,
		storage.FormatMinutes(today.FocusMinutes),
	))
}

func (m Model) renderHelp() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666")).
		MarginTop(2)

	toggle := "start"
	if m.snap.State.Running {
		toggle = "pause"
	}

	var helpText string
	if m.width > 80 {
		helpText = fmt.Sprintf("space: %s • r: reset • 1/2/3: mode • m: menu • t: log • ?: help • g: settings • q: quit", toggle)
	} else {
		helpText = fmt.Sprintf("space: %s • r: reset • 1/2/3: mode • ?: help • q: quit", toggle)
	}

	return helpStyle.Render(helpText)
}

func (m Model) ShouldQuit() bool {
	return m.shouldQuit
}

func (m Model) ShouldOpenSettings() bool {
	return m.openSettings
}

type keyMap struct {
	Toggle     key.Binding
	Reset      key.Binding
	Pomodoro   key.Binding
	ShortBreak key.Binding
	LongBreak  key.Binding
	Menu       key.Binding
	Stats      key.Binding
	Help       key.Binding
	Settings   key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

var keys = keyMap{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "s"),
		key.WithHelp("space/s", "start/pause"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset"),
	),
	Pomodoro: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "pomodoro"),
	),
	ShortBreak: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "short break"),
	),
	LongBreak: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "long break"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mode menu"),
	),
	Stats: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "session log"),
	),
	Help: key.NewBinding(
		key.WithKeys("?", "f1"),
		key.WithHelp("?/f1", "help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "settings"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}
