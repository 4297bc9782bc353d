package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adibhanna/pomodoro/internal/app"
	"github.com/adibhanna/pomodoro/internal/ui/dashboard"
	"github.com/adibhanna/pomodoro/internal/ui/settings"
)

func runTUI(ctrl *app.Controller, exportDir string) error {
	// Main app loop
	for {
		dashboardModel := dashboard.New(ctrl, exportDir)

		// Run the main dashboard
		p := tea.NewProgram(dashboardModel, tea.WithAltScreen())
		finalModel, err := p.Run()
		dashboardModel.Detach()
		if err != nil {
			return err
		}

		// Check if we should quit or open settings
		dashboardModel = finalModel.(dashboard.Model)
		if dashboardModel.ShouldQuit() {
			fmt.Println(">>> See you next session!")
			return nil
		}

		if dashboardModel.ShouldOpenSettings() {
			settingsModel := settings.New(ctrl.Snapshot().Config, ctrl)

			p := tea.NewProgram(settingsModel, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
		}
	}
}
