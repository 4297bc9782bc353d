package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/adibhanna/pomodoro/internal/models"
)

func TestBackSetsQuitAndReopenClears(t *testing.T) {
	m := New(models.DefaultConfig())

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	m = updated.(Model)
	assert.True(t, m.ShouldQuit())
	assert.Nil(t, cmd)

	cfg := models.DefaultConfig()
	cfg.LongBreakInterval = 3
	m = m.Reopen(cfg)
	assert.False(t, m.ShouldQuit())
	assert.Contains(t, m.View(), "After every 3 Pomodoros")
}

func TestViewListsKeys(t *testing.T) {
	view := New(models.DefaultConfig()).View()

	assert.Contains(t, view, "Start or pause the countdown")
	assert.Contains(t, view, "Pomodoro: 25 min")
}
