package timer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adibhanna/pomodoro/internal/app"
	"github.com/adibhanna/pomodoro/internal/pomodoro"
)

func TestBigTime(t *testing.T) {
	rendered := BigTime("25:00")
	lines := strings.Split(rendered, "\n")

	assert.Len(t, lines, 5)
	assert.Equal(t, "███ ███   ███ ███", lines[0])
	assert.Equal(t, "  █ █   █ █ █ █ █", lines[1])
}

func TestBigTimeSkipsUnknownRunes(t *testing.T) {
	assert.Equal(t, BigTime("1"), BigTime("1x"))
}

func TestStatus(t *testing.T) {
	m := New()

	m = m.SetSnapshot(app.Snapshot{State: pomodoro.State{Mode: pomodoro.Pomodoro}})
	assert.Equal(t, "Press space to start", m.status())

	m = m.SetSnapshot(app.Snapshot{State: pomodoro.State{Mode: pomodoro.Pomodoro, Running: true}})
	assert.Contains(t, m.status(), "Focus")

	m = m.SetSnapshot(app.Snapshot{State: pomodoro.State{Mode: pomodoro.ShortBreak, Running: true}})
	assert.Contains(t, m.status(), "Break")

	m = m.SetSnapshot(app.Snapshot{State: pomodoro.State{Mode: pomodoro.Pomodoro}, Progress: 0.4})
	assert.Contains(t, m.status(), "PAUSED")

	m = m.SetSnapshot(app.Snapshot{
		State: pomodoro.State{Mode: pomodoro.LongBreak},
		Last:  &pomodoro.Transition{From: pomodoro.Pomodoro, To: pomodoro.LongBreak},
	})
	assert.Equal(t, "Time's up! Press space to start the long break", m.status())
}

func TestViewContainsStatus(t *testing.T) {
	m := New().SetSnapshot(app.Snapshot{
		State:   pomodoro.State{Mode: pomodoro.Pomodoro, Remaining: 1500},
		Display: "25:00",
	})

	assert.Contains(t, m.View(), "Press space to start")
}
