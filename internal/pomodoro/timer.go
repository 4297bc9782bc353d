package pomodoro

import (
	"github.com/adibhanna/pomodoro/internal/models"
)

// State is a copy of the timer's observable state.
type State struct {
	Mode      Mode
	Remaining int // seconds
	Running   bool
	Completed int // pomodoros finished since start-up
}

// Transition describes what happened when a countdown reached zero.
type Transition struct {
	From        Mode
	To          Mode
	Completed   int
	AutoStarted bool
}

// AlarmFunc is called once per expiry with the configured volume. It must not block.
type AlarmFunc func(volume int)

// Timer is the countdown state machine. It holds no clock and starts no
// goroutines; the owner calls Tick once per elapsed second while it runs.
type Timer struct {
	config models.Config
	state  State
	alarm  AlarmFunc
}

// New creates a timer in Pomodoro mode, stopped, with a full countdown.
func New(config models.Config) *Timer {
	timer := &Timer{config: config}
	timer.SetMode(Pomodoro)
	return timer
}

// SetAlarm installs the hook fired when a countdown expires.
func (t *Timer) SetAlarm(alarm AlarmFunc) {
	t.alarm = alarm
}

// State returns the current state.
func (t *Timer) State() State {
	return t.state
}

// Config returns the configuration the timer derives durations from.
func (t *Timer) Config() models.Config {
	return t.config
}

// SetMode switches mode, refills the countdown and stops the timer.
func (t *Timer) SetMode(mode Mode) {
	t.state.Mode = mode
	t.state.Remaining = Seconds(t.config, mode)
	t.state.Running = false
}

// Start runs the countdown. It does nothing when no time is left.
func (t *Timer) Start() {
	if t.state.Remaining <= 0 {
		return
	}
	t.state.Running = true
}

// Stop pauses the countdown, keeping the remaining time.
func (t *Timer) Stop() {
	t.state.Running = false
}

// Toggle flips between running and paused and returns the new running flag.
func (t *Timer) Toggle() bool {
	if t.state.Running {
		t.Stop()
	} else {
		t.Start()
	}
	return t.state.Running
}

// Reset stops the timer and refills the countdown for the current mode.
// The completed-pomodoro count is left alone.
func (t *Timer) Reset() {
	t.SetMode(t.state.Mode)
}

// ApplyConfig replaces the configuration. When any duration or the long
// break interval changed the current countdown is reset and true is returned.
func (t *Timer) ApplyConfig(config models.Config) bool {
	previous := t.config
	t.config = config
	if previous.SameTiming(config) {
		return false
	}
	t.Reset()
	return true
}

// Tick consumes one elapsed second. When the countdown reaches zero the timer
// stops, the alarm fires and the next mode is selected; the transition is
// returned with ok set. Ticks on a stopped timer are ignored.
func (t *Timer) Tick() (Transition, bool) {
	if !t.state.Running {
		return Transition{}, false
	}

	t.state.Remaining--
	if t.state.Remaining > 0 {
		return Transition{}, false
	}

	t.state.Remaining = 0
	t.state.Running = false
	if t.alarm != nil {
		t.alarm(t.config.AlarmVolume)
	}
	return t.advance(), true
}

func (t *Timer) advance() Transition {
	transition := Transition{From: t.state.Mode}

	if t.state.Mode == Pomodoro {
		t.state.Completed++
		next := ShortBreak
		if t.config.LongBreakInterval > 0 && t.state.Completed%t.config.LongBreakInterval == 0 {
			next = LongBreak
		}
		t.SetMode(next)
		if t.config.AutoStartBreaks {
			t.Start()
		}
	} else {
		t.SetMode(Pomodoro)
		if t.config.AutoStartPomodoros {
			t.Start()
		}
	}

	transition.To = t.state.Mode
	transition.Completed = t.state.Completed
	transition.AutoStarted = t.state.Running
	return transition
}

// Progress returns the fraction of the current countdown already spent.
func (t *Timer) Progress() float64 {
	total := Seconds(t.config, t.state.Mode)
	if total <= 0 {
		return 1
	}
	progress := float64(total-t.state.Remaining) / float64(total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}
