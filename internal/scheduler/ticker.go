package scheduler

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Scheduler is a periodic tick source owned by the UI layer.
type Scheduler interface {
	// Start begins calling tick once per interval, replacing any previous source.
	// The underlying ticker is registered before Start returns.
	Start(tick func())
	// Cancel stops the current source. It never waits for an in-flight tick.
	Cancel()
}

// Ticker runs tick on its own goroutine at a fixed cadence.
type Ticker struct {
	clock    clockwork.Clock
	interval time.Duration

	mu     sync.Mutex
	stopCh chan struct{}
}

// NewTicker creates a ticker. A zero interval means one second.
func NewTicker(clock clockwork.Clock, interval time.Duration) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{clock: clock, interval: interval}
}

func (t *Ticker) Start(tick func()) {
	t.mu.Lock()
	t.stopLocked()
	stopCh := make(chan struct{})
	t.stopCh = stopCh
	ticker := t.clock.NewTicker(t.interval)
	t.mu.Unlock()

	go t.run(ticker, stopCh, tick)
}

func (t *Ticker) Cancel() {
	t.mu.Lock()
	t.stopLocked()
	t.mu.Unlock()
}

// Running reports whether a source is active.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopCh != nil
}

func (t *Ticker) stopLocked() {
	if t.stopCh != nil {
		close(t.stopCh)
		t.stopCh = nil
	}
}

func (t *Ticker) run(ticker clockwork.Ticker, stopCh chan struct{}, tick func()) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.Chan():
			// Cancel may have raced with the tick.
			select {
			case <-stopCh:
				return
			default:
			}
			tick()
		}
	}
}
