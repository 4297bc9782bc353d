package scheduler

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func expectTick(t *testing.T, ticks <-chan struct{}) {
	t.Helper()
	select {
	case <-ticks:
	case <-time.After(2 * time.Second):
		t.Fatal("expected a tick")
	}
}

func expectNoTick(t *testing.T, ticks <-chan struct{}) {
	t.Helper()
	select {
	case <-ticks:
		t.Fatal("unexpected tick")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestTickerFiresEachInterval(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := NewTicker(clock, time.Second)
	ticks := make(chan struct{}, 10)

	ticker.Start(func() { ticks <- struct{}{} })
	defer ticker.Cancel()

	for i := 0; i < 3; i++ {
		clock.Advance(time.Second)
		expectTick(t, ticks)
	}
	assert.True(t, ticker.Running())
}

func TestTickerCancelStopsTicks(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := NewTicker(clock, time.Second)
	ticks := make(chan struct{}, 10)

	ticker.Start(func() { ticks <- struct{}{} })
	ticker.Cancel()
	assert.False(t, ticker.Running())

	clock.Advance(5 * time.Second)
	expectNoTick(t, ticks)
}

func TestTickerStartReplacesPreviousSource(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := NewTicker(clock, time.Second)
	first := make(chan struct{}, 10)
	second := make(chan struct{}, 10)

	ticker.Start(func() { first <- struct{}{} })
	ticker.Start(func() { second <- struct{}{} })
	defer ticker.Cancel()

	clock.Advance(time.Second)
	expectTick(t, second)
	expectNoTick(t, first)
}

func TestTickerCancelFromInsideTick(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticker := NewTicker(clock, time.Second)
	done := make(chan struct{})

	ticker.Start(func() {
		ticker.Cancel()
		close(done)
	})
	clock.Advance(time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tick did not run")
	}
	assert.False(t, ticker.Running())
}

func TestNewTickerDefaults(t *testing.T) {
	ticker := NewTicker(nil, 0)
	assert.Equal(t, time.Second, ticker.interval)
	assert.NotNil(t, ticker.clock)
	assert.False(t, ticker.Running())
}
