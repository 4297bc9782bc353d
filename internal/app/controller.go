package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/adibhanna/pomodoro/internal/alarm"
	"github.com/adibhanna/pomodoro/internal/config"
	"github.com/adibhanna/pomodoro/internal/models"
	"github.com/adibhanna/pomodoro/internal/pomodoro"
	"github.com/adibhanna/pomodoro/internal/scheduler"
	"github.com/adibhanna/pomodoro/internal/storage"
)

// PlayTimeout bounds a single alarm playback.
const PlayTimeout = 30 * time.Second

// Snapshot is what the UI renders.
type Snapshot struct {
	State      pomodoro.State
	Config     models.Config
	Display    string  // MM:SS
	Progress   float64 // 0-1 of the current countdown
	Last       *pomodoro.Transition
	TodayStats models.DayStats
	Closed     bool
}

// Options wires the controller's collaborators. Nil fields get defaults.
type Options struct {
	Store     *config.Store
	Scheduler scheduler.Scheduler
	Player    alarm.Player
	Storage   *storage.Storage
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// Controller owns the timer and everything around it. All timer mutations
// happen under one mutex, including ticks arriving from the scheduler.
type Controller struct {
	mu         sync.Mutex
	timer      *pomodoro.Timer
	store      *config.Store
	sched      scheduler.Scheduler
	player     alarm.Player
	storage    *storage.Storage
	clock      clockwork.Clock
	logger     *slog.Logger
	generation uint64
	ticking    bool
	last       *pomodoro.Transition
	subs       map[int]chan Snapshot
	nextSub    int
	closed     bool
	playing    sync.WaitGroup
}

func New(opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Store == nil {
		opts.Store = config.NewStore(models.DefaultConfig())
	}
	if opts.Scheduler == nil {
		opts.Scheduler = scheduler.NewTicker(opts.Clock, time.Second)
	}
	if opts.Player == nil {
		opts.Player = alarm.Muted{}
	}
	if opts.Storage == nil {
		opts.Storage = storage.New(opts.Clock)
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	c := &Controller{
		timer:   pomodoro.New(opts.Store.Get()),
		store:   opts.Store,
		sched:   opts.Scheduler,
		player:  opts.Player,
		storage: opts.Storage,
		clock:   opts.Clock,
		logger:  opts.Logger,
		subs:    make(map[int]chan Snapshot),
	}
	c.timer.SetAlarm(c.ringAlarm)
	opts.Store.OnChange(c.configChanged)
	return c
}

// Storage exposes the session log for the stats screen.
func (c *Controller) Storage() *storage.Storage {
	return c.storage
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Subscribe returns a channel receiving a snapshot after every change and a
// function to stop receiving. Slow subscribers miss intermediate snapshots.
func (c *Controller) Subscribe(buffer int) (<-chan Snapshot, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Snapshot, buffer)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch, func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if sub, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(sub)
			}
		})
	}
}

// Toggle starts or pauses the countdown.
func (c *Controller) Toggle() {
	c.mutate(func() {
		c.timer.Toggle()
	})
}

func (c *Controller) Start() {
	c.mutate(c.timer.Start)
}

func (c *Controller) Pause() {
	c.mutate(c.timer.Stop)
}

// Reset refills the current mode's countdown and stops it.
func (c *Controller) Reset() {
	c.mutate(c.timer.Reset)
}

// SetMode switches mode; the countdown restarts stopped.
func (c *Controller) SetMode(mode pomodoro.Mode) {
	c.mutate(func() {
		c.timer.SetMode(mode)
		c.cancelLocked()
	})
}

// UpdateConfig validates and stores cfg. Timing changes reset the countdown.
func (c *Controller) UpdateConfig(cfg models.Config) error {
	return c.store.Replace(cfg)
}

// Close cancels the tick source, waits for any alarm in flight and closes
// all subscriptions. Further calls are no-ops.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.timer.Stop()
	c.cancelLocked()
	final := c.snapshotLocked()
	subs := c.subs
	c.subs = make(map[int]chan Snapshot)
	c.mu.Unlock()

	for _, ch := range subs {
		offer(ch, final)
		close(ch)
	}
	c.playing.Wait()
}

func (c *Controller) configChanged(previous, current models.Config) {
	c.mutate(func() {
		// The old source always goes; mutate starts a fresh one if the
		// countdown is still running.
		c.cancelLocked()
		if c.timer.ApplyConfig(current) {
			c.logger.Info("Configuration changed, countdown reset",
				"mode", c.timer.State().Mode.Key(),
				"remaining", c.timer.State().Remaining)
			return
		}
		c.logger.Debug("Configuration changed", "alarm_volume", current.AlarmVolume)
	})
}

// mutate runs fn under the lock, then brings the scheduler in line with the
// running flag and notifies subscribers.
func (c *Controller) mutate(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	fn()
	c.syncSchedulerLocked()
	c.publishLocked()
}

func (c *Controller) syncSchedulerLocked() {
	running := c.timer.State().Running
	switch {
	case running && !c.ticking:
		c.generation++
		gen := c.generation
		c.ticking = true
		c.sched.Start(func() { c.tick(gen) })
	case !running && c.ticking:
		c.cancelLocked()
	}
}

func (c *Controller) cancelLocked() {
	c.generation++
	if c.ticking {
		c.ticking = false
		c.sched.Cancel()
	}
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.generation {
		return
	}

	before := c.timer.State()
	transition, elapsed := c.timer.Tick()
	if elapsed {
		// The old mode's source ends here; an auto-started mode gets a fresh one.
		c.cancelLocked()
		c.recordLocked(before.Mode, transition)
	}
	c.syncSchedulerLocked()
	c.publishLocked()
}

func (c *Controller) recordLocked(finished pomodoro.Mode, transition pomodoro.Transition) {
	cfg := c.timer.Config()
	interval := c.storage.Record(models.Interval{
		Mode:           finished.Key(),
		PlannedMinutes: pomodoro.Minutes(cfg, finished),
		EndTime:        c.clock.Now(),
	})
	c.last = &transition
	c.logger.Info("Interval finished",
		"id", interval.ID,
		"mode", finished.Key(),
		"next", transition.To.Key(),
		"completed", transition.Completed,
		"auto_started", transition.AutoStarted)
}

// ringAlarm is called by the timer with the lock held; playback must not block it.
func (c *Controller) ringAlarm(volume int) {
	c.playing.Add(1)
	go func() {
		defer c.playing.Done()
		ctx, cancel := context.WithTimeout(context.Background(), PlayTimeout)
		defer cancel()
		if err := c.player.Play(ctx, volume); err != nil {
			c.logger.Warn("Alarm playback failed", "volume", volume, "error", err)
		}
	}()
}

func (c *Controller) snapshotLocked() Snapshot {
	state := c.timer.State()
	return Snapshot{
		State:      state,
		Config:     c.timer.Config(),
		Display:    pomodoro.FormatTime(state.Remaining),
		Progress:   c.timer.Progress(),
		Last:       c.last,
		TodayStats: c.storage.GetTodayStats(),
		Closed:     c.closed,
	}
}

func (c *Controller) publishLocked() {
	if len(c.subs) == 0 {
		return
	}
	snap := c.snapshotLocked()
	for _, ch := range c.subs {
		offer(ch, snap)
	}
}

// offer sends without blocking, dropping the oldest buffered snapshot if needed.
func offer(ch chan Snapshot, snap Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}
