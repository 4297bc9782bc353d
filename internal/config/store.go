package config

import (
	"sync"

	"github.com/adibhanna/pomodoro/internal/models"
)

// Listener is told about every accepted configuration change.
type Listener func(previous, current models.Config)

// Store holds the live configuration. Writes are validated; rejected writes
// leave the stored value untouched.
type Store struct {
	writeMu   sync.Mutex
	mu        sync.RWMutex
	config    models.Config
	listeners []Listener
}

func NewStore(config models.Config) *Store {
	return &Store{config: config}
}

func (s *Store) Get() models.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// OnChange registers a listener. Listeners run on the writer's goroutine,
// in registration order, after the new value is visible through Get.
func (s *Store) OnChange(listener Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, listener)
	s.mu.Unlock()
}

// Replace validates and stores config, then notifies listeners.
// Writing the current value again is accepted without notification.
func (s *Store) Replace(config models.Config) error {
	if err := Validate(config); err != nil {
		return err
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.replaceLocked(config)
	return nil
}

// Update applies fn to a copy of the current configuration and stores the result.
func (s *Store) Update(fn func(*models.Config)) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Get()
	fn(&next)
	if err := Validate(next); err != nil {
		return err
	}
	s.replaceLocked(next)
	return nil
}

func (s *Store) replaceLocked(config models.Config) {
	s.mu.Lock()
	previous := s.config
	if previous == config {
		s.mu.Unlock()
		return
	}
	s.config = config
	listeners := append([]Listener(nil), s.listeners...)
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(previous, config)
	}
}
