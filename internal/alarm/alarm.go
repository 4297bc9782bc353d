package alarm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Player plays the alarm at a volume between 0 and 100. Play may block until
// playback finishes; callers that must not block run it on a goroutine.
type Player interface {
	Play(ctx context.Context, volume int) error
}

// ErrUnavailable is returned when no audio device can be used.
var ErrUnavailable = errors.New("alarm playback unavailable")

// Muted never makes a sound.
type Muted struct{}

func (Muted) Play(context.Context, int) error { return nil }

// Bell rings the terminal bell by writing BEL to W.
type Bell struct {
	mu sync.Mutex
	W  io.Writer
}

func NewBell(w io.Writer) *Bell {
	return &Bell{W: w}
}

func (b *Bell) Play(ctx context.Context, volume int) error {
	if volume <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if b.W == nil {
		return ErrUnavailable
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, err := io.WriteString(b.W, "\a"); err != nil {
		return fmt.Errorf("ring terminal bell: %w", err)
	}
	return nil
}

type fallback []Player

// Fallback tries each player in order until one succeeds.
func Fallback(players ...Player) Player {
	return fallback(players)
}

func (f fallback) Play(ctx context.Context, volume int) error {
	var errs []error
	for _, player := range f {
		err := player.Play(ctx, volume)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return ErrUnavailable
	}
	return errors.Join(errs...)
}

// clampVolume keeps volume within 0-100.
func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}
