package alarm

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneLength = 180 * time.Millisecond
	gapLength  = 90 * time.Millisecond
)

// chime is the alarm melody in Hz; zero is a pause.
var chime = []float64{880, 0, 660, 0, 880, 0, 660}

// Speaker plays a synthesised chime on the default audio device.
type Speaker struct {
	initOnce sync.Once
	initErr  error
	mu       sync.Mutex
}

func NewSpeaker() *Speaker {
	return &Speaker{}
}

func (s *Speaker) init() error {
	s.initOnce.Do(func() {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			s.initErr = fmt.Errorf("%w: init speaker: %v", ErrUnavailable, err)
		}
	})
	return s.initErr
}

func (s *Speaker) Play(ctx context.Context, volume int) error {
	volume = clampVolume(volume)
	if volume == 0 {
		return nil
	}
	if err := s.init(); err != nil {
		return err
	}

	// One chime at a time; a second expiry waits for the first to finish.
	s.mu.Lock()
	defer s.mu.Unlock()

	done := make(chan struct{})
	speaker.Play(beep.Seq(withVolume(melody(), volume), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}

// withVolume maps 0-100 onto a base-2 gain: 100 is unchanged, 50 is one step quieter.
func withVolume(streamer beep.Streamer, volume int) beep.Streamer {
	return &effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   gain(volume),
		Silent:   volume <= 0,
	}
}

func gain(volume int) float64 {
	volume = clampVolume(volume)
	if volume == 0 {
		return math.Inf(-1)
	}
	return math.Log2(float64(volume) / 100)
}

func melody() beep.Streamer {
	parts := make([]beep.Streamer, 0, len(chime))
	for _, freq := range chime {
		if freq == 0 {
			parts = append(parts, silence(sampleRate.N(gapLength)))
			continue
		}
		parts = append(parts, tone(freq, sampleRate.N(toneLength)))
	}
	return beep.Seq(parts...)
}

func tone(freq float64, samples int) beep.Streamer {
	step := 2 * math.Pi * freq / float64(sampleRate)
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= samples {
			return 0, false
		}
		n := 0
		for i := range buf {
			if pos >= samples {
				break
			}
			// Short linear fade in and out avoids clicks.
			envelope := 1.0
			fade := samples / 20
			if pos < fade {
				envelope = float64(pos) / float64(fade)
			} else if samples-pos < fade {
				envelope = float64(samples-pos) / float64(fade)
			}
			v := 0.4 * envelope * math.Sin(step*float64(pos))
			buf[i][0], buf[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

func silence(samples int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if pos >= samples {
			return 0, false
		}
		n := 0
		for i := range buf {
			if pos >= samples {
				break
			}
			buf[i][0], buf[i][1] = 0, 0
			pos++
			n++
		}
		return n, true
	})
}
