// Package audio plays the game's sound effects through the system speaker.
package audio

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"helidune/game"
)

const (
	// DefaultSampleRate is the speaker rate; sounds in other rates are resampled
	DefaultSampleRate = beep.SampleRate(44100)

	resampleQuality = 4
)

// ErrUnknownSound is returned when playing an id that was never loaded
var ErrUnknownSound = errors.New("unknown sound")

var _ game.AudioPlayer = (*Player)(nil)

// Player decodes wav files into memory and mixes them onto the speaker
type Player struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	sounds     []*beep.Buffer
	playing    []int // live streamers per sound
	output     func(beep.Streamer)
	close      func()
	log        *zap.Logger
	closed     bool
}

// NewPlayer opens the speaker at the given sample rate
func NewPlayer(sampleRate beep.SampleRate, log *zap.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := newPlayer(sampleRate, func(s beep.Streamer) { speaker.Play(s) }, log)
	p.close = func() {
		speaker.Clear()
		speaker.Close()
	}
	return p, nil
}

func newPlayer(sampleRate beep.SampleRate, output func(beep.Streamer), log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{
		sampleRate: sampleRate,
		output:     output,
		close:      func() {},
		log:        log,
	}
}

// Load decodes a wav file into a buffer and returns its id
func (p *Player) Load(path string) (game.SoundID, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open sound: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var source beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, streamer)
		format.SampleRate = p.sampleRate
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(source)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.sounds = append(p.sounds, buffer)
	p.playing = append(p.playing, 0)
	id := game.SoundID(len(p.sounds) - 1)

	p.log.Debug("sound loaded",
		zap.String("path", path),
		zap.Int("id", int(id)),
		zap.Duration("length", format.SampleRate.D(buffer.Len())))
	return id, nil
}

// Play starts a sound from the beginning. The same sound may overlap itself.
func (p *Player) Play(id game.SoundID) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	if id < 0 || int(id) >= len(p.sounds) {
		p.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownSound, id)
	}
	buffer := p.sounds[id]
	p.playing[id]++
	p.mu.Unlock()

	// The callback runs on the speaker goroutine, so p.mu must not be held here
	p.output(beep.Seq(
		buffer.Streamer(0, buffer.Len()),
		beep.Callback(func() {
			p.mu.Lock()
			if p.playing[id] > 0 {
				p.playing[id]--
			}
			p.mu.Unlock()
		}),
	))
	return nil
}

// IsPlaying reports whether any copy of a sound is still playing
func (p *Player) IsPlaying(id game.SoundID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id < 0 || int(id) >= len(p.playing) {
		return false
	}
	return p.playing[id] > 0
}

// AnyPlaying reports whether any sound is still playing
func (p *Player) AnyPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, n := range p.playing {
		if n > 0 {
			return true
		}
	}
	return false
}

// Shutdown stops playback and releases the device. Safe to call twice.
func (p *Player) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for i := range p.playing {
		p.playing[i] = 0
	}
	p.mu.Unlock()

	p.close()
	p.log.Debug("audio shut down")
}
