package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"helidune/game"
)

// writeWav writes n frames of stereo silence at the given rate
func writeWav(t *testing.T, rate beep.SampleRate, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "silence.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(n), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

type capture struct {
	streamers []beep.Streamer
}

func (c *capture) output(s beep.Streamer) {
	c.streamers = append(c.streamers, s)
}

// drain plays a streamer to its end the way the speaker would
func drain(s beep.Streamer) int {
	samples := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(samples)
		total += n
		if !ok {
			return total
		}
	}
}

func TestPlayerLifecycle(t *testing.T) {
	c := &capture{}
	p := newPlayer(DefaultSampleRate, c.output, nil)

	id, err := p.Load(writeWav(t, DefaultSampleRate, 1000))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.AnyPlaying() {
		t.Error("playing before Play")
	}

	if err := p.Play(id); err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := p.Play(id); err != nil {
		t.Fatalf("second Play: %v", err)
	}
	if !p.IsPlaying(id) || !p.AnyPlaying() {
		t.Fatal("sound not reported as playing")
	}

	if n := drain(c.streamers[0]); n != 1000 {
		t.Errorf("streamed %d frames, want 1000", n)
	}
	if !p.IsPlaying(id) {
		t.Error("overlapping copy should still be playing")
	}
	drain(c.streamers[1])
	if p.AnyPlaying() {
		t.Error("still playing after both copies finished")
	}
}

func TestPlayerResamples(t *testing.T) {
	c := &capture{}
	p := newPlayer(DefaultSampleRate, c.output, nil)

	id, err := p.Load(writeWav(t, 22050, 500))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := p.Play(id); err != nil {
		t.Fatal(err)
	}
	if n := drain(c.streamers[0]); n < 950 || n > 1050 {
		t.Errorf("resampled length = %d, want about 1000", n)
	}
}

func TestPlayerErrors(t *testing.T) {
	p := newPlayer(DefaultSampleRate, func(beep.Streamer) {}, nil)

	if _, err := p.Load(filepath.Join(t.TempDir(), "missing.wav")); err == nil {
		t.Error("expected an error for a missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.wav")
	if err := os.WriteFile(bad, []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Load(bad); err == nil {
		t.Error("expected a decode error")
	}

	if err := p.Play(game.SoundID(3)); !errors.Is(err, ErrUnknownSound) {
		t.Errorf("Play unknown = %v, want ErrUnknownSound", err)
	}
	if p.IsPlaying(game.SoundID(-1)) {
		t.Error("negative id reported as playing")
	}
}

func TestShutdown(t *testing.T) {
	c := &capture{}
	closed := 0
	p := newPlayer(DefaultSampleRate, c.output, nil)
	p.close = func() { closed++ }

	id, err := p.Load(writeWav(t, DefaultSampleRate, 100))
	if err != nil {
		t.Fatal(err)
	}
	_ = p.Play(id)

	p.Shutdown()
	p.Shutdown()
	if closed != 1 {
		t.Errorf("device closed %d times, want 1", closed)
	}
	if p.AnyPlaying() {
		t.Error("playing after Shutdown")
	}

	// A streamer finishing after shutdown must not drive the count negative
	drain(c.streamers[0])
	if err := p.Play(id); err != nil || len(c.streamers) != 1 {
		t.Error("Play after Shutdown should be a silent no-op")
	}
}

func TestNop(t *testing.T) {
	var a game.AudioPlayer = Nop{}
	id, err := a.Load("anything.wav")
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Play(id); err != nil || a.AnyPlaying() {
		t.Error("Nop should accept everything and play nothing")
	}
}
