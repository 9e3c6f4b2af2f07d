package game

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

const frame = 1.0 / 60.0

var errTest = errors.New("test failure")

type testRig struct {
	game     *Game
	clock    *ManualClock
	controls *ControlState
	audio    *fakeAudio
	events   []Event
}

// newRig builds a game over a hand-written spawn table. The first entry is
// always a player at the origin.
func newRig(t *testing.T, entries ...SpawnEntry) *testRig {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Audio.WaitLimit = 50 * time.Millisecond

	rig := &testRig{
		clock:    NewManualClock(0),
		controls: &ControlState{},
		audio:    &fakeAudio{},
	}
	dispatcher := NewDispatcher()
	dispatcher.SubscribeAll(ListenerFunc(func(e Event) {
		rig.events = append(rig.events, e)
	}))

	rig.game = NewGame(cfg, Options{
		Controls:   rig.controls,
		Audio:      rig.audio,
		Clock:      rig.clock,
		Dispatcher: dispatcher,
	})
	rig.game.sleep = func(time.Duration) {}

	level := &Level{
		Name:     "test",
		Entities: append([]SpawnEntry{{Kind: KindPlayer}}, entries...),
	}
	if err := rig.game.Setup(level); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return rig
}

// step runs one frame at the current clock time and then advances the clock
func (r *testRig) step(dt float64) {
	r.game.Step(dt)
	r.clock.Advance(dt)
}

func (r *testRig) player(t *testing.T) *Entity {
	t.Helper()
	p, ok := r.game.Player()
	if !ok {
		t.Fatal("no player")
	}
	return p
}

func (r *testRig) count(t EventType) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func at(kind Kind, x, y float64) SpawnEntry {
	return SpawnEntry{Kind: kind, X: x, Y: y}
}

type fakeAudio struct {
	loaded    []string
	plays     int
	pollsLeft int
	shutdown  bool
	loadErr   error
}

func (a *fakeAudio) Load(path string) (SoundID, error) {
	if a.loadErr != nil {
		return 0, a.loadErr
	}
	a.loaded = append(a.loaded, path)
	return SoundID(len(a.loaded) - 1), nil
}

func (a *fakeAudio) Play(SoundID) error {
	a.plays++
	a.pollsLeft = 3
	return nil
}

func (a *fakeAudio) IsPlaying(SoundID) bool { return a.pollsLeft > 0 }

func (a *fakeAudio) AnyPlaying() bool {
	if a.pollsLeft > 0 {
		a.pollsLeft--
		return true
	}
	return false
}

func (a *fakeAudio) Shutdown() { a.shutdown = true }

type drawCall struct {
	model   mgl64.Mat4
	texture TextureID
}

type recordingRenderer struct {
	view  mgl64.Mat4
	draws []drawCall
}

func (r *recordingRenderer) SetView(view mgl64.Mat4) { r.view = view }

func (r *recordingRenderer) Draw(model mgl64.Mat4, texture TextureID) {
	r.draws = append(r.draws, drawCall{model: model, texture: texture})
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// approxVec compares component-wise with an absolute tolerance. mgl64's
// ApproxEqualThreshold is relative and fails on residues next to zero.
func approxVec(a, b mgl64.Vec3) bool {
	return approxVecWithin(a, b, 1e-9)
}

func approxVecWithin(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) >= eps {
			return false
		}
	}
	return true
}
