// Package frontend runs the simulation in an ebiten window.
package frontend

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"helidune/game"
)

// maxFrameTime caps the step so a stall does not teleport entities
const maxFrameTime = 0.1

// App adapts a game.Game to ebiten.Game
type App struct {
	game       *game.Game
	config     game.Config
	renderer   *ScreenRenderer
	hud        *HUD
	profiler   *game.Profiler
	log        *zap.Logger
	background color.RGBA

	lastUpdate time.Time
	endedAt    time.Time
}

var _ ebiten.Game = (*App)(nil)

// NewApp wires a set-up game to the window. The game's Controls should be
// a Keyboard.
func NewApp(g *game.Game, textures *Textures, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := g.Config()
	bg, err := cfg.Window.BackgroundColor()
	if err != nil {
		return nil, err
	}

	a := &App{
		game:       g,
		config:     cfg,
		renderer:   NewScreenRenderer(textures),
		hud:        NewHUD(),
		log:        log,
		background: bg,
		lastUpdate: time.Now(),
	}
	if cfg.Debug.ProfileOnSpike {
		a.profiler = game.NewProfiler(cfg.Debug.ProfilesDir, log.Named("profiler"))
	}
	game.GetDebugState().ShowHitboxes = cfg.Debug.ShowHitboxes
	return a, nil
}

// Update advances the simulation by the wall-clock time since the last call
func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdate).Seconds()
	a.lastUpdate = now
	if deltaTime > maxFrameTime {
		deltaTime = maxFrameTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := game.GetDebugState()
		debugState.ShowHitboxes = !debugState.ShowHitboxes
	}

	if a.game.Over() {
		return a.linger(now)
	}

	start := time.Now()
	a.game.Step(deltaTime)
	a.checkSpike(time.Since(start))

	if a.game.Quit() {
		return ebiten.Termination
	}
	return nil
}

// linger keeps the end screen up for the configured delay
func (a *App) linger(now time.Time) error {
	if a.game.Quit() {
		return ebiten.Termination
	}
	if a.endedAt.IsZero() {
		a.endedAt = now
		a.log.Info("session over", zap.String("outcome", a.game.Outcome()), zap.Int("frames", a.game.Frame()))
	}
	if now.Sub(a.endedAt) >= a.config.Session.EndDelay {
		return ebiten.Termination
	}
	return nil
}

// checkSpike starts a profile capture when a frame runs long. The frame that
// waits on the explosion sound is expected to be slow and is skipped.
func (a *App) checkSpike(elapsed time.Duration) {
	if a.profiler == nil || elapsed < a.config.Debug.SpikeThreshold || a.game.Session().Lost {
		return
	}
	reason := fmt.Sprintf("frame%dms-entities%d", elapsed.Milliseconds(), a.game.World().Len())
	if err := a.profiler.CaptureProfile(reason); err != nil {
		a.log.Debug("profile skipped", zap.Error(err))
		return
	}
	a.log.Warn("frame spike, capturing profile", zap.Duration("elapsed", elapsed))
}

// Draw renders the scene and the HUD
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.renderer.Begin(screen)
	a.game.Render(a.renderer)
	a.renderer.DrawIndicators(a.game)

	debug := game.GetDebugState().ShowHitboxes
	if debug {
		a.renderer.DrawHitboxes(a.game.Hitboxes())
	}
	a.hud.Draw(screen, a.game.Session(), debug)
}

// Layout returns the game's screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.config.Window.Width, a.config.Window.Height
}

// Close waits for any profile capture still writing
func (a *App) Close() {
	if a.profiler != nil {
		a.profiler.Wait()
	}
}
