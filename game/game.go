package game

import (
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Options wires the collaborators of a Game. Nil fields get safe defaults.
type Options struct {
	Controls   Controls
	Audio      AudioPlayer
	Clock      Clock
	Logger     *zap.Logger
	Dispatcher *Dispatcher
}

// Game owns the registry and session state and drives one frame at a time
type Game struct {
	config Config
	log    *zap.Logger

	world      *World
	collisions *CollisionSystem
	session    SessionState
	events     *Dispatcher

	controls Controls
	audio    AudioPlayer
	clock    Clock
	sleep    func(time.Duration)

	bulletWeapon WeaponConfig
	arrowWeapon  WeaponConfig
	origins      [2]mgl64.Vec3 // launch points, by WeaponType

	explosionSound  SoundID
	explosionLoaded bool

	quit      bool
	wonSeen   bool
	frame     int
	levelName string
}

// NewGame creates a new game instance
func NewGame(config Config, opts Options) *Game {
	g := &Game{
		config:       config,
		log:          opts.Logger,
		world:        NewWorld(64),
		events:       opts.Dispatcher,
		controls:     opts.Controls,
		audio:        opts.Audio,
		clock:        opts.Clock,
		sleep:        time.Sleep,
		bulletWeapon: GetWeaponConfig(WeaponTypeBullet, config.Weapons, config.Physics),
		arrowWeapon:  GetWeaponConfig(WeaponTypeArrow, config.Weapons, config.Physics),
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.events == nil {
		g.events = NewDispatcher()
	}
	if g.controls == nil {
		g.controls = noControls{}
	}
	if g.clock == nil {
		g.clock = NewWallClock()
	}
	g.collisions = NewCollisionSystem(g)
	g.session = NewSessionState(0, 0)
	return g
}

// Setup spawns a level, replacing whatever was there
func (g *Game) Setup(level *Level) error {
	if err := level.Validate(); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	g.world.Clear()
	for _, entry := range level.Entities {
		for _, e := range entry.Build() {
			g.Spawn(e)
		}
	}

	player, _ := g.world.Player()
	if player.Velocity() == zeroVec {
		player.SetVelocityOverride(mgl64.Vec3{0, g.config.Player.InitialSpeed, 0})
	}

	enemies := g.world.Count(KindEnemy) + g.world.Count(KindSeeker)
	powerUps := g.world.Count(KindShieldPowerUp) + g.world.Count(KindStarPowerUp) + g.world.Count(KindArrowPowerUp)
	g.session = NewSessionState(enemies, powerUps)
	g.quit = false
	g.wonSeen = false
	g.frame = 0
	g.levelName = level.Name

	g.log.Info("session started",
		zap.String("level", level.Name),
		zap.Int("entities", g.world.Len()),
		zap.Int("enemies", enemies),
		zap.Int("power_ups", powerUps))
	return nil
}

// Spawn registers an entity with the configured velocity limit
func (g *Game) Spawn(e *Entity) Handle {
	e.SetVelocityLimit(g.config.Physics.VelocityLimit)
	return g.world.Spawn(e)
}

// Step advances the simulation by one frame: input, the entity update and
// pair scan, then projectiles. Nothing happens once the session is over.
func (g *Game) Step(deltaTime float64) {
	if g.Over() {
		return
	}
	player, ok := g.world.Player()
	if !ok {
		return
	}
	now := g.clock.Now()

	g.handleControls(player, deltaTime, now)
	g.collisions.Scan(deltaTime, now)
	if !g.session.Lost {
		g.updateProjectiles(player, deltaTime, now)
	}
	g.frame++

	if g.session.Won() && !g.wonSeen {
		g.wonSeen = true
		g.log.Info("all enemies destroyed", zap.Int("frames", g.frame))
		g.publish(GameWon, player, now, "")
	}
}

// Over reports whether the session has ended or quit was requested
func (g *Game) Over() bool {
	return g.quit || g.session.Over()
}

// Quit reports whether the player asked to quit
func (g *Game) Quit() bool {
	return g.quit
}

// Session returns a copy of the session state
func (g *Game) Session() SessionState {
	return g.session
}

// World exposes the registry
func (g *Game) World() *World {
	return g.world
}

// Player returns the player entity
func (g *Game) Player() (*Entity, bool) {
	return g.world.Player()
}

// Frame returns the number of completed steps
func (g *Game) Frame() int {
	return g.frame
}

// LevelName returns the name of the running level
func (g *Game) LevelName() string {
	return g.levelName
}

// Config returns the configuration the game runs with
func (g *Game) Config() Config {
	return g.config
}

// Events returns the dispatcher events are published on
func (g *Game) Events() *Dispatcher {
	return g.events
}

// Outcome describes how the session ended
func (g *Game) Outcome() string {
	switch {
	case g.session.Lost:
		return "lost"
	case g.session.Won():
		return "won"
	case g.quit:
		return "quit"
	default:
		return "running"
	}
}

// Close releases the audio device
func (g *Game) Close() {
	if g.audio != nil {
		g.audio.Shutdown()
	}
}

func (g *Game) publish(t EventType, e *Entity, now float64, detail string) {
	g.events.Dispatch(Event{
		Type:     t,
		Kind:     e.Kind,
		Position: e.Position,
		Time:     now,
		Detail:   detail,
	})
}
