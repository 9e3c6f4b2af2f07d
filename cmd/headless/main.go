// Command headless plays a level without a window. An autopilot flies the
// helicopter on a fixed time step and the outcome is printed at the end.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"helidune/audio"
	"helidune/game"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to the TOML config (default: built-in defaults)")
	levelPath := flag.String("level", "", "path to a YAML level (default: built-in level)")
	frames := flag.Int("frames", 3600, "maximum frames to simulate")
	dt := flag.Float64("dt", 1.0/60.0, "seconds per frame")
	flag.Parse()

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}
	if *frames <= 0 || *dt <= 0 {
		return fmt.Errorf("frames and dt must be positive")
	}

	log, err := game.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	level, err := game.LoadLevel(cfg.Level.Path)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	result, err := simulate(cfg, level, *frames, *dt, log)
	if err != nil {
		return err
	}
	fmt.Printf("level=%s outcome=%s frames=%d time=%.2fs enemies_left=%d powerups_left=%d\n",
		result.level, result.outcome, result.frames, result.seconds,
		result.session.RemainingEnemies, result.session.RemainingPowerUps)
	return nil
}

type result struct {
	level   string
	outcome string
	frames  int
	seconds float64
	session game.SessionState
}

// simulate runs the level until it ends or the frame budget runs out
func simulate(cfg game.Config, level *game.Level, frames int, dt float64, log *zap.Logger) (result, error) {
	clock := game.NewManualClock(0)
	pilot := &autopilot{}
	events := game.NewDispatcher()
	game.LogEvents(events, log.Named("events"))

	g := game.NewGame(cfg, game.Options{
		Controls:   pilot,
		Audio:      audio.Nop{},
		Clock:      clock,
		Logger:     log.Named("game"),
		Dispatcher: events,
	})
	defer g.Close()

	if err := g.Setup(level); err != nil {
		return result{}, fmt.Errorf("setup: %w", err)
	}

	for g.Frame() < frames && !g.Over() {
		pilot.plan(g)
		g.Step(dt)
		clock.Advance(dt)
	}

	return result{
		level:   g.LevelName(),
		outcome: g.Outcome(),
		frames:  g.Frame(),
		seconds: clock.Now(),
		session: g.Session(),
	}, nil
}
