package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"helidune/audio"
	"helidune/frontend"
	"helidune/game"
)

const defaultConfigPath = "config/game.toml"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", defaultConfigPath, "path to the TOML config")
	levelPath := flag.String("level", "", "path to a YAML level (default: built-in level)")
	flag.Parse()

	// 1. Config
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *levelPath != "" {
		cfg.Level.Path = *levelPath
	}

	// 2. Logger
	log, err := game.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Level
	level, err := game.LoadLevel(cfg.Level.Path)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	// 4. Audio, degrading to silence without a device
	var player game.AudioPlayer = audio.Nop{}
	if cfg.Audio.Enabled {
		p, err := audio.NewPlayer(audio.DefaultSampleRate, log.Named("audio"))
		if err != nil {
			log.Warn("audio unavailable, continuing silently", zap.Error(err))
		} else {
			player = p
		}
	}
	if cfg.Audio.Explosion != "" {
		cfg.Audio.Explosion = filepath.Join(cfg.Resources.Dir, cfg.Audio.Explosion)
	}

	// 5. Simulation
	events := game.NewDispatcher()
	game.LogEvents(events, log.Named("events"))

	g := game.NewGame(cfg, game.Options{
		Controls:   frontend.Keyboard{},
		Audio:      player,
		Clock:      game.NewWallClock(),
		Logger:     log.Named("game"),
		Dispatcher: events,
	})
	defer g.Close()

	if err := g.Setup(level); err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	// 6. Window
	textures, err := frontend.LoadTextures(cfg.Resources.Dir, log)
	if err != nil {
		return fmt.Errorf("textures: %w", err)
	}
	app, err := frontend.NewApp(g, textures, log)
	if err != nil {
		return fmt.Errorf("frontend: %w", err)
	}
	defer app.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	log.Info("exiting", zap.String("outcome", g.Outcome()), zap.Int("frames", g.Frame()))
	return nil
}

// loadConfig reads the config file. A missing file at the default path
// means defaults; a missing file the user named is an error.
func loadConfig(path string) (game.Config, error) {
	cfg, err := game.LoadConfig(path)
	if err != nil && path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return game.DefaultConfig(), nil
	}
	return cfg, err
}
