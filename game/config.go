package game

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable of the game. Durations measured in game time
// are float seconds; wall-clock waits use time.Duration.
type Config struct {
	Window    WindowConfig    `toml:"window"`
	Camera    CameraConfig    `toml:"camera"`
	Physics   PhysicsConfig   `toml:"physics"`
	Player    PlayerConfig    `toml:"player"`
	Weapons   WeaponsConfig   `toml:"weapons"`
	PowerUps  PowerUpConfig   `toml:"powerups"`
	Audio     AudioConfig     `toml:"audio"`
	Resources ResourcesConfig `toml:"resources"`
	Level     LevelConfig     `toml:"level"`
	Logging   LoggingConfig   `toml:"logging"`
	Debug     DebugConfig     `toml:"debug"`
	Session   SessionConfig   `toml:"session"`
}

type WindowConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Title      string `toml:"title"`
	Background string `toml:"background"` // hex colour, e.g. "#336680"
}

type CameraConfig struct {
	Zoom float64 `toml:"zoom"`
}

type PhysicsConfig struct {
	VelocityLimit   float64 `toml:"velocity_limit"`
	CollisionRadius float64 `toml:"collision_radius"`
	AggroRadius     float64 `toml:"aggro_radius"`
	TargetRadius    float64 `toml:"target_radius"`
	ArrowHitRadius  float64 `toml:"arrow_hit_radius"`
}

type PlayerConfig struct {
	ThrustAccel  float64 `toml:"thrust_accel"` // units/s²
	TurnRate     float64 `toml:"turn_rate"`    // degrees/s
	BladeSpin    float64 `toml:"blade_spin"`   // degrees/s
	InitialSpeed float64 `toml:"initial_speed"`
}

type WeaponsConfig struct {
	BulletSpeed    float64 `toml:"bullet_speed"`
	BulletCooldown float64 `toml:"bullet_cooldown"`
	BulletLifetime float64 `toml:"bullet_lifetime"`
	ArrowSpeed     float64 `toml:"arrow_speed"`
	ArrowLifetime  float64 `toml:"arrow_lifetime"`
	ArrowPierce    bool    `toml:"arrow_pierce"`
}

type PowerUpConfig struct {
	InvincibleDuration float64 `toml:"invincible_duration"`
	FreezeDuration     float64 `toml:"freeze_duration"`
	ShieldScale        float64 `toml:"shield_scale"`
}

type AudioConfig struct {
	Enabled   bool          `toml:"enabled"`
	Explosion string        `toml:"explosion"`
	WaitLimit time.Duration `toml:"wait_limit"`
}

type ResourcesConfig struct {
	Dir string `toml:"dir"`
}

type LevelConfig struct {
	Path string `toml:"path"` // empty selects the embedded default level
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type DebugConfig struct {
	ShowHitboxes   bool          `toml:"show_hitboxes"`
	ProfileOnSpike bool          `toml:"profile_on_spike"`
	SpikeThreshold time.Duration `toml:"spike_threshold"`
	ProfilesDir    string        `toml:"profiles_dir"`
}

type SessionConfig struct {
	EndDelay time.Duration `toml:"end_delay"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:      800,
			Height:     600,
			Title:      "Helidune",
			Background: "#336680",
		},
		Camera: CameraConfig{
			Zoom: 0.25,
		},
		Physics: PhysicsConfig{
			VelocityLimit:   DefaultVelocityLimit,
			CollisionRadius: 1.0,
			AggroRadius:     1.5,
			TargetRadius:    0.5,
			ArrowHitRadius:  1.0,
		},
		Player: PlayerConfig{
			ThrustAccel:  3.0,  // 0.05 per frame at 60fps
			TurnRate:     120,  // 2 degrees per frame at 60fps
			BladeSpin:    1000, // blades read as a blur
			InitialSpeed: 0.001,
		},
		Weapons: WeaponsConfig{
			BulletSpeed:    8.0,
			BulletCooldown: 1.0,
			BulletLifetime: 1.0,
			ArrowSpeed:     8.0,
			ArrowLifetime:  3.0,
			ArrowPierce:    true,
		},
		PowerUps: PowerUpConfig{
			InvincibleDuration: 5.0,
			FreezeDuration:     3.0,
			ShieldScale:        0.25,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Explosion: "audio/explosion.wav",
			WaitLimit: 3 * time.Second,
		},
		Resources: ResourcesConfig{
			Dir: "resources",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Debug: DebugConfig{
			SpikeThreshold: 50 * time.Millisecond,
			ProfilesDir:    "profiles",
		},
		Session: SessionConfig{
			EndDelay: 2 * time.Second,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Camera.Zoom <= 0:
		return fmt.Errorf("camera zoom %v must be positive", c.Camera.Zoom)
	case c.Physics.VelocityLimit <= 0:
		return fmt.Errorf("velocity_limit %v must be positive", c.Physics.VelocityLimit)
	case c.Weapons.BulletLifetime <= 0 || c.Weapons.ArrowLifetime <= 0:
		return fmt.Errorf("projectile lifetimes must be positive")
	}
	if _, err := c.Window.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses the window background colour
func (w WindowConfig) BackgroundColor() (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(w.Background, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("background colour %q: %w", w.Background, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
