package game

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Camera.Zoom != 0.25 || cfg.Physics.VelocityLimit != 2.0 {
		t.Errorf("zoom %v limit %v", cfg.Camera.Zoom, cfg.Physics.VelocityLimit)
	}
	if cfg.Weapons.BulletCooldown != 1.0 || cfg.Weapons.ArrowLifetime != 3.0 || !cfg.Weapons.ArrowPierce {
		t.Error("weapon timings drifted")
	}
	if cfg.PowerUps.InvincibleDuration != 5.0 || cfg.PowerUps.FreezeDuration != 3.0 {
		t.Error("power-up timings drifted")
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1024
background = "#102030"

[weapons]
bullet_speed = 12.5

[audio]
wait_limit = "750ms"

[logging]
format = "json"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 600 {
		t.Errorf("window = %dx%d, want 1024x600", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Weapons.BulletSpeed != 12.5 || cfg.Weapons.BulletLifetime != 1.0 {
		t.Errorf("weapons = %+v", cfg.Weapons)
	}
	if cfg.Audio.WaitLimit != 750*time.Millisecond {
		t.Errorf("wait_limit = %v", cfg.Audio.WaitLimit)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "info" {
		t.Errorf("logging = %+v", cfg.Logging)
	}

	bg, err := cfg.Window.BackgroundColor()
	if err != nil || bg != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("background = %v, %v", bg, err)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad toml", "[window\nwidth = 3"},
		{"zero zoom", "[camera]\nzoom = 0"},
		{"negative width", "[window]\nwidth = -1"},
		{"bad colour", "[window]\nbackground = \"blue\""},
	}
	for _, tt := range tests {
		if _, err := LoadConfig(writeConfig(t, tt.body)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing file: expected an error")
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "config", "game.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("sample config drifted from defaults:\n got %+v\nwant %+v", cfg, DefaultConfig())
	}
}
