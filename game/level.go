package game

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

//go:embed levels/default.yaml
var defaultLevel []byte

// Level is a spawn table. The first entry must be the player.
type Level struct {
	Name     string       `yaml:"name"`
	Entities []SpawnEntry `yaml:"entities"`
}

// SpawnEntry describes one entity, or a grid of identical ones
type SpawnEntry struct {
	Kind        Kind         `yaml:"kind"`
	X           float64      `yaml:"x"`
	Y           float64      `yaml:"y"`
	Angle       float64      `yaml:"angle"`
	Scale       *float64     `yaml:"scale"`
	Mass        *float64     `yaml:"mass"`
	Collidable  *bool        `yaml:"collidable"`
	State       AIState      `yaml:"state"`
	Texture     *TextureID   `yaml:"texture"`
	Grid        *GridSpec    `yaml:"grid"`
	Attachments []SpawnEntry `yaml:"attachments"`
}

// GridSpec repeats an entry on a centred grid
type GridSpec struct {
	Cols    int     `yaml:"cols"`
	Rows    int     `yaml:"rows"`
	Spacing float64 `yaml:"spacing"`
}

// UnmarshalText lets level files name textures directly
func (t *TextureID) UnmarshalText(text []byte) error {
	for id, name := range textureNames {
		if name == string(text) {
			*t = TextureID(id)
			return nil
		}
	}
	return fmt.Errorf("unknown texture %q", text)
}

// DefaultLevel returns the embedded level
func DefaultLevel() (*Level, error) {
	return ParseLevel(defaultLevel)
}

// LoadLevel reads a level file, or the embedded default when path is empty
func LoadLevel(path string) (*Level, error) {
	if path == "" {
		return DefaultLevel()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return level, nil
}

// ParseLevel decodes and validates a YAML spawn table
func ParseLevel(data []byte) (*Level, error) {
	var level Level
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&level); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := level.Validate(); err != nil {
		return nil, err
	}
	return &level, nil
}

// Validate checks that exactly one player leads the table
func (l *Level) Validate() error {
	if len(l.Entities) == 0 || l.Entities[0].Kind != KindPlayer || l.Entities[0].Grid != nil {
		return ErrNoPlayer
	}
	for i, e := range l.Entities[1:] {
		if e.Kind == KindPlayer {
			return fmt.Errorf("entity %d: second player: %w", i+1, ErrNoPlayer)
		}
		if e.Grid != nil && (e.Grid.Cols <= 0 || e.Grid.Rows <= 0) {
			return fmt.Errorf("entity %d: grid needs positive cols and rows", i+1)
		}
	}
	return nil
}

// Build expands the entry into entities, one per grid cell
func (s SpawnEntry) Build() []*Entity {
	if s.Grid == nil {
		return []*Entity{s.build(s.X, s.Y)}
	}

	entities := make([]*Entity, 0, s.Grid.Cols*s.Grid.Rows)
	offsetX := float64(s.Grid.Cols-1) / 2
	offsetY := float64(s.Grid.Rows-1) / 2
	for row := 0; row < s.Grid.Rows; row++ {
		for col := 0; col < s.Grid.Cols; col++ {
			x := s.X + (float64(col)-offsetX)*s.Grid.Spacing
			y := s.Y + (float64(row)-offsetY)*s.Grid.Spacing
			entities = append(entities, s.build(x, y))
		}
	}
	return entities
}

func (s SpawnEntry) build(x, y float64) *Entity {
	e := NewEntity(s.Kind, mgl64.Vec3{x, y, 0})
	e.Angle = s.Angle
	if s.Scale != nil {
		e.Scale = *s.Scale
	}
	if s.Mass != nil {
		e.Mass = *s.Mass
	}
	if s.Collidable != nil {
		e.Collidable = *s.Collidable
	}
	if s.State != "" {
		e.State = s.State
	}
	if s.Texture != nil {
		e.Texture = *s.Texture
	}
	for _, a := range s.Attachments {
		e.AddAttachment(a.build(0, 0))
	}
	return e
}
