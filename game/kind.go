package game

import (
	"fmt"
	"strings"
)

// Kind is the behavioral tag of an entity. It selects both the per-frame
// behavior update and the pairwise interaction rules.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindSeeker
	KindPenguin
	KindBuoy
	KindShieldOrb
	KindBackground
	KindBullet
	KindArrow
	KindShieldPowerUp
	KindStarPowerUp
	KindArrowPowerUp
	KindGeneric
	KindCount // Total number of kinds
)

var kindNames = [KindCount]string{
	KindPlayer:        "player",
	KindEnemy:         "enemy",
	KindSeeker:        "seeker",
	KindPenguin:       "penguin",
	KindBuoy:          "buoy",
	KindShieldOrb:     "shield_orb",
	KindBackground:    "background",
	KindBullet:        "bullet",
	KindArrow:         "arrow",
	KindShieldPowerUp: "shield_power_up",
	KindStarPowerUp:   "star_power_up",
	KindArrowPowerUp:  "arrow_power_up",
	KindGeneric:       "generic",
}

// String returns the level-file name of the kind
func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind converts a level-file name into a Kind
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return KindGeneric, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// UnmarshalText lets level files name kinds directly
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// IsPowerUp reports whether the kind is a collectible power-up
func (k Kind) IsPowerUp() bool {
	switch k {
	case KindShieldPowerUp, KindStarPowerUp, KindArrowPowerUp:
		return true
	}
	return false
}

// KindConfig holds the spawn defaults for each kind
type KindConfig struct {
	Kind       Kind
	Texture    TextureID
	Collidable bool
	Scale      float64
	Mass       float64
	State      AIState
}

// GetKindConfig returns spawn defaults for a kind
func GetKindConfig(kind Kind) KindConfig {
	switch kind {
	case KindPlayer:
		return KindConfig{Kind: kind, Texture: TexturePlayer, Collidable: true, Scale: 1.0, Mass: 1.0}
	case KindEnemy:
		return KindConfig{Kind: kind, Texture: TextureEnemy, Collidable: true, Scale: 1.0, Mass: 1.0, State: StatePatrolling}
	case KindSeeker:
		return KindConfig{Kind: kind, Texture: TextureSeeker, Collidable: true, Scale: 1.0, Mass: 1.0}
	case KindPenguin:
		// Penguins are picked up, so they stay out of destructive collisions
		return KindConfig{Kind: kind, Texture: TexturePenguin, Collidable: false, Scale: 1.0, Mass: 1.0, State: StatePatrolling}
	case KindBuoy:
		return KindConfig{Kind: kind, Texture: TextureBuoy, Collidable: true, Scale: 1.0, Mass: 2.0}
	case KindShieldOrb:
		return KindConfig{Kind: kind, Texture: TextureOrb, Collidable: false, Scale: 0.25}
	case KindBackground:
		return KindConfig{Kind: kind, Texture: TextureBackground, Collidable: false, Scale: 10.0}
	case KindBullet:
		return KindConfig{Kind: kind, Texture: TextureBullet, Collidable: false, Scale: 1.0}
	case KindArrow:
		return KindConfig{Kind: kind, Texture: TextureArrow, Collidable: false, Scale: 1.0}
	case KindShieldPowerUp:
		return KindConfig{Kind: kind, Texture: TextureShieldPowerUp, Collidable: false, Scale: 1.0}
	case KindStarPowerUp:
		return KindConfig{Kind: kind, Texture: TextureStarPowerUp, Collidable: false, Scale: 1.0}
	case KindArrowPowerUp:
		return KindConfig{Kind: kind, Texture: TextureArrowPowerUp, Collidable: false, Scale: 1.0}
	default:
		return KindConfig{Kind: KindGeneric, Texture: TextureBlade, Collidable: false, Scale: 1.0}
	}
}
