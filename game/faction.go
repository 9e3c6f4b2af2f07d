package game

import "image/color"

// Faction groups kinds by how the player relates to them
type Faction int

const (
	FactionPlayer Faction = iota
	FactionHostile
	FactionPickup
	FactionNeutral
)

// FactionConfig holds configuration for each faction
type FactionConfig struct {
	Faction Faction
	Color   color.RGBA // Debug overlay colour
}

var (
	// FactionConfigs holds configuration for each faction
	FactionConfigs = map[Faction]FactionConfig{
		FactionPlayer: {
			Faction: FactionPlayer,
			Color:   color.RGBA{0, 255, 0, 255},
		},
		FactionHostile: {
			Faction: FactionHostile,
			Color:   color.RGBA{255, 0, 0, 255},
		},
		FactionPickup: {
			Faction: FactionPickup,
			Color:   color.RGBA{255, 215, 0, 255},
		},
		FactionNeutral: {
			Faction: FactionNeutral,
			Color:   color.RGBA{120, 120, 120, 255},
		},
	}
)

// GetFactionConfig returns configuration for a faction
func GetFactionConfig(faction Faction) FactionConfig {
	if config, ok := FactionConfigs[faction]; ok {
		return config
	}
	return FactionConfig{
		Faction: faction,
		Color:   color.RGBA{255, 100, 0, 255}, // Orange fallback
	}
}

// KindFaction returns the faction a kind belongs to
func KindFaction(kind Kind) Faction {
	switch kind {
	case KindPlayer, KindBullet, KindArrow, KindShieldOrb:
		return FactionPlayer
	case KindEnemy, KindSeeker:
		return FactionHostile
	case KindShieldPowerUp, KindStarPowerUp, KindArrowPowerUp, KindPenguin:
		return FactionPickup
	default:
		return FactionNeutral
	}
}

// IsHostile reports whether projectiles may target an entity
func IsHostile(e *Entity) bool {
	return e != nil && KindFaction(e.Kind) == FactionHostile
}
