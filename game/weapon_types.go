package game

// WeaponType defines the player's two projectile weapons
type WeaponType int

const (
	WeaponTypeBullet WeaponType = iota
	WeaponTypeArrow
)

func (w WeaponType) String() string {
	if w == WeaponTypeArrow {
		return "arrow"
	}
	return "bullet"
}

// HitTest selects how a projectile finds its target
type HitTest int

const (
	// HitTestRay solves a ray-circle intersection and resolves the hit
	// when the projectile reaches the target
	HitTestRay HitTest = iota
	// HitTestOverlap checks plain radius overlap every frame
	HitTestOverlap
)

// WeaponConfig holds configuration for each weapon type
type WeaponConfig struct {
	Type      WeaponType
	Kind      Kind    // Kind of the spawned projectile
	Speed     float64 // Units per second along the heading
	Cooldown  float64 // Seconds between shots
	Lifetime  float64 // Seconds before forced expiry
	Radius    float64 // Target circle or overlap radius
	HitTest   HitTest
	Pierce    bool // Stays live after a kill
	NeedsAmmo bool // Requires the power-up flag
}

// GetWeaponConfig returns configuration for a weapon type
func GetWeaponConfig(weaponType WeaponType, weapons WeaponsConfig, physics PhysicsConfig) WeaponConfig {
	switch weaponType {
	case WeaponTypeArrow:
		return WeaponConfig{
			Type:      WeaponTypeArrow,
			Kind:      KindArrow,
			Speed:     weapons.ArrowSpeed,
			Lifetime:  weapons.ArrowLifetime,
			Radius:    physics.ArrowHitRadius,
			HitTest:   HitTestOverlap,
			Pierce:    weapons.ArrowPierce,
			NeedsAmmo: true,
		}
	default:
		return WeaponConfig{
			Type:     WeaponTypeBullet,
			Kind:     KindBullet,
			Speed:    weapons.BulletSpeed,
			Cooldown: weapons.BulletCooldown,
			Lifetime: weapons.BulletLifetime,
			Radius:   physics.TargetRadius,
			HitTest:  HitTestRay,
		}
	}
}
