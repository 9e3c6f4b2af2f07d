package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// behaviorFunc shapes an entity's velocity before integration
type behaviorFunc func(e *Entity, now float64)

// behaviors is the per-kind update table. Every kind has an entry.
var behaviors = [KindCount]behaviorFunc{
	KindPlayer:        steerAlongHeading,
	KindEnemy:         patrol,
	KindSeeker:        idle,
	KindPenguin:       patrol,
	KindBuoy:          idle,
	KindShieldOrb:     orbit,
	KindBackground:    idle,
	KindBullet:        idle,
	KindArrow:         idle,
	KindShieldPowerUp: idle,
	KindStarPowerUp:   idle,
	KindArrowPowerUp:  idle,
	KindGeneric:       idle,
}

func idle(*Entity, float64) {}

// steerAlongHeading keeps the player's speed but points it along the heading,
// so turning never changes speed
func steerAlongHeading(e *Entity, _ float64) {
	speed := e.velocity.Len()
	e.SetVelocity(HeadingVector(e.Angle).Mul(speed))
}

// patrol drives the idle circular motion of enemies and penguins
func patrol(e *Entity, now float64) {
	if e.State != StatePatrolling {
		return
	}
	e.SetVelocity(orbitVelocity(now, 0))
}

// orbit rewrites a shield orb's orbit offset, which rides in its velocity
func orbit(e *Entity, now float64) {
	e.SetVelocityOverride(orbitVelocity(now, e.Phase))
}

func orbitVelocity(now, phase float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(now + phase), math.Sin(now + phase), 0}
}

// faceToward points an entity at a target with unit speed
func faceToward(e *Entity, target mgl64.Vec3) {
	direction := normalizeSafe(target.Sub(e.Position))
	e.SetVelocity(direction)
	e.Angle = AngleBetween(direction, mgl64.Vec3{1, 0, 0}) + 90
}

// trackPlayer runs the proximity state machine for one entity against the
// player. Enemies and penguins switch between patrolling and moving at the
// aggro radius with no hysteresis; seekers always chase.
func trackPlayer(player, other *Entity, distance, aggroRadius float64) {
	switch other.Kind {
	case KindEnemy, KindPenguin:
		if distance < aggroRadius {
			other.State = StateMoving
			faceToward(other, player.Position)
		} else {
			other.State = StatePatrolling
		}
	case KindSeeker:
		faceToward(other, player.Position)
	}
}
