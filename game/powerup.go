package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

var zeroVec = mgl64.Vec3{}

// ShieldOffsets are the starting positions of the shield orbs relative to the player
var ShieldOffsets = [...]mgl64.Vec3{
	{0, 1, 0},
	{1, -0.5, 0},
	{-1, -0.5, 0},
	{-1, -0.5, 0},
	{-1, -0.5, 0},
	{-1, -0.5, 0},
}

// pickUp applies the effect of a collected power-up or penguin. The caller
// has already queued the pickup for removal.
func (g *Game) pickUp(player, pickup *Entity, now float64) {
	switch pickup.Kind {
	case KindShieldPowerUp:
		g.session.PowerUpCollected()
		if g.session.RaiseShield() {
			g.spawnShieldRing(player)
		}
	case KindStarPowerUp:
		g.session.PowerUpCollected()
		player.Collidable = false
		g.session.StartInvincibility(now)
	case KindArrowPowerUp:
		g.session.PowerUpCollected()
		g.session.GrantArrow()
	case KindPenguin:
		g.session.StartFreeze(now)
		player.SetVelocityOverride(zeroVec)
		g.log.Info("player frozen", zap.Float64("seconds", g.config.PowerUps.FreezeDuration))
		g.publish(Frozen, pickup, now, "")
		return
	default:
		return
	}

	g.log.Info("power-up collected",
		zap.Stringer("kind", pickup.Kind),
		zap.Int("remaining", g.session.RemainingPowerUps))
	g.publish(PowerUpCollected, pickup, now, "")
}

// spawnShieldRing surrounds the player with orbs. Each orb carries its orbit
// offset in its velocity and a phase spacing it evenly around the ring once
// it starts orbiting.
func (g *Game) spawnShieldRing(player *Entity) {
	player.ClearShields()
	for i, offset := range ShieldOffsets {
		orb := NewEntity(KindShieldOrb, player.Position.Add(offset))
		orb.Scale = g.config.PowerUps.ShieldScale
		orb.Phase = float64(i) * 2 * math.Pi / float64(len(ShieldOffsets))
		orb.SetVelocityOverride(offset)
		player.AddShield(orb)
	}
}

// expireEffects closes invincibility and freeze windows
func (g *Game) expireEffects(player *Entity, now float64) {
	ended := g.session.ExpireEffects(now,
		g.config.PowerUps.InvincibleDuration,
		g.config.PowerUps.FreezeDuration)

	if ended&EffectInvincible != 0 {
		player.Collidable = true
		g.log.Info("invincibility ended")
		g.publish(EffectExpired, player, now, EffectInvincible.String())
	}
	if ended&EffectFrozen != 0 {
		g.log.Info("freeze ended")
		g.publish(EffectExpired, player, now, EffectFrozen.String())
	}
}

// updatePlayerExtras spins the blades and moves the shield orbs along their
// orbit. Runs before the player's pairs are scanned so a freshly raised
// ring keeps its starting offsets for one frame.
func (g *Game) updatePlayerExtras(player *Entity, deltaTime, now float64) {
	spin := g.config.Player.BladeSpin * deltaTime
	for _, a := range player.Attachments {
		a.Angle += spin
	}
	for _, orb := range player.Shields {
		orb.Update(deltaTime, now)
	}
}
