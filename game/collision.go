package game

import (
	"go.uber.org/zap"
)

// CollisionSystem runs the per-frame update and pairwise interaction scan
type CollisionSystem struct {
	game    *Game
	changes Changes
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(game *Game) *CollisionSystem {
	return &CollisionSystem{
		game: game,
	}
}

// Scan updates every entity and resolves every unordered pair once.
// The handle list is snapshotted up front and removals are deferred until
// the scan ends; entities marked for removal are skipped for the rest of
// the frame.
func (c *CollisionSystem) Scan(deltaTime, now float64) {
	g := c.game
	handles := g.world.Handles()
	c.changes.Reset()

	for i, h := range handles {
		if c.changes.Removed(h) {
			continue
		}
		current, ok := g.world.Get(h)
		if !ok {
			continue
		}

		current.Update(deltaTime, now)
		isPlayer := i == 0 && current.Kind == KindPlayer
		if isPlayer {
			g.updatePlayerExtras(current, deltaTime, now)
		}

		for _, otherHandle := range handles[i+1:] {
			if c.changes.Removed(otherHandle) {
				continue
			}
			other, ok := g.world.Get(otherHandle)
			if !ok {
				continue
			}
			c.interact(current, other, otherHandle, isPlayer, now)
		}

		if isPlayer {
			g.expireEffects(current, now)
		}
	}

	if _, err := g.world.Apply(&c.changes); err != nil {
		g.log.Error("apply removals", zap.Error(err))
	}
}

// interact dispatches the rules for one pair in a fixed order:
// aggro and seek, buoy bounce, destructive collision, pickup
func (c *CollisionSystem) interact(current, other *Entity, otherHandle Handle, isPlayer bool, now float64) {
	g := c.game
	physics := g.config.Physics
	distance := Distance(current.Position, other.Position)

	if isPlayer {
		trackPlayer(current, other, distance, physics.AggroRadius)
	}

	touching := distance < physics.CollisionRadius
	if !touching {
		return
	}

	bothCollidable := current.Collidable && other.Collidable
	if current.Kind == KindBuoy || other.Kind == KindBuoy {
		if bothCollidable {
			ElasticCollision(current, other)
		}
		return
	}

	if !isPlayer {
		return
	}
	if bothCollidable {
		c.destructiveCollision(current, other, otherHandle, now)
		return
	}
	if other.Kind.IsPowerUp() || other.Kind == KindPenguin {
		c.changes.Remove(otherHandle)
		g.pickUp(current, other, now)
	}
}

// destructiveCollision ends the session unless a shield absorbs the hit
func (c *CollisionSystem) destructiveCollision(player, other *Entity, otherHandle Handle, now float64) {
	g := c.game
	if !g.session.Shielded {
		g.lose(player, other, now)
		return
	}

	c.changes.Remove(otherHandle)
	player.ClearShields()
	g.session.BreakShield()
	g.log.Info("shield broken", zap.Stringer("by", other.Kind))
	g.publish(ShieldBroken, other, now, "")

	if IsHostile(other) {
		g.destroyEnemy(other, now, "shield")
	}
}

// lose stops both bodies, swaps textures and plays the explosion
func (g *Game) lose(player, other *Entity, now float64) {
	if g.session.GameOver {
		return
	}
	g.session.Lose()
	player.SetVelocityOverride(zeroVec)
	other.SetVelocityOverride(zeroVec)

	g.log.Info("player destroyed",
		zap.Stringer("by", other.Kind),
		zap.Float64("x", player.Position.X()),
		zap.Float64("y", player.Position.Y()))
	g.publish(GameLost, other, now, "")
	g.playExplosion()
}
