package game

import (
	"go.uber.org/zap"
)

// spawnProjectile creates a projectile at the player's position flying along
// its heading. Projectile speeds exceed the normal clamp, so the override
// setter is used.
func (g *Game) spawnProjectile(player *Entity, weapon WeaponConfig) *Entity {
	p := NewEntity(weapon.Kind, player.Position)
	p.Angle = player.Angle
	p.SetVelocityOverride(HeadingVector(player.Angle).Mul(weapon.Speed))
	return p
}

// fireBullet fires when no bullet is live and the cooldown has passed
func (g *Game) fireBullet(player *Entity, now float64) bool {
	return g.fire(player, g.bulletWeapon, now)
}

// fireArrow consumes the arrow power-up
func (g *Game) fireArrow(player *Entity, now float64) bool {
	return g.fire(player, g.arrowWeapon, now)
}

// canFire reports whether a weapon is ready: ammo when it needs some, at
// most one live projectile, and the cooldown
func (g *Game) canFire(weapon WeaponConfig, now float64) bool {
	if weapon.NeedsAmmo && !g.session.ArrowAvailable {
		return false
	}
	if weapon.Type == WeaponTypeArrow {
		return g.session.CanFireArrow() && now-g.session.LastArrowFired >= weapon.Cooldown
	}
	return g.session.CanFireBullet(now, weapon.Cooldown)
}

func (g *Game) fire(player *Entity, weapon WeaponConfig, now float64) bool {
	if !g.canFire(weapon, now) {
		return false
	}

	p := g.spawnProjectile(player, weapon)
	g.origins[weapon.Type] = p.Position
	event := BulletFired
	switch weapon.Type {
	case WeaponTypeArrow:
		player.setArrow(p)
		g.session.ArrowFired(now)
		event = ArrowFired
	default:
		player.setBullet(p)
		g.session.BulletFired(now)
	}

	g.log.Debug("projectile fired",
		zap.Stringer("weapon", weapon.Type),
		zap.Float64("t", now),
		zap.Float64("angle", player.Angle))
	g.publish(event, p, now, "")
	return true
}

// projectile returns the live projectile of a weapon, or nil
func (g *Game) projectile(weapon WeaponConfig) *Entity {
	player, ok := g.world.Player()
	if !ok {
		return nil
	}
	if weapon.Type == WeaponTypeArrow {
		return player.Arrow()
	}
	return player.Bullet()
}

func (g *Game) firedAt(weapon WeaponConfig) float64 {
	if weapon.Type == WeaponTypeArrow {
		return g.session.LastArrowFired
	}
	return g.session.LastBulletFired
}

// updateProjectiles runs once per frame after the pair scan
func (g *Game) updateProjectiles(player *Entity, deltaTime, now float64) {
	g.updateProjectile(player, g.bulletWeapon, deltaTime, now)
	g.updateProjectile(player, g.arrowWeapon, deltaTime, now)
}

// updateProjectile advances a live projectile, destroys the hostile it hits
// and expires it after its lifetime. Piercing projectiles survive a kill.
func (g *Game) updateProjectile(player *Entity, weapon WeaponConfig, deltaTime, now float64) {
	p := g.projectile(weapon)
	if p == nil {
		return
	}
	p.Update(deltaTime, now)
	elapsed := now - g.firedAt(weapon)

	var (
		h   Handle
		hit bool
	)
	switch weapon.HitTest {
	case HitTestRay:
		h, hit = g.rayTarget(weapon, p, elapsed, deltaTime)
	case HitTestOverlap:
		h, hit = g.overlapTarget(weapon, p)
	}

	if hit {
		target, _ := g.world.Get(h)
		if err := g.world.Remove(h); err != nil {
			g.log.Warn("projectile target removal", zap.Stringer("weapon", weapon.Type), zap.Error(err))
		} else {
			g.destroyEnemy(target, now, weapon.Type.String())
			if !weapon.Pierce {
				g.clearProjectile(player, weapon)
				return
			}
		}
	}

	if elapsed >= weapon.Lifetime {
		g.clearProjectile(player, weapon)
	}
}

// rayTarget picks the hostile the projectile reaches first along its line of
// flight. Times are measured from the moment of firing, so a hit resolves
// only once the projectile could have travelled there. A hostile whose whole
// crossing lies more than a frame in the past is behind the projectile and
// is skipped, as is one reached only after the projectile expires.
func (g *Game) rayTarget(weapon WeaponConfig, p *Entity, elapsed, deltaTime float64) (Handle, bool) {
	var (
		target Handle
		found  bool
		best   = weapon.Lifetime
	)
	origin := g.origins[weapon.Type]
	for i := 1; i < g.world.Len(); i++ {
		e := g.world.At(i)
		if !IsHostile(e) {
			continue
		}
		enter, exit, ok := RayCircle(origin, p.Velocity(), e.Position, weapon.Radius)
		if !ok || exit < 0 || exit < elapsed-deltaTime {
			continue
		}
		if enter < 0 {
			enter = 0
		}
		if enter < best {
			best = enter
			target = g.world.HandleAt(i)
			found = true
		}
	}
	if !found || elapsed < best {
		return Handle{}, false
	}
	return target, true
}

// overlapTarget returns the first hostile within the weapon radius
func (g *Game) overlapTarget(weapon WeaponConfig, p *Entity) (Handle, bool) {
	for i := 1; i < g.world.Len(); i++ {
		e := g.world.At(i)
		if IsHostile(e) && Distance(p.Position, e.Position) <= weapon.Radius {
			return g.world.HandleAt(i), true
		}
	}
	return Handle{}, false
}

func (g *Game) clearProjectile(player *Entity, weapon WeaponConfig) {
	if weapon.Type == WeaponTypeArrow {
		player.setArrow(nil)
		g.session.ClearArrow()
		return
	}
	player.setBullet(nil)
	g.session.ClearBullet()
}

// destroyEnemy does the bookkeeping for a hostile that left the registry
func (g *Game) destroyEnemy(e *Entity, now float64, cause string) {
	g.session.EnemyDestroyed()
	g.log.Info("enemy destroyed",
		zap.Stringer("kind", e.Kind),
		zap.String("by", cause),
		zap.Int("remaining", g.session.RemainingEnemies))
	g.publish(EnemyDestroyed, e, now, cause)
}
