package main

import (
	"math"

	"helidune/game"
)

const (
	aimTolerance  = 4.0 // degrees
	approachRange = 3.0
)

// autopilot steers the player toward the nearest hostile and shoots at it
type autopilot struct {
	game.ControlState
}

// plan sets the controls for the next frame
func (a *autopilot) plan(g *game.Game) {
	a.Reset()
	player, ok := g.Player()
	if !ok {
		return
	}
	target, ok := nearestHostile(g.World(), player)
	if !ok {
		return
	}

	// Lead moving targets by the bullet's flight time
	aim := game.LeadTarget(player.Position, target.Position, target.Velocity(), g.Config().Weapons.BulletSpeed)
	diff := game.AngleDiff(game.HeadingAngle(aim.Sub(player.Position)), player.Angle)
	switch {
	case diff > aimTolerance:
		a.Press(game.ActionTurnLeft)
	case diff < -aimTolerance:
		a.Press(game.ActionTurnRight)
	default:
		a.Press(game.ActionFireBullet, game.ActionFireArrow)
	}

	if player.DistanceTo(target) > approachRange {
		a.Press(game.ActionThrustForward)
	} else if player.Speed() > 0.5 {
		a.Press(game.ActionThrustBackward)
	}
}

func nearestHostile(w *game.World, player *game.Entity) (*game.Entity, bool) {
	var best *game.Entity
	bestDist := math.Inf(1)
	for i := 0; i < w.Len(); i++ {
		e := w.At(i)
		if !game.IsHostile(e) {
			continue
		}
		if d := player.DistanceTo(e); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}
