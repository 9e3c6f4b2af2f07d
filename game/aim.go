package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	leadMinSpeed    = 0.1
	leadIterations  = 5
	leadConvergence = 0.001
)

// LeadTarget returns where to aim so a projectile fired from shooter at the
// given speed meets a target moving at constant velocity. Slow or very close
// targets are aimed at directly.
func LeadTarget(shooter, target, targetVelocity mgl64.Vec3, projectileSpeed float64) mgl64.Vec3 {
	if projectileSpeed <= 0 || targetVelocity.Len() < leadMinSpeed {
		return target
	}
	distance := Distance(shooter, target)
	if distance < 1.0 {
		return target
	}

	// Find t with |target + v·t - shooter| = speed·t, starting from the
	// time to reach the current position
	t := distance / projectileSpeed
	for i := 0; i < leadIterations; i++ {
		predicted := target.Add(targetVelocity.Mul(t))
		next := Distance(shooter, predicted) / projectileSpeed
		if math.Abs(next-t) < leadConvergence {
			break
		}
		t = next
	}
	return target.Add(targetVelocity.Mul(t))
}

// HeadingAngle is the entity angle, in degrees, whose heading points along v
func HeadingAngle(v mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(-v.X(), v.Y()))
}

// AngleDiff returns want-have wrapped into [-180, 180)
func AngleDiff(want, have float64) float64 {
	d := math.Mod(want-have+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}
