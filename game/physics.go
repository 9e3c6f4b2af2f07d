package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ElasticCollision applies a 2D elastic impulse between two bodies along the
// line joining their centres. Momentum is conserved; equal masses exchange
// their normal velocity components.
func ElasticCollision(a, b *Entity) {
	totalMass := a.Mass + b.Mass
	if totalMass == 0 {
		return
	}

	normal := a.Position.Sub(b.Position)
	normal[2] = 0
	if normal.Len() == 0 {
		return
	}
	normal = normal.Normalize()

	v1 := a.velocity
	v2 := b.velocity
	approach := normal.Dot(v1.Sub(v2))

	a.SetVelocity(v1.Sub(normal.Mul(2 * b.Mass / totalMass * approach)))
	b.SetVelocity(v2.Add(normal.Mul(2 * a.Mass / totalMass * approach)))
}

// RayCircle solves |origin + t*direction - center| = radius for t and returns
// both roots in ascending order. ok is false when the ray misses the circle or
// the direction has zero length.
func RayCircle(origin, direction, center mgl64.Vec3, radius float64) (t1, t2 float64, ok bool) {
	f := mgl64.Vec3{origin[0] - center[0], origin[1] - center[1], 0}
	d := mgl64.Vec3{direction[0], direction[1], 0}

	a := d.Dot(d)
	if a == 0 {
		return 0, 0, false
	}
	b := 2 * f.Dot(d)
	c := f.Dot(f) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	root := math.Sqrt(discriminant)
	t1 = (-b - root) / (2 * a)
	t2 = (-b + root) / (2 * a)
	return t1, t2, true
}
