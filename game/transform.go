package game

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ComputeTransform builds translate(position) * rotateZ(angle) * scale and
// caches the intermediate matrices. The movement matrix (translation and
// rotation, no scale) is what attachments and shield orbs are placed in.
func (e *Entity) ComputeTransform() mgl64.Mat4 {
	e.translation = mgl64.Translate3D(e.Position.X(), e.Position.Y(), 0)
	e.rotation = rotationZ(e.Angle)
	e.movement = e.translation.Mul4(e.rotation)
	e.transform = e.movement.Mul4(scaling(e.Scale))
	return e.transform
}

// AttachedTransform places an attachment in its parent's movement frame,
// spun by its own angle
func (e *Entity) AttachedTransform(parent *Entity) mgl64.Mat4 {
	e.rotation = rotationZ(e.Angle)
	e.translation = mgl64.Ident4()
	e.movement = parent.movement.Mul4(e.rotation)
	e.transform = e.movement.Mul4(scaling(e.Scale))
	return e.transform
}

// OrbitTransform places a shield orb at its orbit offset around the parent.
// The offset is carried in the orb's velocity, which the orbit update rewrites
// every frame.
func (e *Entity) OrbitTransform(parent *Entity) mgl64.Mat4 {
	offset := e.velocity
	e.translation = mgl64.Translate3D(offset.X(), offset.Y(), 0)
	e.rotation = mgl64.Ident4()
	e.movement = parent.movement.Mul4(e.translation)
	e.transform = e.movement.Mul4(scaling(e.Scale))
	return e.transform
}

// Transform returns the last computed model matrix
func (e *Entity) Transform() mgl64.Mat4 {
	return e.transform
}

// Movement returns the last computed translation*rotation matrix
func (e *Entity) Movement() mgl64.Mat4 {
	return e.movement
}

// ViewMatrix builds the camera: a uniform zoom applied to a look-at that
// keeps the target centred
func ViewMatrix(target mgl64.Vec3, zoom float64) mgl64.Mat4 {
	eye := mgl64.Vec3{target.X(), target.Y(), 0}
	center := eye.Add(mgl64.Vec3{0, 0, -1})
	up := mgl64.Vec3{0, 1, 0}
	return mgl64.Scale3D(zoom, zoom, zoom).Mul4(mgl64.LookAtV(eye, center, up))
}

// HeadingVector returns the unit vector a sprite at the given angle points along.
// Sprites face +Y at angle 0.
func HeadingVector(angleDegrees float64) mgl64.Vec3 {
	rad := mgl64.DegToRad(angleDegrees)
	return mgl64.Vec3{-math.Sin(rad), math.Cos(rad), 0}
}

// AngleBetween returns the unsigned angle between two vectors in degrees
func AngleBetween(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	cos := mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// normalizeSafe returns v scaled to unit length, or the zero vector
func normalizeSafe(v mgl64.Vec3) mgl64.Vec3 {
	if v.Len() == 0 {
		return mgl64.Vec3{}
	}
	return v.Normalize()
}

func rotationZ(angleDegrees float64) mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(mgl64.DegToRad(angleDegrees))
}

func scaling(s float64) mgl64.Mat4 {
	return mgl64.Scale3D(s, s, 1)
}
