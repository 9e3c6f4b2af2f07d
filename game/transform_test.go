package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestComputeTransform(t *testing.T) {
	e := NewEntity(KindEnemy, mgl64.Vec3{3, 4, 0})
	e.Angle = 90
	e.Scale = 2

	m := e.ComputeTransform()

	// The quad corner (0.5, 0) is scaled to (1, 0), rotated to (0, 1),
	// then translated
	got := mgl64.TransformCoordinate(mgl64.Vec3{0.5, 0, 0}, m)
	if !approxVec(got, mgl64.Vec3{3, 5, 0}) {
		t.Errorf("corner = %v, want (3, 5, 0)", got)
	}

	origin := mgl64.TransformCoordinate(mgl64.Vec3{}, e.Movement())
	if !approxVec(origin, mgl64.Vec3{3, 4, 0}) {
		t.Errorf("movement origin = %v, want (3, 4, 0)", origin)
	}
}

func TestAttachedTransformFollowsParentFrame(t *testing.T) {
	parent := NewEntity(KindPlayer, mgl64.Vec3{2, 0, 0})
	parent.Scale = 3 // scale stays out of the movement frame
	parent.ComputeTransform()

	blade := NewEntity(KindGeneric, mgl64.Vec3{100, 100, 0})
	blade.Angle = 180
	m := blade.AttachedTransform(parent)

	got := mgl64.TransformCoordinate(mgl64.Vec3{0.5, 0, 0}, m)
	if !approxVec(got, mgl64.Vec3{1.5, 0, 0}) {
		t.Errorf("blade tip = %v, want (1.5, 0, 0)", got)
	}
}

func TestOrbitTransformOffsetsFromParent(t *testing.T) {
	parent := NewEntity(KindPlayer, mgl64.Vec3{1, 1, 0})
	parent.ComputeTransform()

	orb := NewEntity(KindShieldOrb, mgl64.Vec3{})
	orb.Scale = 0.25
	orb.SetVelocityOverride(mgl64.Vec3{0, 1, 0})
	m := orb.OrbitTransform(parent)

	center := mgl64.TransformCoordinate(mgl64.Vec3{}, m)
	if !approxVec(center, mgl64.Vec3{1, 2, 0}) {
		t.Errorf("orb centre = %v, want (1, 2, 0)", center)
	}
	edge := mgl64.TransformCoordinate(mgl64.Vec3{0.5, 0, 0}, m)
	if !approxVec(edge, mgl64.Vec3{1.125, 2, 0}) {
		t.Errorf("orb edge = %v, want (1.125, 2, 0)", edge)
	}
}

func TestViewMatrixCentresTarget(t *testing.T) {
	view := ViewMatrix(mgl64.Vec3{5, -3, 0}, 0.25)

	center := mgl64.TransformCoordinate(mgl64.Vec3{5, -3, 0}, view)
	if !approx(center.X(), 0) || !approx(center.Y(), 0) {
		t.Errorf("target maps to %v, want origin", center)
	}
	right := mgl64.TransformCoordinate(mgl64.Vec3{9, -3, 0}, view)
	if !approx(right.X(), 1) || !approx(right.Y(), 0) {
		t.Errorf("4 units right maps to %v, want (1, 0)", right)
	}
}

func TestHeadingVector(t *testing.T) {
	tests := []struct {
		angle float64
		want  mgl64.Vec3
	}{
		{0, mgl64.Vec3{0, 1, 0}},
		{90, mgl64.Vec3{-1, 0, 0}},
		{180, mgl64.Vec3{0, -1, 0}},
		{-90, mgl64.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		if got := HeadingVector(tt.angle); !approxVec(got, tt.want) {
			t.Errorf("HeadingVector(%v) = %v, want %v", tt.angle, got, tt.want)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	x := mgl64.Vec3{1, 0, 0}
	if got := AngleBetween(mgl64.Vec3{0, -2, 0}, x); !approx(got, 90) {
		t.Errorf("AngleBetween(-Y, X) = %v, want 90", got)
	}
	if got := AngleBetween(mgl64.Vec3{}, x); got != 0 {
		t.Errorf("AngleBetween(zero, X) = %v, want 0", got)
	}
}
