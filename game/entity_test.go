package game

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestUpdateAtRestKeepsPosition(t *testing.T) {
	for kind := Kind(0); kind < KindCount; kind++ {
		e := NewEntity(kind, mgl64.Vec3{1.5, -2, 0})
		// Patrolling and orbiting kinds set their own velocity
		e.State = StateMoving
		if kind == KindShieldOrb || kind == KindPlayer {
			continue
		}
		e.Update(frame, 0)
		if e.Position != (mgl64.Vec3{1.5, -2, 0}) {
			t.Errorf("%v at rest moved to %v", kind, e.Position)
		}
	}

	player := NewEntity(KindPlayer, mgl64.Vec3{})
	player.Update(frame, 0)
	if player.Position != (mgl64.Vec3{}) {
		t.Errorf("player at rest moved to %v", player.Position)
	}
}

func TestUpdateIntegratesVelocity(t *testing.T) {
	e := NewEntity(KindBuoy, mgl64.Vec3{})
	e.SetVelocity(mgl64.Vec3{1, -0.5, 0})
	e.Update(0.5, 0)
	if !approxVec(e.Position, mgl64.Vec3{0.5, -0.25, 0}) {
		t.Errorf("position = %v, want (0.5, -0.25, 0)", e.Position)
	}
}

func TestSetVelocityClamps(t *testing.T) {
	tests := []struct {
		in, want mgl64.Vec3
	}{
		{mgl64.Vec3{1, 1, 0}, mgl64.Vec3{1, 1, 0}},
		{mgl64.Vec3{8, 0, 0}, mgl64.Vec3{2, 0, 0}},
		{mgl64.Vec3{-5, 3, 0}, mgl64.Vec3{-2, 2, 0}},
		{mgl64.Vec3{2, -2, 0}, mgl64.Vec3{2, -2, 0}},
	}
	for _, tt := range tests {
		e := NewEntity(KindEnemy, mgl64.Vec3{})
		e.SetVelocity(tt.in)
		if e.Velocity() != tt.want {
			t.Errorf("SetVelocity(%v) = %v, want %v", tt.in, e.Velocity(), tt.want)
		}
	}
}

func TestSetVelocityOverrideSkipsClamp(t *testing.T) {
	e := NewEntity(KindBullet, mgl64.Vec3{})
	e.SetVelocityOverride(mgl64.Vec3{0, 8, 0})
	if e.Velocity().Y() != 8 {
		t.Errorf("override velocity = %v, want y=8", e.Velocity())
	}
}

func TestPlayerSteersAlongHeading(t *testing.T) {
	p := NewEntity(KindPlayer, mgl64.Vec3{})
	p.SetVelocity(mgl64.Vec3{0, 1, 0})
	p.Angle = 90
	p.Update(frame, 0)

	// Heading at 90 degrees is -X; speed is preserved
	if !approxVec(p.Velocity(), mgl64.Vec3{-1, 0, 0}) {
		t.Errorf("velocity = %v, want (-1, 0, 0)", p.Velocity())
	}
	if !approx(p.Speed(), 1) {
		t.Errorf("speed = %v, want 1", p.Speed())
	}
}

func TestPatrolOrbitsOnlyWhilePatrolling(t *testing.T) {
	e := NewEntity(KindEnemy, mgl64.Vec3{})
	e.Update(0, 0)
	if !approxVec(e.Velocity(), mgl64.Vec3{1, 0, 0}) {
		t.Errorf("patrol velocity at t=0 = %v, want (1, 0, 0)", e.Velocity())
	}

	e.State = StateMoving
	e.SetVelocity(mgl64.Vec3{0, -1, 0})
	e.Update(0, 2)
	if e.Velocity() != (mgl64.Vec3{0, -1, 0}) {
		t.Errorf("moving enemy velocity changed to %v", e.Velocity())
	}
}

func TestShieldOrbOrbitUsesPhase(t *testing.T) {
	orb := NewEntity(KindShieldOrb, mgl64.Vec3{})
	orb.Phase = mgl64.DegToRad(90)
	orb.Update(0, 0)
	if !approxVec(orb.Velocity(), mgl64.Vec3{0, 1, 0}) {
		t.Errorf("orbit offset = %v, want (0, 1, 0)", orb.Velocity())
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Shield_Power_Up ")
	if err != nil || k != KindShieldPowerUp {
		t.Errorf("ParseKind = %v, %v", k, err)
	}
	if _, err := ParseKind("dragon"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
