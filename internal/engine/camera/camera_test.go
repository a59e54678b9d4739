package camera

import (
	gomath "math"
	"testing"
)

func TestFirstPersonPitchClamp(t *testing.T) {
	c := NewFirstPersonCamera()

	// A huge downward mouse delta drives pitch up past the limit.
	c.HandleLook(0, -10000, 0.016)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, MaxPitch)
	}

	c.HandleLook(0, 10000, 0.016)
	if c.Pitch != MinPitch {
		t.Errorf("Pitch = %v, want clamped to %v", c.Pitch, MinPitch)
	}
}

func TestFirstPersonYawWrap(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Yaw = 359

	c.HandleLook(-10, 0, 0.01) // +6 degrees
	if c.Yaw > 360 || c.Yaw < -360 {
		t.Errorf("Yaw = %v, want wrapped into [-360,360]", c.Yaw)
	}

	c.Yaw = -359
	c.HandleLook(10, 0, 0.01)
	if c.Yaw > 360 || c.Yaw < -360 {
		t.Errorf("Yaw = %v, want wrapped into [-360,360]", c.Yaw)
	}
}

func TestFirstPersonLookDirection(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Yaw = 90
	c.Pitch = 0

	d := c.LookDirection()
	if gomath.Abs(float64(d.X)) > 1e-6 || gomath.Abs(float64(d.Y)) > 1e-6 || gomath.Abs(float64(d.Z)+1) > 1e-6 {
		t.Errorf("LookDirection at yaw=90 = %v, want (0,0,-1)", d)
	}
}

func TestFirstPersonMovementStaysHorizontal(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Pitch = 60 // Looking up must not lift the walker off the ground.
	startY := c.Position.Y

	c.HandleMovement(1, 0, false, 0.5)
	if c.Position.Y != startY {
		t.Errorf("Position.Y changed from %v to %v during movement", startY, c.Position.Y)
	}

	moved := gomath.Hypot(float64(c.Position.X-0.6), float64(c.Position.Z))
	want := float64(c.Speed) * 0.5
	if gomath.Abs(moved-want) > 1e-4 {
		t.Errorf("moved %v world units, want %v", moved, want)
	}
}

func TestFirstPersonFastMovement(t *testing.T) {
	slow := NewFirstPersonCamera()
	fast := NewFirstPersonCamera()

	slow.HandleMovement(1, 0, false, 1)
	fast.HandleMovement(1, 0, true, 1)

	slowDist := slow.Position.Sub(NewFirstPersonCamera().Position).Length()
	fastDist := fast.Position.Sub(NewFirstPersonCamera().Position).Length()
	if gomath.Abs(float64(fastDist-2*slowDist)) > 1e-4 {
		t.Errorf("fast distance = %v, want 2x slow distance %v", fastDist, slowDist)
	}
}

func TestOrbitZoomClamp(t *testing.T) {
	c := NewOrbitCamera()

	c.HandleZoom(1e6)
	if c.Distance != c.MinDistance {
		t.Errorf("Distance = %v, want clamped to %v", c.Distance, c.MinDistance)
	}

	c.HandleZoom(-1e6)
	if c.Distance != c.MaxDistance {
		t.Errorf("Distance = %v, want clamped to %v", c.Distance, c.MaxDistance)
	}
}

func TestOrbitFitToBounds(t *testing.T) {
	c := NewOrbitCamera()
	c.FitToBounds([3]float32{-100, 3, -100}, [3]float32{100, 13, 100})

	if c.CenterX != 0 || c.CenterZ != 0 {
		t.Errorf("center = (%v,%v), want origin", c.CenterX, c.CenterZ)
	}
	if c.CenterY != 8 {
		t.Errorf("CenterY = %v, want 8", c.CenterY)
	}
	if c.Distance != 240 {
		t.Errorf("Distance = %v, want 240", c.Distance)
	}
}
