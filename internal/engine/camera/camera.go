// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/Faultbox/sandsea/pkg/math"
)

// Pitch limits keep the first-person view from flipping over the poles.
const (
	MinPitch = -30.0
	MaxPitch = 85.0
)

// FirstPersonCamera walks over the terrain. Yaw and Pitch are in degrees;
// the caller grounds Position.Y against the terrain every frame.
type FirstPersonCamera struct {
	Position math.Vec3
	Yaw      float32 // Horizontal angle, 90 looks down -Z
	Pitch    float32 // Vertical angle, positive looks up

	// Movement tuning
	Speed          float32 // World units per second
	FastMultiplier float32 // Speed factor while the fast key is held
	AngularSpeed   float32 // Look degrees per second per unit of mouse delta
}

// NewFirstPersonCamera creates a first-person camera with flythrough defaults.
func NewFirstPersonCamera() *FirstPersonCamera {
	return &FirstPersonCamera{
		Position:       math.Vec3{X: 0.6, Y: 15.0, Z: 0.0},
		Yaw:            90.0,
		Pitch:          0.0,
		Speed:          4.0,
		FastMultiplier: 2.0,
		AngularSpeed:   60.0,
	}
}

// HandleLook applies mouse deltas to yaw and pitch, scaled by frame time.
// Pitch is clamped to [MinPitch, MaxPitch] and yaw wrapped into [-360, 360]
// so neither grows without bound.
func (c *FirstPersonCamera) HandleLook(deltaX, deltaY, dt float32) {
	c.Yaw -= deltaX * c.AngularSpeed * dt
	c.Pitch -= deltaY * c.AngularSpeed * dt

	if c.Pitch < MinPitch {
		c.Pitch = MinPitch
	}
	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}

	if c.Yaw > 360 {
		c.Yaw -= 360
	} else if c.Yaw < -360 {
		c.Yaw += 360
	}
}

// LookDirection returns the unit view direction for the current yaw/pitch.
func (c *FirstPersonCamera) LookDirection() math.Vec3 {
	theta := float64(c.Yaw) * gomath.Pi / 180
	phi := float64(c.Pitch) * gomath.Pi / 180

	return math.Vec3{
		X: float32(gomath.Cos(phi) * gomath.Cos(theta)),
		Y: float32(gomath.Sin(phi)),
		Z: float32(-gomath.Cos(phi) * gomath.Sin(theta)),
	}
}

// HandleMovement moves the camera on the XZ plane. forward and right are
// -1, 0 or +1 from the movement keys; pitch never affects movement so the
// walker stays glued to the dunes.
func (c *FirstPersonCamera) HandleMovement(forward, right float32, fast bool, dt float32) {
	theta := float64(c.Yaw) * gomath.Pi / 180

	dir := math.Vec3{
		X: float32(gomath.Cos(theta)),
		Z: float32(-gomath.Sin(theta)),
	}
	// Right-hand perpendicular on the XZ plane.
	strafe := math.Vec3{
		X: float32(gomath.Sin(theta)),
		Z: float32(gomath.Cos(theta)),
	}

	speed := c.Speed
	if fast {
		speed *= c.FastMultiplier
	}

	delta := dir.Scale(forward).Add(strafe.Scale(right)).Scale(speed * dt)
	c.Position = c.Position.Add(delta)
}

// ViewMatrix returns the view matrix for this camera.
func (c *FirstPersonCamera) ViewMatrix() math.Mat4 {
	target := c.Position.Add(c.LookDirection())
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Position, target, up)
}

// OrbitCamera orbits around a center point. It backs the terrain overview
// mode, looking down on the whole dune field.
type OrbitCamera struct {
	// Center point to orbit around
	CenterX, CenterY, CenterZ float32

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32
}

// NewOrbitCamera creates an orbit camera with dune-field defaults.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        250.0,
		RotationX:       0.6,
		RotationY:       0.0,
		MinDistance:     20.0,
		MaxDistance:     1000.0,
		MinPitch:        0.1,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.CenterX + x,
		Y: c.CenterY + y,
		Z: c.CenterZ + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	pos := c.Position()
	center := math.Vec3{X: c.CenterX, Y: c.CenterY, Z: c.CenterZ}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(pos, center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity

	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// FitToBounds adjusts the camera to view the given bounding box.
func (c *OrbitCamera) FitToBounds(min, max [3]float32) {
	c.CenterX = (min[0] + max[0]) / 2
	c.CenterY = (min[1] + max[1]) / 2
	c.CenterZ = (min[2] + max[2]) / 2

	sizeX := max[0] - min[0]
	sizeZ := max[2] - min[2]
	maxSize := sizeX
	if sizeZ > maxSize {
		maxSize = sizeZ
	}

	c.Distance = maxSize * 1.2
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}

	c.RotationX = 0.6 // Look down at ~35 degrees
	c.RotationY = 0.0
}
