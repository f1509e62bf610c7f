// Package camera provides the first-person camera used to inspect terrain.
package camera

import (
	gomath "math"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/picking"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// FirstPerson is a free-flying camera described by an eye position and
// yaw/pitch angles.
type FirstPerson struct {
	eye   math.Vec3
	yaw   float32 // radians, 0 looks along +X
	pitch float32 // radians, positive looks up

	FovY     float32
	Near     float32
	Far      float32
	MoveStep float32

	// Sensitivity
	RotateSensitivity float32

	MinPitch float32
	MaxPitch float32
}

// NewFirstPerson creates a camera at eye looking at target.
func NewFirstPerson(eye, target math.Vec3) *FirstPerson {
	c := &FirstPerson{
		FovY:              float32(gomath.Pi / 4),
		Near:              0.1,
		Far:               1024.0,
		MoveStep:          1.0,
		RotateSensitivity: 0.005,
		MinPitch:          -1.55,
		MaxPitch:          1.55,
	}
	c.LookAt(eye, target)
	return c
}

// LookAt places the camera at eye and points it at target.
func (c *FirstPerson) LookAt(eye, target math.Vec3) {
	c.eye = eye
	d := target.Sub(eye).Normalize()
	c.pitch = float32(gomath.Asin(float64(d.Y)))
	c.yaw = float32(gomath.Atan2(float64(d.Z), float64(d.X)))
}

// Eye returns the camera position.
func (c *FirstPerson) Eye() math.Vec3 {
	return c.eye
}

// EyeDir returns the unit view direction.
func (c *FirstPerson) EyeDir() math.Vec3 {
	cp := gomath.Cos(float64(c.pitch))
	return math.Vec3{
		X: float32(cp * gomath.Cos(float64(c.yaw))),
		Y: float32(gomath.Sin(float64(c.pitch))),
		Z: float32(cp * gomath.Sin(float64(c.yaw))),
	}
}

// ViewMatrix returns the world-to-view transform.
func (c *FirstPerson) ViewMatrix() math.Mat4 {
	return math.LookAt(c.eye, c.eye.Add(c.EyeDir()), math.Vec3{Y: 1})
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio.
func (c *FirstPerson) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view for a viewport.
func (c *FirstPerson) ViewProjection(viewport math.Vec2) math.Mat4 {
	return c.ProjectionMatrix(viewport.X / viewport.Y).Mul(c.ViewMatrix())
}

// Unproject returns the world ray through a screen point.
func (c *FirstPerson) Unproject(screen, viewport math.Vec2) (origin, direction math.Vec3) {
	r := picking.ScreenToRay(screen, viewport, c.ViewProjection(viewport).Inverse())
	return r.Origin, r.Direction
}

// HandleDrag turns the camera by a mouse drag delta in pixels.
func (c *FirstPerson) HandleDrag(deltaX, deltaY float32) {
	c.yaw += deltaX * c.RotateSensitivity
	c.pitch -= deltaY * c.RotateSensitivity

	// Clamp pitch
	if c.pitch < c.MinPitch {
		c.pitch = c.MinPitch
	}
	if c.pitch > c.MaxPitch {
		c.pitch = c.MaxPitch
	}
}

// HandleMovement moves the eye by whole steps along the view direction and
// its horizontal right vector.
func (c *FirstPerson) HandleMovement(forward, right float32) {
	dir := c.EyeDir()
	side := dir.Cross(math.Vec3{Y: 1}).Normalize()

	c.eye = c.eye.
		Add(dir.Scale(forward * c.MoveStep)).
		Add(side.Scale(right * c.MoveStep))
}
