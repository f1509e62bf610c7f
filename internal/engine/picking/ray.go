// Package picking maps screen positions onto the terrain ground plane.
package picking

import (
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// Ray is a half-line in world space.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// Plane is defined by any point on it and its normal.
type Plane struct {
	Point  math.Vec3
	Normal math.Vec3
}

// GroundPlane returns the horizontal plane y = 0 the terrain rests on.
func GroundPlane() Plane {
	return Plane{
		Point:  math.Vec3{X: 1, Y: 0, Z: 1},
		Normal: math.Vec3{X: 0, Y: 1, Z: 0},
	}
}

// ScreenToRay converts a pixel position to a world-space ray through the near
// and far clip planes. invViewProj is the inverse view-projection matrix.
func ScreenToRay(screen, viewport math.Vec2, invViewProj math.Mat4) Ray {
	// Convert screen coords to normalized device coords (-1 to 1)
	ndcX := 2.0*screen.X/viewport.X - 1.0
	ndcY := 1.0 - 2.0*screen.Y/viewport.Y // Flip Y

	nearWorld := unprojectNDC(invViewProj, ndcX, ndcY, -1)
	farWorld := unprojectNDC(invViewProj, ndcX, ndcY, 1)

	return Ray{
		Origin:    nearWorld,
		Direction: farWorld.Sub(nearWorld).Normalize(),
	}
}

func unprojectNDC(invViewProj math.Mat4, x, y, z float32) math.Vec3 {
	p := invViewProj.MulVec4(math.Vec4{x, y, z, 1})
	if p[3] != 0 {
		p[0] /= p[3]
		p[1] /= p[3]
		p[2] /= p[3]
	}
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// IntersectPlane returns the point where the line through the ray meets p.
// A ray exactly parallel to the plane has no intersection. Near-parallel rays
// are not special-cased and may produce points far from the origin.
func (r Ray) IntersectPlane(p Plane) (math.Vec3, bool) {
	denom := r.Direction.Dot(p.Normal)
	if denom == 0 {
		return math.Vec3{}, false
	}

	t := r.Origin.Sub(p.Point).Dot(p.Normal) / denom
	return r.Origin.Sub(r.Direction.Scale(t)), true
}
