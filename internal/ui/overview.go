// Package ui provides the top-down terrain overview.
package ui

import (
	gomath "math"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// Marker sizes in world units.
const (
	originMarkerWorldSize = 10.0
	cameraMarkerWorldSize = 20.0
)

// Overview maps world X/Z positions into a fixed-size rectangle centered on
// the overview origin. Overview X grows to the right and Y grows up; world X is
// mirrored to match the terrain texture orientation.
type Overview struct {
	Size  math.Vec2 // rectangle size in pixels
	Scale math.Vec2 // world extents represented by the rectangle

	visible bool

	origin  math.Vec2
	camera  math.Vec2
	heading float32
}

// NewOverview creates a hidden overview of the given pixel size showing the
// given world extents.
func NewOverview(size, scale math.Vec2) *Overview {
	return &Overview{
		Size:  size,
		Scale: scale,
	}
}

// Visible reports whether the overview is drawn.
func (o *Overview) Visible() bool {
	return o.visible
}

// SetVisible shows or hides the overview.
func (o *Overview) SetVisible(visible bool) {
	o.visible = visible
}

// ratio returns pixels per world unit on each axis.
func (o *Overview) ratio() math.Vec2 {
	return math.Vec2{X: o.Size.X / o.Scale.X, Y: o.Size.Y / o.Scale.Y}
}

// ConstrainedScaleXY maps a world (x, z) pair into overview coordinates and
// clamps each axis to the rectangle's half extent.
func (o *Overview) ConstrainedScaleXY(x, y float32) math.Vec2 {
	r := o.ratio()
	mx := x * r.X
	my := y * r.Y

	hx := r.X * (o.Scale.X / 2)
	hy := r.Y * (o.Scale.Y / 2)

	return math.Vec2{
		X: constrain(-mx, -hx, hx),
		Y: constrain(my, -hy, hy),
	}
}

// SetOriginPosition moves the origin marker to a world position.
func (o *Overview) SetOriginPosition(p math.Vec3) {
	o.origin = o.ConstrainedScaleXY(p.X, p.Z)
}

// SetCameraPosition moves the camera marker to a world position.
func (o *Overview) SetCameraPosition(p math.Vec3) {
	o.camera = o.ConstrainedScaleXY(p.X, p.Z)
}

// SetCameraOrientation points the camera marker along a view direction.
func (o *Overview) SetCameraOrientation(dir math.Vec3) {
	angle := float32(gomath.Atan2(float64(dir.Z), float64(dir.X))) - gomath.Pi/2
	o.heading = -angle
}

// OriginPosition returns the origin marker in overview coordinates.
func (o *Overview) OriginPosition() math.Vec2 {
	return o.origin
}

// CameraPosition returns the camera marker in overview coordinates.
func (o *Overview) CameraPosition() math.Vec2 {
	return o.camera
}

// Heading returns the camera marker rotation in radians.
func (o *Overview) Heading() float32 {
	return o.heading
}

// Quad is a textured rectangle in overview coordinates, corners ordered
// top-left, top-right, bottom-right, bottom-left.
type Quad struct {
	Corners [4]math.Vec2
	UVs     [4][2]float32
}

// Background returns the heightmap rectangle. UVs follow the terrain mesh
// convention so the picture matches the textured terrain.
func (o *Overview) Background() Quad {
	hx, hy := o.Size.X/2, o.Size.Y/2
	q := Quad{Corners: [4]math.Vec2{
		{X: -hx, Y: hy},
		{X: hx, Y: hy},
		{X: hx, Y: -hy},
		{X: -hx, Y: -hy},
	}}
	for i, c := range q.Corners {
		q.UVs[i] = [2]float32{0.5 + c.X/o.Size.X, 0.5 - c.Y/o.Size.Y}
	}
	return q
}

// OriginMarker returns the origin marker rectangle centered on its position.
func (o *Overview) OriginMarker() Quad {
	r := o.ratio()
	hw := originMarkerWorldSize * r.X / 2
	hh := originMarkerWorldSize * r.Y / 2
	c := o.origin
	return Quad{Corners: [4]math.Vec2{
		{X: c.X - hw, Y: c.Y + hh},
		{X: c.X + hw, Y: c.Y + hh},
		{X: c.X + hw, Y: c.Y - hh},
		{X: c.X - hw, Y: c.Y - hh},
	}}
}

// CameraMarker returns the camera heading triangle, rotated by the heading
// and placed at the camera position. The middle vertex is the apex.
func (o *Overview) CameraMarker() [3]math.Vec2 {
	r := o.ratio()
	d := float32(cameraMarkerWorldSize)
	local := [3]math.Vec2{
		{X: -d * r.X, Y: 0.7 * d * r.Y},
		{X: 0, Y: 0},
		{X: d * r.X, Y: 0.7 * d * r.Y},
	}

	sin, cos := gomath.Sincos(float64(o.heading))
	s, c := float32(sin), float32(cos)

	var out [3]math.Vec2
	for i, p := range local {
		out[i] = math.Vec2{
			X: p.X*c - p.Y*s + o.camera.X,
			Y: p.X*s + p.Y*c + o.camera.Y,
		}
	}
	return out
}

func constrain(v, lo, hi float32) float32 {
	if v <= lo {
		return lo
	}
	if v >= hi {
		return hi
	}
	return v
}
