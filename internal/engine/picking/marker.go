package picking

import (
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// Unprojector turns a screen point into a world ray origin and direction.
type Unprojector interface {
	Unproject(screen, viewport math.Vec2) (origin, direction math.Vec3)
}

// markerRestHeight keeps the unit marker cube resting on the ground plane.
const markerRestHeight = 0.5

// OriginMarker is a world-space marker whose X/Z follow the cursor across the
// ground plane. Its Y is only changed by SetStaticHeight.
type OriginMarker struct {
	position    math.Vec3
	screenSize  math.Vec2
	screenPoint math.Vec2
	visible     bool
}

// NewOriginMarker creates a visible marker at the world origin for a viewport
// of the given size.
func NewOriginMarker(viewportW, viewportH float32) *OriginMarker {
	return &OriginMarker{
		position:   math.Vec3{Y: markerRestHeight},
		screenSize: math.Vec2{X: viewportW, Y: viewportH},
		visible:    true,
	}
}

// Position returns the marker location.
func (m *OriginMarker) Position() math.Vec3 {
	return m.position
}

// Visible reports whether the marker is drawn.
func (m *OriginMarker) Visible() bool {
	return m.visible
}

// SetVisible shows or hides the marker.
func (m *OriginMarker) SetVisible(visible bool) {
	m.visible = visible
}

// SetStaticHeight sets the marker Y.
func (m *OriginMarker) SetStaticHeight(h float32) {
	m.position.Y = h
}

// SetScreenSize records a viewport resize and re-picks the ground point under
// the last cursor position.
func (m *OriginMarker) SetScreenSize(cam Unprojector, w, h float32) {
	m.screenSize = math.Vec2{X: w, Y: h}
	m.recompute(cam)
}

// SetCursor moves the marker to the ground point under the cursor.
func (m *OriginMarker) SetCursor(cam Unprojector, x, y float32) {
	m.screenPoint = math.Vec2{X: x, Y: y}
	m.recompute(cam)
}

// recompute updates X/Z from a fresh pick; a miss leaves the marker in place.
func (m *OriginMarker) recompute(cam Unprojector) {
	origin, dir := cam.Unproject(m.screenPoint, m.screenSize)
	ray := Ray{Origin: origin, Direction: dir}

	if p, ok := ray.IntersectPlane(GroundPlane()); ok {
		m.position.X = p.X
		m.position.Z = p.Z
	}
}
