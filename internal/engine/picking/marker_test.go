package picking

import (
	"testing"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// fixedCamera returns a canned ray and records what it was asked for.
type fixedCamera struct {
	origin, dir  math.Vec3
	lastScreen   math.Vec2
	lastViewport math.Vec2
}

func (c *fixedCamera) Unproject(screen, viewport math.Vec2) (math.Vec3, math.Vec3) {
	c.lastScreen = screen
	c.lastViewport = viewport
	return c.origin, c.dir
}

func TestOriginMarkerDefaults(t *testing.T) {
	m := NewOriginMarker(800, 600)
	if m.Position() != (math.Vec3{Y: 0.5}) {
		t.Errorf("initial position = %v, want (0, 0.5, 0)", m.Position())
	}
	if !m.Visible() {
		t.Error("marker should start visible")
	}
}

func TestOriginMarkerFollowsCursor(t *testing.T) {
	m := NewOriginMarker(800, 600)
	m.SetStaticHeight(3)

	cam := &fixedCamera{origin: math.Vec3{X: 7, Y: 5, Z: -2}, dir: math.Vec3{Y: -1}}
	m.SetCursor(cam, 120, 80)

	if cam.lastScreen != (math.Vec2{X: 120, Y: 80}) || cam.lastViewport != (math.Vec2{X: 800, Y: 600}) {
		t.Errorf("unproject called with %v/%v", cam.lastScreen, cam.lastViewport)
	}
	want := math.Vec3{X: 7, Y: 3, Z: -2}
	if m.Position() != want {
		t.Errorf("position = %v, want %v", m.Position(), want)
	}
}

func TestOriginMarkerKeepsPositionOnMiss(t *testing.T) {
	m := NewOriginMarker(800, 600)
	hit := &fixedCamera{origin: math.Vec3{X: 1, Y: 5, Z: 2}, dir: math.Vec3{Y: -1}}
	m.SetCursor(hit, 10, 10)
	before := m.Position()

	miss := &fixedCamera{origin: math.Vec3{X: 9, Y: 5, Z: 9}, dir: math.Vec3{X: 1}}
	m.SetCursor(miss, 20, 20)
	m.SetScreenSize(miss, 1024, 768)

	if m.Position() != before {
		t.Errorf("position changed on miss: %v, want %v", m.Position(), before)
	}
	if miss.lastViewport != (math.Vec2{X: 1024, Y: 768}) {
		t.Errorf("resize not forwarded to unproject: %v", miss.lastViewport)
	}
}

func TestOriginMarkerStaticHeightIndependentOfPick(t *testing.T) {
	m := NewOriginMarker(800, 600)
	m.SetStaticHeight(-4)
	cam := &fixedCamera{origin: math.Vec3{Y: 10}, dir: math.Vec3{X: 0.5, Y: -1}}
	m.SetCursor(cam, 0, 0)

	if m.Position().Y != -4 {
		t.Errorf("Y = %v, want -4", m.Position().Y)
	}
	if m.Position().X != 5 {
		t.Errorf("X = %v, want 5", m.Position().X)
	}
}
