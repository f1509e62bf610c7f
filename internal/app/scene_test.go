package app

import (
	"errors"
	"strings"
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/heightfield"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

func testConfig() SceneConfig {
	return SceneConfig{
		Mode:         terrain.ModeTextured,
		HeightScale:  10,
		HeightOffset: 0,
		Eye:          math.Vec3{X: -20, Y: 20, Z: -20},
		MoveStep:     1,
		OverviewSize: 300,
		GridLength:   800,
		GridDelta:    10,
		ShowGrid:     true,
		ViewportW:    800,
		ViewportH:    600,
	}
}

func flatGrid(t *testing.T, w, h int, level uint8) *heightfield.Grid {
	t.Helper()
	pix := make([]uint8, w*h)
	for i := range pix {
		pix[i] = level
	}
	g, err := heightfield.New(w, h, pix)
	if err != nil {
		t.Fatalf("heightfield.New: %v", err)
	}
	return g
}

// swapSource returns whatever grid or error it currently holds.
type swapSource struct {
	grid *heightfield.Grid
	err  error
}

func (s *swapSource) Load() (*heightfield.Grid, error) {
	return s.grid, s.err
}

func newTestScene(t *testing.T) (*Scene, *swapSource, *terrain.MemoryRegistry) {
	t.Helper()
	src := &swapSource{grid: flatGrid(t, 256, 256, 0)}
	ter, err := terrain.Load(src)
	if err != nil {
		t.Fatalf("terrain.Load: %v", err)
	}
	reg := terrain.NewMemoryRegistry()
	return NewScene(testConfig(), ter, src, reg), src, reg
}

func TestNewScenePopulates(t *testing.T) {
	s, _, reg := newTestScene(t)

	if reg.Len() != 4 {
		t.Errorf("registry has %d meshes, want 4", reg.Len())
	}
	if s.Nodes.Len() != 4 {
		t.Errorf("nodes = %d, want 4", s.Nodes.Len())
	}
	if s.Nodes.Transform().Scale != [3]float32{1, 10, 1} {
		t.Errorf("node scale = %v", s.Nodes.Transform().Scale)
	}
	if s.Overview.Visible() {
		t.Error("overview should start hidden")
	}
	if s.Marker.Position() != (math.Vec3{Y: 0.5}) {
		t.Errorf("marker = %v, want (0, 0.5, 0)", s.Marker.Position())
	}
}

func TestApplyModeCycle(t *testing.T) {
	s, _, _ := newTestScene(t)

	want := []terrain.Mode{
		terrain.ModeAlphamap,
		terrain.ModeWireframe,
		terrain.ModePoints,
		terrain.ModeSolid,
		terrain.ModeTextured,
	}
	for _, m := range want {
		s.Apply(ActionNextMode)
		if s.Mode() != m {
			t.Fatalf("Mode() = %v, want %v", s.Mode(), m)
		}
		if s.Nodes.Style() != terrain.StyleFor(m) {
			t.Errorf("node style not updated for %v", m)
		}
	}
}

func TestApplyHeightScale(t *testing.T) {
	s, _, reg := newTestScene(t)
	before, _ := reg.Lookup("0 0")
	beforeY := before.Positions[0][1]

	s.Apply(ActionScaleUp)
	if got := s.Nodes.Transform().Scale[1]; got != 11 {
		t.Errorf("scale after I = %v, want 11", got)
	}

	for i := 0; i < 20; i++ {
		s.Apply(ActionScaleDown)
	}
	if got := s.Terrain.HeightScale(); got != 1 {
		t.Errorf("scale clamped to %v, want 1", got)
	}
	if got := s.Nodes.Transform().Scale[1]; got != 1 {
		t.Errorf("node scale = %v, want 1", got)
	}

	after, _ := reg.Lookup("0 0")
	if after != before || after.Positions[0][1] != beforeY {
		t.Error("height scale changed mesh data")
	}
}

func TestApplyHeightOffset(t *testing.T) {
	s, _, _ := newTestScene(t)

	s.Apply(ActionOffsetDown)
	s.Apply(ActionOffsetDown)
	s.Apply(ActionOffsetUp)
	if got := s.Nodes.Transform().Translation; got != [3]float32{0, -1, 0} {
		t.Errorf("translation = %v, want (0, -1, 0)", got)
	}
}

func TestApplyMarker(t *testing.T) {
	s, _, _ := newTestScene(t)

	s.Apply(ActionMarkerUp)
	s.Apply(ActionMarkerUp)
	s.Apply(ActionMarkerDown)
	if got := s.Marker.Position().Y; got != 1.5 {
		t.Errorf("marker Y = %v, want 1.5", got)
	}

	s.Apply(ActionToggleMarker)
	if s.Marker.Visible() {
		t.Error("B should hide the marker")
	}
}

func TestApplyToggles(t *testing.T) {
	s, _, _ := newTestScene(t)

	s.Apply(ActionToggleOverview)
	if !s.Overview.Visible() {
		t.Error("Y should show the overview")
	}
	s.Apply(ActionToggleGrid)
	if s.Grid.Visible() {
		t.Error("G should hide the grid")
	}
	if s.Apply(ActionQuit) {
		t.Error("quit should stop the viewer")
	}
	if !s.Apply(ActionNone) {
		t.Error("unbound key should not stop the viewer")
	}
}

func TestCursorMovesMarkerAndOverview(t *testing.T) {
	s, _, _ := newTestScene(t)

	// camera looks at the origin, so the viewport center picks near it
	s.CursorMoved(400, 300)
	p := s.Marker.Position()
	if p.Y != 0.5 {
		t.Errorf("marker Y changed to %v", p.Y)
	}
	if abs(p.X) > 0.1 || abs(p.Z) > 0.1 {
		t.Errorf("marker = %v, want near origin", p)
	}

	s.CursorMoved(700, 300)
	moved := s.Marker.Position()
	if moved == p {
		t.Error("marker did not follow the cursor")
	}
	want := s.Overview.ConstrainedScaleXY(moved.X, moved.Z)
	if s.Overview.OriginPosition() != want {
		t.Errorf("overview origin = %v, want %v", s.Overview.OriginPosition(), want)
	}
}

func TestResetCamera(t *testing.T) {
	s, _, _ := newTestScene(t)
	eye := s.Camera.Eye()

	s.Move(1, 0)
	s.Drag(50, 10)
	if s.Camera.Eye() == eye {
		t.Fatal("Move did not move the camera")
	}

	s.Apply(ActionResetCamera)
	if s.Camera.Eye() != eye {
		t.Errorf("eye after reset = %v, want %v", s.Camera.Eye(), eye)
	}
	if s.Overview.CameraPosition() != s.Overview.ConstrainedScaleXY(eye.X, eye.Z) {
		t.Error("overview camera marker not synced after reset")
	}
}

func TestReload(t *testing.T) {
	s, src, reg := newTestScene(t)
	s.Apply(ActionScaleUp)

	var reloaded *heightfield.Grid
	s.OnReload = func(g *heightfield.Grid) { reloaded = g }

	src.grid = flatGrid(t, 256, 256, 255)
	s.Apply(ActionReload)

	if reloaded != src.grid {
		t.Error("OnReload not called with the new grid")
	}
	m, _ := reg.Lookup("1 1")
	if m.Positions[0][1] != 1 {
		t.Errorf("reloaded elevation = %v, want 1", m.Positions[0][1])
	}
	if s.Nodes.Transform().Scale[1] != 11 {
		t.Errorf("reload reset height scale to %v", s.Nodes.Transform().Scale[1])
	}
}

func TestReloadFailureKeepsScene(t *testing.T) {
	s, src, reg := newTestScene(t)
	before, _ := reg.Lookup("0 0")

	called := false
	s.OnReload = func(*heightfield.Grid) { called = true }

	src.err = errors.New("disk gone")
	if err := s.Reload(); err == nil {
		t.Fatal("Reload() = nil, want error")
	}

	src.err = nil
	src.grid = flatGrid(t, 128, 128, 9)
	if err := s.Reload(); !errors.Is(err, terrain.ErrDimensionMismatch) {
		t.Fatalf("Reload() = %v, want ErrDimensionMismatch", err)
	}

	if called {
		t.Error("OnReload called after failed reload")
	}
	if after, _ := reg.Lookup("0 0"); after != before {
		t.Error("failed reload replaced meshes")
	}
}

func TestInfo(t *testing.T) {
	s, _, _ := newTestScene(t)
	info := s.Info()

	for _, want := range []string{Title, "Terrain Mode: Textured", "Height Scale: 10", "Height Offset: 0", "(0.00, 0.50, 0.00)"} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() = %q, missing %q", info, want)
		}
	}
}

func TestDefaultKeymap(t *testing.T) {
	km := DefaultKeymap()

	tests := map[sdl.Scancode]Action{
		sdl.SCANCODE_RETURN: ActionResetCamera,
		sdl.SCANCODE_T:      ActionNextMode,
		sdl.SCANCODE_I:      ActionScaleUp,
		sdl.SCANCODE_K:      ActionScaleDown,
		sdl.SCANCODE_O:      ActionOffsetUp,
		sdl.SCANCODE_L:      ActionOffsetDown,
		sdl.SCANCODE_Y:      ActionToggleOverview,
		sdl.SCANCODE_N:      ActionMarkerUp,
		sdl.SCANCODE_M:      ActionMarkerDown,
		sdl.SCANCODE_B:      ActionToggleMarker,
		sdl.SCANCODE_G:      ActionToggleGrid,
		sdl.SCANCODE_Q:      ActionNone,
	}
	for key, want := range tests {
		if got := km.Lookup(key); got != want {
			t.Errorf("Lookup(%v) = %v, want %v", key, got, want)
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
