package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

func TestGroundGridLineCount(t *testing.T) {
	tests := []struct {
		length, delta int
		want          int
	}{
		{800, 10, 2 + 39*4},
		{20, 10, 2},
		{40, 10, 2 + 4},
		{10, 0, 0},
	}
	for _, tt := range tests {
		g := NewGroundGrid(tt.length, tt.delta)
		if len(g.Lines) != tt.want {
			t.Errorf("NewGroundGrid(%d, %d) lines = %d, want %d", tt.length, tt.delta, len(g.Lines), tt.want)
		}
		if got := len(g.Vertices()); got != tt.want*6 {
			t.Errorf("Vertices() len = %d, want %d", got, tt.want*6)
		}
	}
}

func TestGroundGridGeometry(t *testing.T) {
	g := NewGroundGrid(800, 10)

	for _, l := range g.Lines {
		if l.A.Y != 0 || l.B.Y != 0 {
			t.Fatalf("line %v is off the ground plane", l)
		}
		span := l.A.Sub(l.B).Length()
		if span != 800 {
			t.Fatalf("line %v spans %v, want 800", l, span)
		}
	}

	// r = 0 lines run through the origin along both axes
	if g.Lines[0] != (Line{A: math.Vec3{X: 0, Y: 0, Z: 400}, B: math.Vec3{X: 0, Y: 0, Z: -400}}) {
		t.Errorf("first line = %v", g.Lines[0])
	}
	if g.Lines[1] != (Line{A: math.Vec3{X: 400, Y: 0, Z: 0}, B: math.Vec3{X: -400, Y: 0, Z: 0}}) {
		t.Errorf("second line = %v", g.Lines[1])
	}
}

func TestGroundGridVisibility(t *testing.T) {
	g := NewGroundGrid(100, 10)
	if !g.Visible() {
		t.Error("grid should start visible")
	}
	g.SetVisible(false)
	if g.Visible() {
		t.Error("SetVisible(false) did not hide grid")
	}
}

func TestCubeWireframe(t *testing.T) {
	v := CubeWireframe(math.Vec3{X: 1, Y: 0.5, Z: -2}, 1)
	if len(v) != CubeWireframeVertexCount*3 {
		t.Fatalf("len = %d, want %d", len(v), CubeWireframeVertexCount*3)
	}
	// first vertex is the min corner
	if v[0] != 0.5 || v[1] != 0 || v[2] != -2.5 {
		t.Errorf("min corner = (%v, %v, %v)", v[0], v[1], v[2])
	}
	for i := 1; i < len(v); i += 3 {
		if v[i] != 0 && v[i] != 1 {
			t.Errorf("vertex y = %v, want 0 or 1", v[i])
		}
	}
}

func TestScreenshotCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshot(dir, "terrain")
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	// 2x2: bottom row red, top row blue in GL order
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	path, err := s.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if want := filepath.Join(dir, "terrain_2024-03-01_12-30-00.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open capture: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode capture: %v", err)
	}
	if _, _, b, _ := img.At(0, 0).RGBA(); b != 0xffff {
		t.Errorf("top-left pixel should be blue after flip, got %v", img.At(0, 0))
	}
}

func TestScreenshotSizeMismatch(t *testing.T) {
	s := NewScreenshot(t.TempDir(), "x")
	if _, err := s.CaptureFromPixels(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}

func TestAxisLines(t *testing.T) {
	x, z := AxisLines(math.Vec3{X: 1, Y: 2, Z: 3}, 3)
	if want := []float32{1, 2, 3, 4, 2, 3}; !equalFloats(x, want) {
		t.Errorf("x axis = %v, want %v", x, want)
	}
	if want := []float32{1, 2, 3, 1, 2, 6}; !equalFloats(z, want) {
		t.Errorf("z axis = %v, want %v", z, want)
	}
}

func equalFloats(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
