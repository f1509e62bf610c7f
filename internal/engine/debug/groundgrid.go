// Package debug provides reference geometry for inspecting the scene.
package debug

import "github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"

// DefaultGridColor is the line color of the ground grid.
var DefaultGridColor = [3]float32{0.2, 0.2, 0.2}

// Line is a segment between two world points.
type Line struct {
	A, B math.Vec3
}

// GroundGrid is a square grid of lines on the y = 0 plane centered on the
// world origin.
type GroundGrid struct {
	Color [3]float32
	Lines []Line

	visible bool
}

// NewGroundGrid creates a grid spanning length world units on each axis with
// one line every delta units. The center lines are not duplicated.
func NewGroundGrid(length, delta int) *GroundGrid {
	g := &GroundGrid{
		Color:   DefaultGridColor,
		visible: true,
	}
	if delta <= 0 {
		return g
	}

	half := float32(length) / 2
	for r := 0; r < length/2; r += delta {
		fr := float32(r)

		g.Lines = append(g.Lines, Line{A: math.Vec3{X: fr, Y: 0, Z: half}, B: math.Vec3{X: fr, Y: 0, Z: -half}})
		if r != 0 {
			g.Lines = append(g.Lines, Line{A: math.Vec3{X: -fr, Y: 0, Z: half}, B: math.Vec3{X: -fr, Y: 0, Z: -half}})
		}

		g.Lines = append(g.Lines, Line{A: math.Vec3{X: half, Y: 0, Z: fr}, B: math.Vec3{X: -half, Y: 0, Z: fr}})
		if r != 0 {
			g.Lines = append(g.Lines, Line{A: math.Vec3{X: half, Y: 0, Z: -fr}, B: math.Vec3{X: -half, Y: 0, Z: -fr}})
		}
	}
	return g
}

// Visible reports whether the grid is drawn.
func (g *GroundGrid) Visible() bool {
	return g.visible
}

// SetVisible shows or hides the grid.
func (g *GroundGrid) SetVisible(visible bool) {
	g.visible = visible
}

// Vertices returns the lines as a GL_LINES vertex list, format [x, y, z].
func (g *GroundGrid) Vertices() []float32 {
	out := make([]float32, 0, len(g.Lines)*6)
	for _, l := range g.Lines {
		out = append(out, l.A.X, l.A.Y, l.A.Z, l.B.X, l.B.Y, l.B.Z)
	}
	return out
}
