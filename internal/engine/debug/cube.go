package debug

import "github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"

// CubeWireframeVertexCount is the number of vertices for a cube wireframe (12 edges × 2).
const CubeWireframeVertexCount = 24

// CubeWireframe returns line vertices for an axis-aligned cube of the given
// edge length centered on center. Format: [x, y, z] per vertex.
func CubeWireframe(center math.Vec3, size float32) []float32 {
	h := size / 2
	return boxWireframe(center.X-h, center.Y-h, center.Z-h, center.X+h, center.Y+h, center.Z+h)
}

func boxWireframe(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	return []float32{
		// Bottom face
		minX, minY, minZ, maxX, minY, minZ,
		maxX, minY, minZ, maxX, minY, maxZ,
		maxX, minY, maxZ, minX, minY, maxZ,
		minX, minY, maxZ, minX, minY, minZ,
		// Top face
		minX, maxY, minZ, maxX, maxY, minZ,
		maxX, maxY, minZ, maxX, maxY, maxZ,
		maxX, maxY, maxZ, minX, maxY, maxZ,
		minX, maxY, maxZ, minX, maxY, minZ,
		// Vertical edges
		minX, minY, minZ, minX, maxY, minZ,
		maxX, minY, minZ, maxX, maxY, minZ,
		maxX, minY, maxZ, maxX, maxY, maxZ,
		minX, minY, maxZ, minX, maxY, maxZ,
	}
}

// AxisLines returns line vertices from center along +X and +Z, the marker's
// orientation axes.
func AxisLines(center math.Vec3, length float32) (x, z []float32) {
	x = []float32{center.X, center.Y, center.Z, center.X + length, center.Y, center.Z}
	z = []float32{center.X, center.Y, center.Z, center.X, center.Y, center.Z + length}
	return x, z
}
