package renderer

import "github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"

// Interleaved tile vertex layout: position(3) normal(3) uv(2).
const (
	vertexFloats = 8
	vertexStride = vertexFloats * 4
)

// interleave packs a tile mesh into the GL vertex layout and a flat index list.
func interleave(mesh *terrain.TileMesh) ([]float32, []uint32) {
	verts := make([]float32, 0, len(mesh.Positions)*vertexFloats)
	for i, p := range mesh.Positions {
		n := mesh.Normals[i]
		uv := mesh.UVs[i]
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2], uv[0], uv[1])
	}

	indices := make([]uint32, 0, len(mesh.Indices)*3)
	for _, f := range mesh.Indices {
		indices = append(indices, f[0], f[1], f[2])
	}
	return verts, indices
}
