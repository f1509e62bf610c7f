// Package terrain cuts a heightfield into fixed-size tiles and builds the
// renderable mesh for each one.
//
// World coordinates are centered on the heightfield midpoint: image columns run
// along X, image rows along Z, and the normalized elevation is Y. Height scale
// and offset are not baked into vertices; they are applied by the presentation
// node through NodeTransform.
package terrain

import "github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/heightfield"

// TileSize is the edge length of a tile in samples.
const TileSize = heightfield.Alignment

// TileID indexes a tile in the row-major tile arena of a Terrain.
type TileID int

// Tile is a TileSize x TileSize window into the heightfield.
type Tile struct {
	ID     TileID
	Name   string // stable across reloads, used as the registry key
	TX, TY int    // tile grid coordinates
	StartX int    // first sample column
	StartY int    // first sample row
	Width  int
	Height int
}

// TileMesh holds the buffers for one tile. Positions, UVs and Normals are
// parallel arrays of TileSize*TileSize entries.
type TileMesh struct {
	Positions [][3]float32
	UVs       [][2]float32
	Normals   [][3]float32
	Indices   [][3]uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *TileMesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *TileMesh) TriangleCount() int {
	return len(m.Indices)
}

// NodeTransform is the presentation transform for every terrain tile node:
// a non-uniform scale followed by a translation.
type NodeTransform struct {
	Scale       [3]float32
	Translation [3]float32
}
