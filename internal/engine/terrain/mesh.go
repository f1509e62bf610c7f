package terrain

import (
	"fmt"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/heightfield"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// BuildTileMesh generates positions, UVs, smooth normals and triangle indices
// for one tile of the grid. Elevation is the raw sample normalized to [0, 1].
//
// UVs are parameterized over the whole heightfield and flipped on both axes to
// match the image row order. Positions on a tile's first and last column/row
// are snapped to integer grid lines so that neighbouring tiles share their
// boundary X/Z; interior vertices use the continuous parameterization.
// Normals and UVs on the boundary are not reconciled between tiles.
func BuildTileMesh(grid *heightfield.Grid, tile Tile) *TileMesh {
	if tile.Width != TileSize || tile.Height != TileSize {
		panic(fmt.Sprintf("terrain: tile %q is %dx%d, want %dx%d",
			tile.Name, tile.Width, tile.Height, TileSize, TileSize))
	}

	twidth := float32(grid.Width - 1)
	theight := float32(grid.Height - 1)
	halfTWidth := twidth / 2
	halfTHeight := theight / 2
	halfWidth := float32(grid.Width / 2)
	halfHeight := float32(grid.Height / 2)

	numVerts := tile.Width * tile.Height
	numTris := 2 * (tile.Width - 1) * (tile.Height - 1)
	mesh := &TileMesh{
		Positions: make([][3]float32, 0, numVerts),
		UVs:       make([][2]float32, 0, numVerts),
		Normals:   make([][3]float32, numVerts),
		Indices:   make([][3]uint32, 0, numTris),
	}

	lastX := tile.StartX + tile.Width - 1
	lastY := tile.StartY + tile.Height - 1

	// Vertex pass
	for y := tile.StartY; y <= lastY; y++ {
		t := float32(y) / theight
		pz := stitch(y, tile.StartY, lastY, t*theight-halfTHeight, halfHeight)

		for x := tile.StartX; x <= lastX; x++ {
			s := float32(x) / twidth
			px := stitch(x, tile.StartX, lastX, s*twidth-halfTWidth, halfWidth)
			elevation := float32(grid.Sample(x, y)) / 255.0

			// image columns on X, elevation on Y, image rows on Z
			mesh.Positions = append(mesh.Positions, [3]float32{px, elevation, pz})
			mesh.UVs = append(mesh.UVs, [2]float32{1 - s, 1 - t})
		}
	}

	// Index pass
	w := uint32(tile.Width)
	for y := 0; y < tile.Height-1; y++ {
		for x := 0; x < tile.Width-1; x++ {
			index := uint32(y*tile.Width + x)
			mesh.Indices = append(mesh.Indices,
				[3]uint32{index, index + w + 1, index + 1}, // top
				[3]uint32{index, index + w, index + w + 1}, // bottom
			)
		}
	}

	accumulateNormals(mesh)
	return mesh
}

// stitch picks the position along one axis for a sample at coord. The first
// sample of a tile sits on its own grid line and the last one on the next
// grid line, so adjacent tiles meet exactly.
func stitch(coord, first, last int, interior, half float32) float32 {
	switch coord {
	case first:
		return float32(coord) - half
	case last:
		return float32(coord+1) - half
	default:
		return interior
	}
}

// accumulateNormals sums the unit face normal of every triangle into its three
// vertices and normalizes the result.
func accumulateNormals(mesh *TileMesh) {
	acc := make([]math.Vec3, len(mesh.Positions))

	for _, tri := range mesh.Indices {
		v0 := math.V3(mesh.Positions[tri[0]])
		v1 := math.V3(mesh.Positions[tri[1]])
		v2 := math.V3(mesh.Positions[tri[2]])

		n := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		acc[tri[0]] = acc[tri[0]].Add(n)
		acc[tri[1]] = acc[tri[1]].Add(n)
		acc[tri[2]] = acc[tri[2]].Add(n)
	}

	for i, n := range acc {
		mesh.Normals[i] = n.Normalize().Array()
	}
}
