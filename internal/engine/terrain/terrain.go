package terrain

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/logger"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/heightfield"
)

// Height transform limits and defaults.
const (
	MinHeightScale     float32 = 1.0
	DefaultHeightScale float32 = 10.0
)

// ErrDimensionMismatch is returned by Reload when the new heightfield does not
// have the size of the one it replaces.
var ErrDimensionMismatch = errors.New("heightfield dimensions changed")

// Source supplies heightfield grids.
type Source interface {
	Load() (*heightfield.Grid, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (*heightfield.Grid, error)

// Load calls f.
func (f SourceFunc) Load() (*heightfield.Grid, error) {
	return f()
}

// FileSource reads a heightfield image from a path.
type FileSource string

// Load opens and decodes the file.
func (p FileSource) Load() (*heightfield.Grid, error) {
	return heightfield.Open(string(p))
}

// Terrain owns a heightfield, its tiles and the generated tile meshes.
// Meshes are built when the Terrain is created, so every Terrain value is
// fully generated.
type Terrain struct {
	grid   *heightfield.Grid
	tiles  []Tile
	meshes []*TileMesh // indexed by TileID

	heightScale  float32
	heightOffset float32
}

// Load reads a heightfield from src and generates the mesh of every tile.
func Load(src Source) (*Terrain, error) {
	grid, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("loading heightfield: %w", err)
	}

	tiles, err := PartitionTiles(grid.Width, grid.Height)
	if err != nil {
		return nil, err
	}

	t := &Terrain{
		grid:        grid,
		tiles:       tiles,
		meshes:      buildMeshes(grid, tiles),
		heightScale: DefaultHeightScale,
	}

	logger.Info("terrain generated",
		zap.Int("width", grid.Width),
		zap.Int("height", grid.Height),
		zap.Int("tiles", len(tiles)),
	)
	return t, nil
}

func buildMeshes(grid *heightfield.Grid, tiles []Tile) []*TileMesh {
	meshes := make([]*TileMesh, len(tiles))
	for _, tile := range tiles {
		meshes[tile.ID] = BuildTileMesh(grid, tile)
	}
	return meshes
}

// Populate registers every tile mesh under its tile name. Existing entries
// are removed first so a name is never registered twice.
func (t *Terrain) Populate(reg MeshRegistry) []Tile {
	for _, tile := range t.tiles {
		reg.Remove(tile.Name)
		reg.Insert(tile.Name, t.meshes[tile.ID])
	}
	return t.tiles
}

// Reload replaces the heightfield with one read from src and regenerates every
// tile mesh under the same tile names. The new heightfield must have the same
// dimensions. On any error the terrain and reg are left unchanged.
func (t *Terrain) Reload(src Source, reg MeshRegistry) error {
	grid, err := src.Load()
	if err != nil {
		logger.Warn("heightfield reload failed, keeping current terrain", zap.Error(err))
		return fmt.Errorf("reloading heightfield: %w", err)
	}

	if grid.Width != t.grid.Width || grid.Height != t.grid.Height {
		err := fmt.Errorf("%w: got %dx%d, current %dx%d",
			ErrDimensionMismatch, grid.Width, grid.Height, t.grid.Width, t.grid.Height)
		logger.Warn("heightfield reload rejected, keeping current terrain", zap.Error(err))
		return err
	}

	staged := buildMeshes(grid, t.tiles)

	t.grid = grid
	t.meshes = staged
	t.Populate(reg)

	logger.Info("terrain reloaded", zap.Int("tiles", len(t.tiles)))
	return nil
}

// Grid returns the current heightfield.
func (t *Terrain) Grid() *heightfield.Grid {
	return t.grid
}

// Width returns the heightfield width in samples.
func (t *Terrain) Width() int {
	return t.grid.Width
}

// Height returns the heightfield height in samples.
func (t *Terrain) Height() int {
	return t.grid.Height
}

// Tiles returns the tiles in row-major order.
func (t *Terrain) Tiles() []Tile {
	return t.tiles
}

// Mesh returns the generated mesh of a tile.
func (t *Terrain) Mesh(id TileID) *TileMesh {
	return t.meshes[id]
}

// HeightScale returns the vertical scale applied to tile nodes.
func (t *Terrain) HeightScale() float32 {
	return t.heightScale
}

// SetHeightScale sets the vertical scale, clamped to at least MinHeightScale,
// and returns the value in effect.
func (t *Terrain) SetHeightScale(scale float32) float32 {
	if scale < MinHeightScale {
		scale = MinHeightScale
	}
	t.heightScale = scale
	return scale
}

// HeightOffset returns the vertical translation applied to tile nodes.
func (t *Terrain) HeightOffset() float32 {
	return t.heightOffset
}

// SetHeightOffset sets the vertical translation.
func (t *Terrain) SetHeightOffset(offset float32) {
	t.heightOffset = offset
}

// Transform returns the node transform for the current scale and offset.
func (t *Terrain) Transform() NodeTransform {
	return NodeTransform{
		Scale:       [3]float32{1, t.heightScale, 1},
		Translation: [3]float32{0, t.heightOffset, 0},
	}
}
