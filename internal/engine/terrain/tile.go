package terrain

import (
	"errors"
	"fmt"
)

// ErrTileAlignment is returned when a heightfield cannot be cut into whole tiles.
var ErrTileAlignment = errors.New("heightfield dimensions are not tile aligned")

// TileName returns the registry name for the tile at grid coordinates (tx, ty).
func TileName(tx, ty int) string {
	return fmt.Sprintf("%d %d", tx, ty)
}

// PartitionTiles cuts a width x height grid into TileSize tiles in row-major
// order (ty outer, tx inner). The result depends only on the dimensions, so
// tile IDs and names are identical for every heightfield of the same size.
func PartitionTiles(width, height int) ([]Tile, error) {
	if width <= 0 || height <= 0 || width%TileSize != 0 || height%TileSize != 0 {
		return nil, fmt.Errorf("%w: %dx%d with tile size %d", ErrTileAlignment, width, height, TileSize)
	}

	numX := width / TileSize
	numY := height / TileSize

	tiles := make([]Tile, 0, numX*numY)
	for ty := 0; ty < numY; ty++ {
		for tx := 0; tx < numX; tx++ {
			tiles = append(tiles, Tile{
				ID:     TileID(len(tiles)),
				Name:   TileName(tx, ty),
				TX:     tx,
				TY:     ty,
				StartX: tx * TileSize,
				StartY: ty * TileSize,
				Width:  TileSize,
				Height: TileSize,
			})
		}
	}
	return tiles, nil
}
