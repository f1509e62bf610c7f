package terrain

import (
	"errors"
	"reflect"
	"testing"
)

func TestPartitionTilesCoverage(t *testing.T) {
	sizes := [][2]int{{128, 128}, {256, 128}, {128, 384}, {512, 256}, {1024, 256}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		tiles, err := PartitionTiles(w, h)
		if err != nil {
			t.Fatalf("PartitionTiles(%d, %d) failed: %v", w, h, err)
		}

		want := (w / TileSize) * (h / TileSize)
		if len(tiles) != want {
			t.Errorf("PartitionTiles(%d, %d) = %d tiles, want %d", w, h, len(tiles), want)
		}

		covered := make([]int, w*h)
		for _, tile := range tiles {
			for y := tile.StartY; y < tile.StartY+tile.Height; y++ {
				for x := tile.StartX; x < tile.StartX+tile.Width; x++ {
					covered[y*w+x]++
				}
			}
		}
		for i, n := range covered {
			if n != 1 {
				t.Fatalf("%dx%d: sample (%d, %d) covered %d times, want 1", w, h, i%w, i/w, n)
			}
		}
	}
}

func TestPartitionTilesOrder(t *testing.T) {
	tiles, err := PartitionTiles(256, 384)
	if err != nil {
		t.Fatalf("PartitionTiles failed: %v", err)
	}

	want := []Tile{
		{ID: 0, Name: "0 0", TX: 0, TY: 0, StartX: 0, StartY: 0, Width: 128, Height: 128},
		{ID: 1, Name: "1 0", TX: 1, TY: 0, StartX: 128, StartY: 0, Width: 128, Height: 128},
		{ID: 2, Name: "0 1", TX: 0, TY: 1, StartX: 0, StartY: 128, Width: 128, Height: 128},
		{ID: 3, Name: "1 1", TX: 1, TY: 1, StartX: 128, StartY: 128, Width: 128, Height: 128},
		{ID: 4, Name: "0 2", TX: 0, TY: 2, StartX: 0, StartY: 256, Width: 128, Height: 128},
		{ID: 5, Name: "1 2", TX: 1, TY: 2, StartX: 128, StartY: 256, Width: 128, Height: 128},
	}
	if !reflect.DeepEqual(tiles, want) {
		t.Errorf("PartitionTiles(256, 384) =\n%+v\nwant\n%+v", tiles, want)
	}

	again, _ := PartitionTiles(256, 384)
	if !reflect.DeepEqual(tiles, again) {
		t.Error("PartitionTiles is not deterministic")
	}
}

func TestPartitionTilesUniqueNames(t *testing.T) {
	tiles, _ := PartitionTiles(1280, 1280)
	seen := make(map[string]bool)
	for _, tile := range tiles {
		if seen[tile.Name] {
			t.Fatalf("duplicate tile name %q", tile.Name)
		}
		seen[tile.Name] = true
	}
}

func TestPartitionTilesErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero", 0, 0},
		{"negative", -128, 128},
		{"width not aligned", 200, 128},
		{"height not aligned", 128, 129},
		{"smaller than tile", 64, 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PartitionTiles(tt.width, tt.height)
			if !errors.Is(err, ErrTileAlignment) {
				t.Errorf("PartitionTiles(%d, %d) error = %v, want ErrTileAlignment", tt.width, tt.height, err)
			}
		})
	}
}
