// terraintool is a CLI utility for inspecting and exporting heightmap terrain.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/export"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "tiles", "ls":
		cmdTiles(args)
	case "export", "x":
		cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`terraintool - heightmap terrain utility

Usage:
  terraintool <command> [options]

Commands:
  info <heightmap>                  Show heightmap dimensions and elevation range
  tiles <heightmap>                 List 128x128 tiles and mesh sizes
  export [flags] <heightmap> <dir>  Write one Wavefront OBJ per tile

Export flags:
  -scale float   height scale baked into vertices (default 10)
  -offset float  height offset baked into vertices (default 0)

Examples:
  terraintool info heightmap.png
  terraintool tiles heightmap.png
  terraintool export -scale 25 heightmap.png ./obj`)
}

func load(path string) *terrain.Terrain {
	ter, err := terrain.Load(terrain.FileSource(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return ter
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool info <heightmap>")
		os.Exit(1)
	}

	ter := load(args[0])
	grid := ter.Grid()

	lo, hi := uint8(255), uint8(0)
	var sum uint64
	for _, v := range grid.Pix {
		lo = min(lo, v)
		hi = max(hi, v)
		sum += uint64(v)
	}

	fmt.Printf("Heightmap: %s\n", args[0])
	fmt.Printf("Size:      %dx%d\n", grid.Width, grid.Height)
	fmt.Printf("Tiles:     %dx%d (%d)\n", grid.Width/terrain.TileSize, grid.Height/terrain.TileSize, len(ter.Tiles()))
	fmt.Printf("Elevation: min %d, max %d, mean %.1f\n", lo, hi, float64(sum)/float64(len(grid.Pix)))
}

func cmdTiles(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool tiles <heightmap>")
		os.Exit(1)
	}

	ter := load(args[0])
	fmt.Printf("%-8s %-12s %-10s %s\n", "NAME", "START", "VERTICES", "TRIANGLES")
	for _, tile := range ter.Tiles() {
		mesh := ter.Mesh(tile.ID)
		fmt.Printf("%-8s %-12s %-10d %d\n",
			tile.Name, fmt.Sprintf("(%d, %d)", tile.StartX, tile.StartY),
			mesh.VertexCount(), mesh.TriangleCount())
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	scale := fs.Float64("scale", float64(terrain.DefaultHeightScale), "Height scale baked into vertices")
	offset := fs.Float64("offset", 0, "Height offset baked into vertices")
	verbose := fs.Bool("v", false, "Verbose logging")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: terraintool export [flags] <heightmap> <dir>")
		os.Exit(1)
	}

	if *verbose {
		if err := logger.Init("debug", ""); err != nil {
			fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
	}

	ter := load(fs.Arg(0))
	if got := ter.SetHeightScale(float32(*scale)); float64(got) != *scale {
		fmt.Fprintf(os.Stderr, "Warning: height scale clamped to %g\n", got)
	}
	ter.SetHeightOffset(float32(*offset))

	paths, err := export.ExportTiles(fs.Arg(1), ter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d tiles to %s\n", len(paths), fs.Arg(1))
}
