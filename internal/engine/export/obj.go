// Package export writes terrain tile meshes to interchange formats.
package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
)

// WriteOBJ writes a tile mesh as a Wavefront OBJ object. The node transform
// is baked into the positions; normals are written unscaled.
func WriteOBJ(w io.Writer, name string, mesh *terrain.TileMesh, xf terrain.NodeTransform) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "o %s\n", name)
	for _, p := range mesh.Positions {
		fmt.Fprintf(bw, "v %g %g %g\n",
			p[0]*xf.Scale[0]+xf.Translation[0],
			p[1]*xf.Scale[1]+xf.Translation[1],
			p[2]*xf.Scale[2]+xf.Translation[2])
	}
	for _, uv := range mesh.UVs {
		fmt.Fprintf(bw, "vt %g %g\n", uv[0], uv[1])
	}
	for _, n := range mesh.Normals {
		fmt.Fprintf(bw, "vn %g %g %g\n", n[0], n[1], n[2])
	}
	// OBJ indices are 1-based
	for _, f := range mesh.Indices {
		a, b, c := f[0]+1, f[1]+1, f[2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing obj %q: %w", name, err)
	}
	return nil
}

// ExportTiles writes one OBJ file per tile into dir and returns the paths
// written. File names use the tile coordinates.
func ExportTiles(dir string, t *terrain.Terrain) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	xf := t.Transform()
	var paths []string
	for _, tile := range t.Tiles() {
		path := filepath.Join(dir, fmt.Sprintf("tile_%d_%d.obj", tile.TX, tile.TY))
		if err := writeFile(path, tile.Name, t.Mesh(tile.ID), xf); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path, name string, mesh *terrain.TileMesh, xf terrain.NodeTransform) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteOBJ(f, name, mesh, xf); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
