package heightfield

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
)

// OpenAlphamap loads an overlay texture that must match the heightfield size.
// Any decodable color image is accepted and converted to RGBA.
func OpenAlphamap(path string, width, height int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrUnsupportedFormat, err)
	}

	b := img.Bounds()
	if b.Dx() != width || b.Dy() != height {
		return nil, fmt.Errorf("%s: %w: alphamap is %dx%d, heightfield is %dx%d",
			path, ErrUnsupportedFormat, b.Dx(), b.Dy(), width, height)
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba, nil
}

// DefaultAlphamap returns an overlay with the red channel saturated, which
// selects the first texture layer everywhere.
func DefaultAlphamap(width, height int) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(rgba, rgba.Bounds(), &image.Uniform{C: color.RGBA{R: 255, A: 255}}, image.Point{}, draw.Src)
	return rgba
}
