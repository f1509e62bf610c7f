// Package heightfield decodes 8-bit grayscale elevation images into sample grids.
//
// PNG is decoded by the standard library; BMP and TIFF decoders are registered
// from golang.org/x/image. Only single-channel 8-bit data is accepted, and both
// dimensions must be multiples of Alignment so the grid can be cut into tiles.
package heightfield

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Register decoders for image.Decode.
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Alignment is the required divisor of grid width and height.
const Alignment = 128

// Source errors.
var (
	ErrInvalidFile       = errors.New("invalid heightfield file")
	ErrUnsupportedFormat = errors.New("unsupported heightfield format")
)

// Grid is a row-major grid of 8-bit elevation samples. The origin is the
// top-left pixel of the source image.
type Grid struct {
	Width  int
	Height int
	Pix    []uint8
}

// New wraps pix as a width x height grid. The slice is not copied.
func New(width, height int, pix []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: empty grid %dx%d", ErrUnsupportedFormat, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d samples for %dx%d grid", ErrUnsupportedFormat, len(pix), width, height)
	}
	return &Grid{Width: width, Height: height, Pix: pix}, nil
}

// Sample returns the intensity at (x, y).
func (g *Grid) Sample(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Image returns a grayscale image sharing the grid's samples, suitable for
// texture upload.
func (g *Grid) Image() *image.Gray {
	return &image.Gray{
		Pix:    g.Pix,
		Stride: g.Width,
		Rect:   image.Rect(0, 0, g.Width, g.Height),
	}
}

// Equal reports whether both grids have the same size and samples.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i := range g.Pix {
		if g.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// Open reads and validates a heightfield image from disk.
func Open(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}
	defer f.Close()

	grid, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}

// Decode reads an 8-bit grayscale image and validates its dimensions.
func Decode(r io.Reader) (*Grid, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}

	grid, err := fromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", format, err)
	}

	if err := Validate(grid.Width, grid.Height); err != nil {
		return nil, err
	}
	return grid, nil
}

// Validate checks that width and height are positive multiples of Alignment.
func Validate(width, height int) error {
	if width <= 0 || height <= 0 || width%Alignment != 0 || height%Alignment != 0 {
		return fmt.Errorf("%w: %dx%d is not a multiple of %d", ErrUnsupportedFormat, width, height, Alignment)
	}
	return nil
}

// fromImage copies single-channel 8-bit pixel data out of img.
// Paletted images are accepted when every palette entry is a gray level,
// which is how 8-bit grayscale BMP files decode.
func fromImage(img image.Image) (*Grid, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h)

	switch src := img.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			row := src.Pix[y*src.Stride : y*src.Stride+w]
			copy(pix[y*w:], row)
		}

	case *image.Paletted:
		levels := make([]uint8, len(src.Palette))
		for i, c := range src.Palette {
			r, g, bl, _ := c.RGBA()
			if r != g || g != bl {
				return nil, fmt.Errorf("%w: palette entry %d is not gray", ErrUnsupportedFormat, i)
			}
			levels[i] = uint8(r >> 8)
		}
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := src.Pix[y*src.Stride+x]
				if int(idx) >= len(levels) {
					return nil, fmt.Errorf("%w: palette index %d out of range", ErrUnsupportedFormat, idx)
				}
				pix[y*w+x] = levels[idx]
			}
		}

	default:
		return nil, fmt.Errorf("%w: only 8-bit grayscale is supported, got %T", ErrUnsupportedFormat, img)
	}

	return &Grid{Width: w, Height: h, Pix: pix}, nil
}
