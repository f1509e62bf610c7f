// Package texture converts images to RGBA and uploads them as GL textures.
package texture

import (
	"image"
	"image/color"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ToRGBA converts any image.Image to a tightly packed *image.RGBA with its
// origin at (0, 0). Grayscale values are replicated into R, G and B.
func ToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) && rgba.Stride == bounds.Dx()*4 {
		return rgba
	}

	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < bounds.Dy(); y++ {
			for x := 0; x < bounds.Dx(); x++ {
				v := gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
				rgba.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
			}
		}
		return rgba
	}

	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba
}

// Upload creates a GL texture from img with mipmaps and clamped edges.
func Upload(img *image.RGBA) uint32 {
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(img.Bounds().Dx()), int32(img.Bounds().Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// White creates a 1x1 white texture, bound when a style has no texture.
func White() uint32 {
	white := []uint8{255, 255, 255, 255}
	var texID uint32
	gl.GenTextures(1, &texID)
	gl.BindTexture(gl.TEXTURE_2D, texID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texID
}

// Delete releases a texture created by Upload or White.
func Delete(texID uint32) {
	if texID != 0 {
		gl.DeleteTextures(1, &texID)
	}
}
