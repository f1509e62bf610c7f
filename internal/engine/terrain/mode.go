package terrain

import (
	"fmt"
	"strings"
)

// Mode selects how terrain tiles are drawn.
type Mode uint8

const (
	ModeWireframe Mode = iota // colored points and lines
	ModePoints                // colored points
	ModeSolid                 // solid, flat material
	ModeTextured              // solid, colored by the heightmap image
	ModeAlphamap              // solid, colored by the alphamap channels
)

var modeNames = [...]string{"Wireframe", "Points", "Solid", "Textured", "Alphamap"}

// String returns the display name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", m)
}

// Next returns the following mode, wrapping from Alphamap to Wireframe.
func (m Mode) Next() Mode {
	return (m + 1) % Mode(len(modeNames))
}

// ParseMode converts a case-insensitive mode name.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown terrain mode %q", s)
}

// TextureSource names the texture bound to terrain tiles.
type TextureSource uint8

const (
	TextureNone TextureSource = iota // renderer default (flat white)
	TextureHeightmap
	TextureAlphamap
)

// RenderStyle is the declarative draw state for terrain tiles in one mode.
type RenderStyle struct {
	Surface         bool
	PointSize       float32
	LineWidth       float32
	BackfaceCulling bool
	Texture         TextureSource
	Color           [3]float32
}

const (
	stylePointSize = 3.0
	styleLineWidth = 1.0
)

// StyleFor maps a mode to its draw state.
func StyleFor(m Mode) RenderStyle {
	white := [3]float32{1, 1, 1}

	switch m {
	case ModeWireframe:
		return RenderStyle{PointSize: stylePointSize, LineWidth: styleLineWidth, Color: white}
	case ModePoints:
		return RenderStyle{PointSize: stylePointSize, Color: white}
	case ModeTextured:
		return RenderStyle{Surface: true, BackfaceCulling: true, Texture: TextureHeightmap, Color: white}
	case ModeAlphamap:
		return RenderStyle{Surface: true, BackfaceCulling: true, Texture: TextureAlphamap, Color: white}
	default:
		return RenderStyle{Surface: true, BackfaceCulling: true, Color: white}
	}
}
