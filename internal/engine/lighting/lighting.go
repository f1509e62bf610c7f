// Package lighting provides the directional light used to shade terrain.
package lighting

import (
	"fmt"
	gomath "math"
	"strings"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// Mode selects where the light comes from.
type Mode uint8

const (
	StickToCamera Mode = iota // light travels along the view direction
	Sun                       // fixed direction from longitude/latitude
)

// ParseMode parses "camera" or "sun".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "camera", "":
		return StickToCamera, nil
	case "sun":
		return Sun, nil
	}
	return 0, fmt.Errorf("unknown light mode %q", s)
}

// Light is a directional light with ambient and diffuse terms.
type Light struct {
	Mode    Mode
	Ambient float32
	Diffuse float32

	sun math.Vec3 // direction the sunlight travels
}

// Default returns a light that follows the camera.
func Default() Light {
	return Light{Mode: StickToCamera, Ambient: 0.3, Diffuse: 0.7}
}

// SetSun points the sun. Longitude rotates around Y in degrees, latitude is
// elevation above the horizon in degrees.
func (l *Light) SetSun(longitude, latitude float32) {
	l.sun = SunDirection(longitude, latitude).Scale(-1)
}

// Direction returns the direction the light travels for a camera looking
// along eyeDir.
func (l Light) Direction(eyeDir math.Vec3) math.Vec3 {
	if l.Mode == Sun {
		return l.sun
	}
	return eyeDir.Normalize()
}

// SunDirection converts longitude/latitude angles in degrees to a unit
// vector pointing towards the sun.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lonRad := float64(longitude) * gomath.Pi / 180.0
	latRad := float64(latitude) * gomath.Pi / 180.0

	return math.Vec3{
		X: float32(gomath.Cos(latRad) * gomath.Sin(lonRad)),
		Y: float32(gomath.Sin(latRad)),
		Z: float32(gomath.Cos(latRad) * gomath.Cos(lonRad)),
	}
}
