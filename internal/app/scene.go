// Package app implements the interactive terrain viewer.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/camera"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/debug"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/picking"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/renderer"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/logger"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/ui"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/heightfield"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// Title is the window title prefix.
const Title = "Heli-X Scene3D Tool"

// SceneConfig holds the initial scene state.
type SceneConfig struct {
	Mode         terrain.Mode
	HeightScale  float32
	HeightOffset float32
	Eye          math.Vec3
	MoveStep     float32
	Sensitivity  float32
	FovY         float32 // radians
	OverviewSize float32
	ShowOverview bool
	GridLength   int
	GridDelta    int
	ShowGrid     bool
	ViewportW    float32
	ViewportH    float32
}

// Scene is the viewer state that responds to input: terrain presentation,
// camera, origin marker, overview and ground grid. It does no GL work.
type Scene struct {
	cfg    SceneConfig
	source terrain.Source
	log    *zap.Logger

	Terrain  *terrain.Terrain
	Registry terrain.MeshRegistry
	Nodes    *renderer.TerrainNodes
	Camera   *camera.FirstPerson
	Marker   *picking.OriginMarker
	Overview *ui.Overview
	Grid     *debug.GroundGrid

	mode     terrain.Mode
	viewport math.Vec2

	// OnReload is called with the new grid after a successful reload.
	OnReload func(grid *heightfield.Grid)
}

// NewScene populates reg with the terrain meshes and builds the scene around
// them.
func NewScene(cfg SceneConfig, ter *terrain.Terrain, src terrain.Source, reg terrain.MeshRegistry) *Scene {
	s := &Scene{
		cfg:      cfg,
		source:   src,
		log:      logger.Named("scene"),
		Terrain:  ter,
		Registry: reg,
		Nodes:    renderer.NewTerrainNodes(terrain.StyleFor(cfg.Mode)),
		Marker:   picking.NewOriginMarker(cfg.ViewportW, cfg.ViewportH),
		Overview: ui.NewOverview(
			math.Vec2{X: cfg.OverviewSize, Y: cfg.OverviewSize},
			math.Vec2{X: float32(ter.Width()), Y: float32(ter.Height())},
		),
		Grid:     debug.NewGroundGrid(cfg.GridLength, cfg.GridDelta),
		mode:     cfg.Mode,
		viewport: math.Vec2{X: cfg.ViewportW, Y: cfg.ViewportH},
	}

	ter.SetHeightScale(cfg.HeightScale)
	ter.SetHeightOffset(cfg.HeightOffset)

	tiles := ter.Populate(reg)
	s.Nodes.Attach(tiles)
	s.Nodes.SetTransform(ter.Transform())

	s.Camera = camera.NewFirstPerson(cfg.Eye, math.Vec3{})
	if cfg.FovY > 0 {
		s.Camera.FovY = cfg.FovY
	}
	if cfg.Sensitivity > 0 {
		s.Camera.RotateSensitivity = cfg.Sensitivity
	}
	s.resetCamera()

	s.Overview.SetVisible(cfg.ShowOverview)
	s.Overview.SetOriginPosition(s.Marker.Position())
	s.Grid.SetVisible(cfg.ShowGrid)

	return s
}

// Mode returns the current terrain mode.
func (s *Scene) Mode() terrain.Mode {
	return s.mode
}

// Viewport returns the current viewport size.
func (s *Scene) Viewport() math.Vec2 {
	return s.viewport
}

// SetMode switches the render style of every terrain node.
func (s *Scene) SetMode(m terrain.Mode) {
	s.mode = m
	s.Nodes.SetStyle(terrain.StyleFor(m))
}

func (s *Scene) resetCamera() {
	s.Camera.LookAt(s.cfg.Eye, math.Vec3{})
	if s.cfg.MoveStep > 0 {
		s.Camera.MoveStep = s.cfg.MoveStep
	}
	s.syncOverviewCamera()
}

func (s *Scene) syncOverviewCamera() {
	s.Overview.SetCameraPosition(s.Camera.Eye())
	s.Overview.SetCameraOrientation(s.Camera.EyeDir())
}

func (s *Scene) applyTransform() {
	s.Nodes.SetTransform(s.Terrain.Transform())
}

// Apply performs an action. It returns false when the viewer should quit.
func (s *Scene) Apply(a Action) bool {
	switch a {
	case ActionResetCamera:
		s.resetCamera()
	case ActionNextMode:
		s.SetMode(s.mode.Next())
	case ActionScaleUp:
		s.Terrain.SetHeightScale(s.Terrain.HeightScale() + 1)
		s.applyTransform()
	case ActionScaleDown:
		s.Terrain.SetHeightScale(s.Terrain.HeightScale() - 1)
		s.applyTransform()
	case ActionOffsetUp:
		s.Terrain.SetHeightOffset(s.Terrain.HeightOffset() + 1)
		s.applyTransform()
	case ActionOffsetDown:
		s.Terrain.SetHeightOffset(s.Terrain.HeightOffset() - 1)
		s.applyTransform()
	case ActionToggleOverview:
		s.Overview.SetVisible(!s.Overview.Visible())
	case ActionMarkerUp:
		s.Marker.SetStaticHeight(s.Marker.Position().Y + 1)
	case ActionMarkerDown:
		s.Marker.SetStaticHeight(s.Marker.Position().Y - 1)
	case ActionToggleMarker:
		s.Marker.SetVisible(!s.Marker.Visible())
	case ActionToggleGrid:
		s.Grid.SetVisible(!s.Grid.Visible())
	case ActionReload:
		s.Reload()
	case ActionQuit:
		return false
	}
	if a != ActionNone {
		s.log.Debug("action", zap.Stringer("action", a))
	}
	return true
}

// Reload re-reads the heightmap and replaces the tile meshes. On failure the
// scene is left as it was.
func (s *Scene) Reload() error {
	if err := s.Terrain.Reload(s.source, s.Registry); err != nil {
		return err
	}
	s.Nodes.Attach(s.Terrain.Tiles())
	s.applyTransform()
	if s.OnReload != nil {
		s.OnReload(s.Terrain.Grid())
	}
	return nil
}

// CursorMoved moves the origin marker to the ground point under the cursor.
func (s *Scene) CursorMoved(x, y float32) {
	s.Marker.SetCursor(s.Camera, x, y)
	s.Overview.SetOriginPosition(s.Marker.Position())
}

// Resized records a new viewport size and re-picks the marker.
func (s *Scene) Resized(w, h float32) {
	s.viewport = math.Vec2{X: w, Y: h}
	s.Marker.SetScreenSize(s.Camera, w, h)
	s.Overview.SetOriginPosition(s.Marker.Position())
}

// Drag turns the camera.
func (s *Scene) Drag(dx, dy float32) {
	s.Camera.HandleDrag(dx, dy)
	s.syncOverviewCamera()
}

// Move steps the camera; forward and right are -1, 0 or 1.
func (s *Scene) Move(forward, right float32) {
	if forward == 0 && right == 0 {
		return
	}
	s.Camera.HandleMovement(forward, right)
	s.syncOverviewCamera()
}

// ViewProjection returns the camera transform for the current viewport.
func (s *Scene) ViewProjection() math.Mat4 {
	return s.Camera.ViewProjection(s.viewport)
}

// Info describes the scene state for the window title.
func (s *Scene) Info() string {
	p := s.Marker.Position()
	return fmt.Sprintf("%s | Terrain Mode: %s | Height Scale: %g | Height Offset: %g | Origin Model at: (%.2f, %.2f, %.2f)",
		Title, s.mode, s.Terrain.HeightScale(), s.Terrain.HeightOffset(), p.X, p.Y, p.Z)
}
