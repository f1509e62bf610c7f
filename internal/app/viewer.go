package app

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/config"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/debug"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/input"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/lighting"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/renderer"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/window"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/logger"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/heightfield"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// markerSize is the edge length of the origin marker cube.
const markerSize = 1.0

// markerAxisLength is the length of the marker's X and Z axis lines.
const markerAxisLength = 3.0

// Viewer is the interactive terrain viewer.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	keymap   Keymap
	shots    *debug.Screenshot

	scene *Scene
	light lighting.Light
	title string
}

// New loads the terrain, opens the window and uploads the scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:    cfg,
		log:    logger.Named("viewer"),
		keymap: DefaultKeymap(),
		shots:  debug.NewScreenshot(cfg.Debug.ScreenshotDir, "scene3d"),
	}

	mode, err := terrain.ParseMode(cfg.Terrain.Mode)
	if err != nil {
		return nil, err
	}

	v.light = lighting.Default()
	if v.light.Mode, err = lighting.ParseMode(cfg.Graphics.Light); err != nil {
		return nil, err
	}
	v.light.SetSun(cfg.Graphics.SunLongitude, cfg.Graphics.SunLatitude)

	// Load before opening the window so a bad heightmap fails fast
	src := terrain.FileSource(cfg.Terrain.Heightmap)
	ter, err := terrain.Load(src)
	if err != nil {
		return nil, fmt.Errorf("loading terrain: %w", err)
	}

	alphamap := heightfield.DefaultAlphamap(ter.Width(), ter.Height())
	if cfg.Terrain.Alphamap != "" {
		alphamap, err = heightfield.OpenAlphamap(cfg.Terrain.Alphamap, ter.Width(), ter.Height())
		if err != nil {
			return nil, fmt.Errorf("loading alphamap: %w", err)
		}
	}

	v.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context created by the window
	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      w,
		Height:     h,
		ClearColor: cfg.Graphics.ClearColor,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.renderer.SetHeightmapTexture(ter.Grid().Image())
	v.renderer.SetAlphamapTexture(alphamap)

	v.scene = NewScene(SceneConfig{
		Mode:         mode,
		HeightScale:  cfg.Terrain.HeightScale,
		HeightOffset: cfg.Terrain.HeightOffset,
		Eye:          math.V3(cfg.Camera.Eye),
		MoveStep:     cfg.Camera.MoveStep,
		Sensitivity:  cfg.Camera.Sensitivity,
		FovY:         cfg.Camera.FovY * gomath.Pi / 180,
		OverviewSize: cfg.Overview.Size,
		ShowOverview: cfg.Overview.Visible,
		GridLength:   cfg.Debug.GridLength,
		GridDelta:    cfg.Debug.GridDelta,
		ShowGrid:     cfg.Debug.ShowGrid,
		ViewportW:    float32(w),
		ViewportH:    float32(h),
	}, ter, src, v.renderer.Meshes())

	v.scene.OnReload = func(grid *heightfield.Grid) {
		v.renderer.SetHeightmapTexture(grid.Image())
	}
	v.renderer.SetGroundGrid(v.scene.Grid.Vertices())

	v.input = input.New()

	v.log.Info("viewer initialized",
		zap.String("heightmap", cfg.Terrain.Heightmap),
		zap.Int("tiles", len(ter.Tiles())),
		zap.Stringer("mode", mode),
	)
	return v, nil
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()
	var frameLimit time.Duration
	if v.cfg.Graphics.FPSLimit > 0 {
		frameLimit = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	v.log.Info("starting viewer loop")

	for v.running {
		frameStart := time.Now()

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()
		v.update()
		v.render()
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameLimit > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameLimit {
				time.Sleep(frameLimit - elapsed)
			}
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := v.window.DrawableSize()
			v.renderer.Resize(w, h)
			v.scene.Resized(float32(w), float32(h))

		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			action := v.keymap.Lookup(event.Key)
			if action == ActionScreenshot {
				v.screenshot()
				continue
			}
			if !v.scene.Apply(action) {
				v.running = false
			}

		case input.EventMouseMove:
			if v.input.IsButtonDown(sdl.BUTTON_LEFT) {
				v.scene.Drag(float32(event.DeltaX), float32(event.DeltaY))
			}
			x, y := v.toDrawable(event.MouseX, event.MouseY)
			v.scene.CursorMoved(x, y)
		}
	}
}

// toDrawable converts window coordinates to framebuffer pixels.
func (v *Viewer) toDrawable(x, y int) (float32, float32) {
	ww, wh := v.window.GetSize()
	dw, dh := v.window.DrawableSize()
	if ww == 0 || wh == 0 {
		return float32(x), float32(y)
	}
	return float32(x) * float32(dw) / float32(ww), float32(y) * float32(dh) / float32(wh)
}

func (v *Viewer) update() {
	var forward, right float32
	if v.input.IsKeyDown(movementKeys[0]) {
		forward++
	}
	if v.input.IsKeyDown(movementKeys[1]) {
		forward--
	}
	if v.input.IsKeyDown(movementKeys[2]) {
		right--
	}
	if v.input.IsKeyDown(movementKeys[3]) {
		right++
	}
	v.scene.Move(forward, right)

	if title := v.scene.Info(); title != v.title {
		v.window.SetTitle(title)
		v.title = title
	}
}

func (v *Viewer) render() {
	v.renderer.Begin()

	viewProj := v.scene.ViewProjection()
	v.renderer.DrawTerrain(v.scene.Nodes, viewProj, v.light, v.scene.Camera.EyeDir())

	if v.scene.Grid.Visible() {
		v.renderer.DrawGroundGrid(viewProj, v.scene.Grid.Color)
	}
	if v.scene.Marker.Visible() {
		p := v.scene.Marker.Position()
		xAxis, zAxis := debug.AxisLines(p, markerAxisLength)
		v.renderer.DrawMarker(viewProj, debug.CubeWireframe(p, markerSize), xAxis, zAxis)
	}
	v.renderer.DrawOverview(v.scene.Overview)

	v.renderer.End()
}

func (v *Viewer) screenshot() {
	pixels, w, h := v.renderer.ReadPixels()
	path, err := v.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}
