// Package renderer draws the terrain tiles, reference lines and overview with
// OpenGL.
package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/lighting"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/renderer/shaders"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/shader"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/texture"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/logger"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [3]float32
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	terrainProg *shader.Program
	lineProg    *shader.Program
	overlayProg *shader.Program

	store *MeshStore

	white     uint32
	heightTex uint32
	alphaTex  uint32

	grid   *lineBuffer
	marker *lineBuffer
	ui     *overlayBuffer
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)
	gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.terrainProg, err = shader.Compile(shaders.TerrainVertexShader, shaders.TerrainFragmentShader); err != nil {
		return nil, fmt.Errorf("terrain shader: %w", err)
	}
	if r.lineProg, err = shader.Compile(shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}
	if r.overlayProg, err = shader.Compile(shaders.OverlayVertexShader, shaders.OverlayFragmentShader); err != nil {
		return nil, fmt.Errorf("overlay shader: %w", err)
	}

	r.store = NewMeshStore()
	r.white = texture.White()
	r.grid = newLineBuffer()
	r.marker = newLineBuffer()
	r.ui = newOverlayBuffer()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	r.store.Close()
	r.grid.delete()
	r.marker.delete()
	r.ui.delete()
	texture.Delete(r.white)
	texture.Delete(r.heightTex)
	texture.Delete(r.alphaTex)
	r.terrainProg.Delete()
	r.lineProg.Delete()
	r.overlayProg.Delete()
}

// Meshes returns the renderer-owned mesh registry.
func (r *Renderer) Meshes() *MeshStore {
	return r.store
}

// SetHeightmapTexture replaces the texture used by the textured mode and
// the overview background.
func (r *Renderer) SetHeightmapTexture(img *image.Gray) {
	texture.Delete(r.heightTex)
	r.heightTex = texture.Upload(texture.ToRGBA(img))
}

// SetAlphamapTexture replaces the texture used by the alphamap mode.
func (r *Renderer) SetAlphamapTexture(img *image.RGBA) {
	texture.Delete(r.alphaTex)
	r.alphaTex = texture.Upload(texture.ToRGBA(img))
}

// SetGroundGrid uploads the reference grid line vertices.
func (r *Renderer) SetGroundGrid(vertices []float32) {
	r.grid.update(vertices)
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels reads the framebuffer back as RGBA, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) textureFor(src terrain.TextureSource) uint32 {
	switch src {
	case terrain.TextureHeightmap:
		if r.heightTex != 0 {
			return r.heightTex
		}
	case terrain.TextureAlphamap:
		if r.alphaTex != 0 {
			return r.alphaTex
		}
	}
	return r.white
}

// DrawTerrain draws every node with its mesh from the store, using the
// nodes' shared style.
func (r *Renderer) DrawTerrain(nodes *TerrainNodes, viewProj math.Mat4, light lighting.Light, eyeDir math.Vec3) {
	style := nodes.Style()
	p := r.terrainProg
	p.Use()

	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(p.Uniform("uColor"), style.Color[0], style.Color[1], style.Color[2])
	lightDir := light.Direction(eyeDir)
	gl.Uniform3f(p.Uniform("uLightDir"), lightDir.X, lightDir.Y, lightDir.Z)
	gl.Uniform1f(p.Uniform("uAmbient"), light.Ambient)
	gl.Uniform1f(p.Uniform("uDiffuse"), light.Diffuse)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.textureFor(style.Texture))
	gl.Uniform1i(p.Uniform("uTexture"), 0)

	if style.BackfaceCulling {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	} else {
		gl.Disable(gl.CULL_FACE)
	}

	locModel := p.Uniform("uModel")
	locUnlit := p.Uniform("uUnlit")
	nodes.Each(func(n *Node) {
		m, ok := r.store.handle(n.Tile.Name)
		if !ok || m.vao == 0 {
			return
		}
		model := math.TranslateScale(n.Transform.Translation, n.Transform.Scale)
		gl.UniformMatrix4fv(locModel, 1, false, model.Ptr())
		gl.BindVertexArray(m.vao)

		for _, pass := range stylePasses(style) {
			gl.Uniform1i(locUnlit, pass.unlit)
			gl.PolygonMode(gl.FRONT_AND_BACK, pass.polygonMode)
			if pass.pointSize > 0 {
				gl.PointSize(pass.pointSize)
			}
			if pass.lineWidth > 0 {
				gl.LineWidth(pass.lineWidth)
			}
			gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
		}
	})

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Disable(gl.CULL_FACE)
	gl.BindVertexArray(0)
}

// drawPass is one rasterization of the terrain under a style.
type drawPass struct {
	polygonMode uint32
	pointSize   float32
	lineWidth   float32
	unlit       int32
}

// stylePasses expands a render style into the passes needed to draw it:
// filled surface, then edges, then vertices.
func stylePasses(s terrain.RenderStyle) []drawPass {
	var passes []drawPass
	if s.Surface {
		passes = append(passes, drawPass{polygonMode: gl.FILL})
	}
	if s.LineWidth > 0 {
		passes = append(passes, drawPass{polygonMode: gl.LINE, lineWidth: s.LineWidth, unlit: 1})
	}
	if s.PointSize > 0 {
		passes = append(passes, drawPass{polygonMode: gl.POINT, pointSize: s.PointSize, unlit: 1})
	}
	return passes
}

// DrawGroundGrid draws the reference ground grid.
func (r *Renderer) DrawGroundGrid(viewProj math.Mat4, color [3]float32) {
	r.drawLines(r.grid, viewProj, color)
}

// DrawMarker draws the origin marker cube and its axes.
func (r *Renderer) DrawMarker(viewProj math.Mat4, cube, xAxis, zAxis []float32) {
	r.marker.update(cube)
	r.drawLines(r.marker, viewProj, markerColor)
	r.marker.update(xAxis)
	r.drawLines(r.marker, viewProj, [3]float32{0, 0, 1})
	r.marker.update(zAxis)
	r.drawLines(r.marker, viewProj, [3]float32{1, 0, 0})
}

var markerColor = [3]float32{0.77, 1.0, 0.22}

func (r *Renderer) drawLines(b *lineBuffer, viewProj math.Mat4, color [3]float32) {
	if b.count == 0 {
		return
	}
	p := r.lineProg
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uViewProj"), 1, false, viewProj.Ptr())
	gl.Uniform3f(p.Uniform("uColor"), color[0], color[1], color[2])
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.LINES, 0, b.count)
	gl.BindVertexArray(0)
}
