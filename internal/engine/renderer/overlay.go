package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/ui"
	"github.com/jonlamb-gh/heli-x-scene3d-tool/pkg/math"
)

var (
	overviewOriginColor = [3]float32{0.77, 1.0, 0.22}
	overviewCameraColor = [3]float32{0, 0, 1}
)

// overlayBuffer holds screen-space vertices in [x, y, u, v] format.
type overlayBuffer struct {
	vao uint32
	vbo uint32
}

func newOverlayBuffer() *overlayBuffer {
	b := &overlayBuffer{}
	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)

	// TexCoord (location 1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return b
}

func (b *overlayBuffer) draw(vertices []float32) {
	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/4))
	gl.BindVertexArray(0)
}

func (b *overlayBuffer) delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
}

// quadTriangles splits a quad into two triangles of [x, y, u, v] vertices.
func quadTriangles(q ui.Quad) []float32 {
	out := make([]float32, 0, 6*4)
	for _, i := range [6]int{0, 3, 1, 1, 3, 2} {
		c, uv := q.Corners[i], q.UVs[i]
		out = append(out, c.X, c.Y, uv[0], uv[1])
	}
	return out
}

func triangleVertices(tri [3]math.Vec2) []float32 {
	out := make([]float32, 0, 3*4)
	for _, p := range tri {
		out = append(out, p.X, p.Y, 0, 0)
	}
	return out
}

// DrawOverview draws the overview centered in the viewport with the
// heightmap as background, then the origin and camera markers on top.
func (r *Renderer) DrawOverview(o *ui.Overview) {
	if !o.Visible() {
		return
	}

	hw, hh := float32(r.config.Width)/2, float32(r.config.Height)/2
	proj := math.Ortho(-hw, hw, -hh, hh, -1, 1)

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	p := r.overlayProg
	p.Use()
	gl.UniformMatrix4fv(p.Uniform("uProjection"), 1, false, proj.Ptr())
	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(p.Uniform("uTexture"), 0)
	locColor := p.Uniform("uColor")

	gl.BindTexture(gl.TEXTURE_2D, r.textureFor(terrain.TextureHeightmap))
	gl.Uniform3f(locColor, 1, 1, 1)
	r.ui.draw(quadTriangles(o.Background()))

	gl.BindTexture(gl.TEXTURE_2D, r.white)
	gl.Uniform3f(locColor, overviewOriginColor[0], overviewOriginColor[1], overviewOriginColor[2])
	r.ui.draw(quadTriangles(o.OriginMarker()))

	gl.Uniform3f(locColor, overviewCameraColor[0], overviewCameraColor[1], overviewCameraColor[2])
	r.ui.draw(triangleVertices(o.CameraMarker()))
}
