package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/jonlamb-gh/heli-x-scene3d-tool/internal/engine/terrain"
)

// gpuMesh is an uploaded tile mesh.
type gpuMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// meshUploader moves tile meshes in and out of GPU memory.
type meshUploader interface {
	upload(mesh *terrain.TileMesh) gpuMesh
	release(m gpuMesh)
}

type storedMesh struct {
	mesh *terrain.TileMesh
	gpu  gpuMesh
}

// MeshStore is the renderer-owned mesh registry. Inserting a name uploads the
// mesh to GL buffers; re-inserting or removing a name frees the old buffers.
type MeshStore struct {
	uploader meshUploader
	meshes   map[string]storedMesh
}

var _ terrain.MeshRegistry = (*MeshStore)(nil)

// NewMeshStore creates an empty store. Requires a current GL context.
func NewMeshStore() *MeshStore {
	return newMeshStore(glUploader{})
}

func newMeshStore(u meshUploader) *MeshStore {
	return &MeshStore{
		uploader: u,
		meshes:   make(map[string]storedMesh),
	}
}

// Insert uploads mesh under name, replacing any mesh with that name.
func (s *MeshStore) Insert(name string, mesh *terrain.TileMesh) {
	s.Remove(name)
	s.meshes[name] = storedMesh{mesh: mesh, gpu: s.uploader.upload(mesh)}
}

// Remove frees the mesh registered under name, if any.
func (s *MeshStore) Remove(name string) {
	if old, ok := s.meshes[name]; ok {
		s.uploader.release(old.gpu)
		delete(s.meshes, name)
	}
}

// Lookup returns the CPU-side mesh registered under name.
func (s *MeshStore) Lookup(name string) (*terrain.TileMesh, bool) {
	m, ok := s.meshes[name]
	return m.mesh, ok
}

// Len returns the number of registered meshes.
func (s *MeshStore) Len() int {
	return len(s.meshes)
}

func (s *MeshStore) handle(name string) (gpuMesh, bool) {
	m, ok := s.meshes[name]
	return m.gpu, ok
}

// Close frees every registered mesh.
func (s *MeshStore) Close() {
	for name := range s.meshes {
		s.Remove(name)
	}
}

type glUploader struct{}

func (glUploader) upload(mesh *terrain.TileMesh) gpuMesh {
	verts, indices := interleave(mesh)
	m := gpuMesh{indexCount: int32(len(indices))}
	if len(verts) == 0 || len(indices) == 0 {
		return m
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	// Position (location 0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)

	// Normal (location 1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	// TexCoord (location 2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return m
}

func (glUploader) release(m gpuMesh) {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
