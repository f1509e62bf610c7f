package terrain

// MeshRegistry stores tile meshes by name. It is owned by the renderer and
// passed explicitly to the terrain; there is no process-wide registry.
type MeshRegistry interface {
	Insert(name string, mesh *TileMesh)
	Remove(name string)
	Lookup(name string) (*TileMesh, bool)
}

// MemoryRegistry is a MeshRegistry backed by a map. It is used when no GPU is
// attached, e.g. by terraintool.
type MemoryRegistry struct {
	meshes map[string]*TileMesh
}

// NewMemoryRegistry creates an empty registry.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{meshes: make(map[string]*TileMesh)}
}

// Insert stores mesh under name, replacing any previous entry.
func (r *MemoryRegistry) Insert(name string, mesh *TileMesh) {
	r.meshes[name] = mesh
}

// Remove deletes the entry for name if present.
func (r *MemoryRegistry) Remove(name string) {
	delete(r.meshes, name)
}

// Lookup returns the mesh stored under name.
func (r *MemoryRegistry) Lookup(name string) (*TileMesh, bool) {
	m, ok := r.meshes[name]
	return m, ok
}

// Len returns the number of stored meshes.
func (r *MemoryRegistry) Len() int {
	return len(r.meshes)
}
