package world

// Geometry is the renderable artifact derived from a chunk's blocks: separate
// position/normal/uv arrays plus a triangle index list. It is owned by the
// chunk that generated it, replaced wholesale on regeneration and never
// mutated in place.
type Geometry struct {
	Positions []float32 // 3 floats per vertex
	Normals   []float32 // 3 floats per vertex
	UVs       []float32 // 2 floats per vertex
	Indices   []uint32  // 3 indices per triangle
}

// VertexCount returns the number of vertices in the geometry.
func (g *Geometry) VertexCount() int {
	if g == nil {
		return 0
	}
	return len(g.Positions) / 3
}

// TriangleCount returns the number of triangles in the geometry.
func (g *Geometry) TriangleCount() int {
	if g == nil {
		return 0
	}
	return len(g.Indices) / 3
}

// Release drops the buffer references so the backing arrays can be collected.
func (g *Geometry) Release() {
	if g == nil {
		return
	}
	g.Positions = nil
	g.Normals = nil
	g.UVs = nil
	g.Indices = nil
}

// Equal reports whether two geometries hold identical buffer contents.
func (g *Geometry) Equal(other *Geometry) bool {
	if g == nil || other == nil {
		return g.VertexCount() == 0 && other.VertexCount() == 0
	}
	if len(g.Positions) != len(other.Positions) ||
		len(g.Normals) != len(other.Normals) ||
		len(g.UVs) != len(other.UVs) ||
		len(g.Indices) != len(other.Indices) {
		return false
	}
	for i := range g.Positions {
		if g.Positions[i] != other.Positions[i] {
			return false
		}
	}
	for i := range g.Normals {
		if g.Normals[i] != other.Normals[i] {
			return false
		}
	}
	for i := range g.UVs {
		if g.UVs[i] != other.UVs[i] {
			return false
		}
	}
	for i := range g.Indices {
		if g.Indices[i] != other.Indices[i] {
			return false
		}
	}
	return true
}
