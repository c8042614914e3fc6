package meshing

import (
	"voxelcraft/internal/profiling"
	"voxelcraft/internal/world"
)

// Mesher converts a chunk's block grid into renderable geometry. Generation
// is a pure function of the chunk and its four horizontal neighbors; it never
// fails on valid chunk input.
type Mesher interface {
	Generate(w *world.VoxelWorld, c *world.Chunk) *world.Geometry

	generateView(v *chunkView) *world.Geometry
}

// faceDef describes one of the six axis-aligned faces of a cell: the normal
// axis and sign plus the two in-plane tangent axes, ordered so the quad winds
// counter-clockwise seen from outside.
type faceDef struct {
	axis   int // 0=X, 1=Y, 2=Z
	sign   int // +1 or -1
	uAxis  int
	vAxis  int
	normal [3]float32
}

var faceDefs = [6]faceDef{
	{axis: 0, sign: +1, uAxis: 1, vAxis: 2, normal: [3]float32{1, 0, 0}},  // east
	{axis: 0, sign: -1, uAxis: 2, vAxis: 1, normal: [3]float32{-1, 0, 0}}, // west
	{axis: 1, sign: +1, uAxis: 2, vAxis: 0, normal: [3]float32{0, 1, 0}},  // top
	{axis: 1, sign: -1, uAxis: 0, vAxis: 2, normal: [3]float32{0, -1, 0}}, // bottom
	{axis: 2, sign: +1, uAxis: 0, vAxis: 1, normal: [3]float32{0, 0, 1}},  // north
	{axis: 2, sign: -1, uAxis: 1, vAxis: 0, normal: [3]float32{0, 0, -1}}, // south
}

// builder accumulates quad faces into geometry buffers.
type builder struct {
	geo world.Geometry
}

// emitQuad appends one quad (4 vertices, 2 triangles) whose first corner sits
// at origin and which extends du cells along the face's u tangent and dv
// cells along its v tangent.
func (b *builder) emitQuad(f faceDef, origin [3]float32, du, dv int) {
	base := uint32(len(b.geo.Positions) / 3)

	var uVec, vVec [3]float32
	uVec[f.uAxis] = float32(du)
	vVec[f.vAxis] = float32(dv)

	corners := [4][3]float32{
		origin,
		{origin[0] + uVec[0], origin[1] + uVec[1], origin[2] + uVec[2]},
		{origin[0] + uVec[0] + vVec[0], origin[1] + uVec[1] + vVec[1], origin[2] + uVec[2] + vVec[2]},
		{origin[0] + vVec[0], origin[1] + vVec[1], origin[2] + vVec[2]},
	}
	uvs := [4][2]float32{
		{0, 0},
		{float32(du), 0},
		{float32(du), float32(dv)},
		{0, float32(dv)},
	}

	for i := range corners {
		b.geo.Positions = append(b.geo.Positions, corners[i][0], corners[i][1], corners[i][2])
		b.geo.Normals = append(b.geo.Normals, f.normal[0], f.normal[1], f.normal[2])
		b.geo.UVs = append(b.geo.UVs, uvs[i][0], uvs[i][1])
	}
	b.geo.Indices = append(b.geo.Indices, base, base+1, base+2, base, base+2, base+3)
}

// faceOrigin returns the world-space position of a face's first corner for
// the cell at chunk-local (x, y, z).
func faceOrigin(f faceDef, pos world.ChunkPos, x, y, z int) [3]float32 {
	cell := [3]int{pos.X*world.ChunkSizeX + x, y, pos.Z*world.ChunkSizeZ + z}
	if f.sign > 0 {
		cell[f.axis]++
	}
	return [3]float32{float32(cell[0]), float32(cell[1]), float32(cell[2])}
}

// faceVisible decides whether the face of a solid cell pointing at the given
// neighbor cell must be emitted.
//
// Policy, in order: below the world floor nothing is emitted; above the world
// top the sky is open so the face shows; a neighbor inside an unloaded chunk
// is assumed solid, suppressing the face until the neighbor streams in and a
// remesh corrects the boundary; otherwise the face shows exactly when the
// neighbor does not occlude it (non-solid or transparent).
func faceVisible(v *chunkView, nx, ny, nz int) bool {
	if ny < 0 {
		return false
	}
	if ny >= world.ChunkHeight {
		return true
	}
	nb, ok := v.sample(nx, ny, nz)
	if !ok {
		return false
	}
	return !nb.IsSolid() || nb.IsTransparent()
}

// FaceMesher is the baseline face-culling mesher: one quad per visible face,
// no merging across coplanar neighbors.
type FaceMesher struct{}

func (FaceMesher) Generate(w *world.VoxelWorld, c *world.Chunk) *world.Geometry {
	defer profiling.Track("meshing.Face")()
	return FaceMesher{}.generateView(newChunkView(w, c))
}

func (FaceMesher) generateView(v *chunkView) *world.Geometry {
	var b builder
	for x := 0; x < world.ChunkSizeX; x++ {
		for y := 0; y < world.ChunkHeight; y++ {
			for z := 0; z < world.ChunkSizeZ; z++ {
				if !v.block(x, y, z).IsSolid() {
					continue
				}
				for _, f := range faceDefs {
					n := [3]int{x, y, z}
					n[f.axis] += f.sign
					if faceVisible(v, n[0], n[1], n[2]) {
						b.emitQuad(f, faceOrigin(f, v.pos, x, y, z), 1, 1)
					}
				}
			}
		}
	}
	return &b.geo
}
