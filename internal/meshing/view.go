package meshing

import "voxelcraft/internal/world"

// chunkView is a read-only snapshot of one chunk's blocks plus the facing
// border walls of its four horizontal neighbors. Meshing operates on the
// snapshot, so a chunk's mesh generation never races a SetBlock write to the
// chunk or its neighbor data, and regenerating from an unchanged snapshot is
// trivially idempotent.
type chunkView struct {
	pos    world.ChunkPos
	blocks []world.BlockType

	// Neighbor border walls, nil when the neighbor chunk is not loaded.
	// wallWest/wallEast are indexed y*ChunkSizeZ+z, wallSouth/wallNorth
	// y*ChunkSizeX+x.
	wallWest  []world.BlockType // x = -1 plane
	wallEast  []world.BlockType // x = ChunkSizeX plane
	wallSouth []world.BlockType // z = -1 plane
	wallNorth []world.BlockType // z = ChunkSizeZ plane
}

func newChunkView(w *world.VoxelWorld, c *world.Chunk) *chunkView {
	v := &chunkView{pos: c.Pos, blocks: c.CopyBlocks()}
	v.wallWest = copyWallX(w, world.ChunkPos{X: c.Pos.X - 1, Z: c.Pos.Z}, world.ChunkSizeX-1)
	v.wallEast = copyWallX(w, world.ChunkPos{X: c.Pos.X + 1, Z: c.Pos.Z}, 0)
	v.wallSouth = copyWallZ(w, world.ChunkPos{X: c.Pos.X, Z: c.Pos.Z - 1}, world.ChunkSizeZ-1)
	v.wallNorth = copyWallZ(w, world.ChunkPos{X: c.Pos.X, Z: c.Pos.Z + 1}, 0)
	return v
}

func copyWallX(w *world.VoxelWorld, pos world.ChunkPos, localX int) []world.BlockType {
	n := w.Chunk(pos)
	if n == nil || !n.TerrainGenerated() {
		return nil
	}
	wall := make([]world.BlockType, world.ChunkHeight*world.ChunkSizeZ)
	for y := 0; y < world.ChunkHeight; y++ {
		for z := 0; z < world.ChunkSizeZ; z++ {
			wall[y*world.ChunkSizeZ+z] = n.Block(localX, y, z)
		}
	}
	return wall
}

func copyWallZ(w *world.VoxelWorld, pos world.ChunkPos, localZ int) []world.BlockType {
	n := w.Chunk(pos)
	if n == nil || !n.TerrainGenerated() {
		return nil
	}
	wall := make([]world.BlockType, world.ChunkHeight*world.ChunkSizeX)
	for y := 0; y < world.ChunkHeight; y++ {
		for x := 0; x < world.ChunkSizeX; x++ {
			wall[y*world.ChunkSizeX+x] = n.Block(x, y, localZ)
		}
	}
	return wall
}

// block returns the chunk-local block; coordinates must be in range.
func (v *chunkView) block(x, y, z int) world.BlockType {
	return v.blocks[(x*world.ChunkHeight+y)*world.ChunkSizeZ+z]
}

// sample looks up a cell that may extend one step beyond the chunk in X or Z.
// ok is false when the cell lies in an unloaded neighbor chunk.
func (v *chunkView) sample(x, y, z int) (world.BlockType, bool) {
	switch {
	case x < 0:
		if v.wallWest == nil {
			return world.BlockTypeAir, false
		}
		return v.wallWest[y*world.ChunkSizeZ+z], true
	case x >= world.ChunkSizeX:
		if v.wallEast == nil {
			return world.BlockTypeAir, false
		}
		return v.wallEast[y*world.ChunkSizeZ+z], true
	case z < 0:
		if v.wallSouth == nil {
			return world.BlockTypeAir, false
		}
		return v.wallSouth[y*world.ChunkSizeX+x], true
	case z >= world.ChunkSizeZ:
		if v.wallNorth == nil {
			return world.BlockTypeAir, false
		}
		return v.wallNorth[y*world.ChunkSizeX+x], true
	default:
		return v.block(x, y, z), true
	}
}
