package world

import "fmt"

const (
	// Chunk dimensions: a chunk is a full-height 16x16 column.
	ChunkSizeX  = 16
	ChunkSizeZ  = 16
	ChunkHeight = 256

	chunkVolume = ChunkSizeX * ChunkSizeZ * ChunkHeight
)

// MeshState is the per-chunk mesh freshness state machine. A chunk is Dirty
// from terrain generation until its first mesh is assigned, and again after
// any block edit; assigning a freshly generated geometry makes it Clean.
type MeshState uint8

const (
	MeshStateClean MeshState = iota
	MeshStateDirty
)

// Chunk owns the dense block array for one column of the world plus the
// geometry derived from it.
type Chunk struct {
	Pos ChunkPos

	blocks           []BlockType
	terrainGenerated bool
	meshState        MeshState
	revision         uint64
	geometry         *Geometry
}

// NewChunk creates an empty (all-air) chunk at the given position.
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{
		Pos:       pos,
		blocks:    make([]BlockType, chunkVolume),
		meshState: MeshStateDirty,
	}
}

func blockIndex(x, y, z int) int {
	if x < 0 || x >= ChunkSizeX || y < 0 || y >= ChunkHeight || z < 0 || z >= ChunkSizeZ {
		panic(fmt.Sprintf("world: local block coordinate out of range: (%d, %d, %d)", x, y, z))
	}
	return (x*ChunkHeight+y)*ChunkSizeZ + z
}

// Block returns the block at chunk-local coordinates. Out-of-range locals are
// a caller bug and panic.
func (c *Chunk) Block(x, y, z int) BlockType {
	return c.blocks[blockIndex(x, y, z)]
}

// SetBlockLocal writes a block at chunk-local coordinates, marking the chunk
// dirty and bumping its revision when the content actually changes.
func (c *Chunk) SetBlockLocal(x, y, z int, t BlockType) {
	idx := blockIndex(x, y, z)
	if c.blocks[idx] == t {
		return
	}
	c.blocks[idx] = t
	c.revision++
	c.meshState = MeshStateDirty
}

// SetBlocks bulk-replaces the dense block array from a slice in CopyBlocks
// order. Used by persistence when restoring a chunk.
func (c *Chunk) SetBlocks(blocks []BlockType) {
	if len(blocks) != chunkVolume {
		panic("world: SetBlocks requires a full chunk volume")
	}
	copy(c.blocks, blocks)
	c.revision++
	c.meshState = MeshStateDirty
}

// CopyBlocks returns a snapshot copy of the dense block array, in
// x-major/y/z-minor order matching Block's indexing.
func (c *Chunk) CopyBlocks() []BlockType {
	out := make([]BlockType, chunkVolume)
	copy(out, c.blocks)
	return out
}

// TerrainGenerated reports whether the terrain generator has populated the
// chunk. Chunks that exist but are not yet generated are treated as unloaded
// by world block lookups.
func (c *Chunk) TerrainGenerated() bool {
	return c.terrainGenerated
}

// FinishGeneration marks the chunk populated and in need of its first mesh.
func (c *Chunk) FinishGeneration() {
	c.terrainGenerated = true
	c.revision++
	c.meshState = MeshStateDirty
}

// Dirty reports whether the stored geometry no longer reflects the blocks.
func (c *Chunk) Dirty() bool {
	return c.meshState == MeshStateDirty
}

// MarkDirty forces the chunk to be remeshed, bumping the revision so in-flight
// mesh jobs built from older block state are discarded.
func (c *Chunk) MarkDirty() {
	c.revision++
	c.meshState = MeshStateDirty
}

// Revision returns the chunk's current edit revision.
func (c *Chunk) Revision() uint64 {
	return c.revision
}

// Geometry returns the chunk's current mesh geometry, nil before first mesh.
func (c *Chunk) Geometry() *Geometry {
	return c.geometry
}

// SetGeometry replaces the chunk's geometry wholesale and transitions the
// mesh state to Clean. The previous geometry is released.
func (c *Chunk) SetGeometry(g *Geometry) {
	if c.geometry != nil && c.geometry != g {
		c.geometry.Release()
	}
	c.geometry = g
	c.meshState = MeshStateClean
}

// Release frees the chunk's geometry and block storage.
func (c *Chunk) Release() {
	if c.geometry != nil {
		c.geometry.Release()
		c.geometry = nil
	}
	c.blocks = nil
}
