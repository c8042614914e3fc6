package world

import "log"

// CellSample is the result of a world cell lookup. Loaded distinguishes a
// real stored block from ungenerated space, so policy decisions about
// unloaded cells are explicit at the call site instead of hiding behind a
// nil or a default Air.
type CellSample struct {
	Block  BlockType
	Loaded bool
}

// VoxelWorld owns all chunks and the seeded terrain generator. It is created
// once at game start and disposed at teardown.
type VoxelWorld struct {
	store *ChunkStore
	gen   *Generator
	seed  int64
}

// NewVoxelWorld creates an empty world around a seeded terrain generator.
func NewVoxelWorld(seed int64) *VoxelWorld {
	return &VoxelWorld{
		store: NewChunkStore(),
		gen:   NewGenerator(seed),
		seed:  seed,
	}
}

// Seed returns the world seed.
func (w *VoxelWorld) Seed() int64 { return w.seed }

// Store exposes the chunk map for load/unload operations.
func (w *VoxelWorld) Store() *ChunkStore { return w.store }

// Generator returns the world's terrain generator.
func (w *VoxelWorld) Generator() *Generator { return w.gen }

// Chunk returns the loaded chunk at pos, or nil.
func (w *VoxelWorld) Chunk(pos ChunkPos) *Chunk {
	return w.store.Chunk(pos)
}

// loadedChunkAt returns the generated chunk owning the given world X/Z, or
// nil when that column is not loaded.
func (w *VoxelWorld) loadedChunkAt(worldX, worldZ int) *Chunk {
	c := w.store.Chunk(ChunkPosAt(worldX, worldZ))
	if c == nil || !c.TerrainGenerated() {
		return nil
	}
	return c
}

// Sample returns the cell content at world coordinates. Y is clamped to the
// world height range before lookup.
func (w *VoxelWorld) Sample(x, y, z int) CellSample {
	c := w.loadedChunkAt(x, z)
	if c == nil {
		return CellSample{}
	}
	y = clampY(y)
	return CellSample{Block: c.Block(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ)), Loaded: true}
}

// GetBlock returns the block at world coordinates and whether the owning
// chunk is loaded. Callers must treat ok=false distinctly from Air.
func (w *VoxelWorld) GetBlock(x, y, z int) (BlockType, bool) {
	s := w.Sample(x, y, z)
	return s.Block, s.Loaded
}

// SetBlock writes a block at world coordinates, marking the owning chunk and
// any horizontally adjacent chunks dirty when the edit sits on a chunk
// border. Editing an unloaded column creates an explicitly-authored chunk.
func (w *VoxelWorld) SetBlock(x, y, z int, t BlockType) {
	y = clampY(y)
	pos := ChunkPosAt(x, z)
	c := w.store.Chunk(pos)
	if c == nil {
		c = w.store.GetOrCreate(pos)
		c.FinishGeneration()
	}
	lx := mod(x, ChunkSizeX)
	lz := mod(z, ChunkSizeZ)
	changed := c.Block(lx, y, lz) != t
	c.SetBlockLocal(lx, y, lz, t)
	if !changed {
		return
	}

	// Border faces depend on the neighbor's data, so a boundary edit
	// invalidates the neighbor's mesh too. Chunks span full height; no
	// vertical neighbors exist.
	if lx == 0 {
		w.markDirtyAt(ChunkPos{X: pos.X - 1, Z: pos.Z})
	} else if lx == ChunkSizeX-1 {
		w.markDirtyAt(ChunkPos{X: pos.X + 1, Z: pos.Z})
	}
	if lz == 0 {
		w.markDirtyAt(ChunkPos{X: pos.X, Z: pos.Z - 1})
	} else if lz == ChunkSizeZ-1 {
		w.markDirtyAt(ChunkPos{X: pos.X, Z: pos.Z + 1})
	}
}

func (w *VoxelWorld) markDirtyAt(pos ChunkPos) {
	if c := w.store.Chunk(pos); c != nil {
		c.MarkDirty()
	}
}

// MarkAllDirty force-transitions every loaded chunk to Dirty. Used once a
// loading batch completes, so boundary assumptions made while neighbors were
// missing get corrected on the next mesh pass.
func (w *VoxelWorld) MarkAllDirty() {
	for _, c := range w.store.All() {
		c.MarkDirty()
	}
}

// DirtyChunks returns the loaded chunks currently needing a remesh.
func (w *VoxelWorld) DirtyChunks() []*Chunk {
	var out []*Chunk
	for _, c := range w.store.All() {
		if c.TerrainGenerated() && c.Dirty() {
			out = append(out, c)
		}
	}
	return out
}

// GenerateChunk populates the chunk at pos if missing and returns it.
func (w *VoxelWorld) GenerateChunk(pos ChunkPos) *Chunk {
	if c := w.store.Chunk(pos); c != nil && c.TerrainGenerated() {
		return c
	}
	c := w.store.GetOrCreate(pos)
	w.gen.Populate(c)
	c.FinishGeneration()
	return c
}

// GenerateArea populates every chunk within a square radius (in chunks)
// around a center chunk position.
func (w *VoxelWorld) GenerateArea(center ChunkPos, radius int) {
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			w.GenerateChunk(ChunkPos{X: center.X + dx, Z: center.Z + dz})
		}
	}
}

// Dispose releases all chunk and mesh resources.
func (w *VoxelWorld) Dispose() {
	n := w.store.Len()
	w.store.Clear()
	log.Printf("world: disposed %d chunks (seed %d)", n, w.seed)
}

func clampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= ChunkHeight {
		return ChunkHeight - 1
	}
	return y
}
