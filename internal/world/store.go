package world

import "sync"

// ChunkStore maps chunk positions to chunk instances. Reads from meshing and
// collision may run concurrently with world-level load/unload, so the map is
// guarded by a RWMutex.
type ChunkStore struct {
	mu       sync.RWMutex
	chunks   map[ChunkPos]*Chunk
	modCount uint64 // increases on any chunk add/remove
}

// NewChunkStore creates an empty chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{chunks: make(map[ChunkPos]*Chunk)}
}

// Chunk returns the chunk at the given position, or nil when not loaded.
func (cs *ChunkStore) Chunk(pos ChunkPos) *Chunk {
	cs.mu.RLock()
	c := cs.chunks[pos]
	cs.mu.RUnlock()
	return c
}

// GetOrCreate returns the chunk at pos, creating an empty one if missing.
func (cs *ChunkStore) GetOrCreate(pos ChunkPos) *Chunk {
	cs.mu.RLock()
	c, ok := cs.chunks[pos]
	cs.mu.RUnlock()
	if ok {
		return c
	}
	cs.mu.Lock()
	defer cs.mu.Unlock()
	// Double-check: another goroutine may have created it while we waited.
	if existing, ok := cs.chunks[pos]; ok {
		return existing
	}
	c = NewChunk(pos)
	cs.chunks[pos] = c
	cs.modCount++
	return c
}

// Add installs a pre-built chunk, replacing nothing if one already exists.
func (cs *ChunkStore) Add(pos ChunkPos, c *Chunk) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if _, ok := cs.chunks[pos]; !ok {
		cs.chunks[pos] = c
		cs.modCount++
	}
}

// Has reports whether a chunk exists at pos without creating it.
func (cs *ChunkStore) Has(pos ChunkPos) bool {
	cs.mu.RLock()
	_, ok := cs.chunks[pos]
	cs.mu.RUnlock()
	return ok
}

// Len returns the number of loaded chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// All returns a snapshot slice of all loaded chunks.
func (cs *ChunkStore) All() []*Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]*Chunk, 0, len(cs.chunks))
	for _, c := range cs.chunks {
		out = append(out, c)
	}
	return out
}

// ModCount returns the current modification count of the chunk map.
func (cs *ChunkStore) ModCount() uint64 {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.modCount
}

// Evict removes chunks outside the given radius (in chunks) around a center
// chunk position, releasing their resources. The world never calls this on
// its own; it is the extension point for a streaming/eviction policy.
func (cs *ChunkStore) Evict(center ChunkPos, radius int) int {
	removed := 0
	cs.mu.Lock()
	for pos, c := range cs.chunks {
		dx := pos.X - center.X
		dz := pos.Z - center.Z
		if dx*dx+dz*dz > radius*radius {
			c.Release()
			delete(cs.chunks, pos)
			cs.modCount++
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}

// Clear releases every chunk and empties the store.
func (cs *ChunkStore) Clear() {
	cs.mu.Lock()
	for pos, c := range cs.chunks {
		c.Release()
		delete(cs.chunks, pos)
	}
	cs.modCount++
	cs.mu.Unlock()
}
