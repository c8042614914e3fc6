package world

import (
	"crypto/sha256"
	"testing"
)

// hashChunkBlocks computes a SHA-256 over all blocks in a chunk.
func hashChunkBlocks(c *Chunk) [32]byte {
	h := sha256.New()
	for y := 0; y < ChunkHeight; y++ {
		for x := 0; x < ChunkSizeX; x++ {
			for z := 0; z < ChunkSizeZ; z++ {
				b := c.Block(x, y, z)
				h.Write([]byte{byte(b), byte(b >> 8)})
			}
		}
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func TestGeneratorDeterminism(t *testing.T) {
	const seed = 12345
	var first [32]byte
	for i := 0; i < 10; i++ {
		g := NewGenerator(seed)
		c := NewChunk(ChunkPos{X: 3, Z: -7})
		g.Populate(c)
		h := hashChunkBlocks(c)
		if i == 0 {
			first = h
		} else if h != first {
			t.Fatalf("generation not deterministic at iteration %d", i)
		}
	}
}

func TestGeneratorSeedChangesTerrain(t *testing.T) {
	a := NewChunk(ChunkPos{})
	NewGenerator(1).Populate(a)
	b := NewChunk(ChunkPos{})
	NewGenerator(2).Populate(b)
	if hashChunkBlocks(a) == hashChunkBlocks(b) {
		t.Fatal("different seeds produced identical terrain")
	}
}

func TestGeneratorColumnStructure(t *testing.T) {
	g := NewGenerator(99)
	c := NewChunk(ChunkPos{})
	g.Populate(c)

	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			h := g.HeightAt(lx, lz)
			if h < 1 || h >= ChunkHeight {
				t.Fatalf("height %d out of range at (%d, %d)", h, lx, lz)
			}
			if b := c.Block(lx, 0, lz); !b.IsSolid() {
				t.Fatalf("column floor at (%d, %d) is %v, want solid", lx, lz, b)
			}
			top := c.Block(lx, h, lz)
			if top != BlockTypeGrass && top != BlockTypeSand {
				t.Fatalf("surface block at (%d, %d, %d) is %v", lx, h, lz, top)
			}
			// Above the surface there is only water up to sea level, then air.
			for y := h + 1; y < ChunkHeight; y++ {
				b := c.Block(lx, y, lz)
				if y <= g.SeaLevel() {
					if b != BlockTypeWater {
						t.Fatalf("expected water at (%d, %d, %d), got %v", lx, y, lz, b)
					}
				} else if b != BlockTypeAir {
					t.Fatalf("expected air at (%d, %d, %d), got %v", lx, y, lz, b)
				}
			}
		}
	}
}

func BenchmarkPopulateChunk(b *testing.B) {
	g := NewGenerator(123)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := NewChunk(ChunkPos{X: i, Z: -i})
		g.Populate(c)
	}
}

func BenchmarkHeightAt(b *testing.B) {
	g := NewGenerator(123)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HeightAt(i%1024, (i*31)%1024)
	}
}
