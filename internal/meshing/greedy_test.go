package meshing

import (
	"testing"

	"voxelcraft/internal/world"
)

func TestGreedySingleBlock(t *testing.T) {
	w := world.NewVoxelWorld(1)
	c := authored(w, world.ChunkPos{})
	c.SetBlockLocal(8, 64, 8, world.BlockTypeStone)

	g := GreedyMesher{}.Generate(w, c)
	if got := g.VertexCount(); got != 24 {
		t.Fatalf("isolated block: got %d vertices, want 24", got)
	}
	if got := len(g.Indices); got != 36 {
		t.Fatalf("isolated block: got %d indices, want 36", got)
	}
}

func TestGreedyMergesSlab(t *testing.T) {
	w := world.NewVoxelWorld(1)
	c := authored(w, world.ChunkPos{})
	// Interior 14x14 slab: no chunk-boundary cells, so every face of the
	// slab merges into a single rectangle.
	for x := 1; x < 15; x++ {
		for z := 1; z < 15; z++ {
			c.SetBlockLocal(x, 64, z, world.BlockTypeStone)
		}
	}

	g := GreedyMesher{}.Generate(w, c)
	if got := g.VertexCount(); got != 24 {
		t.Fatalf("interior slab should merge to 6 quads (24 vertices), got %d", got)
	}

	naive := FaceMesher{}.Generate(w, c)
	if got := naive.VertexCount(); got != 14*14*2*4+14*4*4 {
		t.Fatalf("naive slab mesh: got %d vertices, want %d", got, 14*14*2*4+14*4*4)
	}
}

func TestGreedyDoesNotMergeAcrossBlockTypes(t *testing.T) {
	w := world.NewVoxelWorld(1)
	c := authored(w, world.ChunkPos{})
	c.SetBlockLocal(8, 64, 8, world.BlockTypeGrass)
	c.SetBlockLocal(9, 64, 8, world.BlockTypeDirt)

	// Shared face culled as usual, but the remaining coplanar faces keep
	// their block type and stay separate quads: 10 quads total.
	g := GreedyMesher{}.Generate(w, c)
	if got := g.VertexCount(); got != 40 {
		t.Fatalf("mixed-type pair: got %d vertices, want 40", got)
	}
}

// faceArea sums quad areas grouped by normal direction. Quad extents are
// recoverable from the UVs, whose far corner is (du, dv).
func faceArea(g *world.Geometry) map[[3]float32]float32 {
	areas := make(map[[3]float32]float32)
	for q := 0; q*4 < g.VertexCount(); q++ {
		n := [3]float32{g.Normals[q*12], g.Normals[q*12+1], g.Normals[q*12+2]}
		far := q*8 + 4 // third corner of the quad
		areas[n] += g.UVs[far] * g.UVs[far+1]
	}
	return areas
}

func TestGreedyCoversSameAreaAsNaive(t *testing.T) {
	w := world.NewVoxelWorld(42)
	w.GenerateArea(world.ChunkPos{}, 1)
	c := w.Chunk(world.ChunkPos{})

	naive := faceArea(FaceMesher{}.Generate(w, c))
	greedy := faceArea(GreedyMesher{}.Generate(w, c))
	if len(naive) != len(greedy) {
		t.Fatalf("direction count mismatch: naive %d, greedy %d", len(naive), len(greedy))
	}
	for n, a := range naive {
		if greedy[n] != a {
			t.Fatalf("direction %v: naive area %f, greedy area %f", n, a, greedy[n])
		}
	}
}

func TestGreedyIsIdempotent(t *testing.T) {
	w := world.NewVoxelWorld(7)
	w.GenerateArea(world.ChunkPos{}, 1)
	c := w.Chunk(world.ChunkPos{})

	a := GreedyMesher{}.Generate(w, c)
	b := GreedyMesher{}.Generate(w, c)
	if !a.Equal(b) {
		t.Fatal("regenerating with unchanged inputs must yield identical geometry")
	}
}

func BenchmarkGreedyMesherFullSurface(b *testing.B) {
	w := world.NewVoxelWorld(1)
	w.GenerateArea(world.ChunkPos{}, 1)
	c := w.Chunk(world.ChunkPos{})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GreedyMesher{}.Generate(w, c)
	}
}
