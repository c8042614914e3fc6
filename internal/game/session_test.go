package game

import (
	"testing"
	"time"

	"voxelcraft/internal/config"
	"voxelcraft/internal/world"
)

func testSettings() config.Settings {
	cfg := config.Default()
	cfg.WorldRadius = 1
	cfg.MeshWorkers = 2
	return cfg
}

func TestSessionStartupMeshesTerrain(t *testing.T) {
	s := NewSession(testSettings())
	defer s.Dispose()

	s.GenerateTerrain()
	if got := s.World.Store().Len(); got != 9 {
		t.Fatalf("generated %d chunks, want 9", got)
	}
	s.MeshAllSync()

	if dirty := s.World.DirtyChunks(); len(dirty) != 0 {
		t.Fatalf("%d chunks still dirty after synchronous meshing", len(dirty))
	}
	if s.VertexCount() == 0 {
		t.Fatal("meshed terrain has no vertices")
	}
}

func TestSessionSpawnOnSurface(t *testing.T) {
	s := NewSession(testSettings())
	defer s.Dispose()
	s.GenerateTerrain()
	s.MeshAllSync()

	s.Update(1.0 / 20.0)
	if !s.Player.OnGround {
		t.Fatalf("spawned player not on ground at Y=%f", s.Player.Position.Y())
	}
}

func TestSessionEditRemeshesAsync(t *testing.T) {
	s := NewSession(testSettings())
	defer s.Dispose()
	s.GenerateTerrain()
	s.MeshAllSync()

	before := s.VertexCount()
	// A floating block over the origin adds exactly one isolated cube.
	s.World.SetBlock(8, 200, 8, world.BlockTypeStone)
	c := s.World.Chunk(world.ChunkPos{})
	if !c.Dirty() {
		t.Fatal("edit did not dirty the chunk")
	}

	deadline := time.Now().Add(5 * time.Second)
	for c.Dirty() {
		if time.Now().After(deadline) {
			t.Fatal("edited chunk never came back clean")
		}
		s.PumpMeshes()
		time.Sleep(time.Millisecond)
	}
	if got := s.VertexCount(); got != before+24 {
		t.Fatalf("vertex count after edit: got %d, want %d", got, before+24)
	}
}

func TestRegenerateAllIsStable(t *testing.T) {
	s := NewSession(testSettings())
	defer s.Dispose()
	s.GenerateTerrain()
	s.MeshAllSync()

	first := s.VertexCount()
	s.RegenerateAll()
	if got := s.VertexCount(); got != first {
		t.Fatalf("regeneration changed vertex count from %d to %d with unchanged blocks", first, got)
	}
}

func TestGreedySessionMeshesSmaller(t *testing.T) {
	cfg := testSettings()
	naive := NewSession(cfg)
	defer naive.Dispose()
	naive.GenerateTerrain()
	naive.MeshAllSync()

	cfg.GreedyMeshing = true
	greedy := NewSession(cfg)
	defer greedy.Dispose()
	greedy.GenerateTerrain()
	greedy.MeshAllSync()

	if greedy.VertexCount() >= naive.VertexCount() {
		t.Fatalf("greedy meshing produced %d vertices, naive %d", greedy.VertexCount(), naive.VertexCount())
	}
}
