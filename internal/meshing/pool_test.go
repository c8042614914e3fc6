package meshing

import (
	"testing"
	"time"

	"voxelcraft/internal/world"
)

func awaitResult(t *testing.T, p *Pool) Result {
	t.Helper()
	select {
	case r := <-p.Results():
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for mesh result")
	}
	return Result{}
}

func TestPoolMeshesAndApplies(t *testing.T) {
	w := world.NewVoxelWorld(1)
	c := authored(w, world.ChunkPos{})
	c.SetBlockLocal(8, 64, 8, world.BlockTypeStone)

	p := NewPool(FaceMesher{}, 2, 8)
	defer p.Shutdown()

	if !p.Submit(w, c) {
		t.Fatal("submit rejected on empty queue")
	}
	r := awaitResult(t, p)
	if !p.Apply(r) {
		t.Fatal("fresh result was discarded")
	}
	if c.Dirty() {
		t.Fatal("chunk still dirty after applying its mesh")
	}
	if got := c.Geometry().VertexCount(); got != 24 {
		t.Fatalf("installed geometry has %d vertices, want 24", got)
	}
}

func TestPoolDiscardsStaleResult(t *testing.T) {
	w := world.NewVoxelWorld(1)
	c := authored(w, world.ChunkPos{})
	c.SetBlockLocal(8, 64, 8, world.BlockTypeStone)

	p := NewPool(FaceMesher{}, 1, 8)
	defer p.Shutdown()

	if !p.Submit(w, c) {
		t.Fatal("submit rejected on empty queue")
	}
	// Edit after the snapshot: the in-flight result is now stale.
	c.SetBlockLocal(9, 64, 8, world.BlockTypeStone)

	r := awaitResult(t, p)
	if p.Apply(r) {
		t.Fatal("stale result was applied")
	}
	if !c.Dirty() {
		t.Fatal("chunk must stay dirty after a stale result is dropped")
	}

	// The next round meshes the edited state.
	if !p.Submit(w, c) {
		t.Fatal("resubmit rejected")
	}
	r = awaitResult(t, p)
	if !p.Apply(r) {
		t.Fatal("fresh result was discarded")
	}
	if got := c.Geometry().VertexCount(); got != 40 {
		t.Fatalf("installed geometry has %d vertices, want 40", got)
	}
}

func TestPoolSubmitRejectsWhenFull(t *testing.T) {
	w := world.NewVoxelWorld(1)
	p := NewPool(FaceMesher{}, 1, 1)
	defer p.Shutdown()

	// Saturate the single-slot queue. Workers may drain a job between
	// submits, so keep pushing until one is refused.
	refused := false
	for i := 0; i < 1000 && !refused; i++ {
		c := authored(w, world.ChunkPos{X: i})
		refused = !p.Submit(w, c)
	}
	if !refused {
		t.Fatal("submit never reported a full queue")
	}
}

func TestPoolSnapshotIsolation(t *testing.T) {
	w := world.NewVoxelWorld(1)
	c := authored(w, world.ChunkPos{})
	c.SetBlockLocal(8, 64, 8, world.BlockTypeStone)

	p := NewPool(FaceMesher{}, 1, 8)
	defer p.Shutdown()

	p.Submit(w, c)
	// Concurrent edits must not affect the queued snapshot.
	for x := 0; x < world.ChunkSizeX; x++ {
		c.SetBlockLocal(x, 100, 0, world.BlockTypeDirt)
	}
	r := awaitResult(t, p)
	if got := r.Geometry.VertexCount(); got != 24 {
		t.Fatalf("snapshot mesh has %d vertices, want 24 (pre-edit state)", got)
	}
}
