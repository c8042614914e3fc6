package world

import "testing"

func TestChunkLocalOutOfRangePanics(t *testing.T) {
	c := NewChunk(ChunkPos{})
	defer func() {
		if recover() == nil {
			t.Fatal("out-of-range local coordinate must panic")
		}
	}()
	c.Block(ChunkSizeX, 0, 0)
}

func TestChunkStateMachine(t *testing.T) {
	c := NewChunk(ChunkPos{})
	if !c.Dirty() {
		t.Fatal("new chunk must start dirty (needs first mesh)")
	}
	c.SetGeometry(&Geometry{})
	if c.Dirty() {
		t.Fatal("geometry assignment must transition to clean")
	}
	c.SetBlockLocal(1, 2, 3, BlockTypeGrass)
	if !c.Dirty() {
		t.Fatal("block edit must transition to dirty")
	}
}

func TestChunkRevisionTracksEdits(t *testing.T) {
	c := NewChunk(ChunkPos{})
	r0 := c.Revision()
	c.SetBlockLocal(0, 0, 0, BlockTypeStone)
	if c.Revision() == r0 {
		t.Fatal("revision must advance on a real edit")
	}
	r1 := c.Revision()
	c.SetBlockLocal(0, 0, 0, BlockTypeStone)
	if c.Revision() != r1 {
		t.Fatal("revision must not advance on a no-op write")
	}
	c.MarkDirty()
	if c.Revision() == r1 {
		t.Fatal("MarkDirty must advance the revision")
	}
}

func TestSetBlocksReplacesContents(t *testing.T) {
	c := NewChunk(ChunkPos{})
	blocks := make([]BlockType, chunkVolume)
	blocks[blockIndex(4, 100, 9)] = BlockTypeSand
	c.SetBlocks(blocks)
	if got := c.Block(4, 100, 9); got != BlockTypeSand {
		t.Fatalf("got %v, want sand", got)
	}
	if !c.Dirty() {
		t.Fatal("bulk fill must leave the chunk dirty")
	}
}

func TestCopyBlocksIsSnapshot(t *testing.T) {
	c := NewChunk(ChunkPos{})
	c.SetBlockLocal(0, 0, 0, BlockTypeStone)
	snap := c.CopyBlocks()
	c.SetBlockLocal(0, 0, 0, BlockTypeDirt)
	if snap[blockIndex(0, 0, 0)] != BlockTypeStone {
		t.Fatal("snapshot must not observe later edits")
	}
}

func TestBlockFlags(t *testing.T) {
	if BlockTypeAir.IsSolid() || !BlockTypeAir.IsTransparent() {
		t.Fatal("air must be non-solid and transparent")
	}
	if !BlockTypeWater.IsTransparent() || BlockTypeWater.IsSolid() {
		t.Fatal("water must be transparent and non-solid")
	}
	if !BlockTypeStone.IsSolid() || BlockTypeStone.IsTransparent() {
		t.Fatal("stone must be solid and opaque")
	}
	if !BlockTypeLeaves.IsSolid() || !BlockTypeLeaves.IsTransparent() {
		t.Fatal("leaves must be solid but transparent")
	}
}
