package world

// ChunkPos identifies a chunk column by its grid coordinate. Chunks span the
// full world height, so there is no Y component.
type ChunkPos struct {
	X, Z int
}

// ChunkPosAt returns the chunk position owning the given world block X/Z.
func ChunkPosAt(worldX, worldZ int) ChunkPos {
	return ChunkPos{X: floorDiv(worldX, ChunkSizeX), Z: floorDiv(worldZ, ChunkSizeZ)}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns the non-negative remainder of a/b.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
