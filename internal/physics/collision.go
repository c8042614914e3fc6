package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcraft/internal/world"
)

// Player collision volume. The box is centered on the position in X/Z and
// extends upward from it: [x-hw, x+hw] x [y, y+h] x [z-hw, z+hw].
const (
	PlayerHalfWidth = 0.3
	PlayerHeight    = 1.8

	// GroundProbeDepth is how far below the box the supplementary ground
	// probe reaches, so a stationary player on flat ground stays flagged
	// on-ground with zero vertical velocity.
	GroundProbeDepth = 0.5
)

// CellBlocks reports whether the cell at world block coordinates blocks
// movement. Cells below the world floor always block and cells above the
// world top never do. An unloaded cell blocks exactly when it sits at or
// below the ungenerated-terrain height band: below the band the player must
// not fall through terrain that has not streamed in yet, above it flight
// over unloaded chunks stays free.
func CellBlocks(w *world.VoxelWorld, x, y, z int, ungenSolidY int) bool {
	if y < 0 {
		return true
	}
	if y >= world.ChunkHeight {
		return false
	}
	s := w.Sample(x, y, z)
	if !s.Loaded {
		return y <= ungenSolidY
	}
	return s.Block.IsSolid()
}

// Collides reports whether a box at pos overlaps any blocking cell. The index
// span per axis runs floor(min)..ceil(max) inclusive; the ceiling on the
// upper bound matters when a box edge sits exactly on an integer boundary,
// where truncation would skip the one cell the box is about to enter and let
// corners clip through diagonal block arrangements. Each candidate cell is
// then checked with an exact AABB overlap test.
func Collides(pos mgl32.Vec3, halfWidth, height float32, w *world.VoxelWorld, ungenSolidY int) bool {
	minX := pos.X() - halfWidth
	maxX := pos.X() + halfWidth
	minY := pos.Y()
	maxY := pos.Y() + height
	minZ := pos.Z() - halfWidth
	maxZ := pos.Z() + halfWidth

	x0, x1 := int(math.Floor(float64(minX))), int(math.Ceil(float64(maxX)))
	y0, y1 := int(math.Floor(float64(minY))), int(math.Ceil(float64(maxY)))
	z0, z1 := int(math.Floor(float64(minZ))), int(math.Ceil(float64(maxZ)))

	for bx := x0; bx <= x1; bx++ {
		for by := y0; by <= y1; by++ {
			for bz := z0; bz <= z1; bz++ {
				if !CellBlocks(w, bx, by, bz, ungenSolidY) {
					continue
				}
				// Cell (bx,by,bz) spans [b, b+1) on each axis.
				if minX < float32(bx)+1 && maxX > float32(bx) &&
					minY < float32(by)+1 && maxY > float32(by) &&
					minZ < float32(bz)+1 && maxZ > float32(bz) {
					return true
				}
			}
		}
	}
	return false
}

// OnGround reports whether a box at pos rests on (or within GroundProbeDepth
// above) a blocking cell, independent of vertical velocity.
func OnGround(pos mgl32.Vec3, halfWidth, height float32, w *world.VoxelWorld, ungenSolidY int) bool {
	probe := mgl32.Vec3{pos.X(), pos.Y() - GroundProbeDepth, pos.Z()}
	return Collides(probe, halfWidth, height, w, ungenSolidY)
}

// FindGroundLevel returns the top surface Y of the highest blocking cell
// under the box footprint at or below fromY, or -Inf when the column is clear
// down to the world floor.
func FindGroundLevel(x, z, fromY, halfWidth float32, w *world.VoxelWorld, ungenSolidY int) float32 {
	x0 := int(math.Floor(float64(x - halfWidth)))
	x1 := int(math.Ceil(float64(x + halfWidth)))
	z0 := int(math.Floor(float64(z - halfWidth)))
	z1 := int(math.Ceil(float64(z + halfWidth)))

	best := float32(math.Inf(-1))
	for bx := x0; bx <= x1; bx++ {
		for bz := z0; bz <= z1; bz++ {
			if !cellOverlapsFootprint(bx, bz, x, z, halfWidth) {
				continue
			}
			for by := int(math.Floor(float64(fromY))); by >= 0; by-- {
				if CellBlocks(w, bx, by, bz, ungenSolidY) {
					if top := float32(by) + 1; top > best {
						best = top
					}
					break
				}
			}
		}
	}
	return best
}

// FindCeilingLevel returns the bottom surface Y of the lowest blocking cell
// above fromY over the box footprint, or +Inf when the sky is clear.
func FindCeilingLevel(x, z, fromY, halfWidth float32, w *world.VoxelWorld, ungenSolidY int) float32 {
	x0 := int(math.Floor(float64(x - halfWidth)))
	x1 := int(math.Ceil(float64(x + halfWidth)))
	z0 := int(math.Floor(float64(z - halfWidth)))
	z1 := int(math.Ceil(float64(z + halfWidth)))

	best := float32(math.Inf(1))
	for bx := x0; bx <= x1; bx++ {
		for bz := z0; bz <= z1; bz++ {
			if !cellOverlapsFootprint(bx, bz, x, z, halfWidth) {
				continue
			}
			for by := int(math.Ceil(float64(fromY))); by < world.ChunkHeight; by++ {
				if CellBlocks(w, bx, by, bz, ungenSolidY) {
					if bottom := float32(by); bottom < best {
						best = bottom
					}
					break
				}
			}
		}
	}
	return best
}

// cellOverlapsFootprint filters the ceiling-expanded index span down to cells
// the box footprint actually touches.
func cellOverlapsFootprint(bx, bz int, x, z, halfWidth float32) bool {
	return x-halfWidth < float32(bx)+1 && x+halfWidth > float32(bx) &&
		z-halfWidth < float32(bz)+1 && z+halfWidth > float32(bz)
}
