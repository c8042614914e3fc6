package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcraft/internal/world"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0
)

// RaycastResult reports the first solid block hit along a ray, plus the last
// empty cell before it (where a placed block would go).
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Distance         float32
	Hit              bool
}

// Raycast marches a ray through the voxel grid and returns the first solid
// block within [minDist, maxDist]. Unloaded cells never hit.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, w *world.VoxelWorld) RaycastResult {
	const stepSize = 0.02
	steps := int(maxDist / stepSize)

	var lastEmpty [3]int
	result := RaycastResult{Hit: false}

	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}
		p := start.Add(direction.Mul(dist))
		cell := [3]int{
			int(math.Floor(float64(p.X()))),
			int(math.Floor(float64(p.Y()))),
			int(math.Floor(float64(p.Z()))),
		}
		if s := w.Sample(cell[0], cell[1], cell[2]); s.Loaded && s.Block.IsSolid() {
			result.HitPosition = cell
			result.AdjacentPosition = lastEmpty
			result.Distance = dist
			result.Hit = true
			return result
		}
		lastEmpty = cell
	}
	return result
}
