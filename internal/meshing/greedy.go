package meshing

import (
	"voxelcraft/internal/profiling"
	"voxelcraft/internal/world"
)

// GreedyMesher merges coplanar visible faces of the same block type into
// larger quads. It emits exactly the same visible-face set as FaceMesher,
// only with fewer vertices; it is an optimization, not a correctness change.
type GreedyMesher struct{}

var chunkDims = [3]int{world.ChunkSizeX, world.ChunkHeight, world.ChunkSizeZ}

func (GreedyMesher) Generate(w *world.VoxelWorld, c *world.Chunk) *world.Geometry {
	defer profiling.Track("meshing.Greedy")()
	return GreedyMesher{}.generateView(newChunkView(w, c))
}

func (GreedyMesher) generateView(v *chunkView) *world.Geometry {
	var b builder
	for _, f := range faceDefs {
		greedyDirection(&b, v, f)
	}
	return &b.geo
}

// greedyDirection runs 2D greedy merging for one face direction: for each
// layer along the normal axis it builds a mask of visible faces keyed by
// block type, then grows maximal rectangles of equal type.
func greedyDirection(out *builder, v *chunkView, f faceDef) {
	layers := chunkDims[f.axis]
	sizeU := chunkDims[f.uAxis]
	sizeV := chunkDims[f.vAxis]

	mask := make([]world.BlockType, sizeU*sizeV)

	for layer := 0; layer < layers; layer++ {
		// Fill the visibility mask. Air is the zero value and never solid,
		// so 0 doubles as "no face here".
		for a := 0; a < sizeU; a++ {
			for b := 0; b < sizeV; b++ {
				var cell [3]int
				cell[f.axis] = layer
				cell[f.uAxis] = a
				cell[f.vAxis] = b

				bt := v.block(cell[0], cell[1], cell[2])
				if !bt.IsSolid() {
					mask[a*sizeV+b] = world.BlockTypeAir
					continue
				}
				n := cell
				n[f.axis] += f.sign
				if faceVisible(v, n[0], n[1], n[2]) {
					mask[a*sizeV+b] = bt
				} else {
					mask[a*sizeV+b] = world.BlockTypeAir
				}
			}
		}

		// Greedy merge over the mask.
		for i := 0; i < len(mask); {
			bt := mask[i]
			if bt == world.BlockTypeAir {
				i++
				continue
			}
			a0 := i / sizeV
			b0 := i % sizeV

			// Width along the v axis.
			db := 1
			for b1 := b0 + 1; b1 < sizeV && mask[a0*sizeV+b1] == bt; b1++ {
				db++
			}
			// Height along the u axis.
			da := 1
		grow:
			for a1 := a0 + 1; a1 < sizeU; a1++ {
				for b1 := b0; b1 < b0+db; b1++ {
					if mask[a1*sizeV+b1] != bt {
						break grow
					}
				}
				da++
			}

			var cell [3]int
			cell[f.axis] = layer
			cell[f.uAxis] = a0
			cell[f.vAxis] = b0
			out.emitQuad(f, faceOrigin(f, v.pos, cell[0], cell[1], cell[2]), da, db)

			for a1 := a0; a1 < a0+da; a1++ {
				for b1 := b0; b1 < b0+db; b1++ {
					mask[a1*sizeV+b1] = world.BlockTypeAir
				}
			}
			i++
		}
	}
}
