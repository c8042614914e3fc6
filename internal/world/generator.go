package world

import "math"

// Generator produces terrain from a seeded noise heightmap.
type Generator struct {
	seed        int64
	scale       float64
	baseHeight  int
	amp         float64
	octaves     int
	persistence float64
	lacunarity  float64
	seaLevel    int
}

// NewGenerator creates a generator with default terrain settings.
func NewGenerator(seed int64) *Generator {
	return &Generator{
		seed:        seed,
		scale:       1.0 / 64.0,
		baseHeight:  56,
		amp:         24,
		octaves:     4,
		persistence: 0.5,
		lacunarity:  2.0,
		seaLevel:    60,
	}
}

// SeaLevel returns the water fill level.
func (g *Generator) SeaLevel() int { return g.seaLevel }

// HeightAt computes the surface height (topmost solid block Y) at world X/Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	x := float64(worldX) * g.scale
	z := float64(worldZ) * g.scale
	n := octaveNoise2D(x, z, g.seed, g.octaves, g.persistence, g.lacunarity)
	h := float64(g.baseHeight) + n*g.amp
	if h < 1 {
		h = 1
	}
	if h > float64(ChunkHeight-1) {
		h = float64(ChunkHeight - 1)
	}
	return int(math.Floor(h))
}

// Populate bulk-fills a chunk from the heightmap: stone core, a dirt band,
// grass on top, sand near the water line and water filling up to sea level.
func (g *Generator) Populate(c *Chunk) {
	baseX := c.Pos.X * ChunkSizeX
	baseZ := c.Pos.Z * ChunkSizeZ
	for lx := 0; lx < ChunkSizeX; lx++ {
		for lz := 0; lz < ChunkSizeZ; lz++ {
			height := g.HeightAt(baseX+lx, baseZ+lz)
			for ly := 0; ly < height; ly++ {
				if ly < height-3 {
					c.SetBlockLocal(lx, ly, lz, BlockTypeStone)
				} else {
					c.SetBlockLocal(lx, ly, lz, BlockTypeDirt)
				}
			}
			switch {
			case height <= g.seaLevel+1:
				c.SetBlockLocal(lx, height, lz, BlockTypeSand)
			default:
				c.SetBlockLocal(lx, height, lz, BlockTypeGrass)
			}
			for ly := height + 1; ly <= g.seaLevel; ly++ {
				c.SetBlockLocal(lx, ly, lz, BlockTypeWater)
			}
		}
	}
}
