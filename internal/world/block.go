package world

// BlockType identifies the content of a single world cell.
type BlockType uint16

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeWood
	BlockTypeLeaves
	BlockTypeSand
	BlockTypeWater
)

// blockProps carries the two flags meshing and collision care about.
type blockProps struct {
	name        string
	solid       bool
	transparent bool
}

var blockTable = [...]blockProps{
	BlockTypeAir:    {name: "air", solid: false, transparent: true},
	BlockTypeGrass:  {name: "grass", solid: true, transparent: false},
	BlockTypeDirt:   {name: "dirt", solid: true, transparent: false},
	BlockTypeStone:  {name: "stone", solid: true, transparent: false},
	BlockTypeWood:   {name: "wood", solid: true, transparent: false},
	BlockTypeLeaves: {name: "leaves", solid: true, transparent: true},
	BlockTypeSand:   {name: "sand", solid: true, transparent: false},
	BlockTypeWater:  {name: "water", solid: false, transparent: true},
}

// IsSolid reports whether the block participates in collision and occludes
// the faces of adjacent opaque blocks.
func (b BlockType) IsSolid() bool {
	if int(b) >= len(blockTable) {
		return false
	}
	return blockTable[b].solid
}

// IsTransparent reports whether faces adjacent to this block must still be
// emitted. Air is always transparent.
func (b BlockType) IsTransparent() bool {
	if int(b) >= len(blockTable) {
		return true
	}
	return blockTable[b].transparent
}

func (b BlockType) String() string {
	if int(b) >= len(blockTable) {
		return "unknown"
	}
	return blockTable[b].name
}
