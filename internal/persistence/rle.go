package persistence

import (
	"encoding/binary"
	"fmt"

	"voxelcraft/internal/world"
)

// Chunk block arrays are long runs of identical blocks (stone cores, air
// columns), so a simple run-length encoding collapses them well before
// compression: a sequence of (count uint16, type uint16) little-endian pairs.

// EncodeRLE run-length encodes a dense block array.
func EncodeRLE(blocks []world.BlockType) []byte {
	out := make([]byte, 0, 1024)
	i := 0
	for i < len(blocks) {
		t := blocks[i]
		n := 1
		for i+n < len(blocks) && blocks[i+n] == t && n < 0xFFFF {
			n++
		}
		var run [4]byte
		binary.LittleEndian.PutUint16(run[0:2], uint16(n))
		binary.LittleEndian.PutUint16(run[2:4], uint16(t))
		out = append(out, run[:]...)
		i += n
	}
	return out
}

// DecodeRLE expands run-length encoded data into exactly want blocks.
func DecodeRLE(data []byte, want int) ([]world.BlockType, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("rle: truncated run data (%d bytes)", len(data))
	}
	out := make([]world.BlockType, 0, want)
	for i := 0; i < len(data); i += 4 {
		n := int(binary.LittleEndian.Uint16(data[i : i+2]))
		t := world.BlockType(binary.LittleEndian.Uint16(data[i+2 : i+4]))
		if n == 0 || len(out)+n > want {
			return nil, fmt.Errorf("rle: run overflows chunk volume at offset %d", i)
		}
		for j := 0; j < n; j++ {
			out = append(out, t)
		}
	}
	if len(out) != want {
		return nil, fmt.Errorf("rle: decoded %d blocks, want %d", len(out), want)
	}
	return out, nil
}
