package hull

import (
	"encoding/binary"

	"github.com/KaikoClanworth1/igbhull/types"
)

// Generate count triangles with distinct positions. Triangle i spans
// x in [i, i+1], y in [0, 1] and z in [0, 1], so the bounds of any index
// range [s, e) are exactly min (s, 0, 0) / max (e, 1, 1).
func makeTriangles(count int, surfaceType uint32) []Triangle {
	tris := make([]Triangle, count)
	for i := range tris {
		x := float32(i)
		tris[i] = Triangle{
			Verts: [3]types.Vec3{
				{x, 0, 0},
				{x + 1, 1, 0},
				{x + 1, 0, 1},
			},
			SurfaceType: surfaceType,
		}
	}
	return tris
}

// Decode the little-endian float32 word at the given word index.
func wordAt(data []byte, wordIndex int) uint32 {
	return binary.LittleEndian.Uint32(data[wordIndex*4:])
}

func floatAt(data []byte, wordIndex int) float32 {
	return BitsToFloat(wordAt(data, wordIndex))
}
