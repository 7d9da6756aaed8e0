package hull

import (
	"encoding/binary"
	"fmt"

	"github.com/KaikoClanworth1/igbhull/types"
)

// Serialized record sizes in bytes.
const (
	// 12 little-endian float32 words per triangle.
	TriangleRecordSize = 48

	// 8 little-endian float32 words per tree record.
	NodeRecordSize = 32
)

// PackTriangles serializes tris into the engine's triangle buffer layout:
// three 4-float vertices per triangle where the w lanes carry, in vertex
// order, zero, the builder-assigned leaf tag and the surface type, each
// stored as raw bits inside the float slot.
//
// leafTags must be the tag array produced by BuildTree for the same
// triangle list. A length mismatch cannot happen through the documented
// construction path and is treated as a programming error.
func PackTriangles(tris []Triangle, leafTags []uint32) []byte {
	if len(tris) != len(leafTags) {
		panic(fmt.Sprintf("hull: %d triangles but %d leaf tags", len(tris), len(leafTags)))
	}

	data := make([]byte, len(tris)*TriangleRecordSize)
	offset := 0
	for i, tri := range tris {
		wLanes := [3]float32{
			BitsToFloat(0),
			BitsToFloat(leafTags[i]),
			BitsToFloat(tri.SurfaceType),
		}
		for vi, v := range tri.Verts {
			offset = putVec4(data, offset, v.Vec4(wLanes[vi]))
		}
	}
	return data
}

// PackTree serializes the active nodes in index order followed by exactly
// one sentinel record. The sentinel repeats the root node's bounds (the
// broad-phase volume the engine tests before walking the tree) and is
// marked non-geometric by the two sentinel magics in its tag slots.
func PackTree(tree *Tree) []byte {
	data := make([]byte, (len(tree.Nodes)+1)*NodeRecordSize)
	offset := 0
	for _, node := range tree.Nodes {
		offset = putNode(data, offset, node.Min, node.Max, node.D1, node.D2)
	}

	root := tree.Nodes[0]
	putNode(data, offset, root.Min, root.Max, SentinelD1, SentinelD2)
	return data
}

// Emit one 32-byte tree record: min.xyz, d1 bits, max.xyz, d2 bits.
func putNode(data []byte, offset int, min, max types.Vec3, d1, d2 uint32) int {
	offset = putVec4(data, offset, min.Vec4(BitsToFloat(d1)))
	return putVec4(data, offset, max.Vec4(BitsToFloat(d2)))
}

// Emit one 4-float lane as little-endian float32 words.
func putVec4(data []byte, offset int, v types.Vec4) int {
	for _, f := range v {
		binary.LittleEndian.PutUint32(data[offset:], FloatToBits(f))
		offset += 4
	}
	return offset
}
