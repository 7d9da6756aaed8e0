package hull

import (
	"github.com/KaikoClanworth1/igbhull/types"
)

// A collision triangle. Vertices are in world space.
//
// SurfaceType is the engine's material enum (values 0-19 appear in game
// files; 0 is the default surface, 1 stone, 12 wood). Secondary is an extra
// per-face attribute carried through unmodified.
//
// Triangle order is load bearing: the engine recovers leaf-to-triangle
// ranges by re-halving the triangle array with the same split rule used at
// build time. The encoder therefore never reorders, drops or deduplicates
// its input, slivers included.
type Triangle struct {
	Verts       [3]types.Vec3
	SurfaceType uint32
	Secondary   uint32
}
