package hull

import "math"

// Wire-format constants for the packed collision hull encoding. These are
// part of the engine's binary contract and cannot be tuned: the runtime
// silently ignores (or falls through) hulls that deviate from them.
const (
	// The tag stored on every active tree node and every triangle. The
	// engine does not track per-leaf identifiers for collision traversal;
	// all records carry this single fixed marker.
	FixedLeafTag uint32 = 507

	// Magic values stored in the tag slots of the trailing sentinel
	// record, marking it as non-geometric.
	SentinelD1 uint32 = 0x7C36C81E
	SentinelD2 uint32 = 0x10013D76

	// Maximum number of triangles a single tree leaf may cover.
	MaxLeafTriangles = 16
)

// BitsToFloat reinterprets the bits of v as an IEEE 754 float32. This is a
// bit cast, not a numeric conversion: BitsToFloat(42) is the denormal whose
// bit pattern equals 42, not 42.0. The hull format stores integer tag
// metadata inside float-typed slots, so every tag write goes through here.
func BitsToFloat(v uint32) float32 {
	return math.Float32frombits(v)
}

// FloatToBits reinterprets the bits of f as a uint32. Inverse of BitsToFloat.
func FloatToBits(f float32) uint32 {
	return math.Float32bits(f)
}
