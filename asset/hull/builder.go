package hull

import (
	"fmt"
	"math"
	"time"

	"github.com/KaikoClanworth1/igbhull/log"
	"github.com/KaikoClanworth1/igbhull/types"
)

// A collision tree node. D1/D2 are integers in memory; the packer stores
// them inside float32 slots via bit reinterpretation.
type TreeNode struct {
	Min types.Vec3
	Max types.Vec3
	D1  uint32
	D2  uint32
}

// A built collision tree. Nodes holds the active nodes of a perfect binary
// tree as a flat array in breadth-first order: node 0 is the root and node
// i's children are 2i+1 and 2i+2. The trailing sentinel record is not part
// of Nodes; the packer appends it during serialization.
type Tree struct {
	Nodes []TreeNode

	// Leaf tag assigned to each input triangle, in input order.
	LeafTags []uint32

	Leaves int
	Depth  int
}

type builderStats struct {
	taggedTris int
	leafs      int
}

type treeBuilder struct {
	logger log.Logger

	// The triangle list being partitioned. Read-only; ranges are
	// described by index pairs, never by slicing items out of order.
	tris []Triangle

	nodes    []TreeNode
	leafTags []uint32

	stats builderStats
}

// LeafCount returns the number of tree leaves used for a triangle count:
// one leaf when the whole list fits in MaxLeafTriangles, otherwise
// ceil(numTris/MaxLeafTriangles) rounded up to a power of two so the tree
// stays perfect.
func LeafCount(numTris int) int {
	if numTris <= MaxLeafTriangles {
		return 1
	}
	return nextPowerOfTwo((numTris + MaxLeafTriangles - 1) / MaxLeafTriangles)
}

// BuildTree constructs the collision tree for tris without reordering them.
// It returns the active node array together with the leaf tag assigned to
// every triangle.
//
// When tris is empty the tree degenerates to a single zero-extent node
// whose tag slots carry defaultSurfaceType. Callers that want to omit
// collision data for empty input should use Encode, which short-circuits
// before reaching this point.
func BuildTree(tris []Triangle, defaultSurfaceType uint32) *Tree {
	b := &treeBuilder{
		logger: log.New("hull builder"),
		tris:   tris,
	}

	if len(tris) == 0 {
		b.logger.Warningf("no triangles; emitting degenerate tree")
		return &Tree{
			Nodes: []TreeNode{
				{D1: defaultSurfaceType, D2: defaultSurfaceType},
			},
			LeafTags: []uint32{},
			Leaves:   1,
		}
	}

	numLeaves := LeafCount(len(tris))
	numActive := 2*numLeaves - 1
	targetDepth := log2(numLeaves)

	b.nodes = make([]TreeNode, numActive)
	b.leafTags = make([]uint32, len(tris))

	start := time.Now()
	b.partition(0, len(tris), 0, targetDepth)

	if b.stats.leafs != numLeaves || b.stats.taggedTris != len(tris) {
		panic(fmt.Sprintf(
			"hull: tree construction invariant broken: %d/%d leafs, %d/%d tagged triangles",
			b.stats.leafs, numLeaves, b.stats.taggedTris, len(tris),
		))
	}

	b.logger.Debugf(
		"tree build time: %d ms, depth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6, targetDepth, numActive, numLeaves,
	)

	return &Tree{
		Nodes:    b.nodes,
		LeafTags: b.leafTags,
		Leaves:   numLeaves,
		Depth:    targetDepth,
	}
}

// Partition the triangle range [start, end) into the subtree rooted at
// nodeIndex, recursing until remainingDepth reaches zero.
func (b *treeBuilder) partition(start, end, nodeIndex, remainingDepth int) {
	// Every node rescans the raw vertices of its range. Re-deriving the
	// box at each level, instead of merging precomputed child boxes,
	// reproduces the reference files bit for bit.
	min := types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32}
	max := types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32}
	for i := start; i < end; i++ {
		for _, v := range b.tris[i].Verts {
			min = types.MinVec3(min, v)
			max = types.MaxVec3(max, v)
		}
	}

	node := &b.nodes[nodeIndex]
	node.Min = min
	node.Max = max
	node.D1 = FixedLeafTag
	node.D2 = FixedLeafTag

	if remainingDepth == 0 {
		for i := start; i < end; i++ {
			b.leafTags[i] = FixedLeafTag
		}
		b.stats.leafs++
		b.stats.taggedTris += end - start
		return
	}

	mid := splitMid(start, end)
	b.partition(start, mid, 2*nodeIndex+1, remainingDepth-1)
	b.partition(mid, end, 2*nodeIndex+2, remainingDepth-1)
}

// Ceil-left split point for the range [start, end): the left child takes
// ceil(count/2) triangles, the right child floor(count/2). The engine
// replays this exact rule at load time to map leaves back to triangle
// ranges, so any other split (floor-left, balanced-by-box) produces an
// incompatible tree.
func splitMid(start, end int) int {
	count := end - start
	mid := start + (count+1)/2
	if mid >= end && count > 1 {
		mid = end - 1
	}
	return mid
}

// Return the next power of 2 >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// Integer log2 for power-of-two n.
func log2(n int) int {
	d := 0
	for n > 1 {
		n >>= 1
		d++
	}
	return d
}
