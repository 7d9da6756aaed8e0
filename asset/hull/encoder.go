package hull

// The two packed buffers handed to the container writer, plus the element
// counts the container stores next to them.
type EncodedHull struct {
	// Triangle buffer: TriangleCount * TriangleRecordSize bytes.
	TriangleData  []byte
	TriangleCount int

	// Tree buffer: (TreeNodeCountMinusOne + 1) * NodeRecordSize bytes.
	// By container convention the reported count excludes the trailing
	// sentinel record even though its bytes are present in the buffer.
	TreeData              []byte
	TreeNodeCountMinusOne int
}

// Encode builds and serializes the collision hull for tris.
//
// Returns nil when tris is empty: the container is expected to omit
// collision data entirely rather than embed a placeholder.
//
// defaultSurfaceType is only consulted by the degenerate empty tree, which
// Encode itself never produces; it is plumbed through for callers that
// drive BuildTree directly.
func Encode(tris []Triangle, defaultSurfaceType uint32) *EncodedHull {
	if len(tris) == 0 {
		return nil
	}

	tree := BuildTree(tris, defaultSurfaceType)
	treeData := PackTree(tree)
	triangleData := PackTriangles(tris, tree.LeafTags)

	return &EncodedHull{
		TriangleData:          triangleData,
		TriangleCount:         len(tris),
		TreeData:              treeData,
		TreeNodeCountMinusOne: len(treeData)/NodeRecordSize - 1,
	}
}
