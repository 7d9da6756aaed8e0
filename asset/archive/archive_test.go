package archive

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaikoClanworth1/igbhull/asset/hull"
	"github.com/KaikoClanworth1/igbhull/types"
)

func makeHull(t *testing.T, numTris int) *hull.EncodedHull {
	t.Helper()

	tris := make([]hull.Triangle, numTris)
	for i := range tris {
		x := float32(i)
		tris[i] = hull.Triangle{
			Verts: [3]types.Vec3{
				{x, 0, 0},
				{x + 1, 1, 0},
				{x + 1, 0, 1},
			},
			SurfaceType: 12,
		}
	}

	encoded := hull.Encode(tris, 0)
	if encoded == nil {
		t.Fatalf("expected non-nil hull for %d triangles", numTris)
	}
	return encoded
}

func TestWriteReadRoundTrip(t *testing.T) {
	encoded := makeHull(t, 20)
	hullFile := filepath.Join(t.TempDir(), "hull.zip")

	if err := WriteHull(encoded, hullFile); err != nil {
		t.Fatal(err)
	}

	parsed, err := ReadHull(hullFile)
	if err != nil {
		t.Fatal(err)
	}

	if parsed.TriangleCount != encoded.TriangleCount {
		t.Fatalf("expected triangle count %d; got %d", encoded.TriangleCount, parsed.TriangleCount)
	}
	if parsed.TreeNodeCountMinusOne != encoded.TreeNodeCountMinusOne {
		t.Fatalf("expected node count minus one %d; got %d", encoded.TreeNodeCountMinusOne, parsed.TreeNodeCountMinusOne)
	}
	if !bytes.Equal(parsed.TriangleData, encoded.TriangleData) {
		t.Fatalf("triangle buffer did not survive the round trip")
	}
	if !bytes.Equal(parsed.TreeData, encoded.TreeData) {
		t.Fatalf("tree buffer did not survive the round trip")
	}
}

func TestReadTruncatedArchive(t *testing.T) {
	encoded := makeHull(t, 20)

	// Corrupt the manifest count so the buffer size check trips.
	encoded.TriangleCount++

	hullFile := filepath.Join(t.TempDir(), "hull.zip")
	if err := WriteHull(encoded, hullFile); err != nil {
		t.Fatal(err)
	}

	_, err := ReadHull(hullFile)
	if err == nil || !strings.Contains(err.Error(), "manifest expects") {
		t.Fatalf("expected a buffer size mismatch error; got %v", err)
	}
}
