package reader

import (
	"strings"
	"testing"

	"github.com/KaikoClanworth1/igbhull/asset"
	"github.com/KaikoClanworth1/igbhull/types"
)

const testMesh = `
# collision mesh
o Floor
surface 12
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
o Wall
surface 1
secondary 3
v 0 0 1
f 1 2 -1
`

func TestParseCollisionMesh(t *testing.T) {
	res := asset.NewResourceFromStream("test.obj", strings.NewReader(testMesh))
	tris, err := newWavefrontReader().Read(res, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Quad floor fans into 2 triangles plus 1 wall triangle.
	if len(tris) != 3 {
		t.Fatalf("expected 3 triangles; got %d", len(tris))
	}

	for i := 0; i < 2; i++ {
		if tris[i].SurfaceType != 12 {
			t.Fatalf("expected floor triangle %d surface type 12; got %d", i, tris[i].SurfaceType)
		}
		if tris[i].Secondary != 0 {
			t.Fatalf("expected floor triangle %d to use the default secondary value; got %d", i, tris[i].Secondary)
		}
	}

	// Quad fan: (0,1,2) then (0,2,3).
	expVerts := [3]types.Vec3{{0, 0, 0}, {1, 1, 0}, {0, 1, 0}}
	if tris[1].Verts != expVerts {
		t.Fatalf("expected second floor triangle verts %v; got %v", expVerts, tris[1].Verts)
	}

	wall := tris[2]
	if wall.SurfaceType != 1 || wall.Secondary != 3 {
		t.Fatalf("expected wall attributes 1/3; got %d/%d", wall.SurfaceType, wall.Secondary)
	}

	// The wall face uses global indices plus a negative index for the
	// last defined vertex.
	expVerts = [3]types.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}}
	if wall.Verts != expVerts {
		t.Fatalf("expected wall triangle verts %v; got %v", expVerts, wall.Verts)
	}
}

func TestParseDefaultAttributes(t *testing.T) {
	res := asset.NewResourceFromStream("test.obj", strings.NewReader(`
v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
`))
	tris, err := newWavefrontReader().Read(res, Options{DefaultSurfaceType: 5, DefaultSecondary: 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(tris) != 1 {
		t.Fatalf("expected 1 triangle; got %d", len(tris))
	}
	if tris[0].SurfaceType != 5 || tris[0].Secondary != 2 {
		t.Fatalf("expected default attributes 5/2; got %d/%d", tris[0].SurfaceType, tris[0].Secondary)
	}
}

func TestObjectFilter(t *testing.T) {
	res := asset.NewResourceFromStream("test.obj", strings.NewReader(testMesh))
	tris, err := newWavefrontReader().Read(res, Options{Objects: []string{"Wall"}})
	if err != nil {
		t.Fatal(err)
	}

	if len(tris) != 1 {
		t.Fatalf("expected only the wall triangle; got %d triangles", len(tris))
	}
	if tris[0].SurfaceType != 1 {
		t.Fatalf("expected wall surface type 1; got %d", tris[0].SurfaceType)
	}
}

func TestParseErrors(t *testing.T) {
	specs := []struct {
		data   string
		expErr string
	}{
		{"v 0 0\n", `unsupported syntax for "v"`},
		{"v 0 0 0\nf 1 2 9\n", "index out of bounds"},
		{"surface -1\n", "invalid syntax"},
		{"v 0 0 0\nv 1 0 0\nf 1 2\n", `unsupported syntax for "f"`},
	}

	for _, spec := range specs {
		res := asset.NewResourceFromStream("test.obj", strings.NewReader(spec.data))
		_, err := newWavefrontReader().Read(res, Options{})
		if err == nil || !strings.Contains(err.Error(), spec.expErr) {
			t.Fatalf("expected error containing %q; got %v", spec.expErr, err)
		}
	}
}
