package reader

import (
	"fmt"
	"strings"

	"github.com/KaikoClanworth1/igbhull/asset"
	"github.com/KaikoClanworth1/igbhull/asset/hull"
)

// Options controlling triangle extraction.
type Options struct {
	// Fallback attribute values for faces that do not carry explicit
	// surface/secondary directives.
	DefaultSurfaceType uint32
	DefaultSecondary   uint32

	// When non-empty, only objects whose name appears here contribute
	// collision triangles.
	Objects []string
}

// The Reader interface is implemented by all collision mesh readers.
type Reader interface {
	// Read an ordered triangle list from a resource.
	Read(*asset.Resource, Options) ([]hull.Triangle, error)
}

// ReadTriangles extracts collision triangles from filename. The returned
// order is the file's face order; downstream encoding preserves it.
func ReadTriangles(filename string, opts Options) ([]hull.Triangle, error) {
	res, err := asset.NewResource(filename, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	// Select reader based on file extension
	var r Reader
	if strings.HasSuffix(filename, ".obj") {
		r = newWavefrontReader()
	} else {
		return nil, fmt.Errorf("readTriangles: unsupported file format")
	}
	return r.Read(res, opts)
}
