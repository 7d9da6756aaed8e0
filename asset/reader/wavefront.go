package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KaikoClanworth1/igbhull/asset"
	"github.com/KaikoClanworth1/igbhull/asset/hull"
	"github.com/KaikoClanworth1/igbhull/log"
	"github.com/KaikoClanworth1/igbhull/types"
)

// Reads collision triangles from a wavefront obj file. Only the geometry
// subset of the format is consumed: shading statements (vn, vt, mtllib,
// usemtl, s) are skipped since the collision hull carries no materials.
//
// Two extension keywords assign the engine's per-face attributes and are
// scoped like usemtl, applying to all following faces:
//
//	surface <n>     surface type (material enum, e.g. 0=default, 12=wood)
//	secondary <n>   secondary attribute value
type wavefrontHullReader struct {
	logger log.Logger

	opts Options

	// List of parsed vertex positions.
	vertexList []types.Vec3

	// Extracted triangles in face order.
	triangles []hull.Triangle

	// Attribute values that apply to subsequent faces.
	curSurfaceType uint32
	curSecondary   uint32

	// True while faces of the current object pass the object filter.
	curObjectSelected bool

	// An error stack that provides additional error information when
	// mesh files include other files.
	errStack []string
}

// Create a new wavefront collision mesh reader.
func newWavefrontReader() *wavefrontHullReader {
	return &wavefrontHullReader{
		logger:     log.New("wavefront hull reader"),
		vertexList: make([]types.Vec3, 0),
		triangles:  make([]hull.Triangle, 0),
		errStack:   make([]string, 0),
	}
}

// Read an ordered collision triangle list.
func (r *wavefrontHullReader) Read(res *asset.Resource, opts Options) ([]hull.Triangle, error) {
	r.logger.Noticef(`parsing collision mesh from "%s"`, res.Path())
	start := time.Now()

	r.opts = opts
	r.curSurfaceType = opts.DefaultSurfaceType
	r.curSecondary = opts.DefaultSecondary
	r.curObjectSelected = len(opts.Objects) == 0

	if err := r.parse(res); err != nil {
		return nil, err
	}

	r.logger.Noticef("extracted %d triangles in %d ms", len(r.triangles), time.Since(start).Nanoseconds()/1e6)
	return r.triangles, nil
}

// Parse wavefront object format.
func (r *wavefrontHullReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	// Included files contain 1-based indices relative to their include
	// point; track the vertex offset so faces select the right coords.
	relVertexOffset := len(r.vertexList)

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "call"; expected 1 argument; got %d`, len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [call]", res.Path(), lineNum))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			defer incRes.Close()

			if err = r.parse(incRes); err != nil {
				return err
			}
			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.vertexList = append(r.vertexList, v)
		case "o", "g":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			r.curObjectSelected = r.selectObject(lineTokens[1])
		case "surface":
			val, err := parseUint32(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.curSurfaceType = val
		case "secondary":
			val, err := parseUint32(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.curSecondary = val
		case "f":
			if !r.curObjectSelected {
				continue
			}

			triList, err := r.parseFace(lineTokens, relVertexOffset)
			if err != nil {
				return r.emitError(res.Path(), lineNum, err.Error())
			}
			r.triangles = append(r.triangles, triList...)
		}
	}

	return nil
}

// Report whether faces of the named object pass the object filter. An empty
// filter selects every object.
func (r *wavefrontHullReader) selectObject(name string) bool {
	if len(r.opts.Objects) == 0 {
		return true
	}
	for _, objName := range r.opts.Objects {
		if objName == name {
			return true
		}
	}
	return false
}

// Parse face definition. Each face consists of 3 or 4 vertex arguments;
// quad faces are emitted as two triangles sharing the first vertex. Vertex
// arguments may carry uv/normal indices after a slash separator; only the
// vertex coord index is consumed. Indices start from 1 and may be negative
// to indicate an offset off the end of the vertex list.
func (r *wavefrontHullReader) parseFace(lineTokens []string, relVertexOffset int) ([]hull.Triangle, error) {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return nil, fmt.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d. Select the triangulation option in your exporter`, len(lineTokens)-1)
	}

	var vertices [4]types.Vec3
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vTokens[0], len(r.vertexList), relVertexOffset)
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertices[arg] = r.vertexList[vOffset]
	}

	// Assemble one or two triangles depending on whether this is a
	// triangular or a quad face.
	indiceList := [][3]int{{0, 1, 2}}
	if len(lineTokens) == 5 {
		indiceList = append(indiceList, [3]int{0, 2, 3})
	}

	triList := make([]hull.Triangle, 0, len(indiceList))
	for _, indices := range indiceList {
		triList = append(triList, hull.Triangle{
			Verts: [3]types.Vec3{
				vertices[indices[0]],
				vertices[indices[1]],
				vertices[indices[2]],
			},
			SurfaceType: r.curSurfaceType,
			Secondary:   r.curSecondary,
		})
	}
	return triList, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontHullReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = strings.Trim(
			fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	} else {
		errMsg = strings.Trim(
			fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n")),
			"\n",
		)
	}

	return fmt.Errorf("%s", errMsg)
}

// Push a frame to the error stack.
func (r *wavefrontHullReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontHullReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Parse a 1-based face coord index into a vertex list offset.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int = 0
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}

func parseUint32(lineTokens []string) (uint32, error) {
	if len(lineTokens) != 2 {
		return 0, fmt.Errorf(`unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	val, err := strconv.ParseUint(lineTokens[1], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(val), nil
}
