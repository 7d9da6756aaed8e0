package cmd

import (
	"strings"

	"github.com/KaikoClanworth1/igbhull/asset/archive"
	"github.com/KaikoClanworth1/igbhull/asset/hull"
	"github.com/KaikoClanworth1/igbhull/asset/reader"
	"github.com/urfave/cli"
)

// Compile collision meshes into packed hull archives.
func CompileHull(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := reader.Options{
		DefaultSurfaceType: uint32(ctx.Uint("surface-type")),
		DefaultSecondary:   uint32(ctx.Uint("secondary")),
		Objects:            ctx.StringSlice("object"),
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		meshFile := ctx.Args().Get(idx)
		if !strings.HasSuffix(meshFile, ".obj") {
			logger.Warningf("skipping unsupported file %s", meshFile)
			continue
		}

		logger.Noticef("compiling collision hull: %s", meshFile)
		tris, err := reader.ReadTriangles(meshFile, opts)
		if err != nil {
			return err
		}

		encoded := hull.Encode(tris, opts.DefaultSurfaceType)
		if encoded == nil {
			logger.Warningf("%s contains no collision triangles; skipping", meshFile)
			continue
		}

		// Display compiled hull info
		logger.Noticef("hull information:\n%s", encoded.Stats())

		hullFile := strings.Replace(meshFile, ".obj", ".zip", -1)
		if out := ctx.String("out"); out != "" && ctx.NArg() == 1 {
			hullFile = out
		}
		if err = archive.WriteHull(encoded, hullFile); err != nil {
			return err
		}
	}

	return nil
}
