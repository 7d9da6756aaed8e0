package main

import (
	"os"

	"github.com/KaikoClanworth1/igbhull/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "igbhull"
	app.Usage = "compile collision geometry into the engine's packed hull format"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "compile",
			Usage: "compile collision meshes into packed hull archives",
			Description: `
Parse collision triangles from a wavefront obj file, build the engine's
bounding volume tree over them and pack both buffers into the exact byte
layout the engine's collision system loads at runtime.

The compiled hull is written to a zip archive which can be embedded into a
game asset by the container serializer.`,
			ArgsUsage: "mesh_file1.obj mesh_file2.obj ...",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "surface-type, s",
					Value: 0,
					Usage: "default surface type for faces without a surface attribute",
				},
				cli.UintFlag{
					Name:  "secondary",
					Value: 0,
					Usage: "default secondary attribute for faces without a secondary attribute",
				},
				cli.StringSliceFlag{
					Name:  "object, f",
					Value: &cli.StringSlice{},
					Usage: "only include collision triangles from objects with this name",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output archive filename (single input file only)",
				},
			},
			Action: cmd.CompileHull,
		},
		{
			Name:      "info",
			Usage:     "display information about a compiled hull archive",
			ArgsUsage: "hull_file.zip",
			Action:    cmd.ShowHullInfo,
		},
	}

	app.Run(os.Args)
}
