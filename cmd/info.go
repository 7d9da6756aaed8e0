package cmd

import (
	"errors"
	"strings"

	"github.com/KaikoClanworth1/igbhull/asset/archive"
	"github.com/urfave/cli"
)

// Display compiled hull info.
func ShowHullInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing compiled hull zip file")
	}

	hullFile := ctx.Args().First()
	if !strings.HasSuffix(hullFile, ".zip") {
		return errors.New("only compiled hull files with a .zip extension are supported")
	}

	encoded, err := archive.ReadHull(hullFile)
	if err != nil {
		return err
	}

	logger.Noticef("hull information:\n%s", encoded.Stats())

	return nil
}
