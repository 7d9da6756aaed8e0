package cmd

import (
	"github.com/KaikoClanworth1/igbhull/log"
	"github.com/urfave/cli"
)

var logger = log.New("igbhull")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
