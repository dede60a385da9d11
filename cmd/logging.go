package cmd

import (
	"github.com/avclark/go-rtrace/log"
	"github.com/urfave/cli"
)

var logger = log.New("rtrace")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("q") {
		log.SetLevel(log.Warning)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Debug)
	}
}
