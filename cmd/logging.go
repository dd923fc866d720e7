package cmd

import (
	"github.com/passaro/ray-tracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("ray-tracer")

// setupLogging applies the global verbosity flags. An explicit --log-level wins over -v and -vv.
func setupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}

	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	logger.Debugf("log level set to %s", log.GetLevel())
	return nil
}
