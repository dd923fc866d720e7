package main

import (
	"os"

	"github.com/passaro/ray-tracer/cmd"
	"github.com/passaro/ray-tracer/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("ray-tracer")

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "ray-tracer"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error (overrides -v and -vv)",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Trace every pixel of the selected scene with the given number of samples and
bounces, then write the image. The output format follows the file extension.

Rendering is split into tiles that are traced in parallel. The result depends
only on the seed, never on the number of workers.`,
			Flags:  cmd.RenderFlags(),
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
