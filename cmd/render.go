package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/passaro/ray-tracer/pkg/log"
	"github.com/passaro/ray-tracer/pkg/output"
	"github.com/passaro/ray-tracer/pkg/renderer"
	"github.com/passaro/ray-tracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags returns the flags accepted by the render command.
func RenderFlags() []cli.Flag {
	defaults := renderer.DefaultConfig()
	size := defaults.Size

	return []cli.Flag{
		cli.GenericFlag{
			Name:  "size, i",
			Value: &size,
			Usage: "image size as WIDTHxHEIGHT",
		},
		cli.IntFlag{
			Name:  "spp, s",
			Value: defaults.Sampling.SamplesPerPixel,
			Usage: "samples per pixel",
		},
		cli.IntFlag{
			Name:  "max-depth, m",
			Value: defaults.Sampling.MaxDepth,
			Usage: "maximum number of ray bounces",
		},
		cli.Float64Flag{
			Name:  "vfov",
			Value: 20,
			Usage: "vertical field of view in degrees (overrides the scene camera when set)",
		},
		cli.Float64Flag{
			Name:  "aperture",
			Usage: "lens aperture, 0 for a pinhole camera (overrides the scene camera when set)",
		},
		cli.Float64Flag{
			Name:  "focus-dist",
			Usage: "focus distance, 0 to focus on the look-at point (overrides the scene camera when set)",
		},
		cli.Int64Flag{
			Name:  "seed",
			Value: defaults.Seed,
			Usage: "seed for scene generation and sampling",
		},
		cli.StringFlag{
			Name:  "scene",
			Value: "random",
			Usage: "scene to render (see the scenes command)",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Value: defaults.NumWorkers,
			Usage: "number of render workers, 0 for one per CPU",
		},
		cli.IntFlag{
			Name:  "tile-size",
			Value: defaults.TileSize,
			Usage: "edge length of the square tiles handed to workers",
		},
		cli.StringFlag{
			Name:  "out, o",
			Value: "render.png",
			Usage: fmt.Sprintf("output file, format from the extension (%s); - writes PPM to stdout", formatList()),
		},
	}
}

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	config, err := renderConfig(ctx)
	if err != nil {
		return err
	}

	// Fail on a bad output name before spending time rendering
	out := ctx.String("out")
	if _, err := output.FormatFromPath(out); err != nil {
		return err
	}

	// Stdout carries the image stream
	if out == output.Stdout {
		log.SetSink(os.Stderr)
	}

	sc, err := buildScene(ctx, config)
	if err != nil {
		return err
	}
	logger.Infof("scene %q: %d spheres, camera at %v looking along %v",
		sc.Name, sc.GetPrimitiveCount(), sc.Camera.Origin(), sc.Camera.Forward())

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	img, stats, err := renderer.NewRaytracer(sc, config).Render(renderCtx)
	if err != nil {
		return err
	}

	if err := output.Save(out, img); err != nil {
		return err
	}
	if out != output.Stdout {
		logger.Noticef("wrote %s", out)
	}

	displayRenderStats(stats, renderer.CalculateAverageLuminance(img))
	return nil
}

// renderConfig collects the render settings from the command line.
func renderConfig(ctx *cli.Context) (renderer.Config, error) {
	config := renderer.DefaultConfig()

	if size, ok := ctx.Generic("size").(*renderer.ImageSize); ok && size != nil {
		config.Size = *size
	}
	config.Sampling.SamplesPerPixel = ctx.Int("spp")
	config.Sampling.MaxDepth = ctx.Int("max-depth")
	config.Seed = ctx.Int64("seed")
	config.NumWorkers = ctx.Int("workers")
	config.TileSize = ctx.Int("tile-size")

	if err := config.Validate(); err != nil {
		return renderer.Config{}, err
	}
	return config, nil
}

// buildScene creates the selected scene and applies the camera flags that were set.
func buildScene(ctx *cli.Context, config renderer.Config) (*scene.Scene, error) {
	sc, err := scene.Create(ctx.String("scene"), config.Seed)
	if err != nil {
		return nil, err
	}

	camera := sc.CameraConfig
	camera.AspectRatio = config.Size.AspectRatio()
	if ctx.IsSet("vfov") {
		camera.VFov = ctx.Float64("vfov")
	}
	if ctx.IsSet("aperture") {
		camera.Aperture = ctx.Float64("aperture")
	}
	if ctx.IsSet("focus-dist") {
		camera.FocusDistance = ctx.Float64("focus-dist")
	}

	if camera.VFov <= 0 || camera.VFov >= 180 {
		return nil, fmt.Errorf("vertical field of view must be in (0, 180), got %g", camera.VFov)
	}
	if camera.Aperture < 0 || camera.FocusDistance < 0 {
		return nil, fmt.Errorf("aperture and focus distance must not be negative")
	}

	sc.SetCameraConfig(camera)
	return sc, nil
}

func formatList() string {
	var names []string
	for _, format := range output.Formats() {
		names = append(names, "."+string(format))
	}
	return strings.Join(names, ", ")
}
