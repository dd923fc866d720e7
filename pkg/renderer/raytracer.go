package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/passaro/ray-tracer/pkg/core"
	"github.com/passaro/ray-tracer/pkg/geometry"
	"github.com/passaro/ray-tracer/pkg/integrator"
	"github.com/passaro/ray-tracer/pkg/log"
)

var logger = log.New("renderer")

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *geometry.Camera
	GetWorld() geometry.Shape
	GetBackground() integrator.Background
}

// Raytracer handles the rendering process
type Raytracer struct {
	camera     *geometry.Camera
	world      geometry.Shape
	integrator integrator.Integrator
	config     Config
}

// NewRaytracer creates a raytracer for the scene using a path tracing integrator
func NewRaytracer(scene Scene, config Config) *Raytracer {
	return &Raytracer{
		camera:     scene.GetCamera(),
		world:      scene.GetWorld(),
		integrator: integrator.NewPathTracingIntegrator(scene.GetBackground()),
		config:     config,
	}
}

// SetIntegrator replaces the radiance estimator
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// PixelColor estimates the gamma corrected color of pixel (i, j), where j = 0 is
// the bottom row. Each sample jitters the position inside the pixel.
func (rt *Raytracer) PixelColor(i, j int, sampler core.Sampler) core.Color {
	spp := rt.config.Sampling.SamplesPerPixel
	colorAccum := core.Vec3{}

	for s := 0; s < spp; s++ {
		jitter := sampler.Get2D()
		u, v := rt.config.Size.Transform(float64(i)+jitter.X, float64(j)+jitter.Y)
		ray := rt.camera.GetRay(u, v, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.config.Sampling.MaxDepth, sampler))
	}

	return colorAccum.Divide(float64(spp)).GammaCorrect(2.0)
}

// ToRGB8 quantizes a display color to 8 bits per channel
func ToRGB8(c core.Color) (r, g, b uint8) {
	return quantize(c.X), quantize(c.Y), quantize(c.Z)
}

// ToRGBA quantizes a display color to an opaque RGBA pixel
func ToRGBA(c core.Color) color.RGBA {
	r, g, b := ToRGB8(c)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func quantize(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(256 * max(0, min(0.999, x)))
}

// RenderTile renders every pixel of the tile into img and returns the number of samples taken.
// Image row y holds pixel row Height-1-y.
func (rt *Raytracer) RenderTile(tile *Tile, img *image.RGBA) int {
	sampler := core.NewRandomSampler(tile.Random)
	height := rt.config.Size.Height
	samples := 0

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		j := height - 1 - y
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			img.SetRGBA(x, y, ToRGBA(rt.PixelColor(x, j, sampler)))
			samples += rt.config.Sampling.SamplesPerPixel
		}
	}

	return samples
}

// Render renders the full image in parallel tiles. The context is checked
// before each tile starts; a cancelled render returns ctx's error.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	size := rt.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	tiles := NewTileGrid(size.Width, size.Height, rt.config.TileSize, rt.config.Seed)
	numWorkers := min(rt.config.Workers(), len(tiles))

	start := time.Now()
	pool := NewWorkerPool(rt, numWorkers, len(tiles))

	logger.Infof("rendering %s (%d pixels) at %d spp (max depth %d) using %d workers and %d tiles",
		size, size.Pixels(), rt.config.Sampling.SamplesPerPixel, rt.config.Sampling.MaxDepth,
		pool.GetNumWorkers(), len(tiles))
	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Image: img})
	}

	stats := newRenderStats(rt.config, len(tiles), numWorkers)
	var renderErr error
	completed := 0
	nextReport := 1

	for range tiles {
		result, _ := pool.GetResult()
		if result.Error != nil {
			if renderErr == nil {
				renderErr = result.Error
			}
			continue
		}

		stats.addTile(result)
		completed++
		logger.Debugf("tile %d finished by worker %d in %s", result.TileID, result.WorkerID, result.Duration)

		for nextReport <= 10 && completed*10 >= nextReport*len(tiles) {
			logger.Infof("progress: %d%% (%d/%d tiles)", nextReport*10, completed, len(tiles))
			nextReport++
		}
	}

	pool.Stop()
	stats.Duration = time.Since(start)

	if renderErr != nil {
		return nil, stats, fmt.Errorf("render stopped after %d/%d tiles: %w", completed, len(tiles), renderErr)
	}

	logger.Noticef("rendered %s (%d samples) in %s", size, stats.TotalSamples, stats.Duration)
	return img, stats, nil
}
