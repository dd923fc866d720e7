package renderer

import (
	"image"
	"time"

	"github.com/passaro/ray-tracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Size            ImageSize
	TotalPixels     int // Total number of pixels rendered
	TotalSamples    int // Total number of camera rays traced
	SamplesPerPixel int
	MaxDepth        int
	Tiles           int
	Duration        time.Duration
	Workers         []WorkerStats
}

// WorkerStats tracks the share of work done by one worker
type WorkerStats struct {
	ID      int
	Tiles   int
	Pixels  int
	Samples int
	Busy    time.Duration // Time spent rendering, excluding queue waits
}

func newRenderStats(config Config, tiles, workers int) RenderStats {
	stats := RenderStats{
		Size:            config.Size,
		SamplesPerPixel: config.Sampling.SamplesPerPixel,
		MaxDepth:        config.Sampling.MaxDepth,
		Tiles:           tiles,
		Workers:         make([]WorkerStats, workers),
	}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}
	return stats
}

// addTile folds a finished tile into the totals
func (s *RenderStats) addTile(result TileResult) {
	s.TotalPixels += result.Pixels
	s.TotalSamples += result.Samples

	if result.WorkerID >= 0 && result.WorkerID < len(s.Workers) {
		w := &s.Workers[result.WorkerID]
		w.Tiles++
		w.Pixels += result.Pixels
		w.Samples += result.Samples
		w.Busy += result.Duration
	}
}

// SamplesPerSecond returns the camera ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an image in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += core.NewVec3(float64(c.R), float64(c.G), float64(c.B)).Divide(255.0).Luminance()
		}
	}

	return total / float64(pixels)
}
