package renderer

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid render config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 500,
		MaxDepth:        50,
	}
}

// Config describes a complete render
type Config struct {
	Size       ImageSize
	Sampling   SamplingConfig
	TileSize   int   // Edge length of the square tiles handed to workers
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; tile N draws from Seed+N
}

// DefaultConfig returns the configuration used by the command line defaults
func DefaultConfig() Config {
	return Config{
		Size:       ImageSize{Width: 1200, Height: 800},
		Sampling:   DefaultSamplingConfig(),
		TileSize:   32,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	switch {
	case c.Size.Width <= 0 || c.Size.Height <= 0:
		return fmt.Errorf("%w: image size must be positive, got %s", ErrInvalidConfig, c.Size)
	case c.Sampling.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.Sampling.SamplesPerPixel)
	case c.Sampling.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfig, c.Sampling.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: worker count must not be negative, got %d", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// Workers returns the effective number of workers.
func (c Config) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
