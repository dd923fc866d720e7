package renderer

import (
	"fmt"
	"strconv"
	"strings"
)

// ImageSize is the output resolution in pixels
type ImageSize struct {
	Width  int
	Height int
}

// NewImageSize creates an image size
func NewImageSize(width, height int) ImageSize {
	return ImageSize{Width: width, Height: height}
}

// ParseImageSize parses sizes written as WIDTHxHEIGHT, e.g. 800x600
func ParseImageSize(value string) (ImageSize, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(value)), "x")
	if len(parts) != 2 {
		return ImageSize{}, fmt.Errorf("invalid size %q: expected WIDTHxHEIGHT", value)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil {
		return ImageSize{}, fmt.Errorf("invalid width in size %q: %w", value, err)
	}
	height, err := strconv.Atoi(parts[1])
	if err != nil {
		return ImageSize{}, fmt.Errorf("invalid height in size %q: %w", value, err)
	}
	if width <= 0 || height <= 0 {
		return ImageSize{}, fmt.Errorf("invalid size %q: width and height must be positive", value)
	}

	return ImageSize{Width: width, Height: height}, nil
}

// Set implements flag.Value
func (s *ImageSize) Set(value string) error {
	size, err := ParseImageSize(value)
	if err != nil {
		return err
	}
	*s = size
	return nil
}

func (s ImageSize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// AspectRatio returns width / height
func (s ImageSize) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}

// Pixels returns the total pixel count
func (s ImageSize) Pixels() int {
	return s.Width * s.Height
}

// Transform maps continuous pixel coordinates to normalized image coordinates.
// Pixel (0, 0) maps to (0, 0) and (Width-1, Height-1) maps to (1, 1).
// A single-pixel dimension uses a denominator of 1.
func (s ImageSize) Transform(x, y float64) (u, v float64) {
	return x / float64(max(1, s.Width-1)), y / float64(max(1, s.Height-1))
}
