package output

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnknownFormat is returned (wrapped) for file extensions with no encoder
var ErrUnknownFormat = errors.New("unknown image format")

// Format identifies an image encoding
type Format string

// Supported formats
const (
	PNG  Format = "png"
	PPM  Format = "ppm"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Stdout is the path that makes Save write a PPM stream to standard output
const Stdout = "-"

// Formats lists the supported formats
func Formats() []Format {
	return []Format{PNG, PPM, BMP, TIFF}
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	if path == Stdout {
		return PPM, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".ppm":
		return PPM, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	switch format {
	case PNG:
		return png.Encode(w, img)
	case PPM:
		return WritePPM(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Save writes img to path, choosing the encoder from the extension
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	if path == Stdout {
		return Encode(os.Stdout, img, format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	return f.Close()
}

// WritePPM writes img as a plain (P3) PPM: a header followed by one
// "R G B" line per pixel, rows top first
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	bounds := img.Bounds()

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", bounds.Dx(), bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			fmt.Fprintf(bw, "%d %d %d\n", r>>8, g>>8, b>>8)
		}
	}

	return bw.Flush()
}
