package cmd

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/passaro/ray-tracer/pkg/log"
	"github.com/passaro/ray-tracer/pkg/output"
	"github.com/passaro/ray-tracer/pkg/renderer"
	"github.com/passaro/ray-tracer/pkg/scene"
	"github.com/urfave/cli"
)

func TestMain(m *testing.M) {
	log.SetSink(io.Discard)
	os.Exit(m.Run())
}

// runWithFlags runs action as the render command with the given arguments
func runWithFlags(t *testing.T, action func(*cli.Context) error, args ...string) error {
	t.Helper()
	app := cli.NewApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	app.Commands = []cli.Command{{
		Name:   "render",
		Flags:  RenderFlags(),
		Action: action,
	}}
	return app.Run(append([]string{"ray-tracer", "render"}, args...))
}

func TestRenderConfig_Defaults(t *testing.T) {
	var config renderer.Config
	err := runWithFlags(t, func(ctx *cli.Context) error {
		var err error
		config, err = renderConfig(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if config != renderer.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", config)
	}
}

func TestRenderConfig_Flags(t *testing.T) {
	var config renderer.Config
	err := runWithFlags(t, func(ctx *cli.Context) error {
		var err error
		config, err = renderConfig(ctx)
		return err
	}, "-i", "320x200", "-s", "8", "-m", "4", "--seed", "9", "-w", "3", "--tile-size", "16")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := renderer.Config{
		Size:       renderer.NewImageSize(320, 200),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 8, MaxDepth: 4},
		TileSize:   16,
		NumWorkers: 3,
		Seed:       9,
	}
	if config != want {
		t.Errorf("Expected %+v, got %+v", want, config)
	}
}

func TestRenderConfig_Invalid(t *testing.T) {
	err := runWithFlags(t, func(ctx *cli.Context) error {
		_, err := renderConfig(ctx)
		return err
	}, "--spp", "0")
	if !errors.Is(err, renderer.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	if err := runWithFlags(t, func(*cli.Context) error { return nil }, "--size", "wide"); err == nil {
		t.Error("Expected malformed size to be rejected")
	}
}

func TestBuildScene_CameraFlags(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantVFov     float64
		wantAperture float64
		wantFocus    float64
	}{
		{"scene defaults", nil, 20, 0.1, 10},
		{"pinhole", []string{"--aperture", "0"}, 20, 0, 10},
		{"wide", []string{"--vfov", "60", "--focus-dist", "5"}, 60, 0.1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sc *scene.Scene
			args := append([]string{"--scene", "random", "-i", "300x100"}, tt.args...)
			err := runWithFlags(t, func(ctx *cli.Context) error {
				config, err := renderConfig(ctx)
				if err != nil {
					return err
				}
				sc, err = buildScene(ctx, config)
				return err
			}, args...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			camera := sc.CameraConfig
			if camera.VFov != tt.wantVFov || camera.Aperture != tt.wantAperture || camera.FocusDistance != tt.wantFocus {
				t.Errorf("Unexpected camera %+v", camera)
			}
			if camera.AspectRatio != 3 {
				t.Errorf("Expected aspect ratio from image size, got %v", camera.AspectRatio)
			}
		})
	}
}

func TestBuildScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"--scene", "cornell"}},
		{"bad vfov", []string{"--vfov", "180"}},
		{"negative aperture", []string{"--aperture", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runWithFlags(t, func(ctx *cli.Context) error {
				config, err := renderConfig(ctx)
				if err != nil {
					return err
				}
				_, err = buildScene(ctx, config)
				return err
			}, tt.args...)
			if err == nil {
				t.Error("Expected an error")
			}
		})
	}

	err := runWithFlags(t, func(ctx *cli.Context) error {
		_, err := buildScene(ctx, renderer.DefaultConfig())
		return err
	}, "--scene", "nope")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRenderFrame_WritesImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.ppm")

	err := runWithFlags(t, RenderFrame,
		"--scene", "default", "-i", "8x6", "-s", "2", "-m", "3", "--tile-size", "4", "-o", out)
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "P3" || lines[1] != "8 6" || lines[2] != "255" {
		t.Errorf("Unexpected PPM header %q", lines[:3])
	}
	if len(lines) != 3+8*6 {
		t.Errorf("Expected %d lines, got %d", 3+8*6, len(lines))
	}
}

func TestRenderFrame_UnknownOutputFormat(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.jpg")

	err := runWithFlags(t, RenderFrame, "-i", "4x4", "-s", "1", "-o", out)
	if !errors.Is(err, output.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatRenderStats(t *testing.T) {
	stats := renderer.RenderStats{
		Size:            renderer.NewImageSize(4, 2),
		TotalPixels:     8,
		TotalSamples:    80,
		SamplesPerPixel: 10,
		Tiles:           2,
		Duration:        2 * time.Second,
		Workers: []renderer.WorkerStats{
			{ID: 0, Tiles: 1, Pixels: 6, Samples: 60, Busy: time.Second},
			{ID: 1, Tiles: 1, Pixels: 2, Samples: 20, Busy: time.Second},
		},
	}

	table := formatRenderStats(stats, 0.5)
	for _, want := range []string{"Worker", "75.0 %", "25.0 %", "4x2", "10 spp", "40 samples/s", "lum 0.500"} {
		if !strings.Contains(table, want) {
			t.Errorf("Expected %q in stats table:\n%s", want, table)
		}
	}
}

func TestFormatSceneList(t *testing.T) {
	table := formatSceneList(scene.List())
	for _, name := range scene.Names() {
		if !strings.Contains(table, name) {
			t.Errorf("Expected scene %q in list:\n%s", name, table)
		}
	}
}

func TestRenderFrame_StdoutCarriesOnlyImage(t *testing.T) {
	stdout, stderr := os.Stdout, os.Stderr
	defer func() {
		os.Stdout, os.Stderr = stdout, stderr
		log.SetSink(io.Discard)
	}()

	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	errFile, err := os.CreateTemp(t.TempDir(), "stderr")
	if err != nil {
		t.Fatal(err)
	}
	defer errFile.Close()

	read := make(chan []byte)
	go func() {
		data, _ := io.ReadAll(outR)
		read <- data
	}()

	os.Stdout, os.Stderr = outW, errFile
	runErr := runWithFlags(t, RenderFrame, "--scene", "default", "-i", "4x3", "-s", "1", "-m", "2", "-o", "-")
	outW.Close()
	data := <-read
	os.Stdout, os.Stderr = stdout, stderr

	if runErr != nil {
		t.Fatalf("RenderFrame failed: %v", runErr)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "P3" {
		t.Fatalf("Expected stdout to start with the PPM header, got %q", lines[0])
	}
	if len(lines) != 3+4*3 {
		t.Errorf("Expected %d lines of PPM and nothing else, got %d:\n%s", 3+4*3, len(lines), data)
	}

	logged, err := os.ReadFile(errFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(logged), "render statistics") {
		t.Errorf("Expected log lines on stderr, got %q", logged)
	}
}

func TestSetupLogging_LogLevel(t *testing.T) {
	defer log.SetLevel(log.Notice)

	tests := []struct {
		name    string
		args    []string
		want    log.Level
		wantErr bool
	}{
		{"default", nil, log.Notice, false},
		{"verbose", []string{"-v"}, log.Info, false},
		{"very verbose", []string{"-vv"}, log.Debug, false},
		{"explicit level wins", []string{"-vv", "--log-level", "warning"}, log.Warning, false},
		{"unknown level", []string{"--log-level", "loud"}, log.Notice, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log.SetLevel(log.Notice)

			app := cli.NewApp()
			app.Writer = io.Discard
			app.ErrWriter = io.Discard
			app.Flags = []cli.Flag{
				cli.BoolFlag{Name: "v"},
				cli.BoolFlag{Name: "vv"},
				cli.StringFlag{Name: "log-level"},
			}
			app.Commands = []cli.Command{{Name: "scenes", Action: ListScenes}}

			err := app.Run(append(append([]string{"ray-tracer"}, tt.args...), "scenes"))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Run error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := log.GetLevel(); got != tt.want {
				t.Errorf("Expected level %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRenderFlags_OutputUsageListsFormats(t *testing.T) {
	for _, flag := range RenderFlags() {
		sf, ok := flag.(cli.StringFlag)
		if !ok || sf.Name != "out, o" {
			continue
		}
		for _, format := range output.Formats() {
			if !strings.Contains(sf.Usage, "."+string(format)) {
				t.Errorf("Expected %q in --out usage %q", format, sf.Usage)
			}
		}
		return
	}
	t.Error("Expected an --out flag")
}
