package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/jfeld/go-pathtracer/pkg/ppm"
	"github.com/jfeld/go-pathtracer/pkg/renderer"
	"github.com/jfeld/go-pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "cover", "Scene type: 'cover' or 'simple'")
	width := flag.Int("width", 400, "Image width in pixels (height follows the scene's aspect ratio)")
	samples := flag.Int("samples", 100, "Antialiasing samples per pixel")
	depth := flag.Int("depth", 50, "Ray bounce limit")
	gamma := flag.Float64("gamma", 2.0, "Gamma correction exponent")
	seed := flag.Int64("seed", 42, "Random seed (renders are reproducible for a fixed seed)")
	workers := flag.Int("workers", 0, "Parallel row workers (0 = CPU count)")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	output := flag.String("output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	flag.Parse()

	if err := run(*sceneType, *width, *samples, *depth, *gamma, *seed, *workers, *format, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType string, width, samples, depth int, gamma float64, seed int64, workers int, format, output string) error {
	selectedScene, err := createScene(sceneType, seed)
	if err != nil {
		return err
	}

	if format != "ppm" && format != "png" {
		return fmt.Errorf("unknown output format %q (want 'ppm' or 'png')", format)
	}

	height := int(float64(width) / selectedScene.CameraConfig.AspectRatio)

	settings := renderer.RenderSettings{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samples,
		MaxDepth:        depth,
		Gamma:           gamma,
		Seed:            seed,
		NumWorkers:      workers,
	}

	r, err := renderer.NewRenderer(selectedScene, settings, renderer.NewDefaultLogger())
	if err != nil {
		return err
	}

	fmt.Printf("Rendering %q at %dx%d, %d samples, bounce limit %d...\n",
		sceneType, width, height, samples, depth)

	startTime := time.Now()
	img := r.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if output == "" {
		outputDir := filepath.Join("output", sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		output = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "png":
		err = png.Encode(file, img.RGBA())
	default:
		err = ppm.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}

	fmt.Printf("Render saved as %s\n", output)
	return nil
}

// createScene builds one of the built-in scenes by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "cover":
		return scene.NewCoverScene(3.0/2.0, seed)
	case "simple":
		return scene.NewSimpleScene(16.0 / 9.0)
	default:
		return nil, fmt.Errorf("unknown scene type %q (want 'cover' or 'simple')", sceneType)
	}
}
