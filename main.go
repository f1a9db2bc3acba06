package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	defaults := renderer.DefaultConfig()

	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene: 'default' or path to a .json scene file")
	width := flag.Int("width", defaults.Width, "Image width in pixels")
	height := flag.Int("height", defaults.Height, "Image height in pixels")
	fov := flag.Float64("fov", defaults.FOV, "Vertical field of view in radians")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	outputRoot := flag.String("output", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.<format>")
		return
	}

	if *format != "png" && *format != "ppm" {
		fmt.Printf("Unknown format: %s\n", *format)
		os.Exit(1)
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	config := renderer.Config{
		Width:      *width,
		Height:     *height,
		FOV:        *fov,
		NumWorkers: *workers,
	}
	raytracer, err := renderer.NewRenderer(selectedScene, config, renderer.NewDefaultLogger())
	if err != nil {
		fmt.Printf("Error creating renderer: %v\n", err)
		os.Exit(1)
	}

	fb, _, err := raytracer.Render(context.Background())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}

	// Create output directory for this scene
	outputDir := filepath.Join(*outputRoot, sceneName(*sceneType))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, *format))
	if err := saveFramebuffer(fb, filename, *format); err != nil {
		fmt.Printf("Error saving image: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

// createScene returns the built-in scene or loads a JSON scene file
func createScene(sceneType string) (*scene.Scene, error) {
	switch {
	case sceneType == "default":
		return scene.NewDefaultScene(), nil
	case strings.HasSuffix(sceneType, ".json"):
		return loaders.LoadScene(sceneType)
	default:
		return nil, fmt.Errorf("unknown scene %q", sceneType)
	}
}

// sceneName turns a scene argument into an output directory name
func sceneName(sceneType string) string {
	return strings.TrimSuffix(filepath.Base(sceneType), ".json")
}

func saveFramebuffer(fb *renderer.Framebuffer, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if format == "ppm" {
		return fb.WritePPM(file)
	}
	if err := png.Encode(file, fb.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
