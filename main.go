package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	Samples   int
	MaxDepth  int
	Seed      int64
	OutputDir string
	Quiet     bool
	Help      bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Scene to render: "+strings.Join(scene.Names(), ", "))
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	flag.Int64Var(&config.Seed, "seed", renderer.DefaultSeed, "Random seed for sampling")
	flag.StringVar(&config.OutputDir, "output", "output", "Root directory for rendered images")
	flag.BoolVar(&config.Quiet, "quiet", false, "Suppress progress output")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

func showHelp() {
	fmt.Println("Weekend Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-15s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

func run(config Config) error {
	selectedScene, err := createScene(config)
	if err != nil {
		return err
	}

	raytracer, err := selectedScene.NewRaytracer()
	if err != nil {
		return err
	}
	raytracer.SetSampler(core.NewSeededSampler(config.Seed))

	var logger core.Logger = core.NopLogger{}
	if !config.Quiet {
		logger = renderer.NewDefaultLogger()
	}
	raytracer.SetLogger(logger)

	logger.Printf("Rendering scene %q (%d primitives) at %dx%d, %d samples, depth %d\n",
		selectedScene.Name, selectedScene.GetPrimitiveCount(),
		selectedScene.SamplingConfig.Width, selectedScene.SamplingConfig.Height,
		selectedScene.SamplingConfig.SamplesPerPixel, selectedScene.SamplingConfig.MaxDepth)

	fb, stats := raytracer.RenderPass()

	filename, err := saveImage(fb, createOutputDir(config.OutputDir, selectedScene.Name))
	if err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d samples)\n", stats.Duration, stats.TotalSamples)
	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the requested scene and applies command line overrides
func createScene(config Config) (*scene.Scene, error) {
	selectedScene, err := scene.New(config.SceneType, renderer.CameraConfig{
		Width:  config.Width,
		Height: config.Height,
	})
	if err != nil {
		return nil, err
	}

	if config.Samples > 0 {
		selectedScene.SamplingConfig.SamplesPerPixel = config.Samples
	}
	if config.MaxDepth > 0 {
		selectedScene.SamplingConfig.MaxDepth = config.MaxDepth
	}

	return selectedScene, nil
}

// createOutputDir returns the directory renders of sceneName are written to
func createOutputDir(root, sceneName string) string {
	return filepath.Join(root, sceneName)
}

// saveImage writes fb as a timestamped PNG inside outputDir
func saveImage(fb *renderer.Framebuffer, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}

	if err := writePNG(file, fb); err != nil {
		return "", err
	}

	return filename, nil
}

// writePNG encodes fb into w and closes it, returning any close error
func writePNG(w io.WriteCloser, fb *renderer.Framebuffer) error {
	if err := png.Encode(w, fb.ToImage()); err != nil {
		w.Close()
		return fmt.Errorf("saving PNG: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing PNG: %w", err)
	}
	return nil
}
