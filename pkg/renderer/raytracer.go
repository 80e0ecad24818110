package renderer

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// ErrInvalidConfig is returned for image sizes, sample counts or depths that cannot be rendered
var ErrInvalidConfig = errors.New("invalid render configuration")

// aspectTolerance is the relative difference allowed between image and camera aspect ratios
const aspectTolerance = 1e-9

// DefaultSeed seeds the sampler when none is supplied, keeping renders reproducible
const DefaultSeed = 42

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width
	Height          int // Image height
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports whether the configuration can be rendered
func (c SamplingConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// Raytracer handles the rendering process.
// It is single-threaded: one sampler serves every ray of a pass.
type Raytracer struct {
	camera     *Camera
	world      geometry.Shape
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
	logger     core.Logger
}

// NewRaytracer creates a new raytracer.
// The image size in config must match the camera's aspect ratio.
func NewRaytracer(camera *Camera, world geometry.Shape, config SamplingConfig) (*Raytracer, error) {
	if camera == nil {
		return nil, fmt.Errorf("%w: nil camera", ErrInvalidConfig)
	}
	if world == nil {
		return nil, fmt.Errorf("%w: nil world", ErrInvalidConfig)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	imageAspect := float64(config.Width) / float64(config.Height)
	if math.Abs(imageAspect-camera.AspectRatio()) > aspectTolerance*camera.AspectRatio() {
		return nil, fmt.Errorf("%w: image size %dx%d does not match camera aspect ratio %g",
			ErrInvalidConfig, config.Width, config.Height, camera.AspectRatio())
	}

	return &Raytracer{
		camera:     camera,
		world:      world,
		config:     config,
		integrator: integrator.NewPathTracingIntegrator(),
		sampler:    core.NewSeededSampler(DefaultSeed),
		logger:     core.NopLogger{},
	}, nil
}

// SetSampler replaces the random source used for jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integratorInst integrator.Integrator) {
	rt.integrator = integratorInst
}

// SetLogger sets where progress messages go
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// Config returns the sampling configuration
func (rt *Raytracer) Config() SamplingConfig {
	return rt.config
}

// samplePixel accumulates every sample of the pixel at column i, camera row j
func (rt *Raytracer) samplePixel(i, j int) PixelStats {
	var stats PixelStats
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		// Jitter within the pixel footprint
		u := (float64(i) + rt.sampler.Get1D()) / float64(rt.config.Width)
		v := (float64(j) + rt.sampler.Get1D()) / float64(rt.config.Height)

		ray := rt.camera.GetRay(u, v)
		stats.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler, rt.config.MaxDepth))
	}
	return stats
}

// RenderPass renders every pixel with the configured number of samples.
// Camera row j (0 = bottom) lands in framebuffer row Height-1-j.
func (rt *Raytracer) RenderPass() (*Framebuffer, RenderStats) {
	startTime := time.Now()
	width, height := rt.config.Width, rt.config.Height
	fb := NewFramebuffer(width, height)

	for j := height - 1; j >= 0; j-- {
		rt.logger.Printf("\rScanlines remaining: %d ", j+1)
		for i := 0; i < width; i++ {
			pixel := rt.samplePixel(i, j)
			fb.Set(i, height-1-j, pixel.GetDisplayColor())
		}
	}
	rt.logger.Printf("\rDone.                     \n")

	return fb, RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
		Duration:        time.Since(startTime),
	}
}

// Render traces world through camera into a width x height framebuffer
// using a single sampler for all randomness. The size must have the same
// aspect ratio as the camera; a mismatch returns ErrInvalidConfig.
func Render(camera *Camera, world geometry.Shape, width, height, samplesPerPixel, maxDepth int, sampler core.Sampler) (*Framebuffer, error) {
	rt, err := NewRaytracer(camera, world, SamplingConfig{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		MaxDepth:        maxDepth,
	})
	if err != nil {
		return nil, err
	}
	if sampler != nil {
		rt.SetSampler(sampler)
	}

	fb, _ := rt.RenderPass()
	return fb, nil
}
