package renderer

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// viewportHeight is the fixed height of the image plane in world units
const viewportHeight = 2.0

// CameraConfig describes a pinhole camera looking down -Z from the origin
type CameraConfig struct {
	Width       int     // Image width in pixels
	Height      int     // Image height in pixels
	FocalLength float64 // Distance from the origin to the image plane
}

// DefaultCameraConfig returns a 16:9 camera with focal length 1
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:       400,
		Height:      225,
		FocalLength: 1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	aspectRatio     float64
}

// NewCamera creates a pinhole camera whose viewport matches the image aspect ratio
func NewCamera(config CameraConfig) (*Camera, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, fmt.Errorf("%w: camera size %dx%d", ErrInvalidConfig, config.Width, config.Height)
	}
	if config.FocalLength <= 0 {
		return nil, fmt.Errorf("%w: focal length %g", ErrInvalidConfig, config.FocalLength)
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	viewportWidth := viewportHeight * aspectRatio

	origin := core.NewVec3(0, 0, 0)
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		aspectRatio:     aspectRatio,
	}, nil
}

// AspectRatio returns width / height of the viewport
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}

// GetRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1.
// v=0 is the bottom edge of the viewport.
func (c *Camera) GetRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// MergeCameraConfig returns base with every non-zero field of override applied
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FocalLength > 0 {
		result.FocalLength = override.FocalLength
	}
	return result
}
