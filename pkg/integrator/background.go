package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// GradientBackground is the sky seen by rays that leave the scene.
// It blends from Bottom (looking straight down) to Top (looking straight up).
type GradientBackground struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() GradientBackground {
	return GradientBackground{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Evaluate returns the background color for a ray direction
func (g GradientBackground) Evaluate(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return g.Bottom.Lerp(g.Top, t)
}
