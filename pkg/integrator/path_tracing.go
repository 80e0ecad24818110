package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// MinHitDistance is the lower bound of every intersection query.
// Must stay above zero or scattered rays re-hit their own surface (shadow acne).
const MinHitDistance = 0.001

// PathTracingIntegrator implements recursive unidirectional path tracing
// with no light sampling and no Russian roulette: paths end on a miss,
// on absorption, or when the depth budget runs out.
type PathTracingIntegrator struct {
	Background GradientBackground
}

// NewPathTracingIntegrator creates a new path tracing integrator with the default sky
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{Background: DefaultBackground()}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, MinHitDistance, math.Inf(1))
	if !isHit {
		return pt.Background.Evaluate(ray)
	}

	// A surface without a material renders as a black hole
	if hit.Material == nil {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, sampler, depth-1))
}
