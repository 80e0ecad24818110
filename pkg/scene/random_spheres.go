package scene

import (
	"math/rand"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

const (
	groundLevel       = -0.5
	smallSphereRadius = 0.2
	largeSphereRadius = 1.0
)

// NewRandomSpheresScene creates a field of small random spheres around three large ones.
// The same seed always produces the same layout and materials.
func NewRandomSpheresScene(seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Width:       600,
		Height:      400,
		FocalLength: 1.5,
	}
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s, err := newScene("random-spheres", cameraConfig, renderer.SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        50,
	})
	if err != nil {
		return nil, err
	}

	random := rand.New(rand.NewSource(seed))

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, groundLevel-1000, -1), 1000, ground)

	largeY := groundLevel + largeSphereRadius
	largeCenters := []core.Vec3{
		core.NewVec3(-2.5, largeY, -7),
		core.NewVec3(0, largeY, -7),
		core.NewVec3(2.5, largeY, -7),
	}

	for a := -11; a < 11; a++ {
		for b := 0; b < 20; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				groundLevel+smallSphereRadius,
				-2-float64(b)-0.9*random.Float64(),
			)

			if overlapsAny(center, largeCenters, largeSphereRadius+smallSphereRadius+0.1) {
				continue
			}

			s.AddSphere(center, smallSphereRadius, randomMaterial(random))
		}
	}

	s.AddSphere(largeCenters[0], largeSphereRadius, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(largeCenters[1], largeSphereRadius, material.NewDielectric(1.5))
	s.AddSphere(largeCenters[2], largeSphereRadius, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s, nil
}

// randomMaterial picks mostly diffuse, some metal and a few glass materials
func randomMaterial(random *rand.Rand) material.Material {
	choose := random.Float64()
	switch {
	case choose < 0.8:
		albedo := core.NewVec3(random.Float64(), random.Float64(), random.Float64()).
			MultiplyVec(core.NewVec3(random.Float64(), random.Float64(), random.Float64()))
		return material.NewLambertian(albedo)
	case choose < 0.95:
		albedo := core.NewVec3(
			0.5+0.5*random.Float64(),
			0.5+0.5*random.Float64(),
			0.5+0.5*random.Float64(),
		)
		return material.NewMetal(albedo, 0.5*random.Float64())
	default:
		return material.NewDielectric(1.5)
	}
}

func overlapsAny(center core.Vec3, others []core.Vec3, minDistance float64) bool {
	for _, other := range others {
		if center.Subtract(other).Length() < minDistance {
			return true
		}
	}
	return false
}
