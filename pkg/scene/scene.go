package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering.
// The world is populated once by the constructor and only read afterwards.
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	World          *geometry.HittableList
}

// newScene builds an empty scene whose sampling size follows the camera
func newScene(name string, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) (*Scene, error) {
	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	samplingConfig.Width = cameraConfig.Width
	samplingConfig.Height = cameraConfig.Height

	return &Scene{
		Name:           name,
		Camera:         camera,
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		World:          geometry.NewHittableList(),
	}, nil
}

// Add appends a shape to the world
func (s *Scene) Add(shape geometry.Shape) {
	s.World.Add(shape)
}

// AddSphere creates a sphere with the given material and appends it to the world
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, mat)
	s.World.Add(sphere)
	return sphere
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return countPrimitives(s.World)
}

func countPrimitives(shape geometry.Shape) int {
	switch obj := shape.(type) {
	case *geometry.HittableList:
		count := 0
		for _, child := range obj.Shapes {
			count += countPrimitives(child)
		}
		return count
	default:
		return 1
	}
}

// NewRaytracer creates a raytracer for this scene with its recommended sampling
func (s *Scene) NewRaytracer() (*renderer.Raytracer, error) {
	return renderer.NewRaytracer(s.Camera, s.World, s.SamplingConfig)
}
