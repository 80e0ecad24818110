package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for rendering algorithms.
// Implementations are not safe for concurrent use; each render (or worker)
// owns exactly one.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded with seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// SampleOnUnitSphere maps a 2D sample to a point on the surface of the unit sphere.
// The azimuth comes from sample.X and the height from sample.Y.
func SampleOnUnitSphere(sample Vec2) Vec3 {
	a := sample.X * 2 * math.Pi
	z := (sample.Y - 0.5) * 2
	r := math.Sqrt(math.Max(0, 1-z*z))
	return NewVec3(r*math.Cos(a), r*math.Sin(a), z)
}
