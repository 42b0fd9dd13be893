package core

import "math/rand"

// Sampler provides uniform random numbers for rendering algorithms.
// Implementations are not safe for concurrent use; every unit of parallel
// work owns its own Sampler.
type Sampler interface {
	Get1D() float64
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// RandomInUnitSphere returns a uniformly distributed point strictly inside the
// unit sphere. Candidates are drawn from the symmetric cube [-1,1)^3, not
// [0,1)^3, so every octant is reachable. The rejection loop has no iteration
// cap.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	for {
		u := sampler.Get3D()
		p := NewVec3(2*u.X-1, 2*u.Y-1, 2*u.Z-1)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit disk
// in the XY plane, used for lens sampling
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		p := NewVec3(2*sampler.Get1D()-1, 2*sampler.Get1D()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
