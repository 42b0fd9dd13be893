package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// Tracer finds the closest intersection along a ray. *scene.Scene implements it.
type Tracer interface {
	Trace(ray core.Ray, tMin, tMax float64) (geometry.Intersection, bool)
}

// Integrator evaluates the color seen along a ray by recursively following
// diffuse, reflective and refractive scattering. It holds no mutable state;
// all randomness comes from the sampler passed to Shade.
type Integrator struct {
	config Config
}

// New creates an integrator with the given configuration
func New(config Config) *Integrator {
	return &Integrator{config: config}
}

// Config returns the integrator configuration
func (in *Integrator) Config() Config {
	return in.config
}

// Shade returns the color carried back along ray. The driver calls it with
// depth 1; each bounce recurses with depth+1 until MaxDepth is exceeded.
func (in *Integrator) Shade(tracer Tracer, ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	if depth > in.config.MaxDepth {
		return core.Black
	}

	hit, isHit := tracer.Trace(ray, in.config.TMin, math.Inf(1))
	if !isHit {
		return in.config.Background.Evaluate(ray.Direction)
	}

	p := ray.At(hit.Dist)
	center := hit.Primitive.Center(ray.Time)
	normal := p.Subtract(center).Normalize()
	mat := hit.Primitive.Material

	switch mat.Surface.Kind {
	case material.Diffuse:
		target := normal.Add(p).Add(core.RandomInUnitSphere(sampler))
		scattered := core.NewRayAtTime(p, target.Subtract(p), ray.Time)
		incoming := in.Shade(tracer, scattered, depth+1, sampler)
		return mat.ColorAt(normal).MultiplyVec(incoming).Multiply(mat.Albedo)

	case material.Reflective:
		reflected := material.Reflect(ray.Direction.Normalize(), normal)
		direction := reflected.Add(core.RandomInUnitSphere(sampler).Multiply(mat.Surface.Reflectivity))
		scattered := core.NewRayAtTime(in.scatterOrigin(p, center, direction), direction, ray.Time)
		return in.Shade(tracer, scattered, depth+1, sampler).Multiply(mat.Albedo)

	case material.Refractive:
		direction := refractOrReflect(ray.Direction, normal, mat.Surface.Index, sampler)
		scattered := core.NewRayAtTime(in.scatterOrigin(p, center, direction), direction, ray.Time)
		return in.Shade(tracer, scattered, depth+1, sampler)
	}

	panic(fmt.Sprintf("material: unknown surface kind %d", mat.Surface.Kind))
}

// scatterOrigin picks the start of a specular continuation ray
func (in *Integrator) scatterOrigin(p, center, direction core.Vec3) core.Vec3 {
	if in.config.ScatterOrigin == OriginHitPoint {
		return p.Add(direction.Normalize().Multiply(in.config.TMin))
	}
	return center
}

// refractOrReflect chooses the continuation direction at a dielectric surface.
// normal is the outward unit normal at the hit. Total internal reflection
// always reflects; otherwise the reflected branch is taken with the Schlick
// probability. Exactly one sample is drawn when refraction is possible.
func refractOrReflect(direction, normal core.Vec3, index float64, sampler core.Sampler) core.Vec3 {
	reflected := material.Reflect(direction.Normalize(), normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	if direction.Dot(normal) > 0 {
		// Leaving the medium
		outwardNormal = normal.Negate()
		niOverNt = index
		cosine = index * direction.Dot(normal) / direction.Length()
	} else {
		outwardNormal = normal
		niOverNt = 1.0 / index
		cosine = -direction.Dot(normal) / direction.Length()
	}

	refracted, ok := material.Refract(direction, outwardNormal, niOverNt)
	if !ok {
		return reflected
	}
	if sampler.Get1D() < material.Schlick(cosine, index) {
		return reflected
	}
	return refracted
}
