package material

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// Reflect mirrors v about the normal n: r = v - 2*dot(v,n)*n
func Reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with unit normal n using Snell's law.
// niOverNt is the ratio of the incident to the transmitted refractive index.
// It returns false on total internal reflection (discriminant <= 0).
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick approximates the Fresnel reflectance for the given cosine and index
func Schlick(cosine, index float64) float64 {
	r0 := (1 - index) / (1 + index)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
