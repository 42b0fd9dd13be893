package material

import (
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// SurfaceKind identifies how a surface scatters light
type SurfaceKind uint8

const (
	Diffuse SurfaceKind = iota
	Reflective
	Refractive
)

func (k SurfaceKind) String() string {
	switch k {
	case Diffuse:
		return "diffuse"
	case Reflective:
		return "reflective"
	case Refractive:
		return "refractive"
	}
	return fmt.Sprintf("SurfaceKind(%d)", uint8(k))
}

// Surface is a closed tagged union over the supported scattering behaviors.
// Only the parameter belonging to Kind is meaningful.
type Surface struct {
	Kind         SurfaceKind
	Reflectivity float64 // Reflective: fuzz radius, 0 is a perfect mirror
	Index        float64 // Refractive: index of refraction, e.g. 1.5 for glass
}

// DiffuseSurface returns a lambertian-like surface
func DiffuseSurface() Surface {
	return Surface{Kind: Diffuse}
}

// ReflectiveSurface returns a mirror surface perturbed by the given fuzz radius
func ReflectiveSurface(reflectivity float64) Surface {
	return Surface{Kind: Reflective, Reflectivity: reflectivity}
}

// RefractiveSurface returns a dielectric surface with the given refractive index
func RefractiveSurface(index float64) Surface {
	return Surface{Kind: Refractive, Index: index}
}

// Material describes a surface's appearance. Materials are plain values and are
// copied onto every primitive that uses them.
type Material struct {
	Color   core.Vec3 // Base color, used when Texture is unset
	Albedo  float64   // Fraction of energy retained per bounce
	Surface Surface
	Texture Texture
}

// NewDiffuse creates a diffuse material
func NewDiffuse(color core.Vec3, albedo float64) Material {
	return Material{Color: color, Albedo: albedo, Surface: DiffuseSurface()}
}

// NewReflective creates a (possibly fuzzy) mirror material
func NewReflective(color core.Vec3, albedo, reflectivity float64) Material {
	return Material{Color: color, Albedo: albedo, Surface: ReflectiveSurface(reflectivity)}
}

// NewRefractive creates a clear dielectric material
func NewRefractive(index float64) Material {
	return Material{Color: core.White, Albedo: 1, Surface: RefractiveSurface(index)}
}

// ColorAt returns the surface color at a point with the given unit normal
func (m Material) ColorAt(normal core.Vec3) core.Vec3 {
	if m.Texture.Kind == Checker {
		return m.Texture.Evaluate(normal)
	}
	return m.Color
}

// WithTexture returns a copy of the material that takes its color from texture
func (m Material) WithTexture(texture Texture) Material {
	m.Texture = texture
	return m
}
