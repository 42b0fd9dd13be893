package scene

import (
	"math/rand"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

const (
	gridExtent  = 11  // Grid covers [-gridExtent, gridExtent) on X and Z
	smallRadius = 0.2 // Radius of every grid sphere
)

// NewRandomScene creates the default scene surrounded by a 22x22 grid of small
// spheres: 80% moving diffuse, 15% fuzzy metal and 5% glass. Materials and
// positions are drawn from random, as are the BVH split axes.
func NewRandomScene(random *rand.Rand) *Scene {
	ground := groundSphere(material.NewDiffuse(core.NewVec3(0, 1, 0), 0.3))
	primitives := append([]geometry.Primitive{ground}, featureSpheres()...)
	primitives = append(primitives, gridSpheres(random)...)

	s := NewScene(primitives, random)
	s.Name = "random"
	s.CameraConfig = defaultCameraConfig()
	return s
}

// gridSpheres scatters small spheres over the ground, keeping clear of the mirror sphere
func gridSpheres(random *rand.Rand) []geometry.Primitive {
	var spheres []geometry.Primitive
	clearing := core.NewVec3(4, smallRadius, 0)

	for a := -gridExtent; a < gridExtent; a++ {
		for b := -gridExtent; b < gridExtent; b++ {
			choice := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), smallRadius, float64(b)+0.9*random.Float64())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case choice < 0.8:
				color := core.NewVec3(random.Float64(), random.Float64(), random.Float64())
				diffuse := material.NewDiffuse(color, random.Float64())
				center1 := center.Add(core.NewVec3(0, random.Float64(), 0))
				spheres = append(spheres, geometry.NewMovingSphere(center, center1, 0, 1, smallRadius, diffuse))
			case choice < 0.95:
				metal := material.NewReflective(core.White, 0.8, random.Float64())
				spheres = append(spheres, geometry.NewSphere(center, smallRadius, metal))
			default:
				spheres = append(spheres, geometry.NewSphere(center, smallRadius, material.NewRefractive(1.5)))
			}
		}
	}

	return spheres
}
