package scene

import (
	"math/rand"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// defaultCameraConfig frames the three large spheres from above and to the side
func defaultCameraConfig() geometry.CameraConfig {
	return geometry.CameraConfig{
		Center:      core.NewVec3(9, 6, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: 600.0 / 400.0,
		VFov:        30,
		Aperture:    0.1,
		Time0:       0,
		Time1:       1, // Shutter stays open for the whole frame so moving spheres blur
	}
}

// groundSphere returns the huge sphere acting as the floor
func groundSphere(mat material.Material) geometry.Primitive {
	return geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, mat)
}

// featureSpheres returns the glass, diffuse and mirror spheres shared by the built-in scenes
func featureSpheres() []geometry.Primitive {
	brown := core.NewVec3(0.4, 0.2, 0.1)

	glass := material.NewRefractive(1.5)
	glass.Albedo = 0.8

	return []geometry.Primitive{
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewDiffuse(brown, 0.8)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewReflective(brown, 0.8, 0)),
	}
}

// NewDefaultScene creates a green ground with a glass, a diffuse and a mirror sphere
func NewDefaultScene(random *rand.Rand) *Scene {
	ground := groundSphere(material.NewDiffuse(core.NewVec3(0, 1, 0), 0.3))
	primitives := append([]geometry.Primitive{ground}, featureSpheres()...)

	s := NewScene(primitives, random)
	s.Name = "default"
	s.CameraConfig = defaultCameraConfig()
	return s
}

// NewCheckerScene creates the default scene with a checker textured ground
func NewCheckerScene(random *rand.Rand) *Scene {
	checker := material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := groundSphere(material.NewDiffuse(core.NewVec3(0, 1, 0), 0.5).WithTexture(checker))
	primitives := append([]geometry.Primitive{ground}, featureSpheres()...)

	s := NewScene(primitives, random)
	s.Name = "checker"
	s.CameraConfig = defaultCameraConfig()
	return s
}
