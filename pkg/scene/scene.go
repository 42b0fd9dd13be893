package scene

import (
	"math/rand"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
)

// Scene owns the primitives to render and the BVH built over them. It is
// immutable after construction and may be traced from many goroutines.
type Scene struct {
	Name         string
	CameraConfig geometry.CameraConfig // Default view for this scene
	primitives   []geometry.Primitive
	bvh          *geometry.BVH
}

// NewScene takes ownership of primitives and builds the BVH over them. The
// slice is reordered by the build. It panics if primitives is empty.
func NewScene(primitives []geometry.Primitive, random *rand.Rand) *Scene {
	if len(primitives) == 0 {
		panic("scene: cannot create a scene without primitives")
	}
	return &Scene{
		primitives: primitives,
		bvh:        geometry.NewBVH(primitives, random),
	}
}

// Trace returns the closest intersection along ray within [tMin, tMax]
func (s *Scene) Trace(ray core.Ray, tMin, tMax float64) (geometry.Intersection, bool) {
	return s.bvh.Hit(ray, tMin, tMax)
}

// BVH returns the acceleration structure built for this scene
func (s *Scene) BVH() *geometry.BVH {
	return s.bvh
}

// PrimitiveCount returns the number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.primitives)
}

// BoundingBox returns the box enclosing the whole scene
func (s *Scene) BoundingBox() core.AABB {
	return s.bvh.BoundingBox()
}
