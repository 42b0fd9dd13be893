package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/material"
)

// Kind identifies the shape stored in a Primitive
type Kind uint8

const (
	KindSphere Kind = iota
	KindMovingSphere
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindMovingSphere:
		return "moving-sphere"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Primitive is a closed tagged union over the renderable shapes. A static
// sphere only uses Center0; a moving sphere travels linearly from Center0 at
// Time0 to Center1 at Time1.
type Primitive struct {
	Kind             Kind
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// Intersection is the closest hit found by a trace query
type Intersection struct {
	Primitive Primitive // Copy of the primitive that was hit
	Dist      float64   // Ray parameter of the hit
}

// NewSphere creates a static sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Primitive {
	return Primitive{
		Kind:     KindSphere,
		Center0:  center,
		Center1:  center,
		Radius:   radius,
		Material: mat,
	}
}

// NewMovingSphere creates a sphere whose center moves from center0 at time0 to
// center1 at time1. time0 == time1 yields NaN centers.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) Primitive {
	return Primitive{
		Kind:     KindMovingSphere,
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// Center returns the sphere center at the given shutter time
func (p Primitive) Center(time float64) core.Vec3 {
	switch p.Kind {
	case KindSphere:
		return p.Center0
	case KindMovingSphere:
		t := (time - p.Time0) / (p.Time1 - p.Time0)
		return p.Center0.Add(p.Center1.Subtract(p.Center0).Multiply(t))
	}
	panic(fmt.Sprintf("geometry: unknown primitive kind %d", p.Kind))
}

// Intersect returns the ray parameter of the near intersection with the
// sphere, or -1 when the ray misses. The far root is never reported, so a ray
// starting inside the sphere yields a non-positive distance.
func (p Primitive) Intersect(ray core.Ray) float64 {
	oc := ray.Origin.Subtract(p.Center(ray.Time))

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - p.Radius*p.Radius
	discriminant := halfB*halfB - a*c

	switch p.Kind {
	case KindSphere:
		if discriminant < 0 {
			return -1
		}
	case KindMovingSphere:
		// Tangent rays do not count for moving spheres
		if discriminant <= 0 {
			return -1
		}
	}

	return (-halfB - math.Sqrt(discriminant)) / a
}

// BoundingBox returns the box enclosing the primitive over its whole shutter interval
func (p Primitive) BoundingBox() core.AABB {
	switch p.Kind {
	case KindSphere:
		return sphereBox(p.Center0, p.Radius)
	case KindMovingSphere:
		return core.SurroundingBox(sphereBox(p.Center0, p.Radius), sphereBox(p.Center1, p.Radius))
	}
	panic(fmt.Sprintf("geometry: unknown primitive kind %d", p.Kind))
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := core.NewVec3(radius, radius, radius)
	return core.NewAABB(center.Subtract(r), center.Add(r))
}
