package material

import (
	"math"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// TextureKind identifies a procedural texture
type TextureKind uint8

const (
	Solid TextureKind = iota // No texture, the material color is used
	Checker
)

// Texture is a procedural color pattern evaluated on the surface normal
type Texture struct {
	Kind      TextureKind
	Odd, Even core.Vec3
}

// NewCheckerTexture creates a 3D checker pattern alternating between odd and even
func NewCheckerTexture(odd, even core.Vec3) Texture {
	return Texture{Kind: Checker, Odd: odd, Even: even}
}

// Evaluate returns the pattern color for a unit normal
func (t Texture) Evaluate(normal core.Vec3) core.Vec3 {
	sines := math.Sin(10*normal.X) * math.Sin(10*normal.Y) * math.Sin(10*normal.Z)
	if sines < 0 {
		return t.Odd
	}
	return t.Even
}
