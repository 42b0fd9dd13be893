package renderer

import (
	"image/color"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// EncodeColor converts a linear color to 8-bit RGBA: each channel is clamped
// to [0,1], gamma encoded and truncated after scaling by 255. NaN channels
// encode as 0.
func EncodeColor(c core.Vec3, gamma float64) color.RGBA {
	encoded := c.Clamp(0, 1).GammaCorrect(gamma)
	return color.RGBA{
		R: quantize(encoded.X),
		G: quantize(encoded.Y),
		B: quantize(encoded.Z),
		A: 255,
	}
}

func quantize(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	return uint8(v * 255)
}
