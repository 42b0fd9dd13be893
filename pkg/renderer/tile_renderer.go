package renderer

import (
	"image"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
)

// TileRenderer renders individual tiles with a fixed number of samples per pixel
type TileRenderer struct {
	tracer          integrator.Tracer
	camera          *geometry.Camera
	integrator      *integrator.Integrator
	width, height   int
	samplesPerPixel int
	gamma           float64
}

// NewTileRenderer creates a tile renderer for an image of the given size
func NewTileRenderer(tracer integrator.Tracer, camera *geometry.Camera, integ *integrator.Integrator, config Config) *TileRenderer {
	return &TileRenderer{
		tracer:          tracer,
		camera:          camera,
		integrator:      integ,
		width:           config.Width,
		height:          config.Height,
		samplesPerPixel: config.SamplesPerPixel,
		gamma:           config.Gamma,
	}
}

// RenderTile samples every pixel of the tile and writes the encoded colors into
// img. All randomness comes from the tile's own generator. It returns the
// number of samples taken.
func (tr *TileRenderer) RenderTile(tile *Tile, img *image.RGBA) int {
	sampler := core.NewRandomSampler(tile.Random)
	samples := 0

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			var ps PixelStats
			for s := 0; s < tr.samplesPerPixel; s++ {
				ps.AddSample(tr.samplePixel(x, y, sampler))
			}
			img.SetRGBA(x, y, EncodeColor(ps.GetColor(), tr.gamma))
			samples += ps.SampleCount
		}
	}

	return samples
}

// samplePixel traces one jittered camera ray through pixel (x, y). Image row 0
// is the top of the picture, so v is measured from the bottom edge.
func (tr *TileRenderer) samplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	u := (float64(x) + sampler.Get1D()) / float64(tr.width)
	v := (float64(tr.height-y) + sampler.Get1D()) / float64(tr.height)

	ray := tr.camera.GetRay(u, v, sampler)
	return tr.integrator.Shade(tr.tracer, ray, 1, sampler)
}
