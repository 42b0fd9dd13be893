package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-bvh-raytracer/pkg/geometry"
)

// Config contains the image and scheduling parameters of a render
type Config struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Fixed number of samples taken for every pixel
	TileSize        int     // Edge length of the square tiles rendered in parallel
	NumWorkers      int     // Number of tiles rendered concurrently (0 = use CPU count)
	Seed            int64   // Tile generators are seeded with Seed + tile ID
	Gamma           float64 // Encoding gamma applied before quantization

	// Camera overrides the scene's camera; zero fields keep the scene values.
	// The aspect ratio always follows Width/Height.
	Camera geometry.CameraConfig
}

// DefaultConfig returns a 600x400 render with 100 samples per pixel
func DefaultConfig() Config {
	return Config{
		Width:           600,
		Height:          400,
		SamplesPerPixel: 100,
		TileSize:        32,
		NumWorkers:      runtime.NumCPU(),
		Seed:            42,
		Gamma:           2.2,
	}
}

// Validate checks that the configuration describes a renderable image
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %d", ErrInvalidDimensions, c.TileSize)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: %d samples per pixel", ErrNoSamples, c.SamplesPerPixel)
	}
	if c.Gamma <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidGamma, c.Gamma)
	}
	return nil
}

// workers returns the effective worker count
func (c Config) workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}
