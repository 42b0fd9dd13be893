package renderer

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
	"github.com/google/go-cmp/cmp"
)

func smallConfig() Config {
	config := DefaultConfig()
	config.Width = 24
	config.Height = 16
	config.SamplesPerPixel = 2
	config.TileSize = 8
	return config
}

func renderDefault(t *testing.T, config Config) []byte {
	t.Helper()
	sc := scene.NewDefaultScene(rand.New(rand.NewSource(1)))
	r, err := New(sc, integrator.New(integrator.DefaultConfig()), config)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalSamples != config.Width*config.Height*config.SamplesPerPixel {
		t.Errorf("Expected %d samples, got %d", config.Width*config.Height*config.SamplesPerPixel, stats.TotalSamples)
	}
	return img.Pix
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Config)
		expected error
	}{
		{"Valid", func(*Config) {}, nil},
		{"Zero width", func(c *Config) { c.Width = 0 }, ErrInvalidDimensions},
		{"Negative height", func(c *Config) { c.Height = -1 }, ErrInvalidDimensions},
		{"Zero tile size", func(c *Config) { c.TileSize = 0 }, ErrInvalidDimensions},
		{"No samples", func(c *Config) { c.SamplesPerPixel = 0 }, ErrNoSamples},
		{"Zero gamma", func(c *Config) { c.Gamma = 0 }, ErrInvalidGamma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()
			if tt.expected == nil && err != nil {
				t.Errorf("Expected valid config, got %v", err)
			}
			if tt.expected != nil && !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	config := smallConfig()
	config.SamplesPerPixel = 0
	sc := scene.NewDefaultScene(rand.New(rand.NewSource(1)))
	if _, err := New(sc, integrator.New(integrator.DefaultConfig()), config); !errors.Is(err, ErrNoSamples) {
		t.Errorf("Expected ErrNoSamples, got %v", err)
	}
}

func TestRender_IndependentOfWorkerCount(t *testing.T) {
	config := smallConfig()
	config.NumWorkers = 1
	serial := renderDefault(t, config)

	config.NumWorkers = 4
	parallel := renderDefault(t, config)

	if !bytes.Equal(serial, parallel) {
		t.Error("Expected identical images for 1 and 4 workers")
	}
}

func TestRender_SeedChangesImage(t *testing.T) {
	config := smallConfig()
	a := renderDefault(t, config)

	config.Seed++
	b := renderDefault(t, config)

	if bytes.Equal(a, b) {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestRender_Stats(t *testing.T) {
	sc := scene.NewDefaultScene(rand.New(rand.NewSource(1)))
	config := smallConfig()
	config.NumWorkers = 2
	r, err := New(sc, integrator.New(integrator.DefaultConfig()), config)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 24 || img.Bounds().Dy() != 16 {
		t.Errorf("Unexpected image size %v", img.Bounds())
	}
	if stats.Tiles != 6 || stats.Workers != 2 || stats.TotalPixels != 24*16 {
		t.Errorf("Unexpected stats %+v", stats)
	}
	if stats.AverageSamples() != 2 {
		t.Errorf("Expected 2 samples per pixel, got %f", stats.AverageSamples())
	}
}

func TestRender_Canceled(t *testing.T) {
	sc := scene.NewDefaultScene(rand.New(rand.NewSource(1)))
	r, err := New(sc, integrator.New(integrator.DefaultConfig()), smallConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	img, _, err := r.Render(ctx)
	if !errors.Is(err, ErrInterrupted) || !errors.Is(err, context.Canceled) {
		t.Errorf("Expected ErrInterrupted wrapping context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image from an interrupted render")
	}
}

func TestNew_CameraOverride(t *testing.T) {
	sc := scene.NewDefaultScene(rand.New(rand.NewSource(1)))

	config := smallConfig()
	config.Camera = geometry.CameraConfig{
		Center: core.NewVec3(0, 2, 10),
		VFov:   45,
	}
	r, err := New(sc, integrator.New(integrator.DefaultConfig()), config)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	want := sc.CameraConfig
	want.Center = core.NewVec3(0, 2, 10)
	want.VFov = 45
	want.AspectRatio = 24.0 / 16.0
	if diff := cmp.Diff(want, r.CameraConfig()); diff != "" {
		t.Errorf("Unexpected camera config (-want +got):\n%s", diff)
	}

	// A moved camera produces a different image
	if bytes.Equal(renderDefault(t, smallConfig()), renderDefault(t, config)) {
		t.Error("Expected the camera override to change the image")
	}
}
