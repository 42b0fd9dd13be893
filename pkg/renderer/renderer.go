package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

var logger = log.New("renderer")

// Renderer drives a fixed-sample render of a scene split into tiles
type Renderer struct {
	scene      *scene.Scene
	camera     *geometry.Camera
	cameraCfg  geometry.CameraConfig
	integrator *integrator.Integrator
	config     Config
}

// New creates a renderer for sc. The camera is the scene's camera merged with
// config.Camera, with the aspect ratio taken from the image size.
func New(sc *scene.Scene, integ *integrator.Integrator, config Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := geometry.MergeCameraConfig(sc.CameraConfig, config.Camera)
	cameraConfig.AspectRatio = float64(config.Width) / float64(config.Height)

	camera := geometry.NewCamera(cameraConfig)
	logger.Debugf("camera at %v looking along %v, vfov %.1f, aperture %.2f",
		cameraConfig.Center, camera.Forward(), cameraConfig.VFov, cameraConfig.Aperture)

	return &Renderer{
		scene:      sc,
		camera:     camera,
		cameraCfg:  cameraConfig,
		integrator: integ,
		config:     config,
	}, nil
}

// CameraConfig returns the effective camera configuration after merging
func (r *Renderer) CameraConfig() geometry.CameraConfig {
	return r.cameraCfg
}

// Render samples every pixel and returns the encoded image. The output depends
// only on the scene, the configuration and the seed, not on the worker count.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	width, height := r.config.Width, r.config.Height

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	tiles := NewTileGrid(width, height, r.config.TileSize, r.config.Seed)
	pool := NewWorkerPool(r.config.workers())
	tileRenderer := NewTileRenderer(r.scene, r.camera, r.integrator, r.config)

	logger.Infof("rendering scene %q at %dx%d, %d spp, %d tiles on %d workers",
		r.scene.Name, width, height, r.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	// Each tile writes only its own slot
	tileSamples := make([]int, len(tiles))
	err := pool.Run(ctx, tiles, func(tile *Tile) error {
		tileSamples[tile.ID] = tileRenderer.RenderTile(tile, img)
		logger.Debugf("tile %d %v done", tile.ID, tile.Bounds)
		return nil
	})

	stats := RenderStats{
		TotalPixels: width * height,
		Tiles:       len(tiles),
		Workers:     pool.GetNumWorkers(),
		Elapsed:     time.Since(start),
	}
	for _, n := range tileSamples {
		stats.TotalSamples += n
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return nil, stats, err
	}

	logger.Noticef("rendered %d samples in %v (%.0f samples/s)",
		stats.TotalSamples, stats.Elapsed, stats.SamplesPerSecond())
	return img, stats, nil
}
