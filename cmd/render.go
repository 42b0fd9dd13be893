package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/geometry"
	"github.com/df07/go-bvh-raytracer/pkg/integrator"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderScene renders a built-in scene and writes it as a PNG.
func RenderScene(ctx *cli.Context) error {
	setupLogging(ctx)

	origin, err := integrator.ParseScatterOrigin(ctx.String("origin"))
	if err != nil {
		logger.Error(err)
		return err
	}

	seed := ctx.Int64("seed")
	sc, err := scene.Lookup(ctx.String("scene"), rand.New(rand.NewSource(seed)))
	if err != nil {
		logger.Error(err)
		return err
	}

	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.SamplesPerPixel = ctx.Int("spp")
	config.TileSize = ctx.Int("tile-size")
	config.NumWorkers = ctx.Int("workers")
	config.Seed = seed
	if config.Camera, err = cameraOverride(ctx); err != nil {
		logger.Error(err)
		return err
	}

	integratorConfig := integrator.DefaultConfig()
	integratorConfig.ScatterOrigin = origin
	integ := integrator.New(integratorConfig)

	r, err := renderer.New(sc, integ, config)
	if err != nil {
		logger.Error(err)
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := r.Render(renderCtx)
	if err != nil {
		logger.Error(err)
		return err
	}

	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		logger.Error(err)
		return err
	}
	logger.Noticef("wrote %s", out)

	displayRenderStats(ctx, sc.Name, integ.Config(), stats)
	return nil
}

// cameraOverride collects the camera flags; unset flags leave zero fields so
// the scene camera keeps its values.
func cameraOverride(ctx *cli.Context) (geometry.CameraConfig, error) {
	var config geometry.CameraConfig
	var err error
	if s := ctx.String("look-from"); s != "" {
		if config.Center, err = parseVec3(s); err != nil {
			return config, fmt.Errorf("while parsing look-from: %w", err)
		}
	}
	if s := ctx.String("look-at"); s != "" {
		if config.LookAt, err = parseVec3(s); err != nil {
			return config, fmt.Errorf("while parsing look-at: %w", err)
		}
	}
	config.VFov = ctx.Float64("vfov")
	config.Aperture = ctx.Float64("aperture")
	return config, nil
}

// parseVec3 parses "x,y,z"
func parseVec3(s string) (core.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected x,y,z, got %q", s)
	}
	var xyz [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, err
		}
		xyz[i] = v
	}
	return core.NewVec3(xyz[0], xyz[1], xyz[2]), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("while encoding %s: %w", path, err)
	}
	return f.Close()
}

func displayRenderStats(ctx *cli.Context, sceneName string, shading integrator.Config, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Pixels", "Samples", "Tiles", "Workers", "Max depth", "Origin", "Render time", "Samples/s"})
	table.Append([]string{
		sceneName,
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%d", shading.MaxDepth),
		shading.ScatterOrigin.String(),
		stats.Elapsed.String(),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
	})
	table.Render()

	fmt.Fprintf(ctx.App.Writer, "render statistics\n%s", buf.String())
}
