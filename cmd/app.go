package cmd

import (
	"runtime"

	"github.com/urfave/cli"
)

// NewApp creates the command line application with all commands registered
func NewApp() *cli.App {
	// The default version flag claims -v, which is the verbosity switch here
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "bvh-raytracer"
	app.Usage = "render sphere scenes with a BVH accelerated recursive ray tracer"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Build the selected scene and its BVH, then render it tile by tile using a fixed
number of samples per pixel. Every tile owns a generator seeded with seed + tile
id so the output does not depend on the number of workers.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "name of the built-in scene (see list-scenes)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 600,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 400,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Value: 32,
					Usage: "edge length of the tiles rendered in parallel",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: runtime.NumCPU(),
					Usage: "number of tiles rendered concurrently",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene generation, BVH splits and sampling",
				},
				cli.StringFlag{
					Name:  "origin",
					Value: "center",
					Usage: "start of reflected and refracted rays: center or hit",
				},
				cli.StringFlag{
					Name:  "look-from",
					Usage: "camera position as x,y,z (empty keeps the scene camera)",
				},
				cli.StringFlag{
					Name:  "look-at",
					Usage: "camera target as x,y,z (empty keeps the scene camera)",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees (0 keeps the scene camera)",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "lens diameter (0 keeps the scene camera)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderScene,
		},
		{
			Name:   "list-scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
		{
			Name:  "bvh-stats",
			Usage: "build a scene's BVH and print its shape",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "name of the built-in scene (see list-scenes)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "seed for scene generation and BVH splits",
				},
			},
			Action: BVHStats,
		},
	}

	return app
}
