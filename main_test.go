package main

import (
	"testing"

	"github.com/df07/go-bvh-raytracer/cmd"
)

func TestAppCommands(t *testing.T) {
	app := cmd.NewApp()

	for _, name := range []string{"render", "list-scenes", "bvh-stats"} {
		if app.Command(name) == nil {
			t.Errorf("Expected command %q to be registered", name)
		}
	}

	render := app.Command("render")
	flags := map[string]bool{}
	for _, f := range render.Flags {
		flags[f.GetName()] = true
	}
	for _, name := range []string{"scene, s", "width", "height", "spp", "tile-size", "workers", "seed", "origin", "look-from", "look-at", "vfov", "aperture", "out, o"} {
		if !flags[name] {
			t.Errorf("Expected render flag %q", name)
		}
	}
}
