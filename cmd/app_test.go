package cmd

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-bvh-raytracer/pkg/core"
	"github.com/df07/go-bvh-raytracer/pkg/log"
	"github.com/df07/go-bvh-raytracer/pkg/renderer"
	"github.com/df07/go-bvh-raytracer/pkg/scene"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := NewApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"bvh-raytracer"}, args...))
	return out.String(), err
}

func TestRender_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	out, err := runApp(t, "render", "--width", "12", "--height", "8", "--spp", "1", "--tile-size", "4",
		"--workers", "2", "--origin", "hit", "--out", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Output is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 8 {
		t.Errorf("Unexpected image size %v", img.Bounds())
	}
	if !strings.Contains(out, "render statistics") || !strings.Contains(out, "96") {
		t.Errorf("Expected a stats table with 96 pixels, got:\n%s", out)
	}
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"Unknown scene", []string{"--scene", "teapot"}, scene.ErrUnknownScene},
		{"No samples", []string{"--spp", "0"}, renderer.ErrNoSamples},
		{"Bad size", []string{"--width", "0"}, renderer.ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"render", "--out", filepath.Join(dir, "x.png")}, tt.args...)
			_, err := runApp(t, args...)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}

	if _, err := runApp(t, "render", "--origin", "surface", "--out", filepath.Join(dir, "x.png")); err == nil {
		t.Error("Expected an error for an unknown scatter origin")
	}
}

func TestListScenes(t *testing.T) {
	out, err := runApp(t, "list-scenes")
	if err != nil {
		t.Fatalf("list-scenes failed: %v", err)
	}
	for _, info := range scene.List() {
		if !strings.Contains(out, info.Name) {
			t.Errorf("Expected %q in output:\n%s", info.Name, out)
		}
	}
}

func TestBVHStats(t *testing.T) {
	out, err := runApp(t, "bvh-stats", "--scene", "default")
	if err != nil {
		t.Fatalf("bvh-stats failed: %v", err)
	}
	// Four spheres: 7 nodes, 4 leaves, depth 2
	for _, want := range []string{"default", "Nodes", "7", "4", "2.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	if _, err := runApp(t, "bvh-stats", "--scene", "teapot"); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestVerbosityFlags(t *testing.T) {
	var logs bytes.Buffer
	log.SetSink(&logs)
	t.Cleanup(func() { log.SetSink(os.Stderr) })

	tests := []struct {
		flag  string
		info  bool
		debug bool
	}{
		{"-v", true, false},
		{"-vv", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			log.SetSink(&logs)
			if _, err := runApp(t, tt.flag, "bvh-stats"); err != nil {
				t.Fatalf("bvh-stats %s failed: %v", tt.flag, err)
			}
			if log.IsEnabled(log.Info) != tt.info || log.IsEnabled(log.Debug) != tt.debug {
				t.Errorf("Expected info=%t debug=%t after %s", tt.info, tt.debug, tt.flag)
			}
		})
	}
}

func TestVersionFlag(t *testing.T) {
	out, err := runApp(t, "--version")
	if err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out, "0.1.0") {
		t.Errorf("Expected the version in output, got:\n%s", out)
	}
}

func TestRender_CameraAndShadingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	out, err := runApp(t, "render", "--width", "8", "--height", "8", "--spp", "1", "--tile-size", "8",
		"--look-from", "0, 2, 10", "--look-at", "0,1,0", "--vfov", "45", "--aperture", "0.5", "--out", path)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"Max depth", "50", "center"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}

	if _, err := runApp(t, "render", "--look-from", "1,2", "--out", path); err == nil {
		t.Error("Expected an error for a malformed look-from")
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		input    string
		expected core.Vec3
		wantErr  bool
	}{
		{"1,2,3", core.NewVec3(1, 2, 3), false},
		{" -0.5, 0 ,1e2", core.NewVec3(-0.5, 0, 100), false},
		{"1,2", core.Vec3{}, true},
		{"a,b,c", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVec3(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("parseVec3(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
