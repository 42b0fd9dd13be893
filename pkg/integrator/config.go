package integrator

import (
	"fmt"

	"github.com/df07/go-bvh-raytracer/pkg/core"
)

// ScatterOrigin selects where reflected and refracted rays start
type ScatterOrigin uint8

const (
	// OriginCenter starts specular continuations at the center of the primitive
	// that was hit. The continuation then cannot hit its own primitive.
	OriginCenter ScatterOrigin = iota
	// OriginHitPoint starts specular continuations at the hit point, nudged by
	// TMin along the new direction. A refracted ray then starts inside the
	// sphere, and since intersection only reports the near root it never hits
	// the far wall: glass bends light on entry but not on exit.
	OriginHitPoint
)

func (o ScatterOrigin) String() string {
	switch o {
	case OriginCenter:
		return "center"
	case OriginHitPoint:
		return "hit"
	}
	return fmt.Sprintf("ScatterOrigin(%d)", uint8(o))
}

// ParseScatterOrigin converts "center" or "hit" to a ScatterOrigin
func ParseScatterOrigin(s string) (ScatterOrigin, error) {
	switch s {
	case "center":
		return OriginCenter, nil
	case "hit":
		return OriginHitPoint, nil
	}
	return OriginCenter, fmt.Errorf("unknown scatter origin %q (want center or hit)", s)
}

// Background is a vertical gradient returned for rays that escape the scene
type Background struct {
	Bottom core.Vec3 // Color for rays pointing straight down
	Top    core.Vec3 // Color for rays pointing straight up
}

// Evaluate blends Bottom and Top by t = 0.5*(dir.y + 1) of the unit direction
func (b Background) Evaluate(direction core.Vec3) core.Vec3 {
	unit := direction.Normalize()
	t := 0.5 * (unit.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}

// Config controls the recursive integrator
type Config struct {
	MaxDepth      int     // Shade returns black once depth exceeds this
	TMin          float64 // Start of the valid range for every trace
	ScatterOrigin ScatterOrigin
	Background    Background
}

// DefaultConfig returns a depth bound of 50 and a white to sky-blue background
func DefaultConfig() Config {
	return Config{
		MaxDepth:      50,
		TMin:          0.001,
		ScatterOrigin: OriginCenter,
		Background: Background{
			Bottom: core.White,
			Top:    core.NewVec3(0.5, 0.7, 1.0),
		},
	}
}
