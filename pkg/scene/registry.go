package scene

import (
	"fmt"
	"math/rand"
)

// Builder constructs a scene, drawing any randomness from random
type Builder func(random *rand.Rand) *Scene

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
}

type entry struct {
	info  Info
	build Builder
}

var builtins = []entry{
	{Info{"default", "Green ground with glass, diffuse and mirror spheres"}, NewDefaultScene},
	{Info{"random", "Default scene plus a grid of random moving, metal and glass spheres"}, NewRandomScene},
	{Info{"checker", "Default scene on a checker textured ground"}, NewCheckerScene},
}

// Lookup builds the built-in scene with the given name
func Lookup(name string, random *rand.Rand) (*Scene, error) {
	for _, e := range builtins {
		if e.info.Name == name {
			return e.build(random), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// List returns the built-in scenes in registration order
func List() []Info {
	infos := make([]Info, len(builtins))
	for i, e := range builtins {
		infos[i] = e.info
	}
	return infos
}
