// Package scenes provides the built-in demonstration scenes.
package scenes

import (
	"fmt"
	"sort"

	"github.com/mboyd/go-whitted-raytracer/pkg/scene"
)

// Builder constructs a world and a camera sized for the requested image.
type Builder func(width, height int) (*scene.World, *scene.Camera, error)

var builders = map[string]Builder{
	"default": NewDefaultScene,
	"csg":     NewCSGScene,
	"hexagon": NewHexagonScene,
	"glass":   NewGlassScene,
}

// Lookup returns the builder registered under name.
func Lookup(name string) (Builder, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return b, nil
}

// Names lists the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
