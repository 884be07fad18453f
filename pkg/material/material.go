package material

import (
	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Surface is the part of a shape that pattern evaluation needs: the
// conversion from world space into the shape's object space. Shapes
// implement it; declaring it here keeps the material package free of a
// dependency on the shapes package.
type Surface interface {
	WorldToObject(point math.Tuple) math.Tuple
}

// Material holds the Phong shading parameters for one shape.
// It is a pure value type.
type Material struct {
	Color           canvas.Color
	Ambient         float64 // [0, 1]
	Diffuse         float64 // [0, 1]
	Specular        float64 // [0, 1]
	Shininess       float64 // larger is tighter highlight, typically 10-200
	Reflective      float64 // 0 matte, 1 perfect mirror
	Transparency    float64 // 0 opaque, 1 fully transmissive
	RefractiveIndex float64
	Pattern         Pattern // nil means the flat Color is used
}

// Default returns the standard material: white, mostly diffuse, opaque.
func Default() Material {
	return Material{
		Color:           canvas.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// colorAt resolves the surface color at a world-space point, consulting
// the pattern when one is attached.
func (m Material) colorAt(object Surface, worldPoint math.Tuple) canvas.Color {
	if m.Pattern == nil {
		return m.Color
	}
	return ColorAtObject(m.Pattern, object, worldPoint)
}
