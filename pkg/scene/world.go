package scene

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
	"github.com/mboyd/go-whitted-raytracer/pkg/shapes"
)

// MaxDepth bounds the reflection/refraction recursion. A branch that
// exhausts it contributes black, which guarantees termination between
// facing mirrors or nested transparent shells.
const MaxDepth = 5

// World binds a set of top-level shapes to a set of point lights. Build
// it before rendering; it is read-only while a render is in flight, so
// any number of workers may query it concurrently.
type World struct {
	shapes []shapes.Shape
	lights []material.PointLight
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// AddShape adds a top-level shape. Pre-render only.
func (w *World) AddShape(s shapes.Shape) {
	w.shapes = append(w.shapes, s)
}

// AddLight adds a point light. Pre-render only. A world with no lights
// still renders; every surface just shades to black.
func (w *World) AddLight(l material.PointLight) {
	w.lights = append(w.lights, l)
}

// Shapes returns the top-level shapes.
func (w *World) Shapes() []shapes.Shape { return w.shapes }

// Lights returns the world's lights.
func (w *World) Lights() []material.PointLight { return w.lights }

// Intersect collects the intersections of a ray with every top-level
// shape, sorted by ascending t.
func (w *World) Intersect(ray math.Ray) []shapes.Intersection {
	var xs []shapes.Intersection
	for _, s := range w.shapes {
		xs = append(xs, s.Intersect(ray)...)
	}
	shapes.SortIntersections(xs)
	return xs
}

// ColorAt computes the color seen along a ray with the full recursion
// budget. This is the world's single externally meaningful operation.
func (w *World) ColorAt(ray math.Ray) canvas.Color {
	return w.colorAt(ray, MaxDepth)
}

func (w *World) colorAt(ray math.Ray, remaining int) canvas.Color {
	xs := w.Intersect(ray)
	hit, ok := shapes.Hit(xs)
	if !ok {
		return canvas.Black()
	}
	comps := shapes.PrepareComputations(hit, ray, xs)
	return w.shadeHit(comps, remaining)
}

// shadeHit combines the Phong surface color with the reflected and
// refracted contributions, blending the latter two by the Schlick
// reflectance when the material supports both.
func (w *World) shadeHit(comps shapes.Computations, remaining int) canvas.Color {
	m := comps.Shape.Material()

	surface := canvas.Black()
	for _, light := range w.lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(material.Lighting(
			m, comps.Shape, light, comps.OverPoint, comps.Eye, comps.Normal, shadowed))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IsShadowed reports whether a point is shadowed with respect to a light:
// some shape blocks the segment between the point and the light. The
// caller passes the epsilon-biased over point, which prevents the surface
// from shadowing itself.
func (w *World) IsShadowed(point math.Tuple, light material.PointLight) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Magnitude()

	ray := math.NewRay(point, toLight.Normalize())
	hit, ok := shapes.Hit(w.Intersect(ray))
	return ok && hit.T < distance
}

// reflectedColor traces the reflection ray, scaled by the material's
// reflectivity. Returns black at depth exhaustion or on matte surfaces.
func (w *World) reflectedColor(comps shapes.Computations, remaining int) canvas.Color {
	reflective := comps.Shape.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return canvas.Black()
	}

	ray := math.NewRay(comps.OverPoint, comps.Reflect)
	return w.colorAt(ray, remaining-1).Scale(reflective)
}

// refractedColor traces the refraction ray per Snell's law, scaled by the
// material's transparency. Total internal reflection and depth exhaustion
// both contribute black.
func (w *World) refractedColor(comps shapes.Computations, remaining int) canvas.Color {
	transparency := comps.Shape.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return canvas.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		// total internal reflection: no transmitted ray
		return canvas.Black()
	}

	cosT := gomath.Sqrt(1 - sin2t)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Subtract(comps.Eye.Multiply(nRatio))

	ray := math.NewRay(comps.UnderPoint, direction)
	return w.colorAt(ray, remaining-1).Scale(transparency)
}
