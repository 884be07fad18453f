package shapes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Plane is the infinite xz plane at y=0 in object space.
type Plane struct {
	object
}

// NewPlane creates an xz plane with the default material.
func NewPlane() *Plane {
	return &Plane{object: newObject()}
}

// Intersect computes intersections of a parent-space ray with the plane.
func (p *Plane) Intersect(ray math.Ray) []Intersection {
	return p.localIntersect(ray.Transform(p.inverse))
}

func (p *Plane) localIntersect(ray math.Ray) []Intersection {
	// a ray parallel to (or inside) the plane never hits it
	if gomath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Shape: p}}
}

// NormalAt returns the plane's constant world-space normal.
func (p *Plane) NormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return p.NormalToWorld(math.NewVector(0, 1, 0))
}

// Bounds returns a flat, horizontally unbounded box.
func (p *Plane) Bounds() Bounds {
	return NewBounds(
		math.NewPoint(-boundsInf, 0, -boundsInf),
		math.NewPoint(boundsInf, 0, boundsInf),
	)
}

// Includes reports whether other is this plane.
func (p *Plane) Includes(other Shape) bool { return Shape(p) == other }
