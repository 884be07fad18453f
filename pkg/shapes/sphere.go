package shapes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Sphere is the unit sphere centered at the origin; size and placement
// come from the shape transform.
type Sphere struct {
	object
}

// NewSphere creates a unit sphere with the default material.
func NewSphere() *Sphere {
	return &Sphere{object: newObject()}
}

// NewGlassSphere creates a fully transparent sphere with the refractive
// index of glass.
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := s.Material()
	m.Transparency = 1
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

// Intersect computes intersections of a parent-space ray with the sphere.
func (s *Sphere) Intersect(ray math.Ray) []Intersection {
	return s.localIntersect(ray.Transform(s.inverse))
}

func (s *Sphere) localIntersect(ray math.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(math.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// a tangent ray yields two equal t values, both kept for CSG
	sqrtD := gomath.Sqrt(discriminant)
	return []Intersection{
		{T: (-b - sqrtD) / (2 * a), Shape: s},
		{T: (-b + sqrtD) / (2 * a), Shape: s},
	}
}

// NormalAt computes the world-space normal at a world-space point.
func (s *Sphere) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	localNormal := localPoint.Subtract(math.NewPoint(0, 0, 0))
	return s.NormalToWorld(localNormal)
}

// Bounds returns the unit box around the sphere.
func (s *Sphere) Bounds() Bounds {
	return NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
}

// Includes reports whether other is this sphere.
func (s *Sphere) Includes(other Shape) bool { return Shape(s) == other }
