package shapes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Cylinder is the unit-radius cylinder around the y axis, by default
// infinite and open. Minimum and Maximum truncate it (exclusive), and
// Closed caps the truncated ends.
type Cylinder struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the default material.
func NewCylinder() *Cylinder {
	return &Cylinder{
		object:  newObject(),
		Minimum: gomath.Inf(-1),
		Maximum: gomath.Inf(1),
	}
}

// Intersect computes intersections of a parent-space ray with the cylinder.
func (c *Cylinder) Intersect(ray math.Ray) []Intersection {
	return c.localIntersect(ray.Transform(c.inverse))
}

func (c *Cylinder) localIntersect(ray math.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if a > math.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}

		sqrtD := gomath.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)

		for _, t := range []float64{t0, t1} {
			y := ray.Origin.Y + t*ray.Direction.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, Intersection{T: t, Shape: c})
			}
		}
	}

	return c.intersectCaps(ray, xs)
}

// intersectCaps appends intersections with the end caps, if any.
func (c *Cylinder) intersectCaps(ray math.Ray, xs []Intersection) []Intersection {
	if !c.Closed || gomath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	for _, bound := range []float64{c.Minimum, c.Maximum} {
		t := (bound - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, 1) {
			xs = append(xs, Intersection{T: t, Shape: c})
		}
	}
	return xs
}

// checkCap reports whether the ray at t lies within the given cap radius.
func checkCap(ray math.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius+math.Epsilon
}

// NormalAt computes the world-space normal at a world-space point.
func (c *Cylinder) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	p := c.WorldToObject(worldPoint)

	var localNormal math.Tuple
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < 1 && p.Y >= c.Maximum-math.Epsilon:
		localNormal = math.NewVector(0, 1, 0)
	case dist < 1 && p.Y <= c.Minimum+math.Epsilon:
		localNormal = math.NewVector(0, -1, 0)
	default:
		localNormal = math.NewVector(p.X, 0, p.Z)
	}
	return c.NormalToWorld(localNormal)
}

// Bounds returns the box around the (possibly truncated) cylinder.
func (c *Cylinder) Bounds() Bounds {
	min := gomath.Max(c.Minimum, -boundsInf)
	max := gomath.Min(c.Maximum, boundsInf)
	return NewBounds(math.NewPoint(-1, min, -1), math.NewPoint(1, max, 1))
}

// Includes reports whether other is this cylinder.
func (c *Cylinder) Includes(other Shape) bool { return Shape(c) == other }
