package shapes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Cone is the double-napped cone around the y axis with its apex at the
// origin, radius |y| at height y. Minimum/Maximum truncate it and Closed
// caps the truncated ends, as for the cylinder.
type Cone struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone with the default material.
func NewCone() *Cone {
	return &Cone{
		object:  newObject(),
		Minimum: gomath.Inf(-1),
		Maximum: gomath.Inf(1),
	}
}

// Intersect computes intersections of a parent-space ray with the cone.
func (c *Cone) Intersect(ray math.Ray) []Intersection {
	return c.localIntersect(ray.Transform(c.inverse))
}

func (c *Cone) localIntersect(ray math.Ray) []Intersection {
	var xs []Intersection

	d, o := ray.Direction, ray.Origin
	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if gomath.Abs(a) < math.Epsilon {
		// ray parallel to one nappe hits the other exactly once
		if gomath.Abs(b) >= math.Epsilon {
			xs = append(xs, Intersection{T: -cc / (2 * b), Shape: c})
		}
	} else {
		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}
		sqrtD := gomath.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		for _, t := range []float64{t0, t1} {
			y := o.Y + t*d.Y
			if c.Minimum < y && y < c.Maximum {
				xs = append(xs, Intersection{T: t, Shape: c})
			}
		}
	}

	return c.intersectCaps(ray, xs)
}

// intersectCaps appends intersections with the end caps, whose radius
// equals the |y| of the truncation plane.
func (c *Cone) intersectCaps(ray math.Ray, xs []Intersection) []Intersection {
	if !c.Closed || gomath.Abs(ray.Direction.Y) < math.Epsilon {
		return xs
	}

	for _, bound := range []float64{c.Minimum, c.Maximum} {
		t := (bound - ray.Origin.Y) / ray.Direction.Y
		if checkCap(ray, t, gomath.Abs(bound)) {
			xs = append(xs, Intersection{T: t, Shape: c})
		}
	}
	return xs
}

// NormalAt computes the world-space normal at a world-space point.
func (c *Cone) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	p := c.WorldToObject(worldPoint)

	var localNormal math.Tuple
	dist := p.X*p.X + p.Z*p.Z
	switch {
	case dist < c.Maximum*c.Maximum && p.Y >= c.Maximum-math.Epsilon:
		localNormal = math.NewVector(0, 1, 0)
	case dist < c.Minimum*c.Minimum && p.Y <= c.Minimum+math.Epsilon:
		localNormal = math.NewVector(0, -1, 0)
	default:
		y := gomath.Sqrt(dist)
		if p.Y > 0 {
			y = -y
		}
		localNormal = math.NewVector(p.X, y, p.Z)
	}
	return c.NormalToWorld(localNormal)
}

// Bounds returns the box around the (possibly truncated) cone.
func (c *Cone) Bounds() Bounds {
	min := gomath.Max(c.Minimum, -boundsInf)
	max := gomath.Min(c.Maximum, boundsInf)
	limit := gomath.Max(gomath.Abs(min), gomath.Abs(max))
	return NewBounds(math.NewPoint(-limit, min, -limit), math.NewPoint(limit, max, limit))
}

// Includes reports whether other is this cone.
func (c *Cone) Includes(other Shape) bool { return Shape(c) == other }
