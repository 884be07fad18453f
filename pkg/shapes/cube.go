package shapes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Cube is the axis-aligned unit cube from (-1,-1,-1) to (1,1,1).
type Cube struct {
	object
}

// NewCube creates a unit cube with the default material.
func NewCube() *Cube {
	return &Cube{object: newObject()}
}

// Intersect computes intersections of a parent-space ray with the cube.
func (c *Cube) Intersect(ray math.Ray) []Intersection {
	return c.localIntersect(ray.Transform(c.inverse))
}

func (c *Cube) localIntersect(ray math.Ray) []Intersection {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, -1, 1)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, -1, 1)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, -1, 1)

	tmin := gomath.Max(xtmin, gomath.Max(ytmin, ztmin))
	tmax := gomath.Min(xtmax, gomath.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []Intersection{
		{T: tmin, Shape: c},
		{T: tmax, Shape: c},
	}
}

// NormalAt computes the world-space normal at a world-space point: the
// axis with the largest absolute component picks the face.
func (c *Cube) NormalAt(worldPoint math.Tuple, _ Intersection) math.Tuple {
	p := c.WorldToObject(worldPoint)

	maxc := gomath.Max(gomath.Abs(p.X), gomath.Max(gomath.Abs(p.Y), gomath.Abs(p.Z)))
	var localNormal math.Tuple
	switch maxc {
	case gomath.Abs(p.X):
		localNormal = math.NewVector(p.X, 0, 0)
	case gomath.Abs(p.Y):
		localNormal = math.NewVector(0, p.Y, 0)
	default:
		localNormal = math.NewVector(0, 0, p.Z)
	}
	return c.NormalToWorld(localNormal)
}

// Bounds returns the unit box.
func (c *Cube) Bounds() Bounds {
	return NewBounds(math.NewPoint(-1, -1, -1), math.NewPoint(1, 1, 1))
}

// Includes reports whether other is this cube.
func (c *Cube) Includes(other Shape) bool { return Shape(c) == other }
