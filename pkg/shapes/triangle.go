package shapes

import (
	"errors"
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// ErrDegenerateTriangle is returned when constructing a triangle from
// three collinear points.
var ErrDegenerateTriangle = errors.New("triangle points are collinear")

// Triangle is a flat triangle with a constant, precomputed normal.
type Triangle struct {
	object
	P1, P2, P3 math.Tuple
	E1, E2     math.Tuple
	Normal     math.Tuple
}

// NewTriangle creates a triangle from three points. Collinear points
// are rejected with ErrDegenerateTriangle.
func NewTriangle(p1, p2, p3 math.Tuple) (*Triangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)

	cross := e2.Cross(e1)
	if cross.Magnitude() < math.Epsilon {
		return nil, ErrDegenerateTriangle
	}

	return &Triangle{
		object: newObject(),
		P1:     p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: cross.Normalize(),
	}, nil
}

// Intersect computes intersections of a parent-space ray with the triangle.
func (t *Triangle) Intersect(ray math.Ray) []Intersection {
	if hit, u, v, ok := mollerTrumbore(ray.Transform(t.inverse), t.P1, t.E1, t.E2); ok {
		return []Intersection{{T: hit, Shape: t, U: u, V: v}}
	}
	return nil
}

// mollerTrumbore runs the barycentric ray-triangle test, returning t and
// the barycentric coordinates of the hit.
func mollerTrumbore(ray math.Ray, p1, e1, e2 math.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if gomath.Abs(det) < math.Epsilon {
		// ray parallel to the triangle plane
		return 0, 0, 0, false
	}

	f := 1 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	return f * e2.Dot(originCrossE1), u, v, true
}

// NormalAt returns the triangle's constant normal in world space.
func (t *Triangle) NormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return t.NormalToWorld(t.Normal)
}

// Bounds returns the box around the three corners.
func (t *Triangle) Bounds() Bounds {
	return emptyBounds().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}

// Includes reports whether other is this triangle.
func (t *Triangle) Includes(other Shape) bool { return Shape(t) == other }
