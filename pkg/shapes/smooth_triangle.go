package shapes

import (
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// SmoothTriangle is a triangle with per-vertex normals, interpolated
// across the face by the barycentric coordinates of the hit. Meshes use
// it to fake curvature.
type SmoothTriangle struct {
	object
	P1, P2, P3 math.Tuple
	N1, N2, N3 math.Tuple
	E1, E2     math.Tuple
}

// NewSmoothTriangle creates a triangle with vertex normals, rejecting
// collinear points like the flat triangle.
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 math.Tuple) (*SmoothTriangle, error) {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	if e2.Cross(e1).Magnitude() < math.Epsilon {
		return nil, ErrDegenerateTriangle
	}

	return &SmoothTriangle{
		object: newObject(),
		P1:     p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: e1, E2: e2,
	}, nil
}

// Intersect computes intersections of a parent-space ray with the
// triangle, recording the barycentric hit coordinates for the normal.
func (t *SmoothTriangle) Intersect(ray math.Ray) []Intersection {
	if hit, u, v, ok := mollerTrumbore(ray.Transform(t.inverse), t.P1, t.E1, t.E2); ok {
		return []Intersection{{T: hit, Shape: t, U: u, V: v}}
	}
	return nil
}

// NormalAt interpolates the vertex normals with the hit's barycentric
// coordinates.
func (t *SmoothTriangle) NormalAt(_ math.Tuple, hit Intersection) math.Tuple {
	localNormal := t.N2.Multiply(hit.U).
		Add(t.N3.Multiply(hit.V)).
		Add(t.N1.Multiply(1 - hit.U - hit.V))
	return t.NormalToWorld(localNormal)
}

// Bounds returns the box around the three corners.
func (t *SmoothTriangle) Bounds() Bounds {
	return emptyBounds().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}

// Includes reports whether other is this triangle.
func (t *SmoothTriangle) Includes(other Shape) bool { return Shape(t) == other }
