package shapes

import (
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Operation selects how a CSG shape combines its two children.
type Operation int

const (
	// Union keeps surface on the outside of both children.
	Union Operation = iota
	// Intersect keeps surface where the children overlap.
	Intersect
	// Difference keeps the left child's surface outside the right child,
	// plus the right child's surface inside the left.
	Difference
)

// CSG combines two shapes with a boolean set operation, evaluated as an
// inside/outside state machine over the merged intersection list.
type CSG struct {
	object
	Op          Operation
	Left, Right Shape
	bounds      Bounds
}

// NewCSG creates a boolean combination of two shapes, adopting both.
func NewCSG(op Operation, left, right Shape) *CSG {
	c := &CSG{object: newObject(), Op: op, Left: left, Right: right}
	left.setParent(c)
	right.setParent(c)
	c.bounds = left.Bounds().Transform(left.Transform()).
		Merge(right.Bounds().Transform(right.Transform()))
	return c
}

// IntersectionAllowed decides whether a surface crossing is part of the
// combined shape. lhit marks a crossing of the left child; inl and inr
// say whether the crossing happens inside the left/right child.
func IntersectionAllowed(op Operation, lhit, inl, inr bool) bool {
	switch op {
	case Union:
		return (lhit && !inr) || (!lhit && !inl)
	case Intersect:
		return (lhit && inr) || (!lhit && inl)
	case Difference:
		return (lhit && !inr) || (!lhit && inl)
	}
	return false
}

// filter runs the state machine over t-ordered intersections, keeping
// only the crossings on the combined surface.
func (c *CSG) filter(xs []Intersection) []Intersection {
	inl := false
	inr := false

	var result []Intersection
	for _, x := range xs {
		lhit := c.Left.Includes(x.Shape)
		if IntersectionAllowed(c.Op, lhit, inl, inr) {
			result = append(result, x)
		}
		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
	}
	return result
}

// Intersect merges both children's intersections in t order and filters
// them through the boolean operation.
func (c *CSG) Intersect(ray math.Ray) []Intersection {
	local := ray.Transform(c.inverse)
	if !c.bounds.Intersects(local) {
		return nil
	}

	xs := append(c.Left.Intersect(local), c.Right.Intersect(local)...)
	SortIntersections(xs)
	return c.filter(xs)
}

// NormalAt on a CSG shape is never meaningful: intersections always tag
// the primitive child that produced them. Returns the zero vector.
func (c *CSG) NormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return math.NewVector(0, 0, 0)
}

// Bounds returns the cached box enclosing both children, in CSG space.
func (c *CSG) Bounds() Bounds { return c.bounds }

// Includes reports whether other is this shape or any descendant.
func (c *CSG) Includes(other Shape) bool {
	return Shape(c) == other || c.Left.Includes(other) || c.Right.Includes(other)
}
