package shapes

import (
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Group is a composite shape: children are intersected in the group's
// object space and their results aggregated. The group owns its children;
// each child keeps a non-owning back-reference for world/object space
// conversion.
type Group struct {
	object
	children []Shape
	bounds   Bounds
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{object: newObject(), bounds: emptyBounds()}
}

// AddChild adopts a shape into the group and grows the cached bounding
// box. Set a child's transform before adding it: the box is not
// recomputed when a child changes afterwards.
func (g *Group) AddChild(s Shape) {
	s.setParent(g)
	g.children = append(g.children, s)
	g.bounds = g.bounds.Merge(s.Bounds().Transform(s.Transform()))
}

// Children returns the group's child shapes.
func (g *Group) Children() []Shape { return g.children }

// Intersect transforms the ray into group space and aggregates child
// intersections, sorted by t. The cached bounding box is tested first so
// rays that cannot reach any child skip the whole subtree.
func (g *Group) Intersect(ray math.Ray) []Intersection {
	local := ray.Transform(g.inverse)
	if len(g.children) == 0 || !g.bounds.Intersects(local) {
		return nil
	}

	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, child.Intersect(local)...)
	}
	SortIntersections(xs)
	return xs
}

// NormalAt on a group is never meaningful: intersections always tag the
// primitive child that produced them. Returns the zero vector.
func (g *Group) NormalAt(_ math.Tuple, _ Intersection) math.Tuple {
	return math.NewVector(0, 0, 0)
}

// Bounds returns the cached box enclosing all children, in group space.
func (g *Group) Bounds() Bounds { return g.bounds }

// Includes reports whether other is this group or any descendant.
func (g *Group) Includes(other Shape) bool {
	if Shape(g) == other {
		return true
	}
	for _, child := range g.children {
		if child.Includes(other) {
			return true
		}
	}
	return false
}
