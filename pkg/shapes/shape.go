package shapes

import (
	"github.com/mboyd/go-whitted-raytracer/pkg/material"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Shape is a geometric object that rays can intersect. Concrete variants
// share an embedded object struct holding the transform, its cached
// inverses, the material, and the parent back-reference; only the
// object-space intersection and normal logic differs per variant.
//
// Shapes are mutable during scene setup and must be treated as read-only
// once rendering begins: the cached inverse transforms are recomputed on
// write and read concurrently by render workers.
type Shape interface {
	// Intersect computes intersections of a parent-space ray with the
	// shape, in no guaranteed order.
	Intersect(ray math.Ray) []Intersection
	// NormalAt computes the world-space surface normal at a world-space
	// point. The hit supplies barycentric coordinates for smooth triangles.
	NormalAt(worldPoint math.Tuple, hit Intersection) math.Tuple
	// Transform returns the shape's transform.
	Transform() math.Matrix
	// SetTransform replaces the transform, recomputing the cached inverse
	// and inverse-transpose. Singular transforms are rejected with
	// math.ErrNotInvertible.
	SetTransform(m math.Matrix) error
	// Material returns the shape's material.
	Material() material.Material
	// SetMaterial replaces the shape's material.
	SetMaterial(m material.Material)
	// Parent returns the enclosing group or CSG shape, or nil.
	Parent() Shape
	// WorldToObject converts a world-space point into the shape's object
	// space, walking up through any enclosing groups.
	WorldToObject(point math.Tuple) math.Tuple
	// NormalToWorld converts an object-space normal to world space,
	// renormalizing and walking up through any enclosing groups.
	NormalToWorld(normal math.Tuple) math.Tuple
	// Bounds returns the shape's object-space bounding box.
	Bounds() Bounds
	// Includes reports whether the shape is, or contains, other.
	// Primitives compare identity; groups and CSG shapes recurse.
	Includes(other Shape) bool

	setParent(parent Shape)
}

// object is the state common to every shape variant. The inverse and
// inverse-transpose are recomputed exactly when the transform is written,
// never during rendering, so concurrent readers see a stable cache.
type object struct {
	transform    math.Matrix
	inverse      math.Matrix
	invTranspose math.Matrix
	material     material.Material
	parent       Shape
}

func newObject() object {
	return object{
		transform:    math.Identity(),
		inverse:      math.Identity(),
		invTranspose: math.Identity(),
		material:     material.Default(),
	}
}

func (o *object) Transform() math.Matrix { return o.transform }

func (o *object) SetTransform(m math.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	o.transform = m
	o.inverse = inv
	o.invTranspose = inv.Transpose()
	return nil
}

func (o *object) Material() material.Material     { return o.material }
func (o *object) SetMaterial(m material.Material) { o.material = m }

func (o *object) Parent() Shape          { return o.parent }
func (o *object) setParent(parent Shape) { o.parent = parent }

// WorldToObject applies the parent chain's inverses outermost first, then
// this shape's own inverse.
func (o *object) WorldToObject(point math.Tuple) math.Tuple {
	if o.parent != nil {
		point = o.parent.WorldToObject(point)
	}
	return o.inverse.MultiplyTuple(point)
}

// NormalToWorld applies the inverse-transpose, re-homogenizes to w=0,
// normalizes, and hands the result up the parent chain.
func (o *object) NormalToWorld(normal math.Tuple) math.Tuple {
	n := o.invTranspose.MultiplyTuple(normal)
	n.W = 0
	n = n.Normalize()
	if o.parent != nil {
		n = o.parent.NormalToWorld(n)
	}
	return n
}
