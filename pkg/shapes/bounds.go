package shapes

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// boundsInf stands in for an unbounded extent. A huge finite value keeps
// transformed box corners finite where +Inf would produce NaNs.
const boundsInf = 1e100

// Bounds is an axis-aligned box in a shape's object space, used to skip
// whole groups of children when a ray cannot reach them.
type Bounds struct {
	Min, Max math.Tuple
}

// NewBounds creates a box from its two extreme corners.
func NewBounds(min, max math.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// emptyBounds is the identity for Merge: any added point becomes the box.
func emptyBounds() Bounds {
	return Bounds{
		Min: math.NewPoint(gomath.Inf(1), gomath.Inf(1), gomath.Inf(1)),
		Max: math.NewPoint(gomath.Inf(-1), gomath.Inf(-1), gomath.Inf(-1)),
	}
}

// AddPoint grows the box to include a point.
func (b Bounds) AddPoint(p math.Tuple) Bounds {
	return Bounds{
		Min: math.NewPoint(gomath.Min(b.Min.X, p.X), gomath.Min(b.Min.Y, p.Y), gomath.Min(b.Min.Z, p.Z)),
		Max: math.NewPoint(gomath.Max(b.Max.X, p.X), gomath.Max(b.Max.Y, p.Y), gomath.Max(b.Max.Z, p.Z)),
	}
}

// Merge returns the union of two boxes.
func (b Bounds) Merge(other Bounds) Bounds {
	return b.AddPoint(other.Min).AddPoint(other.Max)
}

// Transform returns the box enclosing this box under the given transform,
// computed from all eight transformed corners.
func (b Bounds) Transform(m math.Matrix) Bounds {
	out := emptyBounds()
	for _, x := range []float64{b.Min.X, b.Max.X} {
		for _, y := range []float64{b.Min.Y, b.Max.Y} {
			for _, z := range []float64{b.Min.Z, b.Max.Z} {
				out = out.AddPoint(m.MultiplyTuple(math.NewPoint(x, y, z)))
			}
		}
	}
	return out
}

// Intersects reports whether a ray passes through the box, using the same
// slab test as the cube but without collecting t values.
func (b Bounds) Intersects(ray math.Ray) bool {
	xtmin, xtmax := checkAxis(ray.Origin.X, ray.Direction.X, b.Min.X, b.Max.X)
	ytmin, ytmax := checkAxis(ray.Origin.Y, ray.Direction.Y, b.Min.Y, b.Max.Y)
	ztmin, ztmax := checkAxis(ray.Origin.Z, ray.Direction.Z, b.Min.Z, b.Max.Z)

	tmin := gomath.Max(xtmin, gomath.Max(ytmin, ztmin))
	tmax := gomath.Min(xtmax, gomath.Min(ytmax, ztmax))
	return tmin <= tmax
}

// checkAxis finds where the ray crosses the two parallel planes of one
// slab. Division by a zero direction component yields infinities, which
// the min/max comparisons handle.
func checkAxis(origin, direction, min, max float64) (tmin, tmax float64) {
	tmin = (min - origin) / direction
	tmax = (max - origin) / direction
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return tmin, tmax
}
