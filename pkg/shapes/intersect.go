package shapes

import (
	gomath "math"
	"sort"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Intersection records that a ray meets a shape at parameter t.
// U and V carry barycentric coordinates for smooth triangles and are
// zero for every other variant.
type Intersection struct {
	T     float64
	Shape Shape
	U, V  float64
}

// SortIntersections orders intersections by ascending t in place.
func SortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Hit returns the visible intersection: the one with the smallest
// positive t. The strict comparison keeps the first-encountered
// intersection when two share the same t.
func Hit(xs []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T <= 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// Computations carries everything the shading pipeline needs about a hit,
// precomputed once so the recursive color functions stay cheap.
type Computations struct {
	T     float64
	Shape Shape
	// Point is the world-space hit point; OverPoint is biased a small
	// epsilon along the normal to keep shadow and reflection rays from
	// re-hitting the surface they start on, UnderPoint the same amount
	// below it for refraction rays.
	Point      math.Tuple
	OverPoint  math.Tuple
	UnderPoint math.Tuple
	Eye        math.Tuple
	Normal     math.Tuple
	Reflect    math.Tuple
	Inside     bool
	// N1 and N2 are the refractive indices either side of the surface
	// along the ray, derived from the full intersection list.
	N1, N2 float64
}

// PrepareComputations derives the shading state for a hit. xs is the full
// sorted intersection list for the ray, needed to track which transparent
// shapes contain the hit for the refractive indices; passing just the hit
// is fine for rays that will not refract.
func PrepareComputations(hit Intersection, ray math.Ray, xs []Intersection) Computations {
	comps := Computations{
		T:     hit.T,
		Shape: hit.Shape,
		Point: ray.Position(hit.T),
		Eye:   ray.Direction.Negate(),
	}

	comps.Normal = hit.Shape.NormalAt(comps.Point, hit)
	if comps.Normal.Dot(comps.Eye) < 0 {
		comps.Inside = true
		comps.Normal = comps.Normal.Negate()
	}

	comps.Reflect = ray.Direction.Reflect(comps.Normal)
	bias := comps.Normal.Multiply(math.Epsilon)
	comps.OverPoint = comps.Point.Add(bias)
	comps.UnderPoint = comps.Point.Subtract(bias)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks the intersection list in t order, tracking the
// containing shapes, to find the indices on either side of the hit.
func refractiveIndices(hit Intersection, xs []Intersection) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []Shape

	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// entering a shape pushes it, leaving pops it
		idx := -1
		for i, s := range containers {
			if s == x.Shape {
				idx = i
				break
			}
		}
		if idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}
	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction
// of light reflected rather than refracted.
func (c Computations) Schlick() float64 {
	cos := c.Eye.Dot(c.Normal)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			// total internal reflection
			return 1
		}
		cos = gomath.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1-r0)*gomath.Pow(1-cos, 5)
}
