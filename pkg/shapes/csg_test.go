package shapes

import (
	"testing"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

func TestCSG_Construction(t *testing.T) {
	s := NewSphere()
	c := NewCube()
	csg := NewCSG(Union, s, c)

	if csg.Left != Shape(s) || csg.Right != Shape(c) {
		t.Errorf("children not adopted")
	}
	if s.Parent() != Shape(csg) || c.Parent() != Shape(csg) {
		t.Errorf("children should back-reference the CSG shape")
	}
}

func TestCSG_IntersectionAllowed(t *testing.T) {
	tests := []struct {
		op             Operation
		lhit, inl, inr bool
		expected       bool
	}{
		{Union, true, true, true, false},
		{Union, true, true, false, true},
		{Union, true, false, true, false},
		{Union, true, false, false, true},
		{Union, false, true, true, false},
		{Union, false, true, false, false},
		{Union, false, false, true, true},
		{Union, false, false, false, true},

		{Intersect, true, true, true, true},
		{Intersect, true, true, false, false},
		{Intersect, true, false, true, true},
		{Intersect, true, false, false, false},
		{Intersect, false, true, true, true},
		{Intersect, false, true, false, true},
		{Intersect, false, false, true, false},
		{Intersect, false, false, false, false},

		{Difference, true, true, true, false},
		{Difference, true, true, false, true},
		{Difference, true, false, true, false},
		{Difference, true, false, false, true},
		{Difference, false, true, true, true},
		{Difference, false, true, false, true},
		{Difference, false, false, true, false},
		{Difference, false, false, false, false},
	}

	for _, tt := range tests {
		got := IntersectionAllowed(tt.op, tt.lhit, tt.inl, tt.inr)
		if got != tt.expected {
			t.Errorf("op=%v lhit=%v inl=%v inr=%v: expected %v, got %v",
				tt.op, tt.lhit, tt.inl, tt.inr, tt.expected, got)
		}
	}
}

func TestCSG_Filter(t *testing.T) {
	s1 := NewSphere()
	s2 := NewCube()

	tests := []struct {
		op     Operation
		x0, x1 int
	}{
		{Union, 0, 3},
		{Intersect, 1, 2},
		{Difference, 0, 1},
	}

	for _, tt := range tests {
		c := NewCSG(tt.op, s1, s2)
		xs := []Intersection{
			{T: 1, Shape: s1},
			{T: 2, Shape: s2},
			{T: 3, Shape: s1},
			{T: 4, Shape: s2},
		}
		got := c.filter(xs)
		if len(got) != 2 {
			t.Fatalf("op=%v: expected 2 intersections, got %d", tt.op, len(got))
		}
		if got[0] != xs[tt.x0] || got[1] != xs[tt.x1] {
			t.Errorf("op=%v: expected xs[%d],xs[%d], got %v", tt.op, tt.x0, tt.x1, got)
		}
	}
}

func TestCSG_IntersectMissAndHit(t *testing.T) {
	c := NewCSG(Union, NewSphere(), NewCube())

	if xs := c.Intersect(math.NewRay(math.NewPoint(0, 2, -5), math.NewVector(0, 0, 1))); len(xs) != 0 {
		t.Errorf("expected miss, got %v", xs)
	}

	s1 := NewSphere()
	s2 := NewSphere()
	if err := s2.SetTransform(math.Translation(0, 0, 0.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c = NewCSG(Union, s1, s2)
	xs := c.Intersect(math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1)))
	if len(xs) != 2 {
		t.Fatalf("expected 2 intersections, got %d", len(xs))
	}
	if !math.ApproxEq(xs[0].T, 4) || xs[0].Shape != Shape(s1) {
		t.Errorf("first crossing: expected t=4 on s1, got %v", xs[0])
	}
	if !math.ApproxEq(xs[1].T, 6.5) || xs[1].Shape != Shape(s2) {
		t.Errorf("second crossing: expected t=6.5 on s2, got %v", xs[1])
	}
}

func TestCSG_DifferenceExcludesEnclosedRegion(t *testing.T) {
	// cube enclosing the sphere's lower half: difference removes every
	// crossing inside the cube region
	s := NewSphere()
	cube := NewCube()
	if err := cube.SetTransform(math.Translation(0, -1, 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	diff := NewCSG(Difference, s, cube)

	// straight down the y axis: enter the sphere at the top (t=4), leave
	// where the cube's top face slices it (t=5), not at the sphere bottom
	r := math.NewRay(math.NewPoint(0, 5, 0), math.NewVector(0, -1, 0))
	xs := diff.Intersect(r)
	if len(xs) != 2 {
		t.Fatalf("expected 2 intersections, got %d", len(xs))
	}
	if !math.ApproxEq(xs[0].T, 4) || xs[0].Shape != Shape(s) {
		t.Errorf("entry: expected t=4 on the sphere, got %v", xs[0])
	}
	if !math.ApproxEq(xs[1].T, 5) || xs[1].Shape != Shape(cube) {
		t.Errorf("exit: expected t=5 on the cube face, got %v", xs[1])
	}

	// a ray through the lower half only sees nothing
	r = math.NewRay(math.NewPoint(-5, -0.5, 0), math.NewVector(1, 0, 0))
	if xs := diff.Intersect(r); len(xs) != 0 {
		t.Errorf("lower half should be carved away, got %v", xs)
	}
}

func TestCSG_GroupChildrenFilterCorrectly(t *testing.T) {
	// Includes must see through groups for the left/right test
	g := NewGroup()
	s := NewSphere()
	g.AddChild(s)
	cube := NewCube()
	if err := cube.SetTransform(math.Scaling(0.5, 0.5, 0.5)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := NewCSG(Difference, g, cube)

	// the carved cube leaves a cavity: sphere entry, cavity walls, sphere exit
	r := math.NewRay(math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1))
	xs := c.Intersect(r)
	if len(xs) != 4 {
		t.Fatalf("expected 4 intersections, got %d", len(xs))
	}
	for i, want := range []float64{4, 4.5, 5.5, 6} {
		if !math.ApproxEq(xs[i].T, want) {
			t.Errorf("xs[%d]: expected t=%f, got %f", i, want, xs[i].T)
		}
	}
}
