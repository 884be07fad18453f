package shapes

import (
	"testing"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

func TestPlane_Intersect(t *testing.T) {
	p := NewPlane()

	tests := []struct {
		name     string
		ray      math.Ray
		expected []float64
	}{
		{
			name:     "parallel ray misses",
			ray:      math.NewRay(math.NewPoint(0, 10, 0), math.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "coplanar ray misses",
			ray:      math.NewRay(math.NewPoint(0, 0, 0), math.NewVector(0, 0, 1)),
			expected: nil,
		},
		{
			name:     "from above",
			ray:      math.NewRay(math.NewPoint(0, 1, 0), math.NewVector(0, -1, 0)),
			expected: []float64{1},
		},
		{
			name:     "from below",
			ray:      math.NewRay(math.NewPoint(0, -1, 0), math.NewVector(0, 1, 0)),
			expected: []float64{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := p.Intersect(tt.ray)
			if len(xs) != len(tt.expected) {
				t.Fatalf("expected %d intersections, got %d", len(tt.expected), len(xs))
			}
			for i, want := range tt.expected {
				if !math.ApproxEq(xs[i].T, want) {
					t.Errorf("xs[%d]: expected t=%f, got %f", i, want, xs[i].T)
				}
			}
		})
	}
}

func TestPlane_NormalIsConstant(t *testing.T) {
	p := NewPlane()
	want := math.NewVector(0, 1, 0)

	for _, point := range []math.Tuple{
		math.NewPoint(0, 0, 0),
		math.NewPoint(10, 0, -10),
		math.NewPoint(-5, 0, 150),
	} {
		if got := p.NormalAt(point, Intersection{}); !got.Equals(want) {
			t.Errorf("normal at %v: expected %v, got %v", point, want, got)
		}
	}
}
