package math

import (
	"math"
	"testing"
)

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)

	if got := transform.MultiplyTuple(NewPoint(-3, 4, 5)); !got.Equals(NewPoint(2, 1, 7)) {
		t.Errorf("translating point: expected (2,1,7), got %v", got)
	}

	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := inv.MultiplyTuple(NewPoint(-3, 4, 5)); !got.Equals(NewPoint(-8, 7, 3)) {
		t.Errorf("inverse translation: expected (-8,7,3), got %v", got)
	}

	// vectors pass through translation unchanged
	v := NewVector(-3, 4, 5)
	if got := transform.MultiplyTuple(v); !got.Equals(v) {
		t.Errorf("translating vector: expected %v, got %v", v, got)
	}
}

func TestScaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	if got := transform.MultiplyTuple(NewPoint(-4, 6, 8)); !got.Equals(NewPoint(-8, 18, 32)) {
		t.Errorf("scaling point: expected (-8,18,32), got %v", got)
	}
	if got := transform.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equals(NewVector(-8, 18, 32)) {
		t.Errorf("scaling vector: expected (-8,18,32), got %v", got)
	}

	// reflection is scaling by a negative value
	if got := Scaling(-1, 1, 1).MultiplyTuple(NewPoint(2, 3, 4)); !got.Equals(NewPoint(-2, 3, 4)) {
		t.Errorf("reflection: expected (-2,3,4), got %v", got)
	}
}

func TestRotations(t *testing.T) {
	halfQuarter := RotationX(math.Pi / 4)
	fullQuarter := RotationX(math.Pi / 2)
	p := NewPoint(0, 1, 0)

	if got := halfQuarter.MultiplyTuple(p); !got.Equals(NewPoint(0, math.Sqrt2/2, math.Sqrt2/2)) {
		t.Errorf("x half quarter: got %v", got)
	}
	if got := fullQuarter.MultiplyTuple(p); !got.Equals(NewPoint(0, 0, 1)) {
		t.Errorf("x full quarter: got %v", got)
	}

	p = NewPoint(0, 0, 1)
	if got := RotationY(math.Pi / 4).MultiplyTuple(p); !got.Equals(NewPoint(math.Sqrt2/2, 0, math.Sqrt2/2)) {
		t.Errorf("y half quarter: got %v", got)
	}

	p = NewPoint(0, 1, 0)
	if got := RotationZ(math.Pi / 4).MultiplyTuple(p); !got.Equals(NewPoint(-math.Sqrt2/2, math.Sqrt2/2, 0)) {
		t.Errorf("z half quarter: got %v", got)
	}
}

func TestShearing(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), NewPoint(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), NewPoint(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), NewPoint(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), NewPoint(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), NewPoint(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), NewPoint(2, 3, 7)},
	}

	p := NewPoint(2, 3, 4)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(p); !got.Equals(tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_CompositionOrder(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// chained individual applications
	p2 := a.MultiplyTuple(p)
	p3 := b.MultiplyTuple(p2)
	p4 := c.MultiplyTuple(p3)
	if !p4.Equals(NewPoint(15, 0, 7)) {
		t.Fatalf("chained transforms: expected (15,0,7), got %v", p4)
	}

	// the composed matrix applies right to left
	composed := c.Multiply(b).Multiply(a)
	if got := composed.MultiplyTuple(p); !got.Equals(NewPoint(15, 0, 7)) {
		t.Errorf("composed transform: expected (15,0,7), got %v", got)
	}
}

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}
	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equals(tt.expected) {
			t.Errorf("position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equals(NewPoint(4, 6, 8)) || !translated.Direction.Equals(NewVector(0, 1, 0)) {
		t.Errorf("translated ray: got %v", translated)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equals(NewPoint(2, 6, 12)) || !scaled.Direction.Equals(NewVector(0, 3, 0)) {
		t.Errorf("scaled ray: got %v", scaled)
	}
}
