package math

import (
	"errors"
	"testing"
)

func TestMatrix_Multiply(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 8, 7, 6},
		{5, 4, 3, 2},
	}
	b := Matrix{
		{-2, 1, 2, 3},
		{3, 2, 1, -1},
		{4, 3, 6, 5},
		{1, 2, 7, 8},
	}
	expected := Matrix{
		{20, 22, 50, 48},
		{44, 54, 114, 108},
		{40, 58, 110, 102},
		{16, 26, 46, 42},
	}

	if got := a.Multiply(b); !got.Equals(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestMatrix_MultiplyTuple(t *testing.T) {
	a := Matrix{
		{1, 2, 3, 4},
		{2, 4, 4, 2},
		{8, 6, 4, 1},
		{0, 0, 0, 1},
	}
	got := a.MultiplyTuple(Tuple{1, 2, 3, 1})
	if !got.Equals(Tuple{18, 24, 33, 1}) {
		t.Errorf("expected (18,24,33,1), got %v", got)
	}
}

func TestMatrix_IdentityIsNeutral(t *testing.T) {
	a := Matrix{
		{0, 1, 2, 4},
		{1, 2, 4, 8},
		{2, 4, 8, 16},
		{4, 8, 16, 32},
	}
	if got := a.Multiply(Identity()); !got.Equals(a) {
		t.Errorf("A * I should equal A, got %v", got)
	}
	if got := Identity().MultiplyTuple(Tuple{1, 2, 3, 4}); !got.Equals(Tuple{1, 2, 3, 4}) {
		t.Errorf("I * t should equal t, got %v", got)
	}
}

func TestMatrix_Transpose(t *testing.T) {
	a := Matrix{
		{0, 9, 3, 0},
		{9, 8, 0, 8},
		{1, 8, 5, 3},
		{0, 0, 5, 8},
	}
	expected := Matrix{
		{0, 9, 1, 0},
		{9, 8, 8, 0},
		{3, 0, 8, 5},
		{0, 8, 3, 5},
	}
	if got := a.Transpose(); !got.Equals(expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if got := Identity().Transpose(); !got.Equals(Identity()) {
		t.Errorf("transpose of identity should be identity, got %v", got)
	}
}

func TestMatrix_Determinant(t *testing.T) {
	a := Matrix{
		{-2, -8, 3, 5},
		{-3, 1, 7, 3},
		{1, 2, -9, 6},
		{-6, 7, 7, -9},
	}
	if got := a.Determinant(); !ApproxEq(got, -4071) {
		t.Errorf("expected determinant -4071, got %f", got)
	}
}

func TestMatrix_Inverse(t *testing.T) {
	a := Matrix{
		{-5, 2, 6, -8},
		{1, -5, 1, 8},
		{7, 7, -6, -7},
		{1, -3, 7, 4},
	}
	expected := Matrix{
		{0.21805, 0.45113, 0.24060, -0.04511},
		{-0.80827, -1.45677, -0.44361, 0.52068},
		{-0.07895, -0.22368, -0.05263, 0.19737},
		{-0.52256, -0.81391, -0.30075, 0.30639},
	}

	inv, err := a.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !inv.Equals(expected) {
		t.Errorf("expected %v, got %v", expected, inv)
	}
}

func TestMatrix_InverseRoundTrip(t *testing.T) {
	matrices := []Matrix{
		Translation(5, -3, 2),
		Scaling(2, 3, 4),
		RotationX(1.1).Multiply(RotationY(0.3)).Multiply(RotationZ(2.2)),
		Translation(0.01, 100, -7).Multiply(Scaling(0.01, 50, 100)),
		Shearing(1, 0, 0, 1, 0, 0).Multiply(Translation(2, 2, 2)),
	}

	for _, m := range matrices {
		inv, err := m.Inverse()
		if err != nil {
			t.Fatalf("unexpected error inverting %v: %v", m, err)
		}
		if got := m.Multiply(inv); !got.Equals(Identity()) {
			t.Errorf("M * inverse(M) should be identity for %v, got %v", m, got)
		}
	}
}

func TestMatrix_InverseSingular(t *testing.T) {
	singular := Matrix{
		{-4, 2, -2, -3},
		{9, 6, 2, 6},
		{0, -5, 1, -5},
		{0, 0, 0, 0},
	}
	if _, err := singular.Inverse(); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("expected ErrNotInvertible, got %v", err)
	}

	if _, err := Scaling(0, 1, 1).Inverse(); !errors.Is(err, ErrNotInvertible) {
		t.Errorf("zero-scale transform should not be invertible, got %v", err)
	}
}

func TestMatrix_ProductTimesInverseRecoversFactor(t *testing.T) {
	a := Matrix{
		{3, -9, 7, 3},
		{3, -8, 2, -9},
		{-4, 4, 4, 1},
		{-6, 5, -1, 1},
	}
	b := Matrix{
		{8, 2, 2, 2},
		{3, -1, 7, 0},
		{7, 0, 5, 4},
		{6, -2, 0, 5},
	}

	c := a.Multiply(b)
	bInv, err := b.Inverse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Multiply(bInv); !got.Equals(a) {
		t.Errorf("C * inverse(B) should recover A, got %v", got)
	}
}
