package math

import (
	"errors"
	"math"
)

// ErrNotInvertible is returned when inverting a matrix whose determinant
// is within Epsilon of zero.
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix is a 4x4 affine transform in row-major order.
type Matrix [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other. Composed transforms apply
// right to left: Translation(...).Multiply(Scaling(...)) scales first.
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple applies the transform to a tuple.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// submatrix returns the 3x3 matrix with the given row and column removed,
// flattened into a [3][3] array.
func (m Matrix) submatrix(dropRow, dropCol int) [3][3]float64 {
	var sub [3][3]float64
	sr := 0
	for row := 0; row < 4; row++ {
		if row == dropRow {
			continue
		}
		sc := 0
		for col := 0; col < 4; col++ {
			if col == dropCol {
				continue
			}
			sub[sr][sc] = m[row][col]
			sc++
		}
		sr++
	}
	return sub
}

func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// cofactor returns the signed minor for the given element.
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant via cofactor expansion along row 0.
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse transform, or ErrNotInvertible when the
// determinant is ~0.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix{}, ErrNotInvertible
	}

	var inv Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed assignment folds the adjugate transpose in
			inv[col][row] = m.cofactor(row, col) / det
		}
	}
	return inv, nil
}

// Equals reports whether two matrices are equal within Epsilon.
func (m Matrix) Equals(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEq(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
