package math

import "math"

// Translation returns a transform that moves points by (x, y, z).
// Vectors are unaffected (W=0 zeroes the translation column).
func Translation(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a transform that scales by (x, y, z).
func Scaling(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a transform rotating r radians about the x axis.
func RotationX(r float64) Matrix {
	m := Identity()
	m[1][1] = math.Cos(r)
	m[1][2] = -math.Sin(r)
	m[2][1] = math.Sin(r)
	m[2][2] = math.Cos(r)
	return m
}

// RotationY returns a transform rotating r radians about the y axis.
func RotationY(r float64) Matrix {
	m := Identity()
	m[0][0] = math.Cos(r)
	m[0][2] = math.Sin(r)
	m[2][0] = -math.Sin(r)
	m[2][2] = math.Cos(r)
	return m
}

// RotationZ returns a transform rotating r radians about the z axis.
func RotationZ(r float64) Matrix {
	m := Identity()
	m[0][0] = math.Cos(r)
	m[0][1] = -math.Sin(r)
	m[1][0] = math.Sin(r)
	m[1][1] = math.Cos(r)
	return m
}

// Shearing returns a transform where each coordinate moves in proportion
// to the other two (xy = x moved in proportion to y, and so on).
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}
