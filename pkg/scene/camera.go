package scene

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Camera maps pixel coordinates to world-space rays. The view transform's
// inverse is cached when the transform is set, so per-pixel ray
// construction never inverts a matrix.
type Camera struct {
	hsize      int
	vsize      int
	fov        float64
	transform  math.Matrix
	inverse    math.Matrix
	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with an identity view transform.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	halfView := gomath.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		hsize:      hsize,
		vsize:      vsize,
		fov:        fov,
		transform:  math.Identity(),
		inverse:    math.Identity(),
		pixelSize:  halfWidth * 2 / float64(hsize),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// HSize returns the horizontal pixel count.
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the vertical pixel count.
func (c *Camera) VSize() int { return c.vsize }

// PixelSize returns the world-space size of one pixel on the canvas plane.
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the camera's view transform.
func (c *Camera) Transform() math.Matrix { return c.transform }

// SetTransform replaces the view transform, recomputing the cached
// inverse. Singular transforms are rejected.
func (c *Camera) SetTransform(m math.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inv
	return nil
}

// RayForPixel computes the world-space ray through the center of the
// given pixel.
func (c *Camera) RayForPixel(px, py int) math.Ray {
	// offset from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// the canvas sits at z=-1, +x toward the camera's left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(math.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(math.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}

// ViewTransform builds the transform that moves the eye to from, looking
// at to, with up suggesting the camera's vertical.
func ViewTransform(from, to, up math.Tuple) math.Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := math.Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return orientation.Multiply(math.Translation(-from.X, -from.Y, -from.Z))
}
