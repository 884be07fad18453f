package material

import (
	gomath "math"

	"github.com/mboyd/go-whitted-raytracer/pkg/canvas"
	"github.com/mboyd/go-whitted-raytracer/pkg/math"
)

// Pattern computes a color from a point in pattern space. Every pattern
// owns a transform mapping object space into pattern space, cached
// inverted like shape transforms.
type Pattern interface {
	// ColorAt evaluates the pattern at a pattern-space point.
	ColorAt(point math.Tuple) canvas.Color
	// InverseTransform returns the cached inverse of the pattern transform.
	InverseTransform() math.Matrix
}

// ColorAtObject evaluates a pattern at a world-space point on a surface:
// world space -> object space via the surface, then object space ->
// pattern space via the pattern's own inverse transform.
func ColorAtObject(p Pattern, object Surface, worldPoint math.Tuple) canvas.Color {
	objectPoint := object.WorldToObject(worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.ColorAt(patternPoint)
}

// basePattern carries the transform and its cached inverse, recomputed on
// every SetTransform and read-only once rendering begins.
type basePattern struct {
	transform math.Matrix
	inverse   math.Matrix
}

func newBasePattern() basePattern {
	return basePattern{transform: math.Identity(), inverse: math.Identity()}
}

// Transform returns the pattern transform.
func (b *basePattern) Transform() math.Matrix { return b.transform }

// SetTransform replaces the pattern transform, recomputing the cached
// inverse. Singular transforms are rejected.
func (b *basePattern) SetTransform(m math.Matrix) error {
	inv, err := m.Inverse()
	if err != nil {
		return err
	}
	b.transform = m
	b.inverse = inv
	return nil
}

// InverseTransform returns the cached inverse of the pattern transform.
func (b *basePattern) InverseTransform() math.Matrix { return b.inverse }

// SolidPattern is a single color everywhere. It is the leaf used when
// nesting patterns inside a blend.
type SolidPattern struct {
	basePattern
	Color canvas.Color
}

// NewSolidPattern creates a pattern of one uniform color.
func NewSolidPattern(c canvas.Color) *SolidPattern {
	return &SolidPattern{basePattern: newBasePattern(), Color: c}
}

// ColorAt returns the solid color regardless of position.
func (p *SolidPattern) ColorAt(math.Tuple) canvas.Color { return p.Color }

// StripePattern alternates two colors in unit bands along the x axis.
type StripePattern struct {
	basePattern
	A, B canvas.Color
}

// NewStripePattern creates a stripe pattern alternating a and b.
func NewStripePattern(a, b canvas.Color) *StripePattern {
	return &StripePattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A on even unit bands of x, B on odd ones.
func (p *StripePattern) ColorAt(point math.Tuple) canvas.Color {
	if int(gomath.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B as x goes from 0 to 1.
type GradientPattern struct {
	basePattern
	A, B canvas.Color
}

// NewGradientPattern creates a linear gradient from a to b.
func NewGradientPattern(a, b canvas.Color) *GradientPattern {
	return &GradientPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt interpolates between A and B by the fractional distance in x.
func (p *GradientPattern) ColorAt(point math.Tuple) canvas.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - gomath.Floor(point.X)
	return p.A.Add(distance.Scale(fraction))
}

// RingPattern alternates two colors in concentric rings around the y axis.
type RingPattern struct {
	basePattern
	A, B canvas.Color
}

// NewRingPattern creates a ring pattern alternating a and b.
func NewRingPattern(a, b canvas.Color) *RingPattern {
	return &RingPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A when the radial distance in the xz plane falls on an
// even unit ring, B otherwise.
func (p *RingPattern) ColorAt(point math.Tuple) canvas.Color {
	r := gomath.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(gomath.Floor(r))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in a 3D checkerboard.
type CheckerPattern struct {
	basePattern
	A, B canvas.Color
}

// NewCheckerPattern creates a checker pattern alternating a and b.
func NewCheckerPattern(a, b canvas.Color) *CheckerPattern {
	return &CheckerPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt returns A when the sum of the floored coordinates is even.
func (p *CheckerPattern) ColorAt(point math.Tuple) canvas.Color {
	sum := int(gomath.Floor(point.X)) + int(gomath.Floor(point.Y)) + int(gomath.Floor(point.Z))
	if sum%2 == 0 {
		return p.A
	}
	// Go's % keeps the sign of the dividend; odd covers both -1 and 1
	return p.B
}

// BlendPattern averages two nested patterns. Each nested pattern keeps
// its own transform, evaluated relative to this pattern's space.
type BlendPattern struct {
	basePattern
	A, B Pattern
}

// NewBlendPattern creates a pattern averaging the colors of a and b.
func NewBlendPattern(a, b Pattern) *BlendPattern {
	return &BlendPattern{basePattern: newBasePattern(), A: a, B: b}
}

// ColorAt averages the two nested patterns at the given point.
func (p *BlendPattern) ColorAt(point math.Tuple) canvas.Color {
	ca := p.A.ColorAt(p.A.InverseTransform().MultiplyTuple(point))
	cb := p.B.ColorAt(p.B.InverseTransform().MultiplyTuple(point))
	return ca.Add(cb).Scale(0.5)
}
