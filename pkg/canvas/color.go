package canvas

import "math"

// Color is an RGB triple. Components are unbounded during shading;
// clamping to the display range happens only at export time.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from its components.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the zero color, also the renderer's background.
func Black() Color { return Color{} }

// White is full intensity on all channels.
func White() Color { return Color{1, 1, 1} }

// Add returns the channel-wise sum.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar.
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the Hadamard product, used to blend a surface color
// with a light's intensity.
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colors are equal within tolerance.
func (c Color) Equals(other Color) bool {
	const epsilon = 1e-5
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon
}
