package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
)

// Canvas is a fixed-size grid of colors, written once per pixel during
// rendering and read back by the image encoders afterwards.
type Canvas struct {
	width  int
	height int
	pixels []Color
}

// New creates a canvas of the given dimensions, initialized to black.
func New(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// WritePixel sets the color at (x, y). Out-of-bounds writes are dropped.
func (c *Canvas) WritePixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y).
func (c *Canvas) PixelAt(x, y int) Color {
	return c.pixels[y*c.width+x]
}

// channelTo255 clamps a channel to [0, 1] and scales it to a display byte.
func channelTo255(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Image converts the canvas to an NRGBA image for the standard encoders.
func (c *Canvas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{
				R: channelTo255(p.R),
				G: channelTo255(p.G),
				B: channelTo255(p.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the canvas as a plain-text PPM (P3) image.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.width, c.height); err != nil {
		return err
	}
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			sep := " "
			if x == c.width-1 {
				sep = "\n"
			}
			_, err := fmt.Fprintf(w, "%d %d %d%s",
				channelTo255(p.R), channelTo255(p.G), channelTo255(p.B), sep)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
