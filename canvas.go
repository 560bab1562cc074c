package gplot

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Canvas is the RGBA pixel grid every drawing stage writes into.
// A new canvas is opaque white. Writes outside the grid are skipped and
// counted instead of panicking, so a long label or a large symbol near the
// edge degrades the picture rather than aborting the render.
type Canvas struct {
	width   int
	height  int
	data    []uint8 // RGBA format, 4 bytes per pixel
	dropped int
}

// NewCanvas creates a white canvas with the given dimensions.
// Negative dimensions are treated as zero.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	c.Clear(White)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the raw pixel data (RGBA format).
func (c *Canvas) Data() []uint8 {
	return c.data
}

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Set writes a single pixel. Coordinates outside the canvas are skipped and
// counted; see DroppedWrites.
func (c *Canvas) Set(x, y int, col RGBA) {
	if !c.InBounds(x, y) {
		c.drop(x, y)
		return
	}
	i := (y*c.width + x) * 4
	c.data[i+0] = uint8(clamp255(col.R * 255))
	c.data[i+1] = uint8(clamp255(col.G * 255))
	c.data[i+2] = uint8(clamp255(col.B * 255))
	c.data[i+3] = uint8(clamp255(col.A * 255))
}

// Blend composites col over the existing pixel with the given coverage in
// [0, 1] (source-over on straight alpha). Used for glyph edges.
func (c *Canvas) Blend(x, y int, col RGBA, coverage float64) {
	if coverage <= 0 {
		return
	}
	if !c.InBounds(x, y) {
		c.drop(x, y)
		return
	}
	if coverage > 1 {
		coverage = 1
	}
	src := col
	src.A *= coverage
	if src.A >= 1 {
		c.Set(x, y, col)
		return
	}
	dst := c.Pixel(x, y)
	outA := src.A + dst.A*(1-src.A)
	if outA == 0 {
		c.Set(x, y, Transparent)
		return
	}
	c.Set(x, y, RGBA{
		R: (src.R*src.A + dst.R*dst.A*(1-src.A)) / outA,
		G: (src.G*src.A + dst.G*dst.A*(1-src.A)) / outA,
		B: (src.B*src.A + dst.B*dst.A*(1-src.A)) / outA,
		A: outA,
	})
}

// Pixel returns the color of a single pixel, or Transparent outside the canvas.
func (c *Canvas) Pixel(x, y int) RGBA {
	if !c.InBounds(x, y) {
		return Transparent
	}
	i := (y*c.width + x) * 4
	return RGBA{
		R: float64(c.data[i+0]) / 255,
		G: float64(c.data[i+1]) / 255,
		B: float64(c.data[i+2]) / 255,
		A: float64(c.data[i+3]) / 255,
	}
}

// Clear fills the entire canvas with a color.
func (c *Canvas) Clear(col RGBA) {
	r := uint8(clamp255(col.R * 255))
	g := uint8(clamp255(col.G * 255))
	b := uint8(clamp255(col.B * 255))
	a := uint8(clamp255(col.A * 255))

	for i := 0; i < len(c.data); i += 4 {
		c.data[i+0] = r
		c.data[i+1] = g
		c.data[i+2] = b
		c.data[i+3] = a
	}
}

// FillTransparentWithWhite turns every fully transparent pixel opaque white.
// It is the last step before encoding so the PNG never carries holes.
func (c *Canvas) FillTransparentWithWhite() {
	for i := 0; i < len(c.data); i += 4 {
		if c.data[i+3] == 0 {
			c.data[i+0] = 255
			c.data[i+1] = 255
			c.data[i+2] = 255
			c.data[i+3] = 255
		}
	}
}

// DroppedWrites returns how many writes fell outside the canvas since the
// last ResetDropped.
func (c *Canvas) DroppedWrites() int {
	return c.dropped
}

// ResetDropped zeroes the dropped write counter and returns its old value.
func (c *Canvas) ResetDropped() int {
	n := c.dropped
	c.dropped = 0
	return n
}

// WarnDropped logs one warning for the writes stage dropped since the last
// reset, then resets the counter.
func (c *Canvas) WarnDropped(stage string) {
	if n := c.ResetDropped(); n > 0 {
		Logger().Warn("pixels fell outside the canvas",
			"stage", stage, "count", n, "width", c.width, "height", c.height)
	}
}

func (c *Canvas) drop(x, y int) {
	c.dropped++
	Logger().Debug("skipping out of bounds pixel", "x", x, "y", y)
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	copy(img.Pix, c.data)
	return img
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.ToImage()); err != nil {
		return fmt.Errorf("gplot: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := c.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}
