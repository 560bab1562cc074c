package gplot

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"
)

func TestNewCanvasIsWhite(t *testing.T) {
	c := NewCanvas(3, 2)
	if c.Width() != 3 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", c.Width(), c.Height())
	}
	for i, v := range c.Data() {
		if v != 255 {
			t.Fatalf("Data()[%d] = %d, want 255", i, v)
		}
	}
}

func TestCanvasSetOutOfBounds(t *testing.T) {
	c := NewCanvas(10, 10)
	original := append([]uint8(nil), c.Data()...)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {1 << 20, 1 << 20},
	}
	for _, p := range oob {
		c.Set(p.x, p.y, Red)
		c.Blend(p.x, p.y, Red, 1)
	}

	if !bytes.Equal(c.Data(), original) {
		t.Fatal("out-of-bounds write modified data")
	}
	if got, want := c.DroppedWrites(), 2*len(oob); got != want {
		t.Errorf("DroppedWrites() = %d, want %d", got, want)
	}
}

func TestCanvasSetAndPixel(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Set(1, 2, Orange)
	if got := c.Pixel(1, 2); got.Color() != Orange.Color() {
		t.Errorf("Pixel(1, 2) = %+v, want %+v", got, Orange)
	}
	if got := c.Pixel(7, 7); got != Transparent {
		t.Errorf("Pixel outside = %+v, want Transparent", got)
	}
}

func TestCanvasBlend(t *testing.T) {
	tests := []struct {
		name     string
		coverage float64
		want     uint8
	}{
		{"none", 0, 255},
		{"half", 0.5, 127},
		{"full", 1, 0},
		{"clamped", 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(1, 1)
			c.Blend(0, 0, Black, tt.coverage)
			got := c.Data()[0]
			if d := int(got) - int(tt.want); d < -1 || d > 1 {
				t.Errorf("red channel = %d, want %d", got, tt.want)
			}
			if c.Data()[3] != 255 {
				t.Errorf("alpha = %d, want 255", c.Data()[3])
			}
		})
	}
}

func TestFillTransparentWithWhite(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, Transparent)
	c.Set(1, 0, RGBA{R: 1, A: 0.5})
	c.FillTransparentWithWhite()

	if got := c.Pixel(0, 0); got != White {
		t.Errorf("transparent pixel = %+v, want White", got)
	}
	if got := c.Data()[7]; got != 127 {
		t.Errorf("translucent alpha = %d, want untouched 127", got)
	}
}

func TestCanvasPNG(t *testing.T) {
	c := NewCanvas(5, 4)
	c.Set(2, 2, Blue)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != c.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), c.Bounds())
	}
	if r, g, b, _ := img.At(2, 2).RGBA(); r != 0 || g != 0 || b != 0xffff {
		t.Errorf("decoded pixel = (%d, %d, %d), want blue", r, g, b)
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
}
