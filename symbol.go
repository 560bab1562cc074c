package gplot

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Symbol is the marker drawn at each data point.
type Symbol int

const (
	// Point is a single pixel.
	Point Symbol = iota
	// Cross is a plus sign with arms that grow with radius and thickness.
	Cross
	// Circle is an unfilled ring.
	Circle
	// Triangle is an unfilled equilateral triangle, apex up.
	Triangle
	// Square is an unfilled axis-aligned square.
	Square
)

var symbolNames = [...]string{
	Point:    "point",
	Cross:    "cross",
	Circle:   "circle",
	Triangle: "triangle",
	Square:   "square",
}

// String returns the configuration name of the symbol.
func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// ParseSymbol resolves a symbol name (case-insensitive).
func ParseSymbol(name string) (Symbol, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range symbolNames {
		if s == n {
			return Symbol(i), nil
		}
	}
	return Point, fmt.Errorf("%w: %q", ErrUnknownSymbol, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Symbol) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(symbolNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSymbol, int(s))
	}
	return []byte(symbolNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so config decoders
// accept symbol names directly.
func (s *Symbol) UnmarshalText(b []byte) error {
	v, err := ParseSymbol(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Symbol size limits. A cross arm is (radius+1)*(thickness+1) pixels long,
// so footprint work grows with radius*thickness².
const (
	MaxSymbolRadius    = 100
	MaxSymbolThickness = 25
)

// Footprint returns the pixel offsets, relative to the symbol centre, that
// the symbol covers. Offsets are unique; y grows downward. Radius and
// thickness are clamped to [0, MaxSymbolRadius] and [0, MaxSymbolThickness].
func (s Symbol) Footprint(radius, thickness int) []image.Point {
	radius = min(max(radius, 0), MaxSymbolRadius)
	thickness = min(max(thickness, 0), MaxSymbolThickness)

	fp := newFootprint()
	switch s {
	case Cross:
		crossFootprint(fp, radius, thickness)
	case Circle:
		circleFootprint(fp, radius, thickness)
	case Triangle:
		triangleFootprint(fp, radius, thickness)
	case Square:
		squareFootprint(fp, radius, thickness)
	default:
		fp.add(0, 0)
	}
	return fp.points
}

// Draw stamps the symbol centred on (cx, cy).
func (s Symbol) Draw(c *Canvas, cx, cy, radius, thickness int, col RGBA) {
	for _, p := range s.Footprint(radius, thickness) {
		c.Set(cx+p.X, cy+p.Y, col)
	}
}

type footprint struct {
	seen   map[image.Point]struct{}
	points []image.Point
}

func newFootprint() *footprint {
	return &footprint{seen: make(map[image.Point]struct{})}
}

func (f *footprint) add(x, y int) {
	p := image.Pt(x, y)
	if _, ok := f.seen[p]; ok {
		return
	}
	f.seen[p] = struct{}{}
	f.points = append(f.points, p)
}

func (f *footprint) addf(x, y float64) {
	f.add(int(math.Round(x)), int(math.Round(y)))
}

func crossFootprint(f *footprint, radius, thickness int) {
	arm := (radius + 1) * (thickness + 1)
	for i := 0; i < arm; i++ {
		for n := -thickness; n <= thickness; n++ {
			f.add(i, n)
			f.add(-i, n)
			f.add(n, i)
			f.add(n, -i)
		}
	}
}

func squareFootprint(f *footprint, radius, thickness int) {
	for n := 0; n <= thickness; n++ {
		r := radius + n
		for k := -r; k <= r; k++ {
			f.add(k, -r)
			f.add(k, r)
			f.add(-r, k)
			f.add(r, k)
		}
	}
}

func circleFootprint(f *footprint, radius, thickness int) {
	outer := float64(radius + thickness)
	// One sample per quarter pixel of the outer circumference.
	steps := max(16, int(math.Ceil(2*math.Pi*outer*4)))
	for n := 0; n <= thickness; n++ {
		r := float64(radius + n)
		for i := 0; i < steps; i++ {
			theta := 2 * math.Pi * float64(i) / float64(steps)
			f.addf(r*math.Cos(theta), r*math.Sin(theta))
		}
	}
}

func triangleFootprint(f *footprint, radius, thickness int) {
	side := float64(max(2*radius, 2))
	for n := 0; n <= thickness; n++ {
		// Each extra outline sits one pixel further out on every edge.
		ir := side/(2*math.Sqrt(3)) + float64(n)
		cr := 2 * ir
		half := ir * math.Sqrt(3)
		top := [2]float64{0, -cr}
		left := [2]float64{-half, ir}
		right := [2]float64{half, ir}
		edge(f, top, left)
		edge(f, left, right)
		edge(f, right, top)
	}
}

// edge samples the segment a-b from its line equation at a sub-pixel step.
func edge(f *footprint, a, b [2]float64) {
	length := math.Hypot(b[0]-a[0], b[1]-a[1])
	steps := max(1, int(math.Ceil(length*4)))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		f.addf(a[0]+(b[0]-a[0])*t, a[1]+(b[1]-a[1])*t)
	}
}
