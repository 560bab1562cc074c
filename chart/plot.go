package chart

import (
	"image"
	"math"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/layout"
)

// maxOffset bounds mapped offsets so absurd values cannot overflow int.
const maxOffset = 1 << 30

// Mapper converts data coordinates to canvas pixels. The origin pixel is
// data zero; y grows upward in data space and downward on the canvas.
type Mapper struct {
	OriginX, OriginY int
	ScaleX, ScaleY   float64
}

// NewMapper returns the mapper for a pair of computed axes.
func NewMapper(x, y layout.AxisSpec) Mapper {
	return Mapper{
		OriginX: x.OriginPixel,
		OriginY: y.OriginPixel,
		ScaleX:  x.Scale(),
		ScaleY:  y.Scale(),
	}
}

// offset returns |v|*scale rounded, carrying the sign of v.
func offset(v, scale float64) int {
	d := math.Min(math.Round(math.Abs(v)*scale), maxOffset)
	if v < 0 {
		return -int(d)
	}
	return int(d)
}

// ToPixel maps a data point onto the canvas.
func (m Mapper) ToPixel(x, y float64) image.Point {
	return image.Pt(m.OriginX+offset(x, m.ScaleX), m.OriginY-offset(y, m.ScaleY))
}

// FromPixel maps a canvas pixel back to data space.
func (m Mapper) FromPixel(p image.Point) (x, y float64) {
	return float64(p.X-m.OriginX) / m.ScaleX, float64(m.OriginY-p.Y) / m.ScaleY
}

// DataPoint is one plotted observation with its optional uncertainties.
type DataPoint struct {
	X, Y      float64
	XError    *float64
	YError    *float64
	Colour    gplot.RGBA
	Symbol    gplot.Symbol
	Radius    int
	Thickness int
}

// DrawPoints plots every point, then reports dropped pixels once.
func DrawPoints(c *gplot.Canvas, m Mapper, pts []DataPoint) {
	for _, p := range pts {
		DrawPoint(c, m, p)
	}
	c.WarnDropped("data points")
}

// DrawPoint stamps the point's symbol and error bars. Error bars span
// [v-u, v+u] and end in short perpendicular whiskers.
func DrawPoint(c *gplot.Canvas, m Mapper, p DataPoint) {
	centre := m.ToPixel(p.X, p.Y)
	p.Symbol.Draw(c, centre.X, centre.Y, p.Radius, p.Thickness, p.Colour)

	whisker := max(2, p.Radius)
	if p.XError != nil {
		u := math.Abs(*p.XError)
		lo := m.ToPixel(p.X-u, p.Y)
		hi := m.ToPixel(p.X+u, p.Y)
		for n := 0; n <= p.Thickness; n++ {
			y := centre.Y + n - p.Thickness/2
			hline(c, lo.X, hi.X, y, p.Colour)
		}
		vline(c, lo.X, centre.Y-whisker, centre.Y+whisker, p.Colour)
		vline(c, hi.X, centre.Y-whisker, centre.Y+whisker, p.Colour)
	}
	if p.YError != nil {
		u := math.Abs(*p.YError)
		lo := m.ToPixel(p.X, p.Y-u)
		hi := m.ToPixel(p.X, p.Y+u)
		for n := 0; n <= p.Thickness; n++ {
			x := centre.X + n - p.Thickness/2
			vline(c, x, lo.Y, hi.Y, p.Colour)
		}
		hline(c, centre.X-whisker, centre.X+whisker, lo.Y, p.Colour)
		hline(c, centre.X-whisker, centre.X+whisker, hi.Y, p.Colour)
	}
}
