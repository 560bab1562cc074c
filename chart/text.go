package chart

import (
	"math"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/layout"
	"github.com/gogpu/gplot/text"
)

// Typesetter measures and stamps strings. *text.FontSource implements it.
type Typesetter interface {
	Measure(s string, size float64) (w, h int)
	Draw(dst text.Blender, s string, size float64, x, y int, col gplot.RGBA)
}

var _ Typesetter = (*text.FontSource)(nil)

// goldenRatio drives the typographic scale.
var goldenRatio = (1 + math.Sqrt(5)) / 2

// FontSizes holds the pixel sizes of each text role.
type FontSizes struct {
	Title     float64
	AxisLabel float64
	AxisUnit  float64
	Legend    float64
}

// NewFontSizes derives font sizes from the canvas width: the title is one
// and a half line heights over the golden ratio, with the line height the
// square root of the width, and the other roles are half the title.
func NewFontSizes(canvasWidth int) FontSizes {
	line := math.Sqrt(float64(max(canvasWidth, 0)))
	title := 1.5 * line / goldenRatio
	axis := title / 2
	return FontSizes{
		Title:     title,
		AxisLabel: axis,
		AxisUnit:  axis,
		Legend:    axis,
	}
}

// DrawTitle centres title horizontally at the top of the free space.
func DrawTitle(c *gplot.Canvas, ts Typesetter, title string, size float64, space layout.ConsumedSpace) layout.ConsumedSpace {
	w, h := ts.Measure(title, size)
	if w == 0 {
		return layout.ConsumedSpace{}
	}
	ts.Draw(c, title, size, c.Width()/2-w/2, space.Top, gplot.Black)
	c.WarnDropped("title")
	return layout.ConsumedSpace{Top: h + layout.Border}
}

// DrawAxisLabel places label at anchor inside the free space and returns the
// space it reserves.
func DrawAxisLabel(c *gplot.Canvas, ts Typesetter, anchor layout.Anchor, label string, size float64, space layout.ConsumedSpace) (layout.ConsumedSpace, error) {
	area, err := space.Interior(c.Width(), c.Height())
	if err != nil {
		return layout.ConsumedSpace{}, err
	}
	w, h := ts.Measure(label, size)
	if w == 0 {
		return layout.ConsumedSpace{}, nil
	}
	p := anchor.Place(area, w, h)
	ts.Draw(c, label, size, p.X, p.Y, gplot.Black)
	c.WarnDropped("axis label")
	return anchor.Reserve(w, h), nil
}

// DrawYAxisLabel places the y axis label where the quadrant strategy puts it.
func DrawYAxisLabel(c *gplot.Canvas, ts Typesetter, s layout.Strategy, label string, size float64, space layout.ConsumedSpace) (layout.ConsumedSpace, error) {
	return DrawAxisLabel(c, ts, s.YLabel, label, size, space)
}

// DrawXAxisLabel places the x axis label where the quadrant strategy puts it.
func DrawXAxisLabel(c *gplot.Canvas, ts Typesetter, s layout.Strategy, label string, size float64, space layout.ConsumedSpace) (layout.ConsumedSpace, error) {
	return DrawAxisLabel(c, ts, s.XLabel, label, size, space)
}
