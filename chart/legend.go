package chart

import (
	"image"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/layout"
)

// LegendField is one legend row: a sample of the data set's symbol and its
// name.
type LegendField struct {
	Name      string
	Symbol    gplot.Symbol
	Radius    int
	Thickness int
	Colour    gplot.RGBA
}

// reach returns how far the field's symbol extends from its centre.
func (f LegendField) reach() int {
	r := 0
	for _, p := range f.Symbol.Footprint(f.Radius, f.Thickness) {
		r = max(r, abs(p.X), abs(p.Y))
	}
	return r
}

type legendMetrics struct {
	reach  int // widest symbol reach over all fields
	rowH   int // tallest label over all fields
	labelW int // widest label over all fields
}

func measureLegend(ts Typesetter, fields []LegendField, size float64) legendMetrics {
	var m legendMetrics
	for _, f := range fields {
		w, h := ts.Measure(f.Name, size)
		m.reach = max(m.reach, f.reach())
		m.rowH = max(m.rowH, h)
		m.labelW = max(m.labelW, w)
	}
	return m
}

// symbolColumn is the offset from the legend origin to the symbol centres;
// labels start at three times it.
func (m legendMetrics) symbolColumn() int {
	return m.reach + 1
}

// LegendWidth returns the horizontal extent DrawLegend will cover.
func LegendWidth(ts Typesetter, fields []LegendField, size float64) int {
	if len(fields) == 0 {
		return 0
	}
	m := measureLegend(ts, fields, size)
	return 3*m.symbolColumn() + m.labelW
}

// LegendRowY returns the top of row i for a legend whose rows are rowH
// pixels tall: rows are spaced two row heights apart.
func LegendRowY(originY, rowH, i int) int {
	return originY + i*2*rowH
}

// DrawLegend draws one row per field starting at origin and returns the
// horizontal space it consumes.
func DrawLegend(c *gplot.Canvas, ts Typesetter, origin image.Point, fields []LegendField, size float64) layout.ConsumedSpace {
	if len(fields) == 0 {
		return layout.ConsumedSpace{}
	}
	m := measureLegend(ts, fields, size)
	rowH := max(m.rowH, 1)
	col := m.symbolColumn()

	for i, f := range fields {
		top := LegendRowY(origin.Y, rowH, i)
		f.Symbol.Draw(c, origin.X+col, top+rowH/2, f.Radius, f.Thickness, f.Colour)
		ts.Draw(c, f.Name, size, origin.X+3*col, top, gplot.Black)
	}
	c.WarnDropped("legend")
	return layout.ConsumedSpace{Right: 3*col + m.labelW + layout.Border}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
