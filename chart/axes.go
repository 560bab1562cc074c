package chart

import (
	"math"
	"strconv"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/layout"
)

// Marker sizes in pixels.
const (
	markerUnit = 5
	// MajorMarkerMax is the longest major marker: even subdivisions get
	// three units, odd ones two.
	MajorMarkerMax = 3 * markerUnit
	tickLabelGap   = 3
)

// minorCounts lists candidate minor marker counts between majors, densest
// first.
var minorCounts = [...]int{9, 4, 3, 2, 1}

// AxesOptions configures DrawAxes.
type AxesOptions struct {
	Grid       bool
	Colour     gplot.RGBA
	GridColour gplot.RGBA
	LabelSize  float64
}

// DefaultAxesOptions returns black axes with grey grid lines.
func DefaultAxesOptions(labelSize float64) AxesOptions {
	return AxesOptions{
		Colour:     gplot.Black,
		GridColour: gplot.Grey,
		LabelSize:  labelSize,
	}
}

// majorLength returns the marker length of the i-th subdivision.
func majorLength(i int) int {
	if i%2 == 0 {
		return 3 * markerUnit
	}
	return 2 * markerUnit
}

// minorCount returns how many minor markers fit evenly between majors sub
// pixels apart, or 0 when none do.
func minorCount(sub int) int {
	for _, mc := range minorCounts {
		if sub > mc && sub%(mc+1) == 0 {
			return mc
		}
	}
	return 0
}

// FormatTick renders a marker value compactly: no trailing zeros and at
// most four decimals.
func FormatTick(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// tickLabels returns the labels drawn along an axis, origin excluded.
func tickLabels(a layout.AxisSpec) []string {
	var out []string
	for _, d := range a.Directions() {
		for i := 1; i <= a.Resolution; i++ {
			out = append(out, FormatTick(float64(d*i)*a.SubdivisionValue()))
		}
	}
	return out
}

// TickLabelReservation returns the room the marker labels of edge axes need
// outside the plot area. It runs before axis geometry, from the data limits
// and resolutions alone.
func TickLabelReservation(ts Typesetter, s layout.Strategy, xLim, yLim [2]int, xRes, yRes int, size float64) layout.ConsumedSpace {
	var inc layout.ConsumedSpace
	if s.XAxisAtEdge() {
		a := layout.AxisSpec{Side: s.X, Limits: layout.NormaliseLimits(s.X, xLim), Resolution: max(xRes, 1)}
		h := 0
		for _, l := range tickLabels(a) {
			_, lh := ts.Measure(l, size)
			h = max(h, lh)
		}
		if s.XTicksUp() {
			inc.Top = MajorMarkerMax + tickLabelGap + h
		} else {
			inc.Bottom = MajorMarkerMax + tickLabelGap + h
		}
	}
	if s.YAxisAtEdge() {
		a := layout.AxisSpec{Side: s.Y, Limits: layout.NormaliseLimits(s.Y, yLim), Resolution: max(yRes, 1)}
		w := 0
		for _, l := range tickLabels(a) {
			lw, _ := ts.Measure(l, size)
			w = max(w, lw)
		}
		if s.YTicksRight() {
			inc.Right = MajorMarkerMax + tickLabelGap + w
		} else {
			inc.Left = MajorMarkerMax + tickLabelGap + w
		}
	}
	return inc
}

// DrawAxes draws grid lines, both axes, their major and minor markers and
// the marker value labels.
func DrawAxes(c *gplot.Canvas, ts Typesetter, s layout.Strategy, x, y layout.AxisSpec, opts AxesOptions) {
	if opts.Grid {
		drawGrid(c, x, y, opts.GridColour)
	}

	// Each axis is drawn as two runs meeting at the origin.
	hline(c, x.MinPixel, x.OriginPixel, y.OriginPixel, opts.Colour)
	hline(c, x.OriginPixel, x.MaxPixel, y.OriginPixel, opts.Colour)
	vline(c, x.OriginPixel, y.MinPixel, y.OriginPixel, opts.Colour)
	vline(c, x.OriginPixel, y.OriginPixel, y.MaxPixel, opts.Colour)

	xOut := 1
	if s.XTicksUp() {
		xOut = -1
	}
	yOut := -1
	if s.YTicksRight() {
		yOut = 1
	}

	drawMarkers(x, func(offset, length int) {
		px := x.OriginPixel + offset
		vline(c, px, y.OriginPixel, y.OriginPixel+xOut*length, opts.Colour)
	}, func(offset int, label string) {
		w, h := ts.Measure(label, opts.LabelSize)
		px := x.OriginPixel + offset - w/2
		py := y.OriginPixel + MajorMarkerMax + tickLabelGap
		if xOut < 0 {
			py = y.OriginPixel - MajorMarkerMax - tickLabelGap - h
		}
		ts.Draw(c, label, opts.LabelSize, px, py, opts.Colour)
	})

	drawMarkers(y, func(offset, length int) {
		py := y.OriginPixel - offset
		hline(c, x.OriginPixel, x.OriginPixel+yOut*length, py, opts.Colour)
	}, func(offset int, label string) {
		w, h := ts.Measure(label, opts.LabelSize)
		py := y.OriginPixel - offset - h/2
		px := x.OriginPixel - MajorMarkerMax - tickLabelGap - w
		if yOut > 0 {
			px = x.OriginPixel + MajorMarkerMax + tickLabelGap
		}
		ts.Draw(c, label, opts.LabelSize, px, py, opts.Colour)
	})

	c.WarnDropped("axes")
}

// drawMarkers walks the subdivisions of a in every direction it extends.
// tick receives the signed pixel offset from the origin along the axis and
// the marker length; label receives the offset and the formatted value.
func drawMarkers(a layout.AxisSpec, tick func(offset, length int), label func(offset int, s string)) {
	sub := a.SubdivisionPixels()
	mc := minorCount(sub)
	for _, d := range a.Directions() {
		for i := 0; i <= a.Resolution; i++ {
			base := d * i * sub
			tick(base, majorLength(i))
			if i > 0 {
				label(base, FormatTick(float64(d*i)*a.SubdivisionValue()))
			}
			if i == a.Resolution || mc == 0 {
				continue
			}
			step := sub / (mc + 1)
			for j := 1; j <= mc; j++ {
				tick(base+d*j*step, markerUnit)
			}
		}
	}
}

func drawGrid(c *gplot.Canvas, x, y layout.AxisSpec, col gplot.RGBA) {
	xs := x.SubdivisionPixels()
	for _, d := range x.Directions() {
		for i := 0; i <= x.Resolution; i++ {
			vline(c, x.OriginPixel+d*i*xs, y.MaxPixel, y.MinPixel, col)
		}
	}
	ys := y.SubdivisionPixels()
	for _, d := range y.Directions() {
		for i := 0; i <= y.Resolution; i++ {
			hline(c, x.MinPixel, x.MaxPixel, y.OriginPixel-d*i*ys, col)
		}
	}
}

// hline draws the inclusive horizontal run between x0 and x1.
func hline(c *gplot.Canvas, x0, x1, y int, col gplot.RGBA) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	// Runs far off the canvas are cut to one dropped pixel per end.
	x0, x1 = max(x0, -1), min(x1, c.Width())
	for x := x0; x <= x1; x++ {
		c.Set(x, y, col)
	}
}

// vline draws the inclusive vertical run between y0 and y1.
func vline(c *gplot.Canvas, x, y0, y1 int, col gplot.RGBA) {
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	y0, y1 = max(y0, -1), min(y1, c.Height())
	for y := y0; y <= y1; y++ {
		c.Set(x, y, col)
	}
}
