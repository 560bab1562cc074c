package layout

import (
	"fmt"
	"image"

	"github.com/gogpu/gplot"
)

// AxisSpec is the pixel geometry of one axis together with the data range
// it represents. MinPixel is the pixel of the data minimum: the left end of
// the x axis and the bottom end of the y axis. OriginPixel always maps to
// data value zero.
type AxisSpec struct {
	Side        Side
	MinPixel    int
	OriginPixel int
	MaxPixel    int
	Length      int
	Limits      [2]int
	Resolution  int
}

// halves is 2 for axes that extend both ways from the origin.
func (a AxisSpec) halves() int {
	if a.Side == Straddle {
		return 2
	}
	return 1
}

// Span returns the size of the data range.
func (a AxisSpec) Span() float64 {
	return float64(a.Limits[1] - a.Limits[0])
}

// Scale returns pixels per data unit.
func (a AxisSpec) Scale() float64 {
	return float64(a.Length) / a.Span()
}

// SubdivisionPixels returns the pixel distance between major markers.
func (a AxisSpec) SubdivisionPixels() int {
	return a.Length / a.halves() / a.Resolution
}

// SubdivisionValue returns the data distance between major markers.
func (a AxisSpec) SubdivisionValue() float64 {
	return a.Span() / float64(a.halves()) / float64(a.Resolution)
}

// Directions returns the signs in which the axis extends from its origin.
func (a AxisSpec) Directions() []int {
	switch a.Side {
	case Negative:
		return []int{-1}
	case Straddle:
		return []int{1, -1}
	default:
		return []int{1}
	}
}

// AxisLength returns hi-lo, or ErrAxisOverflow when hi < lo.
func AxisLength(lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("%w: %d < %d", ErrAxisOverflow, hi, lo)
	}
	return hi - lo, nil
}

// Align shortens [lo, hi] by moving one end inward until the length is a
// multiple of step. When moveLo is set lo moves up, otherwise hi moves down.
// If the span is shorter than step the bounds are returned unchanged.
func Align(lo, hi, step int, moveLo bool) (int, int) {
	n := hi - lo
	if step <= 0 || n < step {
		return lo, hi
	}
	cut := n % step
	if moveLo {
		return lo + cut, hi
	}
	return lo, hi - cut
}

// NormaliseLimits widens data limits so the origin is data zero: positive
// axes start at 0, negative axes end at 0 and straddling axes become
// symmetric about 0.
func NormaliseLimits(side Side, lim [2]int) [2]int {
	switch side {
	case Positive:
		return [2]int{0, max(lim[1], 0)}
	case Negative:
		return [2]int{min(lim[0], 0), 0}
	default:
		m := max(-lim[0], lim[1])
		return [2]int{-m, m}
	}
}

// ComputeAxes derives both axes inside area, the rectangle left over after
// every label has reserved its space. xLim and yLim are the expanded
// integer data bounds.
func ComputeAxes(s Strategy, area image.Rectangle, xRes, yRes int, xLim, yLim [2]int) (x, y AxisSpec, err error) {
	if xRes < 1 || yRes < 1 {
		return x, y, fmt.Errorf("%w: x=%d y=%d", ErrResolution, xRes, yRes)
	}

	x, err = computeAxis(s.X, area.Min.X, area.Max.X, xRes, xLim, false)
	if err != nil {
		return x, y, fmt.Errorf("x axis: %w", err)
	}
	y, err = computeAxis(s.Y, area.Min.Y, area.Max.Y, yRes, yLim, true)
	if err != nil {
		return x, y, fmt.Errorf("y axis: %w", err)
	}

	gplot.Logger().Debug("axes computed",
		"quadrant", s.Quadrant,
		"x_min", x.MinPixel, "x_origin", x.OriginPixel, "x_max", x.MaxPixel,
		"y_min", y.MinPixel, "y_origin", y.OriginPixel, "y_max", y.MaxPixel)
	return x, y, nil
}

// computeAxis lays out one axis over the pixel run [lo, hi]. For the y axis
// pixels grow downward, so the data minimum sits at hi.
func computeAxis(side Side, lo, hi, res int, lim [2]int, vertical bool) (AxisSpec, error) {
	lim = NormaliseLimits(side, lim)
	if lim[0] == lim[1] {
		return AxisSpec{}, fmt.Errorf("%w: limits %v", ErrDegenerateBounds, lim)
	}

	step := res
	if side == Straddle {
		step = 2 * res
	}

	// The end away from the origin moves; the origin end stays put.
	originAtHi := side == Negative
	if vertical {
		originAtHi = side == Positive
	}
	moveLo := originAtHi || side == Straddle
	lo, hi = Align(lo, hi, step, moveLo)

	n, err := AxisLength(lo, hi)
	if err != nil {
		return AxisSpec{}, err
	}
	if n == 0 {
		return AxisSpec{}, fmt.Errorf("%w: zero length axis", ErrNoSpace)
	}

	origin := lo
	switch {
	case side == Straddle:
		origin = lo + n/2
	case originAtHi:
		origin = hi
	}

	a := AxisSpec{
		Side:        side,
		MinPixel:    lo,
		OriginPixel: origin,
		MaxPixel:    hi,
		Length:      n,
		Limits:      lim,
		Resolution:  res,
	}
	if vertical {
		a.MinPixel, a.MaxPixel = hi, lo
	}
	return a, nil
}
