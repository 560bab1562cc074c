package layout

import (
	"fmt"
	"image"
)

// Anchor is where a label sits inside the free area of the canvas.
type Anchor int

// Label anchors.
const (
	TopLeftCorner Anchor = iota
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner
	TopCentre
	BottomCentre
	CentreLeft
	CentreRight
)

// Place returns the top-left pixel for a w x h label anchored in area.
func (a Anchor) Place(area image.Rectangle, w, h int) image.Point {
	midX := area.Min.X + area.Dx()/2 - w/2
	midY := area.Min.Y + area.Dy()/2 - h/2
	switch a {
	case TopRightCorner:
		return image.Pt(area.Max.X-w, area.Min.Y)
	case BottomLeftCorner:
		return image.Pt(area.Min.X, area.Max.Y-h)
	case BottomRightCorner:
		return image.Pt(area.Max.X-w, area.Max.Y-h)
	case TopCentre:
		return image.Pt(midX, area.Min.Y)
	case BottomCentre:
		return image.Pt(midX, area.Max.Y-h)
	case CentreLeft:
		return image.Pt(area.Min.X, midY)
	case CentreRight:
		return image.Pt(area.Max.X-w, midY)
	default:
		return area.Min
	}
}

// Reserve returns the space a w x h label at this anchor takes from the
// canvas edges. Corner labels take from both edges they touch; centred
// labels on the left or right take the same width from both sides so the
// axis stays centred.
func (a Anchor) Reserve(w, h int) ConsumedSpace {
	switch a {
	case TopLeftCorner:
		return ConsumedSpace{Top: h + Border, Left: w + Border}
	case TopRightCorner:
		return ConsumedSpace{Top: h + Border, Right: w + Border}
	case BottomLeftCorner:
		return ConsumedSpace{Bottom: h + Border, Left: w + Border}
	case BottomRightCorner:
		return ConsumedSpace{Bottom: h + Border, Right: w + Border}
	case TopCentre:
		return ConsumedSpace{Top: h + Border}
	case BottomCentre:
		return ConsumedSpace{Bottom: h + Border}
	default:
		return ConsumedSpace{Left: w + Border, Right: w + Border}
	}
}

// Strategy is the per-quadrant layout record: which sign each axis carries
// and where the axis labels go. Everything quadrant specific in drawing is
// derived from it.
type Strategy struct {
	Quadrant Quadrant
	X, Y     Side
	YLabel   Anchor
	XLabel   Anchor
}

var strategies = [...]Strategy{
	RightPair:    {RightPair, Positive, Straddle, TopLeftCorner, CentreRight},
	LeftPair:     {LeftPair, Negative, Straddle, TopRightCorner, CentreLeft},
	TopPair:      {TopPair, Straddle, Positive, TopCentre, BottomRightCorner},
	BottomPair:   {BottomPair, Straddle, Negative, BottomCentre, TopRightCorner},
	AllQuadrants: {AllQuadrants, Straddle, Straddle, TopCentre, CentreRight},
	TopRight:     {TopRight, Positive, Positive, TopLeftCorner, BottomRightCorner},
	TopLeft:      {TopLeft, Negative, Positive, TopRightCorner, BottomLeftCorner},
	BottomRight:  {BottomRight, Positive, Negative, BottomLeftCorner, TopRightCorner},
	BottomLeft:   {BottomLeft, Negative, Negative, BottomRightCorner, TopLeftCorner},
}

// StrategyFor returns the layout record of q. It panics if q is not one of
// the nine quadrant configurations.
func StrategyFor(q Quadrant) Strategy {
	if q < 0 || int(q) >= len(strategies) {
		panic(fmt.Sprintf("layout: no strategy for %v", q))
	}
	return strategies[q]
}

// XTicksUp reports whether x markers point up, away from data drawn below
// the x axis.
func (s Strategy) XTicksUp() bool {
	return s.Y == Negative
}

// YTicksRight reports whether y markers point right, away from data drawn
// left of the y axis.
func (s Strategy) YTicksRight() bool {
	return s.X == Negative
}

// XAxisAtEdge reports whether the x axis runs along the plot boundary
// rather than through its middle.
func (s Strategy) XAxisAtEdge() bool {
	return s.Y != Straddle
}

// YAxisAtEdge reports whether the y axis runs along the plot boundary.
func (s Strategy) YAxisAtEdge() bool {
	return s.X != Straddle
}
