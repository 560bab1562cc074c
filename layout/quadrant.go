package layout

import (
	"fmt"
	"image"
)

// Side says which signs of data an axis carries.
type Side int

const (
	// Positive axes hold only values >= 0; the origin sits at their minimum end.
	Positive Side = iota
	// Negative axes hold only values <= 0; the origin sits at their maximum end.
	Negative
	// Straddle axes cross zero; the origin sits at their midpoint.
	Straddle
)

func (s Side) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Straddle:
		return "straddle"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// SideOf classifies the integer bounds of one axis. Zero counts as
// positive unless the other bound is negative.
func SideOf(lo, hi int) Side {
	switch {
	case lo < 0 && hi > 0:
		return Straddle
	case lo >= 0:
		return Positive
	default:
		return Negative
	}
}

// Quadrant is the sign configuration of the plotted data.
type Quadrant int

// The nine configurations. Pairs span two quadrants sharing an axis
// half; the corner variants sit in a single quadrant.
const (
	RightPair Quadrant = iota
	LeftPair
	TopPair
	BottomPair
	AllQuadrants
	TopRight
	TopLeft
	BottomRight
	BottomLeft
)

var quadrantNames = [...]string{
	RightPair:    "RightPair",
	LeftPair:     "LeftPair",
	TopPair:      "TopPair",
	BottomPair:   "BottomPair",
	AllQuadrants: "AllQuadrants",
	TopRight:     "TopRight",
	TopLeft:      "TopLeft",
	BottomRight:  "BottomRight",
	BottomLeft:   "BottomLeft",
}

func (q Quadrant) String() string {
	if q < 0 || int(q) >= len(quadrantNames) {
		return fmt.Sprintf("Quadrant(%d)", int(q))
	}
	return quadrantNames[q]
}

// quadrantOf maps (x side, y side) to its configuration.
var quadrantOf = [3][3]Quadrant{
	Positive: {Positive: TopRight, Negative: BottomRight, Straddle: RightPair},
	Negative: {Positive: TopLeft, Negative: BottomLeft, Straddle: LeftPair},
	Straddle: {Positive: TopPair, Negative: BottomPair, Straddle: AllQuadrants},
}

// Classify returns the quadrant configuration for the data bounds min and
// max (already expanded and truncated to integers).
func Classify(min, max image.Point) (Quadrant, error) {
	if min.X > max.X || min.Y > max.Y {
		return 0, fmt.Errorf("%w: min %v, max %v", ErrInvertedBounds, min, max)
	}
	if min.X == 0 && max.X == 0 {
		return 0, fmt.Errorf("%w: x axis spans only zero", ErrDegenerateBounds)
	}
	if min.Y == 0 && max.Y == 0 {
		return 0, fmt.Errorf("%w: y axis spans only zero", ErrDegenerateBounds)
	}
	return quadrantOf[SideOf(min.X, max.X)][SideOf(min.Y, max.Y)], nil
}

// Sides returns the x and y sides of the quadrant.
func (q Quadrant) Sides() (x, y Side) {
	s := StrategyFor(q)
	return s.X, s.Y
}
