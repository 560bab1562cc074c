package layout

import (
	"fmt"
	"image"
)

// Border is the padding in pixels kept around the canvas and between
// placed elements.
const Border = 10

// ConsumedSpace tracks how many pixels each canvas edge has given up to
// text and decorations. Every placement returns an increment that the
// caller adds before placing the next element.
type ConsumedSpace struct {
	Top, Right, Bottom, Left int
}

// NewConsumedSpace returns the starting reservation: Border on every edge.
func NewConsumedSpace() ConsumedSpace {
	return ConsumedSpace{Top: Border, Right: Border, Bottom: Border, Left: Border}
}

// Add returns the fieldwise sum of s and inc.
func (s ConsumedSpace) Add(inc ConsumedSpace) ConsumedSpace {
	return ConsumedSpace{
		Top:    s.Top + inc.Top,
		Right:  s.Right + inc.Right,
		Bottom: s.Bottom + inc.Bottom,
		Left:   s.Left + inc.Left,
	}
}

func (s ConsumedSpace) String() string {
	return fmt.Sprintf("top=%d right=%d bottom=%d left=%d", s.Top, s.Right, s.Bottom, s.Left)
}

// Interior returns the rectangle left for the plot on a width x height
// canvas, or a *SpaceError when the reservations overlap.
func (s ConsumedSpace) Interior(width, height int) (image.Rectangle, error) {
	if s.Left+s.Right >= width {
		return image.Rectangle{}, &SpaceError{
			Axis: "horizontal", Canvas: width, Reserved: s.Left + s.Right,
		}
	}
	if s.Top+s.Bottom >= height {
		return image.Rectangle{}, &SpaceError{
			Axis: "vertical", Canvas: height, Reserved: s.Top + s.Bottom,
		}
	}
	return image.Rect(s.Left, s.Top, width-s.Right, height-s.Bottom), nil
}
