package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout package.
var (
	// ErrInvertedBounds is returned when a minimum bound exceeds its maximum.
	ErrInvertedBounds = errors.New("layout: minimum bound exceeds maximum")

	// ErrDegenerateBounds is returned when an axis has no extent to plot.
	ErrDegenerateBounds = errors.New("layout: degenerate data bounds")

	// ErrAxisOverflow is returned when an axis maximum pixel lies before its
	// minimum.
	ErrAxisOverflow = errors.New("layout: axis length overflow")

	// ErrNoSpace is returned when reserved space leaves no room to plot.
	ErrNoSpace = errors.New("layout: no space left for the plot area")

	// ErrResolution is returned for axis resolutions below one.
	ErrResolution = errors.New("layout: axis resolution must be at least 1")
)

// SpaceError reports the canvas edge that ran out of room.
type SpaceError struct {
	Axis     string // "horizontal" or "vertical"
	Canvas   int
	Reserved int
}

func (e *SpaceError) Error() string {
	return fmt.Sprintf("layout: %s space exhausted: reserved %d of %d pixels",
		e.Axis, e.Reserved, e.Canvas)
}

// Unwrap lets errors.Is match ErrNoSpace.
func (e *SpaceError) Unwrap() error {
	return ErrNoSpace
}
