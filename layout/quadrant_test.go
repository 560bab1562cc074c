package layout

import (
	"errors"
	"image"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		min, max image.Point
		want     Quadrant
	}{
		{image.Pt(-1, -1), image.Pt(1, 1), AllQuadrants},

		{image.Pt(-1, 0), image.Pt(1, 1), TopPair},
		{image.Pt(-1, 1), image.Pt(1, 2), TopPair},
		{image.Pt(-1, -1), image.Pt(1, 0), BottomPair},
		{image.Pt(-1, -2), image.Pt(1, -1), BottomPair},
		{image.Pt(-1, -1), image.Pt(0, 1), LeftPair},
		{image.Pt(-2, -1), image.Pt(-1, 1), LeftPair},
		{image.Pt(0, -1), image.Pt(1, 1), RightPair},
		{image.Pt(1, -1), image.Pt(2, 1), RightPair},

		{image.Pt(0, 0), image.Pt(1, 1), TopRight},
		{image.Pt(1, 0), image.Pt(2, 1), TopRight},
		{image.Pt(0, 1), image.Pt(1, 2), TopRight},
		{image.Pt(1, 1), image.Pt(2, 2), TopRight},

		{image.Pt(-1, 0), image.Pt(0, 1), TopLeft},
		{image.Pt(-2, 0), image.Pt(-1, 1), TopLeft},
		{image.Pt(-1, 1), image.Pt(0, 2), TopLeft},
		{image.Pt(-2, 1), image.Pt(-1, 2), TopLeft},

		{image.Pt(-1, -1), image.Pt(0, 0), BottomLeft},
		{image.Pt(-2, -1), image.Pt(-1, 0), BottomLeft},
		{image.Pt(-1, -2), image.Pt(0, -1), BottomLeft},
		{image.Pt(-2, -2), image.Pt(-1, -1), BottomLeft},

		{image.Pt(0, -1), image.Pt(1, 0), BottomRight},
		{image.Pt(1, -1), image.Pt(2, 0), BottomRight},
		{image.Pt(0, -2), image.Pt(1, -1), BottomRight},
		{image.Pt(1, -2), image.Pt(2, -1), BottomRight},
	}
	for _, tt := range tests {
		got, err := Classify(tt.min, tt.max)
		if err != nil {
			t.Errorf("Classify(%v, %v) error = %v", tt.min, tt.max, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.min, tt.max, got, tt.want)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		min, max image.Point
		want     error
	}{
		{image.Pt(0, 0), image.Pt(1, 0), ErrDegenerateBounds},
		{image.Pt(0, 0), image.Pt(0, 5), ErrDegenerateBounds},
		{image.Pt(0, 0), image.Pt(0, 0), ErrDegenerateBounds},
		{image.Pt(2, 0), image.Pt(1, 1), ErrInvertedBounds},
		{image.Pt(0, 3), image.Pt(1, 1), ErrInvertedBounds},
	}
	for _, tt := range tests {
		if _, err := Classify(tt.min, tt.max); !errors.Is(err, tt.want) {
			t.Errorf("Classify(%v, %v) error = %v, want %v", tt.min, tt.max, err, tt.want)
		}
	}
}

// Every ordered pair of bounds in a sign grid classifies to exactly one
// variant, or to an error only when an axis spans nothing but zero.
func TestClassifyTotal(t *testing.T) {
	vals := []int{-3, -1, 0, 1, 3}
	for _, x0 := range vals {
		for _, x1 := range vals {
			for _, y0 := range vals {
				for _, y1 := range vals {
					if x0 > x1 || y0 > y1 {
						continue
					}
					q, err := Classify(image.Pt(x0, y0), image.Pt(x1, y1))
					zeroAxis := (x0 == 0 && x1 == 0) || (y0 == 0 && y1 == 0)
					if zeroAxis {
						if err == nil {
							t.Errorf("Classify(%d..%d, %d..%d) = %v, want error", x0, x1, y0, y1, q)
						}
						continue
					}
					if err != nil {
						t.Errorf("Classify(%d..%d, %d..%d) error = %v", x0, x1, y0, y1, err)
						continue
					}
					xs, ys := q.Sides()
					if xs != SideOf(x0, x1) || ys != SideOf(y0, y1) {
						t.Errorf("%v sides = (%v, %v), want (%v, %v)", q, xs, ys, SideOf(x0, x1), SideOf(y0, y1))
					}
				}
			}
		}
	}
}

func TestQuadrantString(t *testing.T) {
	if got := BottomLeft.String(); got != "BottomLeft" {
		t.Errorf("String() = %q", got)
	}
	if got := Quadrant(99).String(); got != "Quadrant(99)" {
		t.Errorf("String() = %q", got)
	}
	if got := Straddle.String(); got != "straddle" {
		t.Errorf("Side.String() = %q", got)
	}
}
