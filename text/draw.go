package text

import (
	"image"
	"math"

	"github.com/gogpu/gplot"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Blender receives glyph coverage. *gplot.Canvas implements it.
type Blender interface {
	Blend(x, y int, c gplot.RGBA, coverage float64)
}

type point struct{ x, y float32 }

type segment struct {
	op   sfnt.SegmentOp
	args [3]point
}

// inkRun is a shaped string flattened to outline segments in run space:
// the pen starts at x=0 and the baseline sits at y=0.
type inkRun struct {
	segs                   []segment
	minX, minY, maxX, maxY float32
}

func (r *inkRun) empty() bool {
	return len(r.segs) == 0
}

func (r *inkRun) include(p point) {
	r.minX = min(r.minX, p.x)
	r.minY = min(r.minY, p.y)
	r.maxX = max(r.maxX, p.x)
	r.maxY = max(r.maxY, p.y)
}

// box returns the integer ink rectangle in run space.
func (r *inkRun) box() image.Rectangle {
	if r.empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(float64(r.minX))), int(math.Floor(float64(r.minY))),
		int(math.Ceil(float64(r.maxX))), int(math.Ceil(float64(r.maxY))),
	)
}

func arity(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// inkRun returns the flattened outlines of s, shaping it on first use.
func (fs *FontSource) inkRun(s string, size float64) inkRun {
	return fs.runs.getOrCreate(runKey{text: s, size: size}, func() inkRun {
		return fs.buildRun(s, size)
	})
}

func (fs *FontSource) buildRun(s string, size float64) inkRun {
	r := inkRun{
		minX: math.MaxFloat32, minY: math.MaxFloat32,
		maxX: -math.MaxFloat32, maxY: -math.MaxFloat32,
	}
	var buf sfnt.Buffer
	ppem := fixed.Int26_6(size * 64)
	for _, g := range fs.Shape(s, size) {
		segs, err := fs.outlines.LoadGlyph(&buf, g.ID, ppem, nil)
		if err != nil {
			gplot.Logger().Debug("text: skipping glyph without outline",
				"glyph", g.ID, "cluster", g.Cluster, "err", err)
			continue
		}
		for _, seg := range segs {
			out := segment{op: seg.Op}
			for i := 0; i < arity(seg.Op); i++ {
				p := point{
					x: float32(g.X) + float32(seg.Args[i].X)/64,
					y: float32(g.Y) + float32(seg.Args[i].Y)/64,
				}
				out.args[i] = p
				r.include(p)
			}
			r.segs = append(r.segs, out)
		}
	}
	return r
}

// Measure returns the width and height in pixels of the ink bounding box
// of s at size pixels per em. Strings without visible glyphs measure (0, 0).
func (fs *FontSource) Measure(s string, size float64) (w, h int) {
	r := fs.inkRun(s, size)
	b := r.box()
	return b.Dx(), b.Dy()
}

// Draw renders s so that the top-left corner of its ink bounding box lands
// at (x, y). Glyph edges are alpha blended into dst.
func (fs *FontSource) Draw(dst Blender, s string, size float64, x, y int, col gplot.RGBA) {
	r := fs.inkRun(s, size)
	b := r.box()
	if b.Empty() {
		return
	}

	ox, oy := float32(b.Min.X), float32(b.Min.Y)
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, seg := range r.segs {
		a := seg.args
		switch seg.op {
		case sfnt.SegmentOpMoveTo:
			z.ClosePath()
			z.MoveTo(a[0].x-ox, a[0].y-oy)
		case sfnt.SegmentOpLineTo:
			z.LineTo(a[0].x-ox, a[0].y-oy)
		case sfnt.SegmentOpQuadTo:
			z.QuadTo(a[0].x-ox, a[0].y-oy, a[1].x-ox, a[1].y-oy)
		case sfnt.SegmentOpCubeTo:
			z.CubeTo(a[0].x-ox, a[0].y-oy, a[1].x-ox, a[1].y-oy, a[2].x-ox, a[2].y-oy)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for py := 0; py < b.Dy(); py++ {
		for px := 0; px < b.Dx(); px++ {
			if a := mask.AlphaAt(px, py).A; a > 0 {
				dst.Blend(x+px, y+py, col, float64(a)/255)
			}
		}
	}
}
