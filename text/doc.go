// Package text measures and stamps chart text onto a gplot canvas.
//
// Text goes through three stages:
//
//   - FontSource: parsed font, loaded once and shared (default: Go Regular)
//   - Shape: HarfBuzz shaping via github.com/go-text/typesetting
//   - Measure/Draw: glyph outlines from golang.org/x/image/font/sfnt,
//     rasterized with golang.org/x/image/vector
//
// Both Measure and Draw work on the ink bounding box of the shaped string,
// so a label measured at (w, h) and drawn at (x, y) covers exactly the
// rectangle [x, x+w) x [y, y+h). Flattened runs are cached per source, so
// measuring a label and then drawing it shapes it once.
//
// # Example usage
//
//	src, err := text.Default()
//	if err != nil {
//	    return err
//	}
//	w, h := src.Measure("Squares", 26)
//	src.Draw(canvas, "Squares", 26, (canvas.Width()-w)/2, 10, gplot.Black)
package text
