// Package gplot rasterizes scatter charts into PNG images.
//
// # Overview
//
// gplot reads a declarative chart description and CSV data and draws a
// scatter plot: axes that adapt to which quadrants the data occupies,
// scale markers, optional grid lines, a legend, a title and best-fit
// curves. The root package holds the shared drawing primitives; the
// stages live in sub-packages.
//
// # Quick Start
//
//	import "github.com/gogpu/gplot/scatter"
//
//	// Render chart.yaml and write out/{title}.png
//	path, err := scatter.Build("chart.yaml", "out")
//
// # Architecture
//
// The module is organized into:
//   - gplot: Canvas, RGBA colours, named colour and Symbol registries, logger
//   - text: font loading, shaping and glyph rasterization
//   - layout: quadrant classification, space reservation, axis geometry
//   - chart: axes, data points, best fits, legend and titles on a Canvas
//   - scatter: chart files, data loading and the render pipeline
//
// # Coordinate System
//
// Canvas coordinates follow image conventions:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Data coordinates have y increasing upward; chart.Mapper converts.
//
// # Logging
//
// gplot is silent by default. See SetLogger.
package gplot
