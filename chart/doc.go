// Package chart draws the parts of a scatter plot onto a gplot.Canvas:
// title, axis labels, axes with markers and grid, data points with error
// bars, sampled best-fit curves and the legend.
//
// Placement stages return a layout.ConsumedSpace increment; the caller adds
// it up so later stages never overlap earlier ones. Stages that may run off
// the canvas report dropped pixels once through the gplot logger.
package chart
