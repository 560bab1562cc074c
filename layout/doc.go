// Package layout holds the pure geometry of a scatter plot: quadrant
// classification of signed data bounds, per-edge space accounting for text,
// and pixel-exact axis placement.
//
// Nothing here draws. Drawing stages in package chart consume a Strategy
// and two AxisSpec values and never switch on the nine quadrants
// themselves.
package layout
