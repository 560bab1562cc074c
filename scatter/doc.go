// Package scatter renders scatter charts described by YAML or TOML chart
// files.
//
// A chart file names one or more CSV data sets, how to draw each of them
// and optionally a best-fit curve per set:
//
//	title: Squares
//	canvas_pixel_size: [800, 600]
//	x_axis_label: x
//	x_axis_resolution: 5
//	y_axis_label: y
//	y_axis_resolution: 5
//	data_sets:
//	  - data_path: squares.csv
//	    x_axis_csv_column: 0
//	    y_axis_csv_column: 1
//	    name: squares
//	    colour: red
//	    symbol: cross
//	    symbol_radius: 3
//	    symbol_thickness: 1
//
// Build is the one-call entry point:
//
//	path, err := scatter.Build("squares.yaml", "out")
//
// Render stops at the canvas for callers that encode it themselves.
//
// The pipeline is: title, legend, data, bounds, quadrant classification,
// axis labels, tick label room, axis geometry, axes, best fits, points.
// Each text stage reserves its space on the canvas edges before the next
// stage runs.
package scatter
