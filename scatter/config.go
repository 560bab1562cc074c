package scatter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/chart"
)

// Config describes one scatter chart. Field names match the keys of the
// YAML and TOML chart files.
type Config struct {
	Title           string    `yaml:"title" toml:"title"`
	CanvasPixelSize []int     `yaml:"canvas_pixel_size" toml:"canvas_pixel_size"`
	XAxisLabel      string    `yaml:"x_axis_label" toml:"x_axis_label"`
	XAxisResolution int       `yaml:"x_axis_resolution" toml:"x_axis_resolution"`
	YAxisLabel      string    `yaml:"y_axis_label" toml:"y_axis_label"`
	YAxisResolution int       `yaml:"y_axis_resolution" toml:"y_axis_resolution"`
	HasGrid         bool      `yaml:"has_grid" toml:"has_grid"`
	HasLegend       bool      `yaml:"has_legend" toml:"has_legend"`
	DataSets        []DataSet `yaml:"data_sets" toml:"data_sets"`
}

// DataSet is one CSV series and how to draw it.
type DataSet struct {
	DataPath        string   `yaml:"data_path" toml:"data_path"`
	HasHeaders      bool     `yaml:"has_headers" toml:"has_headers"`
	XColumn         int      `yaml:"x_axis_csv_column" toml:"x_axis_csv_column"`
	YColumn         int      `yaml:"y_axis_csv_column" toml:"y_axis_csv_column"`
	XErrorColumn    *int     `yaml:"x_axis_error_bar_csv_column,omitempty" toml:"x_axis_error_bar_csv_column,omitempty"`
	YErrorColumn    *int     `yaml:"y_axis_error_bar_csv_column,omitempty" toml:"y_axis_error_bar_csv_column,omitempty"`
	Name            string   `yaml:"name" toml:"name"`
	Colour          string   `yaml:"colour" toml:"colour"`
	Symbol          string   `yaml:"symbol" toml:"symbol"`
	SymbolRadius    int      `yaml:"symbol_radius" toml:"symbol_radius"`
	SymbolThickness int      `yaml:"symbol_thickness" toml:"symbol_thickness"`
	BestFit         *BestFit `yaml:"best_fit,omitempty" toml:"best_fit,omitempty"`
}

// BestFit selects a curve by Kind; only the parameters of that kind are
// read. Missing parameters are zero.
type BestFit struct {
	Kind   string `yaml:"kind" toml:"kind"`
	Colour string `yaml:"colour" toml:"colour"`

	// linear
	Gradient  float64 `yaml:"gradient" toml:"gradient"`
	Intercept float64 `yaml:"intercept" toml:"intercept"`

	// quadratic and cubic
	A float64 `yaml:"a" toml:"a"`
	B float64 `yaml:"b" toml:"b"`
	C float64 `yaml:"c" toml:"c"`
	D float64 `yaml:"d" toml:"d"`

	// polynomial
	Terms []Term `yaml:"terms" toml:"terms"`

	// exponential
	Constant float64 `yaml:"constant" toml:"constant"`
	Base     float64 `yaml:"base" toml:"base"`
	Power    float64 `yaml:"power" toml:"power"`

	// sine and cosine
	Amplitude float64 `yaml:"amplitude" toml:"amplitude"`
	Period    float64 `yaml:"period" toml:"period"`
	Phase     float64 `yaml:"phase" toml:"phase"`

	// exponential, sine and cosine
	Shift float64 `yaml:"shift" toml:"shift"`
}

// Term is one coefficient of a polynomial best fit.
type Term struct {
	Power       int     `yaml:"power" toml:"power"`
	Coefficient float64 `yaml:"coefficient" toml:"coefficient"`
}

// Load reads a chart file. Files ending in .toml are TOML; anything else is
// YAML. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scatter: read config: %w", err)
	}

	cfg := &Config{}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(cfg)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	gplot.Logger().Info("config loaded", "path", path, "title", cfg.Title, "data_sets", len(cfg.DataSets))
	return cfg, nil
}

// Validate checks every field and reports all problems at once. Each
// problem is a *ConfigError.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field, format string, args ...any) {
		errs = append(errs, &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Title) == "" {
		bad("title", "must not be empty")
	}
	if len(c.CanvasPixelSize) != 2 || c.CanvasPixelSize[0] < 1 || c.CanvasPixelSize[1] < 1 {
		bad("canvas_pixel_size", "want two positive integers, got %v", c.CanvasPixelSize)
	}
	if c.XAxisResolution < 1 {
		bad("x_axis_resolution", "must be at least 1, got %d", c.XAxisResolution)
	}
	if c.YAxisResolution < 1 {
		bad("y_axis_resolution", "must be at least 1, got %d", c.YAxisResolution)
	}
	if len(c.DataSets) == 0 {
		bad("data_sets", "at least one data set is required")
	}

	for i, ds := range c.DataSets {
		field := func(name string) string { return fmt.Sprintf("data_sets[%d].%s", i, name) }
		if ds.DataPath == "" {
			bad(field("data_path"), "must not be empty")
		}
		if ds.XColumn < 0 {
			bad(field("x_axis_csv_column"), "must not be negative")
		}
		if ds.YColumn < 0 {
			bad(field("y_axis_csv_column"), "must not be negative")
		}
		if ds.XErrorColumn != nil && *ds.XErrorColumn < 0 {
			bad(field("x_axis_error_bar_csv_column"), "must not be negative")
		}
		if ds.YErrorColumn != nil && *ds.YErrorColumn < 0 {
			bad(field("y_axis_error_bar_csv_column"), "must not be negative")
		}
		if ds.SymbolRadius < 0 || ds.SymbolRadius > gplot.MaxSymbolRadius {
			bad(field("symbol_radius"), "must be between 0 and %d", gplot.MaxSymbolRadius)
		}
		if ds.SymbolThickness < 0 || ds.SymbolThickness > gplot.MaxSymbolThickness {
			bad(field("symbol_thickness"), "must be between 0 and %d", gplot.MaxSymbolThickness)
		}
		if _, err := gplot.ParseColour(ds.Colour); err != nil {
			bad(field("colour"), "%v", err)
		}
		if _, err := gplot.ParseSymbol(ds.Symbol); err != nil {
			bad(field("symbol"), "%v", err)
		}
		if ds.BestFit != nil {
			if _, err := ds.BestFit.Fit(); err != nil {
				bad(field("best_fit"), "%v", err)
			}
		}
	}
	return errors.Join(errs...)
}

// Width returns the canvas width in pixels.
func (c *Config) Width() int { return c.CanvasPixelSize[0] }

// Height returns the canvas height in pixels.
func (c *Config) Height() int { return c.CanvasPixelSize[1] }

// Style resolves the data set's colour and symbol names.
func (ds DataSet) Style() (gplot.RGBA, gplot.Symbol, error) {
	col, err := gplot.ParseColour(ds.Colour)
	if err != nil {
		return gplot.RGBA{}, gplot.Point, err
	}
	sym, err := gplot.ParseSymbol(ds.Symbol)
	if err != nil {
		return gplot.RGBA{}, gplot.Point, err
	}
	return col, sym, nil
}

// Fit converts the configured curve into a validated chart.BestFit.
func (b *BestFit) Fit() (chart.BestFit, error) {
	col, err := gplot.ParseColour(b.Colour)
	if err != nil {
		return chart.BestFit{}, err
	}

	var curve chart.Curve
	switch strings.ToLower(strings.TrimSpace(b.Kind)) {
	case "linear":
		curve = chart.Linear{Gradient: b.Gradient, Intercept: b.Intercept}
	case "quadratic":
		curve = chart.Quadratic{A: b.A, B: b.B, C: b.C}
	case "cubic":
		curve = chart.Cubic{A: b.A, B: b.B, C: b.C, D: b.D}
	case "polynomial":
		coeffs := make(map[int]float64, len(b.Terms))
		for _, t := range b.Terms {
			if t.Power < 0 {
				return chart.BestFit{}, fmt.Errorf("%w: polynomial power %d", ErrBestFitKind, t.Power)
			}
			coeffs[t.Power] += t.Coefficient
		}
		curve = chart.Polynomial{Coefficients: coeffs}
	case "exponential":
		curve = chart.Exponential{Constant: b.Constant, Base: b.Base, Power: b.Power, Shift: b.Shift}
	case "sine":
		curve = chart.Sine{Amplitude: b.Amplitude, Period: b.Period, Phase: b.Phase, Shift: b.Shift}
	case "cosine":
		curve = chart.Cosine{Amplitude: b.Amplitude, Period: b.Period, Phase: b.Phase, Shift: b.Shift}
	default:
		return chart.BestFit{}, fmt.Errorf("%w: %q", ErrBestFitKind, b.Kind)
	}

	if err := curve.Validate(); err != nil {
		return chart.BestFit{}, err
	}
	return chart.BestFit{Curve: curve, Colour: col}, nil
}
