package scatter

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/chart"
	"github.com/gogpu/gplot/internal/csvdata"
)

// maxLimit bounds expanded data limits; past it float64 no longer holds
// every integer.
const maxLimit = 1 << 53

// expansion is the margin added around the data on each side.
const expansion = 1.1

// Series is a data set resolved into plottable points.
type Series struct {
	DataSet DataSet
	Points  []chart.DataPoint
}

type tableKey struct {
	path      string
	hasHeader bool
}

// LoadSeries reads every data set. Files shared between data sets are read
// once.
func LoadSeries(cfg *Config, opts ...Option) ([]Series, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return loadSeries(cfg, o)
}

func loadSeries(cfg *Config, o options) ([]Series, error) {
	tables := make(map[tableKey]*csvdata.Table)
	out := make([]Series, 0, len(cfg.DataSets))

	for _, ds := range cfg.DataSets {
		path := ds.DataPath
		if o.baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(o.baseDir, path)
		}
		key := tableKey{path: path, hasHeader: ds.HasHeaders}
		tbl, ok := tables[key]
		if !ok {
			var err error
			tbl, err = csvdata.ReadFile(path, csvdata.Options{Delimiter: o.delimiter, HasHeader: ds.HasHeaders})
			if err != nil {
				return nil, err
			}
			tables[key] = tbl
			gplot.Logger().Info("data read", "path", path, "records", len(tbl.Records))
		}

		pts, err := points(tbl, ds)
		if err != nil {
			return nil, err
		}
		out = append(out, Series{DataSet: ds, Points: pts})
	}
	return out, nil
}

// points extracts one data set's columns from tbl.
func points(tbl *csvdata.Table, ds DataSet) ([]chart.DataPoint, error) {
	col, sym, err := ds.Style()
	if err != nil {
		return nil, err
	}

	read := func(rec csvdata.Record, column int) (float64, error) {
		v, err := tbl.Float(rec, column)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s:%d: column %d", ErrNonFiniteValue, tbl.Path, rec.Line, column)
		}
		return v, nil
	}
	optional := func(rec csvdata.Record, column *int) (*float64, error) {
		if column == nil {
			return nil, nil
		}
		v, err := read(rec, *column)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}

	pts := make([]chart.DataPoint, 0, len(tbl.Records))
	for _, rec := range tbl.Records {
		x, err := read(rec, ds.XColumn)
		if err != nil {
			return nil, err
		}
		y, err := read(rec, ds.YColumn)
		if err != nil {
			return nil, err
		}
		ux, err := optional(rec, ds.XErrorColumn)
		if err != nil {
			return nil, err
		}
		uy, err := optional(rec, ds.YErrorColumn)
		if err != nil {
			return nil, err
		}
		pts = append(pts, chart.DataPoint{
			X: x, Y: y,
			XError: ux, YError: uy,
			Colour:    col,
			Symbol:    sym,
			Radius:    ds.SymbolRadius,
			Thickness: ds.SymbolThickness,
		})
	}
	return pts, nil
}

// Bounds is the integer data range of the chart after expansion.
type Bounds struct {
	XMin, XMax int
	YMin, YMax int
}

// DataBounds returns the expanded extent of every point in series. Error
// bars do not widen the bounds.
func DataBounds(series []Series) (Bounds, error) {
	first := true
	var xMin, xMax, yMin, yMax float64
	for _, s := range series {
		for _, p := range s.Points {
			if first {
				xMin, xMax, yMin, yMax = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			xMin, xMax = math.Min(xMin, p.X), math.Max(xMax, p.X)
			yMin, yMax = math.Min(yMin, p.Y), math.Max(yMax, p.Y)
		}
	}
	if first {
		return Bounds{}, ErrNoData
	}

	b := Bounds{
		XMin: ExpandMin(xMin), XMax: ExpandMax(xMax),
		YMin: ExpandMin(yMin), YMax: ExpandMax(yMax),
	}
	for _, v := range [...]int{b.XMin, b.XMax, b.YMin, b.YMax} {
		if v <= -maxLimit || v >= maxLimit {
			return Bounds{}, fmt.Errorf("%w: x [%g, %g] y [%g, %g]", ErrDataRange, xMin, xMax, yMin, yMax)
		}
	}
	return b, nil
}

// ExpandMin moves a lower bound ten percent further from zero, or toward
// zero for positive values, and rounds down.
func ExpandMin(v float64) int {
	if v >= 0 {
		v /= expansion
	} else {
		v *= expansion
	}
	return clampLimit(math.Floor(v))
}

// ExpandMax moves an upper bound ten percent away from zero, or toward zero
// for negative values, and rounds up.
func ExpandMax(v float64) int {
	if v >= 0 {
		v *= expansion
	} else {
		v /= expansion
	}
	return clampLimit(math.Ceil(v))
}

func clampLimit(v float64) int {
	return int(math.Max(-maxLimit, math.Min(v, maxLimit)))
}
