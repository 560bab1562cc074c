package scatter

import (
	"fmt"
	"image"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/chart"
	"github.com/gogpu/gplot/layout"
	"github.com/gogpu/gplot/text"
)

// Render draws cfg onto a new canvas. Every text element reserves its
// space before the plot area is computed, so labels never overlap the axes.
func Render(cfg *Config, opts ...Option) (*gplot.Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c, _, err := render(cfg, o)
	return c, err
}

// frame is the geometry a render settled on.
type frame struct {
	quadrant layout.Quadrant
	x, y     layout.AxisSpec
}

func render(cfg *Config, o options) (*gplot.Canvas, frame, error) {
	var f frame
	if err := cfg.Validate(); err != nil {
		return nil, f, err
	}
	ts := o.font
	if ts == nil {
		var err error
		if ts, err = text.Default(); err != nil {
			return nil, f, err
		}
	}

	log := gplot.Logger()
	w, h := cfg.Width(), cfg.Height()
	c := gplot.NewCanvas(w, h)
	sizes := chart.NewFontSizes(w)
	space := layout.NewConsumedSpace()

	space = space.Add(chart.DrawTitle(c, ts, cfg.Title, sizes.Title, space))

	if cfg.HasLegend {
		fields := legendFields(cfg)
		lw := chart.LegendWidth(ts, fields, sizes.Legend)
		origin := image.Pt(w-space.Right-lw, space.Top+h/4)
		space = space.Add(chart.DrawLegend(c, ts, origin, fields, sizes.Legend))
	}

	series, err := loadSeries(cfg, o)
	if err != nil {
		return nil, f, err
	}
	bounds, err := DataBounds(series)
	if err != nil {
		return nil, f, err
	}
	q, err := layout.Classify(image.Pt(bounds.XMin, bounds.YMin), image.Pt(bounds.XMax, bounds.YMax))
	if err != nil {
		return nil, f, err
	}
	strategy := layout.StrategyFor(q)
	log.Info("data classified", "quadrant", q, "bounds", fmt.Sprintf("%+v", bounds))

	inc, err := chart.DrawYAxisLabel(c, ts, strategy, cfg.YAxisLabel, sizes.AxisLabel, space)
	if err != nil {
		return nil, f, fmt.Errorf("y axis label: %w", err)
	}
	space = space.Add(inc)
	inc, err = chart.DrawXAxisLabel(c, ts, strategy, cfg.XAxisLabel, sizes.AxisLabel, space)
	if err != nil {
		return nil, f, fmt.Errorf("x axis label: %w", err)
	}
	space = space.Add(inc)

	xLim := [2]int{bounds.XMin, bounds.XMax}
	yLim := [2]int{bounds.YMin, bounds.YMax}
	space = space.Add(chart.TickLabelReservation(ts, strategy, xLim, yLim,
		cfg.XAxisResolution, cfg.YAxisResolution, sizes.AxisUnit))

	area, err := space.Interior(w, h)
	if err != nil {
		return nil, f, err
	}
	xAxis, yAxis, err := layout.ComputeAxes(strategy, area, cfg.XAxisResolution, cfg.YAxisResolution, xLim, yLim)
	if err != nil {
		return nil, f, err
	}
	log.Debug("plot area", "space", space, "area", area)
	f = frame{quadrant: q, x: xAxis, y: yAxis}

	axes := chart.DefaultAxesOptions(sizes.AxisUnit)
	axes.Grid = cfg.HasGrid
	chart.DrawAxes(c, ts, strategy, xAxis, yAxis, axes)

	m := chart.NewMapper(xAxis, yAxis)
	for _, s := range series {
		if s.DataSet.BestFit == nil {
			continue
		}
		fit, err := s.DataSet.BestFit.Fit()
		if err != nil {
			return nil, f, err
		}
		pts, err := chart.Sample(fit,
			float64(xAxis.Limits[0]), float64(xAxis.Limits[1]),
			float64(yAxis.Limits[0]), float64(yAxis.Limits[1]),
			float64(w))
		if err != nil {
			return nil, f, fmt.Errorf("best fit for %q: %w", s.DataSet.Name, err)
		}
		log.Debug("best fit sampled", "data_set", s.DataSet.Name, "curve", fit.Curve, "points", len(pts))
		chart.DrawPoints(c, m, pts)
	}

	for _, s := range series {
		chart.DrawPoints(c, m, s.Points)
	}

	c.FillTransparentWithWhite()
	log.Info("chart rendered", "title", cfg.Title, "width", w, "height", h)
	return c, f, nil
}

// legendFields lists one legend row per data set, in config order.
func legendFields(cfg *Config) []chart.LegendField {
	fields := make([]chart.LegendField, 0, len(cfg.DataSets))
	for _, ds := range cfg.DataSets {
		col, sym, err := ds.Style()
		if err != nil {
			continue
		}
		fields = append(fields, chart.LegendField{
			Name:      ds.Name,
			Symbol:    sym,
			Radius:    ds.SymbolRadius,
			Thickness: ds.SymbolThickness,
			Colour:    col,
		})
	}
	return fields
}
