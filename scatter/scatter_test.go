package scatter

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/gplot"
	"github.com/gogpu/gplot/chart"
	"github.com/gogpu/gplot/internal/csvdata"
	"github.com/gogpu/gplot/layout"
)

// countRGB counts canvas pixels with exactly the given colour.
func countRGB(c *gplot.Canvas, r, g, b uint8) int {
	n := 0
	d := c.Data()
	for i := 0; i+3 < len(d); i += 4 {
		if d[i] == r && d[i+1] == g && d[i+2] == b {
			n++
		}
	}
	return n
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load("testdata/squares.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Squares", cfg.Title)
	assert.Equal(t, []int{800, 600}, cfg.CanvasPixelSize)
	assert.Equal(t, 5, cfg.XAxisResolution)
	assert.Equal(t, 5, cfg.YAxisResolution)
	require.Len(t, cfg.DataSets, 1)

	ds := cfg.DataSets[0]
	assert.Equal(t, "squares.csv", ds.DataPath)
	assert.Equal(t, 1, ds.YColumn)
	assert.Nil(t, ds.XErrorColumn)
	assert.Nil(t, ds.BestFit)
	require.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	cfg, err := Load("testdata/signed.toml")
	require.NoError(t, err)

	assert.True(t, cfg.HasGrid)
	assert.True(t, cfg.HasLegend)
	require.Len(t, cfg.DataSets, 2)

	ds := cfg.DataSets[0]
	assert.True(t, ds.HasHeaders)
	require.NotNil(t, ds.XErrorColumn)
	require.NotNil(t, ds.YErrorColumn)
	assert.Equal(t, 2, *ds.XErrorColumn)
	assert.Equal(t, 3, *ds.YErrorColumn)
	require.NotNil(t, ds.BestFit)
	assert.Equal(t, "quadratic", ds.BestFit.Kind)
	assert.Equal(t, -5.0, ds.BestFit.C)
	assert.Nil(t, cfg.DataSets[1].BestFit)
	require.NoError(t, cfg.Validate())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("testdata/unknown_key.yaml")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load("testdata/missing.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg, err := Load("testdata/bad.yaml")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	var ce *ConfigError
	require.ErrorAs(t, err, &ce)

	for _, field := range []string{
		"title",
		"canvas_pixel_size",
		"x_axis_resolution",
		"data_sets[0].x_axis_csv_column",
		"data_sets[0].colour",
		"data_sets[0].symbol",
		"data_sets[0].best_fit",
	} {
		assert.Contains(t, err.Error(), "scatter: "+field+":")
	}
	assert.NotContains(t, err.Error(), "y_axis_resolution")
}

func TestValidateEmptyDataSets(t *testing.T) {
	cfg := &Config{
		Title:           "Empty",
		CanvasPixelSize: []int{100, 100},
		XAxisResolution: 1,
		YAxisResolution: 1,
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "data_sets")
}

func TestValidateSymbolSize(t *testing.T) {
	cfg := &Config{
		Title:           "Huge symbols",
		CanvasPixelSize: []int{800, 600},
		XAxisResolution: 1,
		YAxisResolution: 1,
		DataSets: []DataSet{{
			DataPath:        "squares.csv",
			YColumn:         1,
			Colour:          "red",
			Symbol:          "cross",
			SymbolRadius:    1000,
			SymbolThickness: 1000,
		}},
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "data_sets[0].symbol_radius")
	assert.Contains(t, err.Error(), "data_sets[0].symbol_thickness")

	cfg.DataSets[0].SymbolRadius = gplot.MaxSymbolRadius
	cfg.DataSets[0].SymbolThickness = gplot.MaxSymbolThickness
	assert.NoError(t, cfg.Validate())
}

func TestBestFitKinds(t *testing.T) {
	tests := []struct {
		name    string
		fit     BestFit
		want    chart.Curve
		wantErr error
	}{
		{"linear", BestFit{Kind: "linear", Colour: "red", Gradient: 2, Intercept: 1},
			chart.Linear{Gradient: 2, Intercept: 1}, nil},
		{"quadratic", BestFit{Kind: "Quadratic", Colour: "red", A: 1, B: 2, C: 3},
			chart.Quadratic{A: 1, B: 2, C: 3}, nil},
		{"cubic", BestFit{Kind: "cubic", Colour: "red", A: 1, B: 2, C: 3, D: 4},
			chart.Cubic{A: 1, B: 2, C: 3, D: 4}, nil},
		{"polynomial", BestFit{Kind: "polynomial", Colour: "red", Terms: []Term{{0, 1}, {3, 2}, {3, 1}}},
			chart.Polynomial{Coefficients: map[int]float64{0: 1, 3: 3}}, nil},
		{"exponential", BestFit{Kind: "exponential", Colour: "red", Constant: 1, Base: 2, Power: 1},
			chart.Exponential{Constant: 1, Base: 2, Power: 1}, nil},
		{"sine", BestFit{Kind: "sine", Colour: "red", Amplitude: 1, Period: 4},
			chart.Sine{Amplitude: 1, Period: 4}, nil},
		{"cosine", BestFit{Kind: "cosine", Colour: "red", Amplitude: 1, Period: 4, Shift: 1},
			chart.Cosine{Amplitude: 1, Period: 4, Shift: 1}, nil},
		{"unknown kind", BestFit{Kind: "spline", Colour: "red"}, nil, ErrBestFitKind},
		{"negative power", BestFit{Kind: "polynomial", Colour: "red", Terms: []Term{{-1, 1}}}, nil, ErrBestFitKind},
		{"zero base", BestFit{Kind: "exponential", Colour: "red"}, nil, chart.ErrNonPositiveBase},
		{"zero period", BestFit{Kind: "cosine", Colour: "red"}, nil, chart.ErrZeroPeriod},
		{"bad colour", BestFit{Kind: "linear", Colour: "nope"}, nil, gplot.ErrUnknownColour},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fit.Fit()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Curve)
			assert.Equal(t, gplot.Red, got.Colour)
		})
	}
}

func TestExpand(t *testing.T) {
	tests := []struct {
		v        float64
		min, max int
	}{
		{0, 0, 0},
		{1, 0, 2},
		{3, 2, 4},
		{20, 18, 22},
		{-3, -4, -2},
		{-5, -6, -4},
		{-0.5, -1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.min, ExpandMin(tt.v), "ExpandMin(%v)", tt.v)
		assert.Equal(t, tt.max, ExpandMax(tt.v), "ExpandMax(%v)", tt.v)
	}
}

func TestDataBounds(t *testing.T) {
	series := []Series{
		{Points: []chart.DataPoint{{X: 1, Y: -3}, {X: 3, Y: 20}}},
		{Points: []chart.DataPoint{{X: -0.5, Y: 0}}},
	}
	b, err := DataBounds(series)
	require.NoError(t, err)
	assert.Equal(t, Bounds{XMin: -1, XMax: 4, YMin: -4, YMax: 22}, b)

	_, err = DataBounds([]Series{{}})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = DataBounds([]Series{{Points: []chart.DataPoint{{X: 1e300, Y: 1}}}})
	assert.ErrorIs(t, err, ErrDataRange)
}

func TestLoadSeries(t *testing.T) {
	cfg, err := Load("testdata/signed.toml")
	require.NoError(t, err)

	series, err := LoadSeries(cfg, WithBaseDir("testdata"), WithDelimiter(';'))
	require.NoError(t, err)
	require.Len(t, series, 2)

	first := series[0].Points
	require.Len(t, first, 11)
	assert.Equal(t, -10.0, first[0].X)
	assert.Equal(t, 5.0, first[0].Y)
	require.NotNil(t, first[0].XError)
	require.NotNil(t, first[0].YError)
	assert.Equal(t, 0.5, *first[0].XError)
	assert.Equal(t, 1.0, *first[0].YError)
	assert.Equal(t, gplot.Circle, first[0].Symbol)
	assert.Equal(t, gplot.Blue, first[0].Colour)

	second := series[1].Points
	require.Len(t, second, 11)
	assert.Nil(t, second[0].XError)
	assert.Equal(t, gplot.Triangle, second[0].Symbol)
}

func TestLoadSeriesErrors(t *testing.T) {
	cfg, err := Load("testdata/squares.yaml")
	require.NoError(t, err)

	cfg.DataSets[0].YColumn = 4
	_, err = LoadSeries(cfg, WithBaseDir("testdata"))
	var ce *csvdata.CellError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 1, ce.Line)
	assert.ErrorIs(t, err, csvdata.ErrMissingColumn)

	// The header row of signed.csv is not numeric.
	cfg, err = Load("testdata/signed.toml")
	require.NoError(t, err)
	cfg.DataSets[0].HasHeaders = false
	_, err = LoadSeries(cfg, WithBaseDir("testdata"), WithDelimiter(';'))
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "x", ce.Value)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		title, want string
	}{
		{"Squares", "squares"},
		{"Signed Parabola (fit)", "signed_parabola__fit_"},
		{"a-b.c", "a_b_c"},
		{"Über Chart 2", "über_chart_2"},
		{"snake_case", "snake_case"},
		{"tab\there", "tab_here"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slug(tt.title), "Slug(%q)", tt.title)
	}
}

func TestRenderSquares(t *testing.T) {
	cfg, err := Load("testdata/squares.yaml")
	require.NoError(t, err)

	c, err := Render(cfg, WithBaseDir("testdata"))
	require.NoError(t, err)

	assert.Equal(t, 800, c.Width())
	assert.Equal(t, 600, c.Height())
	assert.Equal(t, gplot.White, c.Pixel(0, 0))
	assert.Equal(t, gplot.White, c.Pixel(799, 599))
	assert.Positive(t, countRGB(c, 255, 0, 0), "no red data points drawn")

	d := c.Data()
	for i := 3; i < len(d); i += 4 {
		if d[i] != 255 {
			t.Fatalf("pixel %d has alpha %d, want opaque", i/4, d[i])
		}
	}
}

func TestRenderThreePoints(t *testing.T) {
	cfg, err := Load("testdata/three.yaml")
	require.NoError(t, err)

	o := defaultOptions()
	o.baseDir = "testdata"
	c, f, err := render(cfg, o)
	require.NoError(t, err)

	assert.Equal(t, layout.TopRight, f.quadrant)
	assert.Equal(t, [2]int{0, 4}, f.x.Limits)
	assert.Equal(t, [2]int{0, 10}, f.y.Limits)
	// The axes meet at the bottom-left corner of the plot area.
	assert.Equal(t, f.x.MinPixel, f.x.OriginPixel)
	assert.Equal(t, f.y.MinPixel, f.y.OriginPixel)
	assert.Greater(t, f.y.MinPixel, f.y.MaxPixel)
	assert.Zero(t, f.x.Length%cfg.XAxisResolution)
	assert.Zero(t, f.y.Length%cfg.YAxisResolution)

	m := chart.NewMapper(f.x, f.y)
	seen := map[[2]int]bool{}
	for _, p := range [][2]float64{{1, 1}, {2, 4}, {3, 9}} {
		px := m.ToPixel(p[0], p[1])
		assert.Equal(t, gplot.Purple, c.Pixel(px.X, px.Y), "point %v at %v", p, px)
		seen[[2]int{px.X, px.Y}] = true
	}
	assert.Len(t, seen, 3)
	assert.Equal(t, 3, countRGB(c, 128, 0, 128))
}

func TestRenderSignedWithFit(t *testing.T) {
	cfg, err := Load("testdata/signed.toml")
	require.NoError(t, err)

	c, err := Render(cfg, WithBaseDir("testdata"), WithDelimiter(';'))
	require.NoError(t, err)

	assert.Positive(t, countRGB(c, 255, 146, 0), "best fit not drawn")
	assert.Positive(t, countRGB(c, 0, 0, 255), "measured points not drawn")
	assert.Positive(t, countRGB(c, 0, 255, 0), "spread points not drawn")
	assert.Positive(t, countRGB(c, 190, 190, 190), "grid not drawn")
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(&Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg, err := Load("testdata/squares.yaml")
	require.NoError(t, err)
	cfg.CanvasPixelSize = []int{30, 30}
	_, err = Render(cfg, WithBaseDir("testdata"))
	assert.ErrorIs(t, err, layout.ErrNoSpace)

	cfg, err = Load("testdata/squares.yaml")
	require.NoError(t, err)
	_, err = Render(cfg, WithBaseDir(t.TempDir()))
	assert.True(t, errors.Is(err, os.ErrNotExist), "got %v", err)
}

func TestBuild(t *testing.T) {
	out := filepath.Join(t.TempDir(), "charts", "nested")

	path, err := Build("testdata/squares.yaml", out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "squares.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestBuildTOML(t *testing.T) {
	out := t.TempDir()

	path, err := Build("testdata/signed.toml", out, WithDelimiter(';'))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "signed_parabola__fit_.png"), path)
	assert.FileExists(t, path)

	_, err = Build("testdata/bad.yaml", out)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
