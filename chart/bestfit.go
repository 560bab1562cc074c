package chart

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/gogpu/gplot"
)

// maxSamples caps the points produced for a single curve.
const maxSamples = 1 << 20

// Curve is an analytic best-fit function. The set of curves is closed:
// Linear, Quadratic, Cubic, Polynomial, Exponential, Sine and Cosine.
type Curve interface {
	// Eval returns y for x.
	Eval(x float64) float64
	// Validate reports parameters that make the curve undefined.
	Validate() error
	fmt.Stringer
	curve()
}

// Linear is y = Gradient*x + Intercept.
type Linear struct {
	Gradient, Intercept float64
}

// Quadratic is y = A*x² + B*x + C.
type Quadratic struct {
	A, B, C float64
}

// Cubic is y = A*x³ + B*x² + C*x + D.
type Cubic struct {
	A, B, C, D float64
}

// Polynomial is y = Σ Coefficients[p] * x^p.
type Polynomial struct {
	Coefficients map[int]float64
}

// Exponential is y = Constant * Base^(Power*x) + Shift.
type Exponential struct {
	Constant, Base, Power, Shift float64
}

// Sine is y = Amplitude * sin(2πx/Period + Phase) + Shift.
type Sine struct {
	Amplitude, Period, Phase, Shift float64
}

// Cosine is y = Amplitude * cos(2πx/Period + Phase) + Shift.
type Cosine struct {
	Amplitude, Period, Phase, Shift float64
}

func (Linear) curve()      {}
func (Quadratic) curve()   {}
func (Cubic) curve()       {}
func (Polynomial) curve()  {}
func (Exponential) curve() {}
func (Sine) curve()        {}
func (Cosine) curve()      {}

func (f Linear) Eval(x float64) float64 { return f.Gradient*x + f.Intercept }

func (f Quadratic) Eval(x float64) float64 { return (f.A*x+f.B)*x + f.C }

func (f Cubic) Eval(x float64) float64 { return ((f.A*x+f.B)*x+f.C)*x + f.D }

func (f Polynomial) Eval(x float64) float64 {
	var y float64
	for p, c := range f.Coefficients {
		y += c * math.Pow(x, float64(p))
	}
	return y
}

func (f Exponential) Eval(x float64) float64 {
	return f.Constant*math.Pow(f.Base, f.Power*x) + f.Shift
}

func (f Sine) Eval(x float64) float64 {
	return f.Amplitude*math.Sin(2*math.Pi*x/f.Period+f.Phase) + f.Shift
}

func (f Cosine) Eval(x float64) float64 {
	return f.Amplitude*math.Cos(2*math.Pi*x/f.Period+f.Phase) + f.Shift
}

func (Linear) Validate() error     { return nil }
func (Quadratic) Validate() error  { return nil }
func (Cubic) Validate() error      { return nil }
func (Polynomial) Validate() error { return nil }

func (f Exponential) Validate() error {
	if f.Base <= 0 || math.IsNaN(f.Base) {
		return fmt.Errorf("%w: got %v", ErrNonPositiveBase, f.Base)
	}
	return nil
}

func (f Sine) Validate() error {
	if f.Period == 0 {
		return fmt.Errorf("sine: %w", ErrZeroPeriod)
	}
	return nil
}

func (f Cosine) Validate() error {
	if f.Period == 0 {
		return fmt.Errorf("cosine: %w", ErrZeroPeriod)
	}
	return nil
}

func (f Linear) String() string {
	return fmt.Sprintf("y = %gx + %g", f.Gradient, f.Intercept)
}

func (f Quadratic) String() string {
	return fmt.Sprintf("y = %gx² + %gx + %g", f.A, f.B, f.C)
}

func (f Cubic) String() string {
	return fmt.Sprintf("y = %gx³ + %gx² + %gx + %g", f.A, f.B, f.C, f.D)
}

func (f Polynomial) String() string {
	powers := make([]int, 0, len(f.Coefficients))
	for p := range f.Coefficients {
		powers = append(powers, p)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(powers)))
	terms := make([]string, len(powers))
	for i, p := range powers {
		terms[i] = fmt.Sprintf("%gx^%d", f.Coefficients[p], p)
	}
	if len(terms) == 0 {
		return "y = 0"
	}
	return "y = " + strings.Join(terms, " + ")
}

func (f Exponential) String() string {
	return fmt.Sprintf("y = %g·%g^(%gx) + %g", f.Constant, f.Base, f.Power, f.Shift)
}

func (f Sine) String() string {
	return fmt.Sprintf("y = %g·sin(2πx/%g + %g) + %g", f.Amplitude, f.Period, f.Phase, f.Shift)
}

func (f Cosine) String() string {
	return fmt.Sprintf("y = %g·cos(2πx/%g + %g) + %g", f.Amplitude, f.Period, f.Phase, f.Shift)
}

// BestFit is a curve overlaid on a data set.
type BestFit struct {
	Curve  Curve
	Colour gplot.RGBA
}

// Sample evaluates the fit at x = xMin + k/scale for every k that stays
// within xMax, keeping only finite values strictly inside (yMin, yMax).
// Each kept sample becomes a Point symbol in the fit's colour. Domains that
// would need more than maxSamples steps are sampled at a coarser scale so
// the curve still reaches xMax.
func Sample(fit BestFit, xMin, xMax, yMin, yMax, scale float64) ([]DataPoint, error) {
	if err := fit.Curve.Validate(); err != nil {
		return nil, err
	}
	if scale <= 0 || xMax < xMin || math.IsInf(xMax-xMin, 0) {
		return nil, fmt.Errorf("%w: x [%v, %v] at scale %v", ErrSampleScale, xMin, xMax, scale)
	}

	span := xMax - xMin
	if span*scale > maxSamples {
		scale = maxSamples / span
	}
	n := int(math.Floor(span * scale))
	pts := make([]DataPoint, 0, n+1)
	for k := 0; k <= n; k++ {
		x := xMin + float64(k)/scale
		y := fit.Curve.Eval(x)
		if math.IsNaN(y) || math.IsInf(y, 0) || y <= yMin || y >= yMax {
			continue
		}
		pts = append(pts, DataPoint{X: x, Y: y, Colour: fit.Colour, Symbol: gplot.Point})
	}
	return pts, nil
}
