package chart

import "errors"

// Sentinel errors for chart package.
var (
	// ErrNonPositiveBase is returned for exponential fits whose base is not
	// strictly positive.
	ErrNonPositiveBase = errors.New("chart: exponential base must be positive")

	// ErrZeroPeriod is returned for periodic fits with a zero period.
	ErrZeroPeriod = errors.New("chart: period must be non-zero")

	// ErrSampleScale is returned when a best fit is sampled with a
	// non-positive scale factor or an inverted x range.
	ErrSampleScale = errors.New("chart: invalid sampling range")
)
