package scatter

import (
	"errors"
	"fmt"
)

// Sentinel errors for scatter package.
var (
	// ErrInvalidConfig is wrapped by every configuration problem.
	ErrInvalidConfig = errors.New("scatter: invalid config")

	// ErrBestFitKind is returned for unknown best-fit kinds or parameters
	// outside what a kind accepts.
	ErrBestFitKind = errors.New("scatter: unsupported best fit")

	// ErrNoData is returned when the data sets hold no points at all.
	ErrNoData = errors.New("scatter: no data points")

	// ErrNonFiniteValue is returned for NaN or infinite CSV values.
	ErrNonFiniteValue = errors.New("scatter: value is not finite")

	// ErrDataRange is returned when data bounds cannot be represented in
	// integer axis limits.
	ErrDataRange = errors.New("scatter: data out of range")
)

// ConfigError names the offending config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("scatter: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
