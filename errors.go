package gplot

import "errors"

// Sentinel errors for the registry lookups.
var (
	// ErrUnknownColour is returned for colour names and hex strings that do
	// not resolve.
	ErrUnknownColour = errors.New("gplot: unknown colour")

	// ErrUnknownSymbol is returned for symbol names with no footprint.
	ErrUnknownSymbol = errors.New("gplot: unknown symbol")
)
