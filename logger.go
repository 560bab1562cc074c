package gplot

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
)

// discard drops every record and reports every level disabled, so log
// calls on a silent gplot cost no attribute formatting.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// current is shared by every render stage. Renders may log from several
// goroutines while a caller swaps the logger.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the log output of gplot and its sub-packages to l.
// A nil l silences them again, which is also the state at start-up.
//
// Records by level:
//   - [slog.LevelDebug]: quadrant, axis pixels, sampled best-fit points,
//     each pixel dropped outside the canvas
//   - [slog.LevelInfo]: config loaded, data classified, chart rendered and
//     written
//   - [slog.LevelWarn]: a stage that wrote past the canvas edge, with the
//     dropped pixel count
//   - [slog.LevelError]: only from cmd/gplot, once, for the error that
//     ended the run
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger {
	return current.Load()
}

// NewTextLogger returns a logfmt logger writing to w at level. Passing a
// *slog.LevelVar lets the level change after the logger is installed, for
// example once command line flags are parsed.
func NewTextLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
