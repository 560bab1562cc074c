package scatter

import (
	"github.com/gogpu/gplot/text"
)

// Option configures Render and Build.
//
// Example:
//
//	// Semicolon separated data, CSV paths relative to ./data
//	c, err := scatter.Render(cfg,
//		scatter.WithDelimiter(';'),
//		scatter.WithBaseDir("data"))
type Option func(*options)

// options holds optional configuration for a render.
type options struct {
	delimiter rune
	font      *text.FontSource
	baseDir   string
}

// defaultOptions returns the default render options.
func defaultOptions() options {
	return options{
		delimiter: ',',
		font:      nil, // text.Default() if nil
		baseDir:   "",  // the working directory, or the config's directory in Build
	}
}

// WithDelimiter sets the field separator used for every data file.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		o.delimiter = r
	}
}

// WithFontSource renders all text with fs instead of the embedded Go font.
func WithFontSource(fs *text.FontSource) Option {
	return func(o *options) {
		o.font = fs
	}
}

// WithBaseDir resolves relative data paths against dir.
func WithBaseDir(dir string) Option {
	return func(o *options) {
		o.baseDir = dir
	}
}
