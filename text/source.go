package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource is a parsed font shared by every text stage of a render.
// It holds two views of the same bytes: the go-text font used for shaping
// and the sfnt font used for glyph outlines.
//
// FontSource is safe for concurrent use.
type FontSource struct {
	data []byte
	name string

	outlines *sfnt.Font
	shaping  *gtfont.Font

	// HarfbuzzShaper keeps a mutable buffer, so instances are pooled.
	shaperPool sync.Pool

	runs *runCache
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	outlines, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:     dataCopy,
		outlines: outlines,
		shaping:  face.Font,
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		runs: newRunCache(runCacheLimit),
	}
	if name, err := outlines.Name(nil, sfnt.NameIDFamily); err == nil {
		s.name = name
	}
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var defaultSource = sync.OnceValues(func() (*FontSource, error) {
	return NewFontSource(goregular.TTF)
})

// Default returns the embedded Go Regular font, parsed once per process.
func Default() (*FontSource, error) {
	return defaultSource()
}

// Name returns the font family name, or "" when the font has none.
func (s *FontSource) Name() string {
	return s.name
}
