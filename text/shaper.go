package text

import (
	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Glyph is a shaped glyph positioned relative to the start of the run's
// baseline. Y grows downward.
type Glyph struct {
	ID      sfnt.GlyphIndex
	Cluster int
	X, Y    float64
	Advance float64
}

// Shape converts s into positioned glyphs at size pixels per em using
// HarfBuzz shaping, so kerning pairs and ligatures are honoured.
func (fs *FontSource) Shape(s string, size float64) []Glyph {
	if s == "" || size <= 0 {
		return nil
	}
	runes := []rune(s)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(fs.shaping),
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := fs.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	fs.shaperPool.Put(hb)

	glyphs := make([]Glyph, len(out.Glyphs))
	var pen float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID), //nolint:gosec // sfnt glyph ids are 16-bit
			Cluster: g.TextIndex(),
			X:       pen + fixedToFloat(g.XOffset),
			// Shaper offsets are y-up.
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		pen += adv
	}
	return glyphs
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
