package gplot

import (
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit components.
func RGB8(r, g, b uint8) RGBA {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'.
func Hex(hex string) (RGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex accumulates hex digits into val and reports whether every
// character was a hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Grey        = RGB8(190, 190, 190)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Orange      = RGB8(255, 146, 0)
	Pink        = RGB8(255, 169, 208)
	Yellow      = RGB(1, 1, 0)
	Purple      = RGB8(128, 0, 128)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Brown       = RGB8(139, 69, 19)
	Transparent = RGBA{}
)

var namedColours = map[string]RGBA{
	"black":   Black,
	"white":   White,
	"grey":    Grey,
	"gray":    Grey,
	"red":     Red,
	"green":   Green,
	"blue":    Blue,
	"orange":  Orange,
	"pink":    Pink,
	"yellow":  Yellow,
	"purple":  Purple,
	"cyan":    Cyan,
	"magenta": Magenta,
	"brown":   Brown,
}

// ParseColour resolves a colour name (case-insensitive) or a hex string.
func ParseColour(s string) (RGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColours[name]; ok {
		return c, nil
	}
	if strings.HasPrefix(name, "#") {
		return Hex(name)
	}
	return RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, s)
}

// ColourNames returns the registered colour names in sorted order.
func ColourNames() []string {
	names := make([]string, 0, len(namedColours))
	for n := range namedColours {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
