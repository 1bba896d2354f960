package godrawing

import (
	"image/color"
	"strings"
)

// Color represents an ARGB color.
type Color struct {
	ARGB string // 8-character hex string, e.g., "FF000000" for black
}

// Predefined colors.
var (
	ColorBlack  = Color{ARGB: "FF000000"}
	ColorWhite  = Color{ARGB: "FFFFFFFF"}
	ColorRed    = Color{ARGB: "FFFF0000"}
	ColorGreen  = Color{ARGB: "FF00FF00"}
	ColorBlue   = Color{ARGB: "FF0000FF"}
	ColorYellow = Color{ARGB: "FFFFFF00"}
)

// NewColor creates a new Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return Color{ARGB: "FF000000"} // fallback to black
	}
	return Color{ARGB: argb}
}

// NewColorRGB creates a fully opaque Color from red, green and blue
// components.
func NewColorRGB(r, g, b uint8) Color {
	const hex = "0123456789ABCDEF"
	buf := []byte{'F', 'F', 0, 0, 0, 0, 0, 0}
	for i, v := range [3]uint8{r, g, b} {
		buf[2+i*2] = hex[v>>4]
		buf[3+i*2] = hex[v&0x0F]
	}
	return Color{ARGB: string(buf)}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// GetRed returns the red component (0-255).
func (c Color) GetRed() uint8 {
	return parseHexByte(c.ARGB, 2)
}

// GetGreen returns the green component (0-255).
func (c Color) GetGreen() uint8 {
	return parseHexByte(c.ARGB, 4)
}

// GetBlue returns the blue component (0-255).
func (c Color) GetBlue() uint8 {
	return parseHexByte(c.ARGB, 6)
}

// GetAlpha returns the alpha component (0-255).
func (c Color) GetAlpha() uint8 {
	return parseHexByte(c.ARGB, 0)
}

// ToRGBA converts the color to a standard library RGBA value for handoff to
// a rendering backend.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: c.GetRed(),
		G: c.GetGreen(),
		B: c.GetBlue(),
		A: c.GetAlpha(),
	}
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// Color-valued properties store their components in reversed order: the low
// byte is red, the high byte blue.

// packColor encodes a color into the stored blue/green/red order.
func packColor(c Color) int32 {
	return int32(c.GetBlue())<<16 | int32(c.GetGreen())<<8 | int32(c.GetRed())
}

// unpackColor decodes a stored blue/green/red value into a Color.
func unpackColor(v int32) Color {
	return NewColorRGB(uint8(v&0xFF), uint8((v>>8)&0xFF), uint8((v>>16)&0xFF))
}

// schemeColorBase is the threshold above which a stored color value is an
// indexed reference into the page's color scheme: index = value mod base.
const schemeColorBase = 0x8000000

// maxSchemeColors is the size of a full color scheme table.
const maxSchemeColors = 8

// ColorScheme is an ordered table of up to 8 theme colors, owned by the
// containing sheet and referenced by index from indexed color properties.
// Entries use the same packed blue/green/red order as color properties.
type ColorScheme struct {
	colors []int32
}

// NewColorScheme creates a color scheme from packed color entries.
// Entries beyond the table size of 8 are discarded.
func NewColorScheme(colors ...int32) *ColorScheme {
	if len(colors) > maxSchemeColors {
		colors = colors[:maxSchemeColors]
	}
	cs := &ColorScheme{colors: make([]int32, len(colors))}
	copy(cs.colors, colors)
	return cs
}

// Color returns the packed entry at idx, or ErrInvalidColorIndex when idx is
// outside the populated table.
func (cs *ColorScheme) Color(idx int) (int32, error) {
	if idx < 0 || idx >= maxSchemeColors || idx >= len(cs.colors) {
		return 0, ErrInvalidColorIndex
	}
	return cs.colors[idx], nil
}

// Len returns the number of populated entries.
func (cs *ColorScheme) Len() int {
	return len(cs.colors)
}
