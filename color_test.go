package godrawing

import (
	"errors"
	"testing"
)

func TestNewColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FF0000", "FFFF0000"},
		{"#00FF00", "FF00FF00"},
		{"80123456", "80123456"},
		{"80abcdef", "80ABCDEF"},
		{"bogus", "FF000000"},
		{"", "FF000000"},
	}
	for _, tt := range tests {
		if got := NewColor(tt.in); got.ARGB != tt.want {
			t.Errorf("NewColor(%q).ARGB = %q, want %q", tt.in, got.ARGB, tt.want)
		}
	}
}

func TestColorComponents(t *testing.T) {
	c := NewColor("80112233")
	if c.GetAlpha() != 0x80 || c.GetRed() != 0x11 || c.GetGreen() != 0x22 || c.GetBlue() != 0x33 {
		t.Errorf("components of %q = (%d,%d,%d,%d)", c.ARGB,
			c.GetAlpha(), c.GetRed(), c.GetGreen(), c.GetBlue())
	}

	rgba := c.ToRGBA()
	if rgba.R != 0x11 || rgba.G != 0x22 || rgba.B != 0x33 || rgba.A != 0x80 {
		t.Errorf("ToRGBA = %+v", rgba)
	}
}

func TestNewColorRGB(t *testing.T) {
	c := NewColorRGB(0xAB, 0x00, 0x7F)
	if c.ARGB != "FFAB007F" {
		t.Errorf("NewColorRGB ARGB = %q, want FFAB007F", c.ARGB)
	}
}

func TestPackColorStoredOrder(t *testing.T) {
	// Stored order is blue/green/red: pure red occupies the low byte.
	if v := packColor(ColorRed); v != 0x0000FF {
		t.Errorf("packColor(red) = %#x, want 0xFF", v)
	}
	if v := packColor(ColorBlue); v != 0xFF0000 {
		t.Errorf("packColor(blue) = %#x, want 0xFF0000", v)
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	colors := []Color{ColorBlack, ColorWhite, ColorRed, ColorGreen, ColorBlue, NewColor("123456")}
	for _, c := range colors {
		got := unpackColor(packColor(c))
		if got.GetRed() != c.GetRed() || got.GetGreen() != c.GetGreen() || got.GetBlue() != c.GetBlue() {
			t.Errorf("round trip of %q produced %q", c.ARGB, got.ARGB)
		}
	}
}

func TestColorSchemeLookup(t *testing.T) {
	cs := NewColorScheme(0x111111, 0x222222, 0x333333)

	v, err := cs.Color(1)
	if err != nil || v != 0x222222 {
		t.Errorf("Color(1) = (%#x, %v), want (0x222222, nil)", v, err)
	}

	for _, idx := range []int{-1, 3, 7, 8, 100} {
		if _, err := cs.Color(idx); !errors.Is(err, ErrInvalidColorIndex) {
			t.Errorf("Color(%d) error = %v, want ErrInvalidColorIndex", idx, err)
		}
	}
}

func TestColorSchemeTruncatesAtEight(t *testing.T) {
	cs := NewColorScheme(0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if cs.Len() != 8 {
		t.Errorf("Len = %d, want 8", cs.Len())
	}
	if v, err := cs.Color(7); err != nil || v != 7 {
		t.Errorf("Color(7) = (%d, %v), want (7, nil)", v, err)
	}
}
