package godrawing

// Line dash patterns stored in PropLineDashing.
const (
	LineDashSolid             int32 = 1
	LineDashSystemDash        int32 = 2
	LineDashSystemDot         int32 = 3
	LineDashSystemDashDot     int32 = 4
	LineDashSystemDashDotDot  int32 = 5
	LineDashDotGEL            int32 = 6
	LineDashDash              int32 = 7
	LineDashLongDashGEL       int32 = 8
	LineDashDashDotGEL        int32 = 9
	LineDashLongDashDotGEL    int32 = 10
	LineDashLongDashDotDotGEL int32 = 11
)

// Line compound styles stored in PropLineStyle.
const (
	LineStyleSimple    int32 = 1
	LineStyleDouble    int32 = 2
	LineStyleThickThin int32 = 3
	LineStyleThinThick int32 = 4
	LineStyleTriple    int32 = 5
)

// lineDefaultSentinel is the raw value the solid/simple defaults are written
// as. It is stored, never collapsed into absence.
const lineDefaultSentinel int32 = -1

// Presence and write patterns for the line color flags property. Bits 0x08
// and 0x10 indicate that a line color is present; the enabled/disabled
// patterns depend only on whether a color or nil is being written.
const (
	lineColorPresentMask   int32 = 0x18
	lineColorEnabledFlags  int32 = 0x180018
	lineColorDisabledFlags int32 = 0x80000
)

// GetLineWidth returns the width of the line in points, or 0 when unset.
func (s *SimpleShape) GetLineWidth() float64 {
	v, ok := s.properties.GetSimple(PropLineWidth)
	if !ok {
		return 0
	}
	return float64(v) / emuPerPoint
}

// SetLineWidth sets the width of the line in points. The stored EMU value
// is truncated to a whole unit.
func (s *SimpleShape) SetLineWidth(points float64) *SimpleShape {
	s.properties.SetSimple(PropLineWidth, int32(points*emuPerPoint))
	return s
}

// GetLineDashing returns the line dash pattern, one of the LineDash
// constants. Unset and sentinel-stored values both read as LineDashSolid.
func (s *SimpleShape) GetLineDashing() int32 {
	v, ok := s.properties.GetSimple(PropLineDashing)
	if !ok || v == lineDefaultSentinel {
		return LineDashSolid
	}
	return v
}

// SetLineDashing sets the line dash pattern. LineDashSolid is stored as the
// -1 sentinel; any other pattern is stored verbatim.
func (s *SimpleShape) SetLineDashing(pattern int32) *SimpleShape {
	if pattern == LineDashSolid {
		pattern = lineDefaultSentinel
	}
	s.properties.SetSimple(PropLineDashing, pattern)
	return s
}

// GetLineStyle returns the compound line style, one of the LineStyle
// constants. Unset and sentinel-stored values both read as LineStyleSimple.
func (s *SimpleShape) GetLineStyle() int32 {
	v, ok := s.properties.GetSimple(PropLineStyle)
	if !ok || v == lineDefaultSentinel {
		return LineStyleSimple
	}
	return v
}

// SetLineStyle sets the compound line style. LineStyleSimple is stored as
// the -1 sentinel; any other style is stored verbatim.
func (s *SimpleShape) SetLineStyle(style int32) *SimpleShape {
	if style == LineStyleSimple {
		style = lineDefaultSentinel
	}
	s.properties.SetSimple(PropLineStyle, style)
	return s
}

// GetLineColor returns the line color. The second result is false when no
// line color is present. Indexed color values are resolved through the
// sheet's color scheme when one is reachable; otherwise the raw value is
// used as-is.
func (s *SimpleShape) GetLineColor() (Color, bool) {
	flags, _ := s.properties.GetSimple(PropLineNoLineDrawDash)
	if flags&lineColorPresentMask == 0 {
		return Color{}, false
	}
	raw, _ := s.properties.GetSimple(PropLineColor)
	return s.resolveColor(raw), true
}

// SetLineColor sets the line color. A nil color marks the line as having no
// color by writing only the flags property; the color property is left
// untouched. A non-nil color writes both the packed color value and the
// enabled flag pattern. Writes are last-write-wins and do not consult prior
// state.
func (s *SimpleShape) SetLineColor(c *Color) *SimpleShape {
	if c == nil {
		s.properties.SetSimple(PropLineNoLineDrawDash, lineColorDisabledFlags)
		return s
	}
	s.properties.SetSimple(PropLineColor, packColor(*c))
	s.properties.SetSimple(PropLineNoLineDrawDash, lineColorEnabledFlags)
	return s
}

// GetFillColor returns the color used to fill this shape.
func (s *SimpleShape) GetFillColor() (Color, bool) {
	return s.GetFill().GetForegroundColor()
}

// SetFillColor sets the color used to fill this shape.
func (s *SimpleShape) SetFillColor(c *Color) *SimpleShape {
	s.GetFill().SetForegroundColor(c)
	return s
}

// GetRotation returns the shape's rotation angle in whole degrees: the
// stored 16.16 fixed-point value truncated and reduced modulo 360. Negative
// stored angles yield negative results; the value is not canonicalized into
// [0,360).
func (b *BaseShape) GetRotation() int {
	raw, ok := b.properties.GetSimple(PropTransformRotation)
	if !ok {
		return 0
	}
	return fromFixedAngle(raw) % 360
}

// SetRotation sets the rotation angle in whole degrees.
func (b *BaseShape) SetRotation(degrees int) *BaseShape {
	b.properties.SetSimple(PropTransformRotation, toFixedAngle(degrees))
	return b
}

// GetFlipHorizontal reports whether the shape is flipped horizontally.
func (b *BaseShape) GetFlipHorizontal() bool {
	return b.flags&FlagFlipHorizontal != 0
}

// SetFlipHorizontal controls horizontal flipping.
func (b *BaseShape) SetFlipHorizontal(flip bool) *BaseShape {
	if flip {
		b.flags |= FlagFlipHorizontal
	} else {
		b.flags &^= FlagFlipHorizontal
	}
	return b
}

// GetFlipVertical reports whether the shape is flipped vertically.
func (b *BaseShape) GetFlipVertical() bool {
	return b.flags&FlagFlipVertical != 0
}

// SetFlipVertical controls vertical flipping.
func (b *BaseShape) SetFlipVertical(flip bool) *BaseShape {
	if flip {
		b.flags |= FlagFlipVertical
	} else {
		b.flags &^= FlagFlipVertical
	}
	return b
}

// resolveColor applies the indexed-color rule to a raw packed value: values
// at or above schemeColorBase reference the sheet's color scheme by
// index = value mod schemeColorBase. Resolution is skipped, and the raw
// value used unresolved, when no scheme is reachable or the index falls
// outside the table.
func (b *BaseShape) resolveColor(raw int32) Color {
	if raw >= schemeColorBase {
		idx := raw % schemeColorBase
		if b.sheet != nil {
			if scheme := b.sheet.GetColorScheme(); scheme != nil {
				if v, err := scheme.Color(int(idx)); err == nil {
					raw = v
				}
			}
		}
	}
	return unpackColor(raw)
}
