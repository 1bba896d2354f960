package godrawing

// Fill types stored in PropFillType.
const (
	FillSolid       int32 = 0
	FillPattern     int32 = 1
	FillTexture     int32 = 2
	FillPicture     int32 = 3
	FillShade       int32 = 4
	FillShadeCenter int32 = 5
	FillShadeShape  int32 = 6
	FillShadeScale  int32 = 7
	FillShadeTitle  int32 = 8
	FillBackground  int32 = 9
)

// Presence and write patterns for the fill flags property. Bit 0x10
// indicates that a foreground color is present.
const (
	fillColorPresentMask   int32 = 0x10
	fillColorEnabledFlags  int32 = 0x150011
	fillColorDisabledFlags int32 = 0x150000
)

// Fill provides typed access to a shape's fill properties. It reads and
// writes the shape's own property set; a Fill holds no state of its own.
type Fill struct {
	shape *BaseShape
}

// GetFill returns the fill accessor for this shape.
func (b *BaseShape) GetFill() *Fill {
	return &Fill{shape: b}
}

// GetFillType returns the fill type, one of the Fill constants.
// Unset reads as FillSolid.
func (f *Fill) GetFillType() int32 {
	v, ok := f.shape.properties.GetSimple(PropFillType)
	if !ok {
		return FillSolid
	}
	return v
}

// SetFillType sets the fill type.
func (f *Fill) SetFillType(t int32) *Fill {
	f.shape.properties.SetSimple(PropFillType, t)
	return f
}

// GetForegroundColor returns the foreground fill color. The second result
// is false when no fill color is present. Indexed values resolve through
// the sheet's color scheme the same way line colors do.
func (f *Fill) GetForegroundColor() (Color, bool) {
	flags, _ := f.shape.properties.GetSimple(PropFillNoFillHitTest)
	raw, ok := f.shape.properties.GetSimple(PropFillColor)
	if !ok || flags&fillColorPresentMask == 0 {
		return Color{}, false
	}
	return f.shape.resolveColor(raw), true
}

// SetForegroundColor sets the foreground fill color. A nil color disables
// the fill by writing only the flags property; a non-nil color writes the
// packed value and the enabled flag pattern.
func (f *Fill) SetForegroundColor(c *Color) *Fill {
	if c == nil {
		f.shape.properties.SetSimple(PropFillNoFillHitTest, fillColorDisabledFlags)
		return f
	}
	f.shape.properties.SetSimple(PropFillColor, packColor(*c))
	f.shape.properties.SetSimple(PropFillNoFillHitTest, fillColorEnabledFlags)
	return f
}

// GetBackgroundColor returns the background fill color, used by pattern and
// shaded fills. The second result is false when unset.
func (f *Fill) GetBackgroundColor() (Color, bool) {
	raw, ok := f.shape.properties.GetSimple(PropFillBackColor)
	if !ok {
		return Color{}, false
	}
	return f.shape.resolveColor(raw), true
}

// SetBackgroundColor sets the background fill color.
func (f *Fill) SetBackgroundColor(c Color) *Fill {
	f.shape.properties.SetSimple(PropFillBackColor, packColor(c))
	return f
}
