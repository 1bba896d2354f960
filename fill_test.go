package godrawing

import "testing"

func TestFillTypeDefault(t *testing.T) {
	r := NewRectangle()
	if ft := r.GetFill().GetFillType(); ft != FillSolid {
		t.Errorf("GetFillType on unset property = %d, want solid", ft)
	}

	r.GetFill().SetFillType(FillShade)
	if ft := r.GetFill().GetFillType(); ft != FillShade {
		t.Errorf("GetFillType = %d, want shade", ft)
	}
}

func TestFillForegroundDefaultNone(t *testing.T) {
	r := NewRectangle()
	if _, ok := r.GetFillColor(); ok {
		t.Error("GetFillColor on unset properties reported a color")
	}
}

func TestFillForegroundRoundTrip(t *testing.T) {
	c := NewColor("20A060")
	r := NewRectangle()
	r.SetFillColor(&c)

	got, ok := r.GetFillColor()
	if !ok {
		t.Fatal("GetFillColor reported no color after write")
	}
	if got.GetRed() != 0x20 || got.GetGreen() != 0xA0 || got.GetBlue() != 0x60 {
		t.Errorf("GetFillColor = %q, want RGB 20A060", got.ARGB)
	}

	flags, _ := r.GetProperties().GetSimple(PropFillNoFillHitTest)
	if flags != 0x150011 {
		t.Errorf("fill flags = %#x, want 0x150011", flags)
	}
}

func TestFillForegroundWriteNil(t *testing.T) {
	c := ColorGreen
	r := NewRectangle()
	r.SetFillColor(&c)
	r.SetFillColor(nil)

	if _, ok := r.GetFillColor(); ok {
		t.Error("GetFillColor after nil write reported a color")
	}
	flags, _ := r.GetProperties().GetSimple(PropFillNoFillHitTest)
	if flags != 0x150000 {
		t.Errorf("disabled fill flags = %#x, want 0x150000", flags)
	}
	if raw, ok := r.GetProperties().GetSimple(PropFillColor); !ok || raw != packColor(ColorGreen) {
		t.Errorf("fill color property after nil write = (%#x, %v), want previous packed value", raw, ok)
	}
}

func TestFillForegroundIndexed(t *testing.T) {
	sheet := NewSheet()
	sheet.SetColorScheme(NewColorScheme(
		packColor(ColorBlack),
		packColor(ColorYellow),
	))

	r := NewRectangle()
	sheet.AddShape(r)
	r.GetProperties().SetSimple(PropFillColor, schemeColorBase+1)
	r.GetProperties().SetSimple(PropFillNoFillHitTest, 0x150011)

	got, ok := r.GetFillColor()
	if !ok {
		t.Fatal("GetFillColor reported no color")
	}
	if got.GetRed() != 0xFF || got.GetGreen() != 0xFF || got.GetBlue() != 0 {
		t.Errorf("resolved fill color = %q, want yellow", got.ARGB)
	}
}

func TestFillBackgroundRoundTrip(t *testing.T) {
	r := NewRectangle()
	if _, ok := r.GetFill().GetBackgroundColor(); ok {
		t.Error("GetBackgroundColor on unset property reported a color")
	}

	r.GetFill().SetBackgroundColor(NewColor("334455"))
	got, ok := r.GetFill().GetBackgroundColor()
	if !ok {
		t.Fatal("GetBackgroundColor reported no color after write")
	}
	if got.GetRed() != 0x33 || got.GetGreen() != 0x44 || got.GetBlue() != 0x55 {
		t.Errorf("GetBackgroundColor = %q, want RGB 334455", got.ARGB)
	}
}
