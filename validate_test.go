package godrawing

import (
	"strings"
	"testing"
)

func TestValidateOK(t *testing.T) {
	sheet := NewSheet()
	r := NewRectangle()
	r.SetAnchor(Rect{X: 10, Y: 10, Width: 100, Height: 50})
	sheet.AddShape(r)

	g := NewGroupShape()
	g.SetAnchor(Rect{X: 0, Y: 0, Width: 200, Height: 200})
	g.SetCoordinates(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	child := NewLine()
	child.SetAnchor(Rect{X: 10, Y: 10, Width: 20, Height: 20})
	g.AddShape(child)
	sheet.AddShape(g)

	if err := sheet.Validate(); err != nil {
		t.Errorf("Validate on a well-formed sheet: %v", err)
	}
}

func TestValidateNegativeSize(t *testing.T) {
	sheet := NewSheet()
	r := NewRectangle()
	r.SetSize(-100, 50)
	sheet.AddShape(r)

	err := sheet.Validate()
	if err == nil || !strings.Contains(err.Error(), "width is negative") {
		t.Errorf("Validate = %v, want a negative-width problem", err)
	}
}

func TestValidateDegenerateGroup(t *testing.T) {
	sheet := NewSheet()
	g := NewGroupShape()
	g.SetAnchor(Rect{X: 0, Y: 0, Width: 200, Height: 200})
	// child coordinate space left at zero extent
	g.AddShape(NewRectangle())
	sheet.AddShape(g)

	err := sheet.Validate()
	if err == nil || !strings.Contains(err.Error(), "child coordinate space") {
		t.Errorf("Validate = %v, want a degenerate child-space problem", err)
	}
}

func TestValidateEmptyGroupAllowed(t *testing.T) {
	sheet := NewSheet()
	// A group with no children needs no usable transform.
	sheet.AddShape(NewGroupShape())

	if err := sheet.Validate(); err != nil {
		t.Errorf("Validate on an empty group: %v", err)
	}
}

func TestValidateBrokenParentLink(t *testing.T) {
	sheet := NewSheet()
	g := NewGroupShape()
	g.SetAnchor(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	g.SetCoordinates(Rect{X: 0, Y: 0, Width: 100, Height: 100})

	// Splice a child in without going through AddShape.
	stray := NewRectangle()
	g.shapes = append(g.shapes, stray)
	sheet.AddShape(g)

	err := sheet.Validate()
	if err == nil || !strings.Contains(err.Error(), "parent link") {
		t.Errorf("Validate = %v, want a parent-link problem", err)
	}
}

func TestValidateAggregatesProblems(t *testing.T) {
	sheet := NewSheet()
	a := NewRectangle()
	a.SetSize(-1, -1)
	sheet.AddShape(a)

	err := sheet.Validate()
	if err == nil {
		t.Fatal("Validate reported no error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "width is negative") || !strings.Contains(msg, "height is negative") {
		t.Errorf("Validate did not aggregate both problems: %v", err)
	}
}

func TestValidateReportsSplicedCycle(t *testing.T) {
	sheet := NewSheet()
	outer := NewGroupShape()
	outer.SetAnchor(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	outer.SetCoordinates(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	inner := NewGroupShape()
	inner.SetAnchor(Rect{X: 0, Y: 0, Width: 50, Height: 50})
	inner.SetCoordinates(Rect{X: 0, Y: 0, Width: 50, Height: 50})
	outer.AddShape(inner)
	sheet.AddShape(outer)

	// Splice the outer group back under the inner one without going
	// through AddShape, closing a loop in the tree.
	inner.shapes = append(inner.shapes, outer)
	outer.parent = inner

	err := sheet.Validate()
	if err == nil || !strings.Contains(err.Error(), "appears more than once") {
		t.Errorf("Validate = %v, want a duplicate-shape problem", err)
	}
}
