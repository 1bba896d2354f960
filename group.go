package godrawing

// GroupShape represents a group of shapes. The group's own anchor is its
// placement in the parent coordinate space (the client anchor); the child
// coordinate space declares the extents its children's anchors are
// interpreted in.
type GroupShape struct {
	BaseShape
	shapes []Shape
	// Child coordinate space, stored in EMU.
	childOffX int64
	childOffY int64
	childExtX int64
	childExtY int64
}

// NewGroupShape creates a new, empty group shape.
func NewGroupShape() *GroupShape {
	g := &GroupShape{
		BaseShape: newBaseShape(),
		shapes:    make([]Shape, 0),
	}
	g.flags |= FlagGroup
	return g
}

func (g *GroupShape) GetKind() ShapeKind { return ShapeKindNotPrimitive }

// AddShape adds a shape to the group, re-parenting it and stamping the
// group's sheet onto the added subtree. A shape held by another container is
// detached from it first, so it keeps exactly one owner. Adding a group to
// itself or to one of its own descendants returns ErrWouldCycle.
func (g *GroupShape) AddShape(s Shape) error {
	if sg, ok := s.(*GroupShape); ok && isAncestorOf(sg, g) {
		return ErrWouldCycle
	}
	detach(s)
	b := s.base()
	b.parent = g
	b.flags |= FlagChild
	assignSheet(s, g.sheet)
	g.shapes = append(g.shapes, s)
	return nil
}

// isAncestorOf reports whether candidate is g itself or an ancestor of g.
func isAncestorOf(candidate, g *GroupShape) bool {
	for cur := g; cur != nil; cur = cur.parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// detach removes s from whichever container currently holds it: its parent
// group, or the top-level list of its sheet.
func detach(s Shape) {
	b := s.base()
	switch {
	case b.parent != nil:
		old := b.parent
		for i, cur := range old.shapes {
			if cur == s {
				old.shapes = append(old.shapes[:i], old.shapes[i+1:]...)
				break
			}
		}
		b.parent = nil
		b.flags &^= FlagChild
	case b.sheet != nil:
		old := b.sheet
		for i, cur := range old.shapes {
			if cur == s {
				old.shapes = append(old.shapes[:i], old.shapes[i+1:]...)
				break
			}
		}
	}
}

// GetShapes returns all shapes in the group.
func (g *GroupShape) GetShapes() []Shape {
	return g.shapes
}

// GetShapeCount returns the number of shapes in the group.
func (g *GroupShape) GetShapeCount() int {
	return len(g.shapes)
}

// RemoveShape removes a shape by index, detaching it from the group.
func (g *GroupShape) RemoveShape(index int) error {
	if index < 0 || index >= len(g.shapes) {
		return ErrIndexOutOfRange
	}
	b := g.shapes[index].base()
	b.parent = nil
	b.flags &^= FlagChild
	g.shapes = append(g.shapes[:index], g.shapes[index+1:]...)
	return nil
}

// SetCoordinates sets the child coordinate space rectangle from points.
func (g *GroupShape) SetCoordinates(r Rect) *GroupShape {
	g.childOffX = Point(r.X)
	g.childOffY = Point(r.Y)
	g.childExtX = Point(r.Width)
	g.childExtY = Point(r.Height)
	return g
}

// GetCoordinates returns the child coordinate space rectangle in points.
func (g *GroupShape) GetCoordinates() Rect {
	return Rect{
		X:      EMUToPoint(g.childOffX),
		Y:      EMUToPoint(g.childOffY),
		Width:  EMUToPoint(g.childExtX),
		Height: EMUToPoint(g.childExtY),
	}
}

// assignSheet stamps sheet onto s and, for groups, its whole subtree.
func assignSheet(s Shape, sheet *Sheet) {
	s.base().sheet = sheet
	if g, ok := s.(*GroupShape); ok {
		for _, child := range g.shapes {
			assignSheet(child, sheet)
		}
	}
}
