// Package godrawing provides the shape geometry and styling layer of a
// drawing document model: a tree of primitive and group shapes placed on a
// sheet, each carrying a sparse typed property record, with accessors that
// apply the documented default and sentinel rules and a resolver that
// computes a shape's final page-space bounding rectangle.
//
// The binary record codec and the rendering backend are external
// collaborators: the codec hands this package realized property sets and
// shape trees, and renderers consume the typed getters and resolved anchors.
//
// See the Version variable for the current library version.
package godrawing

// Sheet represents one page of the drawing model. It owns the top-level
// shapes and the page's color scheme, which indexed color properties
// resolve through.
type Sheet struct {
	shapes      []Shape
	colorScheme *ColorScheme
	width       int64 // in EMU
	height      int64 // in EMU
	nextShapeID int
}

// firstShapeID is the id assigned to the first shape on a sheet; lower ids
// are reserved for the drawing container records.
const firstShapeID = 1024

// NewSheet creates a new empty sheet with the default 4:3 page size.
func NewSheet() *Sheet {
	return &Sheet{
		shapes:      make([]Shape, 0),
		width:       9144000, // 10 inches
		height:      6858000, // 7.5 inches
		nextShapeID: firstShapeID,
	}
}

// AddShape adds a top-level shape to the sheet, detaching it from any
// container that held it before. The sheet reference is stamped onto the
// whole subtree, and shapes without an id are assigned one.
func (s *Sheet) AddShape(sh Shape) Shape {
	detach(sh)
	assignSheet(sh, s)
	s.assignShapeIDs(sh)
	s.shapes = append(s.shapes, sh)
	return sh
}

// assignShapeIDs gives every shape in the subtree without an id the next
// free one. Ids realized by the codec are kept.
func (s *Sheet) assignShapeIDs(sh Shape) {
	if sh.base().shapeID == 0 {
		sh.base().shapeID = s.nextShapeID
		s.nextShapeID++
	}
	if g, ok := sh.(*GroupShape); ok {
		for _, child := range g.shapes {
			s.assignShapeIDs(child)
		}
	}
}

// GetShapes returns the sheet's top-level shapes.
func (s *Sheet) GetShapes() []Shape {
	return s.shapes
}

// GetShapeCount returns the number of top-level shapes.
func (s *Sheet) GetShapeCount() int {
	return len(s.shapes)
}

// GetShape returns the top-level shape at index.
func (s *Sheet) GetShape(index int) (Shape, error) {
	if index < 0 || index >= len(s.shapes) {
		return nil, ErrIndexOutOfRange
	}
	return s.shapes[index], nil
}

// RemoveShape removes the top-level shape at index.
func (s *Sheet) RemoveShape(index int) error {
	if index < 0 || index >= len(s.shapes) {
		return ErrIndexOutOfRange
	}
	assignSheet(s.shapes[index], nil)
	s.shapes = append(s.shapes[:index], s.shapes[index+1:]...)
	return nil
}

// RemoveShapeByPointer removes the given top-level shape. Returns true if
// the shape was found and removed.
func (s *Sheet) RemoveShapeByPointer(sh Shape) bool {
	for i, cur := range s.shapes {
		if cur == sh {
			return s.RemoveShape(i) == nil
		}
	}
	return false
}

// GetColorScheme returns the sheet's color scheme, or nil when none is set.
func (s *Sheet) GetColorScheme() *ColorScheme {
	return s.colorScheme
}

// SetColorScheme sets the sheet's color scheme.
func (s *Sheet) SetColorScheme(cs *ColorScheme) {
	s.colorScheme = cs
}

// GetPageSize returns the page width and height in EMU.
func (s *Sheet) GetPageSize() (int64, int64) {
	return s.width, s.height
}

// SetPageSize sets the page size in EMU. Both values must be positive;
// non-positive values leave the defaults in place.
func (s *Sheet) SetPageSize(cx, cy int64) {
	if cx > 0 {
		s.width = cx
	}
	if cy > 0 {
		s.height = cy
	}
}
