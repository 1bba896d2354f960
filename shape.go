package godrawing

// Shape is the interface that all shapes in the drawing tree implement.
type Shape interface {
	GetKind() ShapeKind
	GetShapeID() int
	GetName() string
	GetAnchor() Rect
	GetLogicalAnchor() (Rect, error)
	GetParent() *GroupShape
	GetProperties() *PropertySet
	GetSheet() *Sheet
	// base returns the underlying BaseShape (unexported, internal use only).
	base() *BaseShape
}

// ShapeKind identifies a shape's preset geometry. The numbering follows the
// drawing-layer shape type catalog.
type ShapeKind int32

const (
	ShapeKindNotPrimitive      ShapeKind = 0
	ShapeKindRectangle         ShapeKind = 1
	ShapeKindRoundRectangle    ShapeKind = 2
	ShapeKindEllipse           ShapeKind = 3
	ShapeKindDiamond           ShapeKind = 4
	ShapeKindIsoscelesTriangle ShapeKind = 5
	ShapeKindRightTriangle     ShapeKind = 6
	ShapeKindParallelogram     ShapeKind = 7
	ShapeKindTrapezoid         ShapeKind = 8
	ShapeKindHexagon           ShapeKind = 9
	ShapeKindOctagon           ShapeKind = 10
	ShapeKindLine              ShapeKind = 20
	ShapeKindTextBox           ShapeKind = 202
)

// Shape flag word bits, as populated by the record codec.
const (
	FlagGroup          uint32 = 0x0001
	FlagChild          uint32 = 0x0002
	FlagPatriarch      uint32 = 0x0004
	FlagDeleted        uint32 = 0x0008
	FlagOLEShape       uint32 = 0x0010
	FlagHaveMaster     uint32 = 0x0020
	FlagFlipHorizontal uint32 = 0x0040
	FlagFlipVertical   uint32 = 0x0080
	FlagConnector      uint32 = 0x0100
	FlagHaveAnchor     uint32 = 0x0200
	FlagHaveShapeType  uint32 = 0x0800
)

// BaseShape contains the state common to all shapes: identity, the local
// anchor rectangle (stored in EMU), the shape flag word, the property set,
// and non-owning back-references to the parent group and containing sheet.
type BaseShape struct {
	shapeID    int
	name       string
	offsetX    int64 // in EMU
	offsetY    int64 // in EMU
	width      int64 // in EMU
	height     int64 // in EMU
	flags      uint32
	properties *PropertySet
	parent     *GroupShape
	sheet      *Sheet
}

func newBaseShape() BaseShape {
	return BaseShape{
		flags:      FlagHaveAnchor | FlagHaveShapeType,
		properties: NewPropertySet(),
	}
}

func (b *BaseShape) GetShapeID() int   { return b.shapeID }
func (b *BaseShape) GetName() string   { return b.name }
func (b *BaseShape) GetOffsetX() int64 { return b.offsetX }
func (b *BaseShape) GetOffsetY() int64 { return b.offsetY }
func (b *BaseShape) GetWidth() int64   { return b.width }
func (b *BaseShape) GetHeight() int64  { return b.height }
func (b *BaseShape) base() *BaseShape  { return b }

func (b *BaseShape) SetShapeID(id int) *BaseShape  { b.shapeID = id; return b }
func (b *BaseShape) SetName(n string) *BaseShape   { b.name = n; return b }
func (b *BaseShape) SetOffsetX(x int64) *BaseShape { b.offsetX = x; return b }
func (b *BaseShape) SetOffsetY(y int64) *BaseShape { b.offsetY = y; return b }
func (b *BaseShape) SetWidth(w int64) *BaseShape   { b.width = w; return b }
func (b *BaseShape) SetHeight(h int64) *BaseShape  { b.height = h; return b }

// SetPosition sets both offset X and Y in EMU.
func (b *BaseShape) SetPosition(x, y int64) *BaseShape {
	b.offsetX = x
	b.offsetY = y
	return b
}

// SetSize sets both width and height in EMU.
func (b *BaseShape) SetSize(w, h int64) *BaseShape {
	b.width = w
	b.height = h
	return b
}

// GetAnchor returns the shape's local anchor rectangle in points. For a
// grouped shape this is expressed in the parent group's child coordinate
// space; use GetLogicalAnchor for the page-space placement.
func (b *BaseShape) GetAnchor() Rect {
	return Rect{
		X:      EMUToPoint(b.offsetX),
		Y:      EMUToPoint(b.offsetY),
		Width:  EMUToPoint(b.width),
		Height: EMUToPoint(b.height),
	}
}

// SetAnchor sets the shape's local anchor rectangle from points.
func (b *BaseShape) SetAnchor(r Rect) *BaseShape {
	b.offsetX = Point(r.X)
	b.offsetY = Point(r.Y)
	b.width = Point(r.Width)
	b.height = Point(r.Height)
	return b
}

// GetParent returns the parent group, or nil for a top-level shape.
func (b *BaseShape) GetParent() *GroupShape { return b.parent }

// GetProperties returns the shape's property set.
func (b *BaseShape) GetProperties() *PropertySet { return b.properties }

// GetSheet returns the sheet containing this shape, or nil if the shape has
// not been added to one.
func (b *BaseShape) GetSheet() *Sheet { return b.sheet }

// GetFlags returns the raw shape flag word.
func (b *BaseShape) GetFlags() uint32 { return b.flags }

// SetFlags replaces the raw shape flag word.
func (b *BaseShape) SetFlags(flags uint32) *BaseShape {
	b.flags = flags
	return b
}

// SimpleShape is a primitive (non-group) shape: a line, rectangle, ellipse
// or other preset geometry.
type SimpleShape struct {
	BaseShape
	kind ShapeKind
}

// NewSimpleShape creates a new primitive shape of the given kind.
func NewSimpleShape(kind ShapeKind) *SimpleShape {
	return &SimpleShape{
		BaseShape: newBaseShape(),
		kind:      kind,
	}
}

// NewLine creates a new line shape.
func NewLine() *SimpleShape {
	return NewSimpleShape(ShapeKindLine)
}

// NewRectangle creates a new rectangle shape.
func NewRectangle() *SimpleShape {
	return NewSimpleShape(ShapeKindRectangle)
}

// NewEllipse creates a new ellipse shape.
func NewEllipse() *SimpleShape {
	return NewSimpleShape(ShapeKindEllipse)
}

func (s *SimpleShape) GetKind() ShapeKind { return s.kind }
