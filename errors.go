package godrawing

import "errors"

// Geometry errors
var (
	// ErrDegenerateTransform indicates that a group's client anchor or child
	// coordinate space has zero width or height, so the group scale factor
	// is undefined.
	ErrDegenerateTransform = errors.New("degenerate group transform")
)

// Color errors
var (
	// ErrInvalidColorIndex indicates a color scheme lookup outside the table.
	ErrInvalidColorIndex = errors.New("color scheme index out of range")
)

// Tree errors
var (
	// ErrIndexOutOfRange indicates a child index outside a container's bounds.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrWouldCycle indicates that adding a shape to a group would make the
	// shape its own ancestor.
	ErrWouldCycle = errors.New("shape would become its own ancestor")
)
