package godrawing

import (
	"fmt"
	"math"
)

// Rect is a rectangle in some coordinate space: position of the top-left
// corner plus extents, in points.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the rectangle's center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// isDegenerate reports whether either extent is zero, making the rectangle
// unusable as a coordinate-space basis.
func (r Rect) isDegenerate() bool {
	return r.Width == 0 || r.Height == 0
}

// GetLogicalAnchor returns the shape's bounding rectangle in page space.
//
// For a grouped shape the local anchor is remapped through the outermost
// ancestor group's client anchor and child coordinate space. Intermediate
// group transforms are not composed; resolution always uses the outermost
// ancestor only. A non-zero rotation then rotates the rectangle about its
// own center and the axis-aligned bounds are taken; when that bounding box
// flips the rectangle's orientation (portrait to landscape or back), the
// bounds of the unrotated rectangle turned a fixed 90 degrees are used
// instead.
//
// The result is computed from the current tree on every call; callers must
// re-resolve after any anchor, rotation or tree change upstream.
func (b *BaseShape) GetLogicalAnchor() (Rect, error) {
	anchor := b.GetAnchor()

	if b.parent != nil {
		top := b.parent
		for top.parent != nil {
			top = top.parent
		}

		client := top.GetAnchor()
		childSpace := top.GetCoordinates()
		if client.isDegenerate() || childSpace.isDegenerate() {
			return Rect{}, fmt.Errorf("group %q: %w", top.name, ErrDegenerateTransform)
		}

		scaleX := childSpace.Width / client.Width
		scaleY := childSpace.Height / client.Height

		anchor = Rect{
			X:      client.X + (anchor.X-childSpace.X)/scaleX,
			Y:      client.Y + (anchor.Y-childSpace.Y)/scaleY,
			Width:  anchor.Width / scaleX,
			Height: anchor.Height / scaleY,
		}
	}

	angle := b.GetRotation()
	if angle != 0 {
		cx, cy := anchor.Center()
		rotated := rotateBounds(anchor, float64(angle), cx, cy)
		if (anchor.Width < anchor.Height && rotated.Width > rotated.Height) ||
			(anchor.Width > anchor.Height && rotated.Width < rotated.Height) {
			rotated = rotateBounds(anchor, 90, cx, cy)
		}
		anchor = rotated
	}
	return anchor, nil
}

// rotateBounds rotates r by degrees about (cx, cy) and returns the
// axis-aligned bounding box of the result.
func rotateBounds(r Rect, degrees, cx, cy float64) Rect {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	xs := [4]float64{r.X, r.X + r.Width, r.X, r.X + r.Width}
	ys := [4]float64{r.Y, r.Y, r.Y + r.Height, r.Y + r.Height}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < 4; i++ {
		dx, dy := xs[i]-cx, ys[i]-cy
		x := cx + dx*cos - dy*sin
		y := cy + dx*sin + dy*cos
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
