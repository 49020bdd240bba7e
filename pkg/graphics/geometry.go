package graphics

// Offset represents a 2D point or displacement in pixels.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Inset shrinks the rectangle by d on every side. Negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{Left: r.Left + d, Top: r.Top + d, Right: r.Right - d, Bottom: r.Bottom - d}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// RRect is a rectangle with per-corner radii.
type RRect struct {
	Rect  Rect
	Radii CornerRadius
}

// RRectFromRectAndRadius creates a rounded rectangle with uniform corner radii.
func RRectFromRectAndRadius(rect Rect, radius float64) RRect {
	return RRect{Rect: rect, Radii: UniformRadius(radius)}
}

// Clamped returns r with every radius limited to half the shorter side, so
// adjacent corners never overlap.
func (r RRect) Clamped() RRect {
	limit := min(r.Rect.Width(), r.Rect.Height()) / 2
	if limit < 0 {
		limit = 0
	}
	c := r.Radii
	fit := func(v float64) float64 { return max(0, min(v, limit)) }
	r.Radii = CornerRadius{
		TopLeft:     fit(c.TopLeft),
		TopRight:    fit(c.TopRight),
		BottomRight: fit(c.BottomRight),
		BottomLeft:  fit(c.BottomLeft),
	}
	return r
}
