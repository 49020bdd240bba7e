// Package graphics holds the small value types controls hand to rendering
// hosts: packed colors and per-corner radii.
package graphics

// CornerRadius holds one radius per corner, clockwise from the top-left.
type CornerRadius struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadius returns a CornerRadius with r on every corner.
func UniformRadius(r float64) CornerRadius {
	return CornerRadius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// Corners returns the radii in clockwise order from the top-left.
func (c CornerRadius) Corners() [4]float64 {
	return [4]float64{c.TopLeft, c.TopRight, c.BottomRight, c.BottomLeft}
}

// IsUniform reports whether every corner has the same radius.
func (c CornerRadius) IsUniform() bool {
	return c.TopLeft == c.TopRight && c.TopRight == c.BottomRight && c.BottomRight == c.BottomLeft
}

// Scale multiplies every corner by f.
func (c CornerRadius) Scale(f float64) CornerRadius {
	return CornerRadius{
		TopLeft:     c.TopLeft * f,
		TopRight:    c.TopRight * f,
		BottomRight: c.BottomRight * f,
		BottomLeft:  c.BottomLeft * f,
	}
}
