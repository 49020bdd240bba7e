package controls

import "github.com/go-drift/controls/pkg/graphics"

// Geometry holds the corner radii a three-way selector is drawn with.
type Geometry struct {
	// Whole is the outline of the entire control.
	Whole graphics.CornerRadius
	// Leading rounds the right-hand end, where the On segment sits.
	Leading graphics.CornerRadius
	// Trailing rounds the left-hand end, where the Off segment sits.
	Trailing graphics.CornerRadius
}

// DeriveGeometry computes the three radius tuples from one radius.
func DeriveGeometry(r float64) Geometry {
	return Geometry{
		Whole:    graphics.UniformRadius(r),
		Leading:  graphics.CornerRadius{TopLeft: 0, TopRight: r, BottomRight: r, BottomLeft: 0},
		Trailing: graphics.CornerRadius{TopLeft: r, TopRight: 0, BottomRight: 0, BottomLeft: r},
	}
}
