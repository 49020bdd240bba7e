package graphics

// PaintStyle describes how shapes are drawn.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline.
	PaintStyleStroke
)

// Paint describes how to draw a shape on the canvas.
type Paint struct {
	Color       Color
	Style       PaintStyle
	StrokeWidth float64 // Width of stroke in pixels
}

// FillPaint returns a fill paint of c.
func FillPaint(c Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// StrokePaint returns a stroke paint of c and width w.
func StrokePaint(c Color, w float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: w}
}
