package graphics

// Canvas records or renders drawing commands.
type Canvas interface {
	// Clear fills the entire canvas with the given color.
	Clear(color Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect Rect, paint Paint)

	// DrawRRect draws a rounded rectangle with the provided paint. Stroke
	// paints are drawn inside the outline.
	DrawRRect(rrect RRect, paint Paint)

	// DrawText draws a single line of text centered in bounds.
	DrawText(text string, bounds Rect, color Color)

	// Size returns the size of the canvas in pixels.
	Size() Size
}
