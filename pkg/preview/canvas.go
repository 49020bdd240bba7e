package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/controls/pkg/graphics"
)

// arcSegments is the number of line segments used per rounded corner.
const arcSegments = 8

// RasterCanvas is a graphics.Canvas backed by an *image.RGBA. Coordinates
// are logical pixels multiplied by the canvas scale.
type RasterCanvas struct {
	img   *image.RGBA
	size  graphics.Size
	scale float64
	z     *vector.Rasterizer
	face  font.Face
}

// NewRasterCanvas creates a transparent canvas of the given logical size.
// A scale of zero or less is treated as 1.
func NewRasterCanvas(size graphics.Size, scale float64) *RasterCanvas {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(size.Width * scale))
	h := int(math.Ceil(size.Height * scale))
	return &RasterCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, max(w, 1), max(h, 1))),
		size:  size,
		scale: scale,
		z:     vector.NewRasterizer(max(w, 1), max(h, 1)),
		face:  basicfont.Face7x13,
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.img
}

func (c *RasterCanvas) Size() graphics.Size {
	return c.size
}

func (c *RasterCanvas) Clear(color graphics.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(color.NRGBA()), image.Point{}, draw.Src)
}

func (c *RasterCanvas) DrawRect(rect graphics.Rect, paint graphics.Paint) {
	c.DrawRRect(graphics.RRect{Rect: rect}, paint)
}

func (c *RasterCanvas) DrawRRect(rrect graphics.RRect, paint graphics.Paint) {
	if paint.Color.Alpha() == 0 || rrect.Rect.IsEmpty() {
		return
	}
	outer := rrect.Clamped()
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.addOutline(outer, false)
	if paint.Style == graphics.PaintStyleStroke {
		w := paint.StrokeWidth
		if w <= 0 {
			return
		}
		inner := graphics.RRect{Rect: outer.Rect.Inset(w), Radii: shrink(outer.Radii, w)}
		if !inner.Rect.IsEmpty() {
			// Opposite winding cuts the interior out.
			c.addOutline(inner.Clamped(), true)
		}
	}
	c.z.Draw(c.img, b, image.NewUniform(paint.Color.NRGBA()), image.Point{})
}

func (c *RasterCanvas) DrawText(text string, bounds graphics.Rect, color graphics.Color) {
	if text == "" || color.Alpha() == 0 {
		return
	}
	center := bounds.Center()
	m := c.face.Metrics()
	width := float64(font.MeasureString(c.face, text)) / 64
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	x := center.X*c.scale - width/2
	y := center.Y*c.scale + (ascent-descent)/2
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(color.NRGBA()),
		Face: c.face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(text)
}

// addOutline appends the closed outline of rr to the rasterizer, clockwise
// unless reverse is set.
func (c *RasterCanvas) addOutline(rr graphics.RRect, reverse bool) {
	pts := outline(rr)
	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	s := float32(c.scale)
	c.z.MoveTo(float32(pts[0].X)*s, float32(pts[0].Y)*s)
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X)*s, float32(p.Y)*s)
	}
	c.z.ClosePath()
}

// outline flattens rr into a clockwise polygon in screen coordinates.
func outline(rr graphics.RRect) []graphics.Offset {
	r := rr.Rect
	rad := rr.Radii
	pts := make([]graphics.Offset, 0, 4*(arcSegments+1))
	corner := func(cx, cy, radius, start float64) {
		if radius <= 0 {
			pts = append(pts, graphics.Offset{X: cx, Y: cy})
			return
		}
		for i := 0; i <= arcSegments; i++ {
			a := start + float64(i)*(math.Pi/2)/arcSegments
			pts = append(pts, graphics.Offset{
				X: cx + radius*math.Cos(a),
				Y: cy + radius*math.Sin(a),
			})
		}
	}
	// Angles grow clockwise on screen because y points down.
	if rad.TopLeft > 0 {
		corner(r.Left+rad.TopLeft, r.Top+rad.TopLeft, rad.TopLeft, math.Pi)
	} else {
		corner(r.Left, r.Top, 0, 0)
	}
	if rad.TopRight > 0 {
		corner(r.Right-rad.TopRight, r.Top+rad.TopRight, rad.TopRight, 3*math.Pi/2)
	} else {
		corner(r.Right, r.Top, 0, 0)
	}
	if rad.BottomRight > 0 {
		corner(r.Right-rad.BottomRight, r.Bottom-rad.BottomRight, rad.BottomRight, 0)
	} else {
		corner(r.Right, r.Bottom, 0, 0)
	}
	if rad.BottomLeft > 0 {
		corner(r.Left+rad.BottomLeft, r.Bottom-rad.BottomLeft, rad.BottomLeft, math.Pi/2)
	} else {
		corner(r.Left, r.Bottom, 0, 0)
	}
	return pts
}

func shrink(c graphics.CornerRadius, d float64) graphics.CornerRadius {
	f := func(v float64) float64 { return max(0, v-d) }
	return graphics.CornerRadius{
		TopLeft:     f(c.TopLeft),
		TopRight:    f(c.TopRight),
		BottomRight: f(c.BottomRight),
		BottomLeft:  f(c.BottomLeft),
	}
}
