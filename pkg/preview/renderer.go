package preview

import (
	"image"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/controls/pkg/controls"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/selection"
	"github.com/go-drift/controls/pkg/theme"
)

// Layout metrics in logical pixels.
const (
	Padding        = 8.0
	ButtonHeight   = 24.0
	MinButtonWidth = 48.0
	ButtonSpacing  = 4.0
	labelPadding   = 12.0
)

// Renderer draws controls with the colors of Theme. A nil Theme uses the
// light defaults.
type Renderer struct {
	Theme *theme.ThemeData
	Scale float64
}

// NewRenderer creates a renderer at scale 1.
func NewRenderer(th *theme.ThemeData) *Renderer {
	return &Renderer{Theme: th, Scale: 1}
}

// PanelLayout is the placement of a radio panel's buttons.
type PanelLayout struct {
	Size    graphics.Size
	Buttons []graphics.Rect
}

// LayoutRadioPanel places the panel's buttons in its orientation. Segmented
// panels pack buttons edge to edge.
func (r *Renderer) LayoutRadioPanel(p *controls.RadioButtonPanel) PanelLayout {
	buttons := p.Buttons()
	spacing := ButtonSpacing
	if p.TemplateStyle() == controls.TemplateSegmented {
		spacing = 0
	}

	width := MinButtonWidth
	for _, b := range buttons {
		width = max(width, labelWidth(buttonLabel(b))+2*labelPadding)
	}

	layout := PanelLayout{Buttons: make([]graphics.Rect, len(buttons))}
	x, y := Padding, Padding
	for i := range buttons {
		layout.Buttons[i] = graphics.RectFromLTWH(x, y, width, ButtonHeight)
		if p.Orientation() == controls.Horizontal {
			x += width + spacing
		} else {
			y += ButtonHeight + spacing
		}
	}

	n := float64(len(buttons))
	gaps := max(n-1, 0) * spacing
	if p.Orientation() == controls.Horizontal {
		layout.Size = graphics.Size{Width: 2*Padding + n*width + gaps, Height: 2*Padding + ButtonHeight}
	} else {
		layout.Size = graphics.Size{Width: 2*Padding + width, Height: 2*Padding + n*ButtonHeight + gaps}
	}
	return layout
}

// RecordRadioPanel records the panel's drawing.
func (r *Renderer) RecordRadioPanel(p *controls.RadioButtonPanel) *graphics.DisplayList {
	t := r.Theme.RadioPanelThemeOf()
	layout := r.LayoutRadioPanel(p)
	buttons := p.Buttons()

	var rec graphics.PictureRecorder
	c := rec.BeginRecording(layout.Size)
	c.Clear(t.BackgroundColor)
	for i, b := range buttons {
		rect := layout.Buttons[i]
		text := t.TextColor
		switch b.TemplateStyle() {
		case selection.VariantUnderline:
			if b.IsChecked() {
				h := b.UnderlineHeight()
				c.DrawRect(graphics.Rect{Left: rect.Left, Top: rect.Bottom - h, Right: rect.Right, Bottom: rect.Bottom},
					graphics.FillPaint(t.ActiveColor))
				text = t.ActiveColor
			}
		case selection.VariantSegmented:
			rr := graphics.RRect{Rect: rect, Radii: segmentRadii(i, len(buttons), b.CornerRadius(), p.Orientation())}
			if b.IsChecked() {
				c.DrawRRect(rr, graphics.FillPaint(t.ActiveColor))
				text = t.ActiveTextColor
			}
			c.DrawRRect(rr, graphics.StrokePaint(t.InactiveColor, 1))
		default:
			rr := graphics.RRectFromRectAndRadius(rect, b.CornerRadius())
			if b.IsChecked() {
				c.DrawRRect(rr, graphics.FillPaint(t.ActiveColor))
				text = t.ActiveTextColor
			} else {
				c.DrawRRect(rr, graphics.StrokePaint(t.InactiveColor, 1))
			}
		}
		if b.Disabled() {
			text = text.WithAlpha(0.38)
		}
		c.DrawText(buttonLabel(b), rect, text)
	}
	return rec.EndRecording()
}

// RenderRadioPanel rasterises the panel.
func (r *Renderer) RenderRadioPanel(p *controls.RadioButtonPanel) *image.RGBA {
	return r.Rasterize(r.RecordRadioPanel(p))
}

// ThreeWayLayout is the placement of a three-way selector's segments.
type ThreeWayLayout struct {
	Size     graphics.Size
	Bounds   graphics.Rect
	Segments map[controls.ThreeWayState]graphics.Rect
}

// LayoutThreeWay places the segments Off, Neutral, On from left to right,
// each SelectorWidth wide.
func (r *Renderer) LayoutThreeWay(tw *controls.ThreeWay) ThreeWayLayout {
	w := tw.SelectorWidth()
	bounds := graphics.RectFromLTWH(Padding, Padding, 3*w, ButtonHeight)
	layout := ThreeWayLayout{
		Size:     graphics.Size{Width: bounds.Width() + 2*Padding, Height: ButtonHeight + 2*Padding},
		Bounds:   bounds,
		Segments: make(map[controls.ThreeWayState]graphics.Rect, 3),
	}
	for i, b := range tw.Buttons() {
		layout.Segments[b.State()] = graphics.RectFromLTWH(bounds.Left+float64(i)*w, bounds.Top, w, ButtonHeight)
	}
	return layout
}

// RecordThreeWay records the selector's drawing. The selected segment is
// filled with its state color using the selector's derived geometry, and the
// border is drawn inside the outline, inset further when the thickness is
// negative.
func (r *Renderer) RecordThreeWay(tw *controls.ThreeWay) *graphics.DisplayList {
	t := r.Theme.ThreeWayThemeOf()
	cs := r.colorScheme()
	layout := r.LayoutThreeWay(tw)
	geom := tw.Geometry()

	var rec graphics.PictureRecorder
	c := rec.BeginRecording(layout.Size)
	c.Clear(cs.Background)
	c.DrawRRect(graphics.RRect{Rect: layout.Bounds, Radii: geom.Whole}, graphics.FillPaint(cs.Surface))

	state := tw.State()
	c.DrawRRect(graphics.RRect{Rect: layout.Segments[state], Radii: tw.SegmentRadius(state)},
		graphics.FillPaint(tw.StateColor(state)))

	if th := tw.BorderThickness(); th != 0 {
		outline := layout.Bounds
		radii := geom.Whole
		if th < 0 {
			outline = outline.Inset(-th)
			radii = radii.Scale(outline.Height() / layout.Bounds.Height())
			th = -th
		}
		c.DrawRRect(graphics.RRect{Rect: outline, Radii: radii}, graphics.StrokePaint(t.BorderColor, th))
	}

	for _, b := range tw.Buttons() {
		c.DrawText(b.Label(), layout.Segments[b.State()], t.TextColor)
	}
	return rec.EndRecording()
}

// RenderThreeWay rasterises the selector.
func (r *Renderer) RenderThreeWay(tw *controls.ThreeWay) *image.RGBA {
	return r.Rasterize(r.RecordThreeWay(tw))
}

// Rasterize replays list onto a new RasterCanvas at the renderer's scale.
func (r *Renderer) Rasterize(list *graphics.DisplayList) *image.RGBA {
	c := NewRasterCanvas(list.Size(), r.Scale)
	list.Paint(c)
	return c.Image()
}

func (r *Renderer) colorScheme() theme.ColorScheme {
	if r.Theme == nil {
		return theme.LightColorScheme()
	}
	return r.Theme.ColorScheme
}

// segmentRadii rounds only the outer ends of a run of n segments.
func segmentRadii(i, n int, radius float64, o controls.Orientation) graphics.CornerRadius {
	var c graphics.CornerRadius
	first, last := i == 0, i == n-1
	if o == controls.Horizontal {
		if first {
			c.TopLeft, c.BottomLeft = radius, radius
		}
		if last {
			c.TopRight, c.BottomRight = radius, radius
		}
		return c
	}
	if first {
		c.TopLeft, c.TopRight = radius, radius
	}
	if last {
		c.BottomLeft, c.BottomRight = radius, radius
	}
	return c
}

func buttonLabel(b *controls.RadioButton) string {
	if b.Label() != "" {
		return b.Label()
	}
	return strconv.Itoa(b.Value())
}

func labelWidth(s string) float64 {
	return float64(font.MeasureString(basicfont.Face7x13, s)) / 64
}
