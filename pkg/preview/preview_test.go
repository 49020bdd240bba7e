package preview_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/go-drift/controls/pkg/controls"
	controlerrors "github.com/go-drift/controls/pkg/errors"
	"github.com/go-drift/controls/pkg/graphics"
	"github.com/go-drift/controls/pkg/preview"
	"github.com/go-drift/controls/pkg/theme"
)

func near(a, b uint8) bool {
	d := int(a) - int(b)
	return d >= -2 && d <= 2
}

func assertPixel(t *testing.T, img *image.RGBA, x, y int, want graphics.Color) {
	t.Helper()
	got := img.RGBAAt(x, y)
	r, g, b, _ := want.Components()
	if !near(got.R, r) || !near(got.G, g) || !near(got.B, b) || got.A != 0xFF {
		t.Errorf("pixel (%d,%d) = %v, want %s", x, y, got, want.Hex())
	}
}

func TestRenderThreeWayPaintsActiveSegment(t *testing.T) {
	th := theme.DefaultLightTheme()
	r := preview.NewRenderer(th)
	tw := controls.NewThreeWayWithTheme(th)

	for _, state := range []controls.ThreeWayState{controls.On, controls.Off, controls.Neutral} {
		tw.SetState(state)
		img := r.RenderThreeWay(tw)
		layout := r.LayoutThreeWay(tw)
		if img.Bounds().Dx() != int(layout.Size.Width) || img.Bounds().Dy() != int(layout.Size.Height) {
			t.Fatalf("image bounds = %v, layout size = %v", img.Bounds(), layout.Size)
		}

		seg := layout.Segments[state]
		y := int(seg.Center().Y)
		assertPixel(t, img, int(seg.Left)+3, y, tw.StateColor(state))

		// Inactive segments keep the surface color.
		for _, other := range []controls.ThreeWayState{controls.On, controls.Off, controls.Neutral} {
			if other == state {
				continue
			}
			o := layout.Segments[other]
			assertPixel(t, img, int(o.Left)+3, y, th.ColorScheme.Surface)
		}
	}
}

func TestLayoutThreeWayOrder(t *testing.T) {
	r := preview.NewRenderer(nil)
	tw := controls.NewThreeWay()
	tw.SetSelectorWidth(40)
	l := r.LayoutThreeWay(tw)
	off, neutral, on := l.Segments[controls.Off], l.Segments[controls.Neutral], l.Segments[controls.On]
	if !(off.Left < neutral.Left && neutral.Left < on.Left) {
		t.Errorf("segments out of order: off %v neutral %v on %v", off, neutral, on)
	}
	if on.Width() != 40 || l.Bounds.Width() != 120 {
		t.Errorf("segment width %v, bounds width %v", on.Width(), l.Bounds.Width())
	}
}

func TestRenderRadioPanelStandard(t *testing.T) {
	th := theme.DefaultLightTheme()
	r := preview.NewRenderer(th)
	p := controls.NewRadioButtonPanel()
	p.Add(controls.NewRadioButton(1, "one"), controls.NewRadioButton(2, "two"))
	p.SetSelectedValue(2)

	img := r.RenderRadioPanel(p)
	layout := r.LayoutRadioPanel(p)
	if len(layout.Buttons) != 2 {
		t.Fatalf("layout has %d buttons", len(layout.Buttons))
	}
	pt := th.RadioPanelThemeOf()
	active := layout.Buttons[1]
	assertPixel(t, img, int(active.Left)+4, int(active.Center().Y), pt.ActiveColor)
	inactive := layout.Buttons[0]
	assertPixel(t, img, int(inactive.Left)+4, int(inactive.Center().Y), pt.BackgroundColor)
}

func TestRenderRadioPanelUnderline(t *testing.T) {
	th := theme.DefaultLightTheme()
	r := preview.NewRenderer(th)
	p := controls.NewRadioButtonPanel()
	p.SetOrientation(controls.Horizontal)
	p.SetTemplateStyle(controls.TemplateUnderline)
	p.SetUnderlineHeight(4)
	p.Add(controls.NewRadioButton(1, "a"), controls.NewRadioButton(2, "b"))
	p.SetSelectedValue(1)

	img := r.RenderRadioPanel(p)
	layout := r.LayoutRadioPanel(p)
	if layout.Buttons[1].Left <= layout.Buttons[0].Left {
		t.Fatalf("horizontal layout not left to right: %v", layout.Buttons)
	}
	pt := th.RadioPanelThemeOf()
	a, b := layout.Buttons[0], layout.Buttons[1]
	assertPixel(t, img, int(a.Left)+4, int(a.Bottom)-2, pt.ActiveColor)
	assertPixel(t, img, int(b.Left)+4, int(b.Bottom)-2, pt.BackgroundColor)
	assertPixel(t, img, int(a.Left)+4, int(a.Bottom)-6, pt.BackgroundColor)
}

func TestRendererScale(t *testing.T) {
	r := preview.NewRenderer(nil)
	r.Scale = 2
	tw := controls.NewThreeWay()
	img := r.RenderThreeWay(tw)
	size := r.LayoutThreeWay(tw).Size
	if img.Bounds().Dx() != int(2*size.Width) || img.Bounds().Dy() != int(2*size.Height) {
		t.Errorf("scaled bounds = %v, layout size = %v", img.Bounds(), size)
	}
}

func TestRasterCanvasStrokeLeavesInteriorUntouched(t *testing.T) {
	c := preview.NewRasterCanvas(graphics.Size{Width: 40, Height: 40}, 1)
	c.Clear(graphics.ColorWhite)
	c.DrawRRect(graphics.RRectFromRectAndRadius(graphics.RectFromLTWH(4, 4, 32, 32), 6),
		graphics.StrokePaint(graphics.ColorBlack, 2))
	img := c.Image()
	assertPixel(t, img, 20, 20, graphics.ColorWhite)
	assertPixel(t, img, 4, 20, graphics.ColorBlack)
	assertPixel(t, img, 0, 0, graphics.ColorWhite)
}

func TestEncodePNG(t *testing.T) {
	img := preview.NewRenderer(nil).RenderThreeWay(controls.NewThreeWay())
	var buf bytes.Buffer
	if err := preview.EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestWritePNGReportsPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	path := filepath.Join(t.TempDir(), "missing", "out.png")
	err := preview.WritePNG(path, img)
	var ce *controlerrors.ControlError
	if !errors.As(err, &ce) {
		t.Fatalf("WritePNG() error = %v, want *ControlError", err)
	}
	if ce.Kind != controlerrors.KindRender || ce.Path != path {
		t.Errorf("error kind %v path %q", ce.Kind, ce.Path)
	}

	ok := filepath.Join(t.TempDir(), "out.png")
	if err := preview.WritePNG(ok, img); err != nil {
		t.Errorf("WritePNG() error = %v", err)
	}
}
